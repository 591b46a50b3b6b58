package detect

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDedupe(t *testing.T) {
	drives := []Drive{
		{Path: "/media/a", Name: "a"},
		{Path: "/media/b", Name: "b"},
		{Path: "/media/a", Name: "a-again"},
	}

	unique := dedupe(drives)

	require.Len(t, unique, 2)
	assert.Equal(t, "/media/a", unique[0].Path)
	assert.Equal(t, "a", unique[0].Name)
	assert.Equal(t, "/media/b", unique[1].Path)
}

func TestDedupe_Empty(t *testing.T) {
	assert.Empty(t, dedupe(nil))
}

func TestSelect_NoDrives(t *testing.T) {
	_, ok := Select(nil, strings.NewReader(""), &bytes.Buffer{})
	assert.False(t, ok)
}

func TestSelect_SingleDriveSkipsPrompt(t *testing.T) {
	out := &bytes.Buffer{}
	drives := []Drive{{Path: "/media/a", Name: "a"}}

	drive, ok := Select(drives, strings.NewReader(""), out)
	require.True(t, ok)
	assert.Equal(t, "/media/a", drive.Path)
	assert.Empty(t, out.String())
}

func TestSelect_MultipleDrives(t *testing.T) {
	drives := []Drive{
		{Path: "/media/a", Name: "a"},
		{Path: "/media/b", Name: "b"},
	}

	tests := []struct {
		name     string
		input    string
		wantPath string
	}{
		{"explicit choice", "2\n", "/media/b"},
		{"empty input takes first", "\n", "/media/a"},
		{"whitespace takes first", "   \n", "/media/a"},
		{"non-numeric takes first", "abc\n", "/media/a"},
		{"out of range takes first", "7\n", "/media/a"},
		{"zero takes first", "0\n", "/media/a"},
		{"closed input takes first", "", "/media/a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := &bytes.Buffer{}

			drive, ok := Select(drives, strings.NewReader(tt.input), out)
			require.True(t, ok)
			assert.Equal(t, tt.wantPath, drive.Path)

			// The prompt lists every drive
			assert.Contains(t, out.String(), "1. a (/media/a)")
			assert.Contains(t, out.String(), "2. b (/media/b)")
		})
	}
}

func TestDrives_ReturnsUniquePaths(t *testing.T) {
	seen := make(map[string]bool)
	for _, drive := range Drives() {
		assert.False(t, seen[drive.Path], "duplicate path %s", drive.Path)
		seen[drive.Path] = true
		assert.NotEmpty(t, drive.Path)
	}
}
