// Package config provides configuration loading for the USB speed test harness
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Fixed defaults shared by every measurement invocation
const (
	// BytesPerMB is the number of bytes in one megabyte (1024 * 1024)
	BytesPerMB = 1024 * 1024

	// DefaultChunkSizeBytes is the size of each write chunk (1 MiB)
	DefaultChunkSizeBytes = 1 * BytesPerMB

	// DefaultMinSpeedMBps is the minimum acceptable write speed (USB 3.0 class)
	DefaultMinSpeedMBps = 50.0

	// DefaultSpaceBufferMultiplier adds headroom to the free space requirement
	DefaultSpaceBufferMultiplier = 1.5

	// DefaultProgressInterval reports progress every N chunks
	DefaultProgressInterval = 10

	// MinFileSizeMB is the smallest test file size the measurement accepts
	MinFileSizeMB = 1

	// TestFileName is the fixed name of the transient test file
	TestFileName = "speedtest.dat"

	// DefaultUSBPath is used when USB_TEST_PATH is not set and detection finds nothing
	DefaultUSBPath = "/media/tx/USB_DRIVE"
)

// DefaultTestSizesMB lists the test file sizes used when none are configured
//
//nolint:gochecknoglobals // Package-level default shared by config and help text
var DefaultTestSizesMB = []int{50, 100, 200}

// Config holds the configuration for the speed test harness
type Config struct {
	// Target settings
	TestPath string // USB_TEST_PATH

	// Measurement settings
	TestSizesMB      []int   // USB_SPEEDTEST_SIZES_MB (comma-separated)
	MinSpeedMBps     float64 // USB_SPEEDTEST_MIN_SPEED_MBPS
	ChunkSizeBytes   int     // USB_SPEEDTEST_CHUNK_SIZE_MB (stored in bytes)
	SpaceBuffer      float64 // USB_SPEEDTEST_SPACE_BUFFER
	ProgressInterval int     // USB_SPEEDTEST_PROGRESS_INTERVAL

	// UI settings
	UI struct {
		ColorOutput bool // USB_SPEEDTEST_COLOR_OUTPUT (default: true)
		Verbose     bool // USB_SPEEDTEST_VERBOSE
	}
}

// fileConfig mirrors the optional .usbspeed.yml overrides
type fileConfig struct {
	TestPath         string  `yaml:"test_path"`
	TestSizesMB      []int   `yaml:"test_sizes_mb"`
	MinSpeedMBps     float64 `yaml:"min_speed_mbps"`
	ChunkSizeMB      int     `yaml:"chunk_size_mb"`
	SpaceBuffer      float64 `yaml:"space_buffer"`
	ProgressInterval int     `yaml:"progress_interval"`
	ColorOutput      *bool   `yaml:"color_output"`
}

// ConfigFileName is the optional YAML configuration file searched in the working directory
const ConfigFileName = ".usbspeed.yml"

// Load reads configuration from the environment, an optional .env file,
// and an optional .usbspeed.yml. Environment variables win over the YAML file.
func Load() (*Config, error) {
	// A local .env is optional; ignore a missing file
	_ = godotenv.Load()

	cfg := Default()

	// YAML overrides come first so the environment can still win
	if err := cfg.applyFile(ConfigFileName); err != nil {
		return nil, err
	}
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Default returns a configuration populated with the fixed defaults
func Default() *Config {
	cfg := &Config{
		TestPath:         DefaultUSBPath,
		TestSizesMB:      append([]int{}, DefaultTestSizesMB...),
		MinSpeedMBps:     DefaultMinSpeedMBps,
		ChunkSizeBytes:   DefaultChunkSizeBytes,
		SpaceBuffer:      DefaultSpaceBufferMultiplier,
		ProgressInterval: DefaultProgressInterval,
	}
	cfg.UI.ColorOutput = true
	return cfg
}

// applyFile merges overrides from a YAML file if it exists
func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path) //nolint:gosec // Fixed well-known file name
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if fc.TestPath != "" {
		c.TestPath = fc.TestPath
	}
	if len(fc.TestSizesMB) > 0 {
		c.TestSizesMB = fc.TestSizesMB
	}
	if fc.MinSpeedMBps > 0 {
		c.MinSpeedMBps = fc.MinSpeedMBps
	}
	if fc.ChunkSizeMB > 0 {
		c.ChunkSizeBytes = fc.ChunkSizeMB * BytesPerMB
	}
	if fc.SpaceBuffer > 0 {
		c.SpaceBuffer = fc.SpaceBuffer
	}
	if fc.ProgressInterval > 0 {
		c.ProgressInterval = fc.ProgressInterval
	}
	if fc.ColorOutput != nil {
		c.UI.ColorOutput = *fc.ColorOutput
	}

	return nil
}

// applyEnv merges overrides from environment variables
func (c *Config) applyEnv() {
	c.TestPath = getStringEnv("USB_TEST_PATH", c.TestPath)
	c.TestSizesMB = getIntSliceEnv("USB_SPEEDTEST_SIZES_MB", c.TestSizesMB)
	c.MinSpeedMBps = getFloatEnv("USB_SPEEDTEST_MIN_SPEED_MBPS", c.MinSpeedMBps)
	if chunkMB := getIntEnv("USB_SPEEDTEST_CHUNK_SIZE_MB", 0); chunkMB > 0 {
		c.ChunkSizeBytes = chunkMB * BytesPerMB
	}
	c.SpaceBuffer = getFloatEnv("USB_SPEEDTEST_SPACE_BUFFER", c.SpaceBuffer)
	c.ProgressInterval = getIntEnv("USB_SPEEDTEST_PROGRESS_INTERVAL", c.ProgressInterval)
	c.UI.ColorOutput = getBoolEnv("USB_SPEEDTEST_COLOR_OUTPUT", c.UI.ColorOutput)
	c.UI.Verbose = getBoolEnv("USB_SPEEDTEST_VERBOSE", c.UI.Verbose)
}

// MaxTestSizeMB returns the largest configured test size
func (c *Config) MaxTestSizeMB() int {
	maxSize := 0
	for _, size := range c.TestSizesMB {
		if size > maxSize {
			maxSize = size
		}
	}
	return maxSize
}

// RequiredSpaceMB returns the free space needed to run every configured test.
// The test file is removed between runs, so the requirement is the largest
// single size plus buffer, not the sum of all sizes.
func (c *Config) RequiredSpaceMB() float64 {
	return float64(c.MaxTestSizeMB()) * c.SpaceBuffer
}

// Validate validates the configuration and provides helpful error messages
func (c *Config) Validate() error {
	var errs []string

	if len(c.TestSizesMB) == 0 {
		errs = append(errs, "USB_SPEEDTEST_SIZES_MB must list at least one test size")
	}
	for _, size := range c.TestSizesMB {
		if size < MinFileSizeMB {
			errs = append(errs, fmt.Sprintf("test size %dMB is below the minimum of %dMB", size, MinFileSizeMB))
		}
	}

	if c.MinSpeedMBps <= 0 {
		errs = append(errs, "USB_SPEEDTEST_MIN_SPEED_MBPS must be greater than 0")
	}

	if c.ChunkSizeBytes <= 0 {
		errs = append(errs, "USB_SPEEDTEST_CHUNK_SIZE_MB must be greater than 0")
	}

	if c.SpaceBuffer < 1 {
		errs = append(errs, "USB_SPEEDTEST_SPACE_BUFFER must be at least 1 (1 = no buffer)")
	}

	if c.ProgressInterval <= 0 {
		errs = append(errs, "USB_SPEEDTEST_PROGRESS_INTERVAL must be greater than 0")
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}

	return nil
}

// ValidationError represents configuration validation errors
type ValidationError struct {
	Errors []string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("configuration validation failed:\n  - %s", strings.Join(e.Errors, "\n  - "))
}

// GetConfigHelp returns helpful information about configuration options
func GetConfigHelp() string {
	return `USB Speed Test Configuration Help

Environment Variables:

Target:
  USB_TEST_PATH=/media/tx/USB_DRIVE          Directory on the drive under test

Measurement:
  USB_SPEEDTEST_SIZES_MB=50,100,200          Test file sizes in MB
  USB_SPEEDTEST_MIN_SPEED_MBPS=50.0          Minimum acceptable write speed
  USB_SPEEDTEST_CHUNK_SIZE_MB=1              Write chunk size in MB
  USB_SPEEDTEST_SPACE_BUFFER=1.5             Free space buffer multiplier
  USB_SPEEDTEST_PROGRESS_INTERVAL=10         Report progress every N chunks

UI:
  USB_SPEEDTEST_COLOR_OUTPUT=true            Enable colored output
  USB_SPEEDTEST_VERBOSE=false                Enable verbose output

A .env file in the working directory is loaded first if present.
A .usbspeed.yml file may also set any of the above; environment variables
take precedence over it:

  test_path: /media/tx/USB_DRIVE
  test_sizes_mb: [50, 100, 200]
  min_speed_mbps: 50.0
  space_buffer: 1.5
`
}

// Helper functions for environment variable parsing
func getBoolEnv(key string, defaultValue bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return defaultValue
	}
	return b
}

func getIntEnv(key string, defaultValue int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultValue
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return i
}

func getFloatEnv(key string, defaultValue float64) float64 {
	val := os.Getenv(key)
	if val == "" {
		return defaultValue
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return defaultValue
	}
	return f
}

func getStringEnv(key, defaultValue string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultValue
	}
	return val
}

func getIntSliceEnv(key string, defaultValue []int) []int {
	val := os.Getenv(key)
	if val == "" {
		return defaultValue
	}

	parts := strings.Split(val, ",")
	sizes := make([]int, 0, len(parts))
	for _, part := range parts {
		cleaned := strings.TrimSpace(part)
		if cleaned == "" {
			continue
		}
		i, err := strconv.Atoi(cleaned)
		if err != nil {
			return defaultValue
		}
		sizes = append(sizes, i)
	}

	if len(sizes) == 0 {
		return defaultValue
	}
	return sizes
}
