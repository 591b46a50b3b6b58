package harness

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakeCheck is a configurable check for harness tests
type fakeCheck struct {
	name     string
	category Category
	run      func(ctx context.Context, session *Session) error
}

func (c *fakeCheck) Name() string        { return c.name }
func (c *fakeCheck) Description() string { return "fake check " + c.name }
func (c *fakeCheck) Category() Category  { return c.category }

func (c *fakeCheck) Run(ctx context.Context, session *Session) error {
	if c.run == nil {
		return nil
	}
	return c.run(ctx, session)
}

func passing(name string, category Category) *fakeCheck {
	return &fakeCheck{name: name, category: category}
}

func failing(name string, category Category, err error) *fakeCheck {
	return &fakeCheck{name: name, category: category, run: func(context.Context, *Session) error {
		return err
	}}
}

func names(checks []Check) []string {
	out := make([]string, 0, len(checks))
	for _, check := range checks {
		out = append(out, check.Name())
	}
	return out
}

func TestCategory_String(t *testing.T) {
	assert.Equal(t, "precondition", CategoryPrecondition.String())
	assert.Equal(t, "performance", CategoryPerformance.String())
	assert.Equal(t, "other", CategoryOther.String())
}

func TestReorder_PreconditionsFirst(t *testing.T) {
	input := []Check{
		passing("A", CategoryPerformance),
		passing("B", CategoryPrecondition),
		passing("C", CategoryOther),
		passing("D", CategoryPrecondition),
		passing("E", CategoryPerformance),
	}

	ordered := Reorder(input)

	assert.Equal(t, []string{"B", "D", "C", "A", "E"}, names(ordered))
}

func TestReorder_PreservesIntraGroupOrder(t *testing.T) {
	input := []Check{
		passing("perf-1", CategoryPerformance),
		passing("perf-2", CategoryPerformance),
		passing("pre-1", CategoryPrecondition),
		passing("perf-3", CategoryPerformance),
		passing("pre-2", CategoryPrecondition),
		passing("pre-3", CategoryPrecondition),
	}

	ordered := Reorder(input)

	assert.Equal(t, []string{"pre-1", "pre-2", "pre-3", "perf-1", "perf-2", "perf-3"}, names(ordered))
}

func TestReorder_EmptyAndSingleGroup(t *testing.T) {
	assert.Empty(t, Reorder(nil))

	onlyOther := []Check{
		passing("x", CategoryOther),
		passing("y", CategoryOther),
	}
	assert.Equal(t, []string{"x", "y"}, names(Reorder(onlyOther)))
}
