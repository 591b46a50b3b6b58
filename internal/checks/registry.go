// Package checks provides the concrete test cases run against a drive and
// the registry that assembles them.
package checks

import (
	"github.com/txlab/go-usb-speedtest/internal/config"
	"github.com/txlab/go-usb-speedtest/internal/harness"
	"github.com/txlab/go-usb-speedtest/internal/speedtest"
)

// Registry manages all available checks. Registration order is preserved:
// the harness keeps each category's relative order when it reorders, so the
// registry must not shuffle.
type Registry struct {
	ordered []harness.Check
	byName  map[string]harness.Check
}

// NewRegistry creates a registry with the standard checks for one target
// directory: writability, free space, and input validation as preconditions,
// then one timed speed check per configured test size.
func NewRegistry(cfg *config.Config, target string, measureOpts *speedtest.Options) *Registry {
	r := &Registry{
		byName: make(map[string]harness.Check),
	}

	r.Register(NewWritableCheck(target))
	r.Register(NewFreeSpaceCheck(cfg, target))
	r.Register(NewSizeValidationCheck(target))

	for _, size := range cfg.TestSizesMB {
		r.Register(NewSpeedCheck(cfg, target, size, measureOpts))
	}

	return r
}

// Register adds a check to the registry, replacing any check with the same name
func (r *Registry) Register(check harness.Check) {
	if _, exists := r.byName[check.Name()]; !exists {
		r.ordered = append(r.ordered, check)
	} else {
		for i, existing := range r.ordered {
			if existing.Name() == check.Name() {
				r.ordered[i] = check
				break
			}
		}
	}
	r.byName[check.Name()] = check
}

// Get returns a check by name
func (r *Registry) Get(name string) (harness.Check, bool) {
	check, ok := r.byName[name]
	return check, ok
}

// Checks returns all registered checks in registration order
func (r *Registry) Checks() []harness.Check {
	return append([]harness.Check{}, r.ordered...)
}

// Names returns the names of all registered checks in registration order
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.ordered))
	for _, check := range r.ordered {
		names = append(names, check.Name())
	}
	return names
}
