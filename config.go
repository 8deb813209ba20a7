package schedly

import (
	"fmt"

	"github.com/viant/schedly/policy"
)

// Config is a serialisable representation of the simulator configuration. It
// can be populated from JSON, YAML, environment variables, etc. The
// zero-value is useful – unset fields inherit their package defaults.
type Config struct {
	Scheduler policy.Config `json:"scheduler" yaml:"scheduler"`
}

// DefaultConfig returns a Config populated with the default simulation
// parameters (quantum 10, horizon 96). Callers may modify the returned struct
// before passing it to New via WithConfig.
func DefaultConfig() *Config {
	return &Config{Scheduler: *policy.ToConfig(policy.Default())}
}

// Validate returns aggregated error describing invalid settings or nil.
// Zero fields are valid - they inherit defaults.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	if c.Scheduler.Quantum < 0 {
		return fmt.Errorf("scheduler.quantum must not be negative, got %d", c.Scheduler.Quantum)
	}
	if c.Scheduler.Horizon < 0 {
		return fmt.Errorf("scheduler.horizon must not be negative, got %d", c.Scheduler.Horizon)
	}
	return nil
}
