package policy

import (
	"context"
	"fmt"

	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"gopkg.in/yaml.v3"
)

// Default simulation parameters.
const (
	DefaultQuantum = 10 // ticks a process may run before yielding to peers
	DefaultHorizon = 96 // total number of simulated ticks
)

// Policy holds the parameters governing a simulation run.
//
//   - Quantum is the maximum number of consecutive ticks a process may run
//     before being required to yield to same or lower priority peers.
//   - Horizon is the fixed length of the simulated time period; the simulation
//     stops at the horizon regardless of whether all processes finished.
//
// A nil *Policy means "use the defaults" and is therefore the zero-cost
// default.
type Policy struct {
	Quantum int
	Horizon int
}

// Default returns a policy populated with the default parameters.
func Default() *Policy {
	return &Policy{Quantum: DefaultQuantum, Horizon: DefaultHorizon}
}

// Validate returns an error describing invalid settings or nil.
func (p *Policy) Validate() error {
	if p == nil {
		return nil
	}
	if p.Quantum <= 0 {
		return fmt.Errorf("policy: quantum must be > 0, got %d", p.Quantum)
	}
	if p.Horizon <= 0 {
		return fmt.Errorf("policy: horizon must be > 0, got %d", p.Horizon)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Config <-> Policy converters (Config is the serialisable representation
// used when parameters come from a YAML/JSON document).
// ---------------------------------------------------------------------------

// Config represents the declarative, serialisable part of a Policy. Zero
// fields inherit the package defaults.
type Config struct {
	Quantum int `json:"quantum,omitempty" yaml:"quantum,omitempty"`
	Horizon int `json:"horizon,omitempty" yaml:"horizon,omitempty"`
}

// ToConfig converts a runtime Policy into a persistable Config.
func ToConfig(p *Policy) *Config {
	if p == nil {
		return nil
	}
	return &Config{Quantum: p.Quantum, Horizon: p.Horizon}
}

// FromConfig converts a stored Config back to a runtime Policy, filling in
// defaults for unset fields.
func FromConfig(c *Config) *Policy {
	ret := Default()
	if c == nil {
		return ret
	}
	if c.Quantum > 0 {
		ret.Quantum = c.Quantum
	}
	if c.Horizon > 0 {
		ret.Horizon = c.Horizon
	}
	return ret
}

// Load reads a YAML policy document from the supplied URL (file://, embed://
// or any other scheme the storage layer understands) and returns the
// resulting Policy.
func Load(ctx context.Context, URL string, options ...storage.Option) (*Policy, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to load policy %v: %w", URL, err)
	}
	config := &Config{}
	if err = yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to decode policy %v: %w", URL, err)
	}
	ret := FromConfig(config)
	if err = ret.Validate(); err != nil {
		return nil, err
	}
	return ret, nil
}

// ---------------------------------------------------------------------------
// Context helpers
// ---------------------------------------------------------------------------

type ctxKeyT struct{}

var ctxKey ctxKeyT

// WithPolicy embeds policy in ctx.
func WithPolicy(ctx context.Context, p *Policy) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxKey, p)
}

// FromContext extracts the policy from ctx; it returns nil when the context
// carries no policy.
func FromContext(ctx context.Context) *Policy {
	if ctx == nil {
		return nil
	}
	if v, ok := ctx.Value(ctxKey).(*Policy); ok {
		return v
	}
	return nil
}
