package schedly

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/schedly/policy"
)

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, (*Config)(nil).Validate())
	assert.NoError(t, (&Config{}).Validate())
	assert.NoError(t, DefaultConfig().Validate())
	assert.ErrorContains(t, (&Config{Scheduler: policy.Config{Quantum: -1}}).Validate(), "must not be negative, got -1")
	assert.ErrorContains(t, (&Config{Scheduler: policy.Config{Horizon: -5}}).Validate(), "must not be negative, got -5")
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	assert.Equal(t, policy.DefaultQuantum, config.Scheduler.Quantum)
	assert.Equal(t, policy.DefaultHorizon, config.Scheduler.Horizon)
}
