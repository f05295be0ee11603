package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, 24*14, cfg.Session.TTLHours)
	assert.Equal(t, 24*7, cfg.Session.SlidingHours)
	assert.Equal(t, "render:jobs", cfg.Redis.RenderQueue)
	assert.Equal(t, "render:results", cfg.Redis.ResultChannel)
	assert.Equal(t, 500, cfg.Matching.MaxCandidates)
	assert.Equal(t, 60, cfg.JWT.TTL)
}

func TestApplyDefaultsKeepsExplicitValues(t *testing.T) {
	cfg := &Config{}
	cfg.Session.TTLHours = 48
	cfg.Redis.RenderQueue = "custom:queue"
	cfg.Matching.MaxCandidates = 10
	applyDefaults(cfg)

	assert.Equal(t, 48, cfg.Session.TTLHours)
	assert.Equal(t, "custom:queue", cfg.Redis.RenderQueue)
	assert.Equal(t, 10, cfg.Matching.MaxCandidates)
}
