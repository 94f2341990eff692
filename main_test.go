package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/khedhrije/kingdom-dashboard/internal/configuration"
)

func TestApplyBuildInfo(t *testing.T) {
	cfg := &configuration.AppConfig{AppVersion: "dev", AppRevision: "unknown", AppBuiltAt: "unknown"}

	applyBuildInfo(cfg)
	assert.Equal(t, "dev", cfg.AppVersion)

	version, revision = "1.4.0", "9f2c1e0"
	t.Cleanup(func() { version, revision = "", "" })

	applyBuildInfo(cfg)
	assert.Equal(t, "1.4.0", cfg.AppVersion)
	assert.Equal(t, "9f2c1e0", cfg.AppRevision)
	assert.Equal(t, "unknown", cfg.AppBuiltAt)
}
