// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_PopulatesNestedFields(t *testing.T) {
	t.Setenv("APP_VERSION", "1.2.3")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://u:p@localhost:5432/syncrelay")
	t.Setenv("STORAGE_LOCAL_PATH", "/tmp/relay.db")
	t.Setenv("SERVER_ADDRESS", "0.0.0.0:8080")
	t.Setenv("SERVER_REQUEST_TIMEOUT", "30s")
	t.Setenv("ADAPTER_BASE_URL", "http://localhost:8080")
	t.Setenv("SYNC_KEY", "abc")
	t.Setenv("SYNC_ENABLED", "true")
	t.Setenv("SYNC_INTERVAL", "45s")
	t.Setenv("SYNC_DISABLE_AFTER_NOT_FOUND", "5")

	var cfg StructuredConfig
	require.NoError(t, parseEnv(&cfg))

	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "postgres://u:p@localhost:5432/syncrelay", cfg.Storage.DB.DSN)
	assert.Equal(t, "/tmp/relay.db", cfg.Storage.Local.Path)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "http://localhost:8080", cfg.Adapter.BaseURL)
	assert.Equal(t, "abc", cfg.Sync.Key)
	assert.True(t, cfg.Sync.Enabled)
	assert.Equal(t, 45*time.Second, cfg.Sync.Interval)
	assert.Equal(t, 5, cfg.Sync.DisableAfterNotFound)
}

func TestParseEnv_EmptyEnvironmentLeavesZeroValues(t *testing.T) {
	var cfg StructuredConfig
	require.NoError(t, parseEnv(&cfg))

	assert.Empty(t, cfg.Storage.DB.DSN)
	assert.Empty(t, cfg.Sync.Key)
	assert.False(t, cfg.Sync.Enabled)
	assert.Zero(t, cfg.Sync.Interval)
}

func TestParseEnv_InvalidDurationFails(t *testing.T) {
	t.Setenv("SYNC_INTERVAL", "not-a-duration")

	var cfg StructuredConfig
	assert.Error(t, parseEnv(&cfg))
}
