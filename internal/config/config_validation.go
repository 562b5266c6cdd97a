// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Intentionally permissive: the server and client validate their own views
// ([ClientConfig.validate]) because the same structured config feeds both
// binaries and most fields are optional for one of them.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.BaseURL == "" {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Sync.Enabled && cfg.Sync.Key == "" {
		return ErrInvalidSyncConfigs
	}

	if cfg.Sync.Interval < 0 || cfg.Sync.DisableAfterNotFound < 0 {
		return ErrInvalidSyncConfigs
	}

	return nil
}
