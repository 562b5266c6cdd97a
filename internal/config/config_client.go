package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// BaseURL is the sync relay endpoint used by the client.
	BaseURL string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// Path is the sqlite database file path (":memory:" for tests).
	Path string
}

// ClientSync contains the reconciliation daemon's settings.
type ClientSync struct {
	// Key is the sync key of the group this device belongs to.
	Key string
	// Enabled toggles the daemon; when false the daemon stays idle.
	Enabled bool
	// Interval is the period between reconciliation cycles.
	Interval time.Duration
	// DisableAfterNotFound stops the daemon after this many consecutive
	// unknown-sync-key aborts; zero retries forever.
	DisableAfterNotFound int
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains client transport addresses and timeouts.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Sync contains reconciliation daemon settings.
	Sync ClientSync
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			BaseURL:        cfg.Adapter.BaseURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			Path: cfg.Storage.Local.Path,
		},
		Sync: ClientSync{
			Key:                  cfg.Sync.Key,
			Enabled:              cfg.Sync.Enabled,
			Interval:             cfg.Sync.Interval,
			DisableAfterNotFound: cfg.Sync.DisableAfterNotFound,
		},
	}

	return clientCfg, clientCfg.validate()
}
