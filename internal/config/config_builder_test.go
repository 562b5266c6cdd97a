package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigBuilder_MergePriority(t *testing.T) {
	// mergo keeps the first non-zero value, so earlier sources win for
	// fields they set and later sources fill the gaps.
	first := &StructuredConfig{Server: Server{HTTPAddress: "localhost:8080"}}
	second := &StructuredConfig{
		Server: Server{HTTPAddress: "localhost:9999", RequestTimeout: 30 * time.Second},
		Sync:   Sync{Key: "from-second"},
	}

	b := newConfigBuilder()
	b.configs = append(b.configs, first, second)

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "from-second", cfg.Sync.Key)
}

func TestConfigBuilder_BuildEmpty(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.NotNil(t, cfg)
}

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     ClientConfig
		wantErr error
	}{
		{
			name: "valid",
			cfg: ClientConfig{
				Adapter: ClientAdapter{BaseURL: "http://localhost:8080"},
				Sync:    ClientSync{Key: "k", Enabled: true, Interval: time.Second},
			},
		},
		{
			name:    "missing base url",
			cfg:     ClientConfig{},
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name: "enabled without key",
			cfg: ClientConfig{
				Adapter: ClientAdapter{BaseURL: "http://localhost:8080"},
				Sync:    ClientSync{Enabled: true},
			},
			wantErr: ErrInvalidSyncConfigs,
		},
		{
			name: "negative threshold",
			cfg: ClientConfig{
				Adapter: ClientAdapter{BaseURL: "http://localhost:8080"},
				Sync:    ClientSync{DisableAfterNotFound: -1},
			},
			wantErr: ErrInvalidSyncConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    NetAddress
		wantErr bool
	}{
		{name: "localhost", input: "localhost:8080", want: NetAddress{Host: "localhost", Port: 8080}},
		{name: "ip", input: "127.0.0.1:9090", want: NetAddress{Host: "127.0.0.1", Port: 9090}},
		{name: "no port", input: "localhost", wantErr: true},
		{name: "bad port", input: "localhost:zero", wantErr: true},
		{name: "negative port", input: "localhost:-1", wantErr: true},
		{name: "bad host", input: "not-an-ip:80", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, a)
			assert.Equal(t, tt.input, a.String())
		})
	}
}
