package listener

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_SetDefaults(t *testing.T) {
	t.Parallel()

	t.Run("sets default address when empty", func(t *testing.T) {
		t.Parallel()

		cfg := &Config{}
		cfg.SetDefaults()

		assert.Equal(t, DefaultAddress, cfg.Address)
	})

	t.Run("does not override existing address", func(t *testing.T) {
		t.Parallel()

		cfg := &Config{Address: "127.0.0.1:9090"}
		cfg.SetDefaults()

		assert.Equal(t, "127.0.0.1:9090", cfg.Address)
	})
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{name: "default address", cfg: Config{Address: DefaultAddress}},
		{name: "localhost", cfg: Config{Address: "localhost:0"}},
		{name: "ipv6 loopback", cfg: Config{Address: "[::1]:7420"}},
		{name: "remote allowed", cfg: Config{Address: "0.0.0.0:7420", AllowRemote: true}},
		{name: "empty address", cfg: Config{}, wantErr: ErrEmptyAddress},
		{name: "missing port", cfg: Config{Address: "127.0.0.1"}, wantErr: ErrInvalidAddress},
		{name: "all interfaces", cfg: Config{Address: ":7420"}, wantErr: ErrRemoteAddress},
		{name: "remote host", cfg: Config{Address: "10.0.0.5:7420"}, wantErr: ErrRemoteAddress},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.cfg.Validate()
			if tt.wantErr == nil {
				require.NoError(t, err)

				return
			}

			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestOptions(t *testing.T) {
	t.Parallel()

	var cfg Config

	WithAddress("127.0.0.1:1")(&cfg)
	WithAllowRemote()(&cfg)

	assert.Equal(t, Config{Address: "127.0.0.1:1", AllowRemote: true}, cfg)

	WithAddress("")(&cfg)
	assert.Empty(t, cfg.Address, "WithAddress should set address even when empty")
}
