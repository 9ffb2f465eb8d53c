package util

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestExtractHostPort(t *testing.T) {
	type tc struct {
		name      string
		addr      string
		wantHost  string
		wantPort  string
		wantError bool
	}

	tests := []tc{
		{
			name:     "with_scheme_host_and_port",
			addr:     "http://localhost:8080",
			wantHost: "localhost",
			wantPort: "8080",
		},
		{
			name:     "with_scheme_only_host",
			addr:     "http://localhost",
			wantHost: "localhost",
			wantPort: "",
		},
		{
			name:     "ipv4_with_scheme",
			addr:     "http://0.0.0.0:8080",
			wantHost: "0.0.0.0",
			wantPort: "8080",
		},
		{
			name:     "domain_with_scheme",
			addr:     "http://example.com:443",
			wantHost: "example.com",
			wantPort: "443",
		},
		{
			name:     "ipv6_with_scheme_host_and_port",
			addr:     "http://[::1]:9090",
			wantHost: "::1",
			wantPort: "9090",
		},
		{
			name:     "ipv6_with_scheme_only_host",
			addr:     "http://[::1]",
			wantHost: "::1",
			wantPort: "",
		},
		{
			name:     "no_scheme_host_and_port",
			addr:     "localhost:8080",
			wantHost: "localhost",
			wantPort: "8080",
		},
		{
			name:     "no_scheme_ipv6",
			addr:     "[::1]:9090",
			wantHost: "::1",
			wantPort: "9090",
		},
		{
			name:      "invalid_url_missing_host",
			addr:      "http://:8080",
			wantError: true,
		},
		{
			name:      "garbage_string",
			addr:      "not a url",
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{HTTPServerAddress: tt.addr}
			host, port, err := cfg.ExtractHostPort()

			if tt.wantError {
				require.Error(t, err, "expected error for addr=%q", tt.addr)
				return
			}

			require.NoError(t, err, "unexpected error for addr=%q", tt.addr)
			require.Equal(t, tt.wantHost, host, "wrong host for addr=%q", tt.addr)
			require.Equal(t, tt.wantPort, port, "wrong port for addr=%q", tt.addr)
		})
	}
}

func TestListenAddress(t *testing.T) {
	testCases := []struct {
		addr string
		want string
	}{
		{"http://localhost:8080", "localhost:8080"},
		{"http://localhost", "localhost:80"},
		{"0.0.0.0:9000", "0.0.0.0:9000"},
		{"http://[::1]:9090", "[::1]:9090"},
	}

	for _, tc := range testCases {
		t.Run(tc.addr, func(t *testing.T) {
			cfg := Config{HTTPServerAddress: tc.addr}
			got, err := cfg.ListenAddress()
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}

	cfg := Config{HTTPServerAddress: "not a url"}
	_, err := cfg.ListenAddress()
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := Config{HTTPServerAddress: "localhost:8080", MaxInputBytes: 10, ParseCacheTTL: time.Minute}
	require.NoError(t, valid.Validate())

	noAddr := valid
	noAddr.HTTPServerAddress = ""
	require.Error(t, noAddr.Validate())

	noLimit := valid
	noLimit.MaxInputBytes = 0
	require.Error(t, noLimit.Validate())

	negativeTTL := valid
	negativeTTL.ParseCacheTTL = -time.Second
	require.Error(t, negativeTTL.Validate())
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	env := strings.Join([]string{
		"ENVIRONMENT=development",
		"HTTP_SERVER_ADDRESS=http://localhost:8080",
		"REDIS_ADDRESS=localhost:6379",
		"ALLOWED_ORIGINS=http://localhost:3000,http://example.com",
		"PARSE_CACHE_TTL=15m",
	}, "\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.env"), []byte(env), 0o600))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	require.Equal(t, "development", cfg.Environment)
	require.Equal(t, "localhost:6379", cfg.RedisAddress)
	require.Equal(t, []string{"http://localhost:3000", "http://example.com"}, cfg.AllowedOrigins)
	require.Equal(t, 15*time.Minute, cfg.ParseCacheTTL)
	require.EqualValues(t, defaultMaxInputBytes, cfg.MaxInputBytes)
}
