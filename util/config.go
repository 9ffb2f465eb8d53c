package util

import (
	"fmt"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Environment       string        `mapstructure:"ENVIRONMENT"`
	HTTPServerAddress string        `mapstructure:"HTTP_SERVER_ADDRESS"`
	RedisAddress      string        `mapstructure:"REDIS_ADDRESS"`
	AllowedOrigins    []string      `mapstructure:"ALLOWED_ORIGINS"`
	ParseCacheTTL     time.Duration `mapstructure:"PARSE_CACHE_TTL"`
	MaxInputBytes     int64         `mapstructure:"MAX_INPUT_BYTES"`
}

const (
	defaultParseCacheTTL = time.Hour
	defaultMaxInputBytes = 2 << 20
)

func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	viper.SetDefault("ENVIRONMENT", "production")
	viper.SetDefault("PARSE_CACHE_TTL", defaultParseCacheTTL)
	viper.SetDefault("MAX_INPUT_BYTES", defaultMaxInputBytes)

	err = viper.ReadInConfig()
	if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	if err != nil {
		return
	}

	err = config.Validate()
	return
}

// Validate checks the values which have no sensible fallback.
func (config *Config) Validate() error {
	if config.HTTPServerAddress == "" {
		return fmt.Errorf("HTTP_SERVER_ADDRESS is required")
	}

	if config.MaxInputBytes <= 0 {
		return fmt.Errorf("MAX_INPUT_BYTES must be positive, got %d", config.MaxInputBytes)
	}

	if config.ParseCacheTTL < 0 {
		return fmt.Errorf("PARSE_CACHE_TTL must not be negative, got %s", config.ParseCacheTTL)
	}

	return nil
}

// ExtractHostPort parses the HTTP server address and returns the host and port components.
// The address may be an URL or a bare "host:port". If no port is specified, port will be
// an empty string.
func (config *Config) ExtractHostPort() (host string, port string, err error) {
	hostPart := config.HTTPServerAddress

	if strings.Contains(hostPart, "://") {
		urlStr, parseErr := url.Parse(hostPart)
		if parseErr != nil {
			err = fmt.Errorf("error parsing http server url: %w", parseErr)
			return
		}
		hostPart = urlStr.Host
	}

	host, port, err = net.SplitHostPort(hostPart)
	if err != nil {
		// If there's no port, SplitHostPort returns an error,
		// in which case the host itself is the hostname.
		host = strings.TrimSuffix(strings.TrimPrefix(hostPart, "["), "]")
		port = ""
		err = nil
	}

	if host == "" || strings.ContainsAny(host, " \t\n/") {
		err = fmt.Errorf("invalid http server address: %q", config.HTTPServerAddress)
		return "", "", err
	}

	return
}

// ListenAddress returns the "host:port" the HTTP server binds to.
func (config *Config) ListenAddress() (string, error) {
	host, port, err := config.ExtractHostPort()
	if err != nil {
		return "", err
	}

	if port == "" {
		port = "80"
	}

	return net.JoinHostPort(host, port), nil
}
