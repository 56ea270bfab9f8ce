// Package config holds the settings of the morphy HTTP server, read from
// command-line flags and MORPHY_* environment variables.
package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/wordnet-go/morphy"
)

// EnvPrefix is prepended to every environment variable name, e.g.
// MORPHY_CACHE_SIZE for the cache-size setting.
const EnvPrefix = "MORPHY"

const (
	keyAddr           = "addr"
	keyModel          = "model"
	keyCacheSize      = "cache-size"
	keyAllowedOrigins = "allowed-origins"
)

// Config is the server configuration.
type Config struct {
	// Addr is the listen address.
	Addr string
	// Model is the path of the snapshot to serve.
	Model string
	// CacheSize is the number of resolve results kept in memory.
	CacheSize int
	// AllowedOrigins lists the CORS origins; "*" allows any.
	AllowedOrigins []string
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Addr:           ":8080",
		Model:          "model.msgpack",
		CacheSize:      morphy.DefaultCacheSize,
		AllowedOrigins: []string{"*"},
	}
}

// RegisterFlags adds the server flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.String(keyAddr, d.Addr, "listen address")
	fs.String(keyModel, d.Model, "path to the snapshot file written by 'morphy generate'")
	fs.Int(keyCacheSize, d.CacheSize, "number of resolve results to cache")
	fs.String(keyAllowedOrigins, strings.Join(d.AllowedOrigins, ","), "comma-separated CORS origins")
}

// Load reads the configuration. Flags set on the command line win over
// environment variables, which win over defaults.
func Load(fs *pflag.FlagSet) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	d := Default()
	v.SetDefault(keyAddr, d.Addr)
	v.SetDefault(keyModel, d.Model)
	v.SetDefault(keyCacheSize, d.CacheSize)
	v.SetDefault(keyAllowedOrigins, strings.Join(d.AllowedOrigins, ","))

	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return Config{}, errors.Wrap(err, "bind flags")
		}
	}

	cfg := Config{
		Addr:           v.GetString(keyAddr),
		Model:          v.GetString(keyModel),
		CacheSize:      v.GetInt(keyCacheSize),
		AllowedOrigins: splitList(v.GetString(keyAllowedOrigins)),
	}
	return cfg, cfg.Validate()
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Model == "" {
		return errors.New("config: model path is empty")
	}
	if c.CacheSize <= 0 {
		return errors.Errorf("config: cache size must be positive, got %d", c.CacheSize)
	}
	if c.Addr == "" {
		return errors.New("config: listen address is empty")
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
