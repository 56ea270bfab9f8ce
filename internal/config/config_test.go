package config

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("serve", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(newFlags(t))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("MORPHY_MODEL", "/srv/wordnet.msgpack")
	t.Setenv("MORPHY_CACHE_SIZE", "128")
	t.Setenv("MORPHY_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load(newFlags(t))
	require.NoError(t, err)
	assert.Equal(t, "/srv/wordnet.msgpack", cfg.Model)
	assert.Equal(t, 128, cfg.CacheSize)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.Equal(t, ":8080", cfg.Addr)
}

func TestLoadFlagsOverrideEnv(t *testing.T) {
	t.Setenv("MORPHY_ADDR", ":9000")
	cfg, err := Load(newFlags(t, "--addr", "127.0.0.1:7000", "--model", "m.msgpack"))
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:7000", cfg.Addr)
	assert.Equal(t, "m.msgpack", cfg.Model)
}

func TestLoadInvalid(t *testing.T) {
	_, err := Load(newFlags(t, "--cache-size", "0"))
	assert.Error(t, err)

	_, err = Load(newFlags(t, "--model", ""))
	assert.Error(t, err)
}

func TestLoadWithoutFlags(t *testing.T) {
	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
