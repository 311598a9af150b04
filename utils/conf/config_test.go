package conf

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg, err := LoadConfigFile(New(), "")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 100.0, cfg.Server.Rate)
	assert.Equal(t, 2*time.Second, cfg.Server.CacheTTL)
	assert.Equal(t, "crypto", cfg.Source.Kind)
	assert.Equal(t, 256, cfg.Source.Batch)
	assert.Equal(t, "memory", cfg.Registry.Driver)
	assert.Equal(t, []string{"127.0.0.1:6379"}, cfg.Registry.RedisAddrs)
	assert.Zero(t, cfg.Registry.RedisPoolSize)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadConfigByte(t *testing.T) {
	data := []byte(`
server:
  addr: ":9000"
  rate: 5
  cache_ttl: 500ms
source:
  kind: chacha20
registry:
  driver: redis
  ttl: 1h
  redis_addrs: ["10.0.0.1:6379", "10.0.0.2:6379"]
  redis_username: svc
  redis_pool_size: 16
log:
  level: debug
`)
	cfg, err := LoadConfigByte(New(), data, "yaml")
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Server.Addr)
	assert.Equal(t, 5.0, cfg.Server.Rate)
	assert.Equal(t, 200, cfg.Server.Burst)
	assert.Equal(t, 500*time.Millisecond, cfg.Server.CacheTTL)
	assert.Equal(t, "chacha20", cfg.Source.Kind)
	assert.Equal(t, time.Hour, cfg.Registry.TTL)
	assert.Equal(t, []string{"10.0.0.1:6379", "10.0.0.2:6379"}, cfg.Registry.RedisAddrs)
	assert.Equal(t, "svc", cfg.Registry.RedisUsername)
	assert.Equal(t, 16, cfg.Registry.RedisPoolSize)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("XRAND_SERVER_ADDR", "127.0.0.1:7000")
	t.Setenv("XRAND_SOURCE_BATCH", "0")
	t.Setenv("XRAND_REGISTRY_DRIVER", "sqlite")

	path := filepath.Join(t.TempDir(), "xrand.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"server":{"addr":":1"},"registry":{"dsn":"file.db"}}`), 0o644))

	cfg, err := LoadConfigFile(New(), path)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:7000", cfg.Server.Addr)
	assert.Equal(t, 0, cfg.Source.Batch)
	assert.Equal(t, "sqlite", cfg.Registry.Driver)
	assert.Equal(t, "file.db", cfg.Registry.Dsn)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := LoadConfigFile(New(), filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
