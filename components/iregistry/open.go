package iregistry

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const DriverMemory = "memory"

// Config 存储配置，driver: memory / redis / sqlite / mysql / postgres / sqlserver
type Config struct {
	Driver string        `mapstructure:"driver"`
	Dsn    string        `mapstructure:"dsn"`
	TTL    time.Duration `mapstructure:"ttl"`

	RedisAddrs    []string `mapstructure:"redis_addrs"`
	RedisDB       int      `mapstructure:"redis_db"`
	RedisUsername string   `mapstructure:"redis_username"`
	RedisPassword string   `mapstructure:"redis_password"`
	RedisPoolSize int      `mapstructure:"redis_pool_size"` // <= 0 使用默认值
}

// Open 按配置创建存储
func Open(ctx context.Context, cfg Config) (Store, error) {
	switch strings.ToLower(cfg.Driver) {
	case "", DriverMemory:
		return NewMemoryStore(cfg.TTL), nil
	case "redis":
		opts := []RedisOption{
			WithRedisAddrs(cfg.RedisAddrs...),
			WithRedisDB(cfg.RedisDB),
			WithRedisUsername(cfg.RedisUsername),
			WithRedisPassword(cfg.RedisPassword),
			WithRedisTTL(cfg.TTL),
		}
		if cfg.RedisPoolSize > 0 {
			opts = append(opts, WithRedisPoolSize(cfg.RedisPoolSize))
		}
		s, err := NewRedisStore(ctx, opts...)
		if err != nil {
			return nil, err
		}
		return s, nil
	case DriverSQLite, "sqlite3", DriverMysql, DriverPostgres, "postgresql", DriverSQLServer:
		s, err := NewGormStore(GormConfig{Driver: cfg.Driver, Dsn: cfg.Dsn})
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, errors.Wrapf(ErrUnknownDriver, "%q", cfg.Driver)
	}
}
