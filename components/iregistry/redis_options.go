package iregistry

import (
	"os"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"
)

const (
	defaultRedisAddr   = "127.0.0.1:6379"
	defaultRedisPrefix = "xrand:minted:"
)

type RedisOption func(o *redisOptions)

type redisOptions struct {
	addrs        []string
	db           int
	username     string
	password     string
	maxRetries   int
	poolSize     int
	minIdleConns int
	dialTimeout  time.Duration

	// 外部客户端优先
	client redis.UniversalClient

	prefix string
	// 命名空间过期时间，<= 0 不过期
	ttl time.Duration
}

func defaultRedisOptions() *redisOptions {
	return &redisOptions{
		addrs:        []string{defaultRedisAddr},
		maxRetries:   3,
		poolSize:     100,
		minIdleConns: 5,
		dialTimeout:  500 * time.Millisecond,
		prefix:       defaultRedisPrefix,
	}
}

func WithRedisAddrs(addrs ...string) RedisOption {
	return func(o *redisOptions) {
		if len(addrs) > 0 {
			o.addrs = addrs
		}
	}
}

func WithRedisDB(db int) RedisOption {
	return func(o *redisOptions) { o.db = db }
}

func WithRedisUsername(username string) RedisOption {
	return func(o *redisOptions) { o.username = username }
}

// WithRedisPassword 支持 "ENV:REDIS_PWD" 形式从环境变量读取
func WithRedisPassword(password string) RedisOption {
	if strings.HasPrefix(password, "ENV:") {
		envKey := strings.TrimPrefix(password, "ENV:")
		password = os.Getenv(envKey)
		if password == "" {
			log.Warn().Str("component", name).Str("env", envKey).Msg("redis password env is empty")
		}
	}
	return func(o *redisOptions) { o.password = password }
}

func WithRedisMaxRetries(n int) RedisOption {
	return func(o *redisOptions) { o.maxRetries = n }
}

func WithRedisPoolSize(n int) RedisOption {
	return func(o *redisOptions) { o.poolSize = n }
}

func WithRedisDialTimeout(t time.Duration) RedisOption {
	return func(o *redisOptions) { o.dialTimeout = t }
}

func WithRedisClient(client redis.UniversalClient) RedisOption {
	return func(o *redisOptions) { o.client = client }
}

func WithRedisPrefix(prefix string) RedisOption {
	return func(o *redisOptions) { o.prefix = prefix }
}

func WithRedisTTL(ttl time.Duration) RedisOption {
	return func(o *redisOptions) { o.ttl = ttl }
}
