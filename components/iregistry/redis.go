package iregistry

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
)

// addScript 原子写入：任一成员已存在则不写入并返回 0
var addScript = redis.NewScript(`
local key = KEYS[1]
for i, v in ipairs(ARGV) do
	if i > 1 and redis.call("SISMEMBER", key, v) == 1 then
		return 0
	end
end
for i, v in ipairs(ARGV) do
	if i > 1 then
		redis.call("SADD", key, v)
		redis.call("RPUSH", key .. ":order", v)
	end
end
local ttl = tonumber(ARGV[1])
if ttl > 0 then
	redis.call("PEXPIRE", key, ttl)
	redis.call("PEXPIRE", key .. ":order", ttl)
end
return 1
`)

// RedisStore 每个命名空间一个 SET 做去重，一个 LIST 保存写入顺序
type RedisStore struct {
	client redis.UniversalClient
	opts   *redisOptions
}

func NewRedisStore(ctx context.Context, opts ...RedisOption) (*RedisStore, error) {
	o := defaultRedisOptions()
	for _, opt := range opts {
		opt(o)
	}

	client := o.client
	if client == nil {
		client = redis.NewUniversalClient(&redis.UniversalOptions{
			Addrs:        o.addrs,
			DB:           o.db,
			Username:     o.username,
			Password:     o.password,
			MaxRetries:   o.maxRetries,
			PoolSize:     o.poolSize,
			MinIdleConns: o.minIdleConns,
			DialTimeout:  o.dialTimeout,
		})
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		if o.client == nil {
			_ = client.Close()
		}
		return nil, errors.Wrapf(err, "iregistry: redis ping %v", o.addrs)
	}
	return &RedisStore{client: client, opts: o}, nil
}

func (s *RedisStore) key(ns string) string {
	return s.opts.prefix + ns
}

func (s *RedisStore) Load(ctx context.Context, ns string) ([]string, error) {
	vals, err := s.client.LRange(ctx, s.key(ns)+":order", 0, -1).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, errors.Wrapf(err, "iregistry: load %s", ns)
	}
	if vals == nil {
		vals = []string{}
	}
	return vals, nil
}

func (s *RedisStore) Add(ctx context.Context, ns string, values ...string) error {
	if len(values) == 0 {
		return nil
	}
	if hasRepeat(values) {
		return errors.Wrapf(ErrConflict, "%s: repeated value in batch", ns)
	}

	args := make([]interface{}, 0, len(values)+1)
	args = append(args, s.opts.ttl.Milliseconds())
	for _, v := range values {
		args = append(args, v)
	}
	ok, err := addScript.Run(ctx, s.client, []string{s.key(ns)}, args...).Int()
	if err != nil {
		return errors.Wrapf(err, "iregistry: add %s", ns)
	}
	if ok == 0 {
		return errors.Wrapf(ErrConflict, "%s", ns)
	}
	return nil
}

func (s *RedisStore) Count(ctx context.Context, ns string) (int64, error) {
	n, err := s.client.SCard(ctx, s.key(ns)).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return 0, errors.Wrapf(err, "iregistry: count %s", ns)
	}
	return n, nil
}

func (s *RedisStore) Close() error {
	// 外部传入的客户端由调用方关闭
	if s.opts.client != nil {
		return nil
	}
	return s.client.Close()
}

func hasRepeat(values []string) bool {
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			return true
		}
		seen[v] = struct{}{}
	}
	return false
}
