package iregistry

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// storeSuite 各存储实现共用的行为测试
type storeSuite struct {
	suite.Suite
	newStore func() Store
	store    Store
	ctx      context.Context
}

func (s *storeSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = s.newStore()
}

func (s *storeSuite) TearDownTest() {
	s.NoError(s.store.Close())
}

func (s *storeSuite) TestEmptyNamespace() {
	vals, err := s.store.Load(s.ctx, "empty")
	s.Require().NoError(err)
	s.Empty(vals)
	s.NotNil(vals)

	n, err := s.store.Count(s.ctx, "empty")
	s.Require().NoError(err)
	s.Zero(n)
}

func (s *storeSuite) TestAddKeepsOrder() {
	s.Require().NoError(s.store.Add(s.ctx, "orders", "c", "a"))
	s.Require().NoError(s.store.Add(s.ctx, "orders", "b"))

	vals, err := s.store.Load(s.ctx, "orders")
	s.Require().NoError(err)
	s.Equal([]string{"c", "a", "b"}, vals)

	n, err := s.store.Count(s.ctx, "orders")
	s.Require().NoError(err)
	s.Equal(int64(3), n)
}

func (s *storeSuite) TestAddConflict() {
	s.Require().NoError(s.store.Add(s.ctx, "orders", "a", "b"))

	err := s.store.Add(s.ctx, "orders", "x", "b")
	s.ErrorIs(err, ErrConflict)

	err = s.store.Add(s.ctx, "orders", "y", "y")
	s.ErrorIs(err, ErrConflict)

	// 冲突时整批不写入
	vals, err := s.store.Load(s.ctx, "orders")
	s.Require().NoError(err)
	s.Equal([]string{"a", "b"}, vals)
}

func (s *storeSuite) TestNamespacesIsolated() {
	s.Require().NoError(s.store.Add(s.ctx, "a", "1"))
	s.Require().NoError(s.store.Add(s.ctx, "b", "1"))

	n, err := s.store.Count(s.ctx, "a")
	s.Require().NoError(err)
	s.Equal(int64(1), n)
}

func (s *storeSuite) TestAddNothing() {
	s.Require().NoError(s.store.Add(s.ctx, "orders"))
	n, err := s.store.Count(s.ctx, "orders")
	s.Require().NoError(err)
	s.Zero(n)
}

func TestMemoryStore(t *testing.T) {
	suite.Run(t, &storeSuite{newStore: func() Store { return NewMemoryStore(0) }})
}

func TestRedisStore(t *testing.T) {
	mr := miniredis.RunT(t)
	suite.Run(t, &storeSuite{newStore: func() Store {
		mr.FlushAll()
		s, err := NewRedisStore(context.Background(), WithRedisAddrs(mr.Addr()))
		require.NoError(t, err)
		return s
	}})
}

func TestMemoryStoreTTL(t *testing.T) {
	s := NewMemoryStore(20 * time.Millisecond)
	require.NoError(t, s.Add(context.Background(), "short", "a"))
	time.Sleep(50 * time.Millisecond)

	n, err := s.Count(context.Background(), "short")
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestRedisStoreTTL(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	s, err := NewRedisStore(context.Background(), WithRedisClient(client), WithRedisTTL(time.Minute), WithRedisPrefix("t:"))
	require.NoError(t, err)
	require.NoError(t, s.Add(context.Background(), "ns", "a"))

	require.True(t, mr.Exists("t:ns"))
	require.Equal(t, time.Minute, mr.TTL("t:ns"))

	mr.FastForward(2 * time.Minute)
	require.False(t, mr.Exists("t:ns"))

	// 外部客户端不随 store 关闭
	require.NoError(t, s.Close())
	require.NoError(t, client.Ping(context.Background()).Err())
}

func TestRedisStoreUnreachable(t *testing.T) {
	_, err := NewRedisStore(context.Background(), WithRedisAddrs("127.0.0.1:1"), WithRedisDialTimeout(50*time.Millisecond), WithRedisMaxRetries(-1))
	require.Error(t, err)
}

func TestOpenRedisUserAuth(t *testing.T) {
	mr := miniredis.RunT(t)
	mr.RequireUserAuth("svc", "pw")
	cfg := Config{
		Driver:        "redis",
		RedisAddrs:    []string{mr.Addr()},
		RedisUsername: "svc",
		RedisPassword: "pw",
		RedisPoolSize: 4,
	}

	s, err := Open(context.Background(), cfg)
	require.NoError(t, err)
	defer s.Close()
	rs := s.(*RedisStore)
	assert.Equal(t, 4, rs.client.(*redis.Client).Options().PoolSize)
	require.NoError(t, s.Add(context.Background(), "ns", "a"))

	cfg.RedisUsername = "other"
	_, err = Open(context.Background(), cfg)
	assert.Error(t, err)
}

func TestValidNamespace(t *testing.T) {
	require.True(t, ValidNamespace("orders.v2_test-1"))
	require.False(t, ValidNamespace(""))
	require.False(t, ValidNamespace("a b"))
	require.False(t, ValidNamespace("a/b"))
	require.True(t, ValidNamespace(strings.Repeat("n", 64)))
	require.False(t, ValidNamespace(strings.Repeat("n", 65)))
}

func TestOpenUnknown(t *testing.T) {
	_, err := Open(context.Background(), Config{Driver: "etcd"})
	require.ErrorIs(t, err, ErrUnknownDriver)

	s, err := Open(context.Background(), Config{})
	require.NoError(t, err)
	require.IsType(t, &MemoryStore{}, s)
}

func TestDialectorFor(t *testing.T) {
	for _, driver := range []string{DriverMysql, DriverPostgres, DriverSQLServer} {
		_, err := dialectorFor(GormConfig{Driver: driver})
		assert.Error(t, err, driver)

		d, err := dialectorFor(GormConfig{Driver: driver, Dsn: "dsn"})
		require.NoError(t, err, driver)
		assert.Equal(t, driver, d.Name())
	}

	d, err := dialectorFor(GormConfig{Driver: DriverSQLite})
	require.NoError(t, err)
	assert.Equal(t, "sqlite", d.Name())

	_, err = dialectorFor(GormConfig{Driver: "oracle"})
	assert.ErrorIs(t, err, ErrUnknownDriver)
}
