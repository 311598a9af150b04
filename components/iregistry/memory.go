package iregistry

import (
	"context"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
)

type memorySet struct {
	order []string
	index map[string]struct{}
}

// MemoryStore 进程内存储，命名空间在 ttl 内无写入后过期；ttl <= 0 表示永不过期
type MemoryStore struct {
	mu    sync.Mutex
	ttl   time.Duration
	cache *cache.Cache
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	expiration := ttl
	cleanup := ttl
	if ttl <= 0 {
		expiration = cache.NoExpiration
		cleanup = 0
	}
	return &MemoryStore{
		ttl:   expiration,
		cache: cache.New(expiration, cleanup),
	}
}

func (m *MemoryStore) get(ns string) *memorySet {
	if v, ok := m.cache.Get(ns); ok {
		return v.(*memorySet)
	}
	return nil
}

func (m *MemoryStore) Load(_ context.Context, ns string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	set := m.get(ns)
	if set == nil {
		return []string{}, nil
	}
	return append([]string(nil), set.order...), nil
}

func (m *MemoryStore) Add(_ context.Context, ns string, values ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	set := m.get(ns)
	if set == nil {
		set = &memorySet{index: make(map[string]struct{})}
	}
	batch := make(map[string]struct{}, len(values))
	for _, v := range values {
		_, stored := set.index[v]
		_, repeated := batch[v]
		if stored || repeated {
			return errors.Wrapf(ErrConflict, "%s/%s", ns, v)
		}
		batch[v] = struct{}{}
	}
	for _, v := range values {
		set.index[v] = struct{}{}
		set.order = append(set.order, v)
	}
	// 重新 Set 刷新过期时间
	m.cache.Set(ns, set, m.ttl)
	return nil
}

func (m *MemoryStore) Count(_ context.Context, ns string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if set := m.get(ns); set != nil {
		return int64(len(set.order)), nil
	}
	return 0, nil
}

func (m *MemoryStore) Close() error {
	m.cache.Flush()
	return nil
}
