package iregistry

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/cute-angelia/go-xrand/syntax/irandom"
	"github.com/cute-angelia/go-xrand/syntax/isingleflight"
	"github.com/cute-angelia/go-xrand/utils/ilog"
)

// Registry 按命名空间发放唯一值：已发放的值作为排除集，生成后写回存储
type Registry struct {
	store Store
	loads isingleflight.Group[[]string]
	locks sync.Map // ns -> *sync.Mutex
	log   zerolog.Logger
}

func New(store Store) *Registry {
	return &Registry{
		store: store,
		log:   ilog.Component(name),
	}
}

func (r *Registry) lock(ns string) func() {
	v, _ := r.locks.LoadOrStore(ns, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// Mint 在 ns 中生成 count 个新的唯一值并保存。同一命名空间的 Mint 串行执行
func (r *Registry) Mint(ctx context.Context, ns string, src irandom.ByteSource, count, size int, alphabets []string) ([]string, error) {
	if !ValidNamespace(ns) {
		return nil, errors.Wrapf(ErrNamespace, "%q", ns)
	}

	unlock := r.lock(ns)
	defer unlock()

	start := time.Now()
	minted, err := r.store.Load(ctx, ns)
	if err != nil {
		return nil, err
	}

	values, err := irandom.UniquePatterns(src, count, size, alphabets, minted...)
	if err != nil {
		return nil, err
	}
	if err := r.store.Add(ctx, ns, values...); err != nil {
		return nil, err
	}
	// 进行中的 Exclusion 读到的是旧集合
	r.loads.Forget(ns)

	r.log.Debug().
		Str("ns", ns).
		Int("count", len(values)).
		Int("excluded", len(minted)).
		Dur("cost", time.Since(start)).
		Msg("minted")
	return values, nil
}

// Exclusion 返回 ns 当前的排除集，并发调用共享同一次读取。
// 共享读取不受单个调用方取消的影响
func (r *Registry) Exclusion(ctx context.Context, ns string) ([]string, error) {
	if !ValidNamespace(ns) {
		return nil, errors.Wrapf(ErrNamespace, "%q", ns)
	}
	loadCtx := context.WithoutCancel(ctx)
	vals, shared, err := r.loads.Do(ns, func() ([]string, error) {
		return r.store.Load(loadCtx, ns)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		// 共享结果只读
		vals = append([]string(nil), vals...)
	}
	return vals, nil
}

func (r *Registry) Count(ctx context.Context, ns string) (int64, error) {
	if !ValidNamespace(ns) {
		return 0, errors.Wrapf(ErrNamespace, "%q", ns)
	}
	return r.store.Count(ctx, ns)
}

func (r *Registry) Close() error {
	return r.store.Close()
}
