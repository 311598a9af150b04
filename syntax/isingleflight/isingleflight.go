package isingleflight

import (
	"golang.org/x/sync/singleflight"
)

// Group 泛型封装 singleflight：同一个 key 并发调用时只执行一次 fn，其余调用共享结果
type Group[T any] struct {
	g singleflight.Group
}

// Do 返回值 shared 表示结果是否被多个调用方共享
func (g *Group[T]) Do(key string, fn func() (T, error)) (val T, shared bool, err error) {
	v, err, shared := g.g.Do(key, func() (interface{}, error) {
		return fn()
	})
	if err != nil {
		var zero T
		return zero, shared, err
	}
	return v.(T), shared, nil
}

// Forget 让下一次 Do 重新执行，不再等待进行中的调用
func (g *Group[T]) Forget(key string) {
	g.g.Forget(key)
}
