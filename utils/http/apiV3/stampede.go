package apiV3

import (
	"net/http"
	"time"

	"github.com/go-chi/stampede"
)

// CachedGet 同一路径与 query 的并发 GET 只执行一次，结果缓存 ttl
func CachedGet(cacheSize int, ttl time.Duration) func(next http.Handler) http.Handler {
	return stampede.HandlerWithKey(cacheSize, ttl, func(r *http.Request) uint64 {
		return stampede.BytesToHash(
			[]byte(r.Method),
			[]byte(r.URL.Path),
			[]byte(r.URL.RawQuery),
		)
	})
}
