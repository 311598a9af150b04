package apiV3

import (
	"context"
	"net/http"
	"strings"
)

type contextKey struct {
	name string
}

func (k *contextKey) String() string {
	return "apiV3 context value " + k.name
}

var ContentTypeCtxKey = &contextKey{"ContentType"}

// TypeContent 请求体类型
type TypeContent int

const (
	ContentTypeUnknown TypeContent = iota
	ContentTypeJSON
	ContentTypeForm
)

func GetContentType(s string) TypeContent {
	// 取分号前的主体部分
	s, _, _ = strings.Cut(s, ";")
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "application/json", "text/javascript", "":
		return ContentTypeJSON
	case "application/x-www-form-urlencoded":
		return ContentTypeForm
	default:
		return ContentTypeUnknown
	}
}

// SetContentType 强制路由使用指定的请求体类型
func SetContentType(contentType TypeContent) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r = r.WithContext(context.WithValue(r.Context(), ContentTypeCtxKey, contentType))
			next.ServeHTTP(w, r)
		})
	}
}

func GetRequestContentType(r *http.Request) TypeContent {
	if contentType, ok := r.Context().Value(ContentTypeCtxKey).(TypeContent); ok {
		return contentType
	}
	return GetContentType(r.Header.Get("Content-Type"))
}
