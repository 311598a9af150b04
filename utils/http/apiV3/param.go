package apiV3

import (
	"net/http"
	"strconv"

	"github.com/pkg/errors"
)

// QueryInt 获取十进制 int 参数，缺省时返回 def。前导 0 不表示八进制
func QueryInt(r *http.Request, key string, def int) (int, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, NewApiErrorf(CodeBadRequest, "%s: %q is not a decimal integer", key, v)
	}
	return n, nil
}

// RequireQueryInt 参数缺失时返回 CodeBadRequest
func RequireQueryInt(r *http.Request, key string) (int, error) {
	if !r.URL.Query().Has(key) {
		return 0, errors.WithStack(NewApiErrorf(CodeBadRequest, "%s: required", key))
	}
	return QueryInt(r, key, 0)
}
