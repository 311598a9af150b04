package iclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/guonaihong/gout"
	"github.com/guonaihong/gout/dataflow"
	"github.com/pkg/errors"

	"github.com/cute-angelia/go-xrand/components/iregistry"
	"github.com/cute-angelia/go-xrand/syntax/irandom"
	"github.com/cute-angelia/go-xrand/utils/http/apiV3"
)

// APIError 服务端返回的非 0 业务码
type APIError struct {
	Status int
	Code   int32
	Msg    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("xrand: code %d (http %d): %s", e.Code, e.Status, e.Msg)
}

// Unwrap 让 errors.Is 可以直接判断 irandom 的错误
func (e *APIError) Unwrap() error {
	switch e.Code {
	case apiV3.CodeInvalidRange:
		return irandom.ErrInvalidRange
	case apiV3.CodeExhausted:
		return irandom.ErrExhausted
	}
	return nil
}

type envelope[T any] struct {
	Code int32  `json:"code"`
	Msg  string `json:"msg"`
	Data T      `json:"data"`
}

type Client struct {
	base    string
	hc      *http.Client
	timeout time.Duration
	retry   int
	debug   bool
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.hc = hc
	}
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithRetry GET 请求失败时的重试次数，POST 不重试
func WithRetry(n int) Option {
	return func(c *Client) {
		c.retry = n
	}
}

func WithDebug(on bool) Option {
	return func(c *Client) {
		c.debug = on
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		base:    strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{},
		timeout: 10 * time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) flow(ctx context.Context, method, path string) *dataflow.DataFlow {
	g := gout.New(c.hc)
	var df *dataflow.DataFlow
	switch method {
	case http.MethodPost:
		df = g.POST(c.base + path)
	default:
		df = g.GET(c.base + path)
	}
	return df.WithContext(ctx).SetTimeout(c.timeout).Debug(c.debug)
}

func do[T any](c *Client, ctx context.Context, method, path string, query, body any) (T, error) {
	var (
		env    envelope[T]
		status int
	)
	df := c.flow(ctx, method, path)
	if query != nil {
		df = df.SetQuery(query)
	}
	if body != nil {
		df = df.SetJSON(body)
	}
	df = df.BindJSON(&env).Code(&status)

	var err error
	if method == http.MethodGet && c.retry > 0 {
		err = df.F().Retry().Attempt(c.retry).WaitTime(100 * time.Millisecond).Do()
	} else {
		err = df.Do()
	}
	if err != nil {
		var zero T
		return zero, errors.Wrapf(err, "xrand: %s %s", method, path)
	}
	if env.Code != apiV3.CodeOK || status >= http.StatusBadRequest {
		var zero T
		return zero, &APIError{Status: status, Code: env.Code, Msg: env.Msg}
	}
	return env.Data, nil
}

// Int 返回 [min, max] 内的整数
func (c *Client) Int(ctx context.Context, min, max int) (int, error) {
	out, err := do[struct {
		Value int `json:"value"`
	}](c, ctx, http.MethodGet, "/v1/int", gout.H{"min": min, "max": max}, nil)
	return out.Value, err
}

func (c *Client) Pattern(ctx context.Context, size int, alphabets ...string) (string, error) {
	out, err := do[struct {
		Value string `json:"value"`
	}](c, ctx, http.MethodPost, "/v1/pattern", nil, gout.H{"size": size, "alphabets": alphabets})
	return out.Value, err
}

type UniqueOptions struct {
	Exclude []string
	// Namespace 服务端额外排除该命名空间已发放的值
	Namespace string
}

func (c *Client) Unique(ctx context.Context, count, size int, alphabets []string, opt UniqueOptions) ([]string, error) {
	body := gout.H{"count": count, "size": size, "alphabets": alphabets}
	if len(opt.Exclude) > 0 {
		body["exclude"] = opt.Exclude
	}
	if opt.Namespace != "" {
		body["namespace"] = opt.Namespace
	}
	out, err := do[struct {
		Values []string `json:"values"`
	}](c, ctx, http.MethodPost, "/v1/unique", nil, body)
	return out.Values, err
}

func (c *Client) Mint(ctx context.Context, ns string, count, size int, alphabets []string) ([]string, error) {
	if !iregistry.ValidNamespace(ns) {
		return nil, errors.Wrapf(iregistry.ErrNamespace, "%q", ns)
	}
	out, err := do[struct {
		Values []string `json:"values"`
	}](c, ctx, http.MethodPost, "/v1/registry/"+url.PathEscape(ns)+"/mint", nil,
		gout.H{"count": count, "size": size, "alphabets": alphabets})
	return out.Values, err
}

func (c *Client) Count(ctx context.Context, ns string) (int64, error) {
	if !iregistry.ValidNamespace(ns) {
		return 0, errors.Wrapf(iregistry.ErrNamespace, "%q", ns)
	}
	out, err := do[struct {
		Count int64 `json:"count"`
	}](c, ctx, http.MethodGet, "/v1/registry/"+url.PathEscape(ns), nil, nil)
	return out.Count, err
}

// Letters 名称 -> 字母表
func (c *Client) Letters(ctx context.Context) (map[string]string, error) {
	out, err := do[[]struct {
		Name     string `json:"name"`
		Alphabet string `json:"alphabet"`
	}](c, ctx, http.MethodGet, "/v1/letters", nil, nil)
	if err != nil {
		return nil, err
	}
	m := make(map[string]string, len(out))
	for _, l := range out {
		m[l.Name] = l.Alphabet
	}
	return m, nil
}
