package iserver

import (
	"time"

	"github.com/rs/zerolog"
)

type options struct {
	rate     float64
	burst    int
	cacheTTL time.Duration
	timeout  time.Duration
	logOn    bool
	log      *zerolog.Logger
}

type Option func(*options)

func defaultOptions() options {
	return options{
		cacheTTL: 2 * time.Second,
		timeout:  10 * time.Second,
		logOn:    true,
	}
}

// WithRate 每秒 r 个请求的令牌桶，r <= 0 不限流
func WithRate(r float64, burst int) Option {
	return func(o *options) {
		o.rate = r
		o.burst = burst
	}
}

// WithCacheTTL GET /v1/letters 与 /v1/registry/{ns} 的缓存时间
func WithCacheTTL(d time.Duration) Option {
	return func(o *options) {
		o.cacheTTL = d
	}
}

func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
	}
}

// WithRequestLog 是否逐条打印请求日志
func WithRequestLog(on bool) Option {
	return func(o *options) {
		o.logOn = on
	}
}

func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.log = &l
	}
}
