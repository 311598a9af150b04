package apiV3

import "github.com/rs/zerolog"

// Option 定義函數類型
type Option func(*api)

// WithLog 設置日誌開關
func WithLog(on bool) Option {
	return func(a *api) {
		a.isLogOn = on
	}
}

// WithLogger 替換默認的 apiV3 日誌
func WithLogger(l zerolog.Logger) Option {
	return func(a *api) {
		a.log = l
	}
}
