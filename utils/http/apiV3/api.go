package apiV3

import (
	"errors"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-chi/chi/middleware"
	"github.com/rs/zerolog"

	"github.com/cute-angelia/go-xrand/utils/ilog"
)

const name = "apiV3"

type api struct {
	w http.ResponseWriter
	r *http.Request

	isLogOn bool // 打印日志
	log     zerolog.Logger
	start   time.Time

	reqStruct  any // 请求结构体
	respStruct Res // 返回结构体
}

// Res 标准JSON输出格式
type Res struct {
	// Code 响应的业务错误码。0表示业务执行成功，非0表示业务执行失败。
	Code int32 `json:"code"`
	// Msg 响应的参考消息
	Msg string `json:"msg"`
	// Data 响应的具体数据
	Data any `json:"data,omitempty"`
}

func NewApi(w http.ResponseWriter, r *http.Request, opts ...Option) *api {
	a := &api{
		w:       w,
		r:       r,
		isLogOn: true,
		log:     ilog.Component(name),
		start:   time.Now(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Decode request
func (that *api) Decode(v any) error {
	that.reqStruct = v
	return Decoder.Decode(that.r, v)
}

// Success 成功返回
func (that *api) Success(data any) {
	that.respStruct = Res{Code: CodeOK, Msg: "ok", Data: data}
	if that.isLogOn {
		that.logr(zerolog.DebugLevel)
	}
	that.write(http.StatusOK)
}

// Error 非 *ApiError 的错误按 CodeInternal 处理
func (that *api) Error(err error) {
	status := http.StatusInternalServerError
	that.respStruct = Res{Code: CodeInternal}
	if err != nil {
		var e *ApiError
		if errors.As(err, &e) {
			that.respStruct.Code = e.Code
			status = e.HTTPStatus()
		}
		that.respStruct.Msg = err.Error()
	}

	if that.isLogOn {
		level := zerolog.InfoLevel
		if status >= http.StatusInternalServerError {
			level = zerolog.ErrorLevel
		}
		that.logr(level)
	}
	that.write(status)
}

func (that *api) write(status int) {
	body, err := sonic.ConfigDefault.Marshal(that.respStruct)
	if err != nil {
		that.log.Error().Err(err).Msg("json encode")
		http.Error(that.w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	that.w.Header().Set("Content-Type", "application/json")
	that.w.WriteHeader(status)
	_, _ = that.w.Write(append(body, '\n'))
}

func (that *api) logr(level zerolog.Level) {
	that.log.WithLevel(level).
		Str("request_id", middleware.GetReqID(that.r.Context())).
		Str("method", that.r.Method).
		Str("path", that.r.URL.Path).
		Interface("req", that.reqStruct).
		Int32("code", that.respStruct.Code).
		Str("msg", that.respStruct.Msg).
		Dur("cost", time.Since(that.start)).
		Send()
}
