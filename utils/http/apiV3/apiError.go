package apiV3

import (
	"fmt"
	"net/http"
)

// 业务错误码
const (
	CodeOK           int32 = 0
	CodeInternal     int32 = -1
	CodeBadRequest   int32 = 4000
	CodeInvalidRange int32 = 4001
	CodeExhausted    int32 = 4002
	CodeNotFound     int32 = 4004
	CodeTooMany      int32 = 4029
)

// ApiError 带业务码的错误，Status 为 0 时按业务码推断 HTTP 状态
type ApiError struct {
	Code   int32
	Msg    string
	Status int
}

func NewApiError(code int32, msg string) *ApiError {
	return &ApiError{Code: code, Msg: msg}
}

func NewApiErrorf(code int32, format string, args ...any) *ApiError {
	return &ApiError{Code: code, Msg: fmt.Sprintf(format, args...)}
}

func (e *ApiError) Error() string {
	return e.Msg
}

func (e *ApiError) WithStatus(status int) *ApiError {
	c := *e
	c.Status = status
	return &c
}

func (e *ApiError) HTTPStatus() int {
	if e.Status != 0 {
		return e.Status
	}
	switch e.Code {
	case CodeOK:
		return http.StatusOK
	case CodeNotFound:
		return http.StatusNotFound
	case CodeTooMany:
		return http.StatusTooManyRequests
	case CodeExhausted:
		return http.StatusConflict
	}
	if e.Code >= 4000 && e.Code < 5000 {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
