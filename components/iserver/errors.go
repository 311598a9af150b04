package iserver

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/cute-angelia/go-xrand/components/iregistry"
	"github.com/cute-angelia/go-xrand/syntax/irandom"
	"github.com/cute-angelia/go-xrand/utils/http/apiV3"
)

// toApiError 把领域错误映射为业务码，未识别的错误原样返回
func toApiError(err error) error {
	var apiErr *apiV3.ApiError
	var verrs validation.Errors
	switch {
	case err == nil:
		return nil
	case errors.As(err, &apiErr):
		return err
	case errors.As(err, &verrs):
		return apiV3.NewApiError(apiV3.CodeBadRequest, verrs.Error())
	case errors.Is(err, irandom.ErrInvalidRange):
		return apiV3.NewApiError(apiV3.CodeInvalidRange, err.Error())
	case errors.Is(err, irandom.ErrExhausted):
		return apiV3.NewApiError(apiV3.CodeExhausted, err.Error())
	case errors.Is(err, irandom.ErrInvalidSize),
		errors.Is(err, irandom.ErrEmptyAlphabet),
		errors.Is(err, irandom.ErrAlphabetTooLong),
		errors.Is(err, iregistry.ErrNamespace):
		return apiV3.NewApiError(apiV3.CodeBadRequest, err.Error())
	}
	return err
}
