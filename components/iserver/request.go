package iserver

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/cute-angelia/go-xrand/utils/ibininfo"
)

const (
	MaxSize      = 4096
	MaxCount     = 10000
	MaxAlphabets = 64
)

type patternRequest struct {
	Size      int      `json:"size"`
	Alphabets []string `json:"alphabets"`
}

func (r patternRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Size, validation.Min(0), validation.Max(MaxSize)),
		validation.Field(&r.Alphabets, validation.Required, validation.Length(1, MaxAlphabets), validation.Each(validation.Required)),
	)
}

type uniqueRequest struct {
	Count     int      `json:"count"`
	Size      int      `json:"size"`
	Alphabets []string `json:"alphabets"`
	Exclude   []string `json:"exclude"`
	// Namespace 不为空时同时排除该命名空间已发放的值
	Namespace string `json:"namespace"`
}

func (r uniqueRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Count, validation.Min(0), validation.Max(MaxCount)),
		validation.Field(&r.Size, validation.Min(0), validation.Max(MaxSize)),
		validation.Field(&r.Alphabets, validation.Required, validation.Length(1, MaxAlphabets), validation.Each(validation.Required)),
		validation.Field(&r.Exclude, validation.Length(0, MaxCount*10)),
	)
}

type mintRequest struct {
	Count     int      `json:"count"`
	Size      int      `json:"size"`
	Alphabets []string `json:"alphabets"`
}

func (r mintRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Count, validation.Required, validation.Min(1), validation.Max(MaxCount)),
		validation.Field(&r.Size, validation.Required, validation.Min(1), validation.Max(MaxSize)),
		validation.Field(&r.Alphabets, validation.Required, validation.Length(1, MaxAlphabets), validation.Each(validation.Required)),
	)
}

type IntResponse struct {
	Value int `json:"value"`
}

type PatternResponse struct {
	Value string `json:"value"`
}

type ValuesResponse struct {
	Values []string `json:"values"`
}

type CountResponse struct {
	Namespace string `json:"namespace"`
	Count     int64  `json:"count"`
}

type LetterResponse struct {
	Name     string `json:"name"`
	Alphabet string `json:"alphabet"`
}

type HealthResponse struct {
	Status string        `json:"status"`
	Build  ibininfo.Info `json:"build"`
}
