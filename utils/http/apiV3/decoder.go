package apiV3

import (
	"io"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/gorilla/schema"
	"github.com/pkg/errors"
)

var Decoder = decoder{}
var queryDecoder = schema.NewDecoder()

// MaxBodyBytes 请求体上限
const MaxBodyBytes = 1 << 20

func init() {
	queryDecoder.IgnoreUnknownKeys(true)
	queryDecoder.SetAliasTag("json")
}

type decoder struct{}

// Decode GET 解析 query，其余按 Content-Type 解析 body。失败时返回 CodeBadRequest
func (d decoder) Decode(r *http.Request, v any) error {
	if err := d.decode(r, v); err != nil {
		return NewApiError(CodeBadRequest, err.Error())
	}
	return nil
}

func (d decoder) decode(r *http.Request, v any) error {
	if r.Method == http.MethodGet {
		return errors.Wrap(queryDecoder.Decode(v, r.URL.Query()), "query")
	}
	if r.Body == nil || r.Body == http.NoBody {
		return errors.New("request body is empty")
	}
	r.Body = http.MaxBytesReader(nil, r.Body, MaxBodyBytes)

	switch GetRequestContentType(r) {
	case ContentTypeJSON:
		data, err := io.ReadAll(r.Body)
		if err != nil {
			return errors.Wrap(err, "read body")
		}
		if len(data) == 0 {
			return errors.New("request body is empty")
		}
		return errors.Wrap(sonic.ConfigDefault.Unmarshal(data, v), "json")
	case ContentTypeForm:
		if err := r.ParseForm(); err != nil {
			return errors.Wrap(err, "form")
		}
		return errors.Wrap(queryDecoder.Decode(v, r.PostForm), "form")
	default:
		return errors.Errorf("unsupported content type %q", r.Header.Get("Content-Type"))
	}
}
