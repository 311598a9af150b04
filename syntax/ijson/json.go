package ijson

import (
	"io"

	jsoniter "github.com/json-iterator/go"
)

// 与标准库行为一致
var parser = jsoniter.ConfigCompatibleWithStandardLibrary

func Encode(v any) ([]byte, error) {
	return parser.Marshal(v)
}

func Decode(data []byte, v any) error {
	return parser.Unmarshal(data, v)
}

// Pretty 四空格缩进
func Pretty(v any) (string, error) {
	out, err := parser.MarshalIndent(v, "", "    ")
	return string(out), err
}

// Fprint 写入一行 JSON，pretty 为 true 时缩进输出
func Fprint(w io.Writer, v any, pretty bool) error {
	enc := parser.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "    ")
	}
	return enc.Encode(v)
}
