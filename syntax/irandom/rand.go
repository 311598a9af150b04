package irandom

import (
	"github.com/cute-angelia/go-xrand/syntax/isource"
)

// Rand 绑定一个随机源，转发到包级函数
type Rand struct {
	src ByteSource
}

func New(src ByteSource) *Rand {
	return &Rand{src: src}
}

func (r *Rand) Source() ByteSource { return r.src }

func (r *Rand) Bytes(n int) ([]byte, error) { return Bytes(r.src, n) }

func (r *Rand) Uint8() (uint8, error)   { return Uint8(r.src) }
func (r *Rand) Uint16() (uint16, error) { return Uint16(r.src) }
func (r *Rand) Uint32() (uint32, error) { return Uint32(r.src) }
func (r *Rand) Uint64() (uint64, error) { return Uint64(r.src) }

func (r *Rand) LessThan(n int) (int, error) { return LessThan(r.src, n) }

func (r *Rand) Range(min, max int) (int, error) { return Range(r.src, min, max) }

func (r *Rand) Format(alphabet string, size int) (string, error) {
	return Format(r.src, alphabet, size)
}

func (r *Rand) Pattern(size int, alphabets ...string) (string, error) {
	return Pattern(r.src, size, alphabets...)
}

func (r *Rand) UniquePatterns(count, size int, alphabets []string, exclude ...string) ([]string, error) {
	return UniquePatterns(r.src, count, size, alphabets, exclude...)
}

// std 默认使用 crypto/rand
var std = New(isource.Crypto())

// RandString 生成 [length] 位随机字符串，失败返回空串
func RandString(length int, letters Letter) string {
	if length <= 0 {
		return ""
	}
	s, err := std.Format(string(letters), length)
	if err != nil {
		return ""
	}
	return s
}

// RandInt 生成 [min, max) 之间的随机整数，min > max 时自动交换
func RandInt(min, max int) int {
	if min == max {
		return min
	}
	if max < min {
		min, max = max, min
	}
	v, err := std.Range(min, max-1)
	if err != nil {
		return min
	}
	return v
}

// RandBytes 生成随机字节切片（加密级安全）
func RandBytes(length int) []byte {
	if length < 1 {
		return []byte{}
	}
	b, err := std.Bytes(length)
	if err != nil {
		return nil
	}
	return b
}
