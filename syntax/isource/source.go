// Package isource 提供随机字节源：crypto、PCG、ChaCha20、固定循环序列，以及批量缓冲适配器。
//
// 所有类型都实现 Bytes(n int) ([]byte, error)，可直接作为 irandom.ByteSource 使用
package isource

import (
	"errors"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

// Source 随机字节源
type Source interface {
	Bytes(n int) ([]byte, error)
}

const (
	KindCrypto   = "crypto"
	KindFast     = "fast"
	KindChaCha20 = "chacha20"
)

var (
	ErrNegativeLength = errors.New("isource: negative length")
	ErrUnknownKind    = errors.New("isource: unknown source kind")
	ErrEmptySequence  = errors.New("isource: cycle sequence must not be empty")
	ErrEmptyRefill    = errors.New("isource: base source returned no bytes")
)

// Factory 按名称返回一个源构造函数。每次调用得到独立的源实例，batch > 0 时套上批量缓冲
func Factory(kind string, batch int) (func() Source, error) {
	var base func() Source
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "", KindCrypto:
		base = func() Source { return Crypto() }
	case KindFast:
		base = func() Source { return NewFast(seedFromCrypto()) }
	case KindChaCha20:
		base = func() Source {
			key := make([]byte, chachaKeySize)
			if _, err := Crypto().Read(key); err != nil {
				return failing{err}
			}
			return NewChaCha20(key, nil)
		}
	default:
		return nil, pkgerrors.Wrapf(ErrUnknownKind, "%q", kind)
	}

	if batch <= 0 {
		return base, nil
	}
	return func() Source { return NewBatch(base(), batch) }, nil
}

// failing 构造失败时返回的源，每次调用都返回同一个错误
type failing struct{ err error }

func (f failing) Bytes(int) ([]byte, error) { return nil, f.err }
