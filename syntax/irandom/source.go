package irandom

import "github.com/pkg/errors"

// ByteSource 随机字节源：每次调用返回恰好 n 个新字节
type ByteSource interface {
	Bytes(n int) ([]byte, error)
}

// SourceFunc 函数适配 ByteSource
type SourceFunc func(n int) ([]byte, error)

func (f SourceFunc) Bytes(n int) ([]byte, error) { return f(n) }

// draw 取 n 个字节并校验长度，源自身的错误原样返回
func draw(src ByteSource, n int) ([]byte, error) {
	if n == 0 {
		return []byte{}, nil
	}
	b, err := src.Bytes(n)
	if err != nil {
		return nil, err
	}
	if len(b) < n {
		return nil, errors.Wrapf(ErrShortRead, "want %d got %d", n, len(b))
	}
	return b[:n], nil
}
