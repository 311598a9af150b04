package irandom

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// Bytes 取 n 个字节，长度不足时返回 ErrShortRead
func Bytes(src ByteSource, n int) ([]byte, error) {
	if n < 0 {
		return nil, errors.Wrapf(ErrInvalidSize, "n=%d", n)
	}
	return draw(src, n)
}

// Uint8 取 1 字节
func Uint8(src ByteSource) (uint8, error) {
	b, err := draw(src, 1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// Uint16 取 2 字节，大端
func Uint16(src ByteSource) (uint16, error) {
	b, err := draw(src, 2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

// Uint32 取 4 字节，大端
func Uint32(src ByteSource) (uint32, error) {
	b, err := draw(src, 4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

// Uint64 取 8 字节，大端，覆盖完整的 [0, 2^64-1]
func Uint64(src ByteSource) (uint64, error) {
	b, err := draw(src, 8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b), nil
}
