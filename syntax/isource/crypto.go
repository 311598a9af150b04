package isource

import (
	crand "crypto/rand"
	"encoding/binary"
	"io"
)

// CryptoSource 基于 crypto/rand 的安全随机源，可并发使用
type CryptoSource struct{}

// Crypto 返回 crypto/rand 源
func Crypto() CryptoSource { return CryptoSource{} }

func (CryptoSource) Bytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrNegativeLength
	}
	b := make([]byte, n)
	if _, err := io.ReadFull(crand.Reader, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (CryptoSource) Read(p []byte) (int, error) {
	return io.ReadFull(crand.Reader, p)
}

func seedFromCrypto() uint64 {
	var b [8]byte
	if _, err := io.ReadFull(crand.Reader, b[:]); err != nil {
		return 0
	}
	return binary.BigEndian.Uint64(b[:])
}
