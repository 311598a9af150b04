package isource

import (
	"crypto/sha256"

	"golang.org/x/crypto/chacha20"
)

const chachaKeySize = chacha20.KeySize

// ChaCha20 以 ChaCha20 密钥流作为随机字节，相同 key/nonce 产生相同序列，适合可复现的测试数据
type ChaCha20 struct {
	cipher *chacha20.Cipher
	err    error
}

// NewChaCha20 key 必须 32 字节；nonce 为空时使用全 0 的 12 字节
func NewChaCha20(key, nonce []byte) *ChaCha20 {
	if nonce == nil {
		nonce = make([]byte, chacha20.NonceSize)
	}
	c, err := chacha20.NewUnauthenticatedCipher(key, nonce)
	return &ChaCha20{cipher: c, err: err}
}

// NewChaCha20FromSeed 用 sha256(seed) 作为 key
func NewChaCha20FromSeed(seed string) *ChaCha20 {
	key := sha256.Sum256([]byte(seed))
	return NewChaCha20(key[:], nil)
}

func (c *ChaCha20) Bytes(n int) ([]byte, error) {
	if c.err != nil {
		return nil, c.err
	}
	if n < 0 {
		return nil, ErrNegativeLength
	}
	b := make([]byte, n)
	c.cipher.XORKeyStream(b, b)
	return b, nil
}
