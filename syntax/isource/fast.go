package isource

import (
	"encoding/binary"
	"math/rand/v2"
)

// Fast 基于 PCG 的非加密随机源，同一 seed 产生同一序列。不能用于 token，不可并发使用
type Fast struct {
	pcg  *rand.PCG
	rest []byte
}

func NewFast(seed uint64) *Fast {
	return &Fast{pcg: rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)}
}

func (f *Fast) Bytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrNegativeLength
	}
	out := make([]byte, 0, n)
	for len(out) < n {
		if len(f.rest) == 0 {
			var word [8]byte
			binary.BigEndian.PutUint64(word[:], f.pcg.Uint64())
			f.rest = word[:]
		}
		take := min(n-len(out), len(f.rest))
		out = append(out, f.rest[:take]...)
		f.rest = f.rest[take:]
	}
	return out, nil
}
