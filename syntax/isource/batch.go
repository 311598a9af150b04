package isource

// DefaultBatchSize NewBatch 传入 size <= 0 时使用
const DefaultBatchSize = 256

// Batch 批量缓冲适配器：每次按固定大小向底层源取数，再按需切分。
// 字节顺序与底层源一致。不可并发使用
type Batch struct {
	base   Source
	size   int
	buf    []byte
	offset int
}

func NewBatch(base Source, size int) *Batch {
	if size <= 0 {
		size = DefaultBatchSize
	}
	return &Batch{base: base, size: size}
}

func (b *Batch) Bytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrNegativeLength
	}
	out := make([]byte, 0, n)
	for len(out) < n {
		if b.offset >= len(b.buf) {
			if err := b.refill(); err != nil {
				return nil, err
			}
		}
		take := min(n-len(out), len(b.buf)-b.offset)
		out = append(out, b.buf[b.offset:b.offset+take]...)
		b.offset += take
	}
	return out, nil
}

func (b *Batch) refill() error {
	buf, err := b.base.Bytes(b.size)
	if err != nil {
		return err
	}
	if len(buf) == 0 {
		return ErrEmptyRefill
	}
	b.buf = buf
	b.offset = 0
	return nil
}
