package isource

// Cycle 循环返回固定序列，用于确定性测试
type Cycle struct {
	seq []byte
	pos int
}

func NewCycle(seq []byte) *Cycle {
	return &Cycle{seq: append([]byte(nil), seq...)}
}

// Counting 0,1,2,...,255,0,1,...
func Counting() *Cycle {
	seq := make([]byte, 256)
	for i := range seq {
		seq[i] = byte(i)
	}
	return &Cycle{seq: seq}
}

func (c *Cycle) Bytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrNegativeLength
	}
	if len(c.seq) == 0 {
		if n == 0 {
			return []byte{}, nil
		}
		return nil, ErrEmptySequence
	}
	out := make([]byte, n)
	for i := range out {
		out[i] = c.seq[c.pos]
		c.pos = (c.pos + 1) % len(c.seq)
	}
	return out, nil
}
