package isource

import "io"

type readerSource struct {
	r io.Reader
}

// FromReader 把 io.Reader 包装成源，读不满 n 字节时返回 io.ErrUnexpectedEOF
func FromReader(r io.Reader) Source {
	return readerSource{r: r}
}

func (s readerSource) Bytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrNegativeLength
	}
	b := make([]byte, n)
	if _, err := io.ReadFull(s.r, b); err != nil {
		return nil, err
	}
	return b, nil
}
