package irandom

import "github.com/pkg/errors"

const (
	// MinUniqueAttempts UniquePatterns 的最少尝试次数
	MinUniqueAttempts = 1000
	// UniqueAttemptsPerValue 每个目标值分配的尝试次数
	UniqueAttemptsPerValue = 100
)

// UniquePatterns 生成 count 个互不相同、且不在 exclude 中的 Pattern
//
// 返回顺序为成功插入的顺序。可表示的字符串总数不足 count 时直接返回 ErrExhausted，
// 尝试次数超过 max(MinUniqueAttempts, count*UniqueAttemptsPerValue) 时同样返回 ErrExhausted
func UniquePatterns(src ByteSource, count, size int, alphabets []string, exclude ...string) ([]string, error) {
	p, err := compile(alphabets)
	if err != nil {
		return nil, err
	}
	if size < 0 {
		return nil, errors.Wrapf(ErrInvalidSize, "size=%d", size)
	}
	if count <= 0 {
		return []string{}, nil
	}
	if !representable(len(distinct(p.flat)), size, count) {
		return nil, errors.Wrapf(ErrExhausted, "fewer than %d strings of length %d", count, size)
	}

	excluded := make(map[string]struct{}, len(exclude))
	for _, e := range exclude {
		excluded[e] = struct{}{}
	}

	budget := count * UniqueAttemptsPerValue
	if budget < MinUniqueAttempts {
		budget = MinUniqueAttempts
	}

	seen := make(map[string]struct{}, count)
	out := make([]string, 0, count)
	for attempt := 0; attempt < budget; attempt++ {
		s, err := p.generate(src, size)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[s]; ok {
			continue
		}
		if _, ok := excluded[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
		if len(out) == count {
			return out, nil
		}
	}
	return nil, errors.Wrapf(ErrExhausted, "unique: %d of %d after %d attempts", len(out), count, budget)
}

func distinct(chars []rune) map[rune]struct{} {
	m := make(map[rune]struct{}, len(chars))
	for _, c := range chars {
		m[c] = struct{}{}
	}
	return m
}

// representable 判断 base^size >= count，不做会溢出的乘法
func representable(base, size, count int) bool {
	if base <= 0 {
		return count <= 0
	}
	total := 1
	for i := 0; i < size; i++ {
		if total >= count || total > (count-1)/base {
			return true
		}
		total *= base
	}
	return total >= count
}
