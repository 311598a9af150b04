package irandom

import "github.com/pkg/errors"

// Pattern 由一个或多个字母表生成长度为 size 的字符串
//
// 多个字母表且 size >= 字母表个数时，每个字母表至少出现一次，随后整体洗牌；
// size 小于字母表个数时无法保证，退化为在拼接后的字母表上直接 Format
func Pattern(src ByteSource, size int, alphabets ...string) (string, error) {
	p, err := compile(alphabets)
	if err != nil {
		return "", err
	}
	return p.generate(src, size)
}

// pattern 预先转换好的字母表，供 UniquePatterns 重复使用
type pattern struct {
	subs [][]rune
	flat []rune
}

func compile(alphabets []string) (*pattern, error) {
	if len(alphabets) == 0 {
		return nil, ErrEmptyAlphabet
	}
	p := &pattern{subs: make([][]rune, 0, len(alphabets))}
	for i, a := range alphabets {
		chars, err := toAlphabet(a)
		if err != nil {
			return nil, errors.Wrapf(err, "alphabet #%d", i)
		}
		p.subs = append(p.subs, chars)
		p.flat = append(p.flat, chars...)
	}
	if len(p.flat) > maxAlphabetLen {
		return nil, errors.Wrapf(ErrAlphabetTooLong, "combined len=%d", len(p.flat))
	}
	return p, nil
}

func (p *pattern) generate(src ByteSource, size int) (string, error) {
	if size < 0 {
		return "", errors.Wrapf(ErrInvalidSize, "size=%d", size)
	}
	if len(p.subs) == 1 || size < len(p.subs) {
		return format(src, p.flat, size)
	}

	out := make([]rune, 0, size)
	for _, sub := range p.subs {
		c, err := format(src, sub, 1)
		if err != nil {
			return "", err
		}
		out = append(out, []rune(c)...)
	}
	rest, err := format(src, p.flat, size-len(p.subs))
	if err != nil {
		return "", err
	}
	out = append(out, []rune(rest)...)

	if err := shuffle(src, out); err != nil {
		return "", err
	}
	return string(out), nil
}

// shuffle Fisher–Yates，下标由 LessThan 抽取
func shuffle(src ByteSource, s []rune) error {
	for i := len(s) - 1; i > 0; i-- {
		j, err := lessThan(src, uint64(i+1))
		if err != nil {
			return err
		}
		s[i], s[j] = s[j], s[i]
	}
	return nil
}
