package irandom

import (
	"math"
	"math/bits"

	"github.com/pkg/errors"
)

// MaxFormatBatches Format 最多抽取的批次数，超过返回 ErrExhausted
const MaxFormatBatches = 1024

const maxAlphabetLen = 256

// Format 按 nanoid 的掩码算法，从 alphabet 中均匀取 size 个字符
//
// 随机字节与掩码相与得到下标，下标越界的字节直接丢弃，不做取模
func Format(src ByteSource, alphabet string, size int) (string, error) {
	chars, err := toAlphabet(alphabet)
	if err != nil {
		return "", err
	}
	return format(src, chars, size)
}

func toAlphabet(alphabet string) ([]rune, error) {
	chars := []rune(alphabet)
	if len(chars) == 0 {
		return nil, ErrEmptyAlphabet
	}
	if len(chars) > maxAlphabetLen {
		return nil, errors.Wrapf(ErrAlphabetTooLong, "len=%d", len(chars))
	}
	return chars, nil
}

// alphabetMask 覆盖 [0, n-1] 的最小全 1 掩码，至少为 1
func alphabetMask(n int) int {
	return (2 << (bits.Len32(uint32(n-1)|1) - 1)) - 1
}

func format(src ByteSource, chars []rune, size int) (string, error) {
	if size < 0 {
		return "", errors.Wrapf(ErrInvalidSize, "size=%d", size)
	}
	if size == 0 {
		return "", nil
	}

	n := len(chars)
	mask := alphabetMask(n)
	step := int(math.Ceil(1.6 * float64(mask) * float64(size) / float64(n)))
	if step < 1 {
		step = 1
	}

	out := make([]rune, 0, size)
	for batch := 0; batch < MaxFormatBatches; batch++ {
		buf, err := draw(src, step)
		if err != nil {
			return "", err
		}
		for _, b := range buf {
			idx := int(b) & mask
			if idx >= n {
				continue
			}
			out = append(out, chars[idx])
			if len(out) == size {
				return string(out), nil
			}
		}
	}
	return "", errors.Wrapf(ErrExhausted, "format: %d batches of %d bytes", MaxFormatBatches, step)
}
