package irandom

import "github.com/pkg/errors"

// MaxSampleAttempts 拒绝采样的重试上限。用尽后返回最后一次抽样取模的结果，
// 偏差有界，不会无限循环
const MaxSampleAttempts = 100

const span32 = uint64(1) << 32

// LessThan 返回 [0, n) 内均匀分布的整数，n 取值 (0, 2^32]
func LessThan(src ByteSource, n int) (int, error) {
	if n <= 0 || uint64(n) > span32 {
		return 0, errors.Wrapf(ErrInvalidRange, "n=%d", n)
	}
	v, err := lessThan(src, uint64(n))
	if err != nil {
		return 0, err
	}
	return int(v), nil
}

func lessThan(src ByteSource, n uint64) (uint64, error) {
	// 不超过 2^32 的最大 n 的倍数
	limit := span32 / n * n

	var s uint64
	for i := 0; i < MaxSampleAttempts; i++ {
		v, err := Uint32(src)
		if err != nil {
			return 0, err
		}
		s = uint64(v)
		if s < limit {
			break
		}
	}
	return s % n, nil
}

// Range 返回 [min, max] 内均匀分布的整数，区间宽度不能超过 2^32
func Range(src ByteSource, min, max int) (int, error) {
	if min > max {
		return 0, errors.Wrapf(ErrInvalidRange, "min %d > max %d", min, max)
	}
	// 无符号差值在 min <= max 时不会溢出
	width := uint64(max) - uint64(min)
	if width >= span32 {
		return 0, errors.Wrapf(ErrInvalidRange, "[%d, %d] wider than 2^32", min, max)
	}
	v, err := lessThan(src, width+1)
	if err != nil {
		return 0, err
	}
	return min + int(v), nil
}
