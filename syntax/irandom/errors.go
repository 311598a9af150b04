package irandom

import "errors"

var (
	// ErrInvalidRange 区间非法：min > max，或 n 不在 (0, 2^32]
	ErrInvalidRange = errors.New("irandom: invalid range")
	// ErrInvalidSize 长度为负
	ErrInvalidSize = errors.New("irandom: size must not be negative")
	// ErrEmptyAlphabet 字母表为空
	ErrEmptyAlphabet = errors.New("irandom: alphabet must not be empty")
	// ErrAlphabetTooLong 字母表超过 256 个字符
	ErrAlphabetTooLong = errors.New("irandom: alphabet longer than 256 characters")
	// ErrShortRead 随机源返回的字节数少于请求数
	ErrShortRead = errors.New("irandom: byte source returned fewer bytes than requested")
	// ErrExhausted 重试预算耗尽
	ErrExhausted = errors.New("irandom: iteration budget exhausted")
)
