package orderId

import (
	"fmt"
	"time"

	"github.com/cute-angelia/go-xrand/syntax/irandom"
)

const (
	layout      = "20060102150405"
	suffixSpace = 1000000
)

// Generate [时间戳 yyyyMMddHHmmss] + [6位随机数]
func Generate(src irandom.ByteSource, now time.Time) (string, error) {
	n, err := irandom.LessThan(src, suffixSpace)
	if err != nil {
		return "", err
	}
	return now.Format(layout) + fmt.Sprintf("%06d", n), nil
}

// GenerateBatch 同一时刻的 count 个互不相同的订单号
func GenerateBatch(src irandom.ByteSource, now time.Time, count int) ([]string, error) {
	suffixes, err := irandom.UniquePatterns(src, count, 6, []string{irandom.LetterNum.String()})
	if err != nil {
		return nil, err
	}
	prefix := now.Format(layout)
	out := make([]string, len(suffixes))
	for i, s := range suffixes {
		out[i] = prefix + s
	}
	return out, nil
}
