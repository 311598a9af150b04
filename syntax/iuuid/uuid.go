package iuuid

import (
	"encoding/hex"

	"github.com/cute-angelia/go-xrand/syntax/irandom"
)

// V4 从 src 取 16 字节生成 RFC 4122 UUID v4
func V4(src irandom.ByteSource) (string, error) {
	b, err := irandom.Bytes(src, 16)
	if err != nil {
		return "", err
	}
	var uuid [16]byte
	copy(uuid[:], b)

	// 版本号 4，变体 RFC 4122
	uuid[6] = (uuid[6] & 0x0f) | 0x40
	uuid[8] = (uuid[8] & 0x3f) | 0x80

	var buf [36]byte
	hex.Encode(buf[0:8], uuid[0:4])
	buf[8] = '-'
	hex.Encode(buf[9:13], uuid[4:6])
	buf[13] = '-'
	hex.Encode(buf[14:18], uuid[6:8])
	buf[18] = '-'
	hex.Encode(buf[19:23], uuid[8:10])
	buf[23] = '-'
	hex.Encode(buf[24:], uuid[10:])
	return string(buf[:]), nil
}
