package irandom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cute-angelia/go-xrand/syntax/isource"
)

func TestUint8FreshDraws(t *testing.T) {
	src := isource.Counting()

	v, err := Uint8(src)
	require.NoError(t, err)
	assert.Equal(t, uint8(0), v)

	v, err = Uint8(src)
	require.NoError(t, err)
	assert.Equal(t, uint8(1), v)
}

func TestUintBigEndian(t *testing.T) {
	src := isource.Counting()

	v16, err := Uint16(src)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0001), v16)

	v32, err := Uint32(src)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x02030405), v32)

	v64, err := Uint64(src)
	require.NoError(t, err)
	assert.Equal(t, uint64(0x060708090a0b0c0d), v64)
}

func TestUint64FullWidth(t *testing.T) {
	v, err := Uint64(constant(0xff))
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxUint64), v)
}

func TestUintSourceErrorUnchanged(t *testing.T) {
	_, err := Uint32(failing())
	assert.Equal(t, errBoom, err)

	_, err = Uint64(failing())
	assert.Equal(t, errBoom, err)
}

func TestUintShortRead(t *testing.T) {
	short := SourceFunc(func(n int) ([]byte, error) { return make([]byte, n-1), nil })

	_, err := Uint32(short)
	assert.ErrorIs(t, err, ErrShortRead)
}

func TestBytes(t *testing.T) {
	b, err := Bytes(isource.Counting(), 3)
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 1, 2}, b)

	_, err = Bytes(isource.Counting(), -1)
	assert.ErrorIs(t, err, ErrInvalidSize)

	short := SourceFunc(func(n int) ([]byte, error) { return make([]byte, n-1), nil })
	_, err = Bytes(short, 4)
	assert.ErrorIs(t, err, ErrShortRead)
}
