package leb128

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUintRoundTrip(t *testing.T) {
	values := []uint64{0, 1, 2, 0x7f, 0x80, 0x81, 0xff, 0x100, 0xffffffff,
		1 << 35, 1<<64 - 1}
	for _, v := range values {
		buf := AppendUint(nil, v)
		got, n, err := Uint(buf, 0)
		require.NoError(t, err)
		assert.Equal(t, v, got)
		assert.Equal(t, len(buf), n)
	}
}

func TestIntRoundTrip(t *testing.T) {
	values := []int64{0, 1, -1, 2, -2, 63, -64, 64, -65, 0x7fffffff,
		-0x80000000, 1 << 40, -(1 << 40), 9223372036854775807, -9223372036854775808}
	for _, v := range values {
		buf := AppendInt(nil, v)
		got, n, err := Int(buf, 0)
		require.NoError(t, err)
		assert.Equal(t, v, got)
		assert.Equal(t, len(buf), n)
	}
}

func TestUintKnownEncodings(t *testing.T) {
	// DWARF spec Appendix C worked examples.
	cases := []struct {
		bytes []byte
		want  uint64
	}{
		{[]byte{0x02}, 2},
		{[]byte{0x7f}, 127},
		{[]byte{0x80, 0x01}, 128},
		{[]byte{0x81, 0x01}, 129},
		{[]byte{0x82, 0x01}, 130},
		{[]byte{0xb9, 0x64}, 12857},
	}
	for _, c := range cases {
		got, n, err := Uint(c.bytes, 0)
		require.NoError(t, err)
		assert.Equal(t, c.want, got)
		assert.Equal(t, len(c.bytes), n)
	}
}

func TestIntKnownEncodings(t *testing.T) {
	cases := []struct {
		bytes []byte
		want  int64
	}{
		{[]byte{0x02}, 2},
		{[]byte{0x7e}, -2},
		{[]byte{0xff, 0x00}, 127},
		{[]byte{0x81, 0x7f}, -127},
		{[]byte{0x80, 0x01}, 128},
		{[]byte{0x80, 0x7f}, -128},
		{[]byte{0x81, 0x01}, 129},
		{[]byte{0xff, 0x7e}, -129},
	}
	for _, c := range cases {
		got, n, err := Int(c.bytes, 0)
		require.NoError(t, err)
		assert.Equal(t, c.want, got)
		assert.Equal(t, len(c.bytes), n)
	}
}

func TestTruncated(t *testing.T) {
	_, _, err := Uint([]byte{0x80, 0x80}, 0)
	require.Error(t, err)
	assert.IsType(t, ErrTruncated{}, err)

	_, _, err = Int([]byte{}, 0)
	require.Error(t, err)
}

func TestOffsetIntoLargerBuffer(t *testing.T) {
	buf := []byte{0xff, 0xff, 0x81, 0x01, 0xaa}
	got, n, err := Uint(buf, 2)
	require.NoError(t, err)
	assert.Equal(t, uint64(129), got)
	assert.Equal(t, 2, n)
}
