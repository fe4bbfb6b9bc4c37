package nbt

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeNamed_ScalarRoundTrip(t *testing.T) {
	buf, err := EncodeNamed(nil, binary.BigEndian, "hp", Short(20))
	require.NoError(t, err)
	// type(1) + name-length(2) + name(2) + payload(2)
	require.Equal(t, 7, len(buf))
	require.Equal(t, byte(TypeShort), buf[0])

	v, err := DecodeScalar(TypeShort, buf, 5, binary.BigEndian)
	require.NoError(t, err)
	require.Equal(t, Short(20), v)
}

func TestEncodePayload_CompoundEmitsTrailingEnd(t *testing.T) {
	c := NewCompound()
	c.Set("a", Byte(1))
	buf, err := EncodePayload(nil, binary.BigEndian, c)
	require.NoError(t, err)
	require.Equal(t, byte(TypeEnd), buf[len(buf)-1])
}

func TestEncodePayload_EmptyListUsesEndChildType(t *testing.T) {
	l := List{}
	buf, err := EncodePayload(nil, binary.BigEndian, l)
	require.NoError(t, err)
	require.Equal(t, byte(TypeEnd), buf[0])
	require.Equal(t, []byte{0, 0, 0, 0}, buf[1:5])
}

func TestEncodePayload_IntArray(t *testing.T) {
	buf, err := EncodePayload(nil, binary.BigEndian, IntArray{1, -1})
	require.NoError(t, err)
	require.Equal(t, []byte{0, 0, 0, 2}, buf[:4])
	v, err := ReadU32(buf, 4, binary.BigEndian)
	require.NoError(t, err)
	require.Equal(t, uint32(1), v)
}
