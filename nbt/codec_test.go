package nbt

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadU16_OutOfBounds(t *testing.T) {
	_, err := ReadU16([]byte{0x01}, 0, binary.BigEndian)
	require.ErrorIs(t, err, ErrUnexpectedEOF)
}

func TestReadU32_BigEndian(t *testing.T) {
	v, err := ReadU32([]byte{0x00, 0x00, 0x01, 0x00}, 0, binary.BigEndian)
	require.NoError(t, err)
	require.Equal(t, uint32(256), v)
}

func TestDecodeScalar_Int(t *testing.T) {
	tag, err := DecodeScalar(TypeInt, []byte{0x00, 0x00, 0x00, 0x2A}, 0, binary.BigEndian)
	require.NoError(t, err)
	require.Equal(t, Int(42), tag)
}

func TestDecodeScalar_Double(t *testing.T) {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, 0x3FF0000000000000) // 1.0
	tag, err := DecodeScalar(TypeDouble, buf, 0, binary.BigEndian)
	require.NoError(t, err)
	require.Equal(t, Double(1.0), tag)
}

func TestIsNative(t *testing.T) {
	require.True(t, IsNative(binary.NativeEndian))
}
