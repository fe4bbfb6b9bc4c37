package nbt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMUTF8_ASCIIRoundTrip(t *testing.T) {
	enc := EncodeString("hello")
	require.Equal(t, "hello", DecodeString(enc))
}

func TestMUTF8_NulEncodedAsTwoBytes(t *testing.T) {
	enc := EncodeString("\x00")
	require.Equal(t, []byte{0xC0, 0x80}, enc)
	require.Equal(t, "\x00", DecodeString(enc))
}

func TestMUTF8_BMPRoundTrip(t *testing.T) {
	enc := EncodeString("héllo")
	require.Equal(t, "héllo", DecodeString(enc))
}

func TestMUTF8_SupplementaryPlaneUsesSurrogatePair(t *testing.T) {
	s := "\U0001F600" // emoji, outside the BMP
	enc := EncodeString(s)
	require.Equal(t, 6, len(enc), "two 3-byte surrogate sequences")
	require.Equal(t, s, DecodeString(enc))
}

func TestMUTF8_InvalidSequenceBecomesReplacementChar(t *testing.T) {
	got := DecodeString([]byte{0xC0, 0x00}) // malformed 2-byte lead
	require.Equal(t, "�\x00", got)
}
