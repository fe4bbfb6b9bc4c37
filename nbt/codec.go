package nbt

import (
	"encoding/binary"
	"fmt"
	"math"
)

// SizeTable maps a numeric scalar Type (Byte..Double) to its fixed
// on-disk size in bytes, matching spec.md §4.1's {1,1,2,4,8,4,8} table
// (index 0 unused since End never reaches a decode site), and each typed
// array Type (ByteArray, IntArray, LongArray) to its element size.
// String, List and Compound have no fixed size and map to 0.
var SizeTable = [13]int{
	TypeEnd:       0,
	TypeByte:      1,
	TypeShort:     2,
	TypeInt:       4,
	TypeLong:      8,
	TypeFloat:     4,
	TypeDouble:    8,
	TypeByteArray: 1,
	TypeString:    0,
	TypeList:      0,
	TypeCompound:  0,
	TypeIntArray:  4,
	TypeLongArray: 8,
}

// IsNative reports whether order matches the host's native byte order, the
// same check spec.md §4.1 uses to decide whether multibyte loads can be
// direct rather than byte-swapped. Computed by probing a 2-byte pattern
// rather than hand-rolling a constant trick, since encoding/binary already
// exposes a native-order implementation to compare against.
func IsNative(order binary.ByteOrder) bool {
	probe := []byte{0x01, 0x00}
	return order.Uint16(probe) == binary.NativeEndian.Uint16(probe)
}

// bounds-checked reads. These return ErrUnexpectedEOF rather than panicking,
// so the scanner can surface a clean error instead of a runtime panic on
// adversarial or truncated input — mirrors internal/buf's CheckedReadU32
// pattern in the teacher, generalized to both byte orders.

func readU8(b []byte, off int) (uint8, error) {
	if off < 0 || off+1 > len(b) {
		return 0, fmt.Errorf("byte at %d: %w", off, ErrUnexpectedEOF)
	}
	return b[off], nil
}

func readU16(b []byte, off int, order binary.ByteOrder) (uint16, error) {
	if off < 0 || off+2 > len(b) {
		return 0, fmt.Errorf("u16 at %d: %w", off, ErrUnexpectedEOF)
	}
	return order.Uint16(b[off:]), nil
}

func readU32(b []byte, off int, order binary.ByteOrder) (uint32, error) {
	if off < 0 || off+4 > len(b) {
		return 0, fmt.Errorf("u32 at %d: %w", off, ErrUnexpectedEOF)
	}
	return order.Uint32(b[off:]), nil
}

func readU64(b []byte, off int, order binary.ByteOrder) (uint64, error) {
	if off < 0 || off+8 > len(b) {
		return 0, fmt.Errorf("u64 at %d: %w", off, ErrUnexpectedEOF)
	}
	return order.Uint64(b[off:]), nil
}

// ReadU8 reads an unsigned byte at off.
func ReadU8(b []byte, off int) (uint8, error) { return readU8(b, off) }

// ReadU16 reads an unsigned 16-bit word at off in the given byte order.
func ReadU16(b []byte, off int, order binary.ByteOrder) (uint16, error) {
	return readU16(b, off, order)
}

// ReadU32 reads an unsigned 32-bit word at off in the given byte order.
func ReadU32(b []byte, off int, order binary.ByteOrder) (uint32, error) {
	return readU32(b, off, order)
}

// ReadU64 reads an unsigned 64-bit word at off in the given byte order.
func ReadU64(b []byte, off int, order binary.ByteOrder) (uint64, error) {
	return readU64(b, off, order)
}

// DecodeScalar decodes a numeric scalar tag (Byte..Double) from the payload
// starting at off, using the fixed size from SizeTable.
func DecodeScalar(typ Type, b []byte, off int, order binary.ByteOrder) (Tag, error) {
	switch typ {
	case TypeByte:
		v, err := readU8(b, off)
		return Byte(int8(v)), err
	case TypeShort:
		v, err := readU16(b, off, order)
		return Short(int16(v)), err
	case TypeInt:
		v, err := readU32(b, off, order)
		return Int(int32(v)), err
	case TypeLong:
		v, err := readU64(b, off, order)
		return Long(int64(v)), err
	case TypeFloat:
		v, err := readU32(b, off, order)
		return Float(math.Float32frombits(v)), err
	case TypeDouble:
		v, err := readU64(b, off, order)
		return Double(math.Float64frombits(v)), err
	default:
		return nil, fmt.Errorf("decode scalar: %w", ErrInvalidType)
	}
}

// putU16/putU32/putU64 append fixed-width words in the given byte order,
// growing buf as needed — the write-side counterpart to the checked readers
// above, used by the encoder.

func putU16(buf []byte, v uint16, order binary.ByteOrder) []byte {
	var tmp [2]byte
	order.PutUint16(tmp[:], v)
	return append(buf, tmp[:]...)
}

func putU32(buf []byte, v uint32, order binary.ByteOrder) []byte {
	var tmp [4]byte
	order.PutUint32(tmp[:], v)
	return append(buf, tmp[:]...)
}

func putU64(buf []byte, v uint64, order binary.ByteOrder) []byte {
	var tmp [8]byte
	order.PutUint64(tmp[:], v)
	return append(buf, tmp[:]...)
}
