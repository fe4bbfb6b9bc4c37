package nbt

import (
	"encoding/binary"
	"fmt"
	"math"
)

// EncodeNamed appends a full named tag (discriminator + 16-bit length-prefixed
// name + payload) to buf and returns the grown slice. This is the encoding
// used at the outer level and for each Compound entry (spec.md §3).
func EncodeNamed(buf []byte, order binary.ByteOrder, name string, t Tag) ([]byte, error) {
	buf = append(buf, byte(t.Type()))
	nameBytes := EncodeString(name)
	if len(nameBytes) > math.MaxUint16 {
		return nil, fmt.Errorf("nbt: name %q exceeds 65535 bytes", name)
	}
	buf = putU16(buf, uint16(len(nameBytes)), order)
	buf = append(buf, nameBytes...)
	return EncodePayload(buf, order, t)
}

// EncodePayload appends t's payload only (no discriminator, no name) — the
// form used for List elements, which share their declared child type and
// carry no name of their own.
func EncodePayload(buf []byte, order binary.ByteOrder, t Tag) ([]byte, error) {
	switch v := t.(type) {
	case Byte:
		return append(buf, byte(v)), nil
	case Short:
		return putU16(buf, uint16(v), order), nil
	case Int:
		return putU32(buf, uint32(v), order), nil
	case Long:
		return putU64(buf, uint64(v), order), nil
	case Float:
		return putU32(buf, math.Float32bits(float32(v)), order), nil
	case Double:
		return putU64(buf, math.Float64bits(float64(v)), order), nil
	case ByteArray:
		if len(v) > math.MaxInt32 {
			return nil, fmt.Errorf("nbt: byte array too long: %d", len(v))
		}
		buf = putU32(buf, uint32(len(v)), order)
		for _, b := range v {
			buf = append(buf, byte(b))
		}
		return buf, nil
	case String:
		enc := EncodeString(string(v))
		if len(enc) > math.MaxUint16 {
			return nil, fmt.Errorf("nbt: string exceeds 65535 bytes")
		}
		buf = putU16(buf, uint16(len(enc)), order)
		return append(buf, enc...), nil
	case List:
		childType := v.ChildType
		if len(v.Items) == 0 {
			childType = TypeEnd
		}
		buf = append(buf, byte(childType))
		buf = putU32(buf, uint32(len(v.Items)), order)
		var err error
		for _, item := range v.Items {
			buf, err = EncodePayload(buf, order, item)
			if err != nil {
				return nil, err
			}
		}
		return buf, nil
	case *Compound:
		var err error
		v.Range(func(name string, child Tag) bool {
			buf, err = EncodeNamed(buf, order, name, child)
			return err == nil
		})
		if err != nil {
			return nil, err
		}
		return append(buf, byte(TypeEnd)), nil
	case IntArray:
		if len(v) > math.MaxInt32 {
			return nil, fmt.Errorf("nbt: int array too long: %d", len(v))
		}
		buf = putU32(buf, uint32(len(v)), order)
		for _, n := range v {
			buf = putU32(buf, uint32(n), order)
		}
		return buf, nil
	case LongArray:
		if len(v) > math.MaxInt32 {
			return nil, fmt.Errorf("nbt: long array too long: %d", len(v))
		}
		buf = putU32(buf, uint32(len(v)), order)
		for _, n := range v {
			buf = putU64(buf, uint64(n), order)
		}
		return buf, nil
	default:
		return nil, fmt.Errorf("nbt: encode: %w", ErrInvalidType)
	}
}
