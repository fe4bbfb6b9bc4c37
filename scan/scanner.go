// Package scan implements the stack-machine scanner (spec.md §4.1): it
// turns a contiguous byte buffer into a flat, pre-order index of tag
// descriptors without materializing values, and the materializer that
// turns that index into owned tag trees on demand (spec.md §4.2).
package scan

import (
	"encoding/binary"
	"fmt"

	"github.com/nbtkit/nbtkit/nbt"
)

// TagDesc is one entry in the scanner's flat pre-order index. The meaning
// of Children depends on Type, per spec.md §3:
//   - Compound, List-of-non-numeric: total descendant count, so the next
//     sibling of the tag at index i lives at i + Children + 1.
//   - List-of-numeric, String, ByteArray, IntArray, LongArray: element /
//     code-unit count.
//   - Numeric scalars: unused (0).
type TagDesc struct {
	PayloadOffset uint32
	Children      uint32
	NameLength    uint16
	Type          nbt.Type
}

// NextSibling returns the index of the descriptor following the subtree
// rooted at i.
func (idx *Index) NextSibling(i int) int {
	return i + int(idx.Tags[i].Children) + 1
}

// Index is the scanner's output: a borrowed buffer and its flat descriptor
// vector. Payload pointers in Tags alias Buffer for the lifetime of Index;
// Index must not outlive the buffer it was built from (spec.md §5).
type Index struct {
	Buffer []byte
	Order  binary.ByteOrder
	Native bool
	Tags   []TagDesc
}

// frameKind enumerates the stack-machine operations from spec.md §4.1.
// Rather than packing these into a disjoint numeric range within a single
// []uint32 stack (the C-shaped description in spec.md), the stack holds
// typed Go structs — the same choice the teacher's hive/walker.WalkerCore
// makes with its StackEntry{offset, state} frames in place of raw words.
type frameKind int

const (
	frameSetName frameKind = iota
	frameDecode
	frameExtendList
	frameExtendCompound
)

type frame struct {
	kind        frameKind
	typ         nbt.Type
	parentIndex int
	childType   nbt.Type
	remaining   uint32
	fromList    bool // true when this decode has no name (a List element)
}

// scanner holds the mutable state threaded through the stack-machine loop.
type scanner struct {
	buf           []byte
	order         binary.ByteOrder
	pos           int
	stackBudget   int
	stack         []frame
	tags          []TagDesc
	pendingName   uint16
}

// Scan decodes buffer into a flat pre-order index of tag descriptors using
// an explicit operation stack bounded by stackBudget frames, per spec.md
// §4.1. It never partially emits: on error the accumulated descriptor
// vector is discarded.
func Scan(buffer []byte, stackBudget int, order binary.ByteOrder) (*Index, error) {
	if stackBudget <= 0 {
		return nil, fmt.Errorf("scan: non-positive stack budget: %w", nbt.ErrDepthExceeded)
	}
	s := &scanner{
		buf:         buffer,
		order:       order,
		stackBudget: stackBudget,
		stack:       make([]frame, 0, 32),
		tags:        make([]TagDesc, 0, 32),
	}
	if err := s.push(frame{kind: frameSetName}); err != nil {
		return nil, err
	}
	for len(s.stack) > 0 {
		top := s.stack[len(s.stack)-1]
		s.stack = s.stack[:len(s.stack)-1]
		if err := s.step(top); err != nil {
			return nil, err
		}
	}
	return &Index{
		Buffer: buffer,
		Order:  order,
		Native: nbt.IsNative(order),
		Tags:   s.tags,
	}, nil
}

func (s *scanner) push(f frame) error {
	if len(s.stack)+1 > s.stackBudget {
		return fmt.Errorf("scan: %w", nbt.ErrDepthExceeded)
	}
	s.stack = append(s.stack, f)
	return nil
}

func (s *scanner) step(f frame) error {
	switch f.kind {
	case frameSetName:
		return s.stepSetName()
	case frameDecode:
		return s.stepDecode(f)
	case frameExtendList:
		return s.stepExtendList(f)
	case frameExtendCompound:
		return s.stepExtendCompound(f)
	default:
		return fmt.Errorf("scan: %w", nbt.ErrInvalidType)
	}
}

func (s *scanner) stepSetName() error {
	typByte, err := nbt.ReadU8(s.buf, s.pos)
	if err != nil {
		return err
	}
	if typByte > byte(nbt.TypeLongArray) {
		return fmt.Errorf("scan: tag id %d: %w", typByte, nbt.ErrInvalidType)
	}
	nameLen, err := nbt.ReadU16(s.buf, s.pos+1, s.order)
	if err != nil {
		return err
	}
	nameStart := s.pos + 3
	if nameStart+int(nameLen) > len(s.buf) {
		return fmt.Errorf("scan: name: %w", nbt.ErrUnexpectedEOF)
	}
	s.pendingName = nameLen
	s.pos = nameStart + int(nameLen)
	return s.push(frame{kind: frameDecode, typ: nbt.Type(typByte)})
}

func (s *scanner) stepDecode(f frame) error {
	nameLen := s.pendingName
	if f.fromList {
		nameLen = 0
	}
	s.pendingName = 0

	switch {
	case f.typ.Numeric():
		off := s.pos
		size := nbt.SizeTable[f.typ]
		if off+size > len(s.buf) {
			return fmt.Errorf("scan: scalar payload: %w", nbt.ErrUnexpectedEOF)
		}
		s.emit(TagDesc{PayloadOffset: uint32(off), Type: f.typ, NameLength: nameLen})
		s.pos = off + size
		return nil

	case f.typ == nbt.TypeString:
		length, err := nbt.ReadU16(s.buf, s.pos, s.order)
		if err != nil {
			return err
		}
		payloadOff := s.pos + 2
		if payloadOff+int(length) > len(s.buf) {
			return fmt.Errorf("scan: string payload: %w", nbt.ErrUnexpectedEOF)
		}
		s.emit(TagDesc{PayloadOffset: uint32(payloadOff), Children: uint32(length), Type: f.typ, NameLength: nameLen})
		s.pos = payloadOff + int(length)
		return nil

	case f.typ == nbt.TypeByteArray, f.typ == nbt.TypeIntArray, f.typ == nbt.TypeLongArray:
		rawLen, err := nbt.ReadU32(s.buf, s.pos, s.order)
		if err != nil {
			return err
		}
		length := rawLen & 0x7FFFFFFF // truncate at 2^31-1, per spec.md §3
		elemSize := nbt.SizeTable[f.typ]
		payloadOff := s.pos + 4
		need, ok := checkedMul(int(length), elemSize)
		if !ok || payloadOff+need > len(s.buf) {
			return fmt.Errorf("scan: array payload: %w", nbt.ErrUnexpectedEOF)
		}
		s.emit(TagDesc{PayloadOffset: uint32(payloadOff), Children: length, Type: f.typ, NameLength: nameLen})
		s.pos = payloadOff + need
		return nil

	case f.typ == nbt.TypeList:
		return s.stepDecodeList(nameLen)

	case f.typ == nbt.TypeCompound:
		idx := len(s.tags)
		s.emit(TagDesc{PayloadOffset: uint32(s.pos), Type: f.typ, NameLength: nameLen})
		return s.push(frame{kind: frameExtendCompound, parentIndex: idx})

	default:
		return fmt.Errorf("scan: %w", nbt.ErrInvalidType)
	}
}

func (s *scanner) stepDecodeList(nameLen uint16) error {
	childTypeByte, err := nbt.ReadU8(s.buf, s.pos)
	if err != nil {
		return err
	}
	if childTypeByte > byte(nbt.TypeLongArray) {
		return fmt.Errorf("scan: list child id %d: %w", childTypeByte, nbt.ErrInvalidType)
	}
	childType := nbt.Type(childTypeByte)
	rawLen, err := nbt.ReadU32(s.buf, s.pos+1, s.order)
	if err != nil {
		return err
	}
	length := rawLen & 0x7FFFFFFF
	headerEnd := s.pos + 5

	switch {
	case childType == nbt.TypeEnd:
		// Ambiguous source behavior (spec.md §9): an End-typed list with
		// nonzero declared length is treated as empty; skip just the header.
		s.emit(TagDesc{PayloadOffset: uint32(headerEnd), Type: nbt.TypeList, NameLength: nameLen})
		s.pos = headerEnd
		return nil

	case childType.Numeric():
		elemSize := nbt.SizeTable[childType]
		need, ok := checkedMul(int(length), elemSize)
		if !ok || headerEnd+need > len(s.buf) {
			return fmt.Errorf("scan: numeric list payload: %w", nbt.ErrUnexpectedEOF)
		}
		s.emit(TagDesc{PayloadOffset: uint32(headerEnd), Children: length, Type: nbt.TypeList, NameLength: nameLen})
		s.pos = headerEnd + need
		return nil

	default:
		idx := len(s.tags)
		s.emit(TagDesc{PayloadOffset: uint32(headerEnd), Type: nbt.TypeList, NameLength: nameLen})
		s.pos = headerEnd
		if length == 0 {
			s.tags[idx].Children = 0
			return nil
		}
		return s.push(frame{kind: frameExtendList, parentIndex: idx, childType: childType, remaining: length})
	}
}

func (s *scanner) stepExtendList(f frame) error {
	if f.remaining == 0 {
		s.tags[f.parentIndex].Children = uint32(len(s.tags) - f.parentIndex - 1)
		return nil
	}
	if err := s.push(frame{kind: frameExtendList, parentIndex: f.parentIndex, childType: f.childType, remaining: f.remaining - 1}); err != nil {
		return err
	}
	return s.push(frame{kind: frameDecode, typ: f.childType, fromList: true})
}

func (s *scanner) stepExtendCompound(f frame) error {
	b, err := nbt.ReadU8(s.buf, s.pos)
	if err != nil {
		return err
	}
	if b == byte(nbt.TypeEnd) {
		s.pos++
		s.tags[f.parentIndex].Children = uint32(len(s.tags) - f.parentIndex - 1)
		return nil
	}
	if err := s.push(frame{kind: frameExtendCompound, parentIndex: f.parentIndex}); err != nil {
		return err
	}
	return s.push(frame{kind: frameSetName})
}

func (s *scanner) emit(d TagDesc) {
	s.tags = append(s.tags, d)
}

func checkedMul(count, size int) (int, bool) {
	if count == 0 || size == 0 {
		return 0, true
	}
	if count < 0 || size < 0 {
		return 0, false
	}
	product := count * size
	if product/size != count {
		return 0, false
	}
	return product, true
}
