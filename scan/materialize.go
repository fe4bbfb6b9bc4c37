package scan

import (
	"fmt"

	"github.com/nbtkit/nbtkit/nbt"
)

// Materialize walks the full index in pre-order and returns the owned tag
// tree rooted at descriptor 0, along with its outer name. Grounded on
// hive/values/reader.go's parse-on-demand-from-a-resolved-cell shape,
// generalized from "one VK payload" to "an entire pre-order subtree."
func Materialize(idx *Index) (name string, root nbt.Tag, err error) {
	if len(idx.Tags) == 0 {
		return "", nil, fmt.Errorf("scan: empty index")
	}
	m := &materializer{idx: idx}
	name, root, _, err = m.at(0)
	return name, root, err
}

// MaterializeAt materializes only the subtree rooted at descriptor index i.
// Both total materialization and on-demand per-index materialization must
// yield identical trees (spec.md §4.2).
func MaterializeAt(idx *Index, i int) (nbt.Tag, error) {
	if i < 0 || i >= len(idx.Tags) {
		return nil, fmt.Errorf("scan: index %d out of range", i)
	}
	m := &materializer{idx: idx}
	_, t, _, err := m.at(i)
	return t, err
}

type materializer struct {
	idx *Index
}

// ownHeaderSize is the number of bytes a tag's own type-specific header
// (the part after the name and before PayloadOffset) occupies. It's what
// lets readName walk backward from PayloadOffset to the name span without
// TagDesc needing a dedicated name-offset field.
func ownHeaderSize(t nbt.Type) int {
	switch t {
	case nbt.TypeString:
		return 2 // its own 16-bit length prefix
	case nbt.TypeByteArray, nbt.TypeIntArray, nbt.TypeLongArray:
		return 4 // its own 32-bit length prefix
	case nbt.TypeList:
		return 5 // child-type byte + 32-bit length
	default:
		return 0 // scalars and Compound have no header of their own
	}
}

func (m *materializer) readName(d TagDesc) string {
	if d.NameLength == 0 {
		return ""
	}
	nameEnd := int(d.PayloadOffset) - ownHeaderSize(d.Type)
	nameStart := nameEnd - int(d.NameLength)
	if nameStart < 0 || nameEnd > len(m.idx.Buffer) || nameStart > nameEnd {
		return ""
	}
	return nbt.DecodeString(m.idx.Buffer[nameStart:nameEnd])
}

func (m *materializer) at(i int) (name string, t nbt.Tag, next int, err error) {
	d := m.idx.Tags[i]
	name = m.readName(d)

	switch {
	case d.Type.Numeric():
		v, err := nbt.DecodeScalar(d.Type, m.idx.Buffer, int(d.PayloadOffset), m.idx.Order)
		return name, v, i + 1, err

	case d.Type == nbt.TypeString:
		raw := m.idx.Buffer[d.PayloadOffset : d.PayloadOffset+d.Children]
		return name, nbt.String(nbt.DecodeString(raw)), i + 1, nil

	case d.Type == nbt.TypeByteArray:
		out := make(nbt.ByteArray, d.Children)
		for j := range out {
			out[j] = int8(m.idx.Buffer[int(d.PayloadOffset)+j])
		}
		return name, out, i + 1, nil

	case d.Type == nbt.TypeIntArray:
		out := make(nbt.IntArray, d.Children)
		for j := range out {
			v, err := nbt.ReadU32(m.idx.Buffer, int(d.PayloadOffset)+j*4, m.idx.Order)
			if err != nil {
				return name, nil, i, err
			}
			out[j] = int32(v)
		}
		return name, out, i + 1, nil

	case d.Type == nbt.TypeLongArray:
		out := make(nbt.LongArray, d.Children)
		for j := range out {
			v, err := nbt.ReadU64(m.idx.Buffer, int(d.PayloadOffset)+j*8, m.idx.Order)
			if err != nil {
				return name, nil, i, err
			}
			out[j] = int64(v)
		}
		return name, out, i + 1, nil

	case d.Type == nbt.TypeList:
		return m.materializeList(i, name, d)

	case d.Type == nbt.TypeCompound:
		return m.materializeCompound(i, name, d)

	default:
		return name, nil, i, fmt.Errorf("scan: materialize: unsupported type %v", d.Type)
	}
}

// materializeList decodes the List rooted at descriptor i. The declared
// child type isn't kept in TagDesc (spec.md §3's descriptor carries only
// payload_offset/children/name_length/type), but the scanner always lays
// out a List's 5-byte header (child-type byte + 32-bit length) immediately
// before PayloadOffset, so the child type is recovered by reading it
// straight back out of the buffer rather than threading it through the
// index.
func (m *materializer) materializeList(i int, name string, d TagDesc) (string, nbt.Tag, int, error) {
	end := m.idx.NextSibling(i)
	childType := nbt.TypeEnd
	if d.PayloadOffset >= 5 {
		childType = nbt.Type(m.idx.Buffer[d.PayloadOffset-5])
	}

	switch {
	case childType == nbt.TypeEnd:
		return name, nbt.List{ChildType: nbt.TypeEnd}, end, nil

	case childType.Numeric():
		items := make([]nbt.Tag, d.Children)
		size := nbt.SizeTable[childType]
		for j := range items {
			v, err := nbt.DecodeScalar(childType, m.idx.Buffer, int(d.PayloadOffset)+j*size, m.idx.Order)
			if err != nil {
				return name, nil, i, err
			}
			items[j] = v
		}
		return name, nbt.List{ChildType: childType, Items: items}, end, nil

	default:
		list := nbt.List{ChildType: childType}
		next := i + 1
		for next < end {
			_, child, childNext, err := m.at(next)
			if err != nil {
				return name, nil, i, err
			}
			list.Items = append(list.Items, child)
			next = childNext
		}
		return name, list, end, nil
	}
}

func (m *materializer) materializeCompound(i int, name string, d TagDesc) (string, nbt.Tag, int, error) {
	c := nbt.NewCompound()
	next := i + 1
	end := m.idx.NextSibling(i)
	for next < end {
		entryName, child, childNext, err := m.at(next)
		if err != nil {
			return name, nil, i, err
		}
		c.Set(entryName, child)
		next = childNext
	}
	return name, c, end, nil
}
