package scan

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nbtkit/nbtkit/nbt"
)

func encodeDoc(t *testing.T, name string, tag nbt.Tag) []byte {
	t.Helper()
	buf, err := nbt.EncodeNamed(nil, binary.BigEndian, name, tag)
	require.NoError(t, err)
	return buf
}

func TestScanMaterialize_FlatCompound(t *testing.T) {
	c := nbt.NewCompound()
	c.Set("hp", nbt.Short(20))
	c.Set("name", nbt.String("Bob"))
	buf := encodeDoc(t, "root", c)

	idx, err := Scan(buf, 64, binary.BigEndian)
	require.NoError(t, err)
	name, got, err := Materialize(idx)
	require.NoError(t, err)
	require.Equal(t, "root", name)
	require.True(t, c.Equal(got))
}

func TestScanMaterialize_NestedCompound(t *testing.T) {
	inner := nbt.NewCompound()
	inner.Set("z", nbt.Int(7))
	outer := nbt.NewCompound()
	outer.Set("inner", inner)
	outer.Set("n", nbt.Long(9))
	buf := encodeDoc(t, "", outer)

	idx, err := Scan(buf, 64, binary.BigEndian)
	require.NoError(t, err)
	_, got, err := Materialize(idx)
	require.NoError(t, err)
	require.True(t, outer.Equal(got))
}

func TestScanMaterialize_NumericList(t *testing.T) {
	l := nbt.List{ChildType: nbt.TypeInt, Items: []nbt.Tag{nbt.Int(1), nbt.Int(2), nbt.Int(3)}}
	c := nbt.NewCompound()
	c.Set("values", l)
	buf := encodeDoc(t, "", c)

	idx, err := Scan(buf, 64, binary.BigEndian)
	require.NoError(t, err)
	_, got, err := Materialize(idx)
	require.NoError(t, err)
	require.True(t, c.Equal(got))
}

func TestScanMaterialize_ListOfCompounds(t *testing.T) {
	item1 := nbt.NewCompound()
	item1.Set("id", nbt.String("a"))
	item2 := nbt.NewCompound()
	item2.Set("id", nbt.String("b"))
	l := nbt.List{ChildType: nbt.TypeCompound, Items: []nbt.Tag{item1, item2}}
	buf := encodeDoc(t, "", l)

	idx, err := Scan(buf, 64, binary.BigEndian)
	require.NoError(t, err)
	_, got, err := Materialize(idx)
	require.NoError(t, err)
	require.True(t, l.Equal(got))
}

func TestScanMaterialize_EmptyList(t *testing.T) {
	c := nbt.NewCompound()
	c.Set("empty", nbt.List{ChildType: nbt.TypeEnd})
	buf := encodeDoc(t, "", c)

	idx, err := Scan(buf, 64, binary.BigEndian)
	require.NoError(t, err)
	_, got, err := Materialize(idx)
	require.NoError(t, err)
	require.True(t, c.Equal(got))
}

func TestScanMaterialize_Arrays(t *testing.T) {
	c := nbt.NewCompound()
	c.Set("b", nbt.ByteArray{1, 2, 3})
	c.Set("i", nbt.IntArray{1, -2, 3})
	c.Set("l", nbt.LongArray{1, 2})
	buf := encodeDoc(t, "", c)

	idx, err := Scan(buf, 64, binary.BigEndian)
	require.NoError(t, err)
	_, got, err := Materialize(idx)
	require.NoError(t, err)
	require.True(t, c.Equal(got))
}

func TestScan_DepthExceeded(t *testing.T) {
	c := nbt.NewCompound()
	c.Set("a", nbt.Int(1))
	buf := encodeDoc(t, "", c)
	_, err := Scan(buf, 1, binary.BigEndian)
	require.ErrorIs(t, err, nbt.ErrDepthExceeded)
}

func TestScan_TruncatedBufferIsUnexpectedEOF(t *testing.T) {
	c := nbt.NewCompound()
	c.Set("a", nbt.Int(1))
	buf := encodeDoc(t, "", c)
	_, err := Scan(buf[:len(buf)-2], 64, binary.BigEndian)
	require.ErrorIs(t, err, nbt.ErrUnexpectedEOF)
}

func TestMaterializeAt_MatchesTotalMaterialize(t *testing.T) {
	inner := nbt.NewCompound()
	inner.Set("z", nbt.Int(7))
	outer := nbt.NewCompound()
	outer.Set("inner", inner)
	buf := encodeDoc(t, "", outer)

	idx, err := Scan(buf, 64, binary.BigEndian)
	require.NoError(t, err)
	_, total, err := Materialize(idx)
	require.NoError(t, err)

	// Descriptor 0 is the outer compound; descriptor 1 is "inner".
	partial, err := MaterializeAt(idx, 1)
	require.NoError(t, err)

	totalInner, _ := total.(*nbt.Compound).Get("inner")
	require.True(t, totalInner.Equal(partial))
}

func TestIndex_NextSibling(t *testing.T) {
	c := nbt.NewCompound()
	c.Set("a", nbt.Int(1))
	c.Set("b", nbt.Int(2))
	buf := encodeDoc(t, "", c)

	idx, err := Scan(buf, 64, binary.BigEndian)
	require.NoError(t, err)
	// descriptor 0 = outer compound, with two scalar children (1, 2)
	require.Equal(t, 3, idx.NextSibling(0))
}
