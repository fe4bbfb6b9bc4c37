package path

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nbtkit/nbtkit/nbt"
	"github.com/nbtkit/nbtkit/snbt"
)

func mustTag(t *testing.T, s string) nbt.Tag {
	tag, err := snbt.Parse(s)
	require.NoError(t, err)
	return tag
}

func TestGetAll_NamedKey(t *testing.T) {
	root := mustTag(t, `{a: 1, b: 2}`)
	p, err := Parse("a")
	require.NoError(t, err)
	require.Equal(t, []nbt.Tag{nbt.Int(1)}, GetAll(root, p))
}

func TestGetAll_NestedDotted(t *testing.T) {
	root := mustTag(t, `{a: {b: {c: 3}}}`)
	p, err := Parse("a.b.c")
	require.NoError(t, err)
	require.Equal(t, []nbt.Tag{nbt.Int(3)}, GetAll(root, p))
}

func TestGetAll_ListWildcard(t *testing.T) {
	root := mustTag(t, `{items: [1, 2, 3]}`)
	p, err := Parse("items[]")
	require.NoError(t, err)
	require.Equal(t, []nbt.Tag{nbt.Int(1), nbt.Int(2), nbt.Int(3)}, GetAll(root, p))
}

func TestGetAll_ListIndex(t *testing.T) {
	root := mustTag(t, `{items: [1, 2, 3]}`)
	p, err := Parse("items[1]")
	require.NoError(t, err)
	require.Equal(t, []nbt.Tag{nbt.Int(2)}, GetAll(root, p))
}

func TestGetAll_NegativeIndex(t *testing.T) {
	root := mustTag(t, `{items: [1, 2, 3]}`)
	p, err := Parse("items[-1]")
	require.NoError(t, err)
	require.Equal(t, []nbt.Tag{nbt.Int(3)}, GetAll(root, p))
}

func TestGetAll_CompoundFilter(t *testing.T) {
	root := mustTag(t, `{items: [{id: "a", n: 1}, {id: "b", n: 2}]}`)
	p, err := Parse(`items[]{id: "b"}`)
	require.NoError(t, err)
	got := GetAll(root, p)
	require.Len(t, got, 1)
	c := got[0].(*nbt.Compound)
	n, _ := c.Get("n")
	require.Equal(t, nbt.Int(2), n)
}

func TestGetAll_BracketFilterShorthand(t *testing.T) {
	root := mustTag(t, `{items: [{id: "a"}, {id: "b"}]}`)
	p, err := Parse(`items[{id: "b"}]`)
	require.NoError(t, err)
	got := GetAll(root, p)
	require.Len(t, got, 1)
}

func TestSetAll_ListWildcard(t *testing.T) {
	root := mustTag(t, `{items: [1, 2, 3]}`)
	p, err := Parse("items[]")
	require.NoError(t, err)
	root = SetAll(root, p, nbt.Int(9))
	got := GetAll(root, p)
	require.Equal(t, []nbt.Tag{nbt.Int(9), nbt.Int(9), nbt.Int(9)}, got)
}

func TestDeleteAll_ReverseDocumentOrder(t *testing.T) {
	root := mustTag(t, `{items: [1, 2, 3, 4]}`)
	p, err := Parse("items[]")
	require.NoError(t, err)
	// Delete every element; if deletes weren't applied in reverse order the
	// later deletes would target indices shifted by earlier ones.
	root = DeleteAll(root, p)
	compound := root.(*nbt.Compound)
	items, _ := compound.Get("items")
	require.Len(t, items.(nbt.List).Items, 0)
}

func TestDeleteAll_SingleIndex(t *testing.T) {
	root := mustTag(t, `{items: [1, 2, 3]}`)
	p, err := Parse("items[1]")
	require.NoError(t, err)
	root = DeleteAll(root, p)
	compound := root.(*nbt.Compound)
	items, _ := compound.Get("items")
	require.Equal(t, nbt.List{ChildType: nbt.TypeInt, Items: []nbt.Tag{nbt.Int(1), nbt.Int(3)}}, items)
}

func TestFind_NoMatchReturnsFalse(t *testing.T) {
	root := mustTag(t, `{a: 1}`)
	p, err := Parse("missing")
	require.NoError(t, err)
	_, ok := Find(root, p)
	require.False(t, ok)
}

func TestPath_StringRoundTrip(t *testing.T) {
	p, err := Parse("a.b[0]")
	require.NoError(t, err)
	require.Equal(t, "a.b[0]", p.String())
}
