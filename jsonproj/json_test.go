package jsonproj

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nbtkit/nbtkit/nbt"
)

func TestMarshal_Compound(t *testing.T) {
	c := nbt.NewCompound()
	c.Set("name", nbt.String("Bob"))
	c.Set("score", nbt.Int(42))
	out, err := Marshal(c)
	require.NoError(t, err)
	require.JSONEq(t, `{"name":"Bob","score":42}`, string(out))
}

func TestMarshal_List(t *testing.T) {
	l := nbt.List{ChildType: nbt.TypeInt, Items: []nbt.Tag{nbt.Int(1), nbt.Int(2)}}
	out, err := Marshal(l)
	require.NoError(t, err)
	require.JSONEq(t, `[1,2]`, string(out))
}

func TestUnmarshal_ObjectBecomesCompound(t *testing.T) {
	tag, err := Unmarshal([]byte(`{"a": 1, "b": "x"}`))
	require.NoError(t, err)
	c, ok := tag.(*nbt.Compound)
	require.True(t, ok)
	a, _ := c.Get("a")
	require.Equal(t, nbt.Double(1), a)
	b, _ := c.Get("b")
	require.Equal(t, nbt.String("x"), b)
}

func TestUnmarshal_ArrayBecomesList(t *testing.T) {
	tag, err := Unmarshal([]byte(`[1, 2, 3]`))
	require.NoError(t, err)
	l, ok := tag.(nbt.List)
	require.True(t, ok)
	require.Len(t, l.Items, 3)
}
