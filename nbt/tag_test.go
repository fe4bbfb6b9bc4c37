package nbt

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTag_ScalarEqual(t *testing.T) {
	require.True(t, Byte(5).Equal(Byte(5)))
	require.False(t, Byte(5).Equal(Byte(6)))
	require.False(t, Byte(5).Equal(Short(5)))
}

func TestTag_FloatNaNEqual(t *testing.T) {
	nan := Float(math.NaN())
	require.True(t, nan.Equal(Float(math.NaN())))
	require.False(t, nan.Equal(Float(1)))
}

func TestTag_DoubleNaNEqual(t *testing.T) {
	nan := Double(math.NaN())
	require.True(t, nan.Equal(Double(math.NaN())))
}

func TestTag_ArrayEqual(t *testing.T) {
	require.True(t, ByteArray{1, 2}.Equal(ByteArray{1, 2}))
	require.False(t, ByteArray{1, 2}.Equal(ByteArray{1, 3}))
	require.False(t, ByteArray{1, 2}.Equal(ByteArray{1, 2, 3}))
}

func TestList_AppendSetsChildType(t *testing.T) {
	var l List
	l.Append(Int(1))
	l.Append(Int(2))
	require.Equal(t, TypeInt, l.ChildType)
	require.Len(t, l.Items, 2)
}

func TestList_EqualIsOrderSensitive(t *testing.T) {
	a := List{ChildType: TypeInt, Items: []Tag{Int(1), Int(2)}}
	b := List{ChildType: TypeInt, Items: []Tag{Int(2), Int(1)}}
	require.False(t, a.Equal(b))
}

func TestList_EqualIgnoresChildTypeWhenEmpty(t *testing.T) {
	a := List{ChildType: TypeInt, Items: []Tag{}}
	b := List{ChildType: TypeString, Items: []Tag{}}
	require.True(t, a.Equal(b)) // both empty, ChildType not compared
}

func TestType_Numeric(t *testing.T) {
	require.True(t, TypeByte.Numeric())
	require.True(t, TypeDouble.Numeric())
	require.False(t, TypeString.Numeric())
	require.False(t, TypeCompound.Numeric())
	require.False(t, TypeEnd.Numeric())
}
