package schema

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nbtkit/nbtkit/nbt"
)

func personSchema() Schema {
	return Schema{
		"name": {Type: nbt.TypeString},
		"age":  {Type: nbt.TypeInt, Optional: true},
	}
}

func TestValidate_LenientIgnoresUnknownKeys(t *testing.T) {
	c := nbt.NewCompound()
	c.Set("name", nbt.String("Bob"))
	c.Set("extra", nbt.Int(1))
	require.NoError(t, Validate(c, personSchema(), Lenient))
}

func TestValidate_StrictRejectsUnknownKeys(t *testing.T) {
	c := nbt.NewCompound()
	c.Set("name", nbt.String("Bob"))
	c.Set("extra", nbt.Int(1))
	err := Validate(c, personSchema(), Strict)
	require.ErrorIs(t, err, nbt.ErrUnknownKey)
}

func TestValidate_TypeMismatch(t *testing.T) {
	c := nbt.NewCompound()
	c.Set("name", nbt.Int(1))
	err := Validate(c, personSchema(), Lenient)
	require.Error(t, err)
}

func TestValidate_MissingRequiredField(t *testing.T) {
	c := nbt.NewCompound()
	err := Validate(c, personSchema(), Lenient)
	require.Error(t, err)
}

func TestValidate_OptionalFieldMayBeAbsent(t *testing.T) {
	c := nbt.NewCompound()
	c.Set("name", nbt.String("Bob"))
	require.NoError(t, Validate(c, personSchema(), Strict))
}

func TestCoerce_DropsUnknownKeys(t *testing.T) {
	c := nbt.NewCompound()
	c.Set("name", nbt.String("Bob"))
	c.Set("extra", nbt.Int(1))
	out := Coerce(c, personSchema())
	_, hasExtra := out.Get("extra")
	require.False(t, hasExtra)
	name, ok := out.Get("name")
	require.True(t, ok)
	require.Equal(t, nbt.String("Bob"), name)
}
