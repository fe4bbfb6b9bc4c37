// Package schema validates a Compound's entries against an expected
// key-to-type mapping, in strict or lenient mode (spec.md §4.7). Grounded on
// pkg/types' typed-error-category style and hive/edit's strict/lenient
// validation split for registry value types, generalized from RegType to
// nbt.Type.
package schema

import (
	"fmt"

	"github.com/nbtkit/nbtkit/nbt"
)

// Field describes one expected compound entry.
type Field struct {
	Type     nbt.Type
	Optional bool
}

// Schema maps compound keys to their expected tag type.
type Schema map[string]Field

// Mode selects how Validate treats keys the schema doesn't mention.
type Mode int

const (
	// Lenient ignores keys not named in the schema.
	Lenient Mode = iota
	// Strict rejects any key not named in the schema with ErrUnknownKey.
	Strict
)

// Validate checks c against s. In Strict mode every key in c must appear in
// s; in both modes, every key present in c that the schema also names must
// have the declared type, and every required (non-Optional) field in s must
// be present in c.
func Validate(c *nbt.Compound, s Schema, mode Mode) error {
	if c == nil {
		c = nbt.NewCompound()
	}
	for _, key := range c.Keys() {
		field, known := s[key]
		if !known {
			if mode == Strict {
				return fmt.Errorf("schema: key %q: %w", key, nbt.ErrUnknownKey)
			}
			continue
		}
		v, _ := c.Get(key)
		if v.Type() != field.Type {
			return fmt.Errorf("schema: key %q: expected %s, got %s", key, field.Type, v.Type())
		}
	}
	for key, field := range s {
		if field.Optional {
			continue
		}
		if _, ok := c.Get(key); !ok {
			return fmt.Errorf("schema: missing required key %q", key)
		}
	}
	return nil
}

// Coerce returns a copy of c containing only the keys s declares, dropping
// everything else — the lenient counterpart to Strict validation, useful
// for projecting an over-wide document down to its known shape.
func Coerce(c *nbt.Compound, s Schema) *nbt.Compound {
	out := nbt.NewCompound()
	if c == nil {
		return out
	}
	for key := range s {
		if v, ok := c.Get(key); ok {
			out.Set(key, v)
		}
	}
	return out
}
