// Package merge applies one nbt.Tag tree onto another. Compounds merge key
// by key, recursing into nested compounds; every other tag type (including
// lists and arrays) is replaced wholesale by the patch's value, mirroring
// how hive/merge's ops.go treats a .reg value write as a full replacement
// of the target value rather than a field-level patch.
package merge

import "github.com/nbtkit/nbtkit/nbt"

// Compound merges patch into base, mutating and returning base. Keys present
// in patch but not base are added; keys present in both recurse if both
// sides are compounds, otherwise patch's value replaces base's.
func Compound(base, patch *nbt.Compound) *nbt.Compound {
	if base == nil {
		return patch.Clone()
	}
	for _, key := range patch.Keys() {
		pv, _ := patch.Get(key)
		bv, exists := base.Get(key)
		if !exists {
			base.Set(key, cloneTag(pv))
			continue
		}
		bc, bIsCompound := bv.(*nbt.Compound)
		pc, pIsCompound := pv.(*nbt.Compound)
		if bIsCompound && pIsCompound {
			base.Set(key, Compound(bc, pc))
			continue
		}
		base.Set(key, cloneTag(pv))
	}
	return base
}

func cloneTag(t nbt.Tag) nbt.Tag {
	if c, ok := t.(*nbt.Compound); ok {
		return c.Clone()
	}
	return t
}
