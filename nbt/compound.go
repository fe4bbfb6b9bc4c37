package nbt

// Compound is an ordered mapping from non-duplicate names to tags.
// Insertion order is preserved for canonical output but is not semantically
// significant for equality (spec.md §3's invariant). The shape is a
// slice-of-keys-plus-map generalization of the teacher pack's
// ds.LinkedHashMap (thanhnguyen2187-darkest-savior/ds/linked_hash_map.go),
// extended with Delete since NBT Path's delete_all mutates compounds in
// place.
type Compound struct {
	keys   []string
	values map[string]Tag
}

// NewCompound returns an empty Compound ready for use.
func NewCompound() *Compound {
	return &Compound{values: map[string]Tag{}}
}

func (Compound) Type() Type { return TypeCompound }

// Len returns the number of entries.
func (c *Compound) Len() int {
	if c == nil {
		return 0
	}
	return len(c.keys)
}

// Keys returns the entry names in insertion order. The caller must not
// mutate the returned slice.
func (c *Compound) Keys() []string {
	if c == nil {
		return nil
	}
	return c.keys
}

// Get returns the tag stored under name, if any.
func (c *Compound) Get(name string) (Tag, bool) {
	if c == nil {
		return nil, false
	}
	t, ok := c.values[name]
	return t, ok
}

// Set inserts or replaces the entry for name. New keys are appended to the
// end, preserving the order existing keys already have.
func (c *Compound) Set(name string, t Tag) {
	if c.values == nil {
		c.values = map[string]Tag{}
	}
	if _, exists := c.values[name]; !exists {
		c.keys = append(c.keys, name)
	}
	c.values[name] = t
}

// Delete removes the entry for name, reporting whether it was present.
func (c *Compound) Delete(name string) bool {
	if c == nil {
		return false
	}
	if _, ok := c.values[name]; !ok {
		return false
	}
	delete(c.values, name)
	for i, k := range c.keys {
		if k == name {
			c.keys = append(c.keys[:i], c.keys[i+1:]...)
			break
		}
	}
	return true
}

// Range calls fn for every entry in insertion order. Range stops early if
// fn returns false.
func (c *Compound) Range(fn func(name string, t Tag) bool) {
	if c == nil {
		return
	}
	for _, k := range c.keys {
		if !fn(k, c.values[k]) {
			return
		}
	}
}

// Clone returns a copy of c: nested Compounds and Lists are recursively
// cloned, while other tag values (scalars, strings, and the backing slices
// of ByteArray/IntArray/LongArray) are shared. Used by the merge package so
// a merged tree does not alias the patch it was built from.
func (c *Compound) Clone() *Compound {
	if c == nil {
		return nil
	}
	out := &Compound{
		keys:   append([]string(nil), c.keys...),
		values: make(map[string]Tag, len(c.values)),
	}
	for k, v := range c.values {
		out.values[k] = cloneTag(v)
	}
	return out
}

func cloneTag(t Tag) Tag {
	switch v := t.(type) {
	case *Compound:
		return v.Clone()
	case List:
		items := make([]Tag, len(v.Items))
		for i, it := range v.Items {
			items[i] = cloneTag(it)
		}
		return List{ChildType: v.ChildType, Items: items}
	default:
		return t
	}
}

// Match reports whether c contains every entry of filter, recursing into
// nested compounds so a filter's own filters constrain only the keys they
// name. Used by NBT Path's compound-filter accessor ({a:1}) to select a
// subset of a compound's fields rather than requiring exact equality.
func (c *Compound) Match(filter *Compound) bool {
	if filter == nil || filter.Len() == 0 {
		return true
	}
	if c == nil {
		return false
	}
	for _, k := range filter.keys {
		fv := filter.values[k]
		cv, ok := c.values[k]
		if !ok {
			return false
		}
		if fc, isCompound := fv.(*Compound); isCompound {
			cc, ok := cv.(*Compound)
			if !ok || !cc.Match(fc) {
				return false
			}
			continue
		}
		if !fv.Equal(cv) {
			return false
		}
	}
	return true
}

// Equal implements recursive compound equality: same key set, and every
// value tag-equals its counterpart. Order does not matter (spec.md §3).
func (c *Compound) Equal(other Tag) bool {
	o, ok := other.(*Compound)
	if !ok || o == nil || c == nil {
		return ok && o.Len() == c.Len()
	}
	if c.Len() != o.Len() {
		return false
	}
	for k, v := range c.values {
		ov, ok := o.values[k]
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return true
}
