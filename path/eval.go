package path

import (
	"github.com/samber/lo"

	"github.com/nbtkit/nbtkit/nbt"
)

// cell is a mutable location inside a tag tree: get reads the tag currently
// there, set replaces it, and del removes it from its parent. Each Accessor
// consumes a slice of cells (its matches so far) and produces the next
// slice, so a Path evaluates as a left-to-right fold over its accessors.
type cell struct {
	get func() nbt.Tag
	set func(nbt.Tag)
	del func()
}

func rootCell(root nbt.Tag) (*nbt.Tag, cell) {
	holder := new(nbt.Tag)
	*holder = root
	return holder, cell{
		get: func() nbt.Tag { return *holder },
		set: func(nv nbt.Tag) { *holder = nv },
		del: func() { *holder = nil },
	}
}

func (a NamedKey) expand(cells []cell) []cell {
	var out []cell
	for _, c := range cells {
		comp, ok := c.get().(*nbt.Compound)
		if !ok {
			continue
		}
		if _, found := comp.Get(a.Key); !found {
			continue
		}
		key, comp := a.Key, comp
		out = append(out, cell{
			get: func() nbt.Tag { v, _ := comp.Get(key); return v },
			set: func(nv nbt.Tag) { comp.Set(key, nv) },
			del: func() { comp.Delete(key) },
		})
	}
	return out
}

func (a ListIndex) expand(cells []cell) []cell {
	var out []cell
	for _, parent := range cells {
		list, ok := parent.get().(nbt.List)
		if !ok {
			continue
		}
		n := len(list.Items)
		parent := parent

		add := func(i int) {
			out = append(out, cell{
				get: func() nbt.Tag {
					l := parent.get().(nbt.List)
					return l.Items[i]
				},
				set: func(nv nbt.Tag) {
					l := parent.get().(nbt.List)
					l.Items[i] = nv
					parent.set(l)
				},
				del: func() {
					l := parent.get().(nbt.List)
					l.Items = append(l.Items[:i], l.Items[i+1:]...)
					parent.set(l)
				},
			})
		}

		if a.Index == nil {
			for i := 0; i < n; i++ {
				add(i)
			}
			continue
		}
		i := *a.Index
		if i < 0 {
			i += n
		}
		if i < 0 || i >= n {
			continue
		}
		add(i)
	}
	return out
}

func (a CompoundFilter) expand(cells []cell) []cell {
	var out []cell
	for _, c := range cells {
		comp, ok := c.get().(*nbt.Compound)
		if !ok || !comp.Match(a.Filter) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// evaluate folds p's accessors over root, returning the matched cells in
// document order together with the root holder (so callers can observe a
// replaced root after SetAll/DeleteAll).
func (p Path) evaluate(root nbt.Tag) (*nbt.Tag, []cell) {
	holder, rc := rootCell(root)
	cells := []cell{rc}
	for _, a := range p {
		cells = a.expand(cells)
		if len(cells) == 0 {
			break
		}
	}
	return holder, cells
}

// GetAll returns every tag matched by p in root, in document order.
func GetAll(root nbt.Tag, p Path) []nbt.Tag {
	_, cells := p.evaluate(root)
	out := make([]nbt.Tag, len(cells))
	for i, c := range cells {
		out[i] = c.get()
	}
	return out
}

// Find returns the first tag matched by p, or ok=false if p selects nothing
// — an empty selection is a no-op, not an error (spec.md §7's PathApply).
func Find(root nbt.Tag, p Path) (nbt.Tag, bool) {
	_, cells := p.evaluate(root)
	if len(cells) == 0 {
		return nil, false
	}
	return cells[0].get(), true
}

// SetAll replaces every tag matched by p with value and returns the
// (possibly replaced, if p is empty) root.
func SetAll(root nbt.Tag, p Path, value nbt.Tag) nbt.Tag {
	holder, cells := p.evaluate(root)
	for _, c := range cells {
		c.set(value)
	}
	return *holder
}

// DeleteAll removes every tag matched by p and returns the resulting root.
// Matches are deleted in reverse document order (spec.md §4.5's invariant):
// this is what keeps multiple ListIndex deletions out of the same list from
// invalidating each other's captured indices, since later document-order
// matches always have equal or higher index than earlier ones in any list
// they share.
func DeleteAll(root nbt.Tag, p Path) nbt.Tag {
	holder, cells := p.evaluate(root)
	for _, c := range lo.Reverse(cells) {
		c.del()
	}
	return *holder
}
