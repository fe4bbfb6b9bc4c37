// Package path implements the NBT Path addressing mini-language (spec.md
// §4.5): name, .name, [], [i], [{filter}], {filter}, and name{filter}
// accessors, plus the get_all/set_all/delete_all/find operations that
// evaluate a parsed Path against a tag tree.
package path

import (
	"fmt"
	"strings"

	"github.com/nbtkit/nbtkit/nbt"
	"github.com/nbtkit/nbtkit/snbt"
)

// Path is a parsed accessor sequence, ready to evaluate against any root tag.
type Path []Accessor

// Accessor is one step of a Path: selecting a compound key, a list index (or
// every index), or filtering compounds by partial match.
type Accessor interface {
	expand(cells []cell) []cell
	String() string
}

// NamedKey selects the entry named Key out of any compound in scope.
type NamedKey struct{ Key string }

// ListIndex selects one element (or, when Index is nil, every element) out
// of any list in scope.
type ListIndex struct{ Index *int }

// CompoundFilter keeps only the compounds in scope that match Filter
// (spec.md §4.5's partial-match semantics: every key in Filter must be
// present with an Equal, or recursively Match-ing, value).
type CompoundFilter struct{ Filter *nbt.Compound }

func (a NamedKey) String() string {
	if bareNameRe.MatchString(a.Key) {
		return a.Key
	}
	return `"` + strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(a.Key) + `"`
}

func (a ListIndex) String() string {
	if a.Index == nil {
		return "[]"
	}
	return fmt.Sprintf("[%d]", *a.Index)
}

func (a CompoundFilter) String() string {
	return snbt.String(a.Filter)
}

// Join builds a Path from already-typed accessors, useful for constructing
// paths programmatically instead of parsing text.
func Join(accessors ...Accessor) Path {
	return Path(accessors)
}

// String renders p back into path syntax.
func (p Path) String() string {
	var sb strings.Builder
	for i, a := range p {
		switch a.(type) {
		case NamedKey:
			if i > 0 {
				sb.WriteByte('.')
			}
		}
		sb.WriteString(a.String())
	}
	return sb.String()
}
