package path

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/nbtkit/nbtkit/nbt"
	"github.com/nbtkit/nbtkit/snbt"
)

var bareNameRe = regexp.MustCompile(`^[a-zA-Z0-9_+-]+$`)

func nameRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '_' || r == '+' || r == '-':
		return true
	}
	return false
}

// Parse parses path text into a Path, per spec.md §4.5's grammar.
func Parse(s string) (Path, error) {
	r := []rune(s)
	pos := 0
	var accessors Path

	peek := func() rune {
		if pos >= len(r) {
			return 0
		}
		return r[pos]
	}

	for pos < len(r) {
		switch {
		case peek() == '.':
			pos++
			name, err := readName(r, &pos)
			if err != nil {
				return nil, err
			}
			accessors = append(accessors, NamedKey{Key: name})

		case peek() == '[':
			pos++
			acc, err := parseBracket(r, &pos)
			if err != nil {
				return nil, err
			}
			accessors = append(accessors, acc)

		case peek() == '{':
			filter, err := readFilter(r, &pos)
			if err != nil {
				return nil, err
			}
			accessors = append(accessors, CompoundFilter{Filter: filter})

		default:
			name, err := readName(r, &pos)
			if err != nil {
				return nil, err
			}
			accessors = append(accessors, NamedKey{Key: name})
		}
	}
	return accessors, nil
}

func readName(r []rune, pos *int) (string, error) {
	if *pos < len(r) && r[*pos] == '"' {
		return readQuotedName(r, pos)
	}
	start := *pos
	for *pos < len(r) && nameRune(r[*pos]) {
		*pos++
	}
	if *pos == start {
		return "", fmt.Errorf("path: expected a name at position %d", start)
	}
	return string(r[start:*pos]), nil
}

func readQuotedName(r []rune, pos *int) (string, error) {
	*pos++ // opening quote
	var sb strings.Builder
	for {
		if *pos >= len(r) {
			return "", fmt.Errorf("path: unterminated quoted name")
		}
		c := r[*pos]
		*pos++
		if c == '"' {
			return sb.String(), nil
		}
		if c == '\\' && *pos < len(r) {
			sb.WriteRune(r[*pos])
			*pos++
			continue
		}
		sb.WriteRune(c)
	}
}

// parseBracket parses the body of a '[' that has already been consumed:
// "]" (wildcard), "<digits>]" (index), or "{filter}]" (compound filter
// applied element-wise, expressed as wildcard-then-filter per spec.md §4.5).
func parseBracket(r []rune, pos *int) (Accessor, error) {
	if *pos < len(r) && r[*pos] == ']' {
		*pos++
		return ListIndex{Index: nil}, nil
	}
	if *pos < len(r) && r[*pos] == '{' {
		filter, err := readFilter(r, pos)
		if err != nil {
			return nil, err
		}
		if *pos >= len(r) || r[*pos] != ']' {
			return nil, fmt.Errorf("path: expected ']' after bracketed filter")
		}
		*pos++
		return bracketFilter{Filter: filter}, nil
	}
	start := *pos
	neg := false
	if *pos < len(r) && r[*pos] == '-' {
		neg = true
		*pos++
	}
	digitStart := *pos
	for *pos < len(r) && r[*pos] >= '0' && r[*pos] <= '9' {
		*pos++
	}
	if *pos == digitStart {
		return nil, fmt.Errorf("path: expected an index or ']' at position %d", start)
	}
	n, err := strconv.Atoi(string(r[digitStart:*pos]))
	if err != nil {
		return nil, fmt.Errorf("path: invalid index: %w", err)
	}
	if neg {
		n = -n
	}
	if *pos >= len(r) || r[*pos] != ']' {
		return nil, fmt.Errorf("path: expected ']' after index")
	}
	*pos++
	return ListIndex{Index: &n}, nil
}

// bracketFilter expands to a wildcard list selection followed by a compound
// filter — [{a:1}] means "every list element matching {a:1}".
type bracketFilter struct{ Filter *nbt.Compound }

func (b bracketFilter) expand(cells []cell) []cell {
	wild := ListIndex{Index: nil}.expand(cells)
	return CompoundFilter{Filter: b.Filter}.expand(wild)
}

func (b bracketFilter) String() string {
	return "[" + snbt.String(b.Filter) + "]"
}

// readFilter parses a '{...}' compound literal by delegating to the SNBT
// parser for a balanced brace span, then advances pos past it.
func readFilter(r []rune, pos *int) (*nbt.Compound, error) {
	start := *pos
	depth := 0
	inString := false
	var quote rune
	i := *pos
	for i < len(r) {
		c := r[i]
		if inString {
			if c == '\\' {
				i += 2
				continue
			}
			if c == quote {
				inString = false
			}
			i++
			continue
		}
		switch c {
		case '"', '\'':
			inString = true
			quote = c
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				i++
				tag, err := snbt.Parse(string(r[start:i]))
				if err != nil {
					return nil, fmt.Errorf("path: invalid filter: %w", err)
				}
				c, ok := tag.(*nbt.Compound)
				if !ok {
					return nil, fmt.Errorf("path: filter must be a compound")
				}
				*pos = i
				return c, nil
			}
		}
		i++
	}
	return nil, fmt.Errorf("path: unterminated filter starting at position %d", start)
}
