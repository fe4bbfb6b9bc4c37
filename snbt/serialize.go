package snbt

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/nbtkit/nbtkit/nbt"
)

// bareKeyRe matches compound keys that may be emitted unquoted.
var bareKeyRe = regexp.MustCompile(`^[a-zA-Z0-9._+-]+$`)

// Mode selects the serializer's layout. The zero value is Compact.
type Mode int

const (
	// Compact emits no insignificant whitespace at all.
	Compact Mode = iota
	// Default separates list/compound entries with ", " on a single line.
	Default
	// Pretty multi-line indents compounds and any list whose elements are
	// themselves structural (list, compound, or array), per spec.md §4.4.
	Pretty
)

// Options configures Serialize. Indent is only consulted in Pretty mode and
// defaults to two spaces.
type Options struct {
	Mode   Mode
	Indent string
}

// Serialize renders t as SNBT text under opts.
func Serialize(t nbt.Tag, opts Options) string {
	if opts.Indent == "" {
		opts.Indent = "  "
	}
	s := &serializer{opts: opts}
	var sb strings.Builder
	s.write(&sb, t, 0, true)
	return sb.String()
}

// String renders t in Default mode, the form most callers want for a quick
// human-readable dump.
func String(t nbt.Tag) string {
	return Serialize(t, Options{Mode: Default})
}

type serializer struct {
	opts Options
}

func (s *serializer) write(sb *strings.Builder, t nbt.Tag, depth int, topLevel bool) {
	switch v := t.(type) {
	case nbt.Byte:
		sb.WriteString(strconv.FormatInt(int64(v), 10))
		sb.WriteByte('b')
	case nbt.Short:
		sb.WriteString(strconv.FormatInt(int64(v), 10))
		sb.WriteByte('s')
	case nbt.Int:
		sb.WriteString(strconv.FormatInt(int64(v), 10))
	case nbt.Long:
		sb.WriteString(strconv.FormatInt(int64(v), 10))
		sb.WriteByte('L')
	case nbt.Float:
		sb.WriteString(strconv.FormatFloat(float64(v), 'g', -1, 32))
		sb.WriteByte('f')
	case nbt.Double:
		sb.WriteString(strconv.FormatFloat(float64(v), 'g', -1, 64))
		sb.WriteByte('d')
	case nbt.String:
		sb.WriteString(quoteString(string(v)))
	case nbt.ByteArray:
		s.writeArray(sb, "B", len(v), func(i int) string {
			return strconv.FormatInt(int64(v[i]), 10) + "b"
		})
	case nbt.IntArray:
		s.writeArray(sb, "I", len(v), func(i int) string {
			return strconv.FormatInt(int64(v[i]), 10)
		})
	case nbt.LongArray:
		s.writeArray(sb, "L", len(v), func(i int) string {
			return strconv.FormatInt(v[i], 10) + "L"
		})
	case nbt.List:
		s.writeList(sb, v, depth, topLevel)
	case *nbt.Compound:
		s.writeCompound(sb, v, depth, topLevel)
	}
}

func (s *serializer) writeArray(sb *strings.Builder, tag string, n int, elem func(int) string) {
	sb.WriteByte('[')
	sb.WriteString(tag)
	sb.WriteByte(';')
	for i := 0; i < n; i++ {
		if i > 0 {
			sb.WriteByte(',')
			s.sep(sb)
		} else if n > 0 {
			s.sep(sb)
		}
		sb.WriteString(elem(i))
	}
	sb.WriteByte(']')
}

func (s *serializer) sep(sb *strings.Builder) {
	if s.opts.Mode != Compact {
		sb.WriteByte(' ')
	}
}

func (s *serializer) writeList(sb *strings.Builder, l nbt.List, depth int, topLevel bool) {
	if len(l.Items) == 0 {
		sb.WriteString("[]")
		return
	}
	if s.opts.Mode == Pretty && s.listShouldExpand(l, topLevel) {
		sb.WriteByte('[')
		inner := depth + 1
		for i, item := range l.Items {
			sb.WriteByte('\n')
			sb.WriteString(strings.Repeat(s.opts.Indent, inner))
			s.write(sb, item, inner, false)
			if i != len(l.Items)-1 {
				sb.WriteByte(',')
			}
		}
		sb.WriteByte('\n')
		sb.WriteString(strings.Repeat(s.opts.Indent, depth))
		sb.WriteByte(']')
		return
	}
	sb.WriteByte('[')
	for i, item := range l.Items {
		if i > 0 {
			sb.WriteByte(',')
			s.sep(sb)
		}
		s.write(sb, item, depth, false)
	}
	sb.WriteByte(']')
}

// listShouldExpand reports whether a non-empty list is broken across
// multiple lines in Pretty mode: always at the top level, and otherwise
// only when its elements are themselves structural (list, compound, or a
// typed array), matching the intent of the original nbtlib serializer's
// should_expand rule while collapsing lists of scalars to one line.
func (s *serializer) listShouldExpand(l nbt.List, topLevel bool) bool {
	if topLevel {
		return true
	}
	switch l.ChildType {
	case nbt.TypeList, nbt.TypeCompound, nbt.TypeByteArray, nbt.TypeIntArray, nbt.TypeLongArray:
		return true
	default:
		return false
	}
}

func (s *serializer) writeCompound(sb *strings.Builder, c *nbt.Compound, depth int, topLevel bool) {
	keys := c.Keys()
	if len(keys) == 0 {
		sb.WriteString("{}")
		return
	}
	if s.opts.Mode == Pretty {
		sb.WriteByte('{')
		inner := depth + 1
		for i, k := range keys {
			sb.WriteByte('\n')
			sb.WriteString(strings.Repeat(s.opts.Indent, inner))
			sb.WriteString(quoteKey(k))
			sb.WriteString(": ")
			v, _ := c.Get(k)
			s.write(sb, v, inner, false)
			if i != len(keys)-1 {
				sb.WriteByte(',')
			}
		}
		sb.WriteByte('\n')
		sb.WriteString(strings.Repeat(s.opts.Indent, depth))
		sb.WriteByte('}')
		return
	}
	sb.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			sb.WriteByte(',')
			s.sep(sb)
		}
		sb.WriteString(quoteKey(k))
		sb.WriteByte(':')
		s.sep(sb)
		v, _ := c.Get(k)
		s.write(sb, v, depth, false)
	}
	sb.WriteByte('}')
}

// quoteKey emits k bare when it matches the bare-key grammar, quoted
// otherwise.
func quoteKey(k string) string {
	if bareKeyRe.MatchString(k) {
		return k
	}
	return quoteString(k)
}

// quoteString picks the quote character that needs the least escaping:
// double quotes unless the string contains a double quote but no single
// quote, in which case single quotes are used instead.
func quoteString(s string) string {
	quote := byte('"')
	if strings.ContainsRune(s, '"') && !strings.ContainsRune(s, '\'') {
		quote = '\''
	}
	var sb strings.Builder
	sb.WriteByte(quote)
	for _, r := range s {
		switch {
		case byte(r) == quote:
			sb.WriteByte('\\')
			sb.WriteRune(r)
		case r == '\\':
			sb.WriteString(`\\`)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte(quote)
	return sb.String()
}
