package snbt

import (
	"strconv"
	"strings"

	"github.com/nbtkit/nbtkit/nbt"
)

// Parse parses a complete SNBT document into a tag, per spec.md §4.3.
// Trailing non-whitespace after the value is a syntax error.
func Parse(s string) (nbt.Tag, error) {
	r := newReader(s)
	r.skipSpace()
	t, err := parseValue(r)
	if err != nil {
		return nil, err
	}
	r.skipSpace()
	if !r.eof() {
		return nil, r.errorf("unexpected trailing input")
	}
	return t, nil
}

func parseValue(r *reader) (nbt.Tag, error) {
	r.skipSpace()
	if r.eof() {
		return nil, r.errorf("unexpected end of input")
	}
	switch r.peek() {
	case '{':
		return parseCompound(r)
	case '[':
		return parseListOrArray(r)
	case '"', '\'':
		s, err := parseQuotedString(r)
		if err != nil {
			return nil, err
		}
		return nbt.String(s), nil
	default:
		if !bareRune(r.peek()) {
			return nil, r.errorf("unexpected character %q", r.peek())
		}
		tok := r.readBare()
		t, err := classifyBare(tok)
		if err != nil {
			return nil, r.errorf("%s", err.Error())
		}
		return t, nil
	}
}

func parseCompound(r *reader) (nbt.Tag, error) {
	r.advance() // '{'
	c := nbt.NewCompound()
	r.skipSpace()
	if !r.eof() && r.peek() == '}' {
		r.advance()
		return c, nil
	}
	for {
		r.skipSpace()
		key, err := parseCompoundKey(r)
		if err != nil {
			return nil, err
		}
		r.skipSpace()
		if r.eof() || r.peek() != ':' {
			return nil, r.errorf("expected ':' after compound key")
		}
		r.advance()
		val, err := parseValue(r)
		if err != nil {
			return nil, err
		}
		c.Set(key, val)
		r.skipSpace()
		if r.eof() {
			return nil, r.errorf("unterminated compound")
		}
		switch r.peek() {
		case ',':
			r.advance()
			r.skipSpace()
			if !r.eof() && r.peek() == '}' {
				r.advance()
				return c, nil
			}
		case '}':
			r.advance()
			return c, nil
		default:
			return nil, r.errorf("expected ',' or '}' in compound")
		}
	}
}

func parseCompoundKey(r *reader) (string, error) {
	if r.eof() {
		return "", r.errorf("unexpected end of input in compound key")
	}
	if r.peek() == '"' || r.peek() == '\'' {
		return parseQuotedString(r)
	}
	if !bareRune(r.peek()) {
		return "", r.errorf("unexpected character %q in compound key", r.peek())
	}
	return r.readBare(), nil
}

// parseListOrArray handles '[', disambiguating a typed array ([B;...],
// [I;...], [L;...]) from a plain list by looking ahead for the "<letter>;"
// marker immediately after the bracket.
func parseListOrArray(r *reader) (nbt.Tag, error) {
	r.advance() // '['
	if kind, ok := arrayMarker(r); ok {
		return parseArray(r, kind)
	}
	return parseList(r)
}

// arrayMarker reports whether the reader is positioned at "B;", "I;", or
// "L;" (case-sensitive, per spec.md §3's typed-array grammar), consuming it
// if so.
func arrayMarker(r *reader) (byte, bool) {
	c := r.peek()
	if c != 'B' && c != 'I' && c != 'L' {
		return 0, false
	}
	if r.peekAt(1) != ';' {
		return 0, false
	}
	r.advance()
	r.advance()
	return byte(c), true
}

func parseList(r *reader) (nbt.Tag, error) {
	list := nbt.List{ChildType: nbt.TypeEnd}
	r.skipSpace()
	if !r.eof() && r.peek() == ']' {
		r.advance()
		return list, nil
	}
	for {
		r.skipSpace()
		item, err := parseValue(r)
		if err != nil {
			return nil, err
		}
		if len(list.Items) > 0 && item.Type() != list.ChildType {
			return nil, r.errorf("%s", nbt.ErrListHeterogeneous.Error())
		}
		list.Append(item)
		r.skipSpace()
		if r.eof() {
			return nil, r.errorf("unterminated list")
		}
		switch r.peek() {
		case ',':
			r.advance()
			r.skipSpace()
			if !r.eof() && r.peek() == ']' {
				r.advance()
				return list, nil
			}
		case ']':
			r.advance()
			return list, nil
		default:
			return nil, r.errorf("expected ',' or ']' in list")
		}
	}
}

func parseArray(r *reader, kind byte) (nbt.Tag, error) {
	var i8 []int8
	var i32 []int32
	var i64 []int64

	r.skipSpace()
	if !r.eof() && r.peek() == ']' {
		r.advance()
		return emptyArray(kind), nil
	}
	for {
		r.skipSpace()
		if r.eof() || !bareRune(r.peek()) {
			return nil, r.errorf("expected array element")
		}
		tok := r.readBare()
		v, err := parseArrayElement(r, tok, kind)
		if err != nil {
			return nil, err
		}
		switch kind {
		case 'B':
			i8 = append(i8, int8(v))
		case 'I':
			i32 = append(i32, int32(v))
		case 'L':
			i64 = append(i64, v)
		}
		r.skipSpace()
		if r.eof() {
			return nil, r.errorf("unterminated array")
		}
		switch r.peek() {
		case ',':
			r.advance()
			r.skipSpace()
			if !r.eof() && r.peek() == ']' {
				r.advance()
				return finishArray(kind, i8, i32, i64), nil
			}
		case ']':
			r.advance()
			return finishArray(kind, i8, i32, i64), nil
		default:
			return nil, r.errorf("expected ',' or ']' in array")
		}
	}
}

func emptyArray(kind byte) nbt.Tag {
	switch kind {
	case 'B':
		return nbt.ByteArray{}
	case 'I':
		return nbt.IntArray{}
	default:
		return nbt.LongArray{}
	}
}

func finishArray(kind byte, i8 []int8, i32 []int32, i64 []int64) nbt.Tag {
	switch kind {
	case 'B':
		return nbt.ByteArray(i8)
	case 'I':
		return nbt.IntArray(i32)
	default:
		return nbt.LongArray(i64)
	}
}

// parseArrayElement parses one array element token. The element's suffix,
// if present, must match the array's kind or be absent — spec.md §3's
// "element suffixes must match or be absent" rule.
func parseArrayElement(r *reader, tok string, kind byte) (int64, error) {
	body, suffix := splitSuffix(tok)
	expected := byte(0)
	switch kind {
	case 'B':
		expected = 'b'
	case 'L':
		expected = 'l'
	}
	if suffix != 0 && suffix != expected {
		return 0, r.errorf("array element suffix %q does not match array type", suffix)
	}
	if !numberBodyRe.MatchString(body) || strings.ContainsAny(body, ".eE") {
		return 0, r.errorf("array elements must be integers")
	}
	v, err := strconv.ParseInt(body, 10, 64)
	if err != nil {
		return 0, r.errorf("invalid integer %q", tok)
	}
	switch kind {
	case 'B':
		if v < -128 || v > 127 {
			return 0, r.errorf("%s", nbt.ErrNumericRange.Error())
		}
	case 'I':
		if v < -2147483648 || v > 2147483647 {
			return 0, r.errorf("%s", nbt.ErrNumericRange.Error())
		}
	}
	return v, nil
}

func parseQuotedString(r *reader) (string, error) {
	quote := r.advance()
	var sb strings.Builder
	for {
		if r.eof() {
			return "", r.errorf("unterminated string")
		}
		c := r.advance()
		if c == quote {
			return sb.String(), nil
		}
		if c == '\\' {
			if r.eof() {
				return "", r.errorf("unterminated escape sequence")
			}
			esc := r.advance()
			switch esc {
			case '\\', '"', '\'':
				sb.WriteRune(esc)
			case 'n':
				sb.WriteRune('\n')
			case 't':
				sb.WriteRune('\t')
			default:
				sb.WriteRune('\\')
				sb.WriteRune(esc)
			}
			continue
		}
		sb.WriteRune(c)
	}
}

func splitSuffix(tok string) (body string, suffix byte) {
	if tok == "" {
		return tok, 0
	}
	last := tok[len(tok)-1]
	lower := lowerByte(last)
	switch lower {
	case 'b', 's', 'l', 'f', 'd':
		return tok[:len(tok)-1], lower
	default:
		return tok, 0
	}
}

func lowerByte(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

// classifyBare disambiguates a bare token into a number, the boolean
// aliases true/false, or a plain bare string, per spec.md §4.3's number
// disambiguation rules: a token that would be a number but fails to parse
// (wrong suffix combination, out-of-range for an unsuffixed literal, empty
// body) silently reverts to a bare string rather than erroring, EXCEPT an
// explicitly suffixed literal that is merely out of range for its suffix,
// which is a NumericRange error.
func classifyBare(tok string) (nbt.Tag, error) {
	if tok == "true" {
		return nbt.Byte(1), nil
	}
	if tok == "false" {
		return nbt.Byte(0), nil
	}
	if t, err, isNumber := tryNumber(tok); isNumber {
		if err != nil {
			// A suffixed literal with number-shaped syntax but a value out
			// of its suffix's range is an error, not a bare-string fallback.
			return nil, err
		}
		return t, nil
	}
	return nbt.String(tok), nil
}

// tryNumber attempts to classify tok as a number. isNumber is true when tok
// has number-shaped syntax (a numeric body, optionally suffixed); err is
// non-nil only when isNumber is true and the value is out of range for an
// explicit suffix.
func tryNumber(tok string) (nbt.Tag, error, bool) {
	body, suffix := splitSuffix(tok)
	if body == "" || !numberBodyRe.MatchString(body) {
		return nil, nil, false
	}
	isFrac := strings.ContainsAny(body, ".eE")

	switch suffix {
	case 'b', 's', 'l':
		if isFrac {
			return nil, nil, false
		}
		v, err := strconv.ParseInt(body, 10, 64)
		if err != nil {
			if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
				return nil, nbt.ErrNumericRange, true
			}
			return nil, nil, false
		}
		switch suffix {
		case 'b':
			if v < -128 || v > 127 {
				return nil, nbt.ErrNumericRange, true
			}
			return nbt.Byte(v), nil, true
		case 's':
			if v < -32768 || v > 32767 {
				return nil, nbt.ErrNumericRange, true
			}
			return nbt.Short(v), nil, true
		default: // 'l'
			return nbt.Long(v), nil, true
		}

	case 'f', 'd':
		v, err := strconv.ParseFloat(body, 64)
		if err != nil {
			return nil, nil, false
		}
		if suffix == 'f' {
			return nbt.Float(float32(v)), nil, true
		}
		return nbt.Double(v), nil, true

	default:
		if isFrac {
			v, err := strconv.ParseFloat(body, 64)
			if err != nil {
				return nil, nil, false
			}
			return nbt.Double(v), nil, true
		}
		v, err := strconv.ParseInt(body, 10, 64)
		if err != nil {
			return nil, nil, false
		}
		if v >= -2147483648 && v <= 2147483647 {
			return nbt.Int(v), nil, true
		}
		return nbt.Long(v), nil, true
	}
}
