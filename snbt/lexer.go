// Package snbt implements the SNBT (Stringified NBT) lexer, recursive-
// descent parser, and serializer (spec.md §4.3, §4.4).
package snbt

import (
	"regexp"
	"strings"
)

// numberBodyRe matches the numeric body of a bare token once any trailing
// type suffix has been stripped: an optional sign, digits with an optional
// fractional part, and an optional exponent.
var numberBodyRe = regexp.MustCompile(`^[+-]?(\d+\.\d*|\.\d+|\d+)([eE][+-]?\d+)?$`)

// bareRune reports whether r may appear inside an unquoted bare_key token:
// [A-Za-z0-9_+.\-] per spec.md §4.3's grammar.
func bareRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '_' || r == '+' || r == '.' || r == '-':
		return true
	}
	return false
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

// reader is a token-free scanner: the parser reads runes directly rather
// than pre-classifying a token stream, per spec.md §1's description of the
// grammar as "token-free recursive-descent."
type reader struct {
	src        []rune
	pos        int
	line, col  int
}

func newReader(s string) *reader {
	return &reader{src: []rune(s), line: 1, col: 1}
}

func (r *reader) eof() bool { return r.pos >= len(r.src) }

func (r *reader) peek() rune {
	if r.eof() {
		return 0
	}
	return r.src[r.pos]
}

func (r *reader) peekAt(off int) rune {
	if r.pos+off >= len(r.src) {
		return 0
	}
	return r.src[r.pos+off]
}

func (r *reader) advance() rune {
	c := r.src[r.pos]
	r.pos++
	if c == '\n' {
		r.line++
		r.col = 1
	} else {
		r.col++
	}
	return c
}

func (r *reader) skipSpace() {
	for !r.eof() && isSpace(r.peek()) {
		r.advance()
	}
}

// readBare consumes a run of bareRune characters and returns it. The caller
// has already confirmed the current rune is a bareRune.
func (r *reader) readBare() string {
	var sb strings.Builder
	for !r.eof() && bareRune(r.peek()) {
		sb.WriteRune(r.advance())
	}
	return sb.String()
}
