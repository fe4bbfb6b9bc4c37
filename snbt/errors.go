package snbt

import "fmt"

// SyntaxError reports a malformed SNBT document with its source position,
// matching spec.md §7's SnbtSyntax(line, col, msg) error shape.
type SyntaxError struct {
	Line, Col int
	Msg       string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("snbt: %d:%d: %s", e.Line, e.Col, e.Msg)
}

func (r *reader) errorf(format string, args ...any) *SyntaxError {
	return &SyntaxError{Line: r.line, Col: r.col, Msg: fmt.Sprintf(format, args...)}
}
