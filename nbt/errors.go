package nbt

import "errors"

// Sentinel errors returned by the binary codec, the scanner, and the SNBT
// parser. Callers match against these with errors.Is; wrapping preserves
// location context the way internal/format's sentinels do in the teacher.
var (
	// ErrUnexpectedEOF indicates a read would exceed the buffer's bounds.
	ErrUnexpectedEOF = errors.New("nbt: unexpected end of buffer")
	// ErrInvalidType indicates an unknown tag id, or a stack word that is
	// neither a valid tag id nor a recognized operation marker.
	ErrInvalidType = errors.New("nbt: invalid tag type")
	// ErrDepthExceeded indicates the caller-supplied stack budget was exhausted.
	ErrDepthExceeded = errors.New("nbt: nesting depth exceeded")
	// ErrOutOfMemory indicates the descriptor vector could not grow.
	ErrOutOfMemory = errors.New("nbt: out of memory")
	// ErrNumericRange indicates an SNBT numeric literal did not fit its suffix type.
	ErrNumericRange = errors.New("nbt: numeric literal out of range")
	// ErrListHeterogeneous indicates SNBT list elements disagreed on tag type.
	ErrListHeterogeneous = errors.New("nbt: list elements have different types")
	// ErrUnknownKey indicates a strict schema rejected an unrecognized key.
	ErrUnknownKey = errors.New("nbt: unknown key")
)
