package main

import (
	"encoding/binary"

	"github.com/nbtkit/nbtkit/container"
	"github.com/nbtkit/nbtkit/jsonproj"
	"github.com/nbtkit/nbtkit/nbt"
	"github.com/nbtkit/nbtkit/snbt"
)

// byteOrder resolves the --little flag to a concrete binary.ByteOrder.
func byteOrder(little bool) binary.ByteOrder {
	if little {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

// renderOpts mirrors the output-shaping flags common to read/path/find.
type renderOpts struct {
	compact bool
	pretty  bool
	plain   bool
	asJSON  bool
}

// render formats t per opts: --json projects through jsonproj, --plain
// forces Compact SNBT regardless of --compact/--pretty, otherwise the mode
// follows whichever of --compact/--pretty was given (Default otherwise).
func render(t nbt.Tag, opts renderOpts) (string, error) {
	if opts.asJSON {
		out, err := jsonproj.MarshalIndent(t, "", "  ")
		if err != nil {
			return "", err
		}
		return string(out), nil
	}
	mode := snbt.Default
	switch {
	case opts.plain, opts.compact:
		mode = snbt.Compact
	case opts.pretty:
		mode = snbt.Pretty
	}
	return snbt.Serialize(t, snbt.Options{Mode: mode}), nil
}

func openDoc(path string, little bool) (*container.File, error) {
	return container.Open(path, byteOrder(little), container.DefaultStackBudget)
}

func parseSNBTArg(literal string) (nbt.Tag, error) {
	return snbt.Parse(literal)
}

// mustCompound asserts that t (a path.SetAll/DeleteAll result) is still a
// compound root. Any NBT path rooted at a file's root can only replace or
// delete matched sub-tags, never the root tag's own type, so this always
// holds in practice; it documents that invariant at the call site.
func mustCompound(t nbt.Tag) *nbt.Compound {
	c, ok := t.(*nbt.Compound)
	if !ok {
		panic("nbtctl: document root is no longer a compound")
	}
	return c
}
