// Package container implements the NBT file container (spec.md §4.6): a
// named root tag plus byte order and gzip-compression framing, read and
// written as a whole.
package container

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"

	"github.com/nbtkit/nbtkit/nbt"
	"github.com/nbtkit/nbtkit/scan"
)

// gzipMagic is the two leading bytes of every gzip stream (RFC 1952 §2.3),
// used to auto-detect compression on read.
var gzipMagic = [2]byte{0x1F, 0x8B}

// DefaultStackBudget bounds the scanner's explicit operation stack when a
// caller doesn't have a tighter budget of their own.
const DefaultStackBudget = 512

// File is a single NBT document: a named root compound, the byte order its
// binary form was (or will be) encoded in, and whether it is gzip-framed on
// disk.
type File struct {
	OuterName  string
	Root       *nbt.Compound
	Compressed bool
	Order      binary.ByteOrder
}

// Open reads and decodes path, auto-detecting gzip compression by magic
// bytes and decoding the NBT payload in order.
func Open(path string, order binary.ByteOrder, stackBudget int) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("container: open %s: %w", path, err)
	}
	return Decode(raw, order, stackBudget)
}

// Decode parses an in-memory NBT document, auto-detecting gzip framing.
func Decode(raw []byte, order binary.ByteOrder, stackBudget int) (*File, error) {
	compressed := len(raw) >= 2 && raw[0] == gzipMagic[0] && raw[1] == gzipMagic[1]
	buf := raw
	if compressed {
		gz, err := gzip.NewReader(bytes.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("container: gzip: %w", err)
		}
		defer gz.Close()
		decoded, err := io.ReadAll(gz)
		if err != nil {
			return nil, fmt.Errorf("container: gzip: %w", err)
		}
		buf = decoded
	}

	idx, err := scan.Scan(buf, stackBudget, order)
	if err != nil {
		return nil, fmt.Errorf("container: scan: %w", err)
	}
	name, root, err := scan.Materialize(idx)
	if err != nil {
		return nil, fmt.Errorf("container: materialize: %w", err)
	}
	comp, ok := root.(*nbt.Compound)
	if !ok {
		return nil, fmt.Errorf("container: root tag is %s, not Compound", root.Type())
	}
	return &File{OuterName: name, Root: comp, Compressed: compressed, Order: order}, nil
}

// Encode serializes f to its binary form, always terminating the outer
// Compound with a trailing End byte (spec.md §4.6 calls this out explicitly:
// a prior generation of NBT writers in this lineage dropped it for empty
// roots, producing files that most readers rejected).
func (f *File) Encode() ([]byte, error) {
	buf, err := nbt.EncodeNamed(nil, f.Order, f.OuterName, f.Root)
	if err != nil {
		return nil, fmt.Errorf("container: encode: %w", err)
	}
	if !f.Compressed {
		return buf, nil
	}
	var out bytes.Buffer
	gz := gzip.NewWriter(&out)
	if _, err := gz.Write(buf); err != nil {
		return nil, fmt.Errorf("container: gzip: %w", err)
	}
	if err := gz.Close(); err != nil {
		return nil, fmt.Errorf("container: gzip: %w", err)
	}
	return out.Bytes(), nil
}

// Save encodes f and writes it to path.
func (f *File) Save(path string) error {
	buf, err := f.Encode()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		return fmt.Errorf("container: save %s: %w", path, err)
	}
	return nil
}

// Edit opens path, applies fn to the decoded File, and saves the result back
// to path — a scoped acquire-mutate-save helper so callers never forget to
// persist a change.
func Edit(path string, order binary.ByteOrder, stackBudget int, fn func(*File) error) error {
	f, err := Open(path, order, stackBudget)
	if err != nil {
		return err
	}
	if err := fn(f); err != nil {
		return err
	}
	return f.Save(path)
}
