package container

import (
	"encoding/binary"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nbtkit/nbtkit/nbt"
)

func sampleFile() *File {
	c := nbt.NewCompound()
	c.Set("name", nbt.String("Bob"))
	c.Set("score", nbt.Int(42))
	return &File{OuterName: "root", Root: c, Order: binary.BigEndian}
}

func TestFile_EncodeDecodeRoundTrip(t *testing.T) {
	f := sampleFile()
	buf, err := f.Encode()
	require.NoError(t, err)

	got, err := Decode(buf, binary.BigEndian, DefaultStackBudget)
	require.NoError(t, err)
	require.Equal(t, "root", got.OuterName)
	require.True(t, f.Root.Equal(got.Root))
}

func TestFile_CompressedRoundTrip(t *testing.T) {
	f := sampleFile()
	f.Compressed = true
	buf, err := f.Encode()
	require.NoError(t, err)
	require.Equal(t, byte(0x1F), buf[0])
	require.Equal(t, byte(0x8B), buf[1])

	got, err := Decode(buf, binary.BigEndian, DefaultStackBudget)
	require.NoError(t, err)
	require.True(t, got.Compressed)
	require.True(t, f.Root.Equal(got.Root))
}

func TestFile_SaveAndOpen(t *testing.T) {
	f := sampleFile()
	path := filepath.Join(t.TempDir(), "doc.nbt")
	require.NoError(t, f.Save(path))

	got, err := Open(path, binary.BigEndian, DefaultStackBudget)
	require.NoError(t, err)
	require.True(t, f.Root.Equal(got.Root))
}

func TestFile_EmptyRootStillEmitsTrailingEnd(t *testing.T) {
	f := &File{OuterName: "", Root: nbt.NewCompound(), Order: binary.BigEndian}
	buf, err := f.Encode()
	require.NoError(t, err)
	// discriminator(1) + name length(2) + trailing End(1)
	require.Equal(t, 4, len(buf))
	require.Equal(t, byte(nbt.TypeCompound), buf[0])
	require.Equal(t, byte(nbt.TypeEnd), buf[len(buf)-1])
}

func TestEdit_MutatesAndPersists(t *testing.T) {
	f := sampleFile()
	path := filepath.Join(t.TempDir(), "doc.nbt")
	require.NoError(t, f.Save(path))

	err := Edit(path, binary.BigEndian, DefaultStackBudget, func(f *File) error {
		f.Root.Set("score", nbt.Int(100))
		return nil
	})
	require.NoError(t, err)

	got, err := Open(path, binary.BigEndian, DefaultStackBudget)
	require.NoError(t, err)
	score, _ := got.Root.Get("score")
	require.Equal(t, nbt.Int(100), score)
}
