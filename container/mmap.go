package container

import (
	"encoding/binary"
	"fmt"
)

// OpenMmap decodes path via a memory-mapped read rather than a full
// os.ReadFile copy, for large uncompressed documents. Because Decode fully
// materializes the tag tree (every String is copied out of the mapped
// buffer), the mapping is unmapped before OpenMmap returns — callers never
// need to manage its lifetime.
func OpenMmap(path string, order binary.ByteOrder, stackBudget int) (*File, error) {
	data, unmap, err := mapFile(path)
	if err != nil {
		return nil, fmt.Errorf("container: openmmap %s: %w", path, err)
	}
	defer unmap()
	return Decode(data, order, stackBudget)
}
