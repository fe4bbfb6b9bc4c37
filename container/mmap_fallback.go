//go:build !unix

package container

import "os"

// mapFile falls back to a plain read when mmap isn't available on the
// target platform.
func mapFile(path string) ([]byte, func() error, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	return data, func() error { return nil }, nil
}
