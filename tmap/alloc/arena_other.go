//go:build !(linux || darwin || freebsd)

package alloc

import "os"

// pageSize returns the system page size.
func pageSize() int {
	return os.Getpagesize()
}

// mapChunk allocates chunk memory from the Go heap on platforms without the
// unix mmap path.
func mapChunk(size int) ([]byte, error) {
	return make([]byte, size), nil
}

// unmapChunk drops the reference; the garbage collector reclaims it.
func unmapChunk(_ []byte) error {
	return nil
}
