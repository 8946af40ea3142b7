//go:build linux || darwin || freebsd

package alloc

import (
	"golang.org/x/sys/unix"
)

// pageSize returns the system page size.
func pageSize() int {
	return unix.Getpagesize()
}

// mapChunk maps an anonymous, private read-write region. The OS hands it
// out zero-filled.
func mapChunk(size int) ([]byte, error) {
	return unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
}

// unmapChunk releases a region obtained from mapChunk.
func unmapChunk(mem []byte) error {
	return unix.Munmap(mem)
}
