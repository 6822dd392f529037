//go:build linux || freebsd || darwin

package arena

import "golang.org/x/sys/unix"

// mapBlock reserves size bytes of anonymous memory. The returned release
// func unmaps the region; after calling it the block must not be touched.
// Falls back to the Go heap when mmap is unavailable (e.g. rlimit hit).
func mapBlock(size int) ([]byte, func()) {
	b, err := unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return make([]byte, size), func() {}
	}
	return b, func() {
		_ = unix.Munmap(b)
	}
}
