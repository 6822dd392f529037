//go:build !linux && !freebsd && !darwin

package arena

// mapBlock reserves size bytes from the Go heap on platforms without the
// anonymous-mmap fast path. The release func only drops the reference.
func mapBlock(size int) ([]byte, func()) {
	return make([]byte, size), func() {}
}
