//go:build unix

package filebridge

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// readFileMapped reads a file through a read-only private mapping. The
// mapping is copied into an ordinary heap slice before unmapping, so the
// caller never touches mapped memory.
func readFileMapped(path string, size int64) ([]byte, error) {
	if size == 0 {
		return nil, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	mapped, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("mmap %q: %w", path, err)
	}
	defer unix.Munmap(mapped)

	data := make([]byte, len(mapped))
	copy(data, mapped)
	return data, nil
}
