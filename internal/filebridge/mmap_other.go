//go:build !unix

package filebridge

import "os"

// readFileMapped falls back to a plain read on platforms without mmap
// support. Results are byte-identical either way.
func readFileMapped(path string, size int64) ([]byte, error) {
	return os.ReadFile(path)
}
