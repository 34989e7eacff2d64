// Package filebridge moves documents between disk and rope buffers. Loads
// validate UTF-8 strictly; large files take a memory-mapped read path that
// produces byte-identical results to the plain one.
package filebridge

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"unicode/utf8"

	"github.com/driftedit/drift/internal/buffer"
	"github.com/driftedit/drift/internal/config"
	"github.com/driftedit/drift/internal/logger"
	"github.com/driftedit/drift/internal/rope"
)

// ErrInvalidUTF8 is returned when a file's contents are not valid UTF-8.
// The editor's coordinate model assumes well-formed text, so malformed
// input is rejected at the boundary rather than patched up.
var ErrInvalidUTF8 = errors.New("file is not valid UTF-8")

// Load reads path into a rope-backed buffer. A missing file yields an empty
// buffer bound to that path, ready to be created on first save. Files at or
// above largeFileThreshold bytes are read through mmap; pass 0 to use the
// configured default.
func Load(path string, largeFileThreshold int64) (*buffer.RopeBuffer, error) {
	if largeFileThreshold <= 0 {
		largeFileThreshold = config.DefaultLargeFileThreshold
	}

	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Debugf("filebridge: %q does not exist, starting empty buffer", path)
		buf := buffer.NewRopeBufferFromString("")
		buf.SetFilePath(path)
		return buf, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to stat %q: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%q is a directory", path)
	}

	var data []byte
	if info.Size() >= largeFileThreshold {
		data, err = readFileMapped(path, info.Size())
		logger.Debugf("filebridge: loaded %q (%d bytes) via mmap", path, info.Size())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", path, err)
	}

	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%q: %w", path, ErrInvalidUTF8)
	}

	r := rope.FromString(string(data))
	return buffer.NewRopeBufferFromRope(r, path), nil
}

// Save writes the buffer to path, truncating any existing file. An empty
// path saves to the buffer's own file path. On success the buffer's path is
// updated and its modified flag cleared.
func Save(buf buffer.Buffer, path string) error {
	if path == "" {
		path = buf.FilePath()
	}
	if path == "" {
		return errors.New("no file path specified for saving")
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %q: %w", path, err)
	}

	w := bufio.NewWriter(f)
	n, err := buf.WriteTo(w)
	if err == nil {
		err = w.Flush()
	}
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("failed to write %q: %w", path, err)
	}

	buf.SetFilePath(path)
	buf.MarkSaved()
	logger.Debugf("filebridge: wrote %d bytes to %q", n, path)
	return nil
}
