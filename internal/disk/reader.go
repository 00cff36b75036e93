// Package disk provides the random-access byte source the core filesystem
// decoder reads from (component 1, §2). It owns no filesystem semantics —
// only positioned reads against an underlying image file.
package disk

import (
	"fmt"
	"io"
	"os"

	"github.com/itsjinihere/csc453-asgn05/internal/merrors"
)

// Image is a random-access byte source over a MINIX disk image. The core
// never opens or closes it (§5); the caller owns its lifecycle.
type Image interface {
	io.ReaderAt
	Size() int64
}

// FileImage is an Image backed by an *os.File.
type FileImage struct {
	f    *os.File
	size int64
}

// OpenFile opens path for read-only positioned access.
func OpenFile(path string) (*FileImage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, merrors.Wrap(merrors.IO, "disk.OpenFile", "failed to open image file", err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, merrors.Wrap(merrors.IO, "disk.OpenFile", "failed to stat image file", err)
	}
	return &FileImage{f: f, size: info.Size()}, nil
}

// ReadAt reads len(p) bytes starting at absolute offset off. The
// filesystem core treats every positioned read as a potential failure
// point; callers wrap the returned error with merrors themselves so the
// diagnostic can name the operation.
func (fi *FileImage) ReadAt(p []byte, off int64) (int, error) {
	n, err := fi.f.ReadAt(p, off)
	if err != nil && err != io.EOF {
		return n, fmt.Errorf("image read at %d: %w", off, err)
	}
	if n < len(p) {
		return n, fmt.Errorf("image read at %d: short read (%d of %d bytes)", off, n, len(p))
	}
	return n, nil
}

// Size returns the total size of the underlying image file in bytes.
func (fi *FileImage) Size() int64 { return fi.size }

// Close releases the underlying file handle.
func (fi *FileImage) Close() error { return fi.f.Close() }

// ReadAt is a convenience helper that allocates and returns an n-byte
// buffer read from img at off, wrapping failures with op for diagnostics.
func ReadAt(img Image, off int64, n int, op string) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := img.ReadAt(buf, off); err != nil {
		return nil, merrors.Wrap(merrors.IO, op, "positioned read failed", err)
	}
	return buf, nil
}
