// Package file implements the file materializer (component 8, §4.7):
// driving the zone walker for a regular-file inode and writing its bytes
// — zero-filling holes — to an output byte stream, truncated to the
// inode's recorded size.
package file

import (
	"fmt"
	"io"

	"github.com/itsjinihere/csc453-asgn05/internal/disk"
	"github.com/itsjinihere/csc453-asgn05/internal/fsctx"
	"github.com/itsjinihere/csc453-asgn05/internal/merrors"
	"github.com/itsjinihere/csc453-asgn05/internal/types"
)

// Materialize writes ino's bytes to out, zero-filling holes, stopping once
// ino.Size bytes have been written. Internal reads and zero-fills are
// chunked to ctx.CopyChunkSize (§9 "Buffers"); the chunk size does not
// affect the bytes produced. If the zone walker's addressable range is
// exhausted before ino.Size is satisfied, it returns a Format error
// naming how many bytes were unreachable (§4.7, §7).
func Materialize(ctx *fsctx.Context, ino *types.Inode, out io.Writer) error {
	chunkSize := ctx.CopyChunkSize

	remaining := ino.Size
	w := ctx.Walker(ino)
	k := uint64(0)

	for remaining > 0 {
		if k >= w.Limit() {
			return merrors.New(merrors.Format, "file.Materialize",
				fmt.Sprintf("file larger than addressable: %d bytes unreachable", remaining))
		}

		toDo := remaining
		if toDo > ctx.ZoneSize {
			toDo = ctx.ZoneSize
		}

		z, err := w.Zone(k)
		if err != nil {
			return err
		}

		if z == 0 {
			if err := writeZeros(out, toDo, chunkSize); err != nil {
				return merrors.Wrap(merrors.IO, "file.Materialize", "failed to write hole bytes", err)
			}
		} else {
			off := ctx.Offset + int64(z)*int64(ctx.ZoneSize)
			if err := copyFromZone(ctx, off, toDo, chunkSize, out); err != nil {
				return err
			}
		}

		remaining -= toDo
		k++
	}

	return nil
}

var zeroChunk []byte

// zeros returns a reusable, zero-filled buffer of at least n bytes,
// growing the package-level backing buffer as needed.
func zeros(n int) []byte {
	if len(zeroChunk) < n {
		zeroChunk = make([]byte, n)
	}
	return zeroChunk[:n]
}

func writeZeros(out io.Writer, n uint32, chunkSize int) error {
	for n > 0 {
		chunk := n
		if chunk > uint32(chunkSize) {
			chunk = uint32(chunkSize)
		}
		if _, err := out.Write(zeros(int(chunk))); err != nil {
			return err
		}
		n -= chunk
	}
	return nil
}

func copyFromZone(ctx *fsctx.Context, off int64, n uint32, chunkSize int, out io.Writer) error {
	left := n
	pos := off
	for left > 0 {
		chunk := left
		if chunk > uint32(chunkSize) {
			chunk = uint32(chunkSize)
		}
		data, err := disk.ReadAt(ctx.Image, pos, int(chunk), "file.copyFromZone")
		if err != nil {
			return err
		}
		if _, err := out.Write(data); err != nil {
			return merrors.Wrap(merrors.IO, "file.copyFromZone", "failed to write output bytes", err)
		}
		left -= chunk
		pos += int64(chunk)
	}
	return nil
}
