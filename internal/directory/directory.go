// Package directory implements the directory scanner (component 6, §4.5):
// interpreting a directory inode's byte stream as fixed-width directory
// entries, supporting both name lookup and full enumeration.
package directory

import (
	"fmt"

	"github.com/itsjinihere/csc453-asgn05/internal/disk"
	"github.com/itsjinihere/csc453-asgn05/internal/fsctx"
	"github.com/itsjinihere/csc453-asgn05/internal/merrors"
	"github.com/itsjinihere/csc453-asgn05/internal/types"
)

// Listing is one enumerated, ready-to-print directory entry.
type Listing struct {
	Entry types.DirEntry
	Child types.Inode
}

// PermLine renders the "<perm> <size> <name>" line §4.5 and
// original_source/minix_fs.c's scan_dir_zone both produce, with size
// right-justified in a 9-wide field.
func (l Listing) PermLine() string {
	return fmt.Sprintf("%s %9d %s", l.Child.PermString(), l.Child.Size, l.Entry.Name)
}

// Lookup searches dirIno for an entry named name, returning its inode
// number. found is false if the directory has no such entry.
func Lookup(ctx *fsctx.Context, dirIno *types.Inode, name string) (inum uint32, found bool, err error) {
	err = scan(ctx, dirIno, func(e types.DirEntry) (bool, error) {
		if e.Name == name {
			inum = e.Inode
			found = true
			return true, nil
		}
		return false, nil
	})
	return inum, found, err
}

// Enumerate returns every non-empty entry of dirIno in on-disk order, each
// paired with its decoded child inode.
func Enumerate(ctx *fsctx.Context, dirIno *types.Inode) ([]Listing, error) {
	var out []Listing
	err := scan(ctx, dirIno, func(e types.DirEntry) (bool, error) {
		child, err := ctx.FetchInode(e.Inode)
		if err != nil {
			return true, err
		}
		out = append(out, Listing{Entry: e, Child: child})
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// scan drives the zone walker over dirIno's logical blocks, decoding
// back-to-back 64-byte directory entries out of each non-hole zone and
// invoking visit for every entry with a nonzero inode number. visit
// returns stop=true to end the scan early (used by Lookup).
//
// Holes inside the directory's backing storage are skipped by
// decrementing remaining by zoneSize — they cannot contain valid entries
// — matching original_source/minix_fs.c's scan_dir_zone/fs_list_dir.
func scan(ctx *fsctx.Context, dirIno *types.Inode, visit func(types.DirEntry) (bool, error)) error {
	if !dirIno.IsDir() {
		return merrors.New(merrors.Resolution, "directory.scan", "not a directory")
	}

	w := ctx.Walker(dirIno)
	remaining := dirIno.Size
	k := uint64(0)

	for remaining > 0 {
		if k >= w.Limit() {
			break
		}

		toRead := remaining
		if toRead > ctx.ZoneSize {
			toRead = ctx.ZoneSize
		}

		z, err := w.Zone(k)
		if err != nil {
			return err
		}
		if z == 0 {
			remaining -= toRead
			k++
			continue
		}

		off := ctx.Offset + int64(z)*int64(ctx.ZoneSize)
		data, err := disk.ReadAt(ctx.Image, off, int(toRead), "directory.scan")
		if err != nil {
			return err
		}

		n := len(data) / types.DirEntrySize
		for i := 0; i < n; i++ {
			de := types.DecodeDirEntry(data[i*types.DirEntrySize : (i+1)*types.DirEntrySize])
			if de.Inode == 0 {
				continue
			}
			stop, err := visit(de)
			if err != nil {
				return err
			}
			if stop {
				return nil
			}
		}

		remaining -= toRead
		k++
	}

	return nil
}
