// Package fsctx bundles the filesystem context (§3 "Filesystem context"):
// the underlying image, its byte offset within that image, the decoded
// superblock, and the derived block/zone sizes. It is constructed once at
// start-up and used thereafter as an immutable read-only handle — nothing
// here mutates after New returns.
package fsctx

import (
	"github.com/itsjinihere/csc453-asgn05/internal/disk"
	"github.com/itsjinihere/csc453-asgn05/internal/inode"
	"github.com/itsjinihere/csc453-asgn05/internal/partition"
	"github.com/itsjinihere/csc453-asgn05/internal/superblock"
	"github.com/itsjinihere/csc453-asgn05/internal/types"
	"github.com/itsjinihere/csc453-asgn05/internal/zone"
)

// DefaultCopyChunkSize is used when New is passed a non-positive
// copyChunkSize, matching the reference implementation's own buffer size.
const DefaultCopyChunkSize = 4096

// Context is the immutable, read-only filesystem handle every core
// operation is driven from.
type Context struct {
	Image         disk.Image
	Offset        int64
	Superblock    types.Superblock
	BlockSize     uint32
	ZoneSize      uint32
	CopyChunkSize int
}

// New resolves sel against img and decodes the superblock that follows,
// producing a ready-to-use Context. copyChunkSize configures the file
// materializer's internal copy buffer (§9 "Buffers"); a non-positive
// value falls back to DefaultCopyChunkSize.
func New(img disk.Image, sel partition.Selection, copyChunkSize int) (*Context, error) {
	offset, err := partition.Resolve(img, sel)
	if err != nil {
		return nil, err
	}
	sb, err := superblock.Read(img, offset)
	if err != nil {
		return nil, err
	}
	if copyChunkSize <= 0 {
		copyChunkSize = DefaultCopyChunkSize
	}
	return &Context{
		Image:         img,
		Offset:        offset,
		Superblock:    sb,
		BlockSize:     uint32(sb.BlockSize),
		ZoneSize:      sb.ZoneSize(),
		CopyChunkSize: copyChunkSize,
	}, nil
}

// FetchInode loads inode number n.
func (c *Context) FetchInode(n uint32) (types.Inode, error) {
	return inode.Fetch(c.Image, c.Offset, c.Superblock, c.BlockSize, n)
}

// RootInode loads the filesystem's root inode (always inode 1).
func (c *Context) RootInode() (types.Inode, error) {
	return c.FetchInode(types.RootInode)
}

// Walker constructs a zone.Walker over ino, scoped to this context.
func (c *Context) Walker(ino *types.Inode) *zone.Walker {
	return zone.New(c.Image, c.Offset, c.BlockSize, c.ZoneSize, ino)
}
