// Package inode fetches decoded inode records from the inode table
// (component 4, §4.3).
package inode

import (
	"fmt"

	"github.com/itsjinihere/csc453-asgn05/internal/disk"
	"github.com/itsjinihere/csc453-asgn05/internal/merrors"
	"github.com/itsjinihere/csc453-asgn05/internal/types"
)

// TableBlock returns the block index, relative to the filesystem start, at
// which the inode table begins: block 0 is boot, block 1 is the
// superblock, then the inode bitmap, then the zone bitmap (§3 invariant).
func TableBlock(sb types.Superblock) int64 {
	return 2 + int64(sb.IBlocks) + int64(sb.ZBlocks)
}

// Fetch reads and decodes inode number n, enforcing 1 <= n <= ninodes.
func Fetch(img disk.Image, fsOffset int64, sb types.Superblock, blockSize uint32, n uint32) (types.Inode, error) {
	if n == 0 || n > sb.NInodes {
		return types.Inode{}, merrors.New(merrors.Format, "inode.Fetch",
			fmt.Sprintf("Invalid inode number %d", n))
	}

	off := fsOffset + TableBlock(sb)*int64(blockSize) + int64(n-1)*types.InodeSize
	data, err := disk.ReadAt(img, off, types.InodeSize, "inode.Fetch")
	if err != nil {
		return types.Inode{}, err
	}
	return types.DecodeInode(data), nil
}
