// Package minixfs assembles the filesystem context lifecycle (§3
// "Lifecycle"): opening the image, resolving the partition chain,
// decoding the superblock, and producing the verbose diagnostics the two
// front ends print under -v.
package minixfs

import (
	"log/slog"

	"github.com/itsjinihere/csc453-asgn05/internal/disk"
	"github.com/itsjinihere/csc453-asgn05/internal/fsctx"
	"github.com/itsjinihere/csc453-asgn05/internal/partition"
	"github.com/itsjinihere/csc453-asgn05/internal/types"
)

// Open opens the image at path and constructs a ready-to-use Context for
// the given partition selection, configured with copyChunkSize (see
// fsctx.New). The caller owns the returned *disk.FileImage and must Close
// it — the core never opens or closes the image itself (§5).
func Open(path string, sel partition.Selection, copyChunkSize int) (*fsctx.Context, *disk.FileImage, error) {
	img, err := disk.OpenFile(path)
	if err != nil {
		return nil, nil, err
	}
	ctx, err := fsctx.New(img, sel, copyChunkSize)
	if err != nil {
		img.Close()
		return nil, nil, err
	}
	return ctx, img, nil
}

// LogSuperblock emits the verbose superblock dump fs_print_inode_verbose's
// sibling (fs_read_super's verbose branch) produces, field-for-field, as
// structured log attributes rather than bare fprintf lines.
func LogSuperblock(logger *slog.Logger, sb types.Superblock) {
	logger.Debug("superblock",
		slog.Uint64("ninodes", uint64(sb.NInodes)),
		slog.Int64("i_blocks", int64(sb.IBlocks)),
		slog.Int64("z_blocks", int64(sb.ZBlocks)),
		slog.Uint64("firstdata", uint64(sb.FirstData)),
		slog.Int64("log_zone_size", int64(sb.LogZoneSize)),
		slog.Uint64("max_file", uint64(sb.MaxFile)),
		slog.Uint64("zones", uint64(sb.Zones)),
		slog.String("magic", hex16(sb.Magic)),
		slog.Uint64("blocksize", uint64(sb.BlockSize)),
		slog.Uint64("subversion", uint64(sb.Subversion)),
	)
}

// LogInode emits the verbose inode dump fs_print_inode_verbose produces.
func LogInode(logger *slog.Logger, ino types.Inode) {
	logger.Debug("inode",
		slog.String("mode", octalMode(ino.Mode)),
		slog.Uint64("size", uint64(ino.Size)),
		slog.Uint64("links", uint64(ino.Links)),
		slog.Uint64("uid", uint64(ino.UID)),
		slog.Uint64("gid", uint64(ino.GID)),
	)
}

func hex16(v int16) string {
	return "0x" + hexUint16(uint16(v))
}

func hexUint16(v uint16) string {
	const digits = "0123456789abcdef"
	out := make([]byte, 4)
	for i := 3; i >= 0; i-- {
		out[i] = digits[v&0xf]
		v >>= 4
	}
	return string(out)
}

func octalMode(mode uint16) string {
	if mode == 0 {
		return "0"
	}
	var digits []byte
	for mode > 0 {
		digits = append([]byte{byte('0' + mode%8)}, digits...)
		mode /= 8
	}
	return "0" + string(digits)
}
