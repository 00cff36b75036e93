// Package superblock decodes and validates the MINIX V3 superblock
// (component 3, §4.2).
package superblock

import (
	"fmt"

	"github.com/itsjinihere/csc453-asgn05/internal/disk"
	"github.com/itsjinihere/csc453-asgn05/internal/merrors"
	"github.com/itsjinihere/csc453-asgn05/internal/types"
)

// Read decodes the superblock located at fsOffset+1024 and validates its
// magic number before trusting any other field, per §3's invariant.
func Read(img disk.Image, fsOffset int64) (types.Superblock, error) {
	data, err := disk.ReadAt(img, fsOffset+types.SuperblockOffset, types.SuperblockSize, "superblock.Read")
	if err != nil {
		return types.Superblock{}, err
	}

	sb := types.DecodeSuperblock(data)
	if sb.Magic != types.MinixMagic {
		return types.Superblock{}, merrors.New(merrors.Format, "superblock.Read",
			fmt.Sprintf("Bad magic number. (0x%04x)\nThis does not look like a MINIX filesystem.", uint16(sb.Magic)))
	}
	return sb, nil
}
