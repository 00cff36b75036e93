// Package partition resolves a partition selection to the absolute byte
// offset at which a MINIX filesystem begins (component 2, §4.1).
package partition

import (
	"fmt"

	"github.com/itsjinihere/csc453-asgn05/internal/disk"
	"github.com/itsjinihere/csc453-asgn05/internal/merrors"
	"github.com/itsjinihere/csc453-asgn05/internal/types"
)

// Selection names which partition (and optional subpartition) the
// filesystem lives in. The zero value selects an unpartitioned image.
type Selection struct {
	HavePrimary bool
	Primary     int
	HaveSub     bool
	Sub         int
}

// Resolve returns the absolute byte offset at which the filesystem begins
// for the given selection, per §4.1.
func Resolve(img disk.Image, sel Selection) (int64, error) {
	if !sel.HavePrimary && !sel.HaveSub {
		return 0, nil
	}

	if err := checkBootSignature(img, 0); err != nil {
		return 0, err
	}

	var base int64
	if sel.HavePrimary {
		p, err := readEntry(img, 0, sel.Primary)
		if err != nil {
			return 0, err
		}
		if p.Type != types.MinixPartType {
			return 0, merrors.New(merrors.Format, "partition.Resolve",
				fmt.Sprintf("Partition %d is not a MINIX partition (type 0x%02x)", sel.Primary, p.Type))
		}
		base = int64(p.LFirst) * types.SectorSize
	}

	if sel.HaveSub {
		if err := checkBootSignature(img, base); err != nil {
			return 0, err
		}
		sub, err := readEntry(img, base, sel.Sub)
		if err != nil {
			return 0, err
		}
		if sub.Type != types.MinixPartType {
			return 0, merrors.New(merrors.Format, "partition.Resolve",
				fmt.Sprintf("Subpartition %d is not a MINIX partition (type 0x%02x)", sel.Sub, sub.Type))
		}
		// sub.LFirst is absolute (from the start of the disk), not
		// relative to the primary partition's base — §4.1 step 3,
		// confirmed by original_source/minix_fs.c.
		base = int64(sub.LFirst) * types.SectorSize
	}

	return base, nil
}

func checkBootSignature(img disk.Image, base int64) error {
	sig, err := disk.ReadAt(img, base+types.BootSigOffset1, 2, "partition.checkBootSignature")
	if err != nil {
		return err
	}
	if sig[0] != types.BootSigByte1 || sig[1] != types.BootSigByte2 {
		return merrors.New(merrors.Format, "partition.checkBootSignature", "Bad boot sector signature.")
	}
	return nil
}

func readEntry(img disk.Image, base int64, index int) (types.PartitionEntry, error) {
	if index < 0 || index > types.MaxPartitionIndex {
		return types.PartitionEntry{}, merrors.New(merrors.Argument, "partition.readEntry",
			fmt.Sprintf("Invalid partition index %d", index))
	}
	off := base + types.PartTableOffset + int64(index)*types.PartitionEntrySize
	data, err := disk.ReadAt(img, off, types.PartitionEntrySize, "partition.readEntry")
	if err != nil {
		return types.PartitionEntry{}, err
	}
	return types.DecodePartitionEntry(data), nil
}
