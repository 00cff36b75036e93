// Package zone implements the zone walker (component 5, §4.4): the
// central algorithm that maps a file's logical block index to the zone
// number backing it, expanding single- and double-indirect tables and
// reporting absent zones as holes.
package zone

import (
	"github.com/itsjinihere/csc453-asgn05/internal/disk"
	"github.com/itsjinihere/csc453-asgn05/internal/merrors"
	"github.com/itsjinihere/csc453-asgn05/internal/types"
)

// Walker yields the zone number backing each logical block of one inode.
// It caches the single-indirect table and the double-indirect first- and
// second-level tables across calls so each is read at most once (or, for
// the second-level table, reloaded only when the first-level index
// changes) per walk, per §4.4's required I/O-count optimization.
//
// A Walker is single-use: it is acquired for one inode, driven through the
// blocks that operation needs, and discarded. Nothing it holds survives
// past that (§5).
type Walker struct {
	img       disk.Image
	fsOffset  int64
	blockSize uint32
	zoneSize  uint32
	ino       *types.Inode

	entries uint32 // E = blockSize / 4, pointers per indirect table block

	indirect    []uint32
	indirectSet bool

	dbl1    []uint32
	dbl1Set bool

	dbl2      []uint32
	dbl2Index uint32
	dbl2Set   bool
}

// New constructs a Walker over ino's zone pointers.
func New(img disk.Image, fsOffset int64, blockSize, zoneSize uint32, ino *types.Inode) *Walker {
	return &Walker{
		img:       img,
		fsOffset:  fsOffset,
		blockSize: blockSize,
		zoneSize:  zoneSize,
		ino:       ino,
		entries:   blockSize / 4,
	}
}

// Entries returns E, the number of 32-bit zone pointers read from the
// first block of an indirect or double-indirect zone (§4.4's design note:
// only the first blockSize bytes of the zone are consulted).
func (w *Walker) Entries() uint32 { return w.entries }

// Limit returns the first logical block index the walker cannot address:
// 7 + E + E*E. Bytes at or beyond this block are unreachable.
func (w *Walker) Limit() uint64 {
	e := uint64(w.entries)
	return uint64(types.DirectZones) + e + e*e
}

// Zone returns the zone number backing logical block k, or 0 for a hole.
// It returns an error only when loading an indirect table fails; a zone
// pointer of 0 anywhere in the hierarchy is propagated as a hole, never
// treated as an I/O failure.
func (w *Walker) Zone(k uint64) (uint32, error) {
	e := uint64(w.entries)

	if k < uint64(types.DirectZones) {
		return w.ino.Zone[k], nil
	}

	if k < uint64(types.DirectZones)+e {
		if w.ino.Indirect == 0 {
			return 0, nil
		}
		if err := w.loadIndirect(); err != nil {
			return 0, err
		}
		idx := k - uint64(types.DirectZones)
		return w.indirect[idx], nil
	}

	if k < uint64(types.DirectZones)+e+e*e {
		if w.ino.TwoIndirect == 0 {
			return 0, nil
		}
		if err := w.loadDbl1(); err != nil {
			return 0, err
		}
		j := k - uint64(types.DirectZones) - e
		l1 := uint32(j / e)
		l2 := uint32(j % e)

		l1Zone := w.dbl1[l1]
		if l1Zone == 0 {
			return 0, nil
		}
		if err := w.loadDbl2(l1Zone, l1); err != nil {
			return 0, err
		}
		return w.dbl2[l2], nil
	}

	// Beyond the addressable range: no more zones to yield.
	return 0, nil
}

func (w *Walker) loadIndirect() error {
	if w.indirectSet {
		return nil
	}
	data, err := w.readTableBlock(w.ino.Indirect, "zone.Walker.loadIndirect")
	if err != nil {
		return err
	}
	w.indirect = types.DecodeZoneTable(data)
	w.indirectSet = true
	return nil
}

func (w *Walker) loadDbl1() error {
	if w.dbl1Set {
		return nil
	}
	data, err := w.readTableBlock(w.ino.TwoIndirect, "zone.Walker.loadDbl1")
	if err != nil {
		return err
	}
	w.dbl1 = types.DecodeZoneTable(data)
	w.dbl1Set = true
	return nil
}

func (w *Walker) loadDbl2(l1Zone, l1 uint32) error {
	if w.dbl2Set && w.dbl2Index == l1 {
		return nil
	}
	data, err := w.readTableBlock(l1Zone, "zone.Walker.loadDbl2")
	if err != nil {
		return err
	}
	w.dbl2 = types.DecodeZoneTable(data)
	w.dbl2Index = l1
	w.dbl2Set = true
	return nil
}

// readTableBlock reads the first blockSize bytes of the zone numbered z.
func (w *Walker) readTableBlock(z uint32, op string) ([]byte, error) {
	off := w.fsOffset + int64(z)*int64(w.zoneSize)
	data, err := disk.ReadAt(w.img, off, int(w.blockSize), op)
	if err != nil {
		return nil, merrors.Wrap(merrors.IO, op, "failed to read indirect zone table", err)
	}
	return data, nil
}
