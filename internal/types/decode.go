package types

import (
	"bytes"
	"encoding/binary"
)

// DecodePartitionEntry decodes a 16-byte MBR partition table entry. Fields
// are read explicitly by offset rather than via struct reinterpretation,
// per §9 "On-disk decoding".
func DecodePartitionEntry(data []byte) PartitionEntry {
	var p PartitionEntry
	p.BootIndicator = data[0]
	copy(p.StartCHS[:], data[1:4])
	p.Type = data[4]
	copy(p.EndCHS[:], data[5:8])
	p.LFirst = binary.LittleEndian.Uint32(data[8:12])
	p.Size = binary.LittleEndian.Uint32(data[12:16])
	return p
}

// DecodeSuperblock decodes the 32-byte MINIX V3 superblock.
func DecodeSuperblock(data []byte) Superblock {
	var s Superblock
	s.NInodes = binary.LittleEndian.Uint32(data[0:4])
	// data[4:6] reserved
	s.IBlocks = int16(binary.LittleEndian.Uint16(data[6:8]))
	s.ZBlocks = int16(binary.LittleEndian.Uint16(data[8:10]))
	s.FirstData = binary.LittleEndian.Uint16(data[10:12])
	s.LogZoneSize = int16(binary.LittleEndian.Uint16(data[12:14]))
	// data[14:16] reserved
	s.MaxFile = binary.LittleEndian.Uint32(data[16:20])
	s.Zones = binary.LittleEndian.Uint32(data[20:24])
	s.Magic = int16(binary.LittleEndian.Uint16(data[24:26]))
	// data[26:28] reserved
	s.BlockSize = binary.LittleEndian.Uint16(data[28:30])
	s.Subversion = data[30]
	return s
}

// DecodeInode decodes a 64-byte MINIX inode record.
func DecodeInode(data []byte) Inode {
	var i Inode
	i.Mode = binary.LittleEndian.Uint16(data[0:2])
	i.Links = binary.LittleEndian.Uint16(data[2:4])
	i.UID = binary.LittleEndian.Uint16(data[4:6])
	i.GID = binary.LittleEndian.Uint16(data[6:8])
	i.Size = binary.LittleEndian.Uint32(data[8:12])
	i.ATime = int32(binary.LittleEndian.Uint32(data[12:16]))
	i.MTime = int32(binary.LittleEndian.Uint32(data[16:20]))
	i.CTime = int32(binary.LittleEndian.Uint32(data[20:24]))

	off := 24
	for z := 0; z < DirectZones; z++ {
		i.Zone[z] = binary.LittleEndian.Uint32(data[off : off+4])
		off += 4
	}
	i.Indirect = binary.LittleEndian.Uint32(data[off : off+4])
	off += 4
	i.TwoIndirect = binary.LittleEndian.Uint32(data[off : off+4])
	// remaining trailing uint32 is unused
	return i
}

// DecodeDirEntry decodes one 64-byte directory entry. The name is bounded
// by the 60-byte field and trimmed at the first NUL, if any is present.
func DecodeDirEntry(data []byte) DirEntry {
	var d DirEntry
	d.Inode = binary.LittleEndian.Uint32(data[0:4])
	name := data[4:64]
	if nul := bytes.IndexByte(name, 0); nul >= 0 {
		name = name[:nul]
	}
	d.Name = string(name)
	return d
}

// DecodeZoneTable decodes a block of little-endian uint32 zone pointers.
func DecodeZoneTable(data []byte) []uint32 {
	n := len(data) / 4
	out := make([]uint32, n)
	for i := 0; i < n; i++ {
		out[i] = binary.LittleEndian.Uint32(data[i*4 : i*4+4])
	}
	return out
}
