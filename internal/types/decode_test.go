package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePartitionEntry(t *testing.T) {
	data := make([]byte, 16)
	data[4] = MinixPartType
	data[8], data[9], data[10], data[11] = 63, 0, 0, 0 // lFirst = 63 LE
	p := DecodePartitionEntry(data)
	assert.Equal(t, byte(MinixPartType), p.Type)
	assert.Equal(t, uint32(63), p.LFirst)
}

func TestDecodeSuperblockRejectsNothingAtDecodeTime(t *testing.T) {
	data := make([]byte, SuperblockSize)
	data[24] = 0x5A
	data[25] = 0x4D
	data[28] = 0x00
	data[29] = 0x04
	sb := DecodeSuperblock(data)
	require.Equal(t, int16(MinixMagic), sb.Magic)
	assert.Equal(t, uint16(1024), sb.BlockSize)
}

func TestSuperblockZoneSize(t *testing.T) {
	sb := Superblock{BlockSize: 1024, LogZoneSize: 1}
	assert.Equal(t, uint32(2048), sb.ZoneSize())
}

func TestDecodeInodeDirectZones(t *testing.T) {
	data := make([]byte, InodeSize)
	for i := 0; i < DirectZones; i++ {
		off := 24 + i*4
		data[off] = byte(i + 1)
	}
	ino := DecodeInode(data)
	for i := 0; i < DirectZones; i++ {
		assert.Equal(t, uint32(i+1), ino.Zone[i])
	}
}

func TestInodeIsDirIsRegular(t *testing.T) {
	dir := Inode{Mode: ModeDir | 0755}
	reg := Inode{Mode: ModeRegular | 0644}
	assert.True(t, dir.IsDir())
	assert.False(t, dir.IsRegular())
	assert.True(t, reg.IsRegular())
	assert.False(t, reg.IsDir())
}

func TestPermString(t *testing.T) {
	ino := Inode{Mode: ModeRegular | 0644}
	assert.Equal(t, "-rw-r--r--", ino.PermString())

	dir := Inode{Mode: ModeDir | 0755}
	assert.Equal(t, "drwxr-xr-x", dir.PermString())
}

func TestDecodeDirEntryBoundedName(t *testing.T) {
	data := make([]byte, DirEntrySize)
	binaryPutUint32(data[0:4], 7)
	full := make([]byte, DirNameSize)
	for i := range full {
		full[i] = 'a'
	}
	copy(data[4:64], full)

	de := DecodeDirEntry(data)
	require.Equal(t, uint32(7), de.Inode)
	assert.Len(t, de.Name, DirNameSize)
	assert.Equal(t, string(full), de.Name)
}

func TestDecodeDirEntryNulTerminated(t *testing.T) {
	data := make([]byte, DirEntrySize)
	binaryPutUint32(data[0:4], 3)
	copy(data[4:64], "hello")
	de := DecodeDirEntry(data)
	assert.Equal(t, "hello", de.Name)
}

func binaryPutUint32(b []byte, v uint32) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}
