package path

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itsjinihere/csc453-asgn05/internal/fsctx"
	"github.com/itsjinihere/csc453-asgn05/internal/merrors"
	"github.com/itsjinihere/csc453-asgn05/internal/partition"
	"github.com/itsjinihere/csc453-asgn05/internal/testutil"
	"github.com/itsjinihere/csc453-asgn05/internal/types"
)

func TestCanonicalizeEmptyBecomesRoot(t *testing.T) {
	assert.Equal(t, "/", Canonicalize(""))
}

func TestCanonicalizeAddsLeadingSlash(t *testing.T) {
	assert.Equal(t, "/a/b", Canonicalize("a/b"))
}

func TestCanonicalizeCollapsesRepeatedSlashes(t *testing.T) {
	assert.Equal(t, "/a/b", Canonicalize("//a///b"))
}

func TestCanonicalizeStripsTrailingSlash(t *testing.T) {
	assert.Equal(t, "/a/b", Canonicalize("/a/b/"))
	assert.Equal(t, "/", Canonicalize("/"))
}

func TestCanonicalizeIsIdempotent(t *testing.T) {
	for _, in := range []string{"", "/", "a", "/a/b/", "//x//y//"} {
		once := Canonicalize(in)
		twice := Canonicalize(once)
		assert.Equal(t, once, twice, "Canonicalize(%q) not idempotent", in)
	}
}

func TestCanonicalizeCaps(t *testing.T) {
	huge := strings.Repeat("a", 2000)
	out := Canonicalize(huge)
	assert.LessOrEqual(t, len(out), 1024)
}

func TestDisplayNameStripsLeadingSlashExceptRoot(t *testing.T) {
	assert.Equal(t, "a/b", DisplayName("/a/b"))
	assert.Equal(t, "/", DisplayName("/"))
}

const pathBlockSize = 1024

func buildThreeLevelTree(t *testing.T) *fsctx.Context {
	t.Helper()
	img := testutil.NewMemImage(256 * 1024)
	img.WriteSuperblock(0, testutil.SuperblockParams{
		NInodes:     10,
		IBlocks:     1,
		ZBlocks:     1,
		BlockSize:   pathBlockSize,
	})
	tableBlock := int64(4)

	const (
		rootIno = types.RootInode
		subIno  = 2
		fileIno = 3

		rootZone = uint32(20)
		subZone  = uint32(21)
		fileZone = uint32(22)
	)

	img.WriteInode(0, pathBlockSize, tableBlock, rootIno, testutil.InodeParams{
		Mode: types.ModeDir | 0755,
		Size: pathBlockSize,
		Zone: [types.DirectZones]uint32{rootZone},
	})
	img.WriteInode(0, pathBlockSize, tableBlock, subIno, testutil.InodeParams{
		Mode: types.ModeDir | 0755,
		Size: pathBlockSize,
		Zone: [types.DirectZones]uint32{subZone},
	})
	img.WriteInode(0, pathBlockSize, tableBlock, fileIno, testutil.InodeParams{
		Mode: types.ModeRegular | 0644,
		Size: 4,
		Zone: [types.DirectZones]uint32{fileZone},
	})

	rootOff := int64(rootZone) * pathBlockSize
	img.WriteDirEntry(rootOff, 0, rootIno, ".")
	img.WriteDirEntry(rootOff, 1, rootIno, "..")
	img.WriteDirEntry(rootOff, 2, subIno, "sub")

	subOff := int64(subZone) * pathBlockSize
	img.WriteDirEntry(subOff, 0, subIno, ".")
	img.WriteDirEntry(subOff, 1, rootIno, "..")
	img.WriteDirEntry(subOff, 2, fileIno, "leaf")

	ctx, err := fsctx.New(img, partition.Selection{}, 0)
	require.NoError(t, err)
	return ctx
}

func TestResolveMultiComponentPath(t *testing.T) {
	ctx := buildThreeLevelTree(t)

	r, err := Resolve(ctx, "/sub/leaf")
	require.NoError(t, err)
	assert.Equal(t, "/sub/leaf", r.Canon)
	assert.True(t, r.Inode.IsRegular())
	assert.Equal(t, uint32(4), r.Inode.Size)
}

func TestResolveRoot(t *testing.T) {
	ctx := buildThreeLevelTree(t)

	r, err := Resolve(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "/", r.Canon)
	assert.True(t, r.Inode.IsDir())
}

func TestResolveFileNotFound(t *testing.T) {
	ctx := buildThreeLevelTree(t)

	_, err := Resolve(ctx, "/sub/missing")
	require.Error(t, err)
	assert.Equal(t, merrors.Resolution, merrors.KindOf(err))
}

func TestResolveNotADirectoryWhileTraversing(t *testing.T) {
	ctx := buildThreeLevelTree(t)

	// "leaf" is a regular file; treating it as an intermediate directory
	// component must fail.
	_, err := Resolve(ctx, "/sub/leaf/more")
	require.Error(t, err)
	assert.Equal(t, merrors.Resolution, merrors.KindOf(err))
}
