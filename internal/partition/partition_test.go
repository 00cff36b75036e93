package partition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itsjinihere/csc453-asgn05/internal/merrors"
	"github.com/itsjinihere/csc453-asgn05/internal/testutil"
	"github.com/itsjinihere/csc453-asgn05/internal/types"
)

func TestResolveUnpartitioned(t *testing.T) {
	img := testutil.NewMemImage(4096)
	off, err := Resolve(img, Selection{})
	require.NoError(t, err)
	assert.Equal(t, int64(0), off)
}

func TestResolveMissingBootSignatureFails(t *testing.T) {
	img := testutil.NewMemImage(4096)
	_, err := Resolve(img, Selection{HavePrimary: true, Primary: 0})
	require.Error(t, err)
	assert.Equal(t, merrors.Format, merrors.KindOf(err))
}

func TestResolvePrimaryPartition(t *testing.T) {
	// End-to-end scenario 2: lFirst = 63, fs offset = 63*512.
	img := testutil.NewMemImage(64 * 512)
	img.WriteBootSignature(0)
	img.WritePartitionEntry(0, 0, types.MinixPartType, 63, 100)

	off, err := Resolve(img, Selection{HavePrimary: true, Primary: 0})
	require.NoError(t, err)
	assert.Equal(t, int64(63*512), off)
}

func TestResolveWrongPartitionType(t *testing.T) {
	img := testutil.NewMemImage(64 * 512)
	img.WriteBootSignature(0)
	img.WritePartitionEntry(0, 0, 0x83, 63, 100)

	_, err := Resolve(img, Selection{HavePrimary: true, Primary: 0})
	require.Error(t, err)
	assert.Equal(t, merrors.Format, merrors.KindOf(err))
}

func TestResolveInvalidPartitionIndex(t *testing.T) {
	img := testutil.NewMemImage(4096)
	img.WriteBootSignature(0)
	_, err := Resolve(img, Selection{HavePrimary: true, Primary: 9})
	require.Error(t, err)
	assert.Equal(t, merrors.Argument, merrors.KindOf(err))
}

func TestResolveSubpartitionIsAbsoluteNotRelative(t *testing.T) {
	// End-to-end scenario 3: the subpartition's lFirst is an absolute LBA
	// from the start of the disk, regardless of the primary's offset.
	img := testutil.NewMemImage(200 * 512)
	img.WriteBootSignature(0)
	img.WritePartitionEntry(0, 0, types.MinixPartType, 10, 190)

	primaryBase := int64(10 * 512)
	img.WriteBootSignature(primaryBase)
	img.WritePartitionEntry(primaryBase, 2, types.MinixPartType, 150, 10)

	off, err := Resolve(img, Selection{HavePrimary: true, Primary: 0, HaveSub: true, Sub: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(150*512), off, "subpartition lFirst must be absolute, not primaryBase + relative")
}
