package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/itsjinihere/csc453-asgn05/internal/file"
	"github.com/itsjinihere/csc453-asgn05/internal/logging"
	"github.com/itsjinihere/csc453-asgn05/internal/merrors"
	"github.com/itsjinihere/csc453-asgn05/internal/minixfs"
	"github.com/itsjinihere/csc453-asgn05/internal/path"
)

var getCmd = &cobra.Command{
	Use:   "get [-v] [-p N [-s M]] imagefile srcpath [dstpath]",
	Short: "Extract a regular file's contents to stdout or a destination file",
	Args:  cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		dst := ""
		if len(args) > 2 {
			dst = args[2]
		}
		return runGet(cmd, args[0], args[1], dst)
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
}

func runGet(cmd *cobra.Command, imagefile, srcpath, dstpath string) error {
	ctx := invocationContext()
	logger := logging.Op(ctx, "cmd.get")

	sel, err := selection(cmd)
	if err != nil {
		return err
	}

	fs, img, err := minixfs.Open(imagefile, sel, cfg.CopyChunkSize)
	if err != nil {
		return err
	}
	defer img.Close()

	if verbose {
		minixfs.LogSuperblock(logger, fs.Superblock)
	}

	resolved, err := path.Resolve(fs, srcpath)
	if err != nil {
		return err
	}

	if verbose {
		minixfs.LogInode(logger, resolved.Inode)
	}

	if !resolved.Inode.IsRegular() {
		return merrors.New(merrors.Resolution, "cmd.get", fmt.Sprintf("%s is not a regular file.", srcpath))
	}

	// Open the destination eagerly, before materializing any byte, so a
	// permission error on the destination surfaces before partial output
	// — matching minget.c's ordering.
	var out = os.Stdout
	if dstpath != "" {
		f, err := os.Create(dstpath)
		if err != nil {
			return merrors.Wrap(merrors.IO, "cmd.get", "failed to open destination file", err)
		}
		defer f.Close()
		out = f
	}

	return file.Materialize(fs, &resolved.Inode, out)
}
