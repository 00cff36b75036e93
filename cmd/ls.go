package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/itsjinihere/csc453-asgn05/internal/directory"
	"github.com/itsjinihere/csc453-asgn05/internal/logging"
	"github.com/itsjinihere/csc453-asgn05/internal/minixfs"
	"github.com/itsjinihere/csc453-asgn05/internal/path"
	"github.com/itsjinihere/csc453-asgn05/internal/types"
)

var lsCmd = &cobra.Command{
	Use:   "ls [-v] [-p N [-s M]] imagefile [path]",
	Short: "List a directory, or print a single file's metadata entry",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		target := "/"
		if len(args) > 1 {
			target = args[1]
		}
		return runLs(cmd, args[0], target)
	},
}

func init() {
	rootCmd.AddCommand(lsCmd)
}

func runLs(cmd *cobra.Command, imagefile, target string) error {
	ctx := invocationContext()
	logger := logging.Op(ctx, "cmd.ls")

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

	resolved, err := path.Resolve(fs, target)
	if err != nil {
		return err
	}

	if verbose {
		minixfs.LogInode(logger, resolved.Inode)
	}

	if resolved.Inode.IsDir() {
		fmt.Printf("%s:\n", resolved.Canon)
		listings, err := directory.Enumerate(fs, &resolved.Inode)
		if err != nil {
			return err
		}
		for _, l := range listings {
			fmt.Println(l.PermLine())
		}
		return nil
	}

	name := path.DisplayName(resolved.Canon)
	listing := directory.Listing{
		Entry: types.DirEntry{Inode: resolved.Inum, Name: name},
		Child: resolved.Inode,
	}
	fmt.Println(listing.PermLine())
	return nil
}
