// Package path implements canonicalization and the path resolver
// (component 7, §4.6): normalizing a slash-separated path and walking the
// directory tree from the root inode.
package path

import (
	"strings"

	"github.com/itsjinihere/csc453-asgn05/internal/directory"
	"github.com/itsjinihere/csc453-asgn05/internal/fsctx"
	"github.com/itsjinihere/csc453-asgn05/internal/merrors"
	"github.com/itsjinihere/csc453-asgn05/internal/types"
)

// maxPathLen mirrors the reference implementation's 1024-byte canon
// buffer (§4.6); paths longer than this are truncated.
const maxPathLen = 1024

// Canonicalize normalizes in per §4.6: NULL/empty becomes "/"; a leading
// "/" is added if absent; runs of consecutive "/" collapse to one; a
// trailing "/" is stripped unless the result would be empty.
func Canonicalize(in string) string {
	if in == "" {
		return "/"
	}

	var b strings.Builder
	lastWasSlash := false
	if in[0] != '/' {
		b.WriteByte('/')
		lastWasSlash = true
	}
	for i := 0; i < len(in) && b.Len() < maxPathLen-1; i++ {
		c := in[i]
		if c == '/' {
			if !lastWasSlash {
				b.WriteByte('/')
				lastWasSlash = true
			}
		} else {
			b.WriteByte(c)
			lastWasSlash = false
		}
	}

	out := b.String()
	if len(out) > 1 && out[len(out)-1] == '/' {
		out = out[:len(out)-1]
	}
	if out == "" {
		out = "/"
	}
	return out
}

// DisplayName returns the canonical path with its leading "/" stripped,
// except when the canonical path is exactly "/" — the rule minls.c uses
// to print a bare basename instead of an absolute path.
func DisplayName(canon string) string {
	if canon == "/" {
		return canon
	}
	return strings.TrimPrefix(canon, "/")
}

// Resolved is the terminal inode a Resolve call walked to, plus the
// canonical path and inode number that produced it.
type Resolved struct {
	Canon string
	Inum  uint32
	Inode types.Inode
}

// Resolve canonicalizes path and walks the directory tree from the root
// inode (always inode 1), requiring every intermediate component to be a
// directory.
func Resolve(ctx *fsctx.Context, rawPath string) (Resolved, error) {
	canon := Canonicalize(rawPath)

	root, err := ctx.RootInode()
	if err != nil {
		return Resolved{}, err
	}
	cur := root
	curInum := uint32(types.RootInode)

	if canon == "/" {
		return Resolved{Canon: canon, Inum: curInum, Inode: cur}, nil
	}

	for _, component := range strings.Split(strings.TrimPrefix(canon, "/"), "/") {
		if component == "" {
			continue
		}
		if !cur.IsDir() {
			return Resolved{}, merrors.New(merrors.Resolution, "path.Resolve", "Not a directory while traversing path.")
		}

		childInum, found, err := directory.Lookup(ctx, &cur, component)
		if err != nil {
			return Resolved{}, err
		}
		if !found || childInum == 0 {
			return Resolved{}, merrors.New(merrors.Resolution, "path.Resolve", "File not found.")
		}

		child, err := ctx.FetchInode(childInum)
		if err != nil {
			return Resolved{}, err
		}
		cur = child
		curInum = childInum
	}

	return Resolved{Canon: canon, Inum: curInum, Inode: cur}, nil
}
