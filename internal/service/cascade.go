package service

import (
	"context"
	"errors"
	"slices"

	"pathtree/internal/mpath"
	"pathtree/internal/pathtree"
	"pathtree/internal/storage"
)

// save writes node and, when its path moved away from oldPath, re-parents
// the whole subtree that hung below oldPath. It returns the number of
// descendants rewritten. Callers must hold a transaction.
func (s *treeService) save(ctx context.Context, tx storage.NodeStore, node *pathtree.Node, oldPath string) (int, error) {
	if err := tx.Update(ctx, node); err != nil {
		return 0, err
	}
	if node.Path == oldPath {
		return 0, nil
	}
	return s.reparentChildren(ctx, tx, oldPath, node.Path)
}

// reparentChildren moves every node whose parent_path is fromPath below
// toParentPath ("" promotes them to roots), level by level.
//
// A child whose new path equals fromPath is processed last. Removing a.b
// whose child is a.b.b turns it into a.b, and its own children a.b.b.x can
// only take a.b.x once the other children of a.b have moved out.
func (s *treeService) reparentChildren(ctx context.Context, tx storage.NodeStore, fromPath, toParentPath string) (int, error) {
	if fromPath == "" {
		return 0, errors.New("cannot re-parent children of an empty path")
	}

	children, err := tx.ListByParentPath(ctx, fromPath)
	if err != nil {
		return 0, err
	}

	namesake := slices.IndexFunc(children, func(c pathtree.Node) bool {
		return mpath.Compose(toParentPath, c.Segment, s.delimiter) == fromPath
	})
	if namesake >= 0 {
		last := children[namesake]
		children = append(slices.Delete(children, namesake, namesake+1), last)
	}

	total := 0
	for i := range children {
		child := children[i]
		oldPath := child.Path
		child.SetParentPath(toParentPath, s.delimiter)
		n, err := s.save(ctx, tx, &child, oldPath)
		if err != nil {
			return total, err
		}
		total += 1 + n
	}
	return total, nil
}
