// Package pathtree holds the node entity of a materialized path hierarchy
// and rebuilds parent/child structure from flat, path-tagged records.
package pathtree

import (
	"time"

	"pathtree/internal/mpath"
)

// Node is one record of the hierarchy. Path always equals
// mpath.Compose(ParentPath, Segment) for the delimiter it was written with.
type Node struct {
	ID         string
	Name       string
	Segment    string
	Path       string
	ParentPath string // empty for roots
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewNode builds an unsaved node whose segment is derived from name.
func NewNode(name, parentPath string, d mpath.Delimiter) Node {
	n := Node{ParentPath: parentPath}
	n.SetName(name, d)
	return n
}

// IsRoot reports whether the node has no parent.
func (n *Node) IsRoot() bool {
	return n.ParentPath == ""
}

// SetName changes the display label. The segment follows the name only
// while it is still empty; use SetSegment to re-slug an existing node.
func (n *Node) SetName(name string, d mpath.Delimiter) {
	if name == n.Name {
		return
	}
	n.Name = name
	if n.Segment == "" {
		n.SetSegment(name, d)
	}
}

// SetSegment stores the pathified value and recalculates the path.
func (n *Node) SetSegment(value string, d mpath.Delimiter) {
	n.Segment = mpath.Pathify(value)
	n.recalculatePath(d)
}

// SetParentPath moves the node below parentPath ("" makes it a root).
func (n *Node) SetParentPath(parentPath string, d mpath.Delimiter) {
	if parentPath == n.ParentPath {
		return
	}
	n.ParentPath = parentPath
	n.recalculatePath(d)
}

// SetParent moves the node below parent, or to the top level when parent is nil.
func (n *Node) SetParent(parent *Node, d mpath.Delimiter) {
	parentPath := ""
	if parent != nil {
		parentPath = parent.Path
	}
	n.SetParentPath(parentPath, d)
}

// ExpandedPaths returns the paths of every ancestor and of the node itself, root first.
func (n *Node) ExpandedPaths(d mpath.Delimiter) []string {
	return mpath.Expand(n.Path, d)
}

func (n *Node) recalculatePath(d mpath.Delimiter) {
	n.Path = mpath.Compose(n.ParentPath, n.Segment, d)
}
