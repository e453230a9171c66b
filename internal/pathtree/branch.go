package pathtree

import (
	"strings"

	"pathtree/internal/mpath"
)

// DefaultNameSeparator joins names in a full name.
const DefaultNameSeparator = " > "

// BranchNode is a node of a loaded branch together with its children in
// ascending path order. Parents are found through Branch.Parent.
type BranchNode struct {
	Node
	Children []*BranchNode
}

// Branch is an immutable snapshot of a subtree. It is not synchronized with
// later store mutations; load a new one for a fresh view.
type Branch struct {
	Root      *BranchNode
	delimiter mpath.Delimiter
	byPath    map[string]*BranchNode
}

func newBranch(root Node, d mpath.Delimiter, size int) *Branch {
	b := &Branch{
		Root:      &BranchNode{Node: root},
		delimiter: d,
		byPath:    make(map[string]*BranchNode, size+1),
	}
	b.index(b.Root)
	return b
}

func (b *Branch) index(n *BranchNode) {
	b.byPath[n.Path] = n
}

// Len counts the nodes in the branch, root included.
func (b *Branch) Len() int {
	return len(b.byPath)
}

// Contains reports whether path is part of the branch.
func (b *Branch) Contains(path string) bool {
	_, ok := b.byPath[path]
	return ok
}

// Lookup finds a node of the branch by path.
func (b *Branch) Lookup(path string) (*BranchNode, bool) {
	n, ok := b.byPath[path]
	return n, ok
}

// Parent returns the parent of n when it is inside the branch.
func (b *Branch) Parent(n *BranchNode) (*BranchNode, bool) {
	if n == nil || n.IsRoot() {
		return nil, false
	}
	return b.Lookup(n.ParentPath)
}

// Ancestors returns the ancestors of n that are inside the branch, root first.
func (b *Branch) Ancestors(n *BranchNode) []*BranchNode {
	var chain []*BranchNode
	for p, ok := b.Parent(n); ok; p, ok = b.Parent(p) {
		chain = append(chain, p)
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}

// Walk visits every node depth first, parents before children. Depth is 0
// for the branch root. A non-nil error from fn stops the walk.
func (b *Branch) Walk(fn func(n *BranchNode, depth int) error) error {
	return walk(b.Root, 0, fn)
}

func walk(n *BranchNode, depth int, fn func(*BranchNode, int) error) error {
	if err := fn(n, depth); err != nil {
		return err
	}
	for _, c := range n.Children {
		if err := walk(c, depth+1, fn); err != nil {
			return err
		}
	}
	return nil
}

// Nodes flattens the branch in walk order.
func (b *Branch) Nodes() []Node {
	nodes := make([]Node, 0, b.Len())
	_ = b.Walk(func(n *BranchNode, _ int) error {
		nodes = append(nodes, n.Node)
		return nil
	})
	return nodes
}

// FullName renders the names from the branch root down to path.
func (b *Branch) FullName(path string, opts FullNameOptions) (string, bool) {
	n, ok := b.Lookup(path)
	if !ok {
		return "", false
	}
	chain := make([]Node, 0, 8)
	for _, a := range b.Ancestors(n) {
		chain = append(chain, a.Node)
	}
	chain = append(chain, n.Node)
	return FullName(chain, opts, b.delimiter), true
}

// FullNameOptions controls FullName rendering.
type FullNameOptions struct {
	// Separator defaults to DefaultNameSeparator.
	Separator string
	// Context, when it is an ancestor path of the node, limits the rendered
	// names to the nodes below it.
	Context string
}

// FullName joins the names of chain, which holds a node preceded by its
// ancestors root first.
func FullName(chain []Node, opts FullNameOptions, d mpath.Delimiter) string {
	sep := opts.Separator
	if sep == "" {
		sep = DefaultNameSeparator
	}
	limit := opts.Context != "" && len(chain) > 0 && mpath.IsDescendant(chain[len(chain)-1].Path, opts.Context, d)

	names := make([]string, 0, len(chain))
	for _, n := range chain {
		if limit && !mpath.IsDescendant(n.Path, opts.Context, d) {
			continue
		}
		names = append(names, n.Name)
	}
	return strings.Join(names, sep)
}
