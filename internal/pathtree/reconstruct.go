package pathtree

import (
	"slices"

	"pathtree/internal/mpath"
)

// Reconstruct builds the branch below root from candidates, which must be
// exactly the records whose path lies strictly below root.Path.
//
// Candidates are sorted so every node directly precedes its own descendants,
// then attached in one pass against a stack holding the chain from the root
// to the most recently attached node. A candidate whose parent path does not
// match its own path, or whose parent is not on that chain, cannot be placed
// and fails the whole reconstruction with a *MalformedSubtreeError.
func Reconstruct(root Node, candidates []Node, d mpath.Delimiter) (*Branch, error) {
	sorted := slices.Clone(candidates)
	slices.SortStableFunc(sorted, func(a, b Node) int {
		return mpath.Compare(a.Path, b.Path, d)
	})

	b := newBranch(root, d, len(sorted))
	stack := []*BranchNode{b.Root}

	for _, candidate := range sorted {
		malformed := &MalformedSubtreeError{
			Root:       root.Path,
			Path:       candidate.Path,
			ParentPath: candidate.ParentPath,
		}
		if parentPath, ok := mpath.Parent(candidate.Path, d); !ok || parentPath != candidate.ParentPath {
			return nil, malformed
		}

		for len(stack) > 0 && stack[len(stack)-1].Path != candidate.ParentPath {
			stack = stack[:len(stack)-1]
		}
		if len(stack) == 0 || b.Contains(candidate.Path) {
			return nil, malformed
		}

		parent := stack[len(stack)-1]
		child := &BranchNode{Node: candidate}
		parent.Children = append(parent.Children, child)
		b.index(child)
		stack = append(stack, child)
	}

	return b, nil
}
