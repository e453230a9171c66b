package pathtree

import (
	"errors"
	"fmt"
)

// ErrMalformedSubtree is matched by every *MalformedSubtreeError.
var ErrMalformedSubtree = errors.New("malformed subtree")

// MalformedSubtreeError reports a candidate that could not be attached
// anywhere on the chain already built from the branch root.
type MalformedSubtreeError struct {
	Root       string
	Path       string
	ParentPath string
}

func (e *MalformedSubtreeError) Error() string {
	return fmt.Sprintf("malformed subtree under %q: node %q has parent %q outside the attached chain", e.Root, e.Path, e.ParentPath)
}

func (e *MalformedSubtreeError) Is(target error) bool {
	return target == ErrMalformedSubtree
}
