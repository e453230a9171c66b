package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_tree_service.go -package=mocks -mock_names=TreeService=MockTreeService pathtree/internal/service TreeService

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"

	"pathtree/internal/contextutil"
	"pathtree/internal/metrics"
	"pathtree/internal/mpath"
	"pathtree/internal/outline"
	"pathtree/internal/pathtree"
	"pathtree/internal/storage"
)

// CreateNodeRequest describes a new node. Segment overrides the slug that
// would otherwise be derived from Name.
type CreateNodeRequest struct {
	Name       string `validate:"required,max=255"`
	Segment    string `validate:"max=255"`
	ParentPath string `validate:"max=4096"`
}

// UpdateNodeRequest changes any of name, segment and parent of a node.
// A nil field is left alone; a ParentPath pointing at "" makes the node a root.
type UpdateNodeRequest struct {
	Name       *string `validate:"omitnil,min=1,max=255"`
	Segment    *string `validate:"omitnil,min=1,max=255"`
	ParentPath *string `validate:"omitnil,max=4096"`
}

// TreeService provides the operations of a materialized path hierarchy.
type TreeService interface {
	// Create inserts a node below an existing parent, or as a root.
	Create(ctx context.Context, req CreateNodeRequest) (pathtree.Node, error)
	// Get returns the node at path.
	Get(ctx context.Context, path string) (pathtree.Node, error)
	// Update renames, re-slugs or moves a node, cascading the path change
	// to its descendants in the same transaction.
	Update(ctx context.Context, path string, req UpdateNodeRequest) (pathtree.Node, error)
	// Remove deletes a node and promotes its children to its former parent.
	Remove(ctx context.Context, path string) error
	// Roots lists the nodes without a parent.
	Roots(ctx context.Context) ([]pathtree.Node, error)
	// Children lists the direct children of the node at path.
	Children(ctx context.Context, path string) ([]pathtree.Node, error)
	// Siblings lists the other children of the node's parent.
	Siblings(ctx context.Context, path string) ([]pathtree.Node, error)
	// Descendants lists every node below path.
	Descendants(ctx context.Context, path string) ([]pathtree.Node, error)
	// Ancestors lists the ancestors of the node at path, root first.
	Ancestors(ctx context.Context, path string) ([]pathtree.Node, error)
	// Branch loads the subtree rooted at path in one query.
	Branch(ctx context.Context, path string) (*pathtree.Branch, error)
	// FullName joins the names of the node and its ancestors.
	FullName(ctx context.Context, path string, opts pathtree.FullNameOptions) (string, error)
	// ImportOutline creates the entries below parentPath ("" for roots) in one transaction.
	ImportOutline(ctx context.Context, parentPath string, entries []*outline.Entry) ([]pathtree.Node, error)
}

// treeService implements TreeService.
type treeService struct {
	store     storage.NodeStore
	delimiter mpath.Delimiter
	validate  *validator.Validate
	logger    *slog.Logger
}

// NewTreeService creates a new TreeService writing paths with delimiter d.
func NewTreeService(store storage.NodeStore, d mpath.Delimiter) TreeService {
	if d == "" {
		d = mpath.DefaultDelimiter
	}
	return &treeService{
		store:     store,
		delimiter: d,
		validate:  validator.New(),
		logger:    slog.Default(),
	}
}

func (s *treeService) getLogger(ctx context.Context) *slog.Logger {
	if l := contextutil.LoggerFromContext(ctx); l != slog.Default() {
		return l
	}
	return s.logger
}

// Create inserts a node below an existing parent, or as a root.
func (s *treeService) Create(ctx context.Context, req CreateNodeRequest) (node pathtree.Node, err error) {
	logger := s.getLogger(ctx)
	defer func() { metrics.ObserveMutation("create", err) }()

	if err := s.check(req); err != nil {
		logger.WarnContext(ctx, "invalid create request", "error", err)
		return pathtree.Node{}, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return pathtree.Node{}, &ValidationError{Field: "name", Message: "cannot be blank"}
	}
	node = pathtree.NewNode(name, req.ParentPath, s.delimiter)
	if req.Segment != "" {
		node.SetSegment(req.Segment, s.delimiter)
	}
	if node.Segment == "" {
		return pathtree.Node{}, &ValidationError{Field: "segment", Message: "must contain at least one letter or digit"}
	}

	err = s.store.WithinTx(ctx, func(tx storage.NodeStore) error {
		if err := s.requireParent(ctx, tx, node.ParentPath); err != nil {
			return err
		}
		return tx.Create(ctx, &node)
	})
	if err != nil {
		logger.ErrorContext(ctx, "failed to create node", "path", node.Path, "error", err)
		return pathtree.Node{}, classify(WrapError(err, "failed to create node"))
	}

	logger.InfoContext(ctx, "node created", "path", node.Path, "id", node.ID)
	return node, nil
}

// Get returns the node at path.
func (s *treeService) Get(ctx context.Context, path string) (pathtree.Node, error) {
	node, err := s.store.GetByPath(ctx, path)
	if err != nil {
		return pathtree.Node{}, classify(WrapError(err, fmt.Sprintf("failed to get node %q", path)))
	}
	return *node, nil
}

// Update renames, re-slugs or moves a node.
func (s *treeService) Update(ctx context.Context, path string, req UpdateNodeRequest) (node pathtree.Node, err error) {
	logger := s.getLogger(ctx)
	defer func() { metrics.ObserveMutation("update", err) }()

	if err := s.check(req); err != nil {
		logger.WarnContext(ctx, "invalid update request", "path", path, "error", err)
		return pathtree.Node{}, err
	}

	var cascaded int
	err = s.store.WithinTx(ctx, func(tx storage.NodeStore) error {
		current, err := tx.GetByPath(ctx, path)
		if err != nil {
			return err
		}
		node = *current
		oldPath := node.Path

		if req.Name != nil {
			name := strings.TrimSpace(*req.Name)
			if name == "" {
				return &ValidationError{Field: "name", Message: "cannot be blank"}
			}
			node.SetName(name, s.delimiter)
		}
		if req.Segment != nil {
			node.SetSegment(*req.Segment, s.delimiter)
			if node.Segment == "" {
				return &ValidationError{Field: "segment", Message: "must contain at least one letter or digit"}
			}
		}
		if req.ParentPath != nil {
			parentPath := *req.ParentPath
			if parentPath == oldPath || mpath.IsDescendant(parentPath, oldPath, s.delimiter) {
				return &ValidationError{Field: "parent_path", Message: "cannot move a node below itself"}
			}
			if parentPath != node.ParentPath {
				if err := s.requireParent(ctx, tx, parentPath); err != nil {
					return err
				}
			}
			node.SetParentPath(parentPath, s.delimiter)
		}

		cascaded, err = s.save(ctx, tx, &node, oldPath)
		return err
	})
	if err != nil {
		logger.ErrorContext(ctx, "failed to update node", "path", path, "error", err)
		return pathtree.Node{}, classify(WrapError(err, fmt.Sprintf("failed to update node %q", path)))
	}

	metrics.ObserveCascade("update", cascaded)
	logger.InfoContext(ctx, "node updated", "old_path", path, "path", node.Path, "cascaded", cascaded)
	return node, nil
}

// Remove deletes a node and promotes its children to its former parent.
func (s *treeService) Remove(ctx context.Context, path string) (err error) {
	logger := s.getLogger(ctx)
	defer func() { metrics.ObserveMutation("remove", err) }()

	var cascaded int
	err = s.store.WithinTx(ctx, func(tx storage.NodeStore) error {
		node, err := tx.GetByPath(ctx, path)
		if err != nil {
			return err
		}
		if err := tx.Delete(ctx, node.ID); err != nil {
			return err
		}
		cascaded, err = s.reparentChildren(ctx, tx, node.Path, node.ParentPath)
		return err
	})
	if err != nil {
		logger.ErrorContext(ctx, "failed to remove node", "path", path, "error", err)
		return classify(WrapError(err, fmt.Sprintf("failed to remove node %q", path)))
	}

	metrics.ObserveCascade("remove", cascaded)
	logger.InfoContext(ctx, "node removed", "path", path, "cascaded", cascaded)
	return nil
}

// ImportOutline creates the entries below parentPath in one transaction.
func (s *treeService) ImportOutline(ctx context.Context, parentPath string, entries []*outline.Entry) (created []pathtree.Node, err error) {
	logger := s.getLogger(ctx)
	defer func() { metrics.ObserveMutation("import", err) }()

	total := 0
	for _, e := range entries {
		total += e.Count()
	}

	err = s.store.WithinTx(ctx, func(tx storage.NodeStore) error {
		if err := s.requireParent(ctx, tx, parentPath); err != nil {
			return err
		}
		created = make([]pathtree.Node, 0, total)
		return s.importEntries(ctx, tx, parentPath, entries, &created)
	})
	if err != nil {
		logger.ErrorContext(ctx, "failed to import outline", "parent_path", parentPath, "entries", total, "error", err)
		return nil, classify(WrapError(err, "failed to import outline"))
	}

	logger.InfoContext(ctx, "outline imported", "parent_path", parentPath, "created", len(created))
	return created, nil
}

func (s *treeService) importEntries(ctx context.Context, tx storage.NodeStore, parentPath string, entries []*outline.Entry, created *[]pathtree.Node) error {
	for _, e := range entries {
		node := pathtree.NewNode(e.Name, parentPath, s.delimiter)
		if node.Segment == "" {
			return &ValidationError{Field: "name", Message: fmt.Sprintf("outline entry %q has no letters or digits", e.Name)}
		}
		if err := tx.Create(ctx, &node); err != nil {
			return err
		}
		*created = append(*created, node)
		if err := s.importEntries(ctx, tx, node.Path, e.Children, created); err != nil {
			return err
		}
	}
	return nil
}

// Roots lists the nodes without a parent.
func (s *treeService) Roots(ctx context.Context) ([]pathtree.Node, error) {
	nodes, err := s.store.ListByParentPath(ctx, "")
	if err != nil {
		return nil, WrapError(err, "failed to list roots")
	}
	return nodes, nil
}

// Children lists the direct children of the node at path.
func (s *treeService) Children(ctx context.Context, path string) ([]pathtree.Node, error) {
	node, err := s.Get(ctx, path)
	if err != nil {
		return nil, err
	}
	nodes, err := s.store.ListByParentPath(ctx, node.Path)
	if err != nil {
		return nil, WrapError(err, "failed to list children")
	}
	return nodes, nil
}

// Siblings lists the other children of the node's parent.
func (s *treeService) Siblings(ctx context.Context, path string) ([]pathtree.Node, error) {
	node, err := s.Get(ctx, path)
	if err != nil {
		return nil, err
	}
	nodes, err := s.store.ListByParentPath(ctx, node.ParentPath)
	if err != nil {
		return nil, WrapError(err, "failed to list siblings")
	}
	return slices.DeleteFunc(nodes, func(n pathtree.Node) bool { return n.ID == node.ID }), nil
}

// Descendants lists every node below path.
func (s *treeService) Descendants(ctx context.Context, path string) ([]pathtree.Node, error) {
	node, err := s.Get(ctx, path)
	if err != nil {
		return nil, err
	}
	nodes, err := s.store.ListDescendants(ctx, node.Path, s.delimiter)
	if err != nil {
		return nil, WrapError(err, "failed to list descendants")
	}
	return nodes, nil
}

// Ancestors lists the ancestors of the node at path, root first.
func (s *treeService) Ancestors(ctx context.Context, path string) ([]pathtree.Node, error) {
	node, err := s.Get(ctx, path)
	if err != nil {
		return nil, err
	}
	return s.ancestors(ctx, s.store, node)
}

func (s *treeService) ancestors(ctx context.Context, store storage.NodeStore, node pathtree.Node) ([]pathtree.Node, error) {
	expanded := node.ExpandedPaths(s.delimiter)
	if len(expanded) <= 1 {
		return nil, nil
	}
	nodes, err := store.ListByPaths(ctx, expanded[:len(expanded)-1])
	if err != nil {
		return nil, WrapError(err, "failed to list ancestors")
	}
	slices.SortFunc(nodes, func(a, b pathtree.Node) int {
		return len(a.Path) - len(b.Path)
	})
	return nodes, nil
}

// Branch loads the subtree rooted at path and rebuilds it in memory.
func (s *treeService) Branch(ctx context.Context, path string) (*pathtree.Branch, error) {
	logger := s.getLogger(ctx)
	if strings.TrimSpace(path) == "" {
		return nil, &ValidationError{Field: "path", Message: "branch path must not be blank"}
	}

	var branch *pathtree.Branch
	err := s.store.WithinTx(ctx, func(tx storage.NodeStore) error {
		root, err := tx.GetByPath(ctx, path)
		if err != nil {
			return err
		}
		candidates, err := tx.ListDescendants(ctx, root.Path, s.delimiter)
		if err != nil {
			return err
		}
		branch, err = pathtree.Reconstruct(*root, candidates, s.delimiter)
		return err
	})
	if err != nil {
		if errors.Is(err, pathtree.ErrMalformedSubtree) {
			logger.ErrorContext(ctx, "stored subtree is malformed", "path", path, "error", err)
		}
		return nil, classify(WrapError(err, fmt.Sprintf("failed to load branch %q", path)))
	}

	metrics.ObserveBranch(branch.Len())
	logger.DebugContext(ctx, "branch loaded", "path", path, "nodes", branch.Len())
	return branch, nil
}

// FullName joins the names of the node and its ancestors.
func (s *treeService) FullName(ctx context.Context, path string, opts pathtree.FullNameOptions) (string, error) {
	node, err := s.Get(ctx, path)
	if err != nil {
		return "", err
	}
	chain, err := s.ancestors(ctx, s.store, node)
	if err != nil {
		return "", err
	}
	return pathtree.FullName(append(chain, node), opts, s.delimiter), nil
}

// requireParent fails with a validation error when parentPath names no node.
func (s *treeService) requireParent(ctx context.Context, tx storage.NodeStore, parentPath string) error {
	if parentPath == "" {
		return nil
	}
	_, err := tx.GetByPath(ctx, parentPath)
	if errors.Is(err, storage.ErrNotFound) {
		return &ValidationError{Field: "parent_path", Message: fmt.Sprintf("parent %q does not exist", parentPath)}
	}
	return err
}

// check runs struct validation and reports the first failing field.
func (s *treeService) check(req any) error {
	err := s.validate.Struct(req)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return &ValidationError{Field: fieldName(fe.Field()), Message: fmt.Sprintf("failed %q validation", fe.Tag())}
	}
	return WrapError(err, "failed to validate request")
}

// fieldName turns a Go field name into its snake_case wire name.
func fieldName(field string) string {
	var b strings.Builder
	for i, r := range field {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}
