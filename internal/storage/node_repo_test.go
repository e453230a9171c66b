package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"pathtree/internal/mpath"
	"pathtree/internal/pathtree"
)

// setupRepo opens a migrated database in a temp directory.
func setupRepo(t *testing.T) *NodeRepo {
	t.Helper()
	db, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})
	if err := Migrate(db); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}
	return NewNodeRepo(db)
}

// seed creates nodes in order; parents must come first.
func seed(t *testing.T, repo *NodeRepo, d mpath.Delimiter, specs ...[2]string) map[string]pathtree.Node {
	t.Helper()
	created := make(map[string]pathtree.Node, len(specs))
	for _, s := range specs {
		node := pathtree.NewNode(s[0], s[1], d)
		if err := repo.Create(context.Background(), &node); err != nil {
			t.Fatalf("Create(%q) error = %v", node.Path, err)
		}
		created[node.Path] = node
	}
	return created
}

func paths(nodes []pathtree.Node) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.Path)
	}
	return out
}

func equalPaths(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

var sampleTree = [][2]string{
	{"Root 1", ""},
	{"Parent A", "root-1"},
	{"Parent B", "root-1"},
	{"Child A1", "root-1.parent-a"},
	{"Child A2", "root-1.parent-a"},
	{"Grandchild", "root-1.parent-a.child-a1"},
	{"Root 2", ""},
}

func TestNewNodeRepo(t *testing.T) {
	repo := setupRepo(t)
	if repo == nil {
		t.Fatal("NewNodeRepo() returned nil")
	}
}

func TestNodeRepo_CreateAndGetByPath(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	node := pathtree.NewNode("Parent A", "", mpath.DefaultDelimiter)
	if err := repo.Create(ctx, &node); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if node.ID == "" {
		t.Error("Create() should assign an ID")
	}
	if node.CreatedAt.IsZero() || node.UpdatedAt.IsZero() {
		t.Error("Create() should set timestamps")
	}

	got, err := repo.GetByPath(ctx, "parent-a")
	if err != nil {
		t.Fatalf("GetByPath() error = %v", err)
	}
	if got.ID != node.ID || got.Name != "Parent A" || got.Segment != "parent-a" || got.ParentPath != "" {
		t.Errorf("GetByPath() = %+v, want %+v", got, node)
	}
	if !got.CreatedAt.Equal(node.CreatedAt) {
		t.Errorf("GetByPath() CreatedAt = %v, want %v", got.CreatedAt, node.CreatedAt)
	}

	_, err = repo.GetByPath(ctx, "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByPath() error = %v, want ErrNotFound", err)
	}
}

func TestNodeRepo_CreateConstraintViolations(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	d := mpath.DefaultDelimiter
	seed(t, repo, d, sampleTree...)

	tests := []struct {
		name        string
		node        pathtree.Node
		wantColumns []string
	}{
		{
			name:        "duplicate root path",
			node:        pathtree.NewNode("Root 1", "", d),
			wantColumns: []string{"path"},
		},
		{
			name:        "duplicate segment under parent",
			node: pathtree.NewNode("Parent A", "root-1", d),
		},
		{
			name: "same segment, same parent, distinct path",
			node: pathtree.Node{
				Name:       "Parent A",
				Segment:    "parent-a",
				Path:       "root-1.parent-a-other",
				ParentPath: "root-1",
			},
			wantColumns: []string{"segment", "parent_path"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := tt.node
			err := repo.Create(ctx, &node)
			if !errors.Is(err, ErrConstraintViolation) {
				t.Fatalf("Create() error = %v, want ErrConstraintViolation", err)
			}
			var cv *ConstraintViolationError
			if !errors.As(err, &cv) {
				t.Fatalf("Create() error %T is not *ConstraintViolationError", err)
			}
			if tt.wantColumns != nil && !equalPaths(cv.Columns, tt.wantColumns) {
				t.Errorf("ConstraintViolationError.Columns = %v, want %v", cv.Columns, tt.wantColumns)
			}
		})
	}
}

func TestNodeRepo_CreateAllowsSegmentUnderDifferentParents(t *testing.T) {
	repo := setupRepo(t)
	d := mpath.DefaultDelimiter
	seed(t, repo, d, sampleTree...)

	node := pathtree.NewNode("Parent A", "root-2", d)
	if err := repo.Create(context.Background(), &node); err != nil {
		t.Errorf("Create() error = %v, want nil", err)
	}
}

func TestNodeRepo_CreateRejectsDanglingParent(t *testing.T) {
	repo := setupRepo(t)

	node := pathtree.NewNode("Orphan", "no-such-parent", mpath.DefaultDelimiter)
	err := repo.Create(context.Background(), &node)
	var cv *ConstraintViolationError
	if !errors.As(err, &cv) || cv.Kind != "foreign key" {
		t.Errorf("Create() error = %v, want foreign key violation", err)
	}
}

func TestNodeRepo_Listings(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	d := mpath.DefaultDelimiter
	seed(t, repo, d, sampleTree...)

	tests := []struct {
		name string
		list func() ([]pathtree.Node, error)
		want []string
	}{
		{
			name: "roots",
			list: func() ([]pathtree.Node, error) { return repo.ListByParentPath(ctx, "") },
			want: []string{"root-1", "root-2"},
		},
		{
			name: "children",
			list: func() ([]pathtree.Node, error) { return repo.ListByParentPath(ctx, "root-1.parent-a") },
			want: []string{"root-1.parent-a.child-a1", "root-1.parent-a.child-a2"},
		},
		{
			name: "no children",
			list: func() ([]pathtree.Node, error) { return repo.ListByParentPath(ctx, "root-2") },
			want: []string{},
		},
		{
			name: "descendants",
			list: func() ([]pathtree.Node, error) { return repo.ListDescendants(ctx, "root-1.parent-a", d) },
			want: []string{"root-1.parent-a.child-a1", "root-1.parent-a.child-a1.grandchild", "root-1.parent-a.child-a2"},
		},
		{
			name: "descendants of blank path",
			list: func() ([]pathtree.Node, error) { return repo.ListDescendants(ctx, "", d) },
			want: []string{},
		},
		{
			name: "by paths",
			list: func() ([]pathtree.Node, error) {
				return repo.ListByPaths(ctx, []string{"root-1.parent-a", "root-1", "nope"})
			},
			want: []string{"root-1", "root-1.parent-a"},
		},
		{
			name: "by no paths",
			list: func() ([]pathtree.Node, error) { return repo.ListByPaths(ctx, nil) },
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.list()
			if err != nil {
				t.Fatalf("list error = %v", err)
			}
			if !equalPaths(paths(got), tt.want) {
				t.Errorf("got %v, want %v", paths(got), tt.want)
			}
		})
	}
}

func TestNodeRepo_ListDescendantsMatchesPrefixLiterally(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	raw := []pathtree.Node{
		{Name: "a_b", Segment: "a_b", Path: "a_b"},
		{Name: "child", Segment: "child", Path: "a_b.child", ParentPath: "a_b"},
		{Name: "axb", Segment: "axb", Path: "axb"},
		{Name: "child", Segment: "child", Path: "axb.child", ParentPath: "axb"},
		{Name: "A_B", Segment: "A_B", Path: "A_B"},
		{Name: "child", Segment: "child", Path: "A_B.child", ParentPath: "A_B"},
	}
	for i := range raw {
		if err := repo.Create(ctx, &raw[i]); err != nil {
			t.Fatalf("Create(%q) error = %v", raw[i].Path, err)
		}
	}

	got, err := repo.ListDescendants(ctx, "a_b", mpath.DefaultDelimiter)
	if err != nil {
		t.Fatalf("ListDescendants() error = %v", err)
	}
	if want := []string{"a_b.child"}; !equalPaths(paths(got), want) {
		t.Errorf("ListDescendants() = %v, want %v", paths(got), want)
	}
}

func TestNodeRepo_ListDescendantsCustomDelimiter(t *testing.T) {
	repo := setupRepo(t)
	d := mpath.Delimiter("/")
	seed(t, repo, d,
		[2]string{"Root 1", ""},
		[2]string{"Parent A", "root-1"},
		[2]string{"Child", "root-1/parent-a"},
	)

	got, err := repo.ListDescendants(context.Background(), "root-1", d)
	if err != nil {
		t.Fatalf("ListDescendants() error = %v", err)
	}
	if want := []string{"root-1/parent-a", "root-1/parent-a/child"}; !equalPaths(paths(got), want) {
		t.Errorf("ListDescendants() = %v, want %v", paths(got), want)
	}
}

func TestNodeRepo_Update(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	d := mpath.DefaultDelimiter
	nodes := seed(t, repo, d, [2]string{"Root 1", ""}, [2]string{"Root 2", ""}, [2]string{"Leaf", "root-1"})

	leaf := nodes["root-1.leaf"]
	leaf.SetParentPath("root-2", d)
	if err := repo.Update(ctx, &leaf); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	got, err := repo.GetByPath(ctx, "root-2.leaf")
	if err != nil {
		t.Fatalf("GetByPath() error = %v", err)
	}
	if got.ID != leaf.ID || got.ParentPath != "root-2" {
		t.Errorf("GetByPath() = %+v, want moved leaf", got)
	}
	if _, err := repo.GetByPath(ctx, "root-1.leaf"); !errors.Is(err, ErrNotFound) {
		t.Errorf("old path still resolves: %v", err)
	}

	missing := pathtree.NewNode("Ghost", "", d)
	missing.ID = "no-such-id"
	if err := repo.Update(ctx, &missing); !errors.Is(err, ErrNotFound) {
		t.Errorf("Update() of unknown ID error = %v, want ErrNotFound", err)
	}
}

func TestNodeRepo_Delete(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	nodes := seed(t, repo, mpath.DefaultDelimiter, [2]string{"Root 1", ""})

	if err := repo.Delete(ctx, nodes["root-1"].ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := repo.GetByPath(ctx, "root-1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByPath() after Delete() error = %v, want ErrNotFound", err)
	}
	if err := repo.Delete(ctx, nodes["root-1"].ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Delete() error = %v, want ErrNotFound", err)
	}
}

func TestNodeRepo_WithinTxRollsBack(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	d := mpath.DefaultDelimiter
	boom := errors.New("boom")

	err := repo.WithinTx(ctx, func(tx NodeStore) error {
		node := pathtree.NewNode("Temp", "", d)
		if err := tx.Create(ctx, &node); err != nil {
			return err
		}
		// nested calls join the enclosing transaction
		return tx.WithinTx(ctx, func(inner NodeStore) error {
			if _, err := inner.GetByPath(ctx, "temp"); err != nil {
				t.Errorf("inner GetByPath() error = %v", err)
			}
			return boom
		})
	})
	if !errors.Is(err, boom) {
		t.Fatalf("WithinTx() error = %v, want boom", err)
	}
	if _, err := repo.GetByPath(ctx, "temp"); !errors.Is(err, ErrNotFound) {
		t.Errorf("rolled back node is visible: %v", err)
	}
}

func TestNodeRepo_WithinTxDefersParentCheck(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	d := mpath.DefaultDelimiter
	nodes := seed(t, repo, d, [2]string{"Root 1", ""}, [2]string{"Child", "root-1"})

	// renaming the parent and then its child inside one transaction commits
	err := repo.WithinTx(ctx, func(tx NodeStore) error {
		root := nodes["root-1"]
		root.SetSegment("Renamed", d)
		if err := tx.Update(ctx, &root); err != nil {
			return err
		}
		child := nodes["root-1.child"]
		child.SetParentPath(root.Path, d)
		return tx.Update(ctx, &child)
	})
	if err != nil {
		t.Fatalf("WithinTx() error = %v", err)
	}

	// leaving the child behind fails on commit
	err = repo.WithinTx(ctx, func(tx NodeStore) error {
		root, err := tx.GetByPath(ctx, "renamed")
		if err != nil {
			return err
		}
		root.SetSegment("Again", d)
		return tx.Update(ctx, root)
	})
	if !errors.Is(err, ErrConstraintViolation) {
		t.Fatalf("WithinTx() error = %v, want ErrConstraintViolation", err)
	}
	if _, err := repo.GetByPath(ctx, "renamed.child"); err != nil {
		t.Errorf("failed commit must leave data untouched: %v", err)
	}
}

func TestFailedColumns(t *testing.T) {
	tests := []struct {
		msg  string
		want []string
	}{
		{msg: "UNIQUE constraint failed: nodes.path", want: []string{"path"}},
		{msg: "UNIQUE constraint failed: nodes.segment, nodes.parent_path", want: []string{"segment", "parent_path"}},
		{msg: "FOREIGN KEY constraint failed", want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			if got := failedColumns(tt.msg); !equalPaths(got, tt.want) {
				t.Errorf("failedColumns(%q) = %v, want %v", tt.msg, got, tt.want)
			}
		})
	}
}

func TestLikePrefix(t *testing.T) {
	if got, want := likePrefix(`a_b.100%\.`), `a\_b.100\%\\.%`; got != want {
		t.Errorf("likePrefix() = %q, want %q", got, want)
	}
}
