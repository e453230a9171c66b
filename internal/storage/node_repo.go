package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_node_store.go -package=mocks pathtree/internal/storage NodeStore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"pathtree/internal/mpath"
	"pathtree/internal/pathtree"
)

// NodeStore defines the record store the tree engine works against.
// Lookups are by exact path, exact parent path or path prefix; writes are
// checked against the uniqueness of path and of (segment, parent_path).
type NodeStore interface {
	// GetByPath gets a node by its full path.
	// Returns nil and ErrNotFound if not found.
	GetByPath(ctx context.Context, path string) (*pathtree.Node, error)
	// ListByPaths returns the nodes whose path is one of paths, ordered by path.
	ListByPaths(ctx context.Context, paths []string) ([]pathtree.Node, error)
	// ListByParentPath returns the direct children of parentPath ordered by
	// path. An empty parentPath lists the roots.
	ListByParentPath(ctx context.Context, parentPath string) ([]pathtree.Node, error)
	// ListDescendants returns every node strictly below path, ordered by path.
	ListDescendants(ctx context.Context, path string, d mpath.Delimiter) ([]pathtree.Node, error)
	// Create inserts a node, assigning its ID and timestamps.
	Create(ctx context.Context, node *pathtree.Node) error
	// Update rewrites name, segment, path and parent path of an existing node.
	Update(ctx context.Context, node *pathtree.Node) error
	// Delete removes a node by ID. Returns ErrNotFound if it does not exist.
	Delete(ctx context.Context, id string) error
	// WithinTx runs fn against a store bound to one transaction, committing
	// when fn returns nil and rolling back otherwise. Nested calls join the
	// enclosing transaction.
	WithinTx(ctx context.Context, fn func(NodeStore) error) error
}

// dbtx is satisfied by both *sql.DB and *sql.Tx.
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// NodeRepo provides methods for node operations.
// It implements the NodeStore interface.
type NodeRepo struct {
	db   dbtx
	conn *sql.DB // nil once bound to a transaction
	now  func() time.Time
}

// NewNodeRepo creates a new NodeRepo.
func NewNodeRepo(db *sql.DB) *NodeRepo {
	return &NodeRepo{
		db:   db,
		conn: db,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

const nodeColumns = "id, name, segment, path, parent_path, created_at, updated_at"

// GetByPath gets a node by its full path.
// Returns nil and ErrNotFound if not found.
func (r *NodeRepo) GetByPath(ctx context.Context, path string) (*pathtree.Node, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+nodeColumns+" FROM nodes WHERE path = ?", path)
	node, err := scanNode(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query node: %w", err)
	}
	return &node, nil
}

// ListByPaths returns the nodes whose path is one of paths, ordered by path.
func (r *NodeRepo) ListByPaths(ctx context.Context, paths []string) ([]pathtree.Node, error) {
	if len(paths) == 0 {
		return nil, nil
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(paths)), ",")
	args := make([]any, len(paths))
	for i, p := range paths {
		args[i] = p
	}
	return r.list(ctx, "SELECT "+nodeColumns+" FROM nodes WHERE path IN ("+placeholders+") ORDER BY path", args...)
}

// ListByParentPath returns the direct children of parentPath ordered by path.
// An empty parentPath lists the roots.
func (r *NodeRepo) ListByParentPath(ctx context.Context, parentPath string) ([]pathtree.Node, error) {
	if parentPath == "" {
		return r.list(ctx, "SELECT "+nodeColumns+" FROM nodes WHERE parent_path IS NULL ORDER BY path")
	}
	return r.list(ctx, "SELECT "+nodeColumns+" FROM nodes WHERE parent_path = ? ORDER BY path", parentPath)
}

// ListDescendants returns every node strictly below path, ordered by path.
func (r *NodeRepo) ListDescendants(ctx context.Context, path string, d mpath.Delimiter) ([]pathtree.Node, error) {
	if path == "" {
		return nil, nil
	}
	return r.list(ctx,
		"SELECT "+nodeColumns+` FROM nodes WHERE path LIKE ? ESCAPE '\' ORDER BY path`,
		likePrefix(path+string(d)),
	)
}

// Create inserts a node. A missing ID is generated; timestamps are always set.
func (r *NodeRepo) Create(ctx context.Context, node *pathtree.Node) error {
	if node.ID == "" {
		node.ID = uuid.New().String()
	}
	now := r.now()
	node.CreatedAt = now
	node.UpdatedAt = now

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO nodes ("+nodeColumns+") VALUES (?, ?, ?, ?, ?, ?, ?)",
		node.ID, node.Name, node.Segment, node.Path, nullable(node.ParentPath),
		formatTime(node.CreatedAt), formatTime(node.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to insert node: %w", translateError(err))
	}
	return nil
}

// Update rewrites name, segment, path and parent path of an existing node.
func (r *NodeRepo) Update(ctx context.Context, node *pathtree.Node) error {
	node.UpdatedAt = r.now()
	result, err := r.db.ExecContext(ctx,
		"UPDATE nodes SET name = ?, segment = ?, path = ?, parent_path = ?, updated_at = ? WHERE id = ?",
		node.Name, node.Segment, node.Path, nullable(node.ParentPath), formatTime(node.UpdatedAt), node.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update node: %w", translateError(err))
	}
	return requireAffected(result)
}

// Delete removes a node by ID.
func (r *NodeRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM nodes WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete node: %w", translateError(err))
	}
	return requireAffected(result)
}

// WithinTx runs fn inside one transaction. Deferred parent references are
// checked on commit, so a constraint error can surface from here too.
func (r *NodeRepo) WithinTx(ctx context.Context, fn func(NodeStore) error) error {
	if r.conn == nil {
		return fn(r)
	}

	tx, err := r.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(&NodeRepo{db: tx, now: r.now}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", translateError(err))
	}
	return nil
}

func (r *NodeRepo) list(ctx context.Context, query string, args ...any) ([]pathtree.Node, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query nodes: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var nodes []pathtree.Node
	for rows.Next() {
		node, err := scanNode(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan node: %w", err)
		}
		nodes = append(nodes, node)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate nodes: %w", err)
	}
	return nodes, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanNode(s scanner) (pathtree.Node, error) {
	var node pathtree.Node
	var parentPath sql.NullString
	var createdAt, updatedAt string

	if err := s.Scan(&node.ID, &node.Name, &node.Segment, &node.Path, &parentPath, &createdAt, &updatedAt); err != nil {
		return pathtree.Node{}, err
	}
	node.ParentPath = parentPath.String

	var err error
	if node.CreatedAt, err = parseTime(createdAt); err != nil {
		return pathtree.Node{}, fmt.Errorf("failed to parse created_at timestamp: %w", err)
	}
	if node.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return pathtree.Node{}, fmt.Errorf("failed to parse updated_at timestamp: %w", err)
	}
	return node, nil
}

func requireAffected(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		// Try alternative format (SQLite CURRENT_TIMESTAMP)
		return time.Parse("2006-01-02 15:04:05", s)
	}
	return t, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePrefix builds a LIKE pattern matching every value starting with prefix.
// Segments may contain "_", which LIKE would otherwise treat as a wildcard.
func likePrefix(prefix string) string {
	return likeEscaper.Replace(prefix) + "%"
}
