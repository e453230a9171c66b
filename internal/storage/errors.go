package storage

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-sqlite3"
)

var (
	// ErrNotFound is returned when a record is not found.
	ErrNotFound = errors.New("record not found")
	// ErrConstraintViolation is matched by every *ConstraintViolationError.
	ErrConstraintViolation = errors.New("constraint violation")
)

// ConstraintViolationError reports a write rejected by a uniqueness or
// parent reference constraint of the nodes table.
type ConstraintViolationError struct {
	Kind    string   // "unique" or "foreign key"
	Columns []string // violated columns, when the database names them
	Err     error
}

func (e *ConstraintViolationError) Error() string {
	if len(e.Columns) == 0 {
		return fmt.Sprintf("%s constraint violated", e.Kind)
	}
	return fmt.Sprintf("%s constraint violated on %s", e.Kind, strings.Join(e.Columns, ", "))
}

func (e *ConstraintViolationError) Is(target error) bool {
	return target == ErrConstraintViolation
}

func (e *ConstraintViolationError) Unwrap() error {
	return e.Err
}

// translateError turns SQLite constraint failures into *ConstraintViolationError
// and leaves every other error untouched.
func translateError(err error) error {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) || sqliteErr.Code != sqlite3.ErrConstraint {
		return err
	}

	switch sqliteErr.ExtendedCode {
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		return &ConstraintViolationError{Kind: "unique", Columns: failedColumns(sqliteErr.Error()), Err: err}
	case sqlite3.ErrConstraintForeignKey:
		return &ConstraintViolationError{Kind: "foreign key", Columns: []string{"parent_path"}, Err: err}
	default:
		return &ConstraintViolationError{Kind: "check", Err: err}
	}
}

// failedColumns parses "UNIQUE constraint failed: nodes.segment, nodes.parent_path".
func failedColumns(msg string) []string {
	_, list, ok := strings.Cut(msg, "constraint failed: ")
	if !ok {
		return nil
	}
	var cols []string
	for _, col := range strings.Split(list, ",") {
		col = strings.TrimSpace(col)
		if _, name, ok := strings.Cut(col, "."); ok {
			col = name
		}
		if col != "" {
			cols = append(cols, col)
		}
	}
	return cols
}
