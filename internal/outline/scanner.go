package outline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ScanDir turns a directory of Markdown files into entries. Folders become
// entries named after the folder, each .md file becomes an entry named
// after the file (without extension) holding its parsed outline.
// Hidden files and directories such as .obsidian or .git are skipped.
func (p *Parser) ScanDir(ctx context.Context, root string) ([]*Entry, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to access %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", root)
	}

	top := &Entry{}
	folders := map[string]*Entry{".": top}

	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("failed to access path %s: %w", path, err)
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if path == root {
			return nil
		}

		if strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return fmt.Errorf("failed to compute relative path for %s: %w", path, err)
		}
		parent := folders[filepath.Dir(relPath)]
		if parent == nil {
			return nil
		}

		if d.IsDir() {
			e := &Entry{Name: d.Name()}
			parent.Children = append(parent.Children, e)
			folders[relPath] = e
			return nil
		}

		if !strings.EqualFold(filepath.Ext(path), ".md") {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		parent.Children = append(parent.Children, &Entry{
			Name:     strings.TrimSuffix(d.Name(), filepath.Ext(d.Name())),
			Children: p.Parse(content),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", root, err)
	}

	isFolder := make(map[*Entry]bool, len(folders))
	for _, e := range folders {
		isFolder[e] = true
	}
	return prune(top.Children, isFolder), nil
}

// prune drops folder entries that ended up without any Markdown below them.
func prune(entries []*Entry, isFolder map[*Entry]bool) []*Entry {
	kept := entries[:0]
	for _, e := range entries {
		if isFolder[e] {
			e.Children = prune(e.Children, isFolder)
			if len(e.Children) == 0 {
				continue
			}
		}
		kept = append(kept, e)
	}
	return kept
}
