package outline

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		fullPath := filepath.Join(root, rel)
		if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
			t.Fatalf("Failed to create dir: %v", err)
		}
		if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to create file: %v", err)
		}
	}
}

func TestParser_ScanDir(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"Welcome.md":                "# Start here\n",
		"projects/Roadmap.md":       "# Q1\n\n- Ship\n",
		"projects/archive/Old.md":   "",
		"projects/notes.txt":        "ignored",
		"empty/nothing.txt":         "ignored",
		".obsidian/workspace.md":    "# hidden",
		"projects/.draft/Secret.md": "# hidden",
	})

	entries, err := NewParser().ScanDir(context.Background(), root)
	if err != nil {
		t.Fatalf("ScanDir() error = %v", err)
	}

	want := "Welcome(Start here),projects(Roadmap(Q1(Ship)),archive(Old))"
	if got := shape(entries); got != want {
		t.Errorf("ScanDir() = %q, want %q", got, want)
	}
}

func TestParser_ScanDirErrors(t *testing.T) {
	parser := NewParser()

	if _, err := parser.ScanDir(context.Background(), filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("ScanDir() on a missing directory should fail")
	}

	file := filepath.Join(t.TempDir(), "note.md")
	writeFiles(t, filepath.Dir(file), map[string]string{"note.md": "# Note"})
	if _, err := parser.ScanDir(context.Background(), file); err == nil {
		t.Error("ScanDir() on a file should fail")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	root := t.TempDir()
	writeFiles(t, root, map[string]string{"a.md": "# A"})
	if _, err := parser.ScanDir(ctx, root); err == nil {
		t.Error("ScanDir() with a cancelled context should fail")
	}
}
