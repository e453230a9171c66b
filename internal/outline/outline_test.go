package outline

import (
	"testing"
)

// shape renders entries as "name(child,child)" for compact comparison.
func shape(entries []*Entry) string {
	s := ""
	for i, e := range entries {
		if i > 0 {
			s += ","
		}
		s += e.Name
		if len(e.Children) > 0 {
			s += "(" + shape(e.Children) + ")"
		}
	}
	return s
}

func TestNewParser(t *testing.T) {
	if NewParser() == nil {
		t.Fatal("NewParser() returned nil")
	}
}

func TestParser_Parse(t *testing.T) {
	parser := NewParser()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "empty content",
			content: "",
			want:    "",
		},
		{
			name:    "headings nest by level",
			content: "# Root 1\n\n## Parent A\n\n### Child A1\n\n## Parent B\n\n# Root 2\n",
			want:    "Root 1(Parent A(Child A1),Parent B),Root 2",
		},
		{
			name:    "skipped heading level attaches to closest shallower heading",
			content: "# Root\n\n### Deep\n\n## Shallow\n",
			want:    "Root(Deep,Shallow)",
		},
		{
			name:    "lists nest under headings",
			content: "# Root 1\n\n- Parent A\n  - Child A1\n    - Grandchild A1.1\n  - Child A2\n- Parent B\n",
			want:    "Root 1(Parent A(Child A1(Grandchild A1.1),Child A2),Parent B)",
		},
		{
			name:    "list without heading is top level",
			content: "- One\n- Two\n  1. Two point one\n",
			want:    "One,Two(Two point one)",
		},
		{
			name:    "paragraphs ignored",
			content: "# Root\n\nSome prose that is not part of the outline.\n\n- Item\n",
			want:    "Root(Item)",
		},
		{
			name:    "inline markup flattened",
			content: "# The *quick* `brown` fox\n\n- [ ] Task **one**\n- [x] Task two\n",
			want:    "The quick brown fox(Task one,Task two)",
		},
		{
			name:    "wrapped item text joined",
			content: "- first line\n  continues here\n",
			want:    "first line continues here",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shape(parser.Parse([]byte(tt.content)))
			if got != tt.want {
				t.Errorf("Parse() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEntry_Count(t *testing.T) {
	entries := NewParser().Parse([]byte("# A\n\n- B\n  - C\n- D\n"))
	if len(entries) != 1 {
		t.Fatalf("Parse() returned %d roots, want 1", len(entries))
	}
	if got := entries[0].Count(); got != 4 {
		t.Errorf("Count() = %d, want 4", got)
	}
}
