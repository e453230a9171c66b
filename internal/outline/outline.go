// Package outline reads a Markdown outline into a hierarchy of named entries.
// Headings nest by level; list items nest under the closest preceding
// heading and under their parent list item.
package outline

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// Entry is one named position of the outline.
type Entry struct {
	Name     string
	Children []*Entry
}

// Count returns the number of entries in the subtree, e included.
func (e *Entry) Count() int {
	n := 1
	for _, c := range e.Children {
		n += c.Count()
	}
	return n
}

// Parser parses Markdown outlines using goldmark.
type Parser struct {
	md goldmark.Markdown
}

// NewParser creates a new outline parser. Task list checkboxes are dropped
// from item names.
func NewParser() *Parser {
	return &Parser{
		md: goldmark.New(
			goldmark.WithExtensions(extension.TaskList),
		),
	}
}

type headingInfo struct {
	level int
	entry *Entry
}

// Parse returns the top-level entries of content. Blocks other than
// headings and lists are ignored, as are headings or items without text.
func (p *Parser) Parse(content []byte) []*Entry {
	if len(content) == 0 {
		return nil
	}
	doc := p.md.Parser().Parse(text.NewReader(content))

	var roots []*Entry
	var stack []headingInfo

	attach := func(e *Entry) {
		if len(stack) == 0 {
			roots = append(roots, e)
			return
		}
		parent := stack[len(stack)-1].entry
		parent.Children = append(parent.Children, e)
	}

	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch v := n.(type) {
		case *ast.Heading:
			name := extractText(v, content)
			if name == "" {
				continue
			}
			for len(stack) > 0 && stack[len(stack)-1].level >= v.Level {
				stack = stack[:len(stack)-1]
			}
			e := &Entry{Name: name}
			attach(e)
			stack = append(stack, headingInfo{level: v.Level, entry: e})
		case *ast.List:
			for _, e := range listEntries(v, content) {
				attach(e)
			}
		}
	}

	return roots
}

// listEntries converts the items of list, recursing into nested lists.
func listEntries(list *ast.List, content []byte) []*Entry {
	var entries []*Entry
	for item := list.FirstChild(); item != nil; item = item.NextSibling() {
		if _, ok := item.(*ast.ListItem); !ok {
			continue
		}
		e := &Entry{}
		var nested []*Entry
		for c := item.FirstChild(); c != nil; c = c.NextSibling() {
			switch v := c.(type) {
			case *ast.List:
				nested = append(nested, listEntries(v, content)...)
			default:
				if e.Name == "" {
					e.Name = extractText(v, content)
				}
			}
		}
		if e.Name == "" {
			// an unnamed item still carries its nested items up one level
			entries = append(entries, nested...)
			continue
		}
		e.Children = nested
		entries = append(entries, e)
	}
	return entries
}

// extractText collects the inline text of n, joining soft line breaks with a space.
func extractText(n ast.Node, content []byte) string {
	var b strings.Builder

	_ = ast.Walk(n, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch v := node.(type) {
		case *ast.List:
			return ast.WalkSkipChildren, nil
		case *ast.Text:
			b.Write(v.Segment.Value(content))
			if v.SoftLineBreak() || v.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(v.Value)
		}
		return ast.WalkContinue, nil
	})

	return strings.Join(strings.Fields(b.String()), " ")
}
