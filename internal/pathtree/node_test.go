package pathtree

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pathtree/internal/mpath"
)

func TestNewNode(t *testing.T) {
	root := NewNode("Root 1", "", mpath.DefaultDelimiter)
	assert.Equal(t, "root-1", root.Segment)
	assert.Equal(t, "root-1", root.Path)
	assert.True(t, root.IsRoot())

	child := NewNode("Grandchild A1.1", "root-1.parent-a.child-a1", mpath.DefaultDelimiter)
	assert.Equal(t, "grandchild-a1-1", child.Segment)
	assert.Equal(t, "root-1.parent-a.child-a1.grandchild-a1-1", child.Path)
	assert.False(t, child.IsRoot())
}

func TestNode_SetParent(t *testing.T) {
	d := mpath.DefaultDelimiter
	parent := NewNode("parent", "", d)
	node := NewNode("child", "", d)

	node.SetParent(&parent, d)
	assert.Equal(t, "parent", node.ParentPath)
	assert.Equal(t, "parent.child", node.Path)

	node.SetParent(nil, d)
	assert.Equal(t, "", node.ParentPath)
	assert.Equal(t, "child", node.Path)
}

func TestNode_SetParentPath(t *testing.T) {
	for _, d := range []mpath.Delimiter{".", "/"} {
		node := NewNode("Parent A", "root-1", d)
		node.SetParentPath("root-2", d)
		assert.Equal(t, "root-2"+string(d)+"parent-a", node.Path)
	}
}

func TestNode_SetSegment(t *testing.T) {
	d := mpath.DefaultDelimiter
	node := NewNode("Parent A", "root-1", d)
	node.SetSegment("New Name", d)
	assert.Equal(t, "new-name", node.Segment)
	assert.Equal(t, "root-1.new-name", node.Path)
	assert.Equal(t, "Parent A", node.Name)
}

func TestNode_SetNameKeepsSegment(t *testing.T) {
	d := mpath.DefaultDelimiter
	node := NewNode("Parent A", "root-1", d)
	node.SetName("Renamed", d)
	assert.Equal(t, "Renamed", node.Name)
	assert.Equal(t, "parent-a", node.Segment)
	assert.Equal(t, "root-1.parent-a", node.Path)

	blank := Node{ParentPath: "root-1"}
	blank.SetName("Fresh Name", d)
	assert.Equal(t, "fresh-name", blank.Segment)
	assert.Equal(t, "root-1.fresh-name", blank.Path)
}

func TestNode_ExpandedPaths(t *testing.T) {
	d := mpath.DefaultDelimiter
	node := NewNode("Grandchild A1.1", "root-1.parent-a.child-a1", d)
	assert.Equal(t, []string{
		"root-1",
		"root-1.parent-a",
		"root-1.parent-a.child-a1",
		"root-1.parent-a.child-a1.grandchild-a1-1",
	}, node.ExpandedPaths(d))
}
