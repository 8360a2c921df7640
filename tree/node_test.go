package tree

import (
	"strings"
	"testing"
)

func TestNodeAddChild(t *testing.T) {
	root := NewNode("root")
	a, b := NewNode("a"), NewNode("b")
	root.AddChild(a).AddChild(b).AddChild(nil)
	if root.ChildCount() != 2 {
		t.Fatalf("expected root to have 2 children, has %d", root.ChildCount())
	}
	if a.Parent() != root || b.Parent() != root {
		t.Error("expected children to be linked to root, aren't")
	}
	if root.Parent() != nil {
		t.Error("expected root to have no parent")
	}
	children := root.Children()
	if len(children) != 2 || children[0] != a || children[1] != b {
		t.Errorf("expected children [a b], have %v", children)
	}
	children[0] = nil
	if root.Children()[0] != a {
		t.Error("expected Children to return a copy, doesn't")
	}
}

func TestNodeWalk(t *testing.T) {
	root := NewNode("1")
	n2, n3, n4 := NewNode("2"), NewNode("3"), NewNode("4")
	root.AddChild(n2).AddChild(n3)
	n2.AddChild(n4)
	var visited []string
	root.Walk(func(n *Node[string], depth int) bool {
		visited = append(visited, strings.Repeat(".", depth)+n.Payload)
		return true
	})
	if got := strings.Join(visited, " "); got != "1 .2 ..4 .3" {
		t.Errorf("expected pre-order walk '1 .2 ..4 .3', got %q", got)
	}
	visited = visited[:0]
	root.Walk(func(n *Node[string], depth int) bool {
		visited = append(visited, n.Payload)
		return n != n2
	})
	if got := strings.Join(visited, " "); got != "1 2 3" {
		t.Errorf("expected pruned walk '1 2 3', got %q", got)
	}
}
