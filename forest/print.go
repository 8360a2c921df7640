package forest

import (
	"fmt"

	"github.com/npillmayer/collect/tree"
	tp "github.com/xlab/treeprint"
)

// Print renders a forest of nodes as an indented tree, one line per node.
// If label is nil, payloads are formatted with %v.
func Print[E any](roots []*tree.Node[E], label func(E) string) string {
	if label == nil {
		label = func(x E) string { return fmt.Sprintf("%v", x) }
	}
	printer := tp.New()
	for _, root := range roots {
		branches := map[*tree.Node[E]]tp.Tree{}
		root.Walk(func(n *tree.Node[E], depth int) bool {
			b := printer
			if depth > 0 {
				b = branches[n.Parent()]
			}
			if n.ChildCount() == 0 {
				b.AddNode(label(n.Payload))
			} else {
				branches[n] = b.AddBranch(label(n.Payload))
			}
			return true
		})
	}
	return printer.String()
}
