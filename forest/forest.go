package forest

import (
	"github.com/npillmayer/collect"
	"github.com/npillmayer/collect/tree"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// ErrMaxDepthExceeded is returned by MakeTreeDepth if the forest is deeper than
// allowed, usually because the parent relation is cyclic.
var ErrMaxDepthExceeded = errors.New("maximum forest depth exceeded")

// MakeTree returns the elements of items for which isRoot holds, in the order
// of items. For every root, and recursively for every child, the children are
// the elements y of items for which isParentOf(parent, y) holds. attach is
// called for each of them with its children, after its whole subtree has been
// built. Leaves are attached an empty, non-nil slice.
//
// Elements which are neither roots nor descendants of a root are not attached.
// Panics from isRoot, isParentOf or attach are not recovered.
func MakeTree[E any](items []E, isRoot collect.Predicate[E], isParentOf collect.Relation[E],
	attach collect.Attach[E]) []E {
	//
	b := builder[E]{items: items, isParentOf: isParentOf, attach: attach}
	roots := b.roots(isRoot)
	for _, root := range roots {
		_ = b.place(root, 0) // unbounded builders do not fail
	}
	return roots
}

// MakeTreeDepth is MakeTree with a limit on the depth of the forest, roots
// being at depth 0. If an element would be placed deeper than maxDepth,
// MakeTreeDepth stops and returns an error wrapping ErrMaxDepthExceeded.
// Elements attached up to then stay attached. A negative maxDepth admits no
// elements at all: any root fails.
func MakeTreeDepth[E any](items []E, isRoot collect.Predicate[E], isParentOf collect.Relation[E],
	attach collect.Attach[E], maxDepth int) ([]E, error) {
	//
	b := builder[E]{items: items, isParentOf: isParentOf, attach: attach, maxDepth: maxDepth, bounded: true}
	roots := b.roots(isRoot)
	for _, root := range roots {
		if err := b.place(root, 0); err != nil {
			return nil, err
		}
	}
	return roots, nil
}

// Nodes builds the forest as tree nodes, with elements as node payloads.
// A node is linked to the first parent it is attached to; further parents
// do not receive it. Root nodes are never linked below another node, so
// Parent() of every returned root is nil.
func Nodes[E any](items []E, isRoot collect.Predicate[E], isParentOf collect.Relation[E]) []*tree.Node[E] {
	all := lo.Map(items, func(x E, _ int) *tree.Node[E] { return tree.NewNode(x) })
	roots := MakeTree(all,
		func(n *tree.Node[E]) bool { return isRoot(n.Payload) },
		func(p, c *tree.Node[E]) bool { return isParentOf(p.Payload, c.Payload) },
		func(n *tree.Node[E], children []*tree.Node[E]) {
			for _, ch := range children {
				if ch.Parent() == nil && !isRoot(ch.Payload) {
					n.AddChild(ch)
				}
			}
		})
	tracer().Debugf("built %d node trees from %d elements", len(roots), len(all))
	return roots
}

type builder[E any] struct {
	items      []E
	isParentOf collect.Relation[E]
	attach     collect.Attach[E]
	maxDepth   int
	bounded    bool
}

func (b builder[E]) roots(isRoot collect.Predicate[E]) []E {
	roots := lo.Filter(b.items, func(x E, _ int) bool { return isRoot(x) })
	tracer().Debugf("%d of %d elements are roots", len(roots), len(b.items))
	return roots
}

// place computes the children of x, places them recursively and attaches them to x.
func (b builder[E]) place(x E, depth int) error {
	if b.bounded && depth > b.maxDepth {
		return errors.Wrapf(ErrMaxDepthExceeded, "element at depth %d, limit is %d", depth, b.maxDepth)
	}
	children := lo.Filter(b.items, func(y E, _ int) bool { return b.isParentOf(x, y) })
	for _, ch := range children {
		if err := b.place(ch, depth+1); err != nil {
			return err
		}
	}
	b.attach(x, children)
	return nil
}
