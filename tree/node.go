/*
Package tree implements a generic tree node type.

Nodes carry a payload of arbitrary type and maintain a concurrency-safe
slice of children. Package forest uses nodes to materialize a forest built
from a flat slice of elements.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package tree

import (
	"fmt"
	"sync"
)

// Node is the base type our tree is built of.
type Node[T any] struct {
	parent   *Node[T]         // parent node of this node
	children childrenSlice[T] // mutex-protected slice of children nodes
	Payload  T                // nodes may carry a payload of arbitrary type
}

// NewNode creates a new tree node with a given payload.
func NewNode[T any](payload T) *Node[T] {
	return &Node[T]{Payload: payload}
}

func (node *Node[T]) String() string {
	return fmt.Sprintf("(Node #ch=%d %v)", node.ChildCount(), node.Payload)
}

// AddChild appends ch to the children of node and makes node its parent.
// It returns node to allow for chaining.
func (node *Node[T]) AddChild(ch *Node[T]) *Node[T] {
	if ch != nil {
		node.children.add(ch, node)
	}
	return node
}

// Parent returns the parent node or nil for a root.
func (node *Node[T]) Parent() *Node[T] {
	return node.parent
}

// ChildCount returns the number of children of node.
func (node *Node[T]) ChildCount() int {
	return node.children.length()
}

// Children returns a copy of the children of node.
func (node *Node[T]) Children() []*Node[T] {
	return node.children.snapshot()
}

// Walk visits node and all of its descendants in depth-first pre-order.
// depth is 0 for node itself. If f returns false, the children of the
// visited node are skipped.
func (node *Node[T]) Walk(f func(n *Node[T], depth int) bool) {
	node.walk(f, 0)
}

func (node *Node[T]) walk(f func(*Node[T], int) bool, depth int) {
	if node == nil || !f(node, depth) {
		return
	}
	for _, ch := range node.Children() {
		ch.walk(f, depth+1)
	}
}

type childrenSlice[T any] struct {
	sync.RWMutex
	slice []*Node[T]
}

func (chs *childrenSlice[T]) length() int {
	chs.RLock()
	defer chs.RUnlock()
	return len(chs.slice)
}

func (chs *childrenSlice[T]) add(child *Node[T], parent *Node[T]) {
	chs.Lock()
	defer chs.Unlock()
	chs.slice = append(chs.slice, child)
	child.parent = parent
}

func (chs *childrenSlice[T]) snapshot() []*Node[T] {
	chs.RLock()
	defer chs.RUnlock()
	children := make([]*Node[T], len(chs.slice))
	copy(children, chs.slice)
	return children
}
