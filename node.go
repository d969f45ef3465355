// Copyright © 2019, Oleksandr Krykovliuk <k33nice@gmail.com>.
// Use of this source code is governed by the
// MIT license that can be found in the LICENSE file.

package patrie

import "sort"

// kind tags the two node variants. Dispatch is by switch on kind rather
// than a class hierarchy, so an operation that only applies to one variant
// is never reachable on the other.
type kind uint8

const (
	leafKind kind = iota
	internalKind
)

// edge is one entry of an internal node's ordered children mapping: the
// character that selects it, and the child reached through it. A node's
// edges are always kept sorted by char — the ordering that defines
// leftmost/rightmost descent and the neighbor queries.
type edge[T Char] struct {
	char  T
	child *node[T]
}

// node is the tagged leaf/internal record. A leaf carries the full
// Reserved-terminated key. An internal node carries compareIndex and the
// path prefix ending in Reserved at compareIndex, plus its ordered
// children.
type node[T Char] struct {
	kind kind

	str CharSeq[T]

	compareIndex int
	children     []edge[T]
}

func newLeaf[T Char](key CharSeq[T]) *node[T] {
	return &node[T]{kind: leafKind, str: key.clone()}
}

func newInternal[T Char](pathPrefix CharSeq[T], compareIndex int) *node[T] {
	return &node[T]{
		kind:         internalKind,
		str:          pathPrefix.clone(),
		compareIndex: compareIndex,
	}
}

func (n *node[T]) isLeaf() bool { return n.kind == leafKind }

// indexOf returns the position of char in n's ordered children, or -1,
// via binary search over the sorted edge slice.
func (n *node[T]) indexOf(char T) int {
	children := n.children
	i := sort.Search(len(children), func(i int) bool {
		return children[i].char >= char
	})
	if i < len(children) && children[i].char == char {
		return i
	}
	return -1
}

// childAt returns the child reached by char, or nil.
func (n *node[T]) childAt(char T) *node[T] {
	i := n.indexOf(char)
	if i < 0 {
		return nil
	}
	return n.children[i].child
}

// addChild inserts child at the edge keyed by char via insertion sort,
// preserving the sorted order of the children slice.
func (n *node[T]) addChild(char T, child *node[T]) {
	children := n.children
	i := sort.Search(len(children), func(i int) bool {
		return children[i].char >= char
	})
	children = append(children, edge[T]{})
	copy(children[i+1:], children[i:])
	children[i] = edge[T]{char: char, child: child}
	n.children = children
}

// removeChildAt removes the edge at position i, preserving order.
func (n *node[T]) removeChildAt(i int) {
	n.children = append(n.children[:i], n.children[i+1:]...)
}

// firstEdge and lastEdge give the extreme children used by leftmost and
// rightmost descent; both rely on children being sorted.
func (n *node[T]) firstEdge() edge[T] { return n.children[0] }
func (n *node[T]) lastEdge() edge[T]  { return n.children[len(n.children)-1] }

// upperBound returns the index of the first child edge whose char is
// strictly greater than char, or ok=false if every edge is <= char.
func (n *node[T]) upperBound(char T) (index int, ok bool) {
	children := n.children
	i := sort.Search(len(children), func(i int) bool {
		return children[i].char > char
	})
	if i < len(children) {
		return i, true
	}
	return 0, false
}

// lowerBound returns the index of the last child edge whose char is
// strictly less than char, or ok=false if every edge is >= char.
func (n *node[T]) lowerBound(char T) (index int, ok bool) {
	children := n.children
	i := sort.Search(len(children), func(i int) bool {
		return children[i].char >= char
	})
	if i > 0 {
		return i - 1, true
	}
	return 0, false
}
