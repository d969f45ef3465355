// Copyright © 2019, Oleksandr Krykovliuk <k33nice@gmail.com>.
// Use of this source code is governed by the
// MIT license that can be found in the LICENSE file.

// Package patrie is an ordered, in-memory Patricia (radix) trie over a
// caller-chosen character type. It stores a set of non-empty strings
// (keys only, no associated values) and supports insertion, removal,
// membership testing, ordered traversal, strict predecessor/successor
// neighbor queries, and prefix range queries.
package patrie

// Trie is a Patricia trie over strings of T, terminated internally by a
// Reserved sentinel value supplied at construction. It is exposed directly
// as a generic struct rather than an interface: Go's type parameters
// cannot appear on interface methods without also parameterizing the
// interface, so a concrete generic type is the natural rendition of a
// compile-time CharT/Reserved template parameter pair.
type Trie[T Char] struct {
	root     *node[T]
	size     int
	reserved T
}

// New creates an empty Trie whose Reserved sentinel is reserved. Every
// string later passed to Insert, Remove, Contains, Predecessor, Successor
// or PrefixedStrings must not contain reserved.
func New[T Char](reserved T) *Trie[T] {
	return &Trie[T]{reserved: reserved}
}

// Size returns the number of strings currently stored.
func (t *Trie[T]) Size() int { return t.size }

// Empty reports whether the trie holds no strings.
func (t *Trie[T]) Empty() bool { return t.size == 0 }

// Clear removes every stored string, freeing the whole tree iteratively:
// a trie may be arbitrarily deep, so destruction must not recurse.
func (t *Trie[T]) Clear() {
	if t.root == nil {
		t.size = 0
		return
	}
	stack := []*node[T]{t.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n.isLeaf() {
			continue
		}
		for _, e := range n.children {
			stack = append(stack, e.child)
		}
	}
	t.root = nil
	t.size = 0
}

// Contains reports whether s (after normalization) is a stored string.
func (t *Trie[T]) Contains(s CharSeq[T]) (bool, error) {
	key, err := normalize(t.reserved, s)
	if err != nil {
		return false, err
	}
	n := t.search(key)
	return n != nil && n.isLeaf() && n.str.equal(key), nil
}

// Insert adds s to the trie. Inserting a string already present is a
// no-op.
func (t *Trie[T]) Insert(s CharSeq[T]) error {
	key, err := normalize(t.reserved, s)
	if err != nil {
		return err
	}
	t.insert(key)
	return nil
}

// Remove deletes s from the trie. Removing a string that is not present
// is a no-op, not an error.
func (t *Trie[T]) Remove(s CharSeq[T]) error {
	key, err := normalize(t.reserved, s)
	if err != nil {
		return err
	}
	t.remove(key)
	return nil
}

// Take transfers ownership of other's tree to t and leaves other empty,
// the move-construct/move-assign counterpart to Clone. Go values have no
// destructive-move operator, so this is an explicit method instead.
func (t *Trie[T]) Take(other *Trie[T]) {
	t.root, other.root = other.root, nil
	t.size, other.size = other.size, 0
	t.reserved = other.reserved
}
