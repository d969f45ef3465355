// Copyright © 2019, Oleksandr Krykovliuk <k33nice@gmail.com>.
// Use of this source code is governed by the
// MIT license that can be found in the LICENSE file.

package patrie

// Successor returns an iterator at the least stored string strictly
// greater than s, or End() if none exists.
func (t *Trie[T]) Successor(s CharSeq[T]) (*Iterator[T], error) {
	key, err := normalize(t.reserved, s)
	if err != nil {
		return nil, err
	}
	return t.successorOf(key), nil
}

// Predecessor returns an iterator at the greatest stored string strictly
// less than s, or End() if none exists.
func (t *Trie[T]) Predecessor(s CharSeq[T]) (*Iterator[T], error) {
	key, err := normalize(t.reserved, s)
	if err != nil {
		return nil, err
	}
	return t.predecessorOf(key), nil
}

// successorOf and predecessorOf take an already-terminated key, so that
// Iterator.Next can reuse them without re-normalizing its current
// position.
func (t *Trie[T]) successorOf(key CharSeq[T]) *Iterator[T] {
	if t.root == nil {
		return t.end()
	}

	path := t.searchPath(key)
	// Descent reads key only at each compareIndex; cut the path back to
	// the node below which key first differs from the stored strings.
	d, differs := indexOfFirstDifference(key, leftmost(path[len(path)-1]).str)
	for differs && len(path) > 1 && path[len(path)-2].compareIndex >= d {
		path = path[:len(path)-1]
	}
	terminal := path[len(path)-1]

	if first := leftmost(terminal); key.less(first.str) {
		return t.iteratorAt(first)
	} else if !terminal.isLeaf() && terminal.compareIndex == d {
		// search diverged among terminal's own children rather than at an
		// ancestor: the least stored string greater than key descends
		// from the least edge here whose character exceeds key's.
		if idx, ok := terminal.upperBound(key[terminal.compareIndex]); ok {
			return t.iteratorAt(leftmost(terminal.children[idx].child))
		}
	}

	// Walk the path upward. At each internal node, the edge taken toward
	// the previously-considered node is identified by key at that node's
	// compareIndex (searchPath descended by exactly that character), so
	// the next greater sibling edge is found directly by index, without
	// recomputing any prefix.
	for i := len(path) - 2; i >= 0; i-- {
		parent := path[i]
		idx := parent.indexOf(key[parent.compareIndex])
		if idx+1 < len(parent.children) {
			candidate := leftmost(parent.children[idx+1].child)
			if key.less(candidate.str) {
				return t.iteratorAt(candidate)
			}
		}
	}
	return t.end()
}

func (t *Trie[T]) predecessorOf(key CharSeq[T]) *Iterator[T] {
	if t.root == nil {
		return t.end()
	}

	path := t.searchPath(key)
	d, differs := indexOfFirstDifference(key, rightmost(path[len(path)-1]).str)
	for differs && len(path) > 1 && path[len(path)-2].compareIndex >= d {
		path = path[:len(path)-1]
	}
	terminal := path[len(path)-1]

	if last := rightmost(terminal); last.str.less(key) {
		return t.iteratorAt(last)
	} else if !terminal.isLeaf() && terminal.compareIndex == d {
		// search diverged among terminal's own children rather than at an
		// ancestor: the greatest stored string less than key descends
		// from the greatest edge here whose character precedes key's.
		if idx, ok := terminal.lowerBound(key[terminal.compareIndex]); ok {
			return t.iteratorAt(rightmost(terminal.children[idx].child))
		}
	}

	for i := len(path) - 2; i >= 0; i-- {
		parent := path[i]
		idx := parent.indexOf(key[parent.compareIndex])
		if idx > 0 {
			candidate := rightmost(parent.children[idx-1].child)
			if candidate.str.less(key) {
				return t.iteratorAt(candidate)
			}
		}
	}
	return t.end()
}

// PrefixedStrings returns [begin, after) bracketing every stored string
// that has p as a prefix, in ascending order. If no stored string has p
// as a prefix, begin and after both equal End().
func (t *Trie[T]) PrefixedStrings(p CharSeq[T]) (begin, after *Iterator[T], err error) {
	key, err := normalize(t.reserved, p)
	if err != nil {
		return nil, nil, err
	}

	// The subtree of matches hangs below the last node that branches
	// before position len(p); descent past it would follow key's
	// terminator and reach only p itself.
	path := t.searchPath(key)
	for len(path) > 1 && path[len(path)-2].compareIndex >= len(p) {
		path = path[:len(path)-1]
	}
	if len(path) == 0 || !path[len(path)-1].str.hasPrefix(p) {
		e := t.end()
		return e, e, nil
	}
	n := path[len(path)-1]

	first := leftmost(n)
	last := rightmost(n)

	begin = t.iteratorAt(first)
	after, err = t.Successor(last.str[:len(last.str)-1])
	if err != nil {
		// last.str is a previously-stored, already-normalized key with its
		// terminator stripped off, so normalize cannot fail here.
		panic(err)
	}
	return begin, after, nil
}
