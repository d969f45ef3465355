// Copyright © 2019, Oleksandr Krykovliuk <k33nice@gmail.com>.
// Use of this source code is governed by the
// MIT license that can be found in the LICENSE file.

package patrie

// search descends from root following the matching child edge at each
// internal node's compareIndex, stopping at a leaf or at a missing edge.
// The returned node is only a candidate: the caller must still compare its
// full str to the normalized key.
func (t *Trie[T]) search(key CharSeq[T]) *node[T] {
	current := t.root
	for current != nil {
		if current.isLeaf() {
			return current
		}
		if current.compareIndex >= len(key) {
			// key ends before this node's branch point (a short query
			// such as a prefix); stop rather than index past its end.
			return current
		}
		next := current.childAt(key[current.compareIndex])
		if next == nil {
			return current
		}
		current = next
	}
	return nil
}

// searchPath mirrors search but records every visited node, for mutators
// and neighbor queries that must walk back up. The last element is the
// terminal node search would have returned.
func (t *Trie[T]) searchPath(key CharSeq[T]) []*node[T] {
	if t.root == nil {
		return nil
	}
	path := []*node[T]{t.root}
	current := t.root
	for !current.isLeaf() {
		if current.compareIndex >= len(key) {
			break
		}
		next := current.childAt(key[current.compareIndex])
		if next == nil {
			break
		}
		path = append(path, next)
		current = next
	}
	return path
}

// insert adds key to the tree, splicing a new internal node if key
// diverges from every existing key at a fresh position. key is already
// normalized.
func (t *Trie[T]) insert(key CharSeq[T]) {
	if t.root == nil {
		t.root = newLeaf(key)
		t.size++
		return
	}

	path := t.searchPath(key)
	n := path[len(path)-1]

	i, found := indexOfFirstDifference(key, n.str)
	if !found {
		if n.isLeaf() {
			// key is already present.
			return
		}
		// Strings agree as far as both extend; since n is internal the
		// branch happens at the terminator position.
		i = len(key) - 1
	}

	if !n.isLeaf() && i == n.compareIndex {
		// Invariant 2 guarantees this is exactly n's branch point.
		n.addChild(key[i], newLeaf(key))
		t.size++
		return
	}

	x, parent := t.siblingOfNewInternalNode(path, i)

	// The new internal node's own string is the shared prefix up to i,
	// with Reserved placed at position i as a branching marker — it is
	// never itself a real key, only x's and the new leaf's actual
	// characters at i (recorded as edges below) are.
	pathStr := make(CharSeq[T], i+1)
	copy(pathStr, key[:i])
	pathStr[i] = t.reserved

	internal := newInternal(pathStr, i)
	internal.addChild(x.str[i], x)
	internal.addChild(key[i], newLeaf(key))

	if parent == nil {
		t.root = internal
	} else {
		// parent already holds an edge to x at this character; splice
		// the new internal node into that same slot.
		idx := parent.indexOf(key[parent.compareIndex])
		parent.children[idx].child = internal
	}

	t.size++
}

// siblingOfNewInternalNode returns the deepest entry of path whose parent
// either does not exist or has compareIndex < i — the unique position at
// which a new internal node with compareIndex i must be spliced to keep
// the compareIndex chain strictly increasing.
func (t *Trie[T]) siblingOfNewInternalNode(path []*node[T], i int) (x, parent *node[T]) {
	depth := len(path) - 1
	for depth > 0 && path[depth-1].compareIndex >= i {
		depth--
	}
	if depth > 0 {
		parent = path[depth-1]
	}
	return path[depth], parent
}

// remove deletes key from the tree, collapsing a parent left with a
// single child. key is already normalized.
func (t *Trie[T]) remove(key CharSeq[T]) {
	path := t.searchPath(key)
	if len(path) == 0 {
		return
	}

	n := path[len(path)-1]
	if !n.isLeaf() || !n.str.equal(key) {
		return
	}

	if len(path) == 1 {
		t.root = nil
		t.size--
		return
	}

	parent := path[len(path)-2]
	idx := parent.indexOf(key[parent.compareIndex])
	parent.removeChildAt(idx)

	if len(parent.children) == 1 {
		// Collapse parent: invariant 4 forbids a surviving internal node
		// with exactly one child.
		survivor := parent.children[0].child
		if len(path) == 2 {
			t.root = survivor
		} else {
			grandparent := path[len(path)-3]
			gi := grandparent.indexOf(key[grandparent.compareIndex])
			grandparent.children[gi].child = survivor
		}
	}

	t.size--
}

// Clone returns a deep, independent copy of t built iteratively with an
// explicit work stack so that arbitrarily deep tries cannot overflow the
// call stack.
func (t *Trie[T]) Clone() *Trie[T] {
	out := &Trie[T]{size: t.size, reserved: t.reserved}
	if t.root == nil {
		return out
	}

	type job struct {
		src *node[T]
		dst **node[T]
	}

	stack := []job{{src: t.root, dst: &out.root}}

	for len(stack) > 0 {
		j := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		src := j.src
		if src.isLeaf() {
			*j.dst = newLeaf(src.str)
			continue
		}

		dst := newInternal(src.str, src.compareIndex)
		dst.children = make([]edge[T], len(src.children))
		*j.dst = dst

		for idx, e := range src.children {
			dst.children[idx] = edge[T]{char: e.char}
			stack = append(stack, job{src: e.child, dst: &dst.children[idx].child})
		}
	}

	return out
}
