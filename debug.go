// Copyright © 2019, Oleksandr Krykovliuk <k33nice@gmail.com>.
// Use of this source code is governed by the
// MIT license that can be found in the LICENSE file.

package patrie

import "fmt"

// CheckInvariants walks the whole tree and reports the first structural
// violation found, or nil if the tree is well-formed. It is a diagnostic
// hook for tests, not part of the container's runtime contract.
func (t *Trie[T]) CheckInvariants() error {
	if t.root == nil {
		if t.size != 0 {
			return fmt.Errorf("patrie: size %d but root is absent", t.size)
		}
		return nil
	}

	leaves := 0
	if err := checkNode(t.root, t.reserved, -1, &leaves); err != nil {
		return err
	}
	if leaves != t.size {
		return fmt.Errorf("patrie: size %d but found %d leaves", t.size, leaves)
	}
	return nil
}

func checkNode[T Char](n *node[T], reserved T, parentCompareIndex int, leaves *int) error {
	if n.isLeaf() {
		*leaves++
		if len(n.str) == 0 {
			return fmt.Errorf("patrie: leaf has empty string")
		}
		if n.str[len(n.str)-1] != reserved {
			return fmt.Errorf("patrie: leaf string %v does not end in the reserved character", n.str)
		}
		for i, c := range n.str[:len(n.str)-1] {
			if c == reserved {
				return fmt.Errorf("patrie: leaf string %v contains an interior reserved character at %d", n.str, i)
			}
		}
		return nil
	}

	if len(n.children) < 2 {
		return fmt.Errorf("patrie: internal node %v has %d children, want at least 2", n.str, len(n.children))
	}
	if n.compareIndex <= parentCompareIndex {
		return fmt.Errorf("patrie: compareIndex %d does not strictly increase from parent compareIndex %d", n.compareIndex, parentCompareIndex)
	}
	if len(n.str) != n.compareIndex+1 {
		return fmt.Errorf("patrie: internal node string length %d does not equal compareIndex+1 %d", len(n.str), n.compareIndex+1)
	}
	if n.str[n.compareIndex] != reserved {
		return fmt.Errorf("patrie: internal node string %v does not end in the reserved character", n.str)
	}

	var prev *T
	for _, e := range n.children {
		if prev != nil && !(*prev < e.char) {
			return fmt.Errorf("patrie: children of %v are not strictly ordered", n.str)
		}
		c := e.char
		prev = &c

		if e.child.str[n.compareIndex] != e.char {
			return fmt.Errorf("patrie: child string %v does not match edge character %v at index %d", e.child.str, e.char, n.compareIndex)
		}
		if err := checkNode(e.child, reserved, n.compareIndex, leaves); err != nil {
			return err
		}
	}
	return nil
}

// DebugString renders the tree structure for diagnostics and test failure
// messages. It is not part of the container's runtime contract.
func (t *Trie[T]) DebugString() string {
	if t.root == nil {
		return "<empty>"
	}
	return debugNode(t.root, 0)
}

func debugNode[T Char](n *node[T], depth int) string {
	indent := ""
	for i := 0; i < depth; i++ {
		indent += "  "
	}
	if n.isLeaf() {
		return fmt.Sprintf("%sleaf %v\n", indent, n.str)
	}
	out := fmt.Sprintf("%sinternal[%d] %v\n", indent, n.compareIndex, n.str)
	for _, e := range n.children {
		out += fmt.Sprintf("%s  -%v->\n", indent, e.char)
		out += debugNode(e.child, depth+1)
	}
	return out
}
