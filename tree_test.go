// Copyright © 2019, Oleksandr Krykovliuk <k33nice@gmail.com>.
// Use of this source code is governed by the
// MIT license that can be found in the LICENSE file.

package patrie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustContain(t *testing.T, tr *Trie[byte], s string) {
	t.Helper()
	ok, err := tr.Contains(CharSeq[byte](s))
	require.NoError(t, err)
	assert.True(t, ok, "expected %q to be stored", s)
}

func mustNotContain(t *testing.T, tr *Trie[byte], s string) {
	t.Helper()
	ok, err := tr.Contains(CharSeq[byte](s))
	require.NoError(t, err)
	assert.False(t, ok, "expected %q not to be stored", s)
}

func insertAll(t *testing.T, tr *Trie[byte], words ...string) {
	t.Helper()
	for _, w := range words {
		require.NoError(t, tr.Insert(CharSeq[byte](w)))
	}
}

func enumerate(tr *Trie[byte]) []string {
	var out []string
	for it := tr.Begin(); !it.Done(); it.Next() {
		out = append(out, string([]byte(it.Value())))
	}
	return out
}

// @spec scenario 1: splice at root.
func TestSpliceAtRoot(t *testing.T) {
	tr := New(reserved)
	insertAll(t, tr, "cat", "car")

	require.False(t, tr.root.isLeaf())
	assert.Equal(t, 2, tr.root.compareIndex)
	require.Len(t, tr.root.children, 2)
	assert.Equal(t, byte('r'), tr.root.children[0].char)
	assert.Equal(t, byte('t'), tr.root.children[1].char)

	mustContain(t, tr, "cat")
	mustContain(t, tr, "car")
	mustNotContain(t, tr, "ca")
	require.NoError(t, tr.CheckInvariants())
}

// @spec scenario 2: branch deeper.
func TestBranchDeeper(t *testing.T) {
	tr := New(reserved)
	insertAll(t, tr, "cat", "car", "cart")

	assert.Equal(t, 3, tr.Size())
	assert.Equal(t, []string{"car", "cart", "cat"}, enumerate(tr))
	require.NoError(t, tr.CheckInvariants())
}

// @spec scenario 3: collapse on remove.
func TestCollapseOnRemove(t *testing.T) {
	tr := New(reserved)
	insertAll(t, tr, "cat", "car", "cart")

	require.NoError(t, tr.Remove(CharSeq[byte]("cart")))

	assert.Equal(t, 2, tr.Size())
	mustContain(t, tr, "cat")
	mustContain(t, tr, "car")
	mustNotContain(t, tr, "cart")
	require.False(t, tr.root.isLeaf())
	assert.Equal(t, 2, tr.root.compareIndex)
	require.Len(t, tr.root.children, 2)
	require.NoError(t, tr.CheckInvariants())
}

// @spec scenario 6: reserved-character rejection leaves the tree unchanged.
func TestInsertRejectsReservedCharacter(t *testing.T) {
	tr := New(reserved)
	insertAll(t, tr, "cat")

	err := tr.Insert(CharSeq[byte]{'d', reserved, 'g'})
	assert.ErrorIs(t, err, ErrReservedCharacter)
	assert.Equal(t, 1, tr.Size())
}

func TestInsertRejectsEmptyString(t *testing.T) {
	tr := New(reserved)
	err := tr.Insert(CharSeq[byte]{})
	assert.ErrorIs(t, err, ErrEmptyString)
}

// @spec: insert idempotence.
func TestInsertIdempotent(t *testing.T) {
	tr := New(reserved)
	insertAll(t, tr, "cat", "car")

	require.NoError(t, tr.Insert(CharSeq[byte]("cat")))

	assert.Equal(t, 2, tr.Size())
	require.NoError(t, tr.CheckInvariants())
}

// @spec: remove idempotence.
func TestRemoveIdempotent(t *testing.T) {
	tr := New(reserved)
	insertAll(t, tr, "cat")

	require.NoError(t, tr.Remove(CharSeq[byte]("dog")))

	assert.Equal(t, 1, tr.Size())
}

func TestRemoveLastLeafEmptiesTree(t *testing.T) {
	tr := New(reserved)
	insertAll(t, tr, "cat")

	require.NoError(t, tr.Remove(CharSeq[byte]("cat")))

	assert.True(t, tr.Empty())
	assert.Nil(t, tr.root)
}

// @spec: copy independence.
func TestCloneIndependence(t *testing.T) {
	a := New(reserved)
	insertAll(t, a, "cat", "car", "cart")

	b := a.Clone()
	require.NoError(t, b.Remove(CharSeq[byte]("cart")))
	require.NoError(t, b.Insert(CharSeq[byte]("dog")))

	assert.Equal(t, 3, a.Size())
	assert.Equal(t, []string{"car", "cart", "cat"}, enumerate(a))
	assert.Equal(t, 3, b.Size())
	assert.Equal(t, []string{"car", "cat", "dog"}, enumerate(b))
	require.NoError(t, a.CheckInvariants())
	require.NoError(t, b.CheckInvariants())
}

// @spec: copy and destruction of a deep tree must not recurse.
func TestDeepTreeCloneAndClear(t *testing.T) {
	const depth = 20000

	tr := New(reserved)
	prefix := ""
	for k := 0; k < depth; k++ {
		require.NoError(t, tr.Insert(CharSeq[byte](prefix+"b")))
		prefix += "a"
	}

	assert.Equal(t, depth, tr.Size())

	clone := tr.Clone()
	assert.Equal(t, depth, clone.Size())

	tr.Clear()
	assert.True(t, tr.Empty())

	clone.Clear()
	assert.True(t, clone.Empty())
}

func TestSearchOnEmptyTrieReturnsNil(t *testing.T) {
	tr := New(reserved)
	assert.Nil(t, tr.search(term("cat")))
	assert.Nil(t, tr.searchPath(term("cat")))
}
