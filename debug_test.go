// Copyright © 2019, Oleksandr Krykovliuk <k33nice@gmail.com>.
// Use of this source code is governed by the
// MIT license that can be found in the LICENSE file.

package patrie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckInvariantsOnEmptyTrie(t *testing.T) {
	tr := New(reserved)
	assert.NoError(t, tr.CheckInvariants())
}

func TestCheckInvariantsAfterMutations(t *testing.T) {
	tr := New(reserved)
	words := []string{"cat", "car", "cart", "dog", "do"}

	for _, w := range words {
		require.NoError(t, tr.Insert(CharSeq[byte](w)))
		require.NoError(t, tr.CheckInvariants(), "after inserting %q:\n%s", w, tr.DebugString())
	}
	for _, w := range words {
		require.NoError(t, tr.Remove(CharSeq[byte](w)))
		require.NoError(t, tr.CheckInvariants(), "after removing %q:\n%s", w, tr.DebugString())
	}
}

func TestCheckInvariantsCatchesSingleChildInternalNode(t *testing.T) {
	tr := New(reserved)
	tr.root = newInternal(CharSeq[byte]{'a', reserved}, 1)
	tr.root.addChild('b', newLeaf(CharSeq[byte]("ab")))
	tr.size = 1

	err := tr.CheckInvariants()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "children")
}

func TestDebugStringRendersStructure(t *testing.T) {
	tr := New(reserved)
	insertAll(t, tr, "cat", "car")

	out := tr.DebugString()
	assert.Contains(t, out, "internal")
	assert.Contains(t, out, "leaf")
}

func TestDebugStringOnEmptyTrie(t *testing.T) {
	tr := New(reserved)
	assert.Equal(t, "<empty>", tr.DebugString())
}
