// Copyright © 2019, Oleksandr Krykovliuk <k33nice@gmail.com>.
// Use of this source code is governed by the
// MIT license that can be found in the LICENSE file.

package patrie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func value(t *testing.T, it *Iterator[byte]) (string, bool) {
	t.Helper()
	if it.Done() {
		return "", false
	}
	return string([]byte(it.Value())), true
}

// @spec scenario 5: neighbors with an absent key.
func TestNeighborsWithAbsentKey(t *testing.T) {
	tr := New(reserved)
	insertAll(t, tr, "b", "d", "f")

	succ, err := tr.Successor(CharSeq[byte]("c"))
	require.NoError(t, err)
	got, ok := value(t, succ)
	assert.True(t, ok)
	assert.Equal(t, "d", got)

	pred, err := tr.Predecessor(CharSeq[byte]("c"))
	require.NoError(t, err)
	got, ok = value(t, pred)
	assert.True(t, ok)
	assert.Equal(t, "b", got)

	succEnd, err := tr.Successor(CharSeq[byte]("f"))
	require.NoError(t, err)
	assert.True(t, succEnd.Done())

	predEnd, err := tr.Predecessor(CharSeq[byte]("b"))
	require.NoError(t, err)
	assert.True(t, predEnd.Done())
}

func TestSuccessorOfStoredKeySkipsToNext(t *testing.T) {
	tr := New(reserved)
	insertAll(t, tr, "car", "cart", "cat")

	succ, err := tr.Successor(CharSeq[byte]("car"))
	require.NoError(t, err)
	got, ok := value(t, succ)
	assert.True(t, ok)
	assert.Equal(t, "cart", got)
}

func TestPredecessorOfStoredKeySkipsToPrevious(t *testing.T) {
	tr := New(reserved)
	insertAll(t, tr, "car", "cart", "cat")

	pred, err := tr.Predecessor(CharSeq[byte]("cat"))
	require.NoError(t, err)
	got, ok := value(t, pred)
	assert.True(t, ok)
	assert.Equal(t, "cart", got)
}

func TestNeighborsOnEmptyTrie(t *testing.T) {
	tr := New(reserved)

	succ, err := tr.Successor(CharSeq[byte]("anything"))
	require.NoError(t, err)
	assert.True(t, succ.Done())

	pred, err := tr.Predecessor(CharSeq[byte]("anything"))
	require.NoError(t, err)
	assert.True(t, pred.Done())
}

// @spec scenario 4: prefix range.
func TestPrefixedStrings(t *testing.T) {
	tr := New(reserved)
	insertAll(t, tr, "apple", "apply", "apricot", "banana")

	assertPrefix(t, tr, "app", []string{"apple", "apply"})
	assertPrefix(t, tr, "ap", []string{"apple", "apply", "apricot"})
	assertPrefix(t, tr, "b", []string{"banana"})
	assertPrefix(t, tr, "z", nil)
}

func assertPrefix(t *testing.T, tr *Trie[byte], prefix string, want []string) {
	t.Helper()

	begin, after, err := tr.PrefixedStrings(CharSeq[byte](prefix))
	require.NoError(t, err)

	var got []string
	for !begin.Equal(after) {
		got = append(got, string([]byte(begin.Value())))
		begin.Next()
	}
	assert.Equal(t, want, got)
}

func TestPrefixedStringsRejectsEmptyPrefix(t *testing.T) {
	tr := New(reserved)
	insertAll(t, tr, "apple")

	_, _, err := tr.PrefixedStrings(CharSeq[byte]{})
	assert.ErrorIs(t, err, ErrEmptyString)
}
