// Copyright © 2019, Oleksandr Krykovliuk <k33nice@gmail.com>.
// Use of this source code is governed by the
// MIT license that can be found in the LICENSE file.

// Package stringtrie adapts package patrie to Go's native string type.
// Every method is a thin []byte <-> patrie.CharSeq[byte] conversion over a
// *patrie.Trie[byte] configured with Reserved = 0x00; it contributes no
// algorithmic content of its own.
package stringtrie

import "github.com/k33nice/patrie"

// Reserved is the sentinel terminator used by Trie. NUL is never part of a
// well-formed Go string produced by ordinary text processing, making it
// the natural choice for the byte alphabet.
const Reserved = byte(0x00)

// Trie is a Patricia trie over Go strings.
type Trie struct {
	inner *patrie.Trie[byte]
}

// New returns an empty string trie.
func New() *Trie {
	return &Trie{inner: patrie.New(Reserved)}
}

// Size returns the number of strings currently stored.
func (t *Trie) Size() int { return t.inner.Size() }

// Empty reports whether the trie holds no strings.
func (t *Trie) Empty() bool { return t.inner.Empty() }

// Clear removes every stored string.
func (t *Trie) Clear() { t.inner.Clear() }

// Clone returns a deep, independent copy of t.
func (t *Trie) Clone() *Trie { return &Trie{inner: t.inner.Clone()} }

// Contains reports whether s is a stored string.
func (t *Trie) Contains(s string) (bool, error) {
	return t.inner.Contains(toCharSeq(s))
}

// Insert adds s to the trie.
func (t *Trie) Insert(s string) error {
	return t.inner.Insert(toCharSeq(s))
}

// Remove deletes s from the trie, if present.
func (t *Trie) Remove(s string) error {
	return t.inner.Remove(toCharSeq(s))
}

// Successor returns the least stored string strictly greater than s, and
// ok reporting whether one exists.
func (t *Trie) Successor(s string) (result string, ok bool, err error) {
	it, err := t.inner.Successor(toCharSeq(s))
	if err != nil {
		return "", false, err
	}
	return iteratorValue(it)
}

// Predecessor returns the greatest stored string strictly less than s, and
// ok reporting whether one exists.
func (t *Trie) Predecessor(s string) (result string, ok bool, err error) {
	it, err := t.inner.Predecessor(toCharSeq(s))
	if err != nil {
		return "", false, err
	}
	return iteratorValue(it)
}

// PrefixedStrings returns, in ascending order, every stored string that
// begins with prefix.
func (t *Trie) PrefixedStrings(prefix string) ([]string, error) {
	begin, after, err := t.inner.PrefixedStrings(toCharSeq(prefix))
	if err != nil {
		return nil, err
	}

	var out []string
	for !begin.Equal(after) {
		out = append(out, fromCharSeq(begin.Value()))
		begin.Next()
	}
	return out, nil
}

// Strings returns every stored string in ascending order.
func (t *Trie) Strings() []string {
	var out []string
	for it := t.inner.Begin(); !it.Done(); it.Next() {
		out = append(out, fromCharSeq(it.Value()))
	}
	return out
}

func iteratorValue(it *patrie.Iterator[byte]) (string, bool, error) {
	if it.Done() {
		return "", false, nil
	}
	return fromCharSeq(it.Value()), true, nil
}

func toCharSeq(s string) patrie.CharSeq[byte] {
	return patrie.CharSeq[byte]([]byte(s))
}

func fromCharSeq(s patrie.CharSeq[byte]) string {
	return string([]byte(s))
}
