// Copyright © 2019, Oleksandr Krykovliuk <k33nice@gmail.com>.
// Use of this source code is governed by the
// MIT license that can be found in the LICENSE file.

package patrie

import "golang.org/x/exp/constraints"

// Char is the set of types that can serve as the character unit of a Trie.
// It must support equality and the natural order that defines the
// lexicographic ordering of stored strings.
type Char interface {
	constraints.Ordered
}

// CharSeq is a sequence of character units over T. It is the trie's native
// key representation; a host string type is expected to convert to and from
// CharSeq via a thin adapter (see package stringtrie for the []byte case).
type CharSeq[T Char] []T

// equal reports whether s and other hold the same characters in the same
// order.
func (s CharSeq[T]) equal(other CharSeq[T]) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// less reports whether s sorts strictly before other under the raw,
// position-by-position comparison of T (no collation, per spec Non-goals).
func (s CharSeq[T]) less(other CharSeq[T]) bool {
	limit := len(s)
	if len(other) < limit {
		limit = len(other)
	}
	for i := 0; i < limit; i++ {
		if s[i] != other[i] {
			return s[i] < other[i]
		}
	}
	return len(s) < len(other)
}

// hasPrefix reports whether s begins with prefix.
func (s CharSeq[T]) hasPrefix(prefix CharSeq[T]) bool {
	if len(prefix) > len(s) {
		return false
	}
	for i := range prefix {
		if s[i] != prefix[i] {
			return false
		}
	}
	return true
}

// clone returns an independent copy of s.
func (s CharSeq[T]) clone() CharSeq[T] {
	out := make(CharSeq[T], len(s))
	copy(out, s)
	return out
}
