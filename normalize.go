// Copyright © 2019, Oleksandr Krykovliuk <k33nice@gmail.com>.
// Use of this source code is governed by the
// MIT license that can be found in the LICENSE file.

package patrie

// normalize rejects an empty string or one containing the reserved
// character, and otherwise appends a single reserved terminator. The
// returned sequence is what the trie stores and compares.
func normalize[T Char](reserved T, s CharSeq[T]) (CharSeq[T], error) {
	if len(s) == 0 {
		return nil, ErrEmptyString
	}
	for _, c := range s {
		if c == reserved {
			return nil, ErrReservedCharacter
		}
	}
	out := make(CharSeq[T], len(s)+1)
	copy(out, s)
	out[len(s)] = reserved
	return out, nil
}

// indexOfFirstDifference scans a and b up to the shorter length and returns
// the first mismatching index. ok is false when every compared position
// matched (the strings are equal as far as both extend).
func indexOfFirstDifference[T Char](a, b CharSeq[T]) (index int, ok bool) {
	limit := len(a)
	if len(b) < limit {
		limit = len(b)
	}
	for i := 0; i < limit; i++ {
		if a[i] != b[i] {
			return i, true
		}
	}
	return 0, false
}
