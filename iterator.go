// Copyright © 2019, Oleksandr Krykovliuk <k33nice@gmail.com>.
// Use of this source code is governed by the
// MIT license that can be found in the LICENSE file.

package patrie

// Iterator is a forward, ordered const iterator over a Trie's stored
// strings. The zero value of the terminated field marks the end position
// — safe because an empty string is never stored.
type Iterator[T Char] struct {
	trie *Trie[T]
	term CharSeq[T]
}

// Begin returns an iterator positioned at the least stored string, or an
// end iterator if the trie is empty.
func (t *Trie[T]) Begin() *Iterator[T] {
	if t.root == nil {
		return t.end()
	}
	return t.iteratorAt(leftmost(t.root))
}

// End returns the end sentinel iterator.
func (t *Trie[T]) End() *Iterator[T] { return t.end() }

func (t *Trie[T]) end() *Iterator[T] { return &Iterator[T]{trie: t} }

func (t *Trie[T]) iteratorAt(leaf *node[T]) *Iterator[T] {
	return &Iterator[T]{trie: t, term: leaf.str}
}

// Done reports whether it is the end iterator.
func (it *Iterator[T]) Done() bool { return len(it.term) == 0 }

// Value dereferences the iterator, yielding the un-terminated stored
// string. Calling Value on the end iterator returns nil.
func (it *Iterator[T]) Value() CharSeq[T] {
	if it.Done() {
		return nil
	}
	return it.term[:len(it.term)-1]
}

// Equal compares two iterators over the same trie.
func (it *Iterator[T]) Equal(other *Iterator[T]) bool {
	return it.trie == other.trie && it.term.equal(other.term)
}

// Next advances the iterator to its successor. Every insertion or removal
// on the underlying trie invalidates all outstanding iterators.
func (it *Iterator[T]) Next() {
	if it.Done() {
		return
	}
	it.term = it.trie.successorOf(it.term).term
}

// Inserter is a write-only output iterator: assignment forwards to
// Insert. Dereference and increment are identity operations; its purpose
// is interoperability with algorithms that write to a sink rather than a
// single accumulator.
type Inserter[T Char] struct {
	trie *Trie[T]
}

// NewInserter returns an output iterator that inserts into t.
func NewInserter[T Char](t *Trie[T]) *Inserter[T] {
	return &Inserter[T]{trie: t}
}

// Put inserts s into the underlying trie.
func (ins *Inserter[T]) Put(s CharSeq[T]) error {
	return ins.trie.Insert(s)
}
