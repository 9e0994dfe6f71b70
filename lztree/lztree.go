// Copyright 2024 The lzcomplex Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lztree implements LZ76 phrase parsing accelerated by an
// online suffix tree. The tree always lags the LZ parse by exactly one
// symbol: the dictionary it represents is the text seen so far minus
// the symbol currently being matched, since a phrase is only known to
// be complete (and thus eligible to extend the dictionary) once the
// symbol that breaks it arrives.
package lztree

import "github.com/hadi41/lzcomplex/suffixtree"

// Tree parses an incoming byte stream into LZ76 phrases, maintaining
// its own active point into the underlying suffix tree distinct from
// the tree's own construction active point.
type Tree struct {
	base *suffixtree.Tree

	activeNode     int
	activeEdgeChar byte
	activeLen      int

	hasPending bool
	pending    byte

	dictSize int
	wordLen  int
}

// New returns an empty LZ tree ready for Feed.
func New() *Tree {
	t := &Tree{base: suffixtree.New()}
	t.activeNode = t.base.Root()
	return t
}

// Reset clears the tree back to empty, retaining the underlying
// suffix tree's backing storage for reuse across a batch.
func (t *Tree) Reset() {
	t.base.Reset()
	t.activeNode = t.base.Root()
	t.activeEdgeChar = 0
	t.activeLen = 0
	t.hasPending = false
	t.pending = 0
	t.dictSize = 0
	t.wordLen = 0
}

// isMatch attempts to extend the current phrase by s from the LZ
// active point, walking down the base tree one edge at a time.
func (t *Tree) isMatch(s byte) bool {
	for {
		if t.activeLen == 0 {
			_, ok := t.base.FindChildEdge(t.activeNode, s)
			if !ok {
				return false
			}
			t.activeEdgeChar = s
			t.activeLen = 1
			return true
		}

		edge, ok := t.base.FindChildEdge(t.activeNode, t.activeEdgeChar)
		if !ok {
			// The active point outlived its edge; this cannot happen
			// for a correctly maintained base tree.
			t.activeNode = t.base.Root()
			t.activeLen = 0
			t.activeEdgeChar = 0
			return false
		}

		elen := t.base.EdgeLen(edge)
		if t.activeLen < elen {
			if t.base.EdgeByteAt(edge, t.activeLen) == s {
				t.activeLen++
				return true
			}
			return false
		}

		t.activeNode = t.base.EdgeDest(edge)
		t.activeLen = 0
		t.activeEdgeChar = 0
	}
}

// Feed processes the next input symbol and reports whether it
// completed a phrase (i.e. the dictionary grew by one entry).
func (t *Tree) Feed(s byte) bool {
	t.wordLen++

	// The base tree always trails the LZ parse by one symbol: every
	// Feed first appends the previous symbol, so s is matched against
	// the text that precedes it and never against itself.
	if t.hasPending {
		t.base.AddSymbol(t.pending)
	}
	t.pending = s
	t.hasPending = true

	if t.isMatch(s) {
		return false
	}

	t.dictSize++
	t.activeNode = t.base.Root()
	t.activeLen = 0
	t.activeEdgeChar = 0
	t.wordLen = 0
	return true
}

// Complexity reports the LZ76 phrase count of the symbols fed so far:
// the number of completed phrases, plus one more if an unfinished
// phrase remains in progress.
func (t *Tree) Complexity() int {
	c := t.dictSize
	if t.wordLen > 0 {
		c++
	}
	return c
}
