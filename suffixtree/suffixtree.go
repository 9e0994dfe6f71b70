// Copyright 2024 The lzcomplex Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package suffixtree implements Ukkonen's online suffix tree
// construction over a byte-valued text, plus the `Contains` substring
// query and the edge-walking accessors the tree-based LZ parser uses.
//
// Nodes and edges live in an arena (two growable slices) rather than
// behind pointers: suffix links form cycles (the root links to
// itself), and an arena keyed by index sidesteps Go's lack of
// ownership tracking for cyclic graphs. Edges store [start, end]
// intervals into the shared text buffer instead of copying labels;
// end == openEnd marks a leaf edge whose label implicitly extends to
// the current end of text and must always be resolved against the
// live text length, never cached.
package suffixtree

import "github.com/hadi41/lzcomplex/lzerr"

// openEnd marks an edge whose label extends to the current end of
// text. It must be resolved against len(text)-1 at every read.
const openEnd = -1

// noLink marks a node whose suffix link has not been wired yet. Only
// the most recently created internal node in the current phase may be
// in this state; it is always wired before the phase ends.
const noLink = -1

type edge struct {
	start, end int // end == openEnd for a leaf edge
	dest       int // node index
}

type node struct {
	children map[byte]int // first edge byte -> edge index
	link     int          // suffix link node index, or noLink
}

// Tree is a reusable Ukkonen suffix tree over a byte sequence.
type Tree struct {
	text  []byte
	nodes []node
	edges []edge
	root  int

	activeNode int
	activeEdge int // text index of active edge's first byte; valid iff activeLen > 0
	activeLen  int
	remainder  int
}

// New returns an empty suffix tree ready for AddSymbol.
func New() *Tree {
	t := new(Tree)
	t.Reset()
	return t
}

// Reset clears the tree back to empty, retaining the capacity of its
// backing arrays so a caller processing a batch of sequences can reuse
// one Tree without per-sequence allocation.
func (t *Tree) Reset() {
	*t = Tree{
		text:  t.text[:0],
		nodes: t.nodes[:0],
		edges: t.edges[:0],
	}
	t.root = t.newNode()
	t.nodes[t.root].link = t.root
	t.activeNode = t.root
}

func (t *Tree) newNode() int {
	t.nodes = append(t.nodes, node{link: noLink})
	return len(t.nodes) - 1
}

func (t *Tree) newEdge(start, end, dest int) int {
	t.edges = append(t.edges, edge{start: start, end: end, dest: dest})
	return len(t.edges) - 1
}

func (t *Tree) findChild(nodeIdx int, ch byte) (int, bool) {
	e, ok := t.nodes[nodeIdx].children[ch]
	return e, ok
}

func (t *Tree) setChild(nodeIdx int, ch byte, edgeIdx int) {
	n := &t.nodes[nodeIdx]
	if n.children == nil {
		n.children = make(map[byte]int, 1)
	}
	n.children[ch] = edgeIdx
}

// edgeLength returns the current length of e's label, resolving
// openEnd against the live text length.
func (t *Tree) edgeLength(e edge) int {
	end := e.end
	if end == openEnd {
		end = len(t.text) - 1
	}
	if e.start > end {
		return 0
	}
	return end - e.start + 1
}

// TextLen reports the number of symbols appended so far.
func (t *Tree) TextLen() int { return len(t.text) }

// TextAt returns the symbol at index i of the text processed so far.
// It panics with a StateCorruption-class error if i is out of range;
// callers in this module never pass an out-of-range index.
func (t *Tree) TextAt(i int) byte {
	if i < 0 || i >= len(t.text) {
		panic(lzerr.ErrCorruptState)
	}
	return t.text[i]
}

// AddSymbol appends s to the text and extends the tree so that it
// represents every suffix of the new text, following Ukkonen's
// algorithm: one phase per symbol, looping over the outstanding
// `remainder` suffixes still owed from prior phases.
func (t *Tree) AddSymbol(s byte) {
	t.text = append(t.text, s)
	textLen := len(t.text)
	t.remainder++
	lastNewInternal := noLink

phase:
	for t.remainder > 0 {
		var testChar byte
		if t.activeLen == 0 {
			t.activeEdge = textLen - 1
			testChar = s
		} else {
			testChar = t.text[t.activeEdge]
		}

		edgeIdx, ok := t.findChild(t.activeNode, testChar)
		switch {
		case !ok:
			// Rule 2: no outgoing edge for this symbol; start a new leaf.
			leaf := t.newNode()
			e := t.newEdge(textLen-1, openEnd, leaf)
			t.setChild(t.activeNode, s, e)
			if lastNewInternal != noLink {
				t.nodes[lastNewInternal].link = t.activeNode
				lastNewInternal = noLink
			}

		default:
			elen := t.edgeLength(t.edges[edgeIdx])
			if t.activeLen >= elen {
				// Walk down past this edge entirely; re-evaluate from
				// the new active node without consuming remainder.
				t.activeNode = t.edges[edgeIdx].dest
				t.activeLen -= elen
				t.activeEdge += elen
				continue
			}

			if t.text[t.edges[edgeIdx].start+t.activeLen] == s {
				// Rule 3: the symbol is already implicit on this edge.
				// Every shorter suffix is therefore already present too.
				t.activeLen++
				if lastNewInternal != noLink {
					t.nodes[lastNewInternal].link = t.activeNode
					lastNewInternal = noLink
				}
				break phase
			}

			// Mismatch: split the edge at the active point.
			u := t.newNode()
			old := t.edges[edgeIdx]
			t.edges[edgeIdx] = edge{start: old.start, end: old.start + t.activeLen - 1, dest: u}

			leaf := t.newNode()
			leafEdge := t.newEdge(textLen-1, openEnd, leaf)
			t.setChild(u, s, leafEdge)

			contChar := t.text[old.start+t.activeLen]
			contEdge := t.newEdge(old.start+t.activeLen, old.end, old.dest)
			t.setChild(u, contChar, contEdge)

			if lastNewInternal != noLink {
				t.nodes[lastNewInternal].link = u
			}
			lastNewInternal = u
		}

		t.remainder--

		if t.activeNode == t.root && t.activeLen > 0 {
			t.activeLen--
			t.activeEdge = textLen - t.remainder
		} else if t.activeNode != t.root {
			link := t.nodes[t.activeNode].link
			if link == noLink {
				panic(lzerr.ErrCorruptState)
			}
			t.activeNode = link
		}
	}
}

// Root returns the index of the root node, stable across the lifetime
// of a Tree (New and Reset both reuse index 0 for it).
func (t *Tree) Root() int { return t.root }

// FindChildEdge reports the edge leading out of nodeIdx whose label
// starts with ch, for callers that need to walk the tree directly
// (the LZ parser's own active point, distinct from the tree's own).
func (t *Tree) FindChildEdge(nodeIdx int, ch byte) (edgeIdx int, ok bool) {
	return t.findChild(nodeIdx, ch)
}

// EdgeLen reports the current label length of the edge at edgeIdx.
func (t *Tree) EdgeLen(edgeIdx int) int {
	return t.edgeLength(t.edges[edgeIdx])
}

// EdgeByteAt returns the byte at offset into the label of the edge at
// edgeIdx. The caller must ensure 0 <= offset < EdgeLen(edgeIdx).
func (t *Tree) EdgeByteAt(edgeIdx, offset int) byte {
	return t.text[t.edges[edgeIdx].start+offset]
}

// EdgeDest returns the node the edge at edgeIdx leads to.
func (t *Tree) EdgeDest(edgeIdx int) int {
	return t.edges[edgeIdx].dest
}

// Contains reports whether pattern occurs as a contiguous substring of
// the text built so far. An empty pattern is trivially contained.
func (t *Tree) Contains(pattern []byte) bool {
	if len(pattern) == 0 {
		return true
	}

	cur := t.root
	i := 0
	textLen := len(t.text)
	for i < len(pattern) {
		edgeIdx, ok := t.findChild(cur, pattern[i])
		if !ok {
			return false
		}
		e := t.edges[edgeIdx]
		end := e.end
		if end == openEnd {
			end = textLen - 1
		}
		elen := end - e.start + 1
		for k := 0; k < elen; k++ {
			if i >= len(pattern) {
				return true
			}
			if t.text[e.start+k] != pattern[i] {
				return false
			}
			i++
		}
		cur = e.dest
	}
	return true
}
