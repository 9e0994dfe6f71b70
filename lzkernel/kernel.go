// Copyright 2024 The lzcomplex Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lzkernel implements the naive, single-sequence complexity
// kernels: LZ76 and LZ78 phrase counting by brute-force substring
// search, block entropy over fixed-length windows, their symmetric
// (forward/reversed mean) variants, and the conditional LZ measures.
// These are the reference kernels the suffix-tree-accelerated parser
// in package lztree is checked against; batch callers needing speed
// over many sequences should prefer lztree or package batch instead.
package lzkernel

import "math"

// LZ76Naive returns the LZ76 phrase-count complexity of seq, scaled by
// log2 of its length, using brute-force substring search. An empty
// sequence has complexity 0.
func LZ76Naive(seq []byte) float64 {
	n := len(seq)
	if n == 0 {
		return 0
	}
	return float64(lz76PhraseCount(seq)) * math.Log2(float64(n))
}

// lz76PhraseCount counts LZ76 phrases in seq. At each position the
// dictionary is everything processed so far except the symbol just
// appended to the in-progress phrase; this matches the suffix-tree
// parser's one-symbol delay exactly since completed phrases partition
// the text with no gaps.
func lz76PhraseCount(seq []byte) int {
	n := len(seq)
	dictLen := 0
	wordStart := 0
	count := 0
	for pos := 0; pos < n; pos++ {
		word := seq[wordStart : pos+1]
		if !containsAsDictPrefix(seq[:dictLen], word) {
			dictLen += len(word)
			wordStart = pos + 1
			count++
		}
	}
	if wordStart < n {
		count++
	}
	return count
}

// containsAsDictPrefix reports whether word occurs in dict followed by
// the already-committed prefix of word itself (word[:len(word)-1]),
// i.e. whether word is a substring of the text processed through the
// symbol just before the one that completed it.
func containsAsDictPrefix(dict, word []byte) bool {
	if len(word) <= 1 {
		return containsSubstring(dict, word)
	}
	full := make([]byte, 0, len(dict)+len(word)-1)
	full = append(full, dict...)
	full = append(full, word[:len(word)-1]...)
	return containsSubstring(full, word)
}

func containsSubstring(haystack, needle []byte) bool {
	if len(needle) == 0 {
		return true
	}
	if len(needle) > len(haystack) {
		return false
	}
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if equalAt(haystack, i, needle) {
			return true
		}
	}
	return false
}

func equalAt(haystack []byte, offset int, needle []byte) bool {
	for j, b := range needle {
		if haystack[offset+j] != b {
			return false
		}
	}
	return true
}

// LZ78Naive returns the LZ78 phrase count of seq using the
// prefix-search dictionary variant: a phrase is extendable so long as
// it is a prefix of some existing dictionary entry, not merely the
// longest existing match. An empty sequence has complexity 0.
func LZ78Naive(seq []byte) int {
	n := len(seq)
	if n == 0 {
		return 0
	}

	var dict [][]byte
	wordStart := 0
	count := 0
	for pos := 0; pos < n; pos++ {
		word := seq[wordStart : pos+1]
		if !isPrefixOfAny(dict, word) {
			dict = append(dict, word)
			wordStart = pos + 1
			count++
		}
	}
	if wordStart < n {
		count++
	}
	return count
}

func isPrefixOfAny(dict [][]byte, word []byte) bool {
	for _, d := range dict {
		if len(d) >= len(word) && equalAt(d, 0, word) {
			return true
		}
	}
	return false
}

// BlockEntropy returns the Shannon entropy, in bits, of the
// distribution of overlapping windows of length dimension in seq. An
// empty sequence, and a dimension that is zero or exceeds the sequence
// length, both have entropy 0 (spec §4.3, matching the original's
// lz_core.c block_entropy: these are not treated as errors).
func BlockEntropy(seq []byte, dimension int) (float64, error) {
	n := len(seq)
	if n == 0 || dimension <= 0 || dimension > n {
		return 0, nil
	}

	counts := make(map[string]int)
	numWindows := n - dimension + 1
	for i := 0; i < numWindows; i++ {
		counts[string(seq[i:i+dimension])]++
	}

	norm := float64(numWindows)
	var entropy float64
	for _, c := range counts {
		p := float64(c) / norm
		entropy -= p * math.Log2(p)
	}
	return entropy, nil
}

// reverse returns a newly allocated reversal of seq.
func reverse(seq []byte) []byte {
	out := make([]byte, len(seq))
	for i, b := range seq {
		out[len(seq)-1-i] = b
	}
	return out
}

// SymmetricLZ76 returns the mean of LZ76Naive over seq and its
// reversal.
func SymmetricLZ76(seq []byte) float64 {
	if len(seq) == 0 {
		return 0
	}
	return (LZ76Naive(seq) + LZ76Naive(reverse(seq))) / 2
}

// SymmetricLZ78 returns the mean of LZ78Naive over seq and its
// reversal.
func SymmetricLZ78(seq []byte) float64 {
	if len(seq) == 0 {
		return 0
	}
	return float64(LZ78Naive(seq)+LZ78Naive(reverse(seq))) / 2
}

// SymmetricBlockEntropy returns the mean of BlockEntropy over seq and
// its reversal.
func SymmetricBlockEntropy(seq []byte, dimension int) (float64, error) {
	if len(seq) == 0 {
		return 0, nil
	}
	e1, err := BlockEntropy(seq, dimension)
	if err != nil {
		return 0, err
	}
	e2, err := BlockEntropy(reverse(seq), dimension)
	if err != nil {
		return 0, err
	}
	return (e1 + e2) / 2, nil
}

func concat(x, y []byte) []byte {
	out := make([]byte, 0, len(x)+len(y))
	out = append(out, x...)
	out = append(out, y...)
	return out
}

// CondLZ76 returns the conditional LZ76 complexity C(Y|X), defined as
// LZ76Naive(X ++ Y) - LZ76Naive(X). Either sequence being empty
// returns 0, matching the original implementation's convention rather
// than treating it as an error.
func CondLZ76(x, y []byte) float64 {
	if len(x) == 0 || len(y) == 0 {
		return 0
	}
	return LZ76Naive(concat(x, y)) - LZ76Naive(x)
}

// CondLZ78 returns the conditional LZ78 complexity C(Y|X), defined as
// LZ78Naive(X ++ Y) - LZ78Naive(X). Either sequence being empty
// returns 0, matching the original implementation's convention rather
// than treating it as an error.
func CondLZ78(x, y []byte) int {
	if len(x) == 0 || len(y) == 0 {
		return 0
	}
	return LZ78Naive(concat(x, y)) - LZ78Naive(x)
}
