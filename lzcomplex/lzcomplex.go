// Copyright 2024 The lzcomplex Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lzcomplex is the stable public contract surface for the
// library (spec §6): naive and tree-accelerated LZ76/LZ78 phrase
// counting, block entropy, their symmetric and conditional variants,
// batch drivers over all of the above, and the exhaustive {0,1}^L
// distribution enumerator. Every entry point here is a thin,
// allocation-light wrapper around the lower packages (lzkernel,
// lztree, batch, exhaustive); this package owns none of the
// algorithms, only their naming and error-sentinel conventions.
package lzcomplex

import (
	"github.com/hadi41/lzcomplex/batch"
	"github.com/hadi41/lzcomplex/exhaustive"
	"github.com/hadi41/lzcomplex/lzerr"
	"github.com/hadi41/lzcomplex/lzkernel"
	"github.com/hadi41/lzcomplex/lztree"
)

// FloatSentinel and IntSentinel are returned by the batch entry points
// in place of a per-sequence failure (spec §6, §7); re-exported here
// so a caller need not import package batch directly.
const (
	FloatSentinel = batch.FloatSentinel
	IntSentinel   = batch.IntSentinel
)

// LZ76 returns the LZ76 complexity of seq via brute-force substring
// search, scaled by log2(len(seq)) per the source convention (spec
// §4.3, §9). An empty sequence has complexity 0.
func LZ76(seq []byte) float64 { return lzkernel.LZ76Naive(seq) }

// LZ76Tree returns the raw LZ76 phrase count of seq, computed via the
// Ukkonen suffix-tree-accelerated parser (spec §4.1, §4.2). Unlike
// LZ76, this is the unscaled count: LZ76Tree(seq) == LZ76(seq) /
// log2(len(seq)) for len(seq) > 1 (spec §8).
//
// A StateCorruption-class bug in the suffix tree (spec §7) is an
// assertion-class panic deep inside lztree/suffixtree; it is recovered
// here at the public-API boundary exactly like flate.NewReader/
// bzip2.NewReader recover a corrupt-stream panic, so a library bug
// surfaces as a returned error rather than crashing the caller.
func LZ76Tree(seq []byte) (count int, err error) {
	defer lzerr.Recover(&err)
	t := lztree.New()
	for _, b := range seq {
		t.Feed(b)
	}
	return t.Complexity(), nil
}

// LZ78 returns the LZ78 phrase count of seq using the prefix-search
// dictionary variant (spec §4.3, §9): intentionally not textbook LZ78,
// preserved for bit-exact parity with the source.
func LZ78(seq []byte) int { return lzkernel.LZ78Naive(seq) }

// BlockEntropy returns the Shannon entropy, in bits, of the
// distribution of overlapping length-dimension windows in seq.
func BlockEntropy(seq []byte, dimension int) (float64, error) {
	return lzkernel.BlockEntropy(seq, dimension)
}

// SymmetricLZ76 returns the mean of LZ76 over seq and its reversal.
func SymmetricLZ76(seq []byte) float64 { return lzkernel.SymmetricLZ76(seq) }

// SymmetricLZ78 returns the mean of LZ78 over seq and its reversal.
func SymmetricLZ78(seq []byte) float64 { return lzkernel.SymmetricLZ78(seq) }

// SymmetricBlockEntropy returns the mean of BlockEntropy over seq and
// its reversal.
func SymmetricBlockEntropy(seq []byte, dimension int) (float64, error) {
	return lzkernel.SymmetricBlockEntropy(seq, dimension)
}

// CondLZ76 returns the conditional complexity C(Y|X) = LZ76(X++Y) -
// LZ76(X). Either operand empty returns 0 (spec §4.3, §9).
func CondLZ76(x, y []byte) float64 { return lzkernel.CondLZ76(x, y) }

// CondLZ78 returns the conditional complexity C(Y|X) = LZ78(X++Y) -
// LZ78(X). Either operand empty returns 0 (spec §4.3, §9).
func CondLZ78(x, y []byte) int { return lzkernel.CondLZ78(x, y) }

// BatchLZ76 applies LZ76 over seqs using up to workers goroutines,
// writing one output per input in input order. A per-sequence failure
// (there are none in the naive LZ76 kernel today, but the contract is
// shared with future fallible kernels) writes FloatSentinel to that
// slot instead of aborting the batch.
func BatchLZ76(seqs [][]byte, workers int) ([]float64, error) {
	return batch.ApplyFloat(toBatchSeqs(seqs), workers, func(seq batch.Sequence) (float64, error) {
		return lzkernel.LZ76Naive(seq), nil
	})
}

// BatchLZ78 is the BatchLZ76 analogue for LZ78.
func BatchLZ78(seqs [][]byte, workers int) ([]int, error) {
	return batch.ApplyInt(toBatchSeqs(seqs), workers, func(seq batch.Sequence) (int, error) {
		return lzkernel.LZ78Naive(seq), nil
	})
}

// BatchBlockEntropy is the BatchLZ76 analogue for BlockEntropy. A
// dimension that is zero or exceeds a given sequence's length is not
// an error (spec §4.3): that slot gets 0 like BlockEntropy itself
// would, not the sentinel.
func BatchBlockEntropy(seqs [][]byte, dimension, workers int) ([]float64, error) {
	return batch.ApplyFloat(toBatchSeqs(seqs), workers, func(seq batch.Sequence) (float64, error) {
		return lzkernel.BlockEntropy(seq, dimension)
	})
}

// BatchSymmetricLZ76 is the symmetric-variant analogue of BatchLZ76.
func BatchSymmetricLZ76(seqs [][]byte, workers int) ([]float64, error) {
	return batch.ApplyFloat(toBatchSeqs(seqs), workers, func(seq batch.Sequence) (float64, error) {
		return lzkernel.SymmetricLZ76(seq), nil
	})
}

// BatchSymmetricLZ78 is the symmetric-variant analogue of BatchLZ78.
func BatchSymmetricLZ78(seqs [][]byte, workers int) ([]float64, error) {
	return batch.ApplyFloat(toBatchSeqs(seqs), workers, func(seq batch.Sequence) (float64, error) {
		return float64(lzkernel.SymmetricLZ78(seq)), nil
	})
}

// BatchSymmetricBlockEntropy is the symmetric-variant analogue of
// BatchBlockEntropy.
func BatchSymmetricBlockEntropy(seqs [][]byte, dimension, workers int) ([]float64, error) {
	return batch.ApplyFloat(toBatchSeqs(seqs), workers, func(seq batch.Sequence) (float64, error) {
		return lzkernel.SymmetricBlockEntropy(seq, dimension)
	})
}

// BatchCondLZ76 applies CondLZ76 pairwise: xs[i] is paired with
// ys[i]. len(xs) must equal len(ys), mirroring the source's
// conditional_lz76_parallel, which takes x and y as two parallel
// arrays rather than pre-concatenated items.
func BatchCondLZ76(xs, ys [][]byte, workers int) ([]float64, error) {
	return batch.ApplyPairFloat(toBatchSeqs(xs), toBatchSeqs(ys), workers, func(x, y batch.Sequence) (float64, error) {
		return lzkernel.CondLZ76(x, y), nil
	})
}

// BatchCondLZ78 is the BatchCondLZ76 analogue for CondLZ78.
func BatchCondLZ78(xs, ys [][]byte, workers int) ([]int, error) {
	return batch.ApplyPairInt(toBatchSeqs(xs), toBatchSeqs(ys), workers, func(x, y batch.Sequence) (int, error) {
		return lzkernel.CondLZ78(x, y), nil
	})
}

// BatchLZ76Tree processes seqs through the suffix-tree-accelerated
// parser, reusing one lztree.Tree per worker across the sequences it
// is assigned (spec §6's "given a reusable state, process N sequences
// to N integer phrase counts").
func BatchLZ76Tree(seqs [][]byte, workers int) []int {
	return batch.BatchLZ76Tree(toBatchSeqs(seqs), workers)
}

// EnumerateAll fills out[i] with the LZ76 phrase count of the
// length-L binary string whose bits equal i (MSB first). len(out)
// must equal 1<<L.
func EnumerateAll(l int, out []int) error { return exhaustive.EnumerateAll(l, out) }

// Distribution returns the histogram of LZ76 phrase counts over
// {0,1}^L, with counts >= cmax-1 collapsed into the last bin.
func Distribution(l, cmax, workers int) ([]int, error) {
	return exhaustive.Distribution(l, cmax, workers)
}

func toBatchSeqs(seqs [][]byte) []batch.Sequence {
	out := make([]batch.Sequence, len(seqs))
	for i, s := range seqs {
		out[i] = batch.Sequence(s)
	}
	return out
}
