// Copyright 2024 The lzcomplex Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package batch implements the data-parallel driver described in
// spec §4.4: a bounded-concurrency map over a slice of sequences that
// writes each result to its matching output index. BatchLZ76Tree gives
// each worker one suffix-tree scratch reused across the sequences that
// worker handles; the Apply* functions keep no per-worker scratch, and
// each kernel call allocates its own buffers (such as a reversal). A
// per-sequence failure never aborts the batch; it writes the sentinel
// value to that slot instead (spec §7).
//
// The teacher package has no concurrency of its own to imitate
// (dsnet/compress is single-threaded throughout its codec packages),
// so this package follows the pack-wide idiom for bounded fan-out:
// golang.org/x/sync/errgroup with SetLimit, which gives first-error
// propagation and a join without hand-rolled WaitGroup/channel
// plumbing.
package batch

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/hadi41/lzcomplex/lzerr"
	"github.com/hadi41/lzcomplex/lztree"
)

// FloatSentinel is written to an output slot when a per-sequence
// kernel fails (spec §6, §7).
const FloatSentinel = -1.0

// IntSentinel is the integer analogue of FloatSentinel, used for
// phrase-count outputs.
const IntSentinel = -1

// Sequence is a read-only view over one input buffer in a batch.
// Sequences are never mutated by a kernel.
type Sequence []byte

// FloatKernel computes one scalar measure of a single sequence.
type FloatKernel func(seq Sequence) (float64, error)

// IntKernel computes one integer measure of a single sequence.
type IntKernel func(seq Sequence) (int, error)

// workerCount clamps requested to at least 1; the batch driver never
// spawns zero workers, matching the original's "at least 1 thread"
// fallback (spec §4.5's clamp, reused here for the batch driver).
func workerCount(requested int) int {
	if requested < 1 {
		return 1
	}
	return requested
}

// ApplyFloat runs kernel over every sequence in seqs using up to
// workers concurrent goroutines and returns one result per input, in
// input order regardless of worker count (spec §4.4's determinism
// requirement). A kernel error for one sequence writes FloatSentinel
// to that slot only; it does not cancel sibling work.
func ApplyFloat(seqs []Sequence, workers int, kernel FloatKernel) ([]float64, error) {
	out := make([]float64, len(seqs))
	if len(seqs) == 0 {
		return out, nil
	}

	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(workerCount(workers))
	for i := range seqs {
		i := i
		g.Go(func() error {
			v, err := kernel(seqs[i])
			if err != nil {
				out[i] = FloatSentinel
				return nil
			}
			out[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, lzerr.New(lzerr.ResourceExhausted, err.Error())
	}
	return out, nil
}

// ApplyInt is the integer analogue of ApplyFloat, used for LZ78 and
// suffix-tree phrase counts.
func ApplyInt(seqs []Sequence, workers int, kernel IntKernel) ([]int, error) {
	out := make([]int, len(seqs))
	if len(seqs) == 0 {
		return out, nil
	}

	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(workerCount(workers))
	for i := range seqs {
		i := i
		g.Go(func() error {
			v, err := kernel(seqs[i])
			if err != nil {
				out[i] = IntSentinel
				return nil
			}
			out[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, lzerr.New(lzerr.ResourceExhausted, err.Error())
	}
	return out, nil
}

// PairFloatKernel computes one scalar measure of a pair of sequences,
// used for the conditional measures (spec §4.3's C(Y|X) = f(X++Y) -
// f(X)), which the original's conditional_lz76_parallel /
// conditional_lz78_parallel take as two parallel arrays rather than
// one pre-concatenated sequence per item.
type PairFloatKernel func(x, y Sequence) (float64, error)

// PairIntKernel is the integer analogue of PairFloatKernel.
type PairIntKernel func(x, y Sequence) (int, error)

// ApplyPairFloat is ApplyFloat generalized to a kernel of two
// sequences, pairing xs[i] with ys[i]; len(xs) must equal len(ys).
func ApplyPairFloat(xs, ys []Sequence, workers int, kernel PairFloatKernel) ([]float64, error) {
	if len(xs) != len(ys) {
		return nil, lzerr.ErrLengthMismatch
	}
	out := make([]float64, len(xs))
	if len(xs) == 0 {
		return out, nil
	}

	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(workerCount(workers))
	for i := range xs {
		i := i
		g.Go(func() error {
			v, err := kernel(xs[i], ys[i])
			if err != nil {
				out[i] = FloatSentinel
				return nil
			}
			out[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, lzerr.New(lzerr.ResourceExhausted, err.Error())
	}
	return out, nil
}

// ApplyPairInt is the integer analogue of ApplyPairFloat.
func ApplyPairInt(xs, ys []Sequence, workers int, kernel PairIntKernel) ([]int, error) {
	if len(xs) != len(ys) {
		return nil, lzerr.ErrLengthMismatch
	}
	out := make([]int, len(xs))
	if len(xs) == 0 {
		return out, nil
	}

	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(workerCount(workers))
	for i := range xs {
		i := i
		g.Go(func() error {
			v, err := kernel(xs[i], ys[i])
			if err != nil {
				out[i] = IntSentinel
				return nil
			}
			out[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, lzerr.New(lzerr.ResourceExhausted, err.Error())
	}
	return out, nil
}

// treeScratch is the per-worker reusable state for BatchLZ76Tree: one
// lztree.Tree, reset between sequences rather than reallocated, as
// spec §6 requires for the "reusable state" suffix-tree/LZ-tree batch
// entry point and as the original's lz_suffix.c batch helper does by
// resetting one LZSuffixTreeCState across a run of strings.
type treeScratch struct {
	tree *lztree.Tree
}

// BatchLZ76Tree processes seqs through the suffix-tree-accelerated LZ76
// parser (package lztree), returning one raw phrase count per sequence.
// Each worker owns one reusable lztree.Tree across every sequence it is
// assigned, resetting it between sequences instead of allocating a
// fresh tree per call.
func BatchLZ76Tree(seqs []Sequence, workers int) []int {
	out := make([]int, len(seqs))
	if len(seqs) == 0 {
		return out
	}

	n := workerCount(workers)
	if n > len(seqs) {
		n = len(seqs)
	}

	jobs := make(chan int, len(seqs))
	for i := range seqs {
		jobs <- i
	}
	close(jobs)

	g, _ := errgroup.WithContext(context.Background())
	for w := 0; w < n; w++ {
		g.Go(func() error {
			s := &treeScratch{tree: lztree.New()}
			for i := range jobs {
				out[i] = runLZ76Tree(s, seqs[i])
			}
			return nil
		})
	}
	_ = g.Wait() // every worker's loop body always returns nil; per-sequence failures are sentineled below instead.
	return out
}

// runLZ76Tree resets s's scratch tree and feeds it seq, recovering a
// StateCorruption-class panic (spec §7) at this per-sequence boundary
// rather than letting it escape the worker goroutine: a broken
// sequence writes IntSentinel to its own slot and the batch continues,
// matching spec §7's "per-sequence failures inside a batch are
// recorded as sentinels... and do not cancel other items."
//
// lzerr.Recover must be the direct target of a defer statement (see
// its doc comment), so it is deferred on its own rather than from
// inside a wrapping closure; a second defer inspects the error it
// fills in and translates it to the sentinel return value.
func runLZ76Tree(s *treeScratch, seq Sequence) (count int) {
	var err error
	defer func() {
		if err != nil {
			count = IntSentinel
		}
	}()
	defer lzerr.Recover(&err)

	s.tree.Reset()
	for _, b := range seq {
		s.tree.Feed(b)
	}
	return s.tree.Complexity()
}
