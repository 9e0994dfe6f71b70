// Copyright 2024 The lzcomplex Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package exhaustive enumerates the LZ76 phrase-count distribution
// over the full binary-alphabet space {0,1}^L (spec §4.5). It walks
// the implicit binary tree of depth L depth-first, carrying an
// incremental LZ76 parser state that is deep-copied at every branch,
// and parallelizes by pre-computing the state for every length-d
// prefix and handing the 2^d sub-trees of depth L-d to workers, each
// with a private histogram reduced into the caller's output only after
// every worker has joined.
//
// Grounded on lz_exhaustive.c's generate_recursive /
// generate_recursive_for_distribution_task: both share one DFS shape
// here (walk), parameterized by a per-leaf sink, rather than
// duplicating the recursion for EnumerateAll and Distribution
// separately, exactly as the original shares advance_lz_state_in_place
// between its two public entry points.
package exhaustive

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/hadi41/lzcomplex/lzerr"
)

// MaxEnumerateLength bounds EnumerateAll: above this, the 2^L output
// array becomes impractically large to allocate (spec §4.5's "practical
// upper bound ≈ 24").
const MaxEnumerateLength = 24

// MaxDistributionLength bounds Distribution, which is compute-bound
// rather than memory-bound (spec §4.5's "≈ 30").
const MaxDistributionLength = 30

// state is the incremental LZ76 parser carried along one root-to-leaf
// path of the enumeration. It mirrors lztree/lzkernel's phrase rule
// (current extends so long as it occurs in parsed ++ current[:len-1])
// but is deliberately copy-by-value cheap: parsed and current are
// reused byte slices rather than a suffix tree, since L is bounded and
// the per-branch copy cost dominates at these sizes.
type state struct {
	parsed   []byte
	current  []byte
	dictSize int
}

// clone deep-copies s so the two branches taken at a node never alias
// each other's buffers; the caller recovers the memory when its
// recursion frame returns.
func (s state) clone() state {
	out := state{
		parsed:   append([]byte(nil), s.parsed...),
		current:  append([]byte(nil), s.current...),
		dictSize: s.dictSize,
	}
	return out
}

// advance extends s by one symbol in place, applying the same phrase
// rule as lzkernel.lz76PhraseCount: current is searched for inside
// parsed followed by current's own already-committed prefix.
func (s *state) advance(sym byte) {
	s.current = append(s.current, sym)
	prefixLen := len(s.current) - 1
	haystack := make([]byte, 0, len(s.parsed)+prefixLen)
	haystack = append(haystack, s.parsed...)
	haystack = append(haystack, s.current[:prefixLen]...)

	if containsSubstring(haystack, s.current) {
		return
	}
	s.parsed = append(s.parsed, s.current...)
	s.dictSize++
	s.current = s.current[:0]
}

func containsSubstring(haystack, needle []byte) bool {
	if len(needle) == 0 {
		return true
	}
	if len(needle) > len(haystack) {
		return false
	}
	for i := 0; i+len(needle) <= len(haystack); i++ {
		match := true
		for j, b := range needle {
			if haystack[i+j] != b {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

// finalCount reports the LZ76 phrase count once the path has reached
// depth L: the completed dictionary plus one more if a phrase is still
// in progress (spec §4.3's "residual" rule).
func (s state) finalCount() int {
	c := s.dictSize
	if len(s.current) > 0 {
		c++
	}
	return c
}

// splitDepth picks how many leading bits to fix sequentially before
// dispatching independent sub-trees to workers: ⌈log2 workers⌉,
// clamped to [0, L]. Matches the original's "at least depth 1 once
// more than one thread is requested" loop in
// lz76_exhaustive_distribution, generalized to an exact ceil(log2).
func splitDepth(l, workers int) int {
	if workers <= 1 {
		return 0
	}
	d := 0
	tasks := 1
	for tasks < workers && d < l {
		tasks *= 2
		d++
	}
	return d
}

// prefixStates sequentially computes the LZ76 state after each of the
// 2^d binary prefixes of length d, in index order (prefix i's bits are
// i's bit pattern, MSB first), mirroring compute_state_for_prefix.
func prefixStates(d int) []state {
	n := 1 << d
	out := make([]state, n)
	for i := 0; i < n; i++ {
		s := state{}
		for bit := d - 1; bit >= 0; bit-- {
			var sym byte
			if i&(1<<bit) != 0 {
				sym = 1
			}
			s.advance(sym)
		}
		out[i] = s.clone()
	}
	return out
}

// walk performs the depth-first enumeration of the remaining depth
// symbols below s, invoking leaf at the end of every such path with the final
// phrase count and the path's integer index within this sub-tree
// (0-based, MSB-first over the symbols walked by this call).
func walk(s state, depth int, leaf func(localIndex int, count int)) {
	if depth == 0 {
		leaf(0, s.finalCount())
		return
	}
	for _, sym := range [2]byte{0, 1} {
		child := s.clone()
		child.advance(sym)
		walk(child, depth-1, func(localIndex int, count int) {
			leaf(localIndex|(int(sym)<<uint(depth-1)), count)
		})
	}
}

// EnumerateAll fills out[i] with the LZ76 phrase count of the length-L
// binary string whose bits equal i written in L binary digits, MSB
// first (spec §4.5). len(out) must equal 1<<L. L must be in
// [1, MaxEnumerateLength].
func EnumerateAll(l int, out []int) error {
	if l <= 0 || l > MaxEnumerateLength {
		return lzerr.ErrBadLength
	}
	if len(out) != 1<<uint(l) {
		return lzerr.ErrLengthMismatch
	}
	walk(state{}, l, func(index int, count int) {
		out[index] = count
	})
	return nil
}

// Distribution returns a histogram H of length cmax: H[c] is the
// number of length-L binary strings with LZ76 phrase count c, for c <
// cmax-1; strings with phrase count >= cmax-1 collapse into H[cmax-1]
// (spec §4.5). L must be in [1, MaxDistributionLength]; cmax must be
// positive. workers is clamped to at least 1; when it is 1 the
// enumeration runs serially with split depth 0, matching the
// original's fallback when compiled without OpenMP or given a single
// thread.
func Distribution(l, cmax, workers int) ([]int, error) {
	if l <= 0 || l > MaxDistributionLength {
		return nil, lzerr.ErrBadLength
	}
	if cmax <= 0 {
		return nil, lzerr.ErrLengthMismatch
	}
	if workers < 1 {
		workers = 1
	}

	d := splitDepth(l, workers)
	prefixes := prefixStates(d)
	remaining := l - d

	hist := make([]int, cmax)
	if workers == 1 || len(prefixes) == 1 {
		for _, p := range prefixes {
			walk(p, remaining, func(_ int, count int) {
				bucket(hist, cmax, count)
			})
		}
		return hist, nil
	}

	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(workers)
	private := make([][]int, len(prefixes))
	for i, p := range prefixes {
		i, p := i, p
		g.Go(func() error {
			local := make([]int, cmax)
			walk(p, remaining, func(_ int, count int) {
				bucket(local, cmax, count)
			})
			private[i] = local
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, lzerr.New(lzerr.ResourceExhausted, err.Error())
	}

	// Reduction happens strictly after the parallel region joins, so no
	// atomics are needed on the hot path (spec §5).
	for _, local := range private {
		for c, v := range local {
			hist[c] += v
		}
	}
	return hist, nil
}

func bucket(hist []int, cmax, count int) {
	if count >= cmax-1 {
		hist[cmax-1]++
		return
	}
	hist[count]++
}
