// Copyright 2024 The lzcomplex Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzcomplex

import (
	"math"
	"testing"

	"github.com/hadi41/lzcomplex/internal/testutil"
)

func approxEqual(a, b float64) bool { return math.Abs(a-b) < 1e-6 }

func TestLZ76KnownValue(t *testing.T) {
	got := LZ76([]byte("aababcabcd"))
	want := 4 * math.Log2(10)
	if !approxEqual(got, want) {
		t.Errorf("LZ76 = %v, want %v", got, want)
	}
}

func TestLZ76TreeMatchesNaiveRawCount(t *testing.T) {
	rnd := testutil.NewRand(7)
	for i := 0; i < 20; i++ {
		seq := rnd.Bytes(2 + rnd.Intn(96))
		naive := LZ76(seq)
		tree, err := LZ76Tree(seq)
		if err != nil {
			t.Fatalf("LZ76Tree error: %v", err)
		}
		want := naive / math.Log2(float64(len(seq)))
		if math.Abs(want-float64(tree)) > 1e-6 {
			t.Errorf("seq %d (len %d): LZ76Tree = %d, want %v (from LZ76/log2 n)", i, len(seq), tree, want)
		}
	}
}

func TestLZ78KnownValue(t *testing.T) {
	if got := LZ78([]byte("abababab")); got != 5 {
		t.Errorf("LZ78 = %d, want 5", got)
	}
}

func TestBlockEntropyKnownValue(t *testing.T) {
	got, err := BlockEntropy([]byte("abab"), 2)
	if err != nil {
		t.Fatalf("BlockEntropy error: %v", err)
	}
	if !approxEqual(got, 0.918296) {
		t.Errorf("BlockEntropy = %v, want ~0.918296", got)
	}
}

func TestCondLZ76KnownValue(t *testing.T) {
	got := CondLZ76([]byte("ab"), []byte("cd"))
	if !approxEqual(got, 6.0) {
		t.Errorf("CondLZ76 = %v, want 6", got)
	}
}

func TestBatchLZ76MatchesSerial(t *testing.T) {
	rnd := testutil.NewRand(11)
	seqs := make([][]byte, 30)
	for i := range seqs {
		seqs[i] = rnd.Bytes(1 + rnd.Intn(40))
	}
	out, err := BatchLZ76(seqs, 4)
	if err != nil {
		t.Fatalf("BatchLZ76 error: %v", err)
	}
	for i, seq := range seqs {
		want := LZ76(seq)
		if out[i] != want {
			t.Errorf("seq %d: BatchLZ76 = %v, want %v", i, out[i], want)
		}
	}
}

func TestBatchLZ76TreeMatchesSingle(t *testing.T) {
	rnd := testutil.NewRand(13)
	seqs := make([][]byte, 15)
	for i := range seqs {
		seqs[i] = rnd.Bytes(1 + rnd.Intn(40))
	}
	out := BatchLZ76Tree(seqs, 3)
	for i, seq := range seqs {
		want, err := LZ76Tree(seq)
		if err != nil {
			t.Fatalf("LZ76Tree error: %v", err)
		}
		if out[i] != want {
			t.Errorf("seq %d: BatchLZ76Tree = %d, want %d", i, out[i], want)
		}
	}
}

func TestBatchCondLZ76PairwiseAndLengthMismatch(t *testing.T) {
	xs := [][]byte{[]byte("ab"), []byte("xy")}
	ys := [][]byte{[]byte("cd"), []byte("zz")}
	out, err := BatchCondLZ76(xs, ys, 2)
	if err != nil {
		t.Fatalf("BatchCondLZ76 error: %v", err)
	}
	for i := range xs {
		want := CondLZ76(xs[i], ys[i])
		if out[i] != want {
			t.Errorf("pair %d: BatchCondLZ76 = %v, want %v", i, out[i], want)
		}
	}

	if _, err := BatchCondLZ76(xs, ys[:1], 2); err == nil {
		t.Error("BatchCondLZ76 with mismatched lengths: want error, got nil")
	}
}

func TestEnumerateAllAndDistributionWiredThroughRoot(t *testing.T) {
	out := make([]int, 8)
	if err := EnumerateAll(3, out); err != nil {
		t.Fatalf("EnumerateAll error: %v", err)
	}
	hist, err := Distribution(3, 5, 4)
	if err != nil {
		t.Fatalf("Distribution error: %v", err)
	}
	sum := 0
	for _, v := range hist {
		sum += v
	}
	if sum != 8 {
		t.Errorf("Distribution histogram sums to %d, want 8", sum)
	}
}
