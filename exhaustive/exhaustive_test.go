// Copyright 2024 The lzcomplex Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exhaustive

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hadi41/lzcomplex/lzerr"
)

func TestEnumerateAllLengthThreeKnownValues(t *testing.T) {
	out := make([]int, 8)
	if err := EnumerateAll(3, out); err != nil {
		t.Fatalf("EnumerateAll(3) error: %v", err)
	}
	want := []int{2, 2, 3, 3, 3, 3, 2, 2}
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("EnumerateAll(3) mismatch (-want +got):\n%s", diff)
	}
}

func TestEnumerateAllRejectsBadLength(t *testing.T) {
	out := make([]int, 1)
	for _, l := range []int{0, -1, MaxEnumerateLength + 1} {
		if err := EnumerateAll(l, out); !errors.Is(err, lzerr.ErrBadLength) {
			t.Errorf("EnumerateAll(%d) err = %v, want ErrBadLength", l, err)
		}
	}
}

func TestEnumerateAllRejectsWrongOutputSize(t *testing.T) {
	out := make([]int, 4)
	if err := EnumerateAll(3, out); !errors.Is(err, lzerr.ErrLengthMismatch) {
		t.Errorf("EnumerateAll(3, len=4) err = %v, want ErrLengthMismatch", err)
	}
}

func TestDistributionLengthThreeKnownValue(t *testing.T) {
	got, err := Distribution(3, 5, 4)
	if err != nil {
		t.Fatalf("Distribution(3, 5, 4) error: %v", err)
	}
	want := []int{0, 0, 4, 4, 0}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Distribution(3, 5, 4) mismatch (-want +got):\n%s", diff)
	}
}

func TestDistributionMatchesEnumerateAll(t *testing.T) {
	const l = 6
	out := make([]int, 1<<l)
	if err := EnumerateAll(l, out); err != nil {
		t.Fatalf("EnumerateAll error: %v", err)
	}
	const cmax = 10
	want := make([]int, cmax)
	for _, c := range out {
		if c >= cmax-1 {
			want[cmax-1]++
		} else {
			want[c]++
		}
	}
	for _, workers := range []int{1, 2, 3, 4, 8} {
		got, err := Distribution(l, cmax, workers)
		if err != nil {
			t.Fatalf("Distribution(workers=%d) error: %v", workers, err)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Distribution(workers=%d) mismatch vs EnumerateAll-derived histogram (-want +got):\n%s", workers, diff)
		}
	}
}

func TestDistributionSumsToFullSpace(t *testing.T) {
	for _, l := range []int{1, 4, 8} {
		got, err := Distribution(l, 6, 4)
		if err != nil {
			t.Fatalf("Distribution(%d) error: %v", l, err)
		}
		sum := 0
		for _, v := range got {
			sum += v
		}
		want := 1 << uint(l)
		if sum != want {
			t.Errorf("Distribution(%d): sum = %d, want %d", l, sum, want)
		}
	}
}

func TestDistributionZeroBinEmptyWhenLAtLeastOne(t *testing.T) {
	got, err := Distribution(5, 8, 2)
	if err != nil {
		t.Fatalf("Distribution error: %v", err)
	}
	if got[0] != 0 {
		t.Errorf("Distribution(5, ...)[0] = %d, want 0 (every non-empty string has >=1 phrase)", got[0])
	}
}

func TestDistributionRejectsBadLength(t *testing.T) {
	for _, l := range []int{0, -1, MaxDistributionLength + 1} {
		if _, err := Distribution(l, 4, 2); !errors.Is(err, lzerr.ErrBadLength) {
			t.Errorf("Distribution(%d, ...) err = %v, want ErrBadLength", l, err)
		}
	}
}

func TestDistributionRejectsBadCmax(t *testing.T) {
	if _, err := Distribution(4, 0, 2); !errors.Is(err, lzerr.ErrLengthMismatch) {
		t.Errorf("Distribution(4, 0, 2) err = %v, want ErrLengthMismatch", err)
	}
}

func TestSplitDepthClampedToL(t *testing.T) {
	if d := splitDepth(2, 64); d != 2 {
		t.Errorf("splitDepth(2, 64) = %d, want 2 (clamped to L)", d)
	}
	if d := splitDepth(5, 1); d != 0 {
		t.Errorf("splitDepth(5, 1) = %d, want 0 (serial)", d)
	}
	if d := splitDepth(5, 4); d != 2 {
		t.Errorf("splitDepth(5, 4) = %d, want 2 (ceil(log2(4)))", d)
	}
	if d := splitDepth(5, 3); d != 2 {
		t.Errorf("splitDepth(5, 3) = %d, want 2 (ceil(log2(3)))", d)
	}
}
