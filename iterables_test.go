// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xtr_test

import (
	"maps"
	"slices"
	"testing"

	"code.hybscloud.com/xtr"
	"github.com/google/go-cmp/cmp"
)

// =============================================================================
// Slice and Refs
// =============================================================================

func TestSliceSharesBacking(t *testing.T) {
	backing := []int{1, 2, 3}
	s := xtr.Slice[int](backing)
	e := xtr.EnumerateSized(s)

	backing[1] = 20
	want := []xtr.Pair[int, int]{{0, 1}, {1, 20}, {2, 3}}
	if diff := cmp.Diff(want, collect(e)); diff != "" {
		t.Fatalf("pairs (-want +got):\n%s", diff)
	}
}

// TestRefsUpdateInPlace verifies elements are yielded by pointer, not copied.
func TestRefsUpdateInPlace(t *testing.T) {
	xs := []int{1, 2, 3}
	for i, p := range xtr.EnumerateSized(xtr.Refs[int](xs)).All() {
		*p *= 10 * (i + 1)
	}
	if diff := cmp.Diff([]int{10, 40, 90}, xs); diff != "" {
		t.Fatalf("updated slice (-want +got):\n%s", diff)
	}
}

// =============================================================================
// Seq
// =============================================================================

func TestSeqEnumerate(t *testing.T) {
	s := xtr.Seq[string](slices.Values([]string{"a", "b", "c"}))

	want := []xtr.Pair[uint, string]{{0, "a"}, {1, "b"}, {2, "c"}}
	if diff := cmp.Diff(want, collect(xtr.Enumerate(s))); diff != "" {
		t.Fatalf("pairs (-want +got):\n%s", diff)
	}
	// slices.Values is re-iterable, so the Seq is too.
	if diff := cmp.Diff(want, collect(xtr.Enumerate(s))); diff != "" {
		t.Fatalf("second pass (-want +got):\n%s", diff)
	}
}

func TestSeqFromMapKeys(t *testing.T) {
	m := map[string]int{"x": 1, "y": 2, "z": 3}
	var keys []string
	var idx []uint
	for i, k := range xtr.Enumerate(xtr.Seq[string](maps.Keys(m))).All() {
		idx = append(idx, i)
		keys = append(keys, k)
	}
	slices.Sort(keys)
	if diff := cmp.Diff([]string{"x", "y", "z"}, keys); diff != "" {
		t.Fatalf("keys (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]uint{0, 1, 2}, idx); diff != "" {
		t.Fatalf("indices (-want +got):\n%s", diff)
	}
}

func TestSeqEmpty(t *testing.T) {
	s := xtr.Seq[int](func(func(int) bool) {})
	if got := len(collect(xtr.Enumerate(s))); got != 0 {
		t.Fatalf("pairs: got %d, want 0", got)
	}
}

// TestSeqStoppedOnBreak verifies the pulled sequence is stopped when the
// loop exits early, running its deferred cleanup.
func TestSeqStoppedOnBreak(t *testing.T) {
	cleaned := false
	produced := 0
	s := xtr.Seq[int](func(yield func(int) bool) {
		defer func() { cleaned = true }()
		for i := range 100 {
			produced++
			if !yield(i) {
				return
			}
		}
	})

	for i := range xtr.Enumerate(s).All() {
		if i == 2 {
			break
		}
	}
	if !cleaned {
		t.Fatal("sequence not stopped after break")
	}
	if produced > 4 {
		t.Fatalf("produced: got %d, want at most 4", produced)
	}
}

// TestSeqManualStop verifies Stop through the indexed iterator.
func TestSeqManualStop(t *testing.T) {
	cleaned := false
	s := xtr.Seq[int](func(yield func(int) bool) {
		defer func() { cleaned = true }()
		for i := 0; ; i++ {
			if !yield(i) {
				return
			}
		}
	})

	e := xtr.Enumerate(s)
	it := xtr.Begin(e)
	end := xtr.End(e)
	for range 3 {
		if it.Equal(end) {
			t.Fatal("infinite sequence ended")
		}
		it.Next()
	}
	if p := it.Value(); p.Index != 3 || p.Elem != 3 {
		t.Fatalf("Value: got %+v, want {3 3}", p)
	}
	it.Stop()
	if !cleaned {
		t.Fatal("sequence not stopped")
	}
}

// =============================================================================
// MultiArray
// =============================================================================

func TestMultiArrayLayout(t *testing.T) {
	m := xtr.NewMultiArray[int](2, 3, 4)

	if m.Rank() != 3 {
		t.Fatalf("Rank: got %d, want 3", m.Rank())
	}
	if m.Len() != 24 {
		t.Fatalf("Len: got %d, want 24", m.Len())
	}
	if diff := cmp.Diff([]int{2, 3, 4}, m.Dims()); diff != "" {
		t.Fatalf("Dims (-want +got):\n%s", diff)
	}

	for i := range 2 {
		for j := range 3 {
			for k := range 4 {
				*m.At(i, j, k) = i*100 + j*10 + k
			}
		}
	}

	// Row-major: the last coordinate varies fastest.
	for flat, v := range xtr.EnumerateSized(m).All() {
		ix := m.Coords(flat)
		if want := ix[0]*100 + ix[1]*10 + ix[2]; v != want {
			t.Fatalf("element %d at %v: got %d, want %d", flat, ix, v, want)
		}
	}
	if diff := cmp.Diff([]int{1, 2, 3}, m.Coords(23)); diff != "" {
		t.Fatalf("Coords(23) (-want +got):\n%s", diff)
	}
}

func TestMultiArrayDimsIsCopy(t *testing.T) {
	m := xtr.NewMultiArray[byte](2, 2)
	d := m.Dims()
	d[0] = 99
	if m.Dims()[0] != 2 {
		t.Fatal("Dims returned internal slice")
	}
}

func TestMultiArrayPanics(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"no dims", func() { xtr.NewMultiArray[int]() }},
		{"zero dim", func() { xtr.NewMultiArray[int](2, 0) }},
		{"rank mismatch", func() { xtr.NewMultiArray[int](2, 2).At(1) }},
		{"out of range", func() { xtr.NewMultiArray[int](2, 2).At(1, 2) }},
		{"negative", func() { xtr.NewMultiArray[int](2, 2).At(-1, 0) }},
		{"flat out of range", func() { xtr.NewMultiArray[int](2, 2).Coords(4) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if r := recover(); r == nil {
					t.Fatal("expected panic")
				}
			}()
			tt.fn()
		})
	}
}
