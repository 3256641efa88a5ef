package common

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func TestFromSlice(t *testing.T) {
	v, err := FromSlice([]float64{1, 2, 3})
	if err != nil {
		t.Fatal(err)
	}
	diff(t, NewVector(1, 2, 3), v)

	for _, coords := range [][]float64{nil, {1, 2}, {1, 2, 3, 4}} {
		if _, err := FromSlice(coords); err == nil {
			t.Errorf("FromSlice(%v) succeeded, want error", coords)
		}
	}
}

func TestDistance(t *testing.T) {
	if d := Distance(NewVector(0, 0, 0), NewVector(3, 4, 0)); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
	if d := Distance(NewVector(1, 1, 1), NewVector(1, 1, 1)); d != 0 {
		t.Errorf("got distance %v, want 0", d)
	}
}

func TestDirection(t *testing.T) {
	u, err := Direction(NewVector(0, 3, 4))
	if err != nil {
		t.Fatal(err)
	}
	diff(t, NewVector(0, 0.6, 0.8), u, cmpopts.EquateApprox(0, 1e-12))

	if _, err := Direction(Vector{}); !errors.Is(err, ErrZeroVector) {
		t.Errorf("got error %v, want %v", err, ErrZeroVector)
	}
}

func TestIsFinite(t *testing.T) {
	if !IsFinite(NewVector(1, -2, 3)) {
		t.Error("finite vector reported as non-finite")
	}
	if IsFinite(NewVector(math.NaN(), 0, 0)) {
		t.Error("NaN vector reported as finite")
	}
	if IsFinite(NewVector(0, 0, math.Inf(-1))) {
		t.Error("infinite vector reported as finite")
	}
}

func TestFormat(t *testing.T) {
	if s := Format(NewVector(1, 0.5, -2)); s != "[1.000, 0.500, -2.000]" {
		t.Errorf("got %q", s)
	}
}
