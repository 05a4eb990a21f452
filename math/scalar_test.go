package math

import (
	"testing"

	"github.com/pkg/errors"
)

func TestApproxEqual(t *testing.T) {
	for _, test := range []struct {
		a, b, eps float32
		r         bool
	}{
		{1, 1, 0, true},
		{1, 1.000001, Epsilon, true},
		{1, 1.0001, Epsilon, false},
		{1, 1.0001, LowEpsilon, true},
		{-2, 2, LowEpsilon, false},
	} {
		if got := ApproxEqual(test.a, test.b, test.eps); got != test.r {
			t.Errorf("ApproxEqual(%v, %v, %v): expected %v, got %v", test.a, test.b, test.eps, test.r, got)
		}
	}
}

func TestMinMax(t *testing.T) {
	if got := Min(3, -1); got != -1 {
		t.Errorf("Min: expected -1, got %v", got)
	}
	if got := Max(float32(0.5), 0.25); got != 0.5 {
		t.Errorf("Max: expected 0.5, got %v", got)
	}
	if got := Min("b", "a"); got != "a" {
		t.Errorf("Min: expected a, got %v", got)
	}
}

func TestClamp(t *testing.T) {
	for _, test := range []struct {
		v, lo, hi, r float32
	}{
		{0.5, 0, 1, 0.5},
		{-3, 0, 1, 0},
		{7, 0, 1, 1},
		{0, 0, 1, 0},
		{1, 0, 1, 1},
	} {
		if got := Clamp(test.v, test.lo, test.hi); got != test.r {
			t.Errorf("Clamp(%v, %v, %v): expected %v, got %v", test.v, test.lo, test.hi, test.r, got)
		}
	}
	if got := Clamp(42, 0, 10); got != 10 {
		t.Errorf("Clamp: expected 10, got %v", got)
	}

	// Inverted bounds: the upper bound wins.
	if got := Clamp(5, 10, 0); got != 0 {
		t.Errorf("Clamp inverted: expected 0, got %v", got)
	}
	if got := Clamp(float32(-1), 1, 0); got != 0 {
		t.Errorf("Clamp inverted: expected 0, got %v", got)
	}
}

func TestIsDomainError(t *testing.T) {
	if IsDomainError(nil) {
		t.Error("IsDomainError: expected false for nil")
	}
	if IsDomainError(errors.New("other")) {
		t.Error("IsDomainError: expected false for unrelated error")
	}
	wrapped := errors.Wrap(errors.Wrap(ErrDomain, "inner"), "outer")
	if !IsDomainError(wrapped) {
		t.Errorf("IsDomainError: expected true for %v", wrapped)
	}

	_, err := Vec4Zero.Normalize()
	if errors.Cause(err) != ErrDomain {
		t.Errorf("Normalize: expected cause %v, got %v", ErrDomain, errors.Cause(err))
	}
}
