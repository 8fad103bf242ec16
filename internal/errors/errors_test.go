package errors_test

import (
	"testing"

	"github.com/elliptic1174/elligator/internal/errors"
)

func TestKindOf(t *testing.T) {
	for _, v := range []struct {
		err      error
		expected errors.Kind
	}{
		{errors.New(errors.InvalidInput, "t out of range"), errors.InvalidInput},
		{errors.New(errors.DivisionByZero, "divisor is zero"), errors.DivisionByZero},
		{errors.Wrap(errors.NotInvertible, errors.Errorf("gcd"), "inv"), errors.NotInvertible},
		{errors.Errorf("plain"), errors.Other},
		{nil, errors.Other},
	} {
		if got := errors.KindOf(v.err); got != v.expected {
			t.Fatalf("KindOf(%v) = %v, want %v", v.err, got, v.expected)
		}
	}
}

func TestIs(t *testing.T) {
	err := errors.New(errors.NotInvertible, "gcd(a, m) != 1")
	if !errors.Is(err, errors.NotInvertible) {
		t.Fatalf("expected Is(err, NotInvertible) to be true")
	}
	if errors.Is(err, errors.InvalidInput) {
		t.Fatalf("expected Is(err, InvalidInput) to be false")
	}
}

func TestWrapNil(t *testing.T) {
	if err := errors.Wrap(errors.Overflow, nil, "shift"); err != nil {
		t.Fatalf("Wrap(kind, nil, msg) = %v, want nil", err)
	}
}
