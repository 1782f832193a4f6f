// Package test contains helper functions for the package tests in the
// project. Each function marks itself as a helper so failures are reported
// against the calling line.
package test

import (
	"math"
	"testing"
)

// ExpectEquality tests that the value is equal to the expected value. Returns
// true if the test passes.
func ExpectEquality[T comparable](t *testing.T, value T, expected T) bool {
	t.Helper()
	if value != expected {
		t.Errorf("equality test of type %T failed: '%v' does not equal '%v')", value, value, expected)
		return false
	}
	return true
}

// ExpectInequality tests that the value is not equal to the unexpected value.
func ExpectInequality[T comparable](t *testing.T, value T, unexpected T) bool {
	t.Helper()
	if value == unexpected {
		t.Errorf("inequality test of type %T failed: '%v' does equal '%v')", value, value, unexpected)
		return false
	}
	return true
}

// ExpectApproximate tests that the value is within tolerance of the expected
// value.
func ExpectApproximate(t *testing.T, value float64, expected float64, tolerance float64) bool {
	t.Helper()
	if math.Abs(value-expected) > tolerance {
		t.Errorf("approximation test failed: '%v' is not within %v of '%v'", value, tolerance, expected)
		return false
	}
	return true
}

// ExpectSuccess tests that the value indicates success. For a bool the value
// must be true and for an error the value must be nil.
func ExpectSuccess(t *testing.T, value any) bool {
	t.Helper()
	switch v := value.(type) {
	case bool:
		if !v {
			t.Errorf("success test failed: value is false")
			return false
		}
	case error:
		if v != nil {
			t.Errorf("success test failed: unexpected error: %v", v)
			return false
		}
	case nil:
	default:
		t.Fatalf("unsupported type (%T) for success test", v)
		return false
	}
	return true
}

// ExpectFailure tests that the value indicates failure. For a bool the value
// must be false and for an error the value must not be nil.
func ExpectFailure(t *testing.T, value any) bool {
	t.Helper()
	switch v := value.(type) {
	case bool:
		if v {
			t.Errorf("failure test failed: value is true")
			return false
		}
	case error:
		if v == nil {
			t.Errorf("failure test failed: expected an error")
			return false
		}
	case nil:
		t.Errorf("failure test failed: expected an error")
		return false
	default:
		t.Fatalf("unsupported type (%T) for failure test", v)
		return false
	}
	return true
}

// DemandEquality is like ExpectEquality but stops the test on failure.
func DemandEquality[T comparable](t *testing.T, value T, expected T) {
	t.Helper()
	if value != expected {
		t.Fatalf("equality test of type %T failed: '%v' does not equal '%v')", value, value, expected)
	}
}
