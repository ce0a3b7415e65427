// SPDX-License-Identifier: MIT
// Package grid_test contains shared test helpers.

package grid_test

import (
	"errors"
	"testing"

	"github.com/sncxyz/grid/vector"
)

// requirePanicIs RUNS f and fails the test unless it panics with an error
// value matching target under errors.Is. It returns the panic error so
// callers can inspect the message.
func requirePanicIs(t *testing.T, target error, f func()) (got error) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic matching %v, got none", target)
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("panic value %#v is not an error", r)
		}
		if !errors.Is(err, target) {
			t.Fatalf("panic %v does not match %v", err, target)
		}
		got = err
	}()
	f()

	return nil
}

// allPositions returns every position of a w×h grid in row-major order.
func allPositions(w, h int) []vector.Vector {
	out := make([]vector.Vector, 0, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			out = append(out, vector.V(x, y))
		}
	}

	return out
}
