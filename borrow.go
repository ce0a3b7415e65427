// SPDX-License-Identifier: MIT

package grid

import "fmt"

// borrowState records the traversals currently running over a grid.
//
// Any number of shared traversals may overlap, but a mutable traversal must
// be alone: no other traversal, read or write through the grid may happen
// while it runs. Without the griddebug build tag every method is a no-op and
// the rule is a documented precondition only.
type borrowState struct {
	shared    int  // live read-only traversals
	exclusive bool // a mutable traversal is live
}

// share registers a read-only traversal.
func (b *borrowState) share(op string) {
	if !debugChecks {
		return
	}
	if b.exclusive {
		panic(fmt.Errorf("%w: %s while a mutable traversal is live", ErrBorrowed, op))
	}
	b.shared++
}

func (b *borrowState) unshare() {
	if !debugChecks {
		return
	}
	b.shared--
}

// lock registers a mutable traversal.
func (b *borrowState) lock(op string) {
	if !debugChecks {
		return
	}
	b.write(op)
	b.exclusive = true
}

func (b *borrowState) unlock() {
	if !debugChecks {
		return
	}
	b.exclusive = false
}

// read asserts that a single read does not overlap a mutable traversal.
func (b *borrowState) read(op string) {
	if !debugChecks {
		return
	}
	if b.exclusive {
		panic(fmt.Errorf("%w: %s while a mutable traversal is live", ErrBorrowed, op))
	}
}

// write asserts that a single write does not overlap any traversal.
func (b *borrowState) write(op string) {
	if !debugChecks {
		return
	}
	if b.exclusive {
		panic(fmt.Errorf("%w: %s while a mutable traversal is live", ErrBorrowed, op))
	}
	if b.shared > 0 {
		panic(fmt.Errorf("%w: %s while %d read-only traversal(s) are live", ErrBorrowed, op, b.shared))
	}
}
