// SPDX-License-Identifier: MIT

//go:build !griddebug

package grid

// debugChecks enables runtime borrow assertions; build with -tags griddebug to turn them on.
const debugChecks = false
