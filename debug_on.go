// SPDX-License-Identifier: MIT

//go:build griddebug

package grid

const debugChecks = true
