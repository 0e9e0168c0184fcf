// SPDX-License-Identifier: MIT
// Package: searchbench/builder
//
// errors.go - sentinel errors for the builder package.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is below
// the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrBadGridSpec indicates a grid size string that is not of the form "RxC".
var ErrBadGridSpec = errors.New("builder: grid spec must look like RxC")
