// Package matrix turns adjacency-matrix text into a *core.Graph and back.
//
// What & Why
//
//   - Parse validates raw text (newline-separated rows of whitespace-separated
//     base-10 integers) and returns an immutable core.Graph. Validation runs
//     in a fixed order: integer tokens → squareness → symmetry, so a
//     malformed token is always reported before a shape problem.
//   - Format renders a matrix back to the same text form; Format∘Parse is
//     the identity on well-formed input modulo whitespace.
//   - Empty and Random produce starting matrices of a requested size
//     within [MinSize, MaxSize].
//
// Error Conditions
//
//	All errors wrap one of the sentinels below; callers branch with errors.Is.
//
//	- ErrEmptyMatrix      input has no non-blank rows
//	- ErrMalformedNumber  a token is not a base-10 integer
//	- ErrNotSquare        some row length differs from the row count
//	- ErrNotSymmetric     m[i][j] != m[j][i] for some pair
//	- ErrSizeOutOfRange   generator size outside [MinSize, MaxSize]
//
// Parse never panics and never mutates anything but its return value; the
// caller decides whether the new Graph replaces a previous one.
package matrix
