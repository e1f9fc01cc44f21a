// Package lvmatrix is a small, dependency-free dense matrix library for real
// numbers, plus a command-line calculator built on top of it.
//
// 🚀 What is lvmatrix?
//
//	A row-major float64 matrix type with the classic linear-algebra kit:
//		• Lifecycle: create zero-filled matrices, copy from row literals, release
//		• Arithmetic: add, subtract, scalar multiply, multiply, transpose
//		• Equality with an absolute per-element tolerance of 1e-7
//		• LU factorization with partial pivoting and permutation parity
//		• Determinant, matrix of complements (cofactors) and adjugate inverse
//
// ✨ Why choose lvmatrix?
//
//   - Predictable – every operation returns a fresh result and never mutates its operands
//   - Honest errors – sentinel errors matched with errors.Is, no panics on user input
//   - Pure Go – the matrix package imports only the standard library
//
// Under the hood:
//
//	matrix/          — Dense type, validators, arithmetic, LU, cofactors, inverse
//	internal/calc/   — named operations on row literals + concurrent batch evaluation
//	internal/cli/    — the lvmat command tree (cobra)
//	internal/config/ — layered configuration (viper)
//	internal/logging — structured logging (zerolog)
//	cmd/lvmat/       — the lvmat binary
//
// Quick example:
//
//	lvmat inv "[[2,5,7],[6,3,4],[5,-2,-3]]"
//	[1, -1, 1]
//	[-38, 41, -34]
//	[27, -29, 24]
//
//	go get github.com/katalvlaran/lvmatrix/matrix
package lvmatrix
