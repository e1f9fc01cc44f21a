// SPDX-License-Identifier: MIT
// Package calc evaluates named matrix operations on row literals.
// It is the bridge between decoded documents (CLI arguments, batch files) and
// the matrix package: every Job owns its operands, which are built, consumed
// and released inside Evaluate.
package calc

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/lvmatrix/matrix"
)

// Op names one supported operation.
type Op string

// Supported operations.
const (
	OpDet         Op = "det"
	OpInverse     Op = "inv"
	OpTranspose   Op = "transpose"
	OpComplements Op = "complements"
	OpLU          Op = "lu"
	OpAdd         Op = "add"
	OpSub         Op = "sub"
	OpMul         Op = "mul"
	OpScale       Op = "scale"
	OpEqual       Op = "eq"
)

// arity is the number of matrix operands each Op takes.
var arity = map[Op]int{
	OpDet: 1, OpInverse: 1, OpTranspose: 1, OpComplements: 1, OpLU: 1, OpScale: 1,
	OpAdd: 2, OpSub: 2, OpMul: 2, OpEqual: 2,
}

var (
	// ErrUnknownOp is returned for an operation name not in Ops().
	ErrUnknownOp = errors.New("calc: unknown operation")
	// ErrMissingOperand is returned when a binary operation lacks its second matrix.
	ErrMissingOperand = errors.New("calc: missing operand")
	// ErrOperand wraps the failure to build an operand from its row literal
	// (empty or ragged rows). The matrix sentinel stays reachable via errors.Is.
	ErrOperand = errors.New("calc: invalid operand")
)

// Ops lists every supported operation name, sorted.
func Ops() []string {
	out := make([]string, 0, len(arity))
	for op := range arity {
		out = append(out, string(op))
	}
	sort.Strings(out)

	return out
}

// Arity returns how many matrices op consumes, or 0 when op is unknown.
func Arity(op Op) int { return arity[op] }

// Job is one operation request. B is used only by binary operations and
// K only by scale.
type Job struct {
	Name string      `yaml:"name" json:"name"`
	Op   Op          `yaml:"op" json:"op"`
	A    [][]float64 `yaml:"a" json:"a"`
	B    [][]float64 `yaml:"b,omitempty" json:"b,omitempty"`
	K    float64     `yaml:"k,omitempty" json:"k,omitempty"`
}

// LUParts is the exported view of a factorization.
type LUParts struct {
	L        [][]float64 `yaml:"l" json:"l"`
	U        [][]float64 `yaml:"u" json:"u"`
	Perm     []int       `yaml:"perm" json:"perm"`
	Swaps    int         `yaml:"swaps" json:"swaps"`
	Singular bool        `yaml:"singular" json:"singular"`
}

// Result is the outcome of one Job. Exactly one of Matrix, Scalar, Equal
// or LU is set on success; Err is set on failure.
type Result struct {
	Name   string
	Op     Op
	Matrix [][]float64
	Scalar *float64
	Equal  *bool
	LU     *LUParts
	Err    error
}

// Evaluate runs job and returns its result. Operation errors are returned
// both as the error value and in Result.Err.
func Evaluate(job Job) (Result, error) {
	res := Result{Name: job.Name, Op: job.Op}
	if err := evaluate(job, &res); err != nil {
		res.Err = err

		return res, err
	}

	return res, nil
}

func evaluate(job Job, res *Result) error {
	n, ok := arity[job.Op]
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownOp, job.Op)
	}
	a, err := matrix.NewDenseFromRows(job.A)
	if err != nil {
		return fmt.Errorf("%w a: %w", ErrOperand, err)
	}
	defer a.Release()

	var b *matrix.Dense
	if n == 2 {
		if len(job.B) == 0 {
			return fmt.Errorf("%w: %s needs two matrices", ErrMissingOperand, job.Op)
		}
		if b, err = matrix.NewDenseFromRows(job.B); err != nil {
			return fmt.Errorf("%w b: %w", ErrOperand, err)
		}
		defer b.Release()
	}

	switch job.Op {
	case OpDet:
		det, err := matrix.Determinant(a)
		if err != nil {
			return err
		}
		res.Scalar = &det
	case OpEqual:
		eq := matrix.Equal(a, b)
		res.Equal = &eq
	case OpLU:
		f, err := matrix.Factorize(a)
		if err != nil {
			return err
		}
		defer f.Release()
		res.LU = &LUParts{
			L:        f.L.RawRows(),
			U:        f.U.RawRows(),
			Perm:     append([]int(nil), f.Perm...),
			Swaps:    f.Swaps,
			Singular: f.Singular,
		}
	default:
		out, err := matrixOp(job, a, b)
		if err != nil {
			return err
		}
		defer out.Release()
		res.Matrix = out.RawRows()
	}

	return nil
}

// matrixOp dispatches the operations whose result is a matrix.
func matrixOp(job Job, a, b *matrix.Dense) (*matrix.Dense, error) {
	switch job.Op {
	case OpInverse:
		return matrix.Inverse(a)
	case OpTranspose:
		return matrix.Transpose(a)
	case OpComplements:
		return matrix.Complements(a)
	case OpAdd:
		return matrix.Add(a, b)
	case OpSub:
		return matrix.Sub(a, b)
	case OpMul:
		return matrix.Mul(a, b)
	case OpScale:
		return matrix.Scale(a, job.K)
	}

	return nil, fmt.Errorf("%w %q", ErrUnknownOp, job.Op)
}
