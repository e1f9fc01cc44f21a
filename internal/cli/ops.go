// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmatrix/internal/calc"
	"github.com/katalvlaran/lvmatrix/internal/logging"
)

// opCommand describes a command that maps one-to-one onto a calc.Op.
type opCommand struct {
	op    calc.Op
	use   string
	short string
}

var unaryCommands = []opCommand{
	{calc.OpDet, "det <matrix>", "Determinant via LU with partial pivoting"},
	{calc.OpInverse, "inv <matrix>", "Inverse via the adjugate (transposed complements over det)"},
	{calc.OpTranspose, "transpose <matrix>", "Transpose"},
	{calc.OpComplements, "complements <matrix>", "Matrix of cofactors"},
	{calc.OpLU, "lu <matrix>", "LU factorization: L, U, row permutation and swap count"},
}

var binaryCommands = []opCommand{
	{calc.OpAdd, "add <a> <b>", "Element-wise sum a + b"},
	{calc.OpSub, "sub <a> <b>", "Element-wise difference a - b"},
	{calc.OpMul, "mul <a> <b>", "Matrix product a × b"},
	{calc.OpEqual, "eq <a> <b>", "Compare with absolute tolerance 1e-7 per element"},
}

func newUnaryCommand(opts *RootOptions, def opCommand) *cobra.Command {
	return &cobra.Command{
		Use:   def.use,
		Short: def.short,
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ms, err := matrixArgs(cmd, args)
			if err != nil {
				return err
			}
			return runJob(opts, cmd, calc.Job{Op: def.op, A: ms[0]})
		},
	}
}

func newBinaryCommand(opts *RootOptions, def opCommand) *cobra.Command {
	return &cobra.Command{
		Use:   def.use,
		Short: def.short,
		Args:  exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ms, err := matrixArgs(cmd, args)
			if err != nil {
				return err
			}
			return runJob(opts, cmd, calc.Job{Op: def.op, A: ms[0], B: ms[1]})
		},
	}
}

// NewScaleCommand creates the scale command. The factor is a flag so that
// negative values are not mistaken for flags.
func NewScaleCommand(opts *RootOptions) *cobra.Command {
	var factor float64
	cmd := &cobra.Command{
		Use:   "scale <matrix> --by <k>",
		Short: "Multiply every element by a scalar",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ms, err := matrixArgs(cmd, args)
			if err != nil {
				return err
			}
			return runJob(opts, cmd, calc.Job{Op: calc.OpScale, A: ms[0], K: factor})
		},
	}
	cmd.Flags().Float64VarP(&factor, "by", "k", 1, "scalar factor")
	_ = cmd.MarkFlagRequired("by")

	return cmd
}

// runJob evaluates one job and prints its result.
func runJob(opts *RootOptions, cmd *cobra.Command, job calc.Job) error {
	log := opts.logger()
	start := time.Now()
	res, err := calc.Evaluate(job)
	if err != nil {
		log.Error("operation failed", err, logging.String("op", string(job.Op)))
		if errors.Is(err, calc.ErrUnknownOp) || errors.Is(err, calc.ErrMissingOperand) || errors.Is(err, calc.ErrOperand) {
			return WrapExitError(ExitCommandError, string(job.Op), err)
		}
		return WrapExitError(ExitFailure, string(job.Op), err)
	}
	log.Debug("operation done", logging.String("op", string(job.Op)), logging.Duration("took", time.Since(start)))

	return opts.formatter(cmd).Result(res)
}
