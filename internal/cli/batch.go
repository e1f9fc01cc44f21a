// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmatrix/internal/calc"
	"github.com/katalvlaran/lvmatrix/internal/logging"
)

// NewBatchCommand creates the batch command.
func NewBatchCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <file>",
		Short: "Evaluate a YAML list of jobs concurrently",
		Long: `Evaluate every job of a YAML batch file and print the results in file order.

The file is either a bare list or a document with a "jobs" key. Each job has
a name, an op (` + fmt.Sprint(calc.Ops()) + `), a matrix "a", a matrix "b" for
binary operations and a factor "k" for scale. Use - to read the file from stdin.

A failing job does not stop the batch; the command exits with status 1 if
any job failed.`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(opts, cmd, args[0])
		},
	}
	cmd.Flags().IntP("workers", "w", defaultWorkers(), "maximum number of jobs evaluated at once")

	return cmd
}

func runBatch(opts *RootOptions, cmd *cobra.Command, path string) error {
	ref := "@" + path
	if path == "-" {
		ref = stdinRef
	}
	data, err := readArg(ref, cmd.InOrStdin())
	if err != nil {
		return WrapExitError(ExitCommandError, "batch", err)
	}
	jobs, err := decodeJobs(data)
	if err != nil {
		return WrapExitError(ExitCommandError, "batch", err)
	}

	log := opts.logger()
	log.Info("batch started", logging.Int("jobs", len(jobs)), logging.Int("workers", opts.Config.Batch.Workers))
	results, err := calc.RunBatch(cmd.Context(), jobs, opts.Config.Batch.Workers, log)
	if err != nil {
		return WrapExitError(ExitFailure, "batch", err)
	}
	if err := opts.formatter(cmd).Batch(results); err != nil {
		return err
	}

	failed := 0
	for i := range results {
		if results[i].Err != nil {
			failed++
		}
	}
	log.Info("batch finished", logging.Int("jobs", len(jobs)), logging.Int("failed", failed))
	if failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("batch: %d of %d jobs failed", failed, len(jobs)))
	}
	return nil
}
