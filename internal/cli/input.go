// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvmatrix/internal/calc"
)

// ErrBadInput is returned for unreadable or malformed matrix and batch documents.
var ErrBadInput = errors.New("cli: invalid input")

// stdinRef is the @-reference that reads a document from stdin.
const stdinRef = "@-"

// matrixDoc is the keyed form of a matrix document.
type matrixDoc struct {
	Matrix [][]float64 `yaml:"matrix"`
}

// batchDoc is the keyed form of a batch document.
type batchDoc struct {
	Jobs []calc.Job `yaml:"jobs"`
}

// readArg returns the document an argument refers to: the argument itself,
// the contents of @path, or stdin for @-.
func readArg(arg string, stdin io.Reader) ([]byte, error) {
	if !strings.HasPrefix(arg, "@") {
		return []byte(arg), nil
	}
	if arg == stdinRef {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("%w: read stdin: %v", ErrBadInput, err)
		}
		return data, nil
	}
	data, err := os.ReadFile(arg[1:])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadInput, err)
	}
	return data, nil
}

// topNode decodes data and returns its top-level YAML node.
func topNode(data []byte) (*yaml.Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadInput, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrBadInput)
	}
	return doc.Content[0], nil
}

// decodeMatrix parses a bare list of rows or a document with a "matrix" key.
// Shape checks are left to the matrix package.
func decodeMatrix(data []byte) ([][]float64, error) {
	node, err := topNode(data)
	if err != nil {
		return nil, err
	}

	var rows [][]float64
	switch node.Kind {
	case yaml.SequenceNode:
		err = node.Decode(&rows)
	case yaml.MappingNode:
		var doc matrixDoc
		err = node.Decode(&doc)
		rows = doc.Matrix
	default:
		return nil, fmt.Errorf("%w: line %d: expected a list of rows", ErrBadInput, node.Line)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadInput, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrBadInput)
	}
	return rows, nil
}

// decodeJobs parses a bare list of jobs or a document with a "jobs" key.
// Unnamed jobs are called job-1, job-2, ... by position.
func decodeJobs(data []byte) ([]calc.Job, error) {
	node, err := topNode(data)
	if err != nil {
		return nil, err
	}

	var jobs []calc.Job
	switch node.Kind {
	case yaml.SequenceNode:
		err = node.Decode(&jobs)
	case yaml.MappingNode:
		var doc batchDoc
		err = node.Decode(&doc)
		jobs = doc.Jobs
	default:
		return nil, fmt.Errorf("%w: line %d: expected a list of jobs", ErrBadInput, node.Line)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadInput, err)
	}
	if len(jobs) == 0 {
		return nil, fmt.Errorf("%w: no jobs", ErrBadInput)
	}
	for i := range jobs {
		if jobs[i].Name == "" {
			jobs[i].Name = fmt.Sprintf("job-%d", i+1)
		}
	}
	return jobs, nil
}

// matrixArgs resolves every argument of cmd into a row literal.
func matrixArgs(cmd *cobra.Command, args []string) ([][][]float64, error) {
	out := make([][][]float64, len(args))
	for i, arg := range args {
		data, err := readArg(arg, cmd.InOrStdin())
		if err != nil {
			return nil, WrapExitError(ExitCommandError, fmt.Sprintf("argument %d", i+1), err)
		}
		if out[i], err = decodeMatrix(data); err != nil {
			return nil, WrapExitError(ExitCommandError, fmt.Sprintf("argument %d", i+1), err)
		}
	}
	return out, nil
}

// exactArgs is cobra.ExactArgs reporting a command error exit code.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return WrapExitError(ExitCommandError, cmd.Name(), err)
		}
		return nil
	}
}
