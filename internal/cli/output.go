// SPDX-License-Identifier: MIT

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvmatrix/internal/calc"
	"github.com/katalvlaran/lvmatrix/internal/config"
)

// Formatter renders calc results as text, JSON or YAML.
// Precision >= 0 rounds every value to that many decimals; -1 keeps the
// shortest round-trip form. Negative zero is always printed as 0.
// Non-finite values print as +Inf, -Inf, NaN in text and JSON (as strings)
// and as .inf, -.inf, .nan in YAML.
type Formatter struct {
	Format    string
	Precision int
	Writer    io.Writer
}

// resultDoc is the JSON/YAML shape of one result.
type resultDoc struct {
	Name   string   `json:"name,omitempty" yaml:"name,omitempty"`
	Op     string   `json:"op" yaml:"op"`
	Matrix flowRows `json:"matrix,omitempty" yaml:"matrix,omitempty"`
	Scalar *number  `json:"scalar,omitempty" yaml:"scalar,omitempty"`
	Equal  *bool    `json:"equal,omitempty" yaml:"equal,omitempty"`
	LU     *luDoc   `json:"lu,omitempty" yaml:"lu,omitempty"`
	Error  string   `json:"error,omitempty" yaml:"error,omitempty"`
}

type luDoc struct {
	L        flowRows `json:"l" yaml:"l"`
	U        flowRows `json:"u" yaml:"u"`
	Perm     []int    `json:"perm" yaml:"perm,flow"`
	Swaps    int      `json:"swaps" yaml:"swaps"`
	Singular bool     `json:"singular" yaml:"singular"`
}

// number is a float64 that survives JSON encoding when it is not finite.
type number float64

// MarshalJSON implements json.Marshaler; ±Inf and NaN become strings.
func (n number) MarshalJSON() ([]byte, error) {
	v := float64(n)
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return []byte(strconv.Quote(formatShortest(v))), nil
	}
	return json.Marshal(v)
}

// MarshalYAML implements yaml.Marshaler.
func (n number) MarshalYAML() (any, error) {
	return &yaml.Node{Kind: yaml.ScalarNode, Value: formatYAML(float64(n))}, nil
}

// flowRows renders in YAML as one flow sequence per row: "- [1, 2]".
type flowRows [][]float64

// MarshalJSON implements json.Marshaler.
func (r flowRows) MarshalJSON() ([]byte, error) {
	out := make([][]number, len(r))
	for i, row := range r {
		out[i] = make([]number, len(row))
		for j, v := range row {
			out[i][j] = number(v)
		}
	}
	return json.Marshal(out)
}

// MarshalYAML implements yaml.Marshaler.
func (r flowRows) MarshalYAML() (any, error) {
	seq := &yaml.Node{Kind: yaml.SequenceNode}
	for _, row := range r {
		rn := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
		for _, v := range row {
			rn.Content = append(rn.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: formatYAML(v)})
		}
		seq.Content = append(seq.Content, rn)
	}
	return seq, nil
}

// Result writes a single result.
func (f *Formatter) Result(r calc.Result) error {
	switch f.Format {
	case config.FormatJSON:
		return json.NewEncoder(f.Writer).Encode(f.doc(r))
	case config.FormatYAML:
		return f.encodeYAML(f.doc(r))
	}
	return f.writeText(r)
}

// Batch writes all results of a batch, in order.
func (f *Formatter) Batch(rs []calc.Result) error {
	switch f.Format {
	case config.FormatJSON, config.FormatYAML:
		docs := make([]resultDoc, len(rs))
		for i := range rs {
			docs[i] = f.doc(rs[i])
		}
		if f.Format == config.FormatJSON {
			return json.NewEncoder(f.Writer).Encode(docs)
		}
		return f.encodeYAML(docs)
	}

	for _, r := range rs {
		if _, err := fmt.Fprintf(f.Writer, "# %s (%s)\n", r.Name, r.Op); err != nil {
			return err
		}
		if r.Err != nil {
			if _, err := fmt.Fprintf(f.Writer, "error: %v\n", r.Err); err != nil {
				return err
			}
			continue
		}
		if err := f.writeText(r); err != nil {
			return err
		}
	}
	return nil
}

func (f *Formatter) encodeYAML(v any) error {
	enc := yaml.NewEncoder(f.Writer)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func (f *Formatter) doc(r calc.Result) resultDoc {
	d := resultDoc{Name: r.Name, Op: string(r.Op), Equal: r.Equal}
	if r.Err != nil {
		d.Error = r.Err.Error()
		return d
	}
	if r.Matrix != nil {
		d.Matrix = f.roundRows(r.Matrix)
	}
	if r.Scalar != nil {
		v := number(f.round(*r.Scalar))
		d.Scalar = &v
	}
	if r.LU != nil {
		d.LU = &luDoc{
			L:        f.roundRows(r.LU.L),
			U:        f.roundRows(r.LU.U),
			Perm:     r.LU.Perm,
			Swaps:    r.LU.Swaps,
			Singular: r.LU.Singular,
		}
	}
	return d
}

func (f *Formatter) writeText(r calc.Result) error {
	var b strings.Builder
	switch {
	case r.Matrix != nil:
		f.textRows(&b, r.Matrix)
	case r.Scalar != nil:
		b.WriteString(formatShortest(f.round(*r.Scalar)))
		b.WriteByte('\n')
	case r.Equal != nil:
		b.WriteString(strconv.FormatBool(*r.Equal))
		b.WriteByte('\n')
	case r.LU != nil:
		b.WriteString("L:\n")
		f.textRows(&b, r.LU.L)
		b.WriteString("U:\n")
		f.textRows(&b, r.LU.U)
		fmt.Fprintf(&b, "perm: %s\n", joinInts(r.LU.Perm))
		fmt.Fprintf(&b, "swaps: %d\nsingular: %t\n", r.LU.Swaps, r.LU.Singular)
	}
	_, err := io.WriteString(f.Writer, b.String())
	return err
}

// textRows writes one "[a, b, c]" line per row.
func (f *Formatter) textRows(b *strings.Builder, rows [][]float64) {
	for _, row := range rows {
		b.WriteByte('[')
		for j, v := range row {
			if j > 0 {
				b.WriteString(", ")
			}
			b.WriteString(formatShortest(f.round(v)))
		}
		b.WriteString("]\n")
	}
}

func (f *Formatter) roundRows(rows [][]float64) flowRows {
	out := make(flowRows, len(rows))
	for i, row := range rows {
		out[i] = make([]float64, len(row))
		for j, v := range row {
			out[i][j] = f.round(v)
		}
	}
	return out
}

// round applies the configured precision and folds -0 into 0.
func (f *Formatter) round(v float64) float64 {
	if f.Precision >= 0 {
		if r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', f.Precision, 64), 64); err == nil {
			v = r
		}
	}
	if v == 0 {
		return 0
	}
	return v
}

func formatShortest(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// formatYAML spells non-finite values the way YAML 1.2 core schema does.
func formatYAML(v float64) string {
	switch {
	case math.IsNaN(v):
		return ".nan"
	case math.IsInf(v, 1):
		return ".inf"
	case math.IsInf(v, -1):
		return "-.inf"
	}
	return formatShortest(v)
}

func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
