package cli

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvmatrix/internal/calc"
)

func TestFormatter_Round(t *testing.T) {
	cases := []struct {
		prec int
		in   float64
		want float64
	}{
		{-1, 0.1 + 0.2, 0.30000000000000004},
		{3, 0.1 + 0.2, 0.3},
		{0, 2.5, 2},
		{2, -1e-9, 0},
		{-1, math.Copysign(0, -1), 0},
		{4, 27.000000000000004, 27},
	}
	for _, tc := range cases {
		f := &Formatter{Precision: tc.prec}
		got := f.round(tc.in)
		assert.Equal(t, tc.want, got, "round(%v, %d)", tc.in, tc.prec)
		assert.False(t, math.Signbit(got) && got == 0, "negative zero leaked")
	}
}

func TestFormatter_TextVariants(t *testing.T) {
	det, eq := 2.5, false
	cases := []struct {
		name string
		res  calc.Result
		want string
	}{
		{"scalar", calc.Result{Scalar: &det}, "2.5\n"},
		{"bool", calc.Result{Equal: &eq}, "false\n"},
		{"matrix", calc.Result{Matrix: [][]float64{{1, 1e21}}}, "[1, 1e+21]\n"},
	}
	for _, tc := range cases {
		var buf bytes.Buffer
		f := &Formatter{Format: "text", Precision: -1, Writer: &buf}
		require.NoError(t, f.Result(tc.res), tc.name)
		assert.Equal(t, tc.want, buf.String(), tc.name)
	}
}

func TestFormatter_JSONError(t *testing.T) {
	var buf bytes.Buffer
	f := &Formatter{Format: "json", Precision: -1, Writer: &buf}
	require.NoError(t, f.Batch([]calc.Result{{Name: "x", Op: calc.OpDet, Err: errors.New("boom")}}))
	assert.Equal(t, `[{"name":"x","op":"det","error":"boom"}]`+"\n", buf.String())
}

func TestFormatter_YAMLBatch(t *testing.T) {
	var buf bytes.Buffer
	f := &Formatter{Format: "yaml", Precision: 2, Writer: &buf}
	require.NoError(t, f.Batch([]calc.Result{
		{Name: "m", Op: calc.OpTranspose, Matrix: [][]float64{{1.234}, {5}}},
	}))
	assert.Contains(t, buf.String(), "- [1.23]")
	assert.Contains(t, buf.String(), "- [5]")

	var got []struct {
		Name   string      `yaml:"name"`
		Op     string      `yaml:"op"`
		Matrix [][]float64 `yaml:"matrix"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "m", got[0].Name)
	assert.Equal(t, "transpose", got[0].Op)
	assert.Equal(t, [][]float64{{1.23}, {5}}, got[0].Matrix)
}
