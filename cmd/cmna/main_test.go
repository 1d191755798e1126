package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edp1096/cmna"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer

	root := newRootCmd(&out)
	root.SetArgs(append([]string{}, args...))
	root.SetErr(&errOut)

	err := root.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestRun_Solves(t *testing.T) {
	out, logs, err := execute(t, "../../testdata/noninverting.net")
	require.NoError(t, err)

	assert.Contains(t, out, "non-inverting amplifier")
	assert.Contains(t, out, "Equations: 2")
	assert.Regexp(t, `(?m)^o\s+2\s+2$`, out)
	assert.Regexp(t, `(?m)^p\s+1\s+1$`, out)
	assert.Regexp(t, `(?m)^n\s+1\s+1$`, out)
	assert.Contains(t, logs, "system assembled")
}

func TestRun_Singular(t *testing.T) {
	_, _, err := execute(t, "../../testdata/floating.net")
	require.Error(t, err)
	assert.True(t, cmna.IsSingular(err))
	assert.Contains(t, err.Error(), "no unique operating point")
}

func TestRun_Options(t *testing.T) {
	out, _, err := execute(t, "--print-matrix", "--check", "--annotate", "1", "../../testdata/single.net")
	require.NoError(t, err)

	assert.Contains(t, out, "MATRIX SUMMARY")
	assert.Contains(t, out, "Step = 1")
	assert.Contains(t, out, "Residual |Ax-b| = 0")
}

func TestRun_Config(t *testing.T) {
	out, _, err := execute(t, "--config", "../../testdata/limits.toml", "../../testdata/single.net")
	require.NoError(t, err)
	assert.Contains(t, out, "Step = 1   Pivot found at row 1, value 1")

	_, _, err = execute(t, "--config", "../../testdata/unknown_key.toml", "../../testdata/single.net")
	assert.Error(t, err)
}

func TestRun_Transient(t *testing.T) {
	_, logs, err := execute(t, "../../testdata/inverting.net")
	require.NoError(t, err)
	assert.Contains(t, logs, "transient analysis is not implemented")
}

func TestRun_Errors(t *testing.T) {
	cases := []struct {
		name string
		args []string
		err  error
	}{
		{"Unsupported", []string{"../../testdata/voltage.net"}, cmna.ErrUnsupportedElement},
		{"Shorted", []string{"../../testdata/shorted.net"}, cmna.ErrInvalidShort},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := execute(t, tc.args...)
			require.ErrorIs(t, err, tc.err)
			assert.False(t, cmna.IsSingular(err))
		})
	}

	_, _, err := execute(t)
	assert.Error(t, err)

	_, _, err = execute(t, "--annotate", "5", "../../testdata/single.net")
	assert.Error(t, err)
}
