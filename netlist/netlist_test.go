package netlist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edp1096/cmna/netlist"
)

func TestParse_Elements(t *testing.T) {
	input := `Test circuit
* comment line
r1 a 0 1k
I1 0 a 2m

G1 b 0 a 0 0.5
O1 out 0 in+ in-
V1 a 0 5
L1 a b 1u
C1 b 0 10n
E1 a b c d 2
F1 a b c d 3
H1 a b c d 4
K1 a b c d 5
`
	n, err := netlist.ParseString(input)
	require.NoError(t, err)

	assert.Equal(t, "Test circuit", n.Title)
	assert.Nil(t, n.Transient)
	require.Len(t, n.Elements, 11)

	r := n.Elements[0]
	assert.Equal(t, byte('R'), r.Type)
	assert.Equal(t, "R1", r.Name)
	assert.Equal(t, []string{"a", "0"}, r.Nodes)
	assert.Equal(t, 1000.0, r.Value)
	assert.Equal(t, 3, r.Line)

	i := n.Elements[1]
	assert.Equal(t, byte('I'), i.Type)
	assert.InDelta(t, 2e-3, i.Value, 1e-15)

	g := n.Elements[2]
	assert.Equal(t, []string{"b", "0", "a", "0"}, g.Nodes)
	assert.Equal(t, 0.5, g.Value)
	assert.Equal(t, 6, g.Line)

	o := n.Elements[3]
	assert.Equal(t, byte('O'), o.Type)
	assert.Equal(t, []string{"out", "0", "in+", "in-"}, o.Nodes)
	assert.Zero(t, o.Value)

	types := ""
	for _, e := range n.Elements {
		types += string(e.Type)
	}
	assert.Equal(t, "RIGOVLCEFHK", types)
}

func TestParse_Transient(t *testing.T) {
	n, err := netlist.ParseString("title\nR1 a 0 1\n.TRAN 10m 1u BE 0.5 4\n")
	require.NoError(t, err)
	require.NotNil(t, n.Transient)

	tr := n.Transient
	assert.InDelta(t, 10e-3, tr.Stop, 1e-15)
	assert.InDelta(t, 1e-6, tr.Step, 1e-18)
	assert.Equal(t, "BE", tr.Method)
	assert.Equal(t, 0.5, tr.Theta)
	assert.Equal(t, 4, tr.PointsPerStep)
	assert.Len(t, n.Elements, 1)
}

func TestParse_TransientDefaults(t *testing.T) {
	n, err := netlist.ParseString("title\n.tran 1 0.1\n")
	require.NoError(t, err)
	require.NotNil(t, n.Transient)
	assert.Equal(t, 1, n.Transient.PointsPerStep)
	assert.Empty(t, n.Transient.Method)
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		err   error
	}{
		{"UnknownElement", "title\nX1 a b 1\n", netlist.ErrUnknownElement},
		{"MissingValue", "title\nR1 a 0\n", netlist.ErrSyntax},
		{"MissingNode", "title\nO1 a b c\n", netlist.ErrSyntax},
		{"BadValue", "title\nR1 a 0 abc\n", netlist.ErrSyntax},
		{"BadTransient", "title\n.TRAN 1\n", netlist.ErrSyntax},
		{"BadPoints", "title\n.TRAN 1 0.1 BE 0 x\n", netlist.ErrSyntax},
		{"Empty", "", netlist.ErrEmpty},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := netlist.ParseString(tc.input)
			require.ErrorIs(t, err, tc.err)
		})
	}
}

func TestParse_UnknownElementLine(t *testing.T) {
	_, err := netlist.ParseString("title\nR1 a 0 1\n\nQ1 c b e npn\n")
	require.ErrorIs(t, err, netlist.ErrUnknownElement)
	assert.Contains(t, err.Error(), "line 4")
}

func TestParseFile(t *testing.T) {
	n, err := netlist.ParseFile("../testdata/inverting.net")
	require.NoError(t, err)
	assert.Equal(t, "inverting amplifier", n.Title)
	assert.Len(t, n.Elements, 4)
	assert.NotNil(t, n.Transient)

	_, err = netlist.ParseFile("../testdata/missing.net")
	assert.Error(t, err)
}
