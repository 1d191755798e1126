package cmna_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edp1096/cmna"
)

func TestPrint(t *testing.T) {
	var buf bytes.Buffer
	config := cmna.DefaultConfiguration()
	config.Output = &buf

	m := loadMatrix(t, [][]float64{{1, -1}, {-1, 2}}, []float64{1, 0}, config)
	m.Print(true, true, true)

	out := buf.String()
	assert.Contains(t, out, "Size of matrix = 2 x 2.")
	assert.Contains(t, out, "Matrix before elimination:")
	assert.Contains(t, out, "rhs")
	assert.Contains(t, out, "Largest element in matrix = 2.")
	assert.Contains(t, out, "Density = 100.00%.")

	buf.Reset()
	require.NoError(t, m.Solve())
	m.Print(false, false, true)
	out = buf.String()
	assert.Contains(t, out, "Matrix after elimination:")
	assert.Contains(t, out, "Columns 1 to 2.")
}

func TestPrint_Occupancy(t *testing.T) {
	var buf bytes.Buffer
	config := cmna.DefaultConfiguration()
	config.Output = &buf

	m := loadMatrix(t, [][]float64{{1, 0}, {0, 2}}, []float64{0, 0}, config)
	m.Print(false, false, false)

	assert.Equal(t, "x.\n.x\n\n", buf.String())
}
