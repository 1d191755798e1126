package cmna // import "github.com/edp1096/cmna"

import (
	"fmt"
)

func DefaultConfiguration() *Configuration {
	return &Configuration{
		MaxNodes:      MAX_NODES,
		MaxElements:   MAX_ELEMENTS,
		MaxNameLength: MAX_NAME_LENGTH,
		Tolerance:     TOLERANCE,
		PrinterWidth:  DEFAULT_PRINTER_WIDTH,
		Annotate:      0,
	}
}

func Create(size int, config *Configuration) (*Matrix, error) {
	if size < 0 {
		return nil, fmt.Errorf("invalid size: %d", size)
	}

	if config == nil {
		config = DefaultConfiguration()
	}

	m := &Matrix{
		Config: *config,
		Size:   size,
		Data:   make([][]float64, size+1), // 1-based indexing, row 0 is ground
	}

	for i := range m.Data {
		m.Data[i] = make([]float64, size+2)
	}

	return m, nil
}

func (m *Matrix) Clear() {
	for i := range m.Data {
		for j := range m.Data[i] {
			m.Data[i][j] = 0.0
		}
	}

	m.Factored = false
	m.SingularRow = 0
	m.PivotRow = 0
	m.PivotValue = 0.0
}

func (m *Matrix) Destroy() {
	m.Data = nil
	m.Size = 0
	m.Factored = false
	m.SingularRow = 0
	m.PivotRow = 0
	m.PivotValue = 0.0
}

// Clone returns an independent copy, used to keep the assembled system
// around while Solve eliminates in place.
func (m *Matrix) Clone() *Matrix {
	c := *m
	c.Data = make([][]float64, len(m.Data))
	for i := range m.Data {
		c.Data[i] = make([]float64, len(m.Data[i]))
		copy(c.Data[i], m.Data[i])
	}
	return &c
}

func (m *Matrix) inRange(index int) bool {
	return index >= 1 && index <= m.Size
}

// AddElement accumulates value at (row, col). Ground row or column is ignored.
func (m *Matrix) AddElement(row, col int, value float64) {
	if !m.inRange(row) || !m.inRange(col) {
		return
	}
	m.Data[row][col] += value
}

// AddRHS accumulates value into the right hand side. Ground row is ignored.
func (m *Matrix) AddRHS(row int, value float64) {
	if !m.inRange(row) {
		return
	}
	m.Data[row][m.Size+1] += value
}

func (m *Matrix) GetElement(row, col int) float64 {
	if !m.inRange(row) || !m.inRange(col) {
		return 0.0
	}
	return m.Data[row][col]
}

func (m *Matrix) GetRHS(row int) float64 {
	if !m.inRange(row) {
		return 0.0
	}
	return m.Data[row][m.Size+1]
}

// ElementCount returns the number of nonzero coefficients, right hand side excluded.
func (m *Matrix) ElementCount() int {
	count := 0
	for i := 1; i <= m.Size; i++ {
		for j := 1; j <= m.Size; j++ {
			if m.Data[i][j] != 0.0 {
				count++
			}
		}
	}
	return count
}
