package cmna

import (
	"fmt"
)

// Solve runs Gauss-Jordan elimination with partial pivoting in place.
// On success column Size+1 holds the solution.
func (m *Matrix) Solve() error {
	if m.Data == nil {
		return fmt.Errorf("matrix is destroyed")
	}
	if m.Factored {
		return fmt.Errorf("matrix is already solved")
	}

	tolerance := m.Config.Tolerance
	if tolerance <= 0.0 {
		tolerance = TOLERANCE
	}

	for step := 1; step <= m.Size; step++ {
		row, pivot := m.SearchForPivot(step)
		m.PivotRow = row
		m.PivotValue = pivot

		if abs(pivot) < tolerance {
			m.SingularRow = step
			return fmt.Errorf("%w: pivot %g below %g at step %d", ErrSingular, pivot, tolerance, step)
		}

		m.rowExchange(step, row)
		m.RowColElimination(step, pivot)

		if m.Config.Annotate > 0 {
			m.WriteStatus(step)
		}
	}

	m.Factored = true
	return nil
}

// Solution returns the unknowns indexed 1...Size. Index 0 is ground and always zero.
func (m *Matrix) Solution() (solution []float64, err error) {
	if !m.Factored {
		return nil, fmt.Errorf("matrix is not solved")
	}

	solution = make([]float64, m.Size+1)
	for i := 1; i <= m.Size; i++ {
		solution[i] = m.Data[i][m.Size+1]
	}

	return solution, nil
}
