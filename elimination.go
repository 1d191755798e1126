package cmna

func (m *Matrix) rowExchange(row1, row2 int) {
	if row1 == row2 {
		return
	}
	for j := 1; j <= m.Size+1; j++ {
		m.Data[row1][j], m.Data[row2][j] = m.Data[row2][j], m.Data[row1][j]
	}
}

// RowColElimination divides the pivot row by pivot and clears column step
// from every other row, touching only the columns right of step. Columns
// left of step are already reduced and the pivot column itself is left stale.
func (m *Matrix) RowColElimination(step int, pivot float64) {
	for j := m.Size + 1; j > step; j-- {
		m.Data[step][j] /= pivot
		p := m.Data[step][j]
		if p == 0.0 {
			continue
		}

		for l := 1; l <= m.Size; l++ {
			if l != step {
				m.Data[l][j] -= m.Data[l][step] * p
			}
		}
	}
}
