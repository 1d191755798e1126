package cmna

// SearchForPivot scans column step from row step down and returns the row
// holding the largest magnitude. Ties keep the first row.
func (m *Matrix) SearchForPivot(step int) (row int, pivot float64) {
	row = step
	pivot = 0.0

	for l := step; l <= m.Size; l++ {
		if abs(m.Data[l][step]) > abs(pivot) {
			row = l
			pivot = m.Data[l][step]
		}
	}

	return row, pivot
}
