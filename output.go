package cmna

import (
	"fmt"
	"io"
	"math"
	"os"
)

func (m *Matrix) output() io.Writer {
	if m.Config.Output != nil {
		return m.Config.Output
	}
	return os.Stdout
}

func (m *Matrix) WriteStatus(step int) {
	w := m.output()

	fmt.Fprintf(w, "Step = %d   ", step)
	fmt.Fprintf(w, "Pivot found at row %d, value %g\n", m.PivotRow, m.PivotValue)

	if m.Config.Annotate > 1 {
		m.Print(false, true, false)
	}
}

// Print dumps the augmented matrix. data prints values instead of an 'x'
// occupancy map, header adds row/column numbers and a summary.
func (m *Matrix) Print(rhs bool, data bool, header bool) {
	if m == nil || m.Data == nil {
		return
	}
	w := m.output()

	if header {
		fmt.Fprintf(w, "MATRIX SUMMARY\n\n")
		fmt.Fprintf(w, "Size of matrix = %d x %d.\n\n", m.Size, m.Size)

		if m.Factored {
			fmt.Fprintf(w, "Matrix after elimination:\n")
		} else {
			fmt.Fprintf(w, "Matrix before elimination:\n")
		}
	}

	if m.Size == 0 {
		return
	}

	top := m.Size
	if rhs {
		top = m.Size + 1
	}

	columns := m.Config.PrinterWidth
	if columns <= 0 {
		columns = DEFAULT_PRINTER_WIDTH
	}
	if header {
		columns -= 5
	}
	if data {
		columns = (columns + 1) / 10
	}
	columns = maxOf(columns, 1)

	startCol := 1
	for startCol <= top {
		stopCol := minOf(startCol+columns-1, top)

		if header {
			if data {
				fmt.Fprintf(w, "    ")
				for col := startCol; col <= stopCol; col++ {
					if col == m.Size+1 {
						fmt.Fprintf(w, " %9s", "rhs")
					} else {
						fmt.Fprintf(w, " %9d", col)
					}
				}
				fmt.Fprintf(w, "\n\n")
			} else {
				fmt.Fprintf(w, "Columns %d to %d.\n", startCol, stopCol)
			}
		}

		for row := 1; row <= m.Size; row++ {
			if header {
				fmt.Fprintf(w, "%4d", row)
				if !data {
					fmt.Fprintf(w, " ")
				}
			}

			for col := startCol; col <= stopCol; col++ {
				value := m.Data[row][col]
				if value != 0.0 {
					if data {
						fmt.Fprintf(w, " %9.3g", value)
					} else {
						fmt.Fprintf(w, "x")
					}
				} else {
					if data {
						fmt.Fprintf(w, "       ...")
					} else {
						fmt.Fprintf(w, ".")
					}
				}
			}
			fmt.Fprintln(w)
		}

		fmt.Fprintln(w)
		startCol = stopCol + 1
	}

	if header {
		stats := m.calculateStatistics()
		fmt.Fprintf(w, "\nLargest element in matrix = %-1.4g.\n", stats.largestElement)
		fmt.Fprintf(w, "Smallest element in matrix = %-1.4g.\n", stats.smallestElement)

		fmt.Fprintf(w, "\nLargest diagonal element = %-1.4g.\n", stats.largestDiag)
		fmt.Fprintf(w, "Smallest diagonal element = %-1.4g.\n", stats.smallestDiag)

		density := float64(stats.elementCount) * 100.0 / float64(m.Size*m.Size)
		fmt.Fprintf(w, "\nDensity = %.2f%%.\n", density)
		fmt.Fprintln(w)
	}
}

type matrixStats struct {
	largestElement  float64
	smallestElement float64
	largestDiag     float64
	smallestDiag    float64
	elementCount    int
}

func (m *Matrix) calculateStatistics() matrixStats {
	stats := matrixStats{
		smallestElement: math.MaxFloat64,
		smallestDiag:    math.MaxFloat64,
	}

	for row := 1; row <= m.Size; row++ {
		for col := 1; col <= m.Size; col++ {
			value := m.Data[row][col]
			if value == 0.0 {
				continue
			}

			stats.elementCount++
			magnitude := abs(value)

			stats.largestElement = maxOf(stats.largestElement, magnitude)
			stats.smallestElement = minOf(stats.smallestElement, magnitude)

			if row == col {
				stats.largestDiag = maxOf(stats.largestDiag, magnitude)
				stats.smallestDiag = minOf(stats.smallestDiag, magnitude)
			}
		}
	}

	if stats.elementCount == 0 {
		stats.smallestElement = 0
		stats.largestElement = 0
	}
	if stats.smallestDiag == math.MaxFloat64 {
		stats.smallestDiag = 0
	}

	return stats
}
