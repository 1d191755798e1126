package cmna

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Residual returns the infinity norm of A*x - b, with A and b taken from the
// system as assembled and x from the solved matrix.
func (c *Circuit) Residual() (float64, error) {
	if c.Assembled == nil || c.Matrix == nil {
		return 0, ErrNotAssembled
	}

	solution, err := c.Matrix.Solution()
	if err != nil {
		return 0, err
	}

	n := c.Assembled.Size
	if n == 0 {
		return 0, nil
	}

	a, b := c.Assembled.Dense()
	x := mat.NewVecDense(n, solution[1:])

	var r mat.VecDense
	r.MulVec(a, x)
	r.SubVec(&r, b)

	return mat.Norm(&r, math.Inf(1)), nil
}

// Dense copies the coefficient block and the right hand side, ground dropped.
func (m *Matrix) Dense() (*mat.Dense, *mat.VecDense) {
	a := mat.NewDense(maxOf(m.Size, 1), maxOf(m.Size, 1), nil)
	b := mat.NewVecDense(maxOf(m.Size, 1), nil)

	for i := 1; i <= m.Size; i++ {
		for j := 1; j <= m.Size; j++ {
			a.Set(i-1, j-1, m.Data[i][j])
		}
		b.SetVec(i-1, m.Data[i][m.Size+1])
	}

	return a, b
}

// CheckResidual fails when the solution misses the assembled system by more
// than limit.
func (c *Circuit) CheckResidual(limit float64) error {
	residual, err := c.Residual()
	if err != nil {
		return err
	}
	if residual > limit {
		return fmt.Errorf("residual %g exceeds %g", residual, limit)
	}
	return nil
}
