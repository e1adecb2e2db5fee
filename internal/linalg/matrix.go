package linalg

// Matrix is a dense row-major matrix of float64 values.
type Matrix [][]float64

// NewMatrix allocates a zeroed rows x cols matrix.
func NewMatrix(rows, cols int) Matrix {
	m := make(Matrix, rows)
	for i := range m {
		m[i] = make([]float64, cols)
	}
	return m
}

// Identity returns the n x n identity matrix.
func Identity(n int) Matrix {
	m := NewMatrix(n, n)
	for i := 0; i < n; i++ {
		m[i][i] = 1.0
	}
	return m
}

func (m Matrix) Rows() int { return len(m) }

func (m Matrix) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

func (m Matrix) Clone() Matrix {
	c := make(Matrix, len(m))
	for i, row := range m {
		c[i] = make([]float64, len(row))
		copy(c[i], row)
	}
	return c
}

// MulVec returns m * v.
func (m Matrix) MulVec(v Vector) Vector {
	result := make(Vector, m.Rows())
	for i, row := range m {
		sum := 0.0
		for j := range row {
			if j < len(v) {
				sum += row[j] * v[j]
			}
		}
		result[i] = sum
	}
	return result
}
