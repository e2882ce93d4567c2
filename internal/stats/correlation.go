package stats

import "math"

// PearsonCorrelation calculates the Pearson correlation coefficient
// between two variables of equal length. Returns 0 when the inputs are
// too short, mismatched, or constant.
func PearsonCorrelation(x, y []float64) float64 {
	if len(x) != len(y) || len(x) < 2 {
		return 0
	}

	meanX := Mean(x)
	meanY := Mean(y)

	var sumXY, sumX2, sumY2 float64
	for i := 0; i < len(x); i++ {
		dx := x[i] - meanX
		dy := y[i] - meanY
		sumXY += dx * dy
		sumX2 += dx * dx
		sumY2 += dy * dy
	}

	if sumX2 == 0 || sumY2 == 0 {
		return 0
	}

	return sumXY / math.Sqrt(sumX2*sumY2)
}

// CorrelationMatrix computes the pairwise Pearson correlations of the
// given column vectors. The result is symmetric with a unit diagonal
// (unless a column is constant, where the off-diagonal entries are 0).
func CorrelationMatrix(columns [][]float64) [][]float64 {
	n := len(columns)
	matrix := make([][]float64, n)
	for i := range matrix {
		matrix[i] = make([]float64, n)
		matrix[i][i] = 1
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			r := PearsonCorrelation(columns[i], columns[j])
			matrix[i][j] = r
			matrix[j][i] = r
		}
	}
	return matrix
}
