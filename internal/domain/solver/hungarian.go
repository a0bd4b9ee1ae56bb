package solver

// hungarianBig stands in for +infinity in the minimization matrix built
// from solver costs; it must dominate any real cost (including InfCost)
// so that the algorithm only ever prefers it when literally no real
// column remains for a row.
const hungarianBig = 1e15

// solveAssignment finds, for an n-row by m-column cost matrix (n <= m),
// the row-to-column assignment minimizing total cost. It returns rowToCol
// where rowToCol[i] is the 0-based column assigned to row i.
//
// This is the standard O(n^2*m) successive-shortest-augmenting-path
// Hungarian algorithm for rectangular matrices, using row/column
// potentials to avoid needing negative-cost handling.
func solveAssignment(cost [][]float64) []int {
	n := len(cost)
	if n == 0 {
		return nil
	}
	m := len(cost[0])

	// 1-indexed internal arrays, row/col 0 are sentinels.
	u := make([]float64, n+1)
	v := make([]float64, m+1)
	p := make([]int, m+1) // p[j] = row currently assigned to column j (1-indexed row, 0 = none)
	way := make([]int, m+1)

	for i := 1; i <= n; i++ {
		p[0] = i
		j0 := 0
		minv := make([]float64, m+1)
		used := make([]bool, m+1)
		for j := 0; j <= m; j++ {
			minv[j] = hungarianBig * 4
		}

		for {
			used[j0] = true
			i0 := p[j0]
			delta := hungarianBig * 4
			j1 := -1

			for j := 1; j <= m; j++ {
				if used[j] {
					continue
				}
				cur := cost[i0-1][j-1] - u[i0] - v[j]
				if cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}

			for j := 0; j <= m; j++ {
				if used[j] {
					u[p[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}

			j0 = j1
			if p[j0] == 0 {
				break
			}
		}

		for j0 != 0 {
			j1 := way[j0]
			p[j0] = p[j1]
			j0 = j1
		}
	}

	rowToCol := make([]int, n)
	for i := range rowToCol {
		rowToCol[i] = -1
	}
	for j := 1; j <= m; j++ {
		if p[j] != 0 {
			rowToCol[p[j]-1] = j - 1
		}
	}
	return rowToCol
}
