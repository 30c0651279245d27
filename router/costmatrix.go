package router

import (
	"fmt"
	"math"
)

// CostMatrix is a flat, row-major, bounds-checked square matrix,
// adapted from lvlath/matrix.Dense for the Router's fixed (N+2)x(N+2)
// absorbing-chain shape.
type CostMatrix struct {
	n    int
	data []float64
}

// NewCostMatrix allocates an n×n CostMatrix with every entry set to
// +Inf, except the diagonal, which is 0.
func NewCostMatrix(n int) (*CostMatrix, error) {
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}

	data := make([]float64, n*n)
	for i := range data {
		data[i] = math.Inf(1)
	}
	m := &CostMatrix{n: n, data: data}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 0
	}

	return m, nil
}

// N returns the matrix's side length.
func (m *CostMatrix) N() int { return m.n }

func (m *CostMatrix) index(row, col int) (int, error) {
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		return 0, fmt.Errorf("CostMatrix(%d,%d): %w", row, col, ErrIndexOutOfBounds)
	}

	return row*m.n + col, nil
}

// At returns the entry at (row, col).
func (m *CostMatrix) At(row, col int) (float64, error) {
	idx, err := m.index(row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns the entry at (row, col).
func (m *CostMatrix) Set(row, col int, v float64) error {
	idx, err := m.index(row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// setIfLess assigns v at (row, col) only if it improves on the current
// entry, so that parallel edges between the same undirected pair leave
// the matrix holding the cheapest one rather than whichever was seen last.
func (m *CostMatrix) setIfLess(row, col int, v float64) {
	idx, _ := m.index(row, col)
	if v < m.data[idx] {
		m.data[idx] = v
	}
}

// CostMatrix assembles the (N+2)x(N+2) absorbing-chain cost matrix for
// a start/end pair:
//
//   - row/col 0 is the virtual source; row/col N+1 is the virtual sink.
//   - every real edge (i,j,w) is projected as undirected: both
//     M[i+1,j+1] and M[j+1,i+1] are set to w (cheapest, if parallel).
//   - M[0,start+1] = 0 (source reaches the start vertex for free).
//   - M[end+1,N+1] = 0 (the end vertex reaches the sink for free).
//   - every other off-diagonal entry is +Inf.
func (gr *Graph) CostMatrix(start, end int) (*CostMatrix, error) {
	n := gr.N()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("router: start vertex %d out of range [0,%d)", start, n)
	}
	if end < 0 || end >= n {
		return nil, fmt.Errorf("router: end vertex %d out of range [0,%d)", end, n)
	}

	m, err := NewCostMatrix(n + 2)
	if err != nil {
		return nil, err
	}

	for i, arcs := range gr.out {
		for _, a := range arcs {
			m.setIfLess(i+1, a.to+1, a.weight)
			m.setIfLess(a.to+1, i+1, a.weight)
		}
	}

	m.setIfLess(0, start+1, 0)
	m.setIfLess(end+1, n+1, 0)

	return m, nil
}
