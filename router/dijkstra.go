package router

import (
	"container/heap"
	"math"
)

// Dijkstra computes single-source shortest distances from source to
// every vertex in gr. It returns minDistance, with +Inf for any vertex
// not reachable from source, and previous, with -1 for the source
// itself and for any unreachable vertex.
//
// Implementation follows lvlath/dijkstra's lazy-deletion min-heap: a
// relaxation pushes a new heap entry rather than decreasing an existing
// one, and a stale entry (one popped for a vertex already finalized) is
// simply skipped.
func (gr *Graph) Dijkstra(source int) (minDistance []float64, previous []int, err error) {
	n := gr.N()
	if source < 0 || source >= n {
		return nil, nil, ErrSourceNotFound
	}

	minDistance = make([]float64, n)
	previous = make([]int, n)
	visited := make([]bool, n)
	for i := range minDistance {
		minDistance[i] = math.Inf(1)
		previous[i] = -1
	}
	minDistance[source] = 0

	pq := make(nodePQ, 0, n)
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem{idx: source, dist: 0})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		u, d := item.idx, item.dist

		if visited[u] {
			continue
		}
		visited[u] = true

		for _, a := range gr.out[u] {
			nd := d + a.weight
			if nd >= minDistance[a.to] {
				continue
			}
			minDistance[a.to] = nd
			previous[a.to] = u
			heap.Push(&pq, &nodeItem{idx: a.to, dist: nd})
		}
	}

	return minDistance, previous, nil
}

// nodeItem is one entry in the Dijkstra priority queue.
type nodeItem struct {
	idx  int
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
