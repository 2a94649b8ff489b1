package flow

import "context"

// bfsFinder finds the shortest (fewest-edge) augmenting path using a FIFO
// frontier — the Edmonds–Karp refinement of Ford–Fulkerson. Always choosing
// a shortest path bounds the number of augmentations by O(V·E), giving a
// polynomial worst case independent of capacity magnitudes.
type bfsFinder struct{}

// BFS returns the breadth-first PathFinder strategy.
func BFS() PathFinder { return bfsFinder{} }

// Name reports the strategy label.
func (bfsFinder) Name() string { return "bfs" }

// FindPath runs one breadth-first search over arcs with residual capacity
// above epsilon. Neighbors are expanded in ascending ID order, so the
// returned path is the lexicographically-least among equally short ones.
//
// Steps:
//  1. Seed the frontier with source.
//  2. Dequeue u, fire visit(u); if u is the sink, reconstruct via parents.
//  3. Enqueue each unseen admissible neighbor of u, ascending.
//  4. Frontier empty → no augmenting path remains: return (nil, nil).
//
// Complexity: O(V + E) per search.
func (bfsFinder) FindPath(
	ctx context.Context,
	r *Residual,
	source, sink string,
	visit VisitFunc,
) ([]string, error) {
	parent := make(map[string]string, len(r.out))
	seen := map[string]bool{source: true}
	queue := []string{source}

	for len(queue) > 0 {
		// Cancellation check once per dequeue.
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		u := queue[0]
		queue = queue[1:]
		if visit != nil {
			visit(u)
		}

		if u == sink {
			return rebuildPath(parent, source, sink), nil
		}

		for _, v := range r.Out(u) {
			if seen[v] || !r.admissible(u, v) {
				continue
			}
			seen[v] = true
			parent[v] = u
			queue = append(queue, v)
		}
	}

	return nil, nil
}

// rebuildPath walks the parent links from sink back to source and reverses
// them into a source→sink node sequence.
func rebuildPath(parent map[string]string, source, sink string) []string {
	path := []string{sink}
	for cur := sink; cur != source; {
		cur = parent[cur]
		path = append(path, cur)
	}
	// reverse in place to get source → sink
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
