package flow

import (
	"sort"

	"github.com/katalvlaran/flownet/core"
)

// MinCut derives the minimum cut certified by a terminal residual state:
// the set S of nodes still reachable from source over arcs with positive
// residual capacity, together with the total original capacity crossing
// from S to its complement. By max-flow/min-cut duality that capacity
// equals the maximum flow whenever snap is the final residual state of a
// completed computation.
//
// Returns the reachable set in ascending ID order.
//
// Complexity: O(V + E).
func MinCut(net *core.Network, snap Snapshot, source string) (reachable []string, capacity float64, err error) {
	if net == nil {
		return nil, 0, ErrNetworkNil
	}
	if !net.HasNode(source) {
		return nil, 0, ErrSourceNotFound
	}

	// Adjacency over the snapshot's arcs.
	out := make(map[string][]string, net.Order())
	for arc, c := range snap {
		if c > DefaultEpsilon {
			out[arc.From] = append(out[arc.From], arc.To)
		}
	}

	// BFS over admissible arcs.
	seen := map[string]bool{source: true}
	queue := []string{source}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range out[u] {
			if !seen[v] {
				seen[v] = true
				queue = append(queue, v)
			}
		}
	}

	for id := range seen {
		reachable = append(reachable, id)
	}
	sort.Strings(reachable)

	// Forward capacity across the (S, V∖S) partition.
	for _, e := range net.Edges() {
		if seen[e.From] && !seen[e.To] {
			capacity += e.Capacity
		}
	}

	return reachable, capacity, nil
}
