package flow

import "context"

// dfsFinder returns the first augmenting path discovered by depth-first
// descent along the fixed ascending neighbor order. No length guarantee —
// adversarial capacity patterns may force far more augmentations than BFS —
// but the final flow value is identical, since max flow is independent of
// the path strategy.
type dfsFinder struct{}

// DFS returns the depth-first PathFinder strategy.
func DFS() PathFinder { return dfsFinder{} }

// Name reports the strategy label.
func (dfsFinder) Name() string { return "dfs" }

// dfsFrame is one level of the explicit descent stack: a node plus the
// index of the next neighbor to try. The stack replaces recursion, so path
// length is bounded by memory rather than goroutine stack depth.
type dfsFrame struct {
	id  string
	idx int
}

// FindPath runs one depth-first search over arcs with residual capacity
// above epsilon. Each node is examined at most once per search; the stack
// of frames is itself the current path, so the result is cycle-free by
// construction.
//
// Steps:
//  1. Push source, fire visit(source).
//  2. While the stack is non-empty: if the top is the sink, the stack is
//     the path. Otherwise descend into the lowest-ID unseen admissible
//     neighbor; if none remains, pop (backtrack).
//  3. Stack empty → no augmenting path remains: return (nil, nil).
//
// Complexity: O(V + E) per search.
func (dfsFinder) FindPath(
	ctx context.Context,
	r *Residual,
	source, sink string,
	visit VisitFunc,
) ([]string, error) {
	seen := map[string]bool{source: true}
	stack := []dfsFrame{{id: source}}
	if visit != nil {
		visit(source)
	}

	for len(stack) > 0 {
		// Cancellation check once per step.
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		top := &stack[len(stack)-1]
		if top.id == sink {
			path := make([]string, len(stack))
			for i, f := range stack {
				path[i] = f.id
			}

			return path, nil
		}

		nbrs := r.Out(top.id)
		descended := false
		for top.idx < len(nbrs) {
			v := nbrs[top.idx]
			top.idx++
			if seen[v] || !r.admissible(top.id, v) {
				continue
			}
			seen[v] = true
			if visit != nil {
				visit(v)
			}
			stack = append(stack, dfsFrame{id: v})
			descended = true

			break
		}
		if !descended {
			// Exhausted every neighbor: backtrack.
			stack = stack[:len(stack)-1]
		}
	}

	return nil, nil
}
