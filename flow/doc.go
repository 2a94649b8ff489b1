// Package flow computes maximum flow from a source to a sink in a
// capacitated directed network using the Ford–Fulkerson method, and records
// a deterministic, replayable history of every augmentation.
//
// The engine is split along the classic seams:
//
//   - Residual    — the only mutable structure: one flat arc→capacity table
//     derived once from a core.Network, with reverse arcs
//     created at construction time.
//   - PathFinder  — the search capability, with two interchangeable
//     strategies: BFS (fewest-edge paths, the Edmonds–Karp
//     refinement) and DFS (first path found, explicit stack).
//   - Bottleneck / Apply — pure augmentation arithmetic; Apply is the sole
//     place flow is pushed.
//   - Compute     — drives the loop: search, augment, accumulate, record.
//
// # Determinism
//
// Both finders visit neighbors in ascending node-ID order, enforced by the
// sorted adjacency index rather than map iteration order. Two runs over the
// same network always discover the same paths in the same order, so recorded
// histories replay identically.
//
// # History
//
// Compute returns a Result carrying the flow value, every augmenting path in
// discovery order, a metrics report per augmentation, and per-step residual
// snapshots. Snapshots are recorded as per-step diffs and materialized
// lazily by Result.Snapshots — the loop itself never deep-copies the
// residual table after the initial state.
//
// # Complexity
//
//	BFS (Edmonds–Karp): O(V·E²) time worst case, independent of capacities.
//	DFS (Ford–Fulkerson): O(E·F) time, F = max flow; fine for moderate
//	integral capacities, adversarial on pathological ones.
//	Memory: O(V + E) for the residual table plus O(E) per recorded step.
//
// # Errors
//
//	ErrNetworkNil     - nil network passed to Compute or NewResidual.
//	ErrSourceNotFound - the source node is missing from the network.
//	ErrSinkNotFound   - the sink node is missing from the network.
//	ErrSourceIsSink   - source and sink are the same node.
//	ErrArcNotFound    - a capacity query for an arc the residual graph
//	                    has never known in either direction.
//	ErrInvariant      - internal defect class: negative residual capacity
//	                    or a malformed path reaching the augmentor. Never
//	                    caused by user input, never retried.
//	context.Canceled / context.DeadlineExceeded - cooperative cancellation,
//	checked between augmentations, never mid-augmentation.
package flow
