// Package core defines the immutable flow-network model: nodes tagged with
// a role (source, sink, intermediate), directed edges with strictly positive
// capacities, and the Builder that validates and freezes a Network.
//
// A Network is constructed once through a Builder and never mutated
// afterwards; every accessor is a pure read. This makes a Network safe to
// share across any number of concurrent flow computations — each computation
// derives its own private residual state from the shared Network.
//
// Determinism: every accessor that returns a collection (Nodes, Edges, Out,
// Sources, Sinks) returns it in ascending node-ID order. Algorithms built on
// top of core rely on this fixed total order for reproducible tie-breaking;
// it is enforced here rather than left to map iteration order.
//
// Errors:
//
//	ErrEmptyNodeID         - node ID is the empty string.
//	ErrDuplicateNode       - a node ID was declared twice.
//	ErrNodeNotFound        - an edge references an undeclared node.
//	ErrNonPositiveCapacity - an edge capacity is zero or negative.
//	ErrDuplicateEdge       - a forward edge (u,v) was declared twice.
//	ErrSelfLoop            - an edge from a node to itself.
//	ErrNoSource            - no node carries RoleSource.
//	ErrNoSink              - no node carries RoleSink.
//
// Complexity: Build is O(N log N + E log E) for the sorted indexes; all
// lookups are O(1), all sorted accessors O(k) for k returned items.
package core
