// Package flownet computes maximum flow in capacitated directed networks
// using the Ford–Fulkerson method, and keeps a deterministic, replayable
// history of every augmentation step.
//
// 🚀 What is flownet?
//
//	A small, focused library that brings together:
//		• core/    — immutable flow-network model: nodes with roles, positive capacities
//		• flow/    — residual graph, BFS/DFS augmenting-path search, the compute loop
//		• metrics/ — per-run counters, visit order, residual snapshots, Prometheus bridge
//		• netdef/  — declarative YAML network definitions
//		• netgen/  — seeded random networks and worked examples
//
// ✨ Why choose flownet?
//
//   - Deterministic – neighbor order is a fixed total order over node IDs,
//     so every run of the same network replays identically
//   - Replayable – per-step residual snapshots and metrics for external
//     rendering, reconstructed lazily from diffs
//   - Strategy-agnostic – breadth-first (Edmonds–Karp) and depth-first
//     finders behind one PathFinder capability, same max flow either way
//   - Cancelable – context checked between augmentations, never mid-push
//
// Quick ASCII example:
//
//	    s ──10──▶ a ──4──▶ t
//	    │         ▲        ▲
//	    10        2        9
//	    ▼         │        │
//	    b ────────┴────────┘
//
//	source s, sink t, max flow 13.
//
// Dive into the flow package docs for the full contract, error taxonomy,
// and complexity notes.
//
//	go get github.com/katalvlaran/flownet
package flownet
