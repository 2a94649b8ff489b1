// Package netgen produces flow networks for demos, tests, and benchmarks:
// seeded random networks with configurable terminal counts and capacity
// ranges, plus a fixed worked example with a known maximum flow.
//
// Generation is fully deterministic for a given Config — the same seed
// always yields the same network — so generated fixtures replay identically
// across runs and machines.
package netgen

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/flownet/core"
)

// ErrBadConfig indicates an unsatisfiable generator configuration.
var ErrBadConfig = errors.New("netgen: invalid generator config")

// Config describes a random network to generate.
type Config struct {
	// Nodes is the total node count (≥ 2).
	Nodes int

	// Edges is the number of distinct directed edges (0 ≤ Edges ≤ Nodes·(Nodes-1)).
	Edges int

	// Sources and Sinks are the terminal counts (each ≥ 1,
	// Sources+Sinks ≤ Nodes).
	Sources int
	Sinks   int

	// MinCapacity and MaxCapacity bound the uniform capacity draw
	// (0 < MinCapacity ≤ MaxCapacity).
	MinCapacity float64
	MaxCapacity float64

	// Seed drives the generator; equal seeds yield equal networks.
	Seed int64
}

// validate reports the first configuration violation.
func (c Config) validate() error {
	switch {
	case c.Nodes < 2:
		return fmt.Errorf("%w: need at least 2 nodes, got %d", ErrBadConfig, c.Nodes)
	case c.Sources < 1 || c.Sinks < 1:
		return fmt.Errorf("%w: need at least one source and one sink", ErrBadConfig)
	case c.Sources+c.Sinks > c.Nodes:
		return fmt.Errorf("%w: %d terminals exceed %d nodes", ErrBadConfig, c.Sources+c.Sinks, c.Nodes)
	case c.Edges < 0 || c.Edges > c.Nodes*(c.Nodes-1):
		return fmt.Errorf("%w: cannot place %d distinct edges on %d nodes", ErrBadConfig, c.Edges, c.Nodes)
	case c.MinCapacity <= 0:
		return fmt.Errorf("%w: MinCapacity must be positive, got %g", ErrBadConfig, c.MinCapacity)
	case c.MaxCapacity < c.MinCapacity:
		return fmt.Errorf("%w: MaxCapacity %g below MinCapacity %g", ErrBadConfig, c.MaxCapacity, c.MinCapacity)
	}

	return nil
}

// nodeID formats node i with zero padding so lexicographic ID order matches
// numeric order — the engine tie-breaks on ascending IDs.
func nodeID(i int) string {
	return fmt.Sprintf("n%04d", i)
}

// Random generates a network per cfg: Nodes nodes, Edges distinct directed
// edges drawn from a seeded shuffle of all ordered pairs, capacities uniform
// in [MinCapacity, MaxCapacity), and terminal roles assigned to a seeded
// shuffle of the node set.
//
// Complexity: O(N²) for the pair shuffle — intended for fixtures and
// benchmarks, not for generating very large graphs.
func Random(cfg Config) (*core.Network, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(cfg.Seed))

	// Roles: shuffled node order, sources first, then sinks.
	perm := rng.Perm(cfg.Nodes)
	roles := make([]core.NodeRole, cfg.Nodes)
	for i, n := range perm {
		switch {
		case i < cfg.Sources:
			roles[n] = core.RoleSource
		case i < cfg.Sources+cfg.Sinks:
			roles[n] = core.RoleSink
		default:
			roles[n] = core.RoleIntermediate
		}
	}

	b := core.NewBuilder()
	for i := 0; i < cfg.Nodes; i++ {
		b.AddNode(nodeID(i), roles[i])
	}

	// All ordered pairs, shuffled; the first cfg.Edges are kept.
	pairs := make([]core.Arc, 0, cfg.Nodes*(cfg.Nodes-1))
	for u := 0; u < cfg.Nodes; u++ {
		for v := 0; v < cfg.Nodes; v++ {
			if u != v {
				pairs = append(pairs, core.Arc{From: nodeID(u), To: nodeID(v)})
			}
		}
	}
	rng.Shuffle(len(pairs), func(i, j int) {
		pairs[i], pairs[j] = pairs[j], pairs[i]
	})
	for _, p := range pairs[:cfg.Edges] {
		capacity := cfg.MinCapacity + rng.Float64()*(cfg.MaxCapacity-cfg.MinCapacity)
		b.AddEdge(p.From, p.To, capacity)
	}

	return b.Build()
}
