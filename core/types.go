// Package core declares the Node, Edge, Arc and Network types together with
// the sentinel errors shared by every package in flownet.
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for network construction and lookup.
var (
	// ErrNetworkNil indicates a nil *Network was passed to a transform.
	ErrNetworkNil = errors.New("core: network is nil")

	// ErrEmptyNodeID indicates a node was declared with an empty ID.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrDuplicateNode indicates the same node ID was declared twice.
	ErrDuplicateNode = errors.New("core: duplicate node")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrNonPositiveCapacity indicates an edge with capacity ≤ 0.
	ErrNonPositiveCapacity = errors.New("core: edge capacity must be positive")

	// ErrDuplicateEdge indicates a forward edge (u,v) was declared twice.
	ErrDuplicateEdge = errors.New("core: duplicate edge")

	// ErrSelfLoop indicates an edge from a node to itself.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrNoSource indicates a network with no source-role node.
	ErrNoSource = errors.New("core: network has no source")

	// ErrNoSink indicates a network with no sink-role node.
	ErrNoSink = errors.New("core: network has no sink")
)

// NodeRole classifies a node within a flow network.
// Exactly one role per node; a valid network carries at least one
// RoleSource and at least one RoleSink node.
type NodeRole uint8

const (
	// RoleIntermediate is the default role: flow passes through.
	RoleIntermediate NodeRole = iota

	// RoleSource marks a node that emits flow.
	RoleSource

	// RoleSink marks a node that absorbs flow.
	RoleSink
)

// String returns the canonical lower-case role name.
func (r NodeRole) String() string {
	switch r {
	case RoleSource:
		return "source"
	case RoleSink:
		return "sink"
	default:
		return "intermediate"
	}
}

// ParseRole maps a role name to its NodeRole. The empty string maps to
// RoleIntermediate. Unknown names return an error wrapping ErrUnknownRole.
func ParseRole(s string) (NodeRole, error) {
	switch s {
	case "source":
		return RoleSource, nil
	case "sink":
		return RoleSink, nil
	case "intermediate", "":
		return RoleIntermediate, nil
	default:
		return RoleIntermediate, fmt.Errorf("%w: %q", ErrUnknownRole, s)
	}
}

// ErrUnknownRole indicates a role name outside {source, sink, intermediate}.
var ErrUnknownRole = errors.New("core: unknown node role")

// Node is a vertex of a flow network: an identifier plus its role.
type Node struct {
	// ID uniquely identifies this node within its Network.
	ID string

	// Role is the node's function in the network.
	Role NodeRole
}

// Edge is a directed, capacitated connection between two nodes.
// Capacity is strictly positive for every edge accepted by Builder.
type Edge struct {
	// From is the tail node ID.
	From string

	// To is the head node ID.
	To string

	// Capacity is the maximum flow this edge can carry.
	Capacity float64
}

// Arc is an ordered node pair. It keys every edge table in flownet
// (capacities, residuals, snapshots) — one flat table per concern instead
// of nested adjacency maps, so ownership of mutable state stays explicit.
type Arc struct {
	From string
	To   string
}

// Reverse returns the opposite orientation of a.
func (a Arc) Reverse() Arc {
	return Arc{From: a.To, To: a.From}
}

// String renders the arc as "u→v" for error messages and logs.
func (a Arc) String() string {
	return fmt.Sprintf("%s→%s", a.From, a.To)
}
