package netgen

import "github.com/katalvlaran/flownet/core"

// Example returns the fixed seven-node demo network:
//
//	nodes: 0 source, 6 sink, 1–5 intermediate
//	edges: 0→1(15), 0→2(12), 0→3(10), 1→2(8), 2→3(5), 3→4(6),
//	       4→5(3), 5→2(7), 1→4(10), 4→6(12), 5→6(15)
//
// Its maximum flow is 15, limited by node 4's outgoing arcs (12 to the sink
// directly, 3 via 5).
func Example() *core.Network {
	net, err := core.NewBuilder().
		AddNode("0", core.RoleSource).
		AddNode("1", core.RoleIntermediate).
		AddNode("2", core.RoleIntermediate).
		AddNode("3", core.RoleIntermediate).
		AddNode("4", core.RoleIntermediate).
		AddNode("5", core.RoleIntermediate).
		AddNode("6", core.RoleSink).
		AddEdge("0", "1", 15).
		AddEdge("0", "2", 12).
		AddEdge("0", "3", 10).
		AddEdge("1", "2", 8).
		AddEdge("2", "3", 5).
		AddEdge("3", "4", 6).
		AddEdge("4", "5", 3).
		AddEdge("5", "2", 7).
		AddEdge("1", "4", 10).
		AddEdge("4", "6", 12).
		AddEdge("5", "6", 15).
		Build()
	if err != nil {
		// The example is a compile-time constant shape; failure is a defect.
		panic(err)
	}

	return net
}
