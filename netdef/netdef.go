// Package netdef loads flow networks from declarative YAML definitions.
//
// A definition lists nodes with optional roles and edges with capacities:
//
//	nodes:
//	  - id: s
//	    role: source
//	  - id: a
//	  - id: t
//	    role: sink
//	edges:
//	  - from: s
//	    to: a
//	    capacity: 4.5
//	  - from: a
//	    to: t
//	    capacity: 3
//
// Omitted roles default to intermediate. All structural validation —
// positive capacities, declared endpoints, duplicate detection, terminal
// presence — is delegated to core.Builder, so netdef adds no second error
// taxonomy of its own.
package netdef

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/flownet/core"
)

// NodeDef is one node entry of a YAML definition.
type NodeDef struct {
	ID   string `yaml:"id"`
	Role string `yaml:"role,omitempty"`
}

// EdgeDef is one edge entry of a YAML definition.
type EdgeDef struct {
	From     string  `yaml:"from"`
	To       string  `yaml:"to"`
	Capacity float64 `yaml:"capacity"`
}

// Definition is the root YAML document.
type Definition struct {
	Nodes []NodeDef `yaml:"nodes"`
	Edges []EdgeDef `yaml:"edges"`
}

// Parse unmarshals a YAML definition and builds the validated network.
func Parse(data []byte) (*core.Network, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("netdef: parse definition: %w", err)
	}

	return def.Build()
}

// Load reads a YAML definition from path and builds the validated network.
func Load(path string) (*core.Network, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("netdef: read %s: %w", path, err)
	}

	return Parse(data)
}

// Build converts the definition into a validated core.Network.
func (d Definition) Build() (*core.Network, error) {
	b := core.NewBuilder()
	for i, n := range d.Nodes {
		role, err := core.ParseRole(n.Role)
		if err != nil {
			return nil, fmt.Errorf("netdef: nodes[%d]: %w", i, err)
		}
		b.AddNode(n.ID, role)
	}
	for _, e := range d.Edges {
		b.AddEdge(e.From, e.To, e.Capacity)
	}

	net, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("netdef: %w", err)
	}

	return net, nil
}
