package flow_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/flownet/core"
	"github.com/katalvlaran/flownet/flow"
)

// FinderSuite covers the two PathFinder strategies in isolation.
type FinderSuite struct {
	suite.Suite
	ctx context.Context
}

func (s *FinderSuite) SetupTest() {
	s.ctx = context.Background()
}

// scenarioA builds the reference network:
//
//	0→1(10), 0→2(10), 1→2(2), 1→3(4), 2→3(9); source 0, sink 3.
func (s *FinderSuite) scenarioA() *flow.Residual {
	net, err := core.NewBuilder().
		AddNode("0", core.RoleSource).
		AddNode("1", core.RoleIntermediate).
		AddNode("2", core.RoleIntermediate).
		AddNode("3", core.RoleSink).
		AddEdge("0", "1", 10).
		AddEdge("0", "2", 10).
		AddEdge("1", "2", 2).
		AddEdge("1", "3", 4).
		AddEdge("2", "3", 9).
		Build()
	require.NoError(s.T(), err)

	r, err := flow.NewResidual(net, 0)
	require.NoError(s.T(), err)

	return r
}

func (s *FinderSuite) TestBFSFindsFewestEdgePath() {
	r := s.scenarioA()

	path, err := flow.BFS().FindPath(s.ctx, r, "0", "3", nil)
	require.NoError(s.T(), err)
	// Two 2-edge paths exist; the ascending tie-break picks the one via 1.
	require.Equal(s.T(), []string{"0", "1", "3"}, path)
}

func (s *FinderSuite) TestDFSDescendsLowestIDFirst() {
	r := s.scenarioA()

	path, err := flow.DFS().FindPath(s.ctx, r, "0", "3", nil)
	require.NoError(s.T(), err)
	// Depth-first descent: 0→1, then 1→2 (lowest admissible), then 2→3.
	require.Equal(s.T(), []string{"0", "1", "2", "3"}, path)
}

func (s *FinderSuite) TestVisitOrder() {
	r := s.scenarioA()

	var bfsOrder []string
	_, err := flow.BFS().FindPath(s.ctx, r, "0", "3", func(id string) {
		bfsOrder = append(bfsOrder, id)
	})
	require.NoError(s.T(), err)
	require.Equal(s.T(), []string{"0", "1", "2", "3"}, bfsOrder, "frontier order: increasing distance, ascending IDs")

	var dfsOrder []string
	_, err = flow.DFS().FindPath(s.ctx, r, "0", "3", func(id string) {
		dfsOrder = append(dfsOrder, id)
	})
	require.NoError(s.T(), err)
	require.Equal(s.T(), []string{"0", "1", "2", "3"}, dfsOrder, "descent order along the first path")
}

func (s *FinderSuite) TestExhaustedResidualReturnsNil() {
	r := s.scenarioA()
	// Saturate the sink's incoming arcs.
	require.NoError(s.T(), r.Augment([]string{"0", "1", "3"}, 4))
	require.NoError(s.T(), r.Augment([]string{"0", "2", "3"}, 9))

	for _, f := range []flow.PathFinder{flow.BFS(), flow.DFS()} {
		path, err := f.FindPath(s.ctx, r, "0", "3", nil)
		require.NoError(s.T(), err, f.Name())
		require.Nil(s.T(), path, "%s: exhausted graph must signal termination, not error", f.Name())
	}
}

func (s *FinderSuite) TestReverseArcsBecomeTraversable() {
	r := s.scenarioA()
	// Push along 0→1→3; the reverse arc 1→0 now carries undo capacity.
	require.NoError(s.T(), r.Augment([]string{"0", "1", "3"}, 4))

	c, err := r.Capacity("1", "0")
	require.NoError(s.T(), err)
	require.Equal(s.T(), 4.0, c)

	// Both finders still reach the sink through 2, each along its own route.
	path, err := flow.BFS().FindPath(s.ctx, r, "0", "3", nil)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []string{"0", "2", "3"}, path)

	path, err = flow.DFS().FindPath(s.ctx, r, "0", "3", nil)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []string{"0", "1", "2", "3"}, path, "1→2 still admissible, so descent stays leftmost")
}

func (s *FinderSuite) TestCancellation() {
	r := s.scenarioA()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, f := range []flow.PathFinder{flow.BFS(), flow.DFS()} {
		_, err := f.FindPath(ctx, r, "0", "3", nil)
		require.ErrorIs(s.T(), err, context.Canceled, f.Name())
	}
}

func (s *FinderSuite) TestNames() {
	require.Equal(s.T(), "bfs", flow.BFS().Name())
	require.Equal(s.T(), "dfs", flow.DFS().Name())
}

func TestFinderSuite(t *testing.T) {
	suite.Run(t, new(FinderSuite))
}
