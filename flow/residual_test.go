package flow_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/flownet/core"
	"github.com/katalvlaran/flownet/flow"
)

// ResidualSuite covers residual-graph materialization and augmentation.
type ResidualSuite struct {
	suite.Suite
}

// diamond builds s→a(4), s→b(2), a→t(3), b→t(3).
func (s *ResidualSuite) diamond() *core.Network {
	net, err := core.NewBuilder().
		AddNode("s", core.RoleSource).
		AddNode("a", core.RoleIntermediate).
		AddNode("b", core.RoleIntermediate).
		AddNode("t", core.RoleSink).
		AddEdge("s", "a", 4).
		AddEdge("s", "b", 2).
		AddEdge("a", "t", 3).
		AddEdge("b", "t", 3).
		Build()
	require.NoError(s.T(), err)

	return net
}

func (s *ResidualSuite) cap(r *flow.Residual, u, v string) float64 {
	c, err := r.Capacity(u, v)
	require.NoError(s.T(), err)

	return c
}

func (s *ResidualSuite) TestInitialization() {
	r, err := flow.NewResidual(s.diamond(), 0)
	require.NoError(s.T(), err)

	// Forward arcs carry full capacity, reverse arcs start empty.
	require.Equal(s.T(), 4.0, s.cap(r, "s", "a"))
	require.Equal(s.T(), 0.0, s.cap(r, "a", "s"))
	require.Equal(s.T(), 3.0, s.cap(r, "a", "t"))
	require.Equal(s.T(), 0.0, s.cap(r, "t", "a"))
}

func (s *ResidualSuite) TestNilNetworkRejected() {
	_, err := flow.NewResidual(nil, 0)
	require.ErrorIs(s.T(), err, flow.ErrNetworkNil)
}

func (s *ResidualSuite) TestUnknownArcLookup() {
	r, err := flow.NewResidual(s.diamond(), 0)
	require.NoError(s.T(), err)

	_, err = r.Capacity("s", "t") // no edge in either direction
	require.ErrorIs(s.T(), err, flow.ErrArcNotFound)
}

func (s *ResidualSuite) TestCounterEdgesPreserved() {
	// Explicit forward edges in both directions keep both capacities.
	net, err := core.NewBuilder().
		AddNode("s", core.RoleSource).
		AddNode("t", core.RoleSink).
		AddEdge("s", "t", 5).
		AddEdge("t", "s", 2).
		Build()
	require.NoError(s.T(), err)

	r, err := flow.NewResidual(net, 0)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 5.0, s.cap(r, "s", "t"))
	require.Equal(s.T(), 2.0, s.cap(r, "t", "s"))
}

func (s *ResidualSuite) TestAugmentMovesCapacityToReverse() {
	r, err := flow.NewResidual(s.diamond(), 0)
	require.NoError(s.T(), err)

	require.NoError(s.T(), r.Augment([]string{"s", "a", "t"}, 3))
	require.Equal(s.T(), 1.0, s.cap(r, "s", "a"))
	require.Equal(s.T(), 3.0, s.cap(r, "a", "s"))
	require.Equal(s.T(), 0.0, s.cap(r, "a", "t"))
	require.Equal(s.T(), 3.0, s.cap(r, "t", "a"))

	// Pair sums stay equal to the original capacities.
	require.Equal(s.T(), 4.0, s.cap(r, "s", "a")+s.cap(r, "a", "s"))
	require.Equal(s.T(), 3.0, s.cap(r, "a", "t")+s.cap(r, "t", "a"))
}

func (s *ResidualSuite) TestAugmentShortPathIsDefect() {
	r, err := flow.NewResidual(s.diamond(), 0)
	require.NoError(s.T(), err)

	err = r.Augment([]string{"s"}, 1)
	require.ErrorIs(s.T(), err, flow.ErrPathTooShort)
	require.ErrorIs(s.T(), err, flow.ErrInvariant)
}

func (s *ResidualSuite) TestOverAugmentIsInvariantViolation() {
	r, err := flow.NewResidual(s.diamond(), 0)
	require.NoError(s.T(), err)

	err = r.Augment([]string{"s", "b"}, 7) // capacity is 2
	require.ErrorIs(s.T(), err, flow.ErrInvariant)

	var ie flow.InvariantError
	require.True(s.T(), errors.As(err, &ie))
	require.Equal(s.T(), core.Arc{From: "s", To: "b"}, ie.Arc)
	require.Less(s.T(), ie.Residual, 0.0)
}

func (s *ResidualSuite) TestAugmentUnknownArc() {
	r, err := flow.NewResidual(s.diamond(), 0)
	require.NoError(s.T(), err)

	err = r.Augment([]string{"s", "t"}, 1)
	require.ErrorIs(s.T(), err, flow.ErrArcNotFound)
}

func (s *ResidualSuite) TestSnapshotIsIndependent() {
	r, err := flow.NewResidual(s.diamond(), 0)
	require.NoError(s.T(), err)

	before := r.Snapshot()
	require.NoError(s.T(), r.Augment([]string{"s", "a", "t"}, 2))

	// The earlier snapshot must not observe the augmentation.
	c, ok := before.Capacity("s", "a")
	require.True(s.T(), ok)
	require.Equal(s.T(), 4.0, c)

	after := r.Snapshot()
	c, ok = after.Capacity("s", "a")
	require.True(s.T(), ok)
	require.Equal(s.T(), 2.0, c)
}

func (s *ResidualSuite) TestSortedNeighborsIncludeReverseArcs() {
	r, err := flow.NewResidual(s.diamond(), 0)
	require.NoError(s.T(), err)

	// a's neighbors: reverse arc to s plus forward arc to t, ascending.
	require.Equal(s.T(), []string{"s", "t"}, r.Out("a"))
	require.Equal(s.T(), []string{"a", "b"}, r.Out("s"))
	require.True(s.T(), r.Has("b"))
	require.False(s.T(), r.Has("x"))
}

func TestResidualSuite(t *testing.T) {
	suite.Run(t, new(ResidualSuite))
}
