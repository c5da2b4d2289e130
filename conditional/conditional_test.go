package conditional_test

import (
	"testing"

	"github.com/dinesharanathunga/mgtoolkit/conditional"
	"github.com/dinesharanathunga/mgtoolkit/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEdge(t *testing.T, invertex, outvertex core.Set, opts ...core.EdgeOption) *core.Edge {
	t.Helper()
	e, err := core.NewEdge(invertex, outvertex, opts...)
	require.NoError(t, err)
	return e
}

// seedMetagraph builds the X_v={1..7}, X_p={p1,p2} conditional metagraph
// from the seed scenarios: {1,2}->{3,4}[p1], {2}->{4,6}[p2],
// {3,4}->{5}[p1,p2], {4,6}->{5,7}[p1]. Bracketed propositions join the
// invertex alongside the variables they gate.
func seedMetagraph(t *testing.T) *conditional.ConditionalMetagraph {
	t.Helper()
	variables := core.NewSet("1", "2", "3", "4", "5", "6", "7")
	propositions := core.NewSet("p1", "p2")
	cm, err := conditional.NewConditionalMetagraph(variables, propositions)
	require.NoError(t, err)

	e1 := newEdge(t, core.NewSet("1", "2", "p1"), core.NewSet("3", "4"))
	e2 := newEdge(t, core.NewSet("2", "p2"), core.NewSet("4", "6"))
	e3 := newEdge(t, core.NewSet("3", "4", "p1", "p2"), core.NewSet("5"))
	e4 := newEdge(t, core.NewSet("4", "6", "p1"), core.NewSet("5", "7"))
	require.NoError(t, cm.AddEdgesFrom([]*core.Edge{e1, e2, e3, e4}))
	return cm
}

func TestNewConditionalMetagraph_RejectsOverlappingPartition(t *testing.T) {
	_, err := conditional.NewConditionalMetagraph(core.NewSet("1", "p1"), core.NewSet("p1", "p2"))
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrInvalidArgument)
}

func TestNewConditionalMetagraph_RejectsEmptyVariables(t *testing.T) {
	_, err := conditional.NewConditionalMetagraph(core.NewSet(), core.NewSet("p1"))
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrInvalidArgument)
}

func TestAddEdgesFrom_RejectsPropositionMixedIntoOutvertex(t *testing.T) {
	cm, err := conditional.NewConditionalMetagraph(core.NewSet("1", "2"), core.NewSet("p1"))
	require.NoError(t, err)

	bad := newEdge(t, core.NewSet("1"), core.NewSet("2", "p1"))
	err = cm.AddEdgesFrom([]*core.Edge{bad})
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrInvalidArgument)
}

func TestAddEdgesFrom_AllowsPropositionAsSoleOutvertex(t *testing.T) {
	cm, err := conditional.NewConditionalMetagraph(core.NewSet("1", "2"), core.NewSet("p1"))
	require.NoError(t, err)

	good := newEdge(t, core.NewSet("1"), core.NewSet("p1"))
	require.NoError(t, cm.AddEdgesFrom([]*core.Edge{good}))
	assert.Len(t, cm.Edges(), 1)
}

func TestGetContext_SeedScenarioFive(t *testing.T) {
	cm := seedMetagraph(t)

	context, err := cm.GetContext(core.NewSet("p1"), core.NewSet("p2"))
	require.NoError(t, err)

	assert.Len(t, context.Edges(), 2)
	assert.Len(t, context.Nodes(), 4)

	for _, e := range context.Edges() {
		assert.False(t, e.Invertex.Contains("p1"))
		assert.False(t, e.Invertex.Contains("p2"))
	}
}

func TestGetContext_RejectsOutOfPropositionsTrueProps(t *testing.T) {
	cm := seedMetagraph(t)
	_, err := cm.GetContext(core.NewSet("1"), core.NewSet("p2"))
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrRangeViolation)
}

func TestConnectivityPredicates_SeedScenarioSix(t *testing.T) {
	cm := seedMetagraph(t)

	source := core.NewSet("1", "3")
	target := core.NewSet("4")
	expressions := []string{"p1 | p2"}
	interpretations := []conditional.Interpretation{
		{
			{Proposition: "p1", Value: true},
			{Proposition: "p2", Value: false},
		},
	}

	connected, err := cm.IsConnected(source, target, expressions, interpretations)
	require.NoError(t, err)
	assert.False(t, connected)

	fully, err := cm.IsFullyConnected(source, target, expressions, interpretations)
	require.NoError(t, err)
	assert.False(t, fully)

	redundantly, err := cm.IsRedundantlyConnected(source, target, expressions, interpretations)
	require.NoError(t, err)
	assert.True(t, redundantly)

	nonRedundant, err := cm.IsNonRedundant(expressions, interpretations)
	require.NoError(t, err)
	assert.True(t, nonRedundant)
}

func TestValidateExpressions_RejectsUnknownToken(t *testing.T) {
	cm := seedMetagraph(t)
	_, err := cm.IsConnected(
		core.NewSet("1"), core.NewSet("4"),
		[]string{"p1 | p9"},
		[]conditional.Interpretation{{{Proposition: "p1", Value: true}, {Proposition: "p2", Value: false}}},
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrRangeViolation)
}

func TestGetProjection_DelegatesOverVariablesAndPropositions(t *testing.T) {
	cm := seedMetagraph(t)

	projected, err := cm.GetProjection(core.NewSet("1", "5"))
	require.NoError(t, err)
	require.NotNil(t, projected)
	for _, e := range projected.Edges() {
		assert.True(t, e.Invertex.IsSubsetOf(core.NewSet("1", "5", "p1", "p2")))
		assert.True(t, e.Outvertex.IsSubsetOf(core.NewSet("1", "5", "p1", "p2")))
	}
}

func TestGetAllMetapaths_StopsAtConfiguredCap(t *testing.T) {
	cm, err := conditional.NewConditionalMetagraph(
		core.NewSet("1", "2", "3", "4", "5", "6", "7"),
		core.NewSet("p1", "p2"),
		conditional.WithMetapathCap(1),
	)
	require.NoError(t, err)

	e1 := newEdge(t, core.NewSet("1", "2", "p1"), core.NewSet("3", "4"))
	e2 := newEdge(t, core.NewSet("2", "p2"), core.NewSet("4", "6"))
	e3 := newEdge(t, core.NewSet("3", "4", "p1", "p2"), core.NewSet("5"))
	e4 := newEdge(t, core.NewSet("4", "6", "p1"), core.NewSet("5", "7"))
	require.NoError(t, cm.AddEdgesFrom([]*core.Edge{e1, e2, e3, e4}))

	mps, err := cm.GetAllMetapaths()
	require.NoError(t, err)
	assert.LessOrEqual(t, len(mps), 1)
}

func TestHasConflicts_SingleActionValueIsNotConflicting(t *testing.T) {
	cm, err := conditional.NewConditionalMetagraph(core.NewSet("1", "2"), core.NewSet("action=stop"))
	require.NoError(t, err)

	e := newEdge(t, core.NewSet("1", "action=stop"), core.NewSet("2"))
	require.NoError(t, cm.AddEdgesFrom([]*core.Edge{e}))

	mps, err := cm.GetAllMetapathsFrom(core.NewSet("1", "action=stop"), core.NewSet("2"))
	require.NoError(t, err)
	require.Len(t, mps, 1)

	assert.False(t, cm.HasConflicts(mps[0]))
}

func TestHasConflicts_DistinctActionValuesConflict(t *testing.T) {
	cm, err := conditional.NewConditionalMetagraph(core.NewSet("1", "2", "3"), core.NewSet("action=stop", "action=go"))
	require.NoError(t, err)

	e1 := newEdge(t, core.NewSet("1", "action=stop"), core.NewSet("2"))
	e2 := newEdge(t, core.NewSet("2", "action=go"), core.NewSet("3"))
	require.NoError(t, cm.AddEdgesFrom([]*core.Edge{e1, e2}))

	mps, err := cm.GetAllMetapathsFrom(core.NewSet("1", "action=stop", "action=go"), core.NewSet("3"))
	require.NoError(t, err)
	require.NotEmpty(t, mps)

	var anyConflict bool
	for _, mp := range mps {
		if cm.HasConflicts(mp) {
			anyConflict = true
		}
	}
	assert.True(t, anyConflict)
}

func TestHasRedundancies_MatchesDominanceInversion(t *testing.T) {
	cm := seedMetagraph(t)
	mps, err := cm.GetAllMetapathsFrom(core.NewSet("1", "2"), core.NewSet("5"))
	require.NoError(t, err)
	if len(mps) == 0 {
		t.Skip("no metapath found for this fixture; nothing to assert redundancy on")
	}
	for _, mp := range mps {
		redundant, err := cm.HasRedundancies(mp)
		require.NoError(t, err)
		dominant, err := cm.IsDominantMetapath(mp)
		require.NoError(t, err)
		assert.Equal(t, !dominant, redundant)
	}
}
