// Package e2e exercises the full analysis pipeline end to end: network
// construction, both cut-set engines with cross-check, exact probability,
// importance measures, and the Monte Carlo oracle.
package e2e

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dd0wney/cluso-reliability/pkg/cutset"
	"github.com/dd0wney/cluso-reliability/pkg/model"
	"github.com/dd0wney/cluso-reliability/pkg/reliability"
	"github.com/dd0wney/cluso-reliability/pkg/simulation"
)

const bridgeRate = 1e-4

func buildBridge(t *testing.T) *model.Network {
	t.Helper()
	net := model.NewNetwork()
	dist, err := model.NewExponential(bridgeRate)
	require.NoError(t, err)

	for _, id := range []string{"A", "B", "C", "D", "E"} {
		require.NoError(t, net.AddComponent(model.NewComponent(id, "Component "+id, dist)))
	}
	for _, e := range [][2]string{
		{model.SourceID, "A"}, {model.SourceID, "D"},
		{"A", "B"}, {"D", "E"},
		{"A", "C"}, {"C", "E"},
		{"D", "C"}, {"C", "B"},
		{"B", model.SinkID}, {"E", model.SinkID},
	} {
		require.NoError(t, net.Connect(e[0], e[1]))
	}
	return net
}

func TestBridgePipeline(t *testing.T) {
	net := buildBridge(t)

	// Structural analysis: both engines agree on the classic result.
	comparison, err := cutset.Compare(net)
	require.NoError(t, err)
	assert.True(t, comparison.Match, "engines must agree")
	require.Equal(t, 4, comparison.MOCUS.Count)

	expected := []cutset.Set{
		cutset.NewSet("A", "D"),
		cutset.NewSet("B", "E"),
		cutset.NewSet("A", "C", "E"),
		cutset.NewSet("B", "C", "D"),
	}
	for _, want := range expected {
		found := false
		for _, got := range comparison.MOCUS.Sets {
			if got.Equal(want) {
				found = true
				break
			}
		}
		assert.True(t, found, "missing cut set %v", want.Sorted())
	}

	// Exact probability at t=1000h.
	const at = 1000.0
	probs := make(map[string]float64)
	for _, id := range net.ComponentIDs() {
		c, ok := net.Component(id)
		require.True(t, ok)
		p, err := c.ProbabilityOfFailure(at)
		require.NoError(t, err)
		probs[id] = p
	}
	unreliability, err := reliability.SystemUnreliability(comparison.MOCUS.Sets, probs)
	require.NoError(t, err)
	assert.Greater(t, unreliability, 0.0)
	assert.Less(t, unreliability, 1.0)

	// Closed form for the bridge with identical components of
	// reliability r: R = 2r^2 + 2r^3 - 5r^4 + 2r^5.
	r := math.Exp(-bridgeRate * at)
	closedForm := 2*r*r + 2*math.Pow(r, 3) - 5*math.Pow(r, 4) + 2*math.Pow(r, 5)
	assert.InDelta(t, 1-closedForm, unreliability, 1e-9)

	// Importance: by symmetry A, B, D, E share a value and the bridge
	// component C matters least in this topology.
	importance := reliability.NewImportance(net, comparison.MOCUS.Sets)
	birnbaum, err := importance.Birnbaum(at)
	require.NoError(t, err)
	assert.InDelta(t, birnbaum["A"], birnbaum["E"], 1e-9)
	assert.InDelta(t, birnbaum["B"], birnbaum["D"], 1e-9)
	assert.Less(t, birnbaum["C"], birnbaum["A"])

	criticality, err := importance.Criticality(at)
	require.NoError(t, err)
	for id, value := range criticality {
		assert.GreaterOrEqual(t, value, 0.0, "criticality of %s", id)
		assert.LessOrEqual(t, value, 1.0, "criticality of %s", id)
	}

	// Monte Carlo oracle: the analytic reliability must sit within a
	// four-sigma band of the estimate.
	rows, err := simulation.Run(context.Background(), net, []float64{at}, simulation.Config{
		Trials:  100000,
		Seed:    42,
		Workers: 4,
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)

	analytic := closedForm
	sigma := math.Sqrt(analytic * (1 - analytic) / float64(rows[0].Trials))
	assert.InDelta(t, analytic, rows[0].Reliability, 4*sigma)
}

func TestDirectConnectionShortCircuit(t *testing.T) {
	net := buildBridge(t)
	require.NoError(t, net.Connect(model.SourceID, model.SinkID))

	comparison, err := cutset.Compare(net)
	require.NoError(t, err)
	assert.True(t, comparison.Match)
	assert.Equal(t, cutset.KindPerfect, comparison.MOCUS.Result.Kind)
	assert.Equal(t, cutset.KindPerfect, comparison.BDD.Result.Kind)

	unreliability, err := reliability.SystemUnreliability(comparison.MOCUS.Sets, map[string]float64{})
	require.NoError(t, err)
	assert.Zero(t, unreliability)
}
