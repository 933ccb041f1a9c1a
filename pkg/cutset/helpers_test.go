package cutset

import (
	"testing"

	"github.com/dd0wney/cluso-reliability/pkg/model"
)

func exponential(t *testing.T, rate float64) model.Distribution {
	t.Helper()
	d, err := model.NewExponential(rate)
	if err != nil {
		t.Fatalf("NewExponential failed: %v", err)
	}
	return d
}

// seriesNetwork builds source -> c1 -> ... -> cn -> sink.
func seriesNetwork(t *testing.T, ids ...string) *model.Network {
	t.Helper()
	net := model.NewNetwork()
	dist := exponential(t, 0.001)
	prev := model.SourceID
	for _, id := range ids {
		if err := net.AddComponent(model.NewComponent(id, id, dist)); err != nil {
			t.Fatalf("AddComponent failed: %v", err)
		}
		if err := net.Connect(prev, id); err != nil {
			t.Fatalf("Connect failed: %v", err)
		}
		prev = id
	}
	if err := net.Connect(prev, model.SinkID); err != nil {
		t.Fatalf("Connect failed: %v", err)
	}
	return net
}

// parallelNetwork builds source -> ci -> sink for each id.
func parallelNetwork(t *testing.T, ids ...string) *model.Network {
	t.Helper()
	net := model.NewNetwork()
	dist := exponential(t, 0.001)
	for _, id := range ids {
		if err := net.AddComponent(model.NewComponent(id, id, dist)); err != nil {
			t.Fatalf("AddComponent failed: %v", err)
		}
		net.Connect(model.SourceID, id)
		net.Connect(id, model.SinkID)
	}
	return net
}

// bridgeNetwork builds the classic 5-component bridge topology.
func bridgeNetwork(t *testing.T) *model.Network {
	t.Helper()
	net := model.NewNetwork()
	dist := exponential(t, 0.001)
	for _, id := range []string{"A", "B", "C", "D", "E"} {
		if err := net.AddComponent(model.NewComponent(id, id, dist)); err != nil {
			t.Fatalf("AddComponent failed: %v", err)
		}
	}
	for _, e := range [][2]string{
		{model.SourceID, "A"}, {model.SourceID, "D"},
		{"A", "B"}, {"D", "E"},
		{"A", "C"}, {"C", "E"},
		{"D", "C"}, {"C", "B"},
		{"B", model.SinkID}, {"E", model.SinkID},
	} {
		if err := net.Connect(e[0], e[1]); err != nil {
			t.Fatalf("Connect failed: %v", err)
		}
	}
	return net
}

// assertCutSets checks that the result holds exactly the expected sets.
func assertCutSets(t *testing.T, result Structure, expected ...Set) {
	t.Helper()
	if result.Kind != KindCutSets {
		t.Fatalf("expected KindCutSets, got %s", result.Kind)
	}
	if !setsEqual(result.Sets, expected) {
		got := make([][]string, 0, len(result.Sets))
		for _, s := range result.Sets {
			got = append(got, s.Sorted())
		}
		want := make([][]string, 0, len(expected))
		for _, s := range expected {
			want = append(want, s.Sorted())
		}
		t.Fatalf("cut sets = %v, want %v", got, want)
	}
}

// assertAntichain checks no returned set is a proper subset of another.
func assertAntichain(t *testing.T, sets []Set) {
	t.Helper()
	for i, a := range sets {
		for j, b := range sets {
			if i == j {
				continue
			}
			if a.SubsetOf(b) {
				t.Errorf("set %v is a subset of %v", a.Sorted(), b.Sorted())
			}
		}
	}
}
