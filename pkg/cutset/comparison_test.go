package cutset

import (
	"testing"

	"github.com/dd0wney/cluso-reliability/pkg/model"
)

func TestCompare_BridgeMatches(t *testing.T) {
	net := bridgeNetwork(t)

	comparison, err := Compare(net)
	if err != nil {
		t.Fatalf("Compare failed: %v", err)
	}

	if !comparison.Match {
		t.Error("expected engines to agree on the bridge network")
	}
	if comparison.MOCUS.Count != 4 || comparison.BDD.Count != 4 {
		t.Errorf("counts = %d/%d, want 4/4", comparison.MOCUS.Count, comparison.BDD.Count)
	}
	if comparison.MOCUS.Duration < 0 || comparison.BDD.Duration < 0 {
		t.Error("negative engine duration")
	}
}

func TestCompare_PerfectSystemMatches(t *testing.T) {
	net := seriesNetwork(t, "c1")
	net.Connect(model.SourceID, model.SinkID)

	comparison, err := Compare(net)
	if err != nil {
		t.Fatalf("Compare failed: %v", err)
	}
	if !comparison.Match {
		t.Error("expected engines to agree on a perfect system")
	}
	if comparison.MOCUS.Count != 0 || comparison.BDD.Count != 0 {
		t.Errorf("counts = %d/%d, want 0/0", comparison.MOCUS.Count, comparison.BDD.Count)
	}
}

func TestCompare_PropagatesEngineErrors(t *testing.T) {
	net := model.NewNetwork() // no paths at all

	if _, err := Compare(net); err == nil {
		t.Error("expected an error for a network with no paths")
	}
}
