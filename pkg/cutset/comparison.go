package cutset

import (
	"time"

	"github.com/dd0wney/cluso-reliability/pkg/model"
)

// EngineResult captures one engine's run inside a comparison.
type EngineResult struct {
	Duration time.Duration
	Result   Structure
	Sets     []Set
	Count    int
}

// Comparison is the outcome of running both cut-set engines on the same
// network. Match is set-of-sets equality between the two result lists.
type Comparison struct {
	MOCUS EngineResult
	BDD   EngineResult
	Match bool
}

// Compare runs MOCUS and the decision-diagram engine independently on the
// same network snapshot, timing each, and checks that they produced the
// same minimal cut sets. Nothing is memoized between calls.
func Compare(net *model.Network) (Comparison, error) {
	start := time.Now()
	mocusResult, err := MOCUS(net)
	mocusTime := time.Since(start)
	if err != nil {
		return Comparison{}, err
	}

	start = time.Now()
	bddResult, err := BDD(net)
	bddTime := time.Since(start)
	if err != nil {
		return Comparison{}, err
	}

	mocusSets := mocusResult.CutSets()
	bddSets := bddResult.CutSets()

	return Comparison{
		MOCUS: EngineResult{Duration: mocusTime, Result: mocusResult, Sets: mocusSets, Count: len(mocusSets)},
		BDD:   EngineResult{Duration: bddTime, Result: bddResult, Sets: bddSets, Count: len(bddSets)},
		Match: setsEqual(mocusSets, bddSets),
	}, nil
}
