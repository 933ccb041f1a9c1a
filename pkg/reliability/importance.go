package reliability

import (
	"github.com/dd0wney/cluso-reliability/pkg/cutset"
	"github.com/dd0wney/cluso-reliability/pkg/model"
)

// zeroUnreliability is the threshold below which system unreliability is
// treated as zero when normalizing criticality, avoiding division blow-up.
const zeroUnreliability = 1e-10

// Importance derives per-component sensitivity measures from a network
// and its minimal cut sets, using the inclusion-exclusion engine as the
// reliability subroutine.
type Importance struct {
	net  *model.Network
	sets []cutset.Set
}

// NewImportance binds a network snapshot and its cut sets.
func NewImportance(net *model.Network, sets []cutset.Set) *Importance {
	return &Importance{net: net, sets: sets}
}

// failureProbs evaluates every component's failure probability at t.
// A component without a distribution is a hard error.
func (im *Importance) failureProbs(t float64) (map[string]float64, error) {
	probs := make(map[string]float64)
	for _, id := range im.net.ComponentIDs() {
		c, _ := im.net.Component(id)
		p, err := c.ProbabilityOfFailure(t)
		if err != nil {
			return nil, err
		}
		probs[id] = p
	}
	return probs, nil
}

// Birnbaum computes, for each component, the difference between system
// reliability with that component forced working and forced failed:
//
//	I_B(i) = R(system | i works) - R(system | i fails)
func (im *Importance) Birnbaum(t float64) (map[string]float64, error) {
	probs, err := im.failureProbs(t)
	if err != nil {
		return nil, err
	}

	result := make(map[string]float64, len(probs))
	for id := range probs {
		saved := probs[id]

		probs[id] = 0 // forced working
		uWorking, err := SystemUnreliability(im.sets, probs)
		if err != nil {
			return nil, err
		}

		probs[id] = 1 // forced failed
		uFailed, err := SystemUnreliability(im.sets, probs)
		if err != nil {
			return nil, err
		}

		probs[id] = saved
		// (1-uWorking) - (1-uFailed)
		result[id] = uFailed - uWorking
	}
	return result, nil
}

// Criticality weights Birnbaum importance by the component's own failure
// probability relative to system unreliability:
//
//	I_C(i) = I_B(i) · P(i fails) / P(system fails)
//
// When system unreliability is numerically zero, every criticality is 0.
func (im *Importance) Criticality(t float64) (map[string]float64, error) {
	birnbaum, err := im.Birnbaum(t)
	if err != nil {
		return nil, err
	}
	probs, err := im.failureProbs(t)
	if err != nil {
		return nil, err
	}
	systemUnrel, err := SystemUnreliability(im.sets, probs)
	if err != nil {
		return nil, err
	}

	result := make(map[string]float64, len(birnbaum))
	for id, b := range birnbaum {
		if systemUnrel < zeroUnreliability {
			result[id] = 0
			continue
		}
		result[id] = b * probs[id] / systemUnrel
	}
	return result, nil
}
