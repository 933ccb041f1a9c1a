package model

import (
	"fmt"

	"github.com/google/uuid"
)

// Component is a single element of the reliability network.
type Component struct {
	ID          string
	Name        string
	Description string

	// Distribution is the component's failure model. Analysis requires it;
	// a nil distribution is a configuration error surfaced by the engines,
	// never a silent default.
	Distribution Distribution
}

// NewComponent creates a component. An empty id is replaced with a
// generated UUID.
func NewComponent(id, name string, dist Distribution) *Component {
	if id == "" {
		id = uuid.NewString()
	}
	return &Component{ID: id, Name: name, Distribution: dist}
}

// ProbabilityOfFailure returns F(t) for this component, or
// ErrMissingDistribution when no failure model is attached.
func (c *Component) ProbabilityOfFailure(t float64) (float64, error) {
	if c.Distribution == nil {
		return 0, fmt.Errorf("%w: %s", ErrMissingDistribution, c.ID)
	}
	return c.Distribution.ProbabilityOfFailure(t), nil
}
