package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dd0wney/cluso-reliability/pkg/model"
)

// Scenario is the YAML description of a network to analyze. The analysis
// core never reads files itself; this loader is the external collaborator
// that feeds it a NetworkModel.
type Scenario struct {
	Name       string            `yaml:"name"`
	Components []ComponentConfig `yaml:"components"`
	Edges      [][]string        `yaml:"edges"`
	TimePoints []float64         `yaml:"time_points"`
	Trials     int               `yaml:"trials"`
}

// ComponentConfig describes one component and its failure model.
type ComponentConfig struct {
	ID           string             `yaml:"id"`
	Name         string             `yaml:"name"`
	Description  string             `yaml:"description"`
	Distribution DistributionConfig `yaml:"distribution"`
}

// DistributionConfig selects a failure distribution variant.
type DistributionConfig struct {
	Type  string  `yaml:"type"` // exponential | weibull | lognormal
	Rate  float64 `yaml:"rate"`
	Shape float64 `yaml:"shape"`
	Scale float64 `yaml:"scale"`
	Mu    float64 `yaml:"mu"`
	Sigma float64 `yaml:"sigma"`
}

// LoadScenario reads and parses a scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	return &s, nil
}

// BuildNetwork constructs the network model from the scenario.
func (s *Scenario) BuildNetwork() (*model.Network, error) {
	net := model.NewNetwork()
	for _, cc := range s.Components {
		dist, err := cc.Distribution.build()
		if err != nil {
			return nil, fmt.Errorf("component %s: %w", cc.ID, err)
		}
		comp := model.NewComponent(cc.ID, cc.Name, dist)
		comp.Description = cc.Description
		if err := net.AddComponent(comp); err != nil {
			return nil, err
		}
	}
	for _, edge := range s.Edges {
		if len(edge) != 2 {
			return nil, fmt.Errorf("edge must have exactly two endpoints, got %v", edge)
		}
		if err := net.Connect(edge[0], edge[1]); err != nil {
			return nil, err
		}
	}
	return net, nil
}

func (dc DistributionConfig) build() (model.Distribution, error) {
	switch dc.Type {
	case "exponential":
		return model.NewExponential(dc.Rate)
	case "weibull":
		return model.NewWeibull(dc.Shape, dc.Scale)
	case "lognormal":
		return model.NewLogNormal(dc.Mu, dc.Sigma)
	default:
		return nil, fmt.Errorf("unknown distribution type %q", dc.Type)
	}
}
