// Command reliability runs the full analysis pipeline over a YAML
// scenario: both cut-set engines with cross-check, exact unreliability,
// importance measures, and a Monte Carlo validation run.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/dd0wney/cluso-reliability/pkg/cutset"
	"github.com/dd0wney/cluso-reliability/pkg/logging"
	"github.com/dd0wney/cluso-reliability/pkg/metrics"
	"github.com/dd0wney/cluso-reliability/pkg/reliability"
	"github.com/dd0wney/cluso-reliability/pkg/simulation"
)

func main() {
	scenarioFile := flag.String("scenario", "scenario.yaml", "Scenario configuration file")
	trials := flag.Int("trials", 0, "Monte Carlo trials per time point (overrides scenario)")
	seed := flag.Int64("seed", time.Now().UnixNano(), "Random seed for the simulation")
	workers := flag.Int("workers", 0, "Simulation worker count (0 = all CPUs)")
	flag.Parse()

	logger := logging.NewDefaultLogger()
	registry := metrics.NewRegistry()

	scenario, err := LoadScenario(*scenarioFile)
	if err != nil {
		logger.Error("failed to load scenario", logging.Err(err))
		os.Exit(1)
	}
	net, err := scenario.BuildNetwork()
	if err != nil {
		logger.Error("failed to build network", logging.Err(err))
		os.Exit(1)
	}

	fmt.Printf("Reliability Analysis: %s\n", scenario.Name)
	fmt.Printf("==========================================\n\n")
	fmt.Printf("Components: %d\n\n", len(scenario.Components))

	// Structural analysis: both engines, cross-checked
	comparison, err := cutset.Compare(net)
	if err != nil {
		logger.Error("cut-set analysis failed", logging.Err(err))
		os.Exit(1)
	}
	registry.RecordComparison(
		comparison.MOCUS.Duration, comparison.BDD.Duration,
		comparison.MOCUS.Count, comparison.BDD.Count,
		comparison.Match,
	)
	logger.Info("cut-set comparison complete",
		logging.Duration("mocus", comparison.MOCUS.Duration),
		logging.Duration("bdd", comparison.BDD.Duration),
		logging.Int("cut_sets", comparison.MOCUS.Count),
	)

	fmt.Printf("Minimal Cut Sets (MOCUS %s, BDD %s, match=%t):\n",
		comparison.MOCUS.Duration, comparison.BDD.Duration, comparison.Match)
	if !comparison.Match {
		logger.Error("engine results disagree; MOCUS output used as reference")
	}
	for _, set := range comparison.MOCUS.Sets {
		fmt.Printf("  %v\n", set.Sorted())
	}
	if comparison.MOCUS.Result.Kind == cutset.KindPerfect {
		fmt.Printf("  (none: system is structurally perfect)\n")
	}
	fmt.Println()

	// Exact probability and importance per time point
	importance := reliability.NewImportance(net, comparison.MOCUS.Sets)
	for _, t := range scenario.TimePoints {
		probs := make(map[string]float64)
		for _, id := range net.ComponentIDs() {
			c, _ := net.Component(id)
			p, err := c.ProbabilityOfFailure(t)
			if err != nil {
				logger.Error("missing distribution", logging.String("component", id))
				os.Exit(1)
			}
			probs[id] = p
		}
		unrel, err := reliability.SystemUnreliability(comparison.MOCUS.Sets, probs)
		if err != nil {
			logger.Error("probability computation failed", logging.Err(err))
			os.Exit(1)
		}
		fmt.Printf("t=%-10g unreliability=%.6f reliability=%.6f\n", t, unrel, 1-unrel)

		birnbaum, err := importance.Birnbaum(t)
		if err != nil {
			logger.Error("importance computation failed", logging.Err(err))
			os.Exit(1)
		}
		criticality, err := importance.Criticality(t)
		if err != nil {
			logger.Error("importance computation failed", logging.Err(err))
			os.Exit(1)
		}
		for _, id := range net.ComponentIDs() {
			fmt.Printf("    %-20s birnbaum=%.6f criticality=%.6f\n", id, birnbaum[id], criticality[id])
		}
	}
	fmt.Println()

	// Monte Carlo validation
	simTrials := scenario.Trials
	if *trials > 0 {
		simTrials = *trials
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	simStart := time.Now()
	rows, err := simulation.Run(ctx, net, scenario.TimePoints, simulation.Config{
		Trials:  simTrials,
		Seed:    *seed,
		Workers: *workers,
		Progress: func(t, pct float64) {
			logger.Debug("simulation progress",
				logging.Float64("time", t), logging.Float64("percent", pct))
		},
	})
	if err != nil {
		logger.Error("simulation failed", logging.Err(err))
		os.Exit(1)
	}
	registry.RecordSimulation(time.Since(simStart), simTrials*len(rows))

	fmt.Printf("Monte Carlo (%d trials/point, seed %d):\n", simTrials, *seed)
	fmt.Printf("%-10s %-12s %-12s %-22s %s\n", "time", "reliability", "unreliab.", "95% CI", "failures")
	for _, row := range rows {
		fmt.Printf("%-10g %-12.6f %-12.6f [%.6f, %.6f]  %d/%d\n",
			row.Time, row.Reliability, row.Unreliability,
			row.CILower, row.CIUpper, row.Failures, row.Trials)
	}

	summary := simulation.Summarize(rows)
	fmt.Printf("\nMTTF estimate: %.4f\n", summary.MTTF)
	for threshold, at := range summary.ThresholdTimes {
		fmt.Printf("reliability fell to %.0f%% by t=%g\n", threshold*100, at)
	}
}
