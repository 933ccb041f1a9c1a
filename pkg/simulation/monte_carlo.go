// Package simulation estimates system reliability by Monte Carlo sampling
// of component lifetimes, independent of the cut-set engines, so it can
// serve as a statistical oracle for the structural results.
package simulation

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/dd0wney/cluso-reliability/pkg/model"
	"github.com/dd0wney/cluso-reliability/pkg/parallel"
)

// z95 is the normal-approximation critical value for a 95% confidence
// interval on a binomial proportion.
const z95 = 1.96

// cancelCheckInterval is how many trials a worker runs between
// cooperative cancellation checks.
const cancelCheckInterval = 1024

// Progress receives advisory progress reports: the time point being
// simulated and percent of trials completed. It is invoked from worker
// goroutines but serialized by the engine; it must not block for long.
type Progress func(timePoint, percent float64)

// Config controls a simulation run.
type Config struct {
	// Trials per time point. Defaults to 10000.
	Trials int
	// Seed for the deterministic base of all per-worker generators.
	Seed int64
	// Workers caps parallelism. Defaults to runtime.NumCPU().
	Workers int
	// Progress, when non-nil, is called roughly once per 1% of trials.
	// It never affects the statistical result.
	Progress Progress
}

// Row is one simulated time point.
type Row struct {
	Time          float64
	Reliability   float64
	Unreliability float64
	CILower       float64
	CIUpper       float64
	Trials        int
	Failures      int
}

// Run estimates reliability at each requested time point. For every trial
// it samples one failure time per component; the system counts as failed
// when every source-sink path contains a component that failed at or
// before the time point.
//
// Preconditions are checked before any sampling: the network must have at
// least one path with components on it, and every component on a path
// must carry a distribution. The context is checked between trial batches
// and between time points; cancellation aborts with ctx.Err().
func Run(ctx context.Context, net *model.Network, timePoints []float64, cfg Config) ([]Row, error) {
	paths := net.ComponentPaths()
	if len(paths) == 0 {
		return nil, model.ErrNoPaths
	}

	comps, dists, err := pathComponents(net, paths)
	if err != nil {
		return nil, err
	}

	trials := cfg.Trials
	if trials <= 0 {
		trials = 10000
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > trials {
		workers = trials
	}

	rows := make([]Row, 0, len(timePoints))
	for ti, t := range timePoints {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		failures, err := simulatePoint(ctx, comps, dists, paths, t, trials, workers, cfg, ti)
		if err != nil {
			return nil, err
		}

		reliability := 1 - float64(failures)/float64(trials)
		margin := z95 * math.Sqrt(reliability*(1-reliability)/float64(trials))
		rows = append(rows, Row{
			Time:          t,
			Reliability:   reliability,
			Unreliability: 1 - reliability,
			CILower:       math.Max(0, reliability-margin),
			CIUpper:       math.Min(1, reliability+margin),
			Trials:        trials,
			Failures:      failures,
		})
	}
	return rows, nil
}

// pathComponents collects the distinct components appearing on any path,
// failing fast when one has no distribution.
func pathComponents(net *model.Network, paths [][]string) ([]string, map[string]model.Distribution, error) {
	dists := make(map[string]model.Distribution)
	var comps []string
	for _, path := range paths {
		for _, id := range path {
			if _, seen := dists[id]; seen {
				continue
			}
			c, ok := net.Component(id)
			if !ok {
				return nil, nil, fmt.Errorf("%w: %s", model.ErrUnknownNode, id)
			}
			if c.Distribution == nil {
				return nil, nil, fmt.Errorf("%w: %s", model.ErrMissingDistribution, id)
			}
			dists[id] = c.Distribution
			comps = append(comps, id)
		}
	}
	return comps, dists, nil
}

// simulatePoint runs the trials for a single time point, partitioned
// across the worker pool. Each worker owns its generator and accumulates
// a local failure count; the only shared state is the final reduction and
// the rate-limited progress counter.
func simulatePoint(
	ctx context.Context,
	comps []string,
	dists map[string]model.Distribution,
	paths [][]string,
	timePoint float64,
	trials, workers int,
	cfg Config,
	pointIndex int,
) (int, error) {
	pool, err := parallel.NewWorkerPool(workers)
	if err != nil {
		return 0, err
	}

	var (
		totalFailures int64
		completed     int64
		reported      int64 // last percent reported, serialized by progressMu
		progressMu    sync.Mutex
	)
	progressStep := int64(trials / 100)
	if progressStep == 0 {
		progressStep = 1
	}

	per := trials / workers
	extra := trials % workers
	for w := 0; w < workers; w++ {
		count := per
		if w < extra {
			count++
		}
		if count == 0 {
			continue
		}
		// Seed derived from the base seed, time point, and worker slot so
		// runs are reproducible and workers never share a generator.
		rng := rand.New(rand.NewSource(cfg.Seed + int64(pointIndex)*1_000_003 + int64(w)*7919))
		pool.Submit(func() {
			failures := 0
			sample := make(map[string]float64, len(comps))
			for trial := 0; trial < count; trial++ {
				if trial%cancelCheckInterval == 0 && ctx.Err() != nil {
					break
				}
				for _, id := range comps {
					sample[id] = dists[id].RandomFailureTime(rng)
				}
				if systemFailed(paths, sample, timePoint) {
					failures++
				}
				done := atomic.AddInt64(&completed, 1)
				if cfg.Progress != nil && done%progressStep == 0 {
					progressMu.Lock()
					if done > reported {
						reported = done
						cfg.Progress(timePoint, float64(done)/float64(trials)*100)
					}
					progressMu.Unlock()
				}
			}
			atomic.AddInt64(&totalFailures, int64(failures))
		})
	}
	pool.Wait()

	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return int(totalFailures), nil
}

// systemFailed reports whether every path is broken: each has at least
// one component whose sampled failure time is at or before the time point.
func systemFailed(paths [][]string, sample map[string]float64, timePoint float64) bool {
	for _, path := range paths {
		broken := false
		for _, id := range path {
			if sample[id] <= timePoint {
				broken = true
				break
			}
		}
		if !broken {
			return false
		}
	}
	return true
}
