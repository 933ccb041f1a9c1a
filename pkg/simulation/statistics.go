package simulation

// Statistical post-processing of simulation output: MTTF, availability
// interpolation, and a threshold summary. Rows are assumed ordered by
// ascending time, which Run guarantees when its input time points are.

// MTTF estimates mean time to failure as the time-integral of the
// reliability curve, by the trapezoidal rule. Fewer than two rows yield 0.
func MTTF(rows []Row) float64 {
	if len(rows) < 2 {
		return 0
	}
	total := 0.0
	for i := 1; i < len(rows); i++ {
		dt := rows[i].Time - rows[i-1].Time
		total += dt * (rows[i].Reliability + rows[i-1].Reliability) / 2
	}
	return total
}

// Availability returns the reliability estimate at an arbitrary time by
// linear interpolation between the two nearest simulated points, clamping
// to the first or last row outside the simulated range.
func Availability(rows []Row, t float64) float64 {
	if len(rows) == 0 {
		return 0
	}
	if t <= rows[0].Time {
		return rows[0].Reliability
	}
	last := rows[len(rows)-1]
	if t >= last.Time {
		return last.Reliability
	}
	for i := 1; i < len(rows); i++ {
		if rows[i].Time < t {
			continue
		}
		lo, hi := rows[i-1], rows[i]
		if hi.Time == lo.Time {
			return hi.Reliability
		}
		frac := (t - lo.Time) / (hi.Time - lo.Time)
		return lo.Reliability + (hi.Reliability-lo.Reliability)*frac
	}
	return last.Reliability
}

// Summary condenses a simulation run.
type Summary struct {
	MTTF           float64
	MaxTime        float64
	MinReliability float64
	// ThresholdTimes maps a reliability threshold to the first simulated
	// time at which reliability fell to or below it. Thresholds never
	// crossed within the simulated range are absent.
	ThresholdTimes map[float64]float64
}

// summaryThresholds are the reliability levels reported by Summarize.
var summaryThresholds = []float64{0.9, 0.5, 0.1}

// Summarize computes the run summary. An empty run yields a zero Summary.
func Summarize(rows []Row) Summary {
	if len(rows) == 0 {
		return Summary{}
	}
	s := Summary{
		MTTF:           MTTF(rows),
		MaxTime:        rows[0].Time,
		MinReliability: rows[0].Reliability,
		ThresholdTimes: make(map[float64]float64),
	}
	for _, row := range rows {
		if row.Time > s.MaxTime {
			s.MaxTime = row.Time
		}
		if row.Reliability < s.MinReliability {
			s.MinReliability = row.Reliability
		}
	}
	for _, threshold := range summaryThresholds {
		for _, row := range rows {
			if row.Reliability <= threshold {
				s.ThresholdTimes[threshold] = row.Time
				break
			}
		}
	}
	return s
}
