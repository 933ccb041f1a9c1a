package model

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/go-playground/validator/v10"
)

// validate is a singleton validator instance for distribution parameters
var validate = validator.New()

// Distribution models the failure behavior of a single component.
//
// ProbabilityOfFailure returns F(t), the probability the component has
// failed by time t. RandomFailureTime draws one failure time from the
// distribution using the supplied generator. HazardRate returns the
// instantaneous failure rate h(t).
type Distribution interface {
	ProbabilityOfFailure(t float64) float64
	RandomFailureTime(r *rand.Rand) float64
	HazardRate(t float64) float64
}

// Exponential is a constant-failure-rate distribution.
type Exponential struct {
	Rate float64 `validate:"gt=0"` // λ
}

// NewExponential validates the rate and returns the distribution.
func NewExponential(rate float64) (Exponential, error) {
	d := Exponential{Rate: rate}
	if err := validate.Struct(d); err != nil {
		return Exponential{}, fmt.Errorf("%w: exponential rate %g must be positive", ErrInvalidParameter, rate)
	}
	return d, nil
}

// ProbabilityOfFailure returns F(t) = 1 - exp(-λt).
func (d Exponential) ProbabilityOfFailure(t float64) float64 {
	if t <= 0 {
		return 0
	}
	return 1 - math.Exp(-d.Rate*t)
}

// RandomFailureTime draws a failure time with mean 1/λ.
func (d Exponential) RandomFailureTime(r *rand.Rand) float64 {
	return r.ExpFloat64() / d.Rate
}

// HazardRate returns the constant rate λ.
func (d Exponential) HazardRate(_ float64) float64 {
	return d.Rate
}

// Weibull is a two-parameter Weibull distribution.
type Weibull struct {
	Shape float64 `validate:"gt=0"` // β
	Scale float64 `validate:"gt=0"` // η
}

// NewWeibull validates shape and scale and returns the distribution.
func NewWeibull(shape, scale float64) (Weibull, error) {
	d := Weibull{Shape: shape, Scale: scale}
	if err := validate.Struct(d); err != nil {
		return Weibull{}, fmt.Errorf("%w: weibull shape %g and scale %g must be positive", ErrInvalidParameter, shape, scale)
	}
	return d, nil
}

// ProbabilityOfFailure returns F(t) = 1 - exp(-(t/η)^β).
func (d Weibull) ProbabilityOfFailure(t float64) float64 {
	if t <= 0 {
		return 0
	}
	return 1 - math.Exp(-math.Pow(t/d.Scale, d.Shape))
}

// RandomFailureTime draws via inverse-CDF sampling: η·(-ln(1-U))^(1/β).
func (d Weibull) RandomFailureTime(r *rand.Rand) float64 {
	u := r.Float64() // in [0,1), so 1-u never reaches zero
	return d.Scale * math.Pow(-math.Log(1-u), 1/d.Shape)
}

// HazardRate returns h(t) = (β/η)·(t/η)^(β-1).
func (d Weibull) HazardRate(t float64) float64 {
	if t < 0 {
		return 0
	}
	return (d.Shape / d.Scale) * math.Pow(t/d.Scale, d.Shape-1)
}

// LogNormal is a log-normal distribution parameterized by the mean and
// standard deviation of ln(T).
type LogNormal struct {
	Mu    float64
	Sigma float64 `validate:"gt=0"`
}

// NewLogNormal validates sigma and returns the distribution.
func NewLogNormal(mu, sigma float64) (LogNormal, error) {
	d := LogNormal{Mu: mu, Sigma: sigma}
	if err := validate.Struct(d); err != nil {
		return LogNormal{}, fmt.Errorf("%w: lognormal sigma %g must be positive", ErrInvalidParameter, sigma)
	}
	return d, nil
}

// ProbabilityOfFailure returns F(t) = Φ((ln t - μ)/σ).
func (d LogNormal) ProbabilityOfFailure(t float64) float64 {
	if t <= 0 {
		return 0
	}
	return stdNormalCDF((math.Log(t) - d.Mu) / d.Sigma)
}

// RandomFailureTime draws exp(μ + σ·Z) with Z standard normal.
func (d LogNormal) RandomFailureTime(r *rand.Rand) float64 {
	return math.Exp(d.Mu + d.Sigma*r.NormFloat64())
}

// HazardRate returns h(t) = f(t) / (1 - F(t)).
func (d LogNormal) HazardRate(t float64) float64 {
	if t <= 0 {
		return 0
	}
	z := (math.Log(t) - d.Mu) / d.Sigma
	pdf := math.Exp(-z*z/2) / (t * d.Sigma * math.Sqrt(2*math.Pi))
	survival := 1 - stdNormalCDF(z)
	if survival <= 0 {
		return math.Inf(1)
	}
	return pdf / survival
}

// stdNormalCDF is Φ, the standard normal CDF.
func stdNormalCDF(x float64) float64 {
	return 0.5 * math.Erfc(-x/math.Sqrt2)
}
