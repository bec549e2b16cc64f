// Package sim implements synthetic two-group dataset generation.
package sim

import (
	"errors"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/sartorproj/godiffexp/matrix"
)

// Config holds configuration for dataset generation.
type Config struct {
	NObs0      int     // Observations in the first group (default: 100)
	NObs1      int     // Observations in the second group (default: 100)
	NFeatures  int     // Number of features (default: 200)
	Dist       string  // Observation distribution: "normal" or "nb" (default: "normal")
	Mean       float64 // Baseline feature mean (default: 0; must be positive for "nb")
	SD         float64 // Observation standard deviation, "normal" only (default: 1)
	Dispersion float64 // Negative binomial dispersion, "nb" only (default: 2)
	FracDE     float64 // Fraction of differential features (default: 0)
	// FoldChange is the effect on differential features in the second group:
	// an additive mean shift for "normal", a multiplicative fold change for
	// "nb" (default: 1).
	FoldChange float64
	Seed       uint64 // PRNG seed; equal seeds reproduce the dataset (default: 1)
}

// DefaultConfig returns the default generation configuration: a pure null
// dataset of standard normal observations.
func DefaultConfig() *Config {
	return &Config{
		NObs0:      100,
		NObs1:      100,
		NFeatures:  200,
		Dist:       "normal",
		Mean:       0,
		SD:         1,
		Dispersion: 2,
		FracDE:     0,
		FoldChange: 1,
		Seed:       1,
	}
}

// Dataset represents a simulated two-group dataset.
type Dataset struct {
	X0   *matrix.Matrix // Observations of the first group
	X1   *matrix.Matrix // Observations of the second group
	IsDE []bool         // Per feature, whether the groups truly differ
}

// Generate simulates a two-group observation-by-feature dataset.
//
// All features of the first group and the non-differential features of the
// second group are drawn from the baseline distribution. The trailing
// FracDE fraction of features is differential: in the second group its mean
// is moved by FoldChange. With FracDE of zero the dataset is drawn entirely
// from the null hypothesis of no group difference.
func Generate(cfg *Config) (*Dataset, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if cfg.NObs0 < 2 || cfg.NObs1 < 2 {
		return nil, errors.New("each group needs at least two observations")
	}
	if cfg.NFeatures < 1 {
		return nil, errors.New("at least one feature is required")
	}
	if cfg.FracDE < 0 || cfg.FracDE > 1 {
		return nil, errors.New("fraction of differential features must be in [0, 1]")
	}
	switch cfg.Dist {
	case "normal":
	case "nb":
		if cfg.Mean <= 0 {
			return nil, errors.New("negative binomial observations need a positive mean")
		}
		if cfg.Dispersion <= 0 {
			return nil, errors.New("negative binomial dispersion must be positive")
		}
	default:
		return nil, errors.New("unknown observation distribution: " + cfg.Dist)
	}

	isDE := make([]bool, cfg.NFeatures)
	nDE := int(cfg.FracDE * float64(cfg.NFeatures))
	for j := cfg.NFeatures - nDE; j < cfg.NFeatures; j++ {
		isDE[j] = true
	}

	src := rand.NewPCG(cfg.Seed, cfg.Seed+1)

	x0 := make([][]float64, cfg.NObs0)
	for i := range x0 {
		row := make([]float64, cfg.NFeatures)
		for j := range row {
			row[j] = sample(cfg, cfg.Mean, src)
		}
		x0[i] = row
	}

	x1 := make([][]float64, cfg.NObs1)
	for i := range x1 {
		row := make([]float64, cfg.NFeatures)
		for j := range row {
			row[j] = sample(cfg, groupOneMean(cfg, isDE[j]), src)
		}
		x1[i] = row
	}

	m0, err := matrix.New(x0)
	if err != nil {
		return nil, err
	}
	m1, err := matrix.New(x1)
	if err != nil {
		return nil, err
	}
	return &Dataset{X0: m0, X1: m1, IsDE: isDE}, nil
}

func groupOneMean(cfg *Config, de bool) float64 {
	if !de {
		return cfg.Mean
	}
	if cfg.Dist == "nb" {
		return cfg.Mean * cfg.FoldChange
	}
	return cfg.Mean + cfg.FoldChange
}

func sample(cfg *Config, mean float64, src rand.Source) float64 {
	if cfg.Dist == "nb" {
		return sampleNB(mean, cfg.Dispersion, src)
	}
	return distuv.Normal{Mu: mean, Sigma: cfg.SD, Src: src}.Rand()
}

// sampleNB draws a negative binomial count as a gamma-Poisson mixture:
// lambda ~ Gamma(r, r/mu), count ~ Poisson(lambda), giving mean mu and
// variance mu + mu^2/r.
func sampleNB(mu, r float64, src rand.Source) float64 {
	lambda := distuv.Gamma{Alpha: r, Beta: r / mu, Src: src}.Rand()
	if lambda <= 0 {
		return 0
	}
	return distuv.Poisson{Lambda: lambda, Src: src}.Rand()
}
