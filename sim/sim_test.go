package sim

import (
	"math"
	"testing"
)

func TestGenerateShapes(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NObs0 = 30
	cfg.NObs1 = 40
	cfg.NFeatures = 25

	ds, err := Generate(cfg)
	if err != nil {
		t.Fatalf("Failed to generate dataset: %v", err)
	}

	if ds.X0.Rows() != 30 || ds.X0.Cols() != 25 {
		t.Errorf("Group 0: expected 30x25, got %dx%d", ds.X0.Rows(), ds.X0.Cols())
	}
	if ds.X1.Rows() != 40 || ds.X1.Cols() != 25 {
		t.Errorf("Group 1: expected 40x25, got %dx%d", ds.X1.Rows(), ds.X1.Cols())
	}
	if len(ds.IsDE) != 25 {
		t.Errorf("Expected 25 labels, got %d", len(ds.IsDE))
	}
	for j, de := range ds.IsDE {
		if de {
			t.Errorf("Feature %d labeled differential in a null dataset", j)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NFeatures = 10
	cfg.Seed = 123

	ds1, err := Generate(cfg)
	if err != nil {
		t.Fatalf("Failed to generate dataset: %v", err)
	}
	ds2, err := Generate(cfg)
	if err != nil {
		t.Fatalf("Failed to generate dataset: %v", err)
	}

	for i := range ds1.X0.Values {
		for j := range ds1.X0.Values[i] {
			if ds1.X0.Values[i][j] != ds2.X0.Values[i][j] {
				t.Fatalf("Equal seeds must reproduce the dataset, diverged at (%d, %d)", i, j)
			}
		}
	}
}

func TestGenerateDifferentialShift(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NObs0 = 500
	cfg.NObs1 = 500
	cfg.NFeatures = 20
	cfg.FracDE = 0.5
	cfg.FoldChange = 3

	ds, err := Generate(cfg)
	if err != nil {
		t.Fatalf("Failed to generate dataset: %v", err)
	}

	nDE := 0
	for _, de := range ds.IsDE {
		if de {
			nDE++
		}
	}
	if nDE != 10 {
		t.Errorf("Expected 10 differential features, got %d", nDE)
	}

	mu0 := ds.X0.ColMeans()
	mu1 := ds.X1.ColMeans()
	for j, de := range ds.IsDE {
		shift := mu1[j] - mu0[j]
		if de {
			if math.Abs(shift-3) > 0.5 {
				t.Errorf("Differential feature %d: expected shift near 3, got %f", j, shift)
			}
		} else {
			if math.Abs(shift) > 0.5 {
				t.Errorf("Null feature %d: expected shift near 0, got %f", j, shift)
			}
		}
	}
}

func TestGenerateNegativeBinomial(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Dist = "nb"
	cfg.Mean = 50
	cfg.Dispersion = 2
	cfg.NObs0 = 500
	cfg.NObs1 = 500
	cfg.NFeatures = 5

	ds, err := Generate(cfg)
	if err != nil {
		t.Fatalf("Failed to generate dataset: %v", err)
	}

	for j := 0; j < ds.X0.Cols(); j++ {
		if ds.X0.ColMin(j) < 0 {
			t.Errorf("Feature %d: counts must be non-negative", j)
		}
	}

	// Mean 50 with dispersion 2 gives variance 50 + 2500/2 = 1300.
	mu := ds.X0.ColMeans()
	v := ds.X0.ColSampleVariances()
	for j := range mu {
		if math.Abs(mu[j]-50) > 10 {
			t.Errorf("Feature %d: expected mean near 50, got %f", j, mu[j])
		}
		if v[j] < 100 {
			t.Errorf("Feature %d: overdispersed counts expected, variance %f", j, v[j])
		}
	}
}

func TestGenerateValidation(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"too few observations", func(c *Config) { c.NObs0 = 1 }},
		{"no features", func(c *Config) { c.NFeatures = 0 }},
		{"bad fraction", func(c *Config) { c.FracDE = 1.5 }},
		{"unknown distribution", func(c *Config) { c.Dist = "cauchy" }},
		{"nb without positive mean", func(c *Config) { c.Dist = "nb"; c.Mean = 0 }},
		{"nb without positive dispersion", func(c *Config) { c.Dist = "nb"; c.Mean = 10; c.Dispersion = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			if _, err := Generate(cfg); err == nil {
				t.Error("Expected configuration error")
			}
		})
	}
}
