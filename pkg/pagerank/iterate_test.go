package pagerank

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/vertex-lab/corpusrank/pkg/models"
)

func TestIterateInvalid(t *testing.T) {
	testCases := []struct {
		name          string
		graphType     string
		damping       float64
		tolerance     float64
		maxIterations int
		expectedError error
	}{
		{
			name:          "nil graph",
			graphType:     "nil",
			damping:       0.85,
			tolerance:     0.001,
			maxIterations: 100,
			expectedError: models.ErrNilGraph,
		},
		{
			name:          "empty graph",
			graphType:     "empty",
			damping:       0.85,
			tolerance:     0.001,
			maxIterations: 100,
			expectedError: models.ErrEmptyCorpus,
		},
		{
			name:          "invalid damping",
			graphType:     "triangle",
			damping:       1.5,
			tolerance:     0.001,
			maxIterations: 100,
			expectedError: models.ErrInvalidDamping,
		},
		{
			name:          "zero tolerance",
			graphType:     "triangle",
			damping:       0.85,
			tolerance:     0,
			maxIterations: 100,
			expectedError: models.ErrInvalidTolerance,
		},
		{
			name:          "zero maxIterations",
			graphType:     "triangle",
			damping:       0.85,
			tolerance:     0.001,
			maxIterations: 0,
			expectedError: models.ErrInvalidMaxIterations,
		},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			G := models.SetupGraph(test.graphType)
			ranks, err := Iterate(G, test.damping, test.tolerance, test.maxIterations)

			if !errors.Is(err, test.expectedError) {
				t.Fatalf("Iterate(): expected %v, got %v", test.expectedError, err)
			}

			if ranks != nil {
				t.Errorf("Iterate(): expected nil, got %v", ranks)
			}
		})
	}
}

func TestStep(t *testing.T) {
	t.Run("dangling page", func(t *testing.T) {
		G := models.SetupGraph("dangling")
		ranks := models.RankVector{"a": 0.5, "b": 0.5}

		newRanks := Step(G, 0.85, ranks)
		expected := models.RankVector{"a": 0.7125, "b": 0.2875}

		for page, rank := range expected {
			if math.Abs(newRanks[page]-rank) > 1e-12 {
				t.Errorf("Step(): expected %v, got %v", expected, newRanks)
			}
		}
	})

	t.Run("symmetric graph is a fixed point", func(t *testing.T) {
		G := models.SetupGraph("symmetric")
		ranks := models.RankVector{"a": 0.5, "b": 0.5}

		newRanks := Step(G, 0.3, ranks)
		if models.MaxDiff(newRanks, ranks) > 1e-12 {
			t.Errorf("Step(): expected %v, got %v", ranks, newRanks)
		}
	})

	t.Run("mass is conserved", func(t *testing.T) {
		G := models.SetupGraph("acyclic")
		ranks := models.RankVector{"a": 0.4, "b": 0.1, "c": 0.1, "d": 0.1, "e": 0.3}

		newRanks := Step(G, 0.85, ranks)
		if sum := newRanks.Sum(); math.Abs(sum-1.0) > 1e-12 {
			t.Errorf("Step(): expected sum 1, got %v", sum)
		}
	})
}

func TestIterate(t *testing.T) {
	testCases := []struct {
		name      string
		graphType string
		damping   float64
		tolerance float64
		expected  models.RankVector
		precision float64
	}{
		{
			name:      "symmetric graph",
			graphType: "symmetric",
			damping:   0.6,
			tolerance: 0.001,
			expected:  models.RankVector{"a": 0.5, "b": 0.5},
			precision: 1e-12,
		},
		{
			name:      "all dandling pages",
			graphType: "dandlings",
			damping:   0.85,
			tolerance: 0.001,
			expected:  models.RankVector{"a": 0.2, "b": 0.2, "c": 0.2, "d": 0.2, "e": 0.2},
			precision: 1e-12,
		},
		{
			name:      "triangle graph",
			graphType: "triangle",
			damping:   0.85,
			tolerance: 0.001,
			expected:  models.RankVector{"a": 1.0 / 3, "b": 1.0 / 3, "c": 1.0 / 3},
			precision: 1e-12,
		},
		{
			name:      "dangling page",
			graphType: "dangling",
			damping:   0.85,
			tolerance: 1e-12,
			expected:  models.RankVector{"a": 0.6491228070175439, "b": 0.3508771929824561},
			precision: 1e-9,
		},
		{
			name:      "corpus0",
			graphType: "corpus0",
			damping:   0.85,
			tolerance: 0.001,
			expected:  models.RankVector{"1.html": 0.2202, "2.html": 0.4289, "3.html": 0.2202, "4.html": 0.1307},
			precision: 0.001,
		},
		{
			name:      "acyclic graph",
			graphType: "acyclic",
			damping:   0.85,
			tolerance: 1e-12,
			expected: models.RankVector{
				"a": 0.11184665823152856,
				"b": 0.3696042725421467,
				"c": 0.15938148798005203,
				"d": 0.24732092301474443,
				"e": 0.11184665823152856,
			},
			precision: 1e-9,
		},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			G := models.SetupGraph(test.graphType)

			ranks, err := Iterate(G, test.damping, test.tolerance, DefaultMaxIterations)
			if err != nil {
				t.Fatalf("Iterate(): expected nil, got %v", err)
			}

			if len(ranks) != len(test.expected) {
				t.Fatalf("Iterate(): expected %v, got %v", test.expected, ranks)
			}

			if diff := models.MaxDiff(test.expected, ranks); diff > test.precision {
				t.Errorf("Iterate(): expected %v, got %v", test.expected, ranks)
			}

			if sum := ranks.Sum(); math.Abs(sum-1.0) > test.tolerance {
				t.Errorf("Iterate(): expected sum 1, got %v", sum)
			}
		})
	}
}

func TestIterateNotConverged(t *testing.T) {
	G := models.SetupGraph("corpus0")

	ranks, err := Iterate(G, 0.85, 1e-6, 1)
	if !errors.Is(err, models.ErrNotConverged) {
		t.Fatalf("Iterate(): expected %v, got %v", models.ErrNotConverged, err)
	}

	var convErr *ConvergenceError
	if !errors.As(err, &convErr) {
		t.Fatalf("Iterate(): expected a *ConvergenceError, got %T", err)
	}

	if convErr.Iterations != 1 {
		t.Errorf("ConvergenceError: expected 1 iteration, got %d", convErr.Iterations)
	}

	if convErr.Delta < 1e-6 {
		t.Errorf("ConvergenceError: expected delta >= tolerance, got %v", convErr.Delta)
	}

	// the best-effort ranks are still returned
	expected := Step(G, 0.85, models.Uniform(G.Pages()))
	if models.MaxDiff(expected, ranks) != 0 {
		t.Errorf("Iterate(): expected %v, got %v", expected, ranks)
	}

	if sum := ranks.Sum(); math.Abs(sum-1.0) > 1e-12 {
		t.Errorf("Iterate(): expected sum 1, got %v", sum)
	}
}

func TestIterateRandomGraphs(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for _, size := range []int{10, 100, 500} {
		t.Run(fmt.Sprintf("size=%d", size), func(t *testing.T) {
			G := models.GenerateGraph(size, 3, rng)

			ranks, err := Iterate(G, 0.85, 0.001, DefaultMaxIterations)
			if err != nil {
				t.Fatalf("Iterate(): expected nil, got %v", err)
			}

			if sum := ranks.Sum(); math.Abs(sum-1.0) > 0.001 {
				t.Errorf("Iterate(): expected sum 1, got %v", sum)
			}
		})
	}
}

// ---------------------------------BENCHMARK----------------------------------

func BenchmarkIterate(b *testing.B) {
	edgesPerNode := 10
	rng := rand.New(rand.NewSource(69))

	for _, size := range []int{100, 1000, 5000} {
		b.Run(fmt.Sprintf("GraphSize=%d", size), func(b *testing.B) {
			G := models.GenerateGraph(size, edgesPerNode, rng)
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if _, err := Iterate(G, 0.85, 0.001, DefaultMaxIterations); err != nil {
					b.Fatalf("Benchmark failed: %v", err)
				}
			}
		})
	}
}
