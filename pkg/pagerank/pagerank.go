/*
The pagerank package estimates the PageRank of the pages of a corpus.

Sample:
Simulates a long random surfer walk over the graph, and estimates the pagerank
of each page as the fraction of steps the surfer spent on it.

Iterate:
Solves the pagerank recurrence by power iteration, starting from the uniform
vector, until no page changes by more than the tolerance.

# REFERENCES

[1] S. Brin, L. Page; "The anatomy of a large-scale hypertextual Web search engine"
URL: http://infolab.stanford.edu/pub/papers/google.pdf
*/
package pagerank

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/vertex-lab/corpusrank/pkg/models"
	"github.com/vertex-lab/corpusrank/pkg/transition"
)

const (
	DefaultDamping       float64 = 0.85
	DefaultSamples       int     = 10000
	DefaultTolerance     float64 = 0.001
	DefaultMaxIterations int     = 1000
)

// Rand is the source of randomness used by Sample. *rand.Rand satisfies it.
type Rand interface {
	// Intn returns a pseudo-random number in [0,n).
	Intn(n int) int

	// Float64 returns a pseudo-random number in [0.0,1.0).
	Float64() float64
}

// NewRand() returns a Rand seeded with seed. If seed is zero, the current
// time is used.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// The parameters of the two estimators.
type Config struct {
	Damping       float64
	Samples       int
	Tolerance     float64
	MaxIterations int
	Seed          int64 // zero means time-seeded
}

// NewConfig() returns a config with default parameters.
func NewConfig() Config {
	return Config{
		Damping:       DefaultDamping,
		Samples:       DefaultSamples,
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
	}
}

// Validate() returns the appropriate error if one of the parameters is invalid.
func (c Config) Validate() error {
	if err := transition.ValidateDamping(c.Damping); err != nil {
		return err
	}

	if c.Samples < 1 {
		return fmt.Errorf("%w: got %d", models.ErrInvalidSamples, c.Samples)
	}

	return validateIterate(c.Tolerance, c.MaxIterations)
}

func (c Config) Print(w io.Writer) {
	fmt.Fprintln(w, "Pagerank:")
	fmt.Fprintf(w, "  Damping: %v\n", c.Damping)
	fmt.Fprintf(w, "  Samples: %d\n", c.Samples)
	fmt.Fprintf(w, "  Tolerance: %v\n", c.Tolerance)
	fmt.Fprintf(w, "  MaxIterations: %d\n", c.MaxIterations)
	fmt.Fprintf(w, "  Seed: %d\n", c.Seed)
}

func validateIterate(tolerance float64, maxIterations int) error {
	if !(tolerance > 0) {
		return fmt.Errorf("%w: got %v", models.ErrInvalidTolerance, tolerance)
	}

	if maxIterations < 1 {
		return fmt.Errorf("%w: got %d", models.ErrInvalidMaxIterations, maxIterations)
	}

	return nil
}
