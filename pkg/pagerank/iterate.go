package pagerank

import (
	"fmt"

	"github.com/vertex-lab/corpusrank/pkg/models"
	"github.com/vertex-lab/corpusrank/pkg/transition"
)

// ConvergenceError is returned by Iterate when the ranks are still changing
// after the maximum number of iterations.
type ConvergenceError struct {
	Iterations int
	Delta      float64 // the last max change of a rank
	Tolerance  float64
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("%v after %d iterations: max change %v, tolerance %v",
		models.ErrNotConverged, e.Iterations, e.Delta, e.Tolerance)
}

func (e *ConvergenceError) Unwrap() error {
	return models.ErrNotConverged
}

/*
Iterate computes the pagerank of each page by power iteration.

Every page starts with rank 1/N. Each iteration computes new ranks with Step,
and the process stops as soon as no rank changed by tolerance or more; the new
ranks are returned.

If the ranks haven't converged after maxIterations, Iterate returns the last
computed ranks together with a *ConvergenceError, which satisfies
errors.Is(err, models.ErrNotConverged). The caller decides whether the
best-effort ranks are good enough.
*/
func Iterate(G *models.Graph, damping, tolerance float64, maxIterations int) (models.RankVector, error) {
	if err := G.Validate(); err != nil {
		return nil, err
	}

	if err := transition.ValidateDamping(damping); err != nil {
		return nil, err
	}

	if err := validateIterate(tolerance, maxIterations); err != nil {
		return nil, err
	}

	ranks := models.Uniform(G.Pages())
	delta := 0.0

	for i := 0; i < maxIterations; i++ {
		newRanks := Step(G, damping, ranks)

		delta = models.MaxDiff(newRanks, ranks)
		ranks = newRanks

		if delta < tolerance {
			return ranks, nil
		}
	}

	return ranks, &ConvergenceError{
		Iterations: maxIterations,
		Delta:      delta,
		Tolerance:  tolerance,
	}
}

/*
Step performs one iteration of the pagerank recurrence:

	newRank(p) = (1 - d)/N + d * Σ rank(q)/outDegree(q) + d * danglingMass/N

where q ranges over the pages that link to p, and danglingMass is the total
rank of the pages with no links. Redistributing the dangling mass over all
pages keeps the ranks summing to 1.

Step doesn't validate its inputs; ranks must have an entry for every page of G.
*/
func Step(G *models.Graph, damping float64, ranks models.RankVector) models.RankVector {
	pages := G.Pages()
	N := float64(len(pages))

	danglingMass := 0.0
	for _, page := range pages {
		if G.IsDangling(page) {
			danglingMass += ranks[page]
		}
	}

	base := (1-damping)/N + damping*danglingMass/N
	newRanks := make(models.RankVector, len(pages))

	for _, page := range pages {
		linkMass := 0.0
		for _, backlink := range G.Backlinks(page) {
			linkMass += ranks[backlink] / float64(G.OutDegree(backlink))
		}

		newRanks[page] = base + damping*linkMass
	}

	return newRanks
}
