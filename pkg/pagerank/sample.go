package pagerank

import (
	"fmt"

	"github.com/vertex-lab/corpusrank/pkg/models"
	"github.com/vertex-lab/corpusrank/pkg/transition"
)

/*
Sample estimates the pagerank of each page by simulating a random surfer for
the specified number of samples.

The surfer starts from a page chosen uniformly at random. At each step the
current page is counted, and the next page is drawn from its transition
distribution. The visit counts are then normalized by the number of samples,
so the result sums to 1.

It accepts a random number generator for reproducibility in tests.
*/
func Sample(G *models.Graph, damping float64, samples int, rng Rand) (models.RankVector, error) {
	if err := G.Validate(); err != nil {
		return nil, err
	}

	if err := transition.ValidateDamping(damping); err != nil {
		return nil, err
	}

	if samples < 1 {
		return nil, fmt.Errorf("%w: got %d", models.ErrInvalidSamples, samples)
	}

	if rng == nil {
		return nil, models.ErrNilRand
	}

	pages := G.Pages()
	visits := make(map[string]int, len(pages))
	for _, page := range pages {
		visits[page] = 0
	}

	currentPage := pages[rng.Intn(len(pages))]
	for i := 0; i < samples; i++ {
		visits[currentPage]++

		distribution, err := transition.Distribution(G, currentPage, damping)
		if err != nil {
			return nil, err
		}

		currentPage = WeightedChoice(pages, distribution, rng)
	}

	ranks := make(models.RankVector, len(pages))
	for page, count := range visits {
		ranks[page] = float64(count) / float64(samples)
	}

	return ranks, nil
}

// WeightedChoice() draws one of the pages with probability proportional to
// its weight in the distribution. Pages are scanned in the given order, which
// makes the draw reproducible for a fixed rng. Floating point rounding can
// leave the draw past the cumulative sum: in that case the last page with a
// positive weight is returned.
func WeightedChoice(pages []string, distribution models.Distribution, rng Rand) string {
	total := 0.0
	for _, page := range pages {
		total += distribution[page]
	}

	target := rng.Float64() * total
	cumulative := 0.0
	fallback := ""

	for _, page := range pages {
		weight := distribution[page]
		if weight <= 0 {
			continue
		}

		cumulative += weight
		fallback = page
		if target < cumulative {
			return page
		}
	}

	return fallback
}
