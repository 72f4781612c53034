// The transition package defines the random surfer model shared by the
// pagerank estimators.
package transition

import (
	"fmt"

	"github.com/vertex-lab/corpusrank/pkg/models"
)

/*
Distribution returns the probability distribution over the next page a random
surfer visits, given that it currently is on page.

With probability damping the surfer follows one of the links of page, chosen
uniformly at random. With probability 1 - damping it jumps to any page of the
corpus, chosen uniformly at random. The two terms add up: a page linked by
page also receives its share of the random jump.

A dangling page (a page with no links) is treated as if it linked to every
page in the corpus, itself included, so the distribution is uniform.
*/
func Distribution(G *models.Graph, page string, damping float64) (models.Distribution, error) {
	if err := checkInputs(G, page, damping); err != nil {
		return nil, err
	}

	pages := G.Pages()
	N := float64(len(pages))
	distribution := make(models.Distribution, len(pages))

	if G.IsDangling(page) {
		for _, p := range pages {
			distribution[p] = 1.0 / N
		}
		return distribution, nil
	}

	jumpProbability := (1 - damping) / N
	linkProbability := damping / float64(G.OutDegree(page))

	for _, p := range pages {
		distribution[p] = jumpProbability
		if G.HasLink(page, p) {
			distribution[p] += linkProbability
		}
	}

	return distribution, nil
}

// ValidateDamping returns ErrInvalidDamping if damping is not in [0,1].
func ValidateDamping(damping float64) error {
	// written this way so that NaN is rejected too
	if !(damping >= 0 && damping <= 1) {
		return fmt.Errorf("%w: got %v", models.ErrInvalidDamping, damping)
	}
	return nil
}

func checkInputs(G *models.Graph, page string, damping float64) error {
	if err := G.Validate(); err != nil {
		return err
	}

	if err := ValidateDamping(damping); err != nil {
		return err
	}

	if !G.Contains(page) {
		return fmt.Errorf("%w: %q", models.ErrPageNotFound, page)
	}

	return nil
}
