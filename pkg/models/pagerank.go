package models

import (
	"errors"
	"math"
)

// Distribution associates each page with the probability that a random
// surfer visits it next.
type Distribution map[string]float64

// a map that associates each page with its corrisponding pagerank value
type RankVector map[string]float64

// Uniform() returns a RankVector where each of the pages has rank 1/N.
func Uniform(pages []string) RankVector {
	ranks := make(RankVector, len(pages))
	if len(pages) == 0 {
		return ranks
	}

	rank := 1.0 / float64(len(pages))
	for _, page := range pages {
		ranks[page] = rank
	}
	return ranks
}

// Sum() returns the sum of the probabilities of the distribution.
func (d Distribution) Sum() float64 {
	return sum(d)
}

// Sum() returns the sum of all the ranks.
func (r RankVector) Sum() float64 {
	return sum(r)
}

// computes the L1 distance between two maps who are supposed to have the same keys.
// if map 1 is nil or empty, it returns 0.0
func Distance(map1, map2 RankVector) float64 {
	distance := 0.0
	for key := range map1 {
		distance += math.Abs(map1[key] - map2[key])
	}
	return distance
}

// MaxDiff() computes the L-infinity distance between two maps who are
// supposed to have the same keys. If map 1 is nil or empty, it returns 0.0
func MaxDiff(map1, map2 RankVector) float64 {
	diff := 0.0
	for key := range map1 {
		diff = math.Max(diff, math.Abs(map1[key]-map2[key]))
	}
	return diff
}

func sum(m map[string]float64) float64 {
	total := 0.0
	for _, val := range m {
		total += val
	}
	return total
}

//--------------------------ERROR-CODES--------------------------

var ErrInvalidDamping = errors.New("damping factor should be a number between 0 and 1 (included)")
var ErrInvalidSamples = errors.New("the number of samples should be greater than zero")
var ErrInvalidTolerance = errors.New("tolerance should be greater than zero")
var ErrInvalidMaxIterations = errors.New("maxIterations should be greater than zero")
var ErrNilRand = errors.New("nil random number generator")
var ErrNotConverged = errors.New("pagerank did not converge")
