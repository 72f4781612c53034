/*
The models package defines the fundamental structures used in this project.

Graph:
The immutable link graph of a corpus. Every page is identified by an opaque
string key (e.g. "1.html") and maps to the set of pages it links to.

Distribution, RankVector:
Probability maps over all the pages of a Graph, produced by the transition
model and by the pagerank estimators.
*/
package models

import (
	"errors"
	"slices"

	mapset "github.com/deckarep/golang-set/v2"
)

// PageSet is a set of page identifiers.
type PageSet mapset.Set[string]

// Graph represents the directed link graph of a corpus. It is read-only once
// built, so it can be shared between estimators and read concurrently.
type Graph struct {
	// the sorted page identifiers; every estimator iterates in this order
	pages []string

	// maps that associate each page with the set of its links/backlinks
	links     map[string]PageSet
	backlinks map[string]PageSet
}

// NewGraph() builds a Graph from the raw links of each page. Links to pages
// that are not keys of rawLinks and links of a page to itself are dropped;
// duplicated links collapse.
func NewGraph(rawLinks map[string][]string) *Graph {
	G := &Graph{
		pages:     make([]string, 0, len(rawLinks)),
		links:     make(map[string]PageSet, len(rawLinks)),
		backlinks: make(map[string]PageSet, len(rawLinks)),
	}

	for page := range rawLinks {
		G.pages = append(G.pages, page)
		G.links[page] = mapset.NewThreadUnsafeSet[string]()
		G.backlinks[page] = mapset.NewThreadUnsafeSet[string]()
	}
	slices.Sort(G.pages)

	for page, links := range rawLinks {
		for _, link := range links {
			if link == page {
				continue
			}

			if _, exists := G.links[link]; !exists {
				continue
			}

			G.links[page].Add(link)
			G.backlinks[link].Add(page)
		}
	}

	return G
}

// Validate() returns the appropriate error if the graph is nil or has no pages.
func (G *Graph) Validate() error {
	if G == nil {
		return ErrNilGraph
	}

	if len(G.pages) == 0 {
		return ErrEmptyCorpus
	}

	return nil
}

// Size() returns the number of pages in the graph.
func (G *Graph) Size() int {
	if G == nil {
		return 0
	}
	return len(G.pages)
}

// Pages() returns the page identifiers in lexicographic order.
// The returned slice is a copy and can be modified by the caller.
func (G *Graph) Pages() []string {
	if G == nil {
		return nil
	}
	return slices.Clone(G.pages)
}

// Contains() returns whether page is in the graph.
func (G *Graph) Contains(page string) bool {
	if G == nil {
		return false
	}
	_, exists := G.links[page]
	return exists
}

// Links() returns the sorted pages linked by page. It returns nil if the page
// is not in the graph.
func (G *Graph) Links(page string) []string {
	return sorted(lookup(G.linksMap(), page))
}

// Backlinks() returns the sorted pages that link to page. It returns nil if
// the page is not in the graph.
func (G *Graph) Backlinks(page string) []string {
	return sorted(lookup(G.backlinksMap(), page))
}

// HasLink() returns whether page links to target.
func (G *Graph) HasLink(page, target string) bool {
	links := lookup(G.linksMap(), page)
	return links != nil && links.Contains(target)
}

// OutDegree() returns the number of links of page, or 0 if it's not in the graph.
func (G *Graph) OutDegree(page string) int {
	links := lookup(G.linksMap(), page)
	if links == nil {
		return 0
	}
	return links.Cardinality()
}

// IsDangling() returns whether page has no links.
func (G *Graph) IsDangling(page string) bool {
	return G.OutDegree(page) == 0
}

func (G *Graph) linksMap() map[string]PageSet {
	if G == nil {
		return nil
	}
	return G.links
}

func (G *Graph) backlinksMap() map[string]PageSet {
	if G == nil {
		return nil
	}
	return G.backlinks
}

func lookup(index map[string]PageSet, page string) PageSet {
	set, exists := index[page]
	if !exists {
		return nil
	}
	return set
}

func sorted(set PageSet) []string {
	if set == nil {
		return nil
	}

	pages := set.ToSlice()
	slices.Sort(pages)
	return pages
}

//--------------------------ERROR-CODES--------------------------

var ErrNilGraph = errors.New("graph pointer is nil")
var ErrEmptyCorpus = errors.New("corpus has no pages")
var ErrPageNotFound = errors.New("page not found in the graph")
var ErrInvalidSource = errors.New("invalid corpus source")
