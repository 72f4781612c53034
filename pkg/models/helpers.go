package models

import (
	"fmt"
	"math/rand"
)

// SetupGraph() returns a Graph setup based on the graphType. It's used in
// tests across packages.
func SetupGraph(graphType string) *Graph {
	switch graphType {

	case "nil":
		return nil

	case "empty":
		return NewGraph(map[string][]string{})

	case "one-page":
		return NewGraph(map[string][]string{"a": {}})

	case "dandlings":
		return NewGraph(map[string][]string{
			"a": {}, "b": {}, "c": {}, "d": {}, "e": {},
		})

	case "symmetric":
		return NewGraph(map[string][]string{
			"a": {"b"},
			"b": {"a"},
		})

	case "dangling":
		return NewGraph(map[string][]string{
			"a": {},
			"b": {"a"},
		})

	case "triangle":
		return NewGraph(map[string][]string{
			"a": {"b"},
			"b": {"c"},
			"c": {"a"},
		})

	case "no-dangling":
		return NewGraph(map[string][]string{
			"1": {"2", "3"},
			"2": {"3"},
			"3": {"2"},
		})

	case "corpus0":
		return NewGraph(map[string][]string{
			"1.html": {"2.html"},
			"2.html": {"1.html", "3.html"},
			"3.html": {"2.html", "4.html"},
			"4.html": {"2.html"},
		})

	case "acyclic":
		return NewGraph(map[string][]string{
			"a": {"b", "c"},
			"b": {},
			"c": {"d"},
			"d": {"b"},
			"e": {},
		})

	default:
		return nil // Default to nil for unrecognized scenarios
	}
}

// GenerateGraph() generates a random Graph of a specified number of pages and
// links per page. The links of a page won't include itself, and won't have repetitions.
func GenerateGraph(pagesNum, linksPerPage int, rng *rand.Rand) *Graph {
	if linksPerPage >= pagesNum {
		return nil
	}

	rawLinks := make(map[string][]string, pagesNum)
	for i := 0; i < pagesNum; i++ {
		page := pageName(i)
		seen := make(map[int]bool, linksPerPage)
		links := make([]string, 0, linksPerPage)

		for len(links) != linksPerPage {
			link := rng.Intn(pagesNum)
			if link == i || seen[link] {
				continue
			}

			seen[link] = true
			links = append(links, pageName(link))
		}

		rawLinks[page] = links
	}

	return NewGraph(rawLinks)
}

func pageName(i int) string {
	return fmt.Sprintf("%d.html", i)
}
