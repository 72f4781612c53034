// The corpus package builds the link graph of a directory of HTML pages.
package corpus

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/vertex-lab/corpusrank/pkg/models"
	"golang.org/x/net/html"
)

const Extension string = ".html"

/*
Load parses every HTML page in dir and returns the graph of their links.

A page is identified by its file name (e.g. "1.html"). Only the files ending
in ".html" directly inside dir are pages. The links of a page are the href of
its anchors; links to the page itself and links to names that are not pages
of the corpus are dropped.

Load returns an error wrapping models.ErrInvalidSource if dir or one of its
pages cannot be read.
*/
func Load(ctx context.Context, dir string) (*models.Graph, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrInvalidSource, err)
	}

	rawLinks := make(map[string][]string, len(entries))
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, Extension) {
			continue
		}

		links, err := loadPage(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", models.ErrInvalidSource, err)
		}

		rawLinks[name] = links
	}

	return models.NewGraph(rawLinks), nil
}

func loadPage(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	links, err := ExtractLinks(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %q: %w", path, err)
	}

	return links, nil
}

// ExtractLinks() returns the href values of all the anchors found in r, in
// order of appearance. Duplicates are kept.
func ExtractLinks(r io.Reader) ([]string, error) {
	links := []string{}
	tokenizer := html.NewTokenizer(r)

	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			if err := tokenizer.Err(); err != io.EOF {
				return nil, err
			}
			return links, nil

		case html.StartTagToken, html.SelfClosingTagToken:
			token := tokenizer.Token()
			if token.Data != "a" {
				continue
			}

			for _, attr := range token.Attr {
				if attr.Key == "href" {
					links = append(links, attr.Val)
					break
				}
			}
		}
	}
}
