// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dispatch

import (
	"strings"
	"unicode/utf8"

	"github.com/pdiddy/grammar-engine/pkg/types"
)

// wordFilter discards short words and stop words before frequency counting.
type wordFilter struct {
	minLength int
	stops     map[string]bool
}

func newWordFilter(cfg types.UniqueWordsConfig) wordFilter {
	stops := make(map[string]bool, len(cfg.StopWords))
	for _, w := range cfg.StopWords {
		stops[strings.ToLower(w)] = true
	}
	return wordFilter{minLength: cfg.MinLength, stops: stops}
}

func (f wordFilter) skip(word string) bool {
	return utf8.RuneCountInString(word) <= f.minLength || f.stops[strings.ToLower(word)]
}

// uniqueWords counts the lower-cased forms of every term that survives the
// filter and returns those seen exactly once, in first-occurrence order.
// "Cat" and "cat" share one count.
func (f wordFilter) uniqueWords(terms []string) []string {
	counts := make(map[string]int)
	var order []string
	for _, term := range terms {
		if f.skip(term) {
			continue
		}
		norm := strings.ToLower(term)
		if counts[norm] == 0 {
			order = append(order, norm)
		}
		counts[norm]++
	}

	out := make([]string, 0, len(order))
	for _, w := range order {
		if counts[w] == 1 {
			out = append(out, w)
		}
	}
	return out
}
