// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dispatch

import (
	"strings"

	"github.com/pdiddy/grammar-engine/pkg/types"
)

const contextSeparator = ", "

// CombinedContext extracts people, places, dates, and organizations and
// returns them both as display strings and as the underlying lists.
// Dates in Raw keep document order without deduplication.
func CombinedContext(doc Document) types.CombinedContextResult {
	people := Unique(doc.People())
	places := Unique(doc.Places())
	dates := orEmpty(doc.Dates())
	orgs := Unique(doc.Organizations())

	return types.CombinedContextResult{
		Context: types.ContextStrings{
			People:        strings.Join(people, contextSeparator),
			Places:        strings.Join(places, contextSeparator),
			Dates:         strings.Join(dateLabels(dates), contextSeparator),
			Organizations: strings.Join(orgs, contextSeparator),
		},
		Raw: types.ContextRaw{
			People:        people,
			Places:        places,
			Dates:         dates,
			Organizations: orgs,
		},
	}
}

// dateLabels picks a display label per date: the matched text when present,
// otherwise the normal form. Dates with neither are skipped.
func dateLabels(dates []types.DateMatch) []string {
	labels := make([]string, 0, len(dates))
	for _, d := range dates {
		label := d.Text
		if label == "" {
			label = d.Normal
		}
		if label == "" {
			continue
		}
		labels = append(labels, label)
	}
	return labels
}
