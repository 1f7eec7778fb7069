// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dispatch maps an operation name to a result computed from an
// annotated document. It owns the data shaping layered over the annotator:
// order-preserving deduplication, unique-word filtering, and the combined
// context formatting.
package dispatch

import (
	"go.uber.org/zap"

	"github.com/pdiddy/grammar-engine/pkg/types"
)

// Document is the annotated-document surface the dispatcher queries.
// Every list is returned in document order and may contain repeats.
type Document interface {
	PastTense() string
	People() []string
	Places() []string
	Organizations() []string
	PhoneNumbers() []string
	Dates() []types.DateMatch
	Times() []types.TimeMatch
	Nouns() []string
	Verbs() []string
	Terms() []string
}

// Dispatcher runs one operation per call against a Document.
type Dispatcher struct {
	filter wordFilter
	log    *zap.Logger
}

// New returns a Dispatcher that applies cfg to the unique_words operation.
// A nil logger disables logging.
func New(cfg types.UniqueWordsConfig, log *zap.Logger) *Dispatcher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Dispatcher{
		filter: newWordFilter(cfg),
		log:    log,
	}
}

// Run computes the result of the named operation. An unrecognized name
// yields nil, which serializes as JSON null.
func (d *Dispatcher) Run(doc Document, name string) any {
	op, ok := types.ParseOperation(name)
	if !ok {
		d.log.Debug("unrecognized operation", zap.String("operation", name))
		return nil
	}
	d.log.Debug("running operation", zap.String("operation", string(op)))
	return d.run(doc, op)
}

func (d *Dispatcher) run(doc Document, op types.Operation) any {
	switch op {
	case types.OpPastTense:
		return doc.PastTense()
	case types.OpPeople:
		return Unique(doc.People())
	case types.OpPhoneNumbers:
		return Unique(doc.PhoneNumbers())
	case types.OpLocations:
		return Unique(doc.Places())
	case types.OpDates:
		return orEmpty(doc.Dates())
	case types.OpTimes:
		return orEmpty(doc.Times())
	case types.OpNouns:
		return Unique(doc.Nouns())
	case types.OpVerbs:
		return Unique(doc.Verbs())
	case types.OpUniqueWords:
		return d.filter.uniqueWords(doc.Terms())
	case types.OpExtractAll:
		return ExtractAll(doc)
	case types.OpCombinedContext:
		return CombinedContext(doc)
	}
	return nil
}

// ExtractAll gathers people, places, dates, times, nouns, and verbs in one
// pass, each deduplicated in first-occurrence order.
func ExtractAll(doc Document) types.ExtractAllResult {
	return types.ExtractAllResult{
		People: Unique(doc.People()),
		Places: Unique(doc.Places()),
		Dates:  Unique(doc.Dates()),
		Times:  Unique(doc.Times()),
		Nouns:  Unique(doc.Nouns()),
		Verbs:  Unique(doc.Verbs()),
	}
}

// Unique drops repeated elements, keeping each first occurrence in place.
// The result is never nil.
func Unique[T comparable](items []T) []T {
	seen := make(map[T]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		if _, dup := seen[item]; dup {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}

func orEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
