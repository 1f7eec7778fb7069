// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package annotate

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"

	"github.com/pdiddy/grammar-engine/pkg/types"
)

// temporalParsers holds one when parser per rule. A parser with a single
// rule reports a single match per Parse call, so neighbouring expressions
// ("Friday and tomorrow") are never merged into one cluster.
type temporalParsers struct {
	dates []*when.Parser
	times []*when.Parser
}

func newTemporalParsers() *temporalParsers {
	dateRules := []rules.Rule{
		en.Weekday(rules.Override),
		en.CasualDate(rules.Override),
		en.ExactMonthDate(rules.Override),
		en.Deadline(rules.Override),
		en.PastTime(rules.Override),
	}
	dateRules = append(dateRules, common.All...)

	timeRules := []rules.Rule{
		en.CasualTime(rules.Override),
		en.Hour(rules.Override),
		en.HourMinute(rules.Override),
	}
	return &temporalParsers{
		dates: singleRuleParsers(dateRules),
		times: singleRuleParsers(timeRules),
	}
}

func singleRuleParsers(rs []rules.Rule) []*when.Parser {
	parsers := make([]*when.Parser, 0, len(rs))
	for _, r := range rs {
		p := when.New(nil)
		p.Add(r)
		parsers = append(parsers, p)
	}
	return parsers
}

// scan finds every date and time expression in text.
func (t *temporalParsers) scan(text string, ref time.Time) ([]types.DateMatch, []types.TimeMatch, error) {
	found, err := scanTemporal(t.dates, text, ref)
	if err != nil {
		return nil, nil, fmt.Errorf("resolving dates: %w", err)
	}
	dates := make([]types.DateMatch, 0, len(found))
	for _, m := range found {
		dates = append(dates, types.DateMatch{
			Text:   m.text,
			Normal: normalize(m.text),
			Start:  m.at.Format(time.RFC3339),
		})
	}

	found, err = scanTemporal(t.times, text, ref)
	if err != nil {
		return nil, nil, fmt.Errorf("resolving times: %w", err)
	}
	times := make([]types.TimeMatch, 0, len(found))
	for _, m := range found {
		times = append(times, types.TimeMatch{
			Text:   m.text,
			Normal: normalize(m.text),
			Time:   m.at.Format("15:04"),
		})
	}
	return dates, times, nil
}

// temporalMatch is one expression found by a when parser.
type temporalMatch struct {
	text string
	at   time.Time
}

// Dates returns date expressions resolved against the reference time.
func (d *Document) Dates() []types.DateMatch { return d.dates }

// Times returns time-of-day expressions.
func (d *Document) Times() []types.TimeMatch { return d.times }

// scanTemporal walks text left to right. At each step every parser is run
// on the remainder and the earliest match wins, the longer one on a tie.
// Scanning resumes after the winning match.
func scanTemporal(parsers []*when.Parser, text string, ref time.Time) ([]temporalMatch, error) {
	var out []temporalMatch
	offset := 0
	for offset < len(text) {
		rest := text[offset:]

		best, bestStart := (*when.Result)(nil), -1
		for _, p := range parsers {
			r, err := p.Parse(rest, ref)
			if err != nil {
				return nil, fmt.Errorf("parsing at offset %d: %w", offset, err)
			}
			if r == nil || r.Text == "" {
				continue
			}
			start := locate(rest, r)
			if start < 0 {
				continue
			}
			if best == nil || start < bestStart || (start == bestStart && len(r.Text) > len(best.Text)) {
				best, bestStart = r, start
			}
		}
		if best == nil {
			break
		}

		if matched := trimEdges(best.Text); matched != "" {
			out = append(out, temporalMatch{text: matched, at: best.Time})
		}
		offset += bestStart + len(best.Text)
	}
	return out, nil
}

// locate returns the offset of r's text within s, or -1.
func locate(s string, r *when.Result) int {
	start := r.Index
	if start >= 0 && start+len(r.Text) <= len(s) && s[start:start+len(r.Text)] == r.Text {
		return start
	}
	return strings.Index(s, r.Text)
}

// trimEdges drops leading and trailing characters that are neither letters
// nor digits; rule patterns can capture the surrounding separators.
func trimEdges(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// normalize lower-cases s, collapses runs of whitespace, and trims
// punctuation at both ends.
func normalize(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(trimEdges(s)), " "))
}
