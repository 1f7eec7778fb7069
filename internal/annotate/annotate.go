// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package annotate turns raw text into an annotated document that can be
// queried by grammatical and entity category.
//
// Tokenization, part-of-speech tagging, and named-entity recognition come
// from prose; temporal expressions come from when. Token offsets are aligned
// back onto the input so that spans and rewrites keep the original spacing.
package annotate

import (
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/jdkato/prose/v2"
	"go.uber.org/zap"

	"github.com/pdiddy/grammar-engine/pkg/types"
)

// Annotator builds Documents. It is safe to reuse across inputs.
type Annotator struct {
	reference time.Time
	lex       *lexicon
	temporal  *temporalParsers
	log       *zap.Logger
}

// New returns an Annotator configured by cfg. A nil logger disables logging.
func New(cfg types.AnnotatorConfig, log *zap.Logger) (*Annotator, error) {
	if log == nil {
		log = zap.NewNop()
	}
	lex, err := loadLexicon(lexiconYAML)
	if err != nil {
		return nil, err
	}
	return &Annotator{
		reference: cfg.ReferenceTime,
		lex:       lex,
		temporal:  newTemporalParsers(),
		log:       log,
	}, nil
}

// span is a tagged token located in the source text. Start is -1 when the
// token text could not be found verbatim in the input.
type span struct {
	text  string
	tag   string
	start int
	end   int
}

func (s span) aligned() bool { return s.start >= 0 }

// Document is one annotated input. Queries return matches in document order,
// repeats included.
type Document struct {
	text     string
	spans    []span
	entities []prose.Entity
	dates    []types.DateMatch
	times    []types.TimeMatch
	lex      *lexicon
}

// Annotate tags text and resolves its dates and times. Input that is not
// valid UTF-8 is rejected, as is a temporal expression the date parser cannot
// resolve. Blank input produces an empty document without invoking the tagger.
func (a *Annotator) Annotate(text string) (*Document, error) {
	if !utf8.ValidString(text) {
		return nil, fmt.Errorf("annotating input: text is not valid UTF-8")
	}

	ref := a.reference
	if ref.IsZero() {
		ref = time.Now()
	}
	doc := &Document{
		text: text,
		lex:  a.lex,
	}
	if strings.TrimSpace(text) == "" {
		return doc, nil
	}

	start := time.Now()
	pd, err := prose.NewDocument(text)
	if err != nil {
		return nil, fmt.Errorf("annotating input: %w", err)
	}
	doc.spans = align(text, pd.Tokens())
	doc.entities = pd.Entities()

	doc.dates, doc.times, err = a.temporal.scan(text, ref)
	if err != nil {
		return nil, fmt.Errorf("annotating input: %w", err)
	}

	a.log.Debug("annotated input",
		zap.Int("bytes", len(text)),
		zap.Int("tokens", len(doc.spans)),
		zap.Int("entities", len(doc.entities)),
		zap.Duration("elapsed", time.Since(start)))
	return doc, nil
}

// align locates each token in text, scanning forward from the previous match.
func align(text string, tokens []prose.Token) []span {
	spans := make([]span, 0, len(tokens))
	cursor := 0
	for _, tok := range tokens {
		sp := span{text: tok.Text, tag: tok.Tag, start: -1, end: -1}
		if tok.Text != "" {
			if i := strings.Index(text[cursor:], tok.Text); i >= 0 {
				sp.start = cursor + i
				sp.end = sp.start + len(tok.Text)
				cursor = sp.end
			}
		}
		spans = append(spans, sp)
	}
	return spans
}

// Text returns the input the document was built from.
func (d *Document) Text() string { return d.text }

// People returns person names.
func (d *Document) People() []string {
	return d.entitiesLabelled("PERSON")
}

// Places returns geopolitical entities and locations.
func (d *Document) Places() []string {
	return d.entitiesLabelled("GPE", "LOC")
}

// Organizations returns ORG entities and proper-noun runs ending in an
// organization word such as "University" or "Festival", merged in the order
// they appear in the text.
func (d *Document) Organizations() []string {
	type located struct {
		pos  int
		text string
	}
	var found []located

	cursor := 0
	for _, name := range d.entitiesLabelled("ORG") {
		pos := len(d.text)
		if i := strings.Index(d.text[cursor:], name); i >= 0 {
			pos = cursor + i
			cursor = pos + len(name)
		}
		found = append(found, located{pos: pos, text: name})
	}
	for _, run := range d.runs(isProperNoun, isProperNoun) {
		first, last := d.spans[run[0]], d.spans[run[1]]
		if !d.lex.isOrganizationWord(last.text) {
			continue
		}
		pos := first.start
		if !first.aligned() {
			pos = len(d.text)
		}
		found = append(found, located{pos: pos, text: d.spanText(run[0], run[1])})
	}

	sort.SliceStable(found, func(i, j int) bool { return found[i].pos < found[j].pos })
	var orgs []string
	for _, f := range found {
		orgs = append(orgs, f.text)
	}
	return orgs
}

func (d *Document) entitiesLabelled(labels ...string) []string {
	var out []string
	for _, ent := range d.entities {
		for _, l := range labels {
			if ent.Label == l {
				out = append(out, strings.TrimSpace(ent.Text))
				break
			}
		}
	}
	return out
}

// Nouns returns noun phrases: an optional determiner, possessive, adjective,
// or number prefix followed by nouns, ending on a noun.
func (d *Document) Nouns() []string {
	var out []string
	for _, run := range d.runs(isNominal, isNoun) {
		out = append(out, d.spanText(run[0], run[1]))
	}
	return out
}

// Verbs returns verb groups: modals and verbs, with adverbs allowed between
// them.
func (d *Document) Verbs() []string {
	var out []string
	for _, run := range d.runs(isVerbal, isVerb) {
		out = append(out, d.spanText(run[0], run[1]))
	}
	return out
}

// Terms returns every word token, punctuation excluded.
func (d *Document) Terms() []string {
	var out []string
	for _, sp := range d.spans {
		if hasWordRune(sp.text) {
			out = append(out, sp.text)
		}
	}
	return out
}

// PhoneNumbers returns phone numbers found in the raw text.
func (d *Document) PhoneNumbers() []string {
	return findPhoneNumbers(d.text)
}

// runs finds maximal stretches of tokens accepted by member and returns the
// index range of each stretch trimmed to end on a token accepted by head.
// Stretches with no head token are dropped.
func (d *Document) runs(member, head func(tag string) bool) [][2]int {
	var out [][2]int
	for i := 0; i < len(d.spans); {
		if !member(d.spans[i].tag) {
			i++
			continue
		}
		last := -1
		j := i
		for ; j < len(d.spans) && member(d.spans[j].tag); j++ {
			if head(d.spans[j].tag) {
				last = j
			}
		}
		if last >= 0 {
			out = append(out, [2]int{i, last})
		}
		i = j
	}
	return out
}

// spanText returns the source text covering tokens first..last. If any token
// is unaligned the token texts are joined with single spaces instead.
func (d *Document) spanText(first, last int) string {
	a, b := d.spans[first], d.spans[last]
	if a.aligned() && b.aligned() {
		return d.text[a.start:b.end]
	}
	parts := make([]string, 0, last-first+1)
	for _, sp := range d.spans[first : last+1] {
		parts = append(parts, sp.text)
	}
	return strings.Join(parts, " ")
}

func hasWordRune(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

func isNoun(tag string) bool {
	switch tag {
	case "NN", "NNS", "NNP", "NNPS":
		return true
	}
	return false
}

func isProperNoun(tag string) bool {
	return tag == "NNP" || tag == "NNPS"
}

func isNominal(tag string) bool {
	switch tag {
	case "DT", "PRP$", "JJ", "JJR", "JJS", "CD":
		return true
	}
	return isNoun(tag)
}

func isVerb(tag string) bool {
	return tag == "MD" || strings.HasPrefix(tag, "VB")
}

func isVerbal(tag string) bool {
	switch tag {
	case "RB", "RBR", "RBS":
		return true
	}
	return isVerb(tag)
}
