// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package annotate

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// PastTense rewrites every present-tense verb to past tense and returns the
// full text. Everything other than the rewritten words is copied verbatim.
func (d *Document) PastTense() string {
	var b strings.Builder
	b.Grow(len(d.text))
	cursor := 0
	for i, sp := range d.spans {
		if !sp.aligned() {
			continue
		}
		past, ok := d.pastForm(i)
		if !ok || past == sp.text {
			continue
		}
		b.WriteString(d.text[cursor:sp.start])
		b.WriteString(past)
		cursor = sp.end
	}
	b.WriteString(d.text[cursor:])
	return b.String()
}

// pastForm returns the replacement for token i, or false when the token
// keeps its form.
func (d *Document) pastForm(i int) (string, bool) {
	sp := d.spans[i]
	lower := strings.ToLower(sp.text)

	var past string
	switch sp.tag {
	case "MD":
		p, ok := d.lex.Modals[lower]
		if !ok {
			return "", false
		}
		past = p
	case "VBP", "VBZ", "VB":
		if d.governed(i) {
			return "", false
		}
		if p, ok := d.lex.PresentForms[lower]; ok {
			past = p
		} else {
			base := lower
			if sp.tag == "VBZ" {
				base = baseFromThirdPerson(lower)
			}
			past = d.lex.inflectPast(base)
		}
	default:
		return "", false
	}

	// Clitics such as "'s" attach to the previous word; a full-word
	// replacement needs its own space.
	if strings.HasPrefix(sp.text, "'") && !strings.HasPrefix(past, "'") {
		return " " + past, true
	}
	return matchCase(sp.text, past), true
}

// governed reports whether the verb at i sits under a modal, "to", or a do
// auxiliary, looking back across adverbs and pronouns.
func (d *Document) governed(i int) bool {
	for j := i - 1; j >= 0; j-- {
		sp := d.spans[j]
		switch sp.tag {
		case "RB", "RBR", "RBS", "PRP":
			continue
		case "MD", "TO":
			return true
		}
		return d.lex.doAux[strings.ToLower(sp.text)] && strings.HasPrefix(sp.tag, "VB")
	}
	return false
}

// inflectPast applies the irregular table, then regular spelling rules.
func (l *lexicon) inflectPast(base string) string {
	if p, ok := l.IrregularVerbs[base]; ok {
		return p
	}
	n := len(base)
	switch {
	case n == 0:
		return base
	case strings.HasSuffix(base, "e"):
		return base + "d"
	case n > 1 && base[n-1] == 'y' && !isVowel(rune(base[n-2])):
		return base[:n-1] + "ied"
	case doublesFinalConsonant(base):
		return base + base[n-1:] + "ed"
	}
	return base + "ed"
}

// baseFromThirdPerson strips the third-person singular ending.
func baseFromThirdPerson(word string) string {
	switch {
	case strings.HasSuffix(word, "ies") && len(word) > 4:
		return strings.TrimSuffix(word, "ies") + "y"
	case strings.HasSuffix(word, "sses"), strings.HasSuffix(word, "shes"),
		strings.HasSuffix(word, "ches"), strings.HasSuffix(word, "xes"),
		strings.HasSuffix(word, "zes"), strings.HasSuffix(word, "oes"):
		return strings.TrimSuffix(word, "es")
	case strings.HasSuffix(word, "s") && !strings.HasSuffix(word, "ss"):
		return strings.TrimSuffix(word, "s")
	}
	return word
}

// doublesFinalConsonant is true for one-syllable consonant-vowel-consonant
// words ("stop", "plan") whose last letter is not w, x, or y.
func doublesFinalConsonant(word string) bool {
	n := len(word)
	if n < 3 {
		return false
	}
	c1, v, c2 := rune(word[n-3]), rune(word[n-2]), rune(word[n-1])
	if isVowel(c1) || !isVowel(v) || isVowel(c2) || strings.ContainsRune("wxy", c2) {
		return false
	}
	return vowelGroups(word) == 1
}

func vowelGroups(word string) int {
	groups := 0
	inGroup := false
	for _, r := range word {
		if isVowel(r) {
			if !inGroup {
				groups++
			}
			inGroup = true
		} else {
			inGroup = false
		}
	}
	return groups
}

func isVowel(r rune) bool {
	return strings.ContainsRune("aeiou", unicode.ToLower(r))
}

// matchCase gives word the capitalization pattern of original. Casers keep
// state between calls, so each call builds its own.
func matchCase(original, word string) string {
	letters, upper := 0, 0
	for _, r := range original {
		if unicode.IsLetter(r) {
			letters++
			if unicode.IsUpper(r) {
				upper++
			}
		}
	}
	switch {
	case letters > 1 && upper == letters:
		return cases.Upper(language.English).String(word)
	case upper > 0 && startsUpper(original):
		return cases.Title(language.English).String(word)
	}
	return word
}

func startsUpper(s string) bool {
	for _, r := range s {
		return unicode.IsUpper(r)
	}
	return false
}
