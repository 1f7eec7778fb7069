// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package annotate

import (
	_ "embed"
	"fmt"
	"strings"

	"go.yaml.in/yaml/v3"
)

//go:embed lexicon.yaml
var lexiconYAML []byte

// lexicon holds the word lists behind tense inflection and organization
// detection.
type lexicon struct {
	IrregularVerbs    map[string]string `yaml:"irregular_verbs"`
	PresentForms      map[string]string `yaml:"present_forms"`
	Modals            map[string]string `yaml:"modals"`
	DoAuxiliaries     []string          `yaml:"do_auxiliaries"`
	OrganizationWords []string          `yaml:"organization_words"`

	doAux    map[string]bool
	orgWords map[string]bool
}

func loadLexicon(data []byte) (*lexicon, error) {
	var lex lexicon
	if err := yaml.Unmarshal(data, &lex); err != nil {
		return nil, fmt.Errorf("parsing lexicon: %w", err)
	}
	if len(lex.IrregularVerbs) == 0 {
		return nil, fmt.Errorf("parsing lexicon: no irregular verbs")
	}
	lex.doAux = toSet(lex.DoAuxiliaries)
	lex.orgWords = toSet(lex.OrganizationWords)
	return &lex, nil
}

func toSet(words []string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[strings.ToLower(w)] = true
	}
	return set
}

func (l *lexicon) isOrganizationWord(word string) bool {
	return l.orgWords[strings.ToLower(strings.TrimSuffix(word, "."))]
}
