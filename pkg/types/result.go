// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// DateMatch is one temporal expression recognized as a date.
type DateMatch struct {
	// Text is the expression exactly as it appears in the input.
	Text string `json:"text" yaml:"text"`

	// Normal is the lower-cased, whitespace-collapsed form of Text.
	Normal string `json:"normal" yaml:"normal"`

	// Start is the resolved instant in RFC 3339 form, relative to the
	// annotator's reference time.
	Start string `json:"start,omitempty" yaml:"start,omitempty"`
}

// TimeMatch is one temporal expression recognized as a time of day.
type TimeMatch struct {
	Text   string `json:"text" yaml:"text"`
	Normal string `json:"normal" yaml:"normal"`

	// Time is the resolved clock time as HH:MM on a 24-hour clock.
	Time string `json:"time,omitempty" yaml:"time,omitempty"`
}

// ExtractAllResult bundles the per-category extractions produced by the
// extract_all operation. Every list is deduplicated in first-occurrence order.
type ExtractAllResult struct {
	People []string    `json:"people" yaml:"people"`
	Places []string    `json:"places" yaml:"places"`
	Dates  []DateMatch `json:"dates" yaml:"dates"`
	Times  []TimeMatch `json:"times" yaml:"times"`
	Nouns  []string    `json:"nouns" yaml:"nouns"`
	Verbs  []string    `json:"verbs" yaml:"verbs"`
}

// ContextStrings holds comma-joined entity lists ready for display.
// Empty categories are empty strings, never omitted.
type ContextStrings struct {
	People        string `json:"people" yaml:"people"`
	Places        string `json:"places" yaml:"places"`
	Dates         string `json:"dates" yaml:"dates"`
	Organizations string `json:"organizations" yaml:"organizations"`
}

// ContextRaw holds the entity lists behind ContextStrings.
type ContextRaw struct {
	People        []string    `json:"people" yaml:"people"`
	Places        []string    `json:"places" yaml:"places"`
	Dates         []DateMatch `json:"dates" yaml:"dates"`
	Organizations []string    `json:"organizations" yaml:"organizations"`
}

// CombinedContextResult is the output of the combined_context operation.
type CombinedContextResult struct {
	Context ContextStrings `json:"context" yaml:"context"`
	Raw     ContextRaw     `json:"raw" yaml:"raw"`
}
