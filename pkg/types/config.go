// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// DefaultStopWords are the function words unique_words discards before
// counting. Matching is case-insensitive.
var DefaultStopWords = []string{
	"the", "me", "him", "her", "she", "it", "hers", "his", "we", "I",
	"and", "or", "but", "a", "an", "of", "for", "in", "on", "at", "to", "by", "with",
}

// DefaultMinWordLength is the short-word cutoff for unique_words: words whose
// length is at or below it are discarded.
const DefaultMinWordLength = 2

// UniqueWordsConfig holds the filter applied by the unique_words operation.
type UniqueWordsConfig struct {
	// MinLength discards words with at most this many characters (default 2).
	MinLength int `json:"min_length" yaml:"min_length"`

	// StopWords lists words discarded regardless of length.
	StopWords []string `json:"stop_words" yaml:"stop_words"`
}

// DefaultUniqueWordsConfig returns the stock stop-word list and cutoff.
func DefaultUniqueWordsConfig() UniqueWordsConfig {
	stops := make([]string, len(DefaultStopWords))
	copy(stops, DefaultStopWords)
	return UniqueWordsConfig{
		MinLength: DefaultMinWordLength,
		StopWords: stops,
	}
}

// AnnotatorConfig holds settings for building annotated documents.
type AnnotatorConfig struct {
	// ReferenceTime anchors relative date expressions ("tomorrow", "Friday").
	// The zero value means the time of the run.
	ReferenceTime time.Time `json:"reference_time" yaml:"reference_time"`
}

// Config groups all settings read from flags, environment, and config file.
type Config struct {
	LogLevel    string            `json:"log_level" yaml:"log_level"`
	Annotator   AnnotatorConfig   `json:"annotator" yaml:"annotator"`
	UniqueWords UniqueWordsConfig `json:"unique_words" yaml:"unique_words"`
}
