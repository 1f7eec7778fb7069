// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseOperation(t *testing.T) {
	tests := []struct {
		name   string
		want   Operation
		wantOK bool
	}{
		{name: "past_tense", want: OpPastTense, wantOK: true},
		{name: "locations", want: OpLocations, wantOK: true},
		{name: "combined_context", want: OpCombinedContext, wantOK: true},
		{name: "places", wantOK: false},
		{name: "Past_Tense", wantOK: false},
		{name: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseOperation(tt.name)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOperationsAreDistinct(t *testing.T) {
	seen := make(map[Operation]bool)
	for _, op := range Operations {
		assert.False(t, seen[op], "duplicate operation %s", op)
		seen[op] = true
	}
	assert.Len(t, Operations, 11)
}

func TestDefaultUniqueWordsConfig(t *testing.T) {
	cfg := DefaultUniqueWordsConfig()
	assert.Equal(t, 2, cfg.MinLength)
	assert.Contains(t, cfg.StopWords, "I")
	assert.Len(t, cfg.StopWords, 23)

	cfg.StopWords[0] = "changed"
	assert.Equal(t, "the", DefaultStopWords[0])
}
