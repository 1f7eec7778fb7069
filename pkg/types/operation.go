// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Operation names one extraction the dispatcher can run over an annotated
// document. The string value is the command-line argument.
type Operation string

const (
	OpPastTense       Operation = "past_tense"
	OpPeople          Operation = "people"
	OpPhoneNumbers    Operation = "phone_numbers"
	OpLocations       Operation = "locations"
	OpDates           Operation = "dates"
	OpTimes           Operation = "times"
	OpNouns           Operation = "nouns"
	OpVerbs           Operation = "verbs"
	OpUniqueWords     Operation = "unique_words"
	OpExtractAll      Operation = "extract_all"
	OpCombinedContext Operation = "combined_context"
)

// Operations lists every recognized operation in the order they are documented.
var Operations = []Operation{
	OpPastTense,
	OpPeople,
	OpPhoneNumbers,
	OpLocations,
	OpDates,
	OpTimes,
	OpNouns,
	OpVerbs,
	OpUniqueWords,
	OpExtractAll,
	OpCombinedContext,
}

// ParseOperation maps a command-line argument to an Operation. The second
// return value is false for any name not in Operations.
func ParseOperation(name string) (Operation, bool) {
	for _, op := range Operations {
		if string(op) == name {
			return op, true
		}
	}
	return "", false
}
