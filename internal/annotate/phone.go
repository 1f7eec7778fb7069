// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package annotate

import "regexp"

// phonePattern matches international numbers written with a leading "+" and
// North-American ten-digit numbers with optional area-code parentheses.
var phonePattern = regexp.MustCompile(
	`\+\d{1,3}(?:[\s.-]?\d{2,4}){2,4}\b` +
		`|(?:\(\d{3}\)\s?|\b\d{3}[\s.-]?)\d{3}[\s.-]?\d{4}\b`)

func findPhoneNumbers(text string) []string {
	return phonePattern.FindAllString(text, -1)
}
