package vbadoc

import "strings"

// unsafeQueryChars are removed from search text before it is embedded in a
// request.
var unsafeQueryChars = strings.NewReplacer("<", "", ">", "", `"`, "", "'", "", "&", "")

// SanitizeQuery removes the characters < > " ' &, trims surrounding
// whitespace, and truncates the result to MaxSanitizedQueryLen characters.
func SanitizeQuery(query string) string {
	q := strings.TrimSpace(unsafeQueryChars.Replace(query))
	runes := []rune(q)
	if len(runes) > MaxSanitizedQueryLen {
		return string(runes[:MaxSanitizedQueryLen])
	}
	return q
}
