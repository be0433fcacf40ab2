package vbadoc

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Heading is one heading of assembled documentation.
type Heading struct {
	Level  int    `json:"level"`
	Title  string `json:"title"`
	Anchor string `json:"anchor"`
}

var headingRe = regexp.MustCompile(`^(#{1,6})\s+(.+?)\s*#*\s*$`)

// Outline returns the headings of markdown content in document order.
// Headings inside fenced code blocks are ignored. Anchors are unique
// within the result; repeats get a numeric suffix.
func Outline(content string) []Heading {
	var (
		headings []Heading
		inFence  bool
		seen     = make(map[string]int)
	)

	for line := range strings.Lines(content) {
		line = strings.TrimRight(line, "\r\n")
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			inFence = !inFence
			continue
		}
		if inFence {
			continue
		}

		m := headingRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		anchor := anchorFor(m[2])
		if n, ok := seen[anchor]; ok {
			seen[anchor] = n + 1
			anchor += "-" + strconv.Itoa(n)
		} else {
			seen[anchor] = 1
		}

		headings = append(headings, Heading{Level: len(m[1]), Title: m[2], Anchor: anchor})
	}

	return headings
}

// FormatOutline renders headings as a nested markdown list of anchor links,
// indented relative to the shallowest heading.
func FormatOutline(headings []Heading) string {
	if len(headings) == 0 {
		return ""
	}

	top := headings[0].Level
	for _, h := range headings {
		top = min(top, h.Level)
	}

	var b strings.Builder
	for _, h := range headings {
		b.WriteString(strings.Repeat("  ", h.Level-top))
		b.WriteString("- [")
		b.WriteString(h.Title)
		b.WriteString("](#")
		b.WriteString(h.Anchor)
		b.WriteString(")\n")
	}
	return b.String()
}

// anchorFor lower-cases title, keeps letters and digits, and joins words
// with single hyphens.
func anchorFor(title string) string {
	var b strings.Builder
	hyphen := false

	for _, r := range strings.ToLower(title) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			hyphen = false
		case unicode.IsSpace(r) || r == '-' || r == '_' || r == '.':
			if !hyphen && b.Len() > 0 {
				b.WriteByte('-')
				hyphen = true
			}
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}
