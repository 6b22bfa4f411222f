package utils

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// DeduplicateFold trims values and drops empties and case-insensitive repeats,
// keeping the first-seen spelling.
func DeduplicateFold(input []string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0)

	for _, val := range input {
		val = strings.TrimSpace(val)
		key := strings.ToLower(val)
		if val != "" && !seen[key] {
			result = append(result, val)
			seen[key] = true
		}
	}

	return result
}

// ContainsFold reports whether term occurs in text, ignoring case.
// A blank term never matches.
func ContainsFold(text, term string) bool {
	term = strings.TrimSpace(term)
	if term == "" {
		return false
	}
	return strings.Contains(strings.ToLower(text), strings.ToLower(term))
}

// TruncateRunes cuts s to at most max characters without splitting a rune.
func TruncateRunes(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max])
}

// TruncateWords cuts s to at most max characters, preferring a word boundary
// and marking the cut with an ellipsis.
func TruncateWords(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	if max <= 1 {
		return TruncateRunes(s, max)
	}
	cut := []rune(TruncateRunes(s, max-1))
	if i := lastSpace(cut); i > len(cut)/2 {
		cut = cut[:i]
	}
	return strings.TrimRight(string(cut), " ,.;:") + "…"
}

func lastSpace(r []rune) int {
	for i := len(r) - 1; i >= 0; i-- {
		if r[i] == ' ' {
			return i
		}
	}
	return -1
}

var (
	spaceRun       = regexp.MustCompile(`\s+`)
	markdownHeader = regexp.MustCompile(`(?m)^#{1,6}\s*`)
)

// NormalizeSpace collapses whitespace runs into single spaces and trims the ends.
func NormalizeSpace(s string) string {
	return strings.TrimSpace(spaceRun.ReplaceAllString(s, " "))
}

// CleanGeneratedText strips the decoration language models like to add
// around a short reply: markdown headers, wrapping quotes and extra spacing.
func CleanGeneratedText(s string) string {
	s = markdownHeader.ReplaceAllString(s, "")
	s = NormalizeSpace(s)
	for _, q := range []string{`"`, "'", "“", "”", "`"} {
		s = strings.TrimPrefix(s, q)
		s = strings.TrimSuffix(s, q)
	}
	return strings.TrimSpace(s)
}
