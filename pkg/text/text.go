// Package text provides the narration helpers shared by the simulation:
// plural forms, indefinite articles, number words and list joining.
package text

import (
	"fmt"
	"strings"

	"github.com/gertd/go-pluralize"
)

var client = pluralize.NewClient()

// Plural returns the plural form of word if n != 1, the singular otherwise.
func Plural(word string, n int) string {
	if n == 1 || n == -1 {
		return client.Singular(word)
	}
	return client.Plural(word)
}

// PluralVerb converts a third-person-singular verb phrase to its plural
// form ("meets" -> "meet", "passes" -> "pass", "is travelling" ->
// "are travelling"). Only the first word of the phrase is conjugated.
func PluralVerb(phrase string) string {
	parts := strings.SplitN(phrase, " ", 2)
	verb := parts[0]
	switch {
	case verb == "is":
		verb = "are"
	case verb == "has":
		verb = "have"
	case strings.HasSuffix(verb, "ches"),
		strings.HasSuffix(verb, "shes"),
		strings.HasSuffix(verb, "sses"),
		strings.HasSuffix(verb, "xes"),
		strings.HasSuffix(verb, "zes"):
		verb = strings.TrimSuffix(verb, "es")
	case strings.HasSuffix(verb, "s"):
		verb = strings.TrimSuffix(verb, "s")
	}
	if len(parts) == 2 {
		return verb + " " + parts[1]
	}
	return verb
}

// A prefixes word with its indefinite article.
func A(word string) string {
	if word == "" {
		return word
	}
	switch word[0] {
	case 'a', 'e', 'i', 'o', 'u', 'A', 'E', 'I', 'O', 'U':
		return "an " + word
	}
	return "a " + word
}

// CapFirst capitalizes the first character of s.
func CapFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

var numberWords = []string{
	"zero", "one", "two", "three", "four", "five", "six", "seven", "eight",
	"nine", "ten", "eleven", "twelve",
}

// NumberWord spells out small non-negative numbers; larger values fall back
// to digits.
func NumberWord(n int) string {
	if n >= 0 && n < len(numberWords) {
		return numberWords[n]
	}
	return fmt.Sprintf("%d", n)
}

// JoinAnd joins items with commas and a final "and", in the style of
// running prose: "a, b, and c".
func JoinAnd(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	}
	return strings.Join(items[:len(items)-1], ", ") + ", and " + items[len(items)-1]
}
