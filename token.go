package tothepoint

import (
	"regexp"
	"strings"
)

// tokenRe matches maximal lowercase alphanumeric runs, optionally joined to
// one apostrophe suffix ("don't", "fox's").
var tokenRe = regexp.MustCompile(`[a-z0-9]+(?:'[a-z0-9]+)?`)

// nonAlnumRe matches runs of anything outside [a-z0-9], used for phrase
// normalization.
var nonAlnumRe = regexp.MustCompile(`[^a-z0-9]+`)

// stopWords is a closed list of common function words dropped during
// tokenization. Kept deliberately small: aggressive stop-word removal hurts
// short title queries more than it helps.
var stopWords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {},
	"be": {}, "but": {}, "by": {}, "for": {}, "from": {}, "has": {},
	"have": {}, "how": {}, "in": {}, "is": {}, "it": {}, "its": {},
	"of": {}, "on": {}, "or": {}, "that": {}, "the": {}, "this": {},
	"to": {}, "was": {}, "what": {}, "when": {}, "where": {}, "which": {},
	"who": {}, "will": {}, "with": {},
}

// Tokenize lowercases the input and splits it into scoring tokens:
// alphanumeric runs with at most one internal apostrophe, single-character
// tokens and stop-words removed.
func Tokenize(s string) []string {
	raw := tokenRe.FindAllString(strings.ToLower(s), -1)
	tokens := make([]string, 0, len(raw))
	for _, tok := range raw {
		if len(tok) <= 1 {
			continue
		}
		if _, stop := stopWords[tok]; stop {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// NormalizePhrase lowercases the input, replaces every non-alphanumeric run
// with a single space, and trims. Used only for exact-substring phrase
// matching, not for token scoring.
func NormalizePhrase(s string) string {
	return strings.TrimSpace(nonAlnumRe.ReplaceAllString(strings.ToLower(s), " "))
}
