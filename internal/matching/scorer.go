package matching

import (
	"strings"
	"unicode"
)

// Short function words that carry no signal for clip descriptions.
// Kept deliberately small: AI captions are terse and over-aggressive
// stopword removal hurts short descriptions more than it helps.
var stopwords = map[string]struct{}{
	"a": {}, "an": {}, "the": {},
	"and": {}, "or": {}, "of": {}, "in": {}, "on": {}, "at": {},
	"to": {}, "with": {}, "for": {}, "by": {}, "from": {},
	"is": {}, "are": {}, "was": {}, "were": {}, "be": {},
	"this": {}, "that": {}, "it": {}, "its": {},
}

// Tokenize lowercases the text, strips punctuation and splits it into
// words, dropping stopwords. The result preserves no ordering information;
// scoring is a pure set computation.
func Tokenize(text string) []string {
	builder := strings.Builder{}
	builder.Grow(len(text))
	for _, r := range text {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			builder.WriteRune(unicode.ToLower(r))
		default:
			builder.WriteRune(' ')
		}
	}

	fields := strings.Fields(builder.String())
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if _, skip := stopwords[f]; skip {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

// Score estimates semantic closeness of two free-text descriptions as a
// Jaccard similarity over their normalized token sets. The score is
// symmetric, deterministic and always within [0, 1]. Empty or
// stopword-only text scores 0.0 against anything, including itself:
// there is no similarity to claim when one side says nothing.
func Score(a, b string) float64 {
	tokensA := Tokenize(a)
	tokensB := Tokenize(b)
	if len(tokensA) == 0 || len(tokensB) == 0 {
		return 0.0
	}

	setA := make(map[string]struct{}, len(tokensA))
	for _, t := range tokensA {
		setA[t] = struct{}{}
	}
	setB := make(map[string]struct{}, len(tokensB))
	for _, t := range tokensB {
		setB[t] = struct{}{}
	}

	intersection := 0
	for t := range setA {
		if _, ok := setB[t]; ok {
			intersection++
		}
	}

	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0.0
	}
	return float64(intersection) / float64(union)
}
