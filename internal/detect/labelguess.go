package detect

import (
	"regexp"
	"strings"

	"github.com/DiwakaruniKoushik/DocuSign/internal/types"
)

// labelStrategy attempts one heuristic for describing a field. It returns
// the guess and whether it applied.
type labelStrategy func(f *types.Field) (string, bool)

// labelStrategies are tried in priority order; the first hit wins.
var labelStrategies = []labelStrategy{
	guessDefinedTerm,
	guessOwnLabel,
	guessCapitalizedPhrase,
}

// guessLabel resolves a field's best-effort short label, or "" when no
// strategy applies.
func guessLabel(f *types.Field) string {
	for _, strategy := range labelStrategies {
		if guess, ok := strategy(f); ok {
			return guess
		}
	}
	return ""
}

// definedTermPattern captures X from a (the "X") defined-term construction,
// the convention contracts use right after a monetary blank.
var definedTermPattern = regexp.MustCompile(`(?i)\(\s*the\s+([^)"“”]+?)\s*\)`)

func guessDefinedTerm(f *types.Field) (string, bool) {
	if f.Type != types.FieldBracketed || !strings.HasPrefix(f.Value, "$[") {
		return "", false
	}
	m := definedTermPattern.FindStringSubmatch(f.Context)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

func guessOwnLabel(f *types.Field) (string, bool) {
	if f.Type != types.FieldSignatureLine || f.Label == "" {
		return "", false
	}
	return f.Label, true
}

// capitalizedPhrasePattern finds the nearest run of Capitalized Words
// immediately before a bracket token or a colon in the context.
var capitalizedPhrasePattern = regexp.MustCompile(`([A-Z][A-Za-z]+(?: [A-Z][A-Za-z]+){0,4})\s*(?:\$?\[\s*[_A-Za-z0-9]*\s*\]|:)\b`)

func guessCapitalizedPhrase(f *types.Field) (string, bool) {
	m := capitalizedPhrasePattern.FindStringSubmatch(f.Context)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}
