package detect

import (
	"regexp"

	"github.com/DiwakaruniKoushik/DocuSign/internal/types"
)

// bracketPattern matches an optional dollar sign, an opening bracket, one or
// more characters that are neither a closing bracket nor a newline, and a
// closing bracket. A token never crosses a paragraph boundary.
var bracketPattern = regexp.MustCompile(`\$?\[[^\]\n]+\]`)

// scanBrackets finds all bracketed tokens in the full text. Matches are
// non-overlapping by construction; the scan consumes matched text.
func scanBrackets(fullText string) []types.Field {
	var fields []types.Field
	for _, span := range bracketPattern.FindAllStringIndex(fullText, -1) {
		start, end := span[0], span[1]
		fields = append(fields, types.Field{
			Type:  types.FieldBracketed,
			Value: fullText[start:end],
			Start: start,
			End:   end,
			Line:  lineAt(fullText, start),
		})
	}
	return fields
}
