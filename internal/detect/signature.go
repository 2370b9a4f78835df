package detect

import (
	"strings"

	"github.com/DiwakaruniKoushik/DocuSign/internal/types"
)

// scanSignatureLines finds colon-terminated labels followed by blank padding
// across the flattened blocks. The padding after the last colon must be
// non-empty, consist only of spaces and tabs, and contain at least one tab:
// the tab is what distinguishes an intentional fill-in blank from prose that
// happens to end in a colon and a space. A block contributes at most one
// field since only its last colon is considered.
func scanSignatureLines(flat *Flattened) []types.Field {
	var fields []types.Field
	for _, block := range flat.Blocks {
		text := block.Text
		if text == "" {
			continue
		}
		colonPos := strings.LastIndex(text, ":")
		if colonPos == -1 {
			continue
		}

		afterColon := text[colonPos+1:]
		if afterColon == "" || !isBlankPadding(afterColon) || !strings.Contains(afterColon, "\t") {
			continue
		}

		label := strings.TrimSpace(text[:colonPos])
		// A wrapped heading before the label should not pollute it: keep only
		// the text after the last soft line break.
		if idx := strings.LastIndex(label, "\n"); idx != -1 {
			label = strings.TrimSpace(label[idx+1:])
		}

		paddingStart := block.Offset + colonPos + 1
		paddingEnd := block.Offset + len(text)

		fields = append(fields, types.Field{
			Type:  types.FieldSignatureLine,
			Label: label,
			Start: paddingStart,
			End:   paddingEnd,
			Line:  lineAt(flat.FullText, paddingStart),
			Metadata: &types.SignatureMetadata{
				Tabs:       strings.Count(afterColon, "\t"),
				Spaces:     strings.Count(afterColon, " "),
				Underlined: block.Paragraph != nil && block.Paragraph.Underlined(),
			},
		})
	}
	return fields
}

// isBlankPadding reports whether s consists only of spaces and tabs.
func isBlankPadding(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != ' ' && s[i] != '\t' {
			return false
		}
	}
	return true
}
