package detect

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DiwakaruniKoushik/DocuSign/internal/docx"
	"github.com/DiwakaruniKoushik/DocuSign/internal/types"
)

func TestPlaceholders(t *testing.T) {
	doc := &docx.Document{}
	doc.AddParagraph("Please fill $[Amount] by [Date].")
	doc.AddParagraph("Name: \t\t")
	doc.AddParagraph("Date:\t")

	result := Placeholders(doc)
	require.Len(t, result.Fields, 4)

	f := result.Fields
	assert.Equal(t, "bracketed@L1@0", f[0].ID)
	assert.Equal(t, "bracketed@L1@1", f[1].ID)
	assert.Equal(t, "signature_line@L2@2", f[2].ID)
	assert.Equal(t, "signature_line@L3@3", f[3].ID)

	assert.Equal(t, "$[Amount]", f[0].Value)
	assert.Equal(t, "[Date]", f[1].Value)
	assert.Equal(t, "Name", f[2].Label)
	assert.Equal(t, "Date", f[3].Label)

	for i := 1; i < len(f); i++ {
		assert.GreaterOrEqual(t, f[i].Start, f[i-1].Start, "fields ordered by start")
	}
	for _, field := range f {
		assert.Less(t, field.Start, field.End)
		assert.NotEmpty(t, field.Context)
	}

	assert.Equal(t, 2, result.Summary.Bracketed)
	assert.Equal(t, 2, result.Summary.SignatureLines)
	assert.Equal(t, 4, result.Summary.Total)
}

func TestPlaceholdersDeterministic(t *testing.T) {
	build := func() *docx.Document {
		doc := &docx.Document{}
		doc.AddParagraph("Pay [X] to [X] at [X].")
		doc.AddParagraph("By: \t")
		return doc
	}
	a := Placeholders(build())
	b := Placeholders(build())
	assert.Equal(t, a.Fields, b.Fields, "identical documents yield identical fields")
}

func TestPlaceholdersIDsUniqueUnderDuplicates(t *testing.T) {
	doc := &docx.Document{}
	doc.AddParagraph("[X] [X] [X] [X]")
	doc.AddParagraph("By: \t")
	doc.AddParagraph("By: \t")

	result := Placeholders(doc)
	seen := make(map[string]bool)
	for _, f := range result.Fields {
		assert.False(t, seen[f.ID], "duplicate id %q", f.ID)
		seen[f.ID] = true
	}
	assert.Len(t, seen, 6)
}

func TestContextWindowClamping(t *testing.T) {
	prefix := strings.Repeat("x", 600)
	full := prefix + "[Field]" + strings.Repeat("y", 600)

	ctx := contextWindow(full, 600, 607)
	assert.Len(t, ctx, ContextChars+7+ContextChars)
	assert.True(t, strings.HasPrefix(ctx, "x"))
	assert.True(t, strings.HasSuffix(ctx, "y"))
	assert.Contains(t, ctx, "[Field]")

	short := "tiny [F] text"
	assert.Equal(t, short, contextWindow(short, 5, 8), "short text passes through whole")
}

func TestContextWindowRuneBoundaries(t *testing.T) {
	// Each "é" is two bytes; an odd clamp offset would land mid-rune.
	full := "a" + strings.Repeat("é", 300) + "[F]"
	start := 1 + 300*2
	ctx := contextWindow(full, start, start+3)
	assert.True(t, utf8.ValidString(ctx), "window must not split a rune")
	assert.True(t, strings.HasSuffix(ctx, "[F]"))
}

func TestContextWindowNormalization(t *testing.T) {
	full := "Name \t\t  here [F]\n\n\n\n\nafter"
	ctx := contextWindow(full, 14, 17)
	assert.Equal(t, "Name here [F]\n\nafter", ctx)
}

func TestResolveEmptyDocument(t *testing.T) {
	result := Placeholders(&docx.Document{})
	assert.Empty(t, result.Fields)
	assert.Equal(t, types.Summary{}, result.Summary)
	assert.Equal(t, "", result.FullText)
}
