package hints

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DiwakaruniKoushik/DocuSign/internal/llm"
	"github.com/DiwakaruniKoushik/DocuSign/internal/types"
)

// fakeClient returns a canned response or error for every call.
type fakeClient struct {
	response string
	err      error
	prompts  []string
}

func (f *fakeClient) GenerateJSON(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.response, f.err
}

func (f *fakeClient) GetModel(llm.ModelTier) string { return "fake-model" }

func (f *fakeClient) Close() error { return nil }

func sampleFields() []types.Field {
	return []types.Field{
		{ID: "bracketed@L1@0", Type: types.FieldBracketed, Value: "[Company]", Line: 1, Context: "Agreement with [Company]."},
		{ID: "signature_line@L3@1", Type: types.FieldSignatureLine, Label: "By", Line: 3, Context: "By: "},
	}
}

func TestForDocument(t *testing.T) {
	client := &fakeClient{response: `{
		"bracketed@L1@0": {"micro": " Legal name ", "long": "Full registered legal name of the company.", "demo": "Acme Corp"},
		"signature_line@L3@1": {"micro": "Signer", "long": "Name of the person signing."}
	}`}
	g := NewGenerator(client)

	guidance := g.ForDocument(context.Background(), "contract.docx", sampleFields())
	require.Len(t, guidance, 2)
	assert.Equal(t, Guidance{Micro: "Legal name", Long: "Full registered legal name of the company.", Demo: "Acme Corp"},
		guidance["bracketed@L1@0"], "guidance text is trimmed")
	assert.Equal(t, "Signer", guidance["signature_line@L3@1"].Micro)

	require.Len(t, client.prompts, 1)
	assert.Contains(t, client.prompts[0], "contract.docx")
	assert.Contains(t, client.prompts[0], `id="bracketed@L1@0"`)
}

func TestForDocumentNumericKeyFallback(t *testing.T) {
	client := &fakeClient{response: `{
		"1": {"micro": "Legal name", "long": "Company legal name."},
		"2": {"micro": "Signer", "long": "Signing party."}
	}`}
	g := NewGenerator(client)

	guidance := g.ForDocument(context.Background(), "contract.docx", sampleFields())
	require.Len(t, guidance, 2)
	assert.Equal(t, "Legal name", guidance["bracketed@L1@0"].Micro)
	assert.Equal(t, "Signer", guidance["signature_line@L3@1"].Micro)
}

func TestForDocumentDegradesToEmpty(t *testing.T) {
	tests := []struct {
		name   string
		client llm.Client
	}{
		{"client error", &fakeClient{err: errors.New("quota exceeded")}},
		{"malformed payload", &fakeClient{response: `not json at all`}},
		{"schema violation", &fakeClient{response: `{"bracketed@L1@0": {"micro": "x"}}`}},
		{"wrong shape", &fakeClient{response: `["a", "b"]`}},
		{"nil client", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGenerator(tt.client)
			guidance := g.ForDocument(context.Background(), "contract.docx", sampleFields())
			assert.Empty(t, guidance, "failures must degrade to an empty mapping")
		})
	}
}

func TestForDocumentNoFields(t *testing.T) {
	client := &fakeClient{response: `{}`}
	g := NewGenerator(client)
	assert.Empty(t, g.ForDocument(context.Background(), "contract.docx", nil))
	assert.Empty(t, client.prompts, "no prompt is sent for an empty roster")
}

func TestAttach(t *testing.T) {
	fields := sampleFields()
	guidance := map[string]Guidance{
		"bracketed@L1@0": {Micro: "Legal name", Long: "Company legal name.", Demo: "Acme Corp"},
	}

	attached := Attach(fields, guidance)
	assert.Equal(t, 1, attached)
	assert.Equal(t, "Legal name", fields[0].Hint)
	assert.Equal(t, "Company legal name.", fields[0].HintLong)
	assert.Equal(t, "Acme Corp", fields[0].DemoValue)
	assert.Empty(t, fields[1].Hint, "unmatched fields keep empty hints")
	assert.Empty(t, fields[1].HintLong)
}

func TestAttachEmptyGuidance(t *testing.T) {
	fields := sampleFields()
	assert.Zero(t, Attach(fields, map[string]Guidance{}))
	for _, f := range fields {
		assert.Empty(t, f.Hint)
		assert.Empty(t, f.HintLong)
		assert.Empty(t, f.DemoValue)
	}
}

func TestTrim(t *testing.T) {
	long := strings.Repeat("a", 1000) + strings.Repeat("b", 1000)

	trimmed := Trim(long, MaxContextChars)
	assert.Equal(t, 450+utf8.RuneCountInString(elisionMarker)+450, utf8.RuneCountInString(trimmed))
	assert.True(t, strings.HasPrefix(trimmed, strings.Repeat("a", 450)))
	assert.True(t, strings.HasSuffix(trimmed, strings.Repeat("b", 450)))
	assert.Contains(t, trimmed, elisionMarker)
}

func TestTrimShortAndEmpty(t *testing.T) {
	assert.Equal(t, "", Trim("", 10))
	assert.Equal(t, "short", Trim("short", 10))
	assert.Equal(t, "exact", Trim("exact", 5))
}

func TestTrimRuneAware(t *testing.T) {
	text := strings.Repeat("é", 20)
	trimmed := Trim(text, 10)
	assert.True(t, utf8.ValidString(trimmed))
	assert.Equal(t, 5+utf8.RuneCountInString(elisionMarker)+5, utf8.RuneCountInString(trimmed))
}

func TestBuildPromptCapsRoster(t *testing.T) {
	fields := make([]types.Field, MaxFields+30)
	for i := range fields {
		fields[i] = types.Field{ID: "f", Type: types.FieldBracketed, Value: "[x]", Line: i + 1}
	}
	prompt := buildPrompt("big.docx", fields)
	assert.Contains(t, prompt, "120. id=")
	assert.NotContains(t, prompt, "121. id=")
}
