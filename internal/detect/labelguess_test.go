package detect

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/DiwakaruniKoushik/DocuSign/internal/types"
)

func TestGuessLabel(t *testing.T) {
	tests := []struct {
		name     string
		field    types.Field
		expected string
	}{
		{
			name: "defined term after monetary blank",
			field: types.Field{
				Type:    types.FieldBracketed,
				Value:   "$[Amount]",
				Context: "shall pay $[Amount] (the Purchase Price) on closing",
			},
			expected: "Purchase Price",
		},
		{
			name: "defined term ignores plain brackets",
			field: types.Field{
				Type:    types.FieldBracketed,
				Value:   "[Amount]",
				Context: "shall pay [Amount] (the Purchase Price) on closing",
			},
			expected: "",
		},
		{
			name: "signature label wins over context",
			field: types.Field{
				Type:    types.FieldSignatureLine,
				Label:   "Authorized Signatory",
				Context: "Company Name:_____ Authorized Signatory: ",
			},
			expected: "Authorized Signatory",
		},
		{
			name: "capitalized phrase before underscore blank",
			field: types.Field{
				Type:    types.FieldBracketed,
				Value:   "[_______]",
				Context: "Company Name:_________ appears above",
			},
			expected: "Company Name",
		},
		{
			name: "no strategy applies",
			field: types.Field{
				Type:    types.FieldBracketed,
				Value:   "[x]",
				Context: "plain lowercase prose only",
			},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, guessLabel(&tt.field))
		})
	}
}

func TestGuessDefinedTermCaseInsensitive(t *testing.T) {
	f := types.Field{
		Type:    types.FieldBracketed,
		Value:   "$[1,000]",
		Context: "a deposit of $[1,000] (The Deposit Amount)",
	}
	guess, ok := guessDefinedTerm(&f)
	assert.True(t, ok)
	assert.Equal(t, "Deposit Amount", guess)
}

func TestGuessCapitalizedPhraseBracketToken(t *testing.T) {
	f := types.Field{
		Type:    types.FieldSignatureLine,
		Context: "Deposit Amount $[1000]USD wired on receipt",
	}
	guess, ok := guessCapitalizedPhrase(&f)
	assert.True(t, ok)
	assert.Equal(t, "Deposit Amount", guess)
}
