package hints

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{
			name: "complete entry",
			raw:  `{"f1": {"micro": "a", "long": "b", "demo": "c"}}`,
		},
		{
			name: "demo is optional",
			raw:  `{"f1": {"micro": "a", "long": "b"}}`,
		},
		{
			name: "empty object",
			raw:  `{}`,
		},
		{
			name:    "missing long",
			raw:     `{"f1": {"micro": "a"}}`,
			wantErr: true,
		},
		{
			name:    "entry is not an object",
			raw:     `{"f1": "just a string"}`,
			wantErr: true,
		},
		{
			name:    "root is an array",
			raw:     `[{"micro": "a", "long": "b"}]`,
			wantErr: true,
		},
		{
			name:    "micro has wrong type",
			raw:     `{"f1": {"micro": 7, "long": "b"}}`,
			wantErr: true,
		},
		{
			name:    "not json",
			raw:     `oops`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
