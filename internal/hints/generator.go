// Package hints generates per-field fill guidance through an LLM. Guidance
// is strictly optional: every failure mode (no API key, client error, bad or
// malformed response) collapses to an empty mapping, and fields simply carry
// empty hint strings.
package hints

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/DiwakaruniKoushik/DocuSign/internal/llm"
	"github.com/DiwakaruniKoushik/DocuSign/internal/prompts"
	"github.com/DiwakaruniKoushik/DocuSign/internal/types"
)

const (
	// MaxFields caps how many fields are sent to the generator in one prompt.
	MaxFields = 120
	// MaxContextChars caps each field's context in the prompt; longer
	// contexts keep their head and tail with the middle elided.
	MaxContextChars = 900

	elisionMarker = " … "
)

// Guidance is the generated advice for one field.
type Guidance struct {
	Micro string `json:"micro"`
	Long  string `json:"long"`
	Demo  string `json:"demo"`
}

// Generator produces field guidance keyed by field id.
type Generator struct {
	client llm.Client
}

// NewGenerator wraps an LLM client. A nil client yields a generator that
// always returns an empty mapping.
func NewGenerator(client llm.Client) *Generator {
	return &Generator{client: client}
}

// ForDocument generates guidance for the given fields, keyed by field id.
// It never returns an error: any failure is logged and degrades to an empty
// mapping.
func (g *Generator) ForDocument(ctx context.Context, filename string, fields []types.Field) map[string]Guidance {
	empty := map[string]Guidance{}
	if g == nil || g.client == nil || len(fields) == 0 {
		return empty
	}

	prompt := buildPrompt(filename, fields)
	raw, err := g.client.GenerateJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		log.Printf("[hints] guidance generation failed: %v", err)
		return empty
	}
	if err := validateResponse(raw); err != nil {
		log.Printf("[hints] guidance response rejected: %v", err)
		return empty
	}

	var data map[string]Guidance
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		log.Printf("[hints] guidance response unparseable: %v", err)
		return empty
	}

	limit := len(fields)
	if limit > MaxFields {
		limit = MaxFields
	}

	byID := make(map[string]Guidance)
	for i := 0; i < limit; i++ {
		if guidance, ok := data[fields[i].ID]; ok {
			byID[fields[i].ID] = cleanGuidance(guidance)
		}
	}

	// Some models return the roster's numeric keys instead of field ids.
	if len(byID) == 0 {
		for i := 0; i < limit; i++ {
			if guidance, ok := data[strconv.Itoa(i+1)]; ok {
				byID[fields[i].ID] = cleanGuidance(guidance)
			}
		}
	}

	return byID
}

// Attach copies guidance onto the matching fields and returns how many fields
// received at least one non-empty hint. Fields with no guidance keep empty
// hint strings.
func Attach(fields []types.Field, guidance map[string]Guidance) int {
	attached := 0
	for i := range fields {
		g, ok := guidance[fields[i].ID]
		if !ok {
			continue
		}
		fields[i].Hint = g.Micro
		fields[i].HintLong = g.Long
		fields[i].DemoValue = g.Demo
		if g.Micro != "" || g.Long != "" || g.Demo != "" {
			attached++
		}
	}
	return attached
}

// Trim caps text at maxChars characters, keeping the first and last half and
// eliding the middle.
func Trim(text string, maxChars int) string {
	if text == "" {
		return ""
	}
	runes := []rune(text)
	if len(runes) <= maxChars {
		return text
	}
	half := maxChars / 2
	return string(runes[:half]) + elisionMarker + string(runes[len(runes)-half:])
}

// buildPrompt renders the embedded guidance template with the field roster.
func buildPrompt(filename string, fields []types.Field) string {
	limit := len(fields)
	if limit > MaxFields {
		limit = MaxFields
	}

	lines := make([]string, 0, limit)
	for i := 0; i < limit; i++ {
		f := &fields[i]
		lines = append(lines, fmt.Sprintf("%d. id=%q | key=%q | line=%d | label_guess=%q\n   context: %s",
			i+1, f.ID, f.Key(), f.Line, f.LabelGuess, Trim(f.Context, MaxContextChars)))
	}

	template := prompts.MustGet("hints.json", "field-guidance")
	return prompts.Format(template, map[string]string{
		"Filename": filename,
		"Fields":   strings.Join(lines, "\n"),
	})
}

func cleanGuidance(g Guidance) Guidance {
	return Guidance{
		Micro: strings.TrimSpace(g.Micro),
		Long:  strings.TrimSpace(g.Long),
		Demo:  strings.TrimSpace(g.Demo),
	}
}
