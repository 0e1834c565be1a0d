// Package llm - narrative.go generates roadmap narrative enrichment via Gemini.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/placement-prep/internal/roadmap"
	"github.com/jonathan/placement-prep/internal/types"
)

// narrativeSchema validates the structure of the model's JSON response before
// it is trusted. Responses missing required fields are rejected so the caller
// falls back to the local narrative.
const narrativeSchema = `{
	"type": "object",
	"required": ["overview", "weekly_plan", "additional_insights", "motivational_tips"],
	"properties": {
		"overview": {"type": "string", "minLength": 1},
		"weekly_plan": {"type": "array", "items": {"type": "string"}},
		"additional_insights": {"type": "array", "items": {"type": "string"}},
		"motivational_tips": {"type": "array", "items": {"type": "string"}}
	}
}`

// NarrativeGenerator implements roadmap.Generator on top of an LLM client.
type NarrativeGenerator struct {
	client Client
	tier   ModelTier
}

// NewNarrativeGenerator creates a generator using the given client and tier.
func NewNarrativeGenerator(client Client, tier ModelTier) *NarrativeGenerator {
	return &NarrativeGenerator{client: client, tier: tier}
}

// GenerateNarrative asks the model for a study-plan narrative and parses the
// strict-JSON response. Any transport, schema or parse failure is returned to
// the caller, which substitutes the deterministic fallback.
func (g *NarrativeGenerator) GenerateNarrative(ctx context.Context, req roadmap.NarrativeRequest) (*types.Narrative, error) {
	if g.client == nil {
		return nil, fmt.Errorf("no LLM client configured")
	}

	raw, err := g.client.GenerateJSON(ctx, buildNarrativePrompt(req), g.tier)
	if err != nil {
		return nil, fmt.Errorf("failed to generate narrative: %w", err)
	}

	cleaned := CleanJSONBlock(raw)
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(narrativeSchema),
		gojsonschema.NewStringLoader(cleaned),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to validate narrative response: %w", err)
	}
	if !result.Valid() {
		return nil, fmt.Errorf("narrative response does not match schema: %v", result.Errors())
	}

	var narrative types.Narrative
	if err := json.Unmarshal([]byte(cleaned), &narrative); err != nil {
		return nil, fmt.Errorf("failed to parse narrative JSON: %w", err)
	}
	return &narrative, nil
}

// buildNarrativePrompt constructs the compact prompt context: company name,
// top gaps, week budget and readiness score.
func buildNarrativePrompt(req roadmap.NarrativeRequest) string {
	var sb strings.Builder

	sb.WriteString("You are a placement-preparation coach. Write an encouraging, specific study narrative for a student.\n\n")
	fmt.Fprintf(&sb, "Target company: %s\n", req.CompanyName)
	fmt.Fprintf(&sb, "Readiness score: %d/100\n", req.ReadinessScore)
	fmt.Fprintf(&sb, "Available study weeks: %d\n", req.AvailableWeeks)

	sb.WriteString("Top skill gaps (priority order):\n")
	for _, gap := range req.TopGaps {
		fmt.Fprintf(&sb, "- %s: %.1f proficiency points below required, about %d study hours\n",
			gap.SkillName, gap.Gap, gap.EstimatedHours)
	}

	sb.WriteString(`
Return ONLY valid JSON matching this exact structure:
{
  "overview": "2-3 sentence summary of where the student stands and what to do",
  "weekly_plan": ["one line per study phase"],
  "additional_insights": ["2-3 concrete observations about the gaps"],
  "motivational_tips": ["2-3 short encouragements"]
}

IMPORTANT: Return ONLY the JSON object, no markdown, no explanation, no code blocks.
`)

	return sb.String()
}
