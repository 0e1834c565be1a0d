package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/placement-prep/internal/roadmap"
	"github.com/jonathan/placement-prep/internal/types"
)

// fakeClient returns a canned response (or error) and records the prompt.
type fakeClient struct {
	response string
	err      error
	prompt   string
}

func (f *fakeClient) GenerateContent(_ context.Context, prompt string, _ ModelTier) (string, error) {
	f.prompt = prompt
	return f.response, f.err
}

func (f *fakeClient) GenerateJSON(_ context.Context, prompt string, _ ModelTier) (string, error) {
	f.prompt = prompt
	return f.response, f.err
}

func (f *fakeClient) Close() error { return nil }

func narrativeRequestFixture() roadmap.NarrativeRequest {
	return roadmap.NarrativeRequest{
		CompanyName:    "Acme",
		AvailableWeeks: 8,
		ReadinessScore: 55,
		TopGaps: []types.SkillGap{
			{SkillName: "System Design", Gap: 2.5, EstimatedHours: 25},
		},
	}
}

const validNarrativeJSON = `{
	"overview": "You are on track.",
	"weekly_plan": ["Week 1: drill fundamentals"],
	"additional_insights": ["System design is the largest gap"],
	"motivational_tips": ["Keep going"]
}`

func TestGenerateNarrative(t *testing.T) {
	client := &fakeClient{response: validNarrativeJSON}
	gen := NewNarrativeGenerator(client, TierStandard)

	narrative, err := gen.GenerateNarrative(context.Background(), narrativeRequestFixture())
	require.NoError(t, err)
	require.NotNil(t, narrative)
	assert.Equal(t, "You are on track.", narrative.Overview)
	assert.Equal(t, []string{"Week 1: drill fundamentals"}, narrative.WeeklyPlan)

	// The prompt carries the roadmap context the model needs.
	assert.Contains(t, client.prompt, "Acme")
	assert.Contains(t, client.prompt, "55/100")
	assert.Contains(t, client.prompt, "System Design")
}

func TestGenerateNarrative_StripsCodeFences(t *testing.T) {
	client := &fakeClient{response: "```json\n" + validNarrativeJSON + "\n```"}
	gen := NewNarrativeGenerator(client, TierStandard)

	narrative, err := gen.GenerateNarrative(context.Background(), narrativeRequestFixture())
	require.NoError(t, err)
	assert.Equal(t, "You are on track.", narrative.Overview)
}

func TestGenerateNarrative_ClientError(t *testing.T) {
	client := &fakeClient{err: errors.New("quota exceeded")}
	gen := NewNarrativeGenerator(client, TierStandard)

	_, err := gen.GenerateNarrative(context.Background(), narrativeRequestFixture())
	assert.Error(t, err)
}

func TestGenerateNarrative_NilClient(t *testing.T) {
	gen := NewNarrativeGenerator(nil, TierStandard)
	_, err := gen.GenerateNarrative(context.Background(), narrativeRequestFixture())
	assert.Error(t, err)
}

func TestGenerateNarrative_SchemaViolations(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{"missing overview", `{"weekly_plan": [], "additional_insights": [], "motivational_tips": []}`},
		{"empty overview", `{"overview": "", "weekly_plan": [], "additional_insights": [], "motivational_tips": []}`},
		{"wrong field type", `{"overview": "ok", "weekly_plan": "not an array", "additional_insights": [], "motivational_tips": []}`},
		{"not JSON at all", `Sure! Here is your study plan:`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := NewNarrativeGenerator(&fakeClient{response: tt.response}, TierStandard)
			_, err := gen.GenerateNarrative(context.Background(), narrativeRequestFixture())
			assert.Error(t, err)
		})
	}
}

func TestConfigGetModel(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "gemini-2.5-flash", cfg.GetModel(TierStandard))
	assert.Equal(t, "gemini-2.5-pro", cfg.GetModel(TierAdvanced))

	// Unknown tiers fall back through standard, then lite.
	assert.Equal(t, "gemini-2.5-flash", cfg.GetModel(ModelTier("mystery")))

	liteOnly := &Config{Models: map[ModelTier]string{TierLite: "tiny"}}
	assert.Equal(t, "tiny", liteOnly.GetModel(TierAdvanced))
	assert.Empty(t, (&Config{}).GetModel(TierStandard))
}

func TestConfigWithModel(t *testing.T) {
	base := DefaultConfig()
	custom := base.WithModel(TierStandard, "gemini-custom")

	assert.Equal(t, "gemini-custom", custom.GetModel(TierStandard))
	// The original is untouched.
	assert.Equal(t, "gemini-2.5-flash", base.GetModel(TierStandard))
}
