package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/placement-prep/internal/types"
)

func TestPrintRoadmap(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRoadmap(&types.Roadmap{
		ReadinessScore: 60,
		ReadinessTier:  types.TierHigh,
		TotalHours:     40,
		EstimatedDays:  4,
		Gaps: []types.SkillGap{
			{SkillName: "Go", Gap: 4, EstimatedHours: 40, Priority: 0.9},
		},
		Weeks: []types.WeekPlan{
			{Week: 1, Label: "Weeks 1-4", Theme: "Master Go", Skills: []types.WeekSkill{{SkillName: "Go"}}},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "Study Roadmap")
	assert.Contains(t, out, "60/100")
	assert.Contains(t, out, "Go")
	assert.Contains(t, out, "Weeks 1-4")
}

func TestPrintRoadmap_TruncatesLongGapLists(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	gaps := make([]types.SkillGap, 8)
	for i := range gaps {
		gaps[i] = types.SkillGap{SkillName: "Skill", Gap: 1}
	}
	p.PrintRoadmap(&types.Roadmap{Gaps: gaps})

	assert.Contains(t, buf.String(), "... and 3 more")
}

func TestPrintRoadmap_NilAndEmpty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRoadmap(nil)
	assert.Empty(t, buf.String())

	p.PrintRoadmap(&types.Roadmap{ReadinessScore: 100, ReadinessTier: types.TierComplete})
	assert.Contains(t, buf.String(), "Nothing to schedule")
}

func TestPrintNarrative(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintNarrative(&types.Narrative{
		Overview:           "You are close.",
		AdditionalInsights: []string{"Focus on design"},
		MotivationalTips:   []string{"Keep at it"},
	})

	out := buf.String()
	assert.Contains(t, out, "Coach Notes")
	assert.Contains(t, out, "You are close.")
	assert.Contains(t, out, "Focus on design")

	buf.Reset()
	p.PrintNarrative(nil)
	assert.Empty(t, buf.String())
}

func TestPrintAlignment(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintAlignment(&types.AlignmentResult{
		Score: 54,
		Breakdown: types.AlignmentBreakdown{
			Theme: 20, Tech: 30, Architecture: 100, InnovationDepth: 70, Domain: 100,
		},
		MatchedThemes:   []string{"predictive maintenance"},
		OverlappingTech: []string{"python"},
		MatchedDomain:   "logistics",
	})

	out := buf.String()
	assert.Contains(t, out, "Project Alignment")
	assert.Contains(t, out, "54/100")
	assert.Contains(t, out, "predictive maintenance")
	assert.Contains(t, out, "logistics")
}

func TestPrintBox_BordersAndTruncation(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	long := strings.Repeat("x", boxWidth*2)
	p.printBox("Title", long)

	out := buf.String()
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "...")
	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		assert.Equal(t, boxWidth, len([]rune(line)))
	}
}
