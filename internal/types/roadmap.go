// Package types provides type definitions for structured data used throughout the placement-prep system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "github.com/google/uuid"

// Readiness tier labels, ordered from most to least prepared.
const (
	TierComplete = "Complete"
	TierVeryHigh = "Very High"
	TierHigh     = "High"
	TierMedium   = "Medium"
	TierLow      = "Low"
)

// SkillGap is the distance between a company requirement and a student's
// self-assessment for one skill. Gaps are created fresh per roadmap request and
// never mutated after priority assignment.
type SkillGap struct {
	SkillID          uuid.UUID `json:"skill_id"`
	SkillName        string    `json:"skill_name"`
	SkillCode        string    `json:"skill_code"`
	RequiredLevel    int       `json:"required_level"`
	SelfRating       int       `json:"self_rating"`       // raw 1-10 rating, 0 when absent
	NormalizedRating float64   `json:"normalized_rating"` // rating mapped onto the 1-5 scale
	Gap              float64   `json:"gap"`
	GapPercent       float64   `json:"gap_percent"` // 0-100
	ProficiencyCode  string    `json:"proficiency_code"`
	Weight           int       `json:"weight"`
	Topics           string    `json:"topics"`
	EstimatedHours   int       `json:"estimated_hours"`
	Priority         float64   `json:"priority"` // [0,1], set by the ranker
}

// WeekSkill is one skill studied during a given week.
type WeekSkill struct {
	SkillID           uuid.UUID `json:"skill_id"`
	SkillName         string    `json:"skill_name"`
	SkillCode         string    `json:"skill_code"`
	TargetProficiency string    `json:"target_proficiency"`
	Hours             int       `json:"hours"`
	PracticeType      string    `json:"practice_type"`
	Topics            string    `json:"topics"`
}

// WeekPlan is one study week of the generated curriculum.
type WeekPlan struct {
	Week   int         `json:"week"`  // 1-based, never exceeds the requested budget
	Label  string      `json:"label"` // "Week 3" or "Weeks 3-5" on the first week of a multi-week block
	Theme  string      `json:"theme"`
	Target string      `json:"target"` // completion target for the week
	Skills []WeekSkill `json:"skills"`
}

// Narrative is the optional free-text enrichment of a roadmap. It is additive
// only and never affects the numeric fields.
type Narrative struct {
	Overview           string   `json:"overview"`
	WeeklyPlan         []string `json:"weekly_plan"`
	AdditionalInsights []string `json:"additional_insights"`
	MotivationalTips   []string `json:"motivational_tips"`
}

// Roadmap is the complete output of roadmap generation.
type Roadmap struct {
	ReadinessScore int        `json:"readiness_score"` // 0-100
	ReadinessTier  string     `json:"readiness_tier"`
	EstimatedDays  int        `json:"estimated_days"` // calendar days to close all gaps
	TotalHours     int        `json:"total_hours"`
	Gaps           []SkillGap `json:"gaps"`  // priority-descending
	Weeks          []WeekPlan `json:"weeks"` // week-ascending
	Narrative      *Narrative `json:"narrative,omitempty"`
}
