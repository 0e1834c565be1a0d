// Package types provides type definitions for structured data used throughout the placement-prep system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "github.com/google/uuid"

// SkillRequirement is one skill a target company expects from candidates.
// Requirements are read-only records supplied by the data-access layer.
type SkillRequirement struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Code            string    `json:"code"`
	RequiredLevel   int       `json:"required_level"`   // 1-5 ordinal
	ProficiencyCode string    `json:"proficiency_code"` // taxonomy code for RequiredLevel
	Weight          int       `json:"weight"`           // 1-5, mirrors RequiredLevel priority
	Topics          string    `json:"topics"`           // free-text topic list
}

// SelfRatings maps skill IDs to a student's self-assessed competence on a 1-10 scale.
// A missing entry means the student did not rate the skill.
type SelfRatings map[uuid.UUID]int
