// Package types provides type definitions for structured data used throughout the placement-prep system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Proficiency codes form a fixed five-level taxonomy of required mastery depth,
// ordered from basic conceptual understanding to independent creation.
const (
	ProficiencyUnderstanding = "understanding"
	ProficiencyApplication   = "application"
	ProficiencyAnalysis      = "analysis"
	ProficiencyEvaluation    = "evaluation"
	ProficiencyCreation      = "creation"
)

// proficiencyLevels maps ordinal levels (1-5) to taxonomy codes.
var proficiencyLevels = map[int]string{
	1: ProficiencyUnderstanding,
	2: ProficiencyApplication,
	3: ProficiencyAnalysis,
	4: ProficiencyEvaluation,
	5: ProficiencyCreation,
}

// proficiencyLabels maps taxonomy codes to human-readable labels.
var proficiencyLabels = map[string]string{
	ProficiencyUnderstanding: "Conceptual Understanding",
	ProficiencyApplication:   "Practical Application",
	ProficiencyAnalysis:      "Analytical Depth",
	ProficiencyEvaluation:    "Design Evaluation",
	ProficiencyCreation:      "Independent Creation",
}

// practiceTypes maps taxonomy codes to the study activity used when closing a gap
// at that depth, ordered by increasing proficiency.
var practiceTypes = map[string]string{
	ProficiencyUnderstanding: "Conceptual Study",
	ProficiencyApplication:   "Hands-on Coding",
	ProficiencyAnalysis:      "Problem Solving",
	ProficiencyEvaluation:    "System Design",
	ProficiencyCreation:      "Mock Interviews",
}

// ProficiencyCode returns the taxonomy code for an ordinal level (1-5).
// Out-of-range levels clamp to the nearest boundary.
func ProficiencyCode(level int) string {
	if level < 1 {
		level = 1
	}
	if level > 5 {
		level = 5
	}
	return proficiencyLevels[level]
}

// ProficiencyLabel returns the human-readable label for a taxonomy code.
// Unknown codes fall back to the code itself.
func ProficiencyLabel(code string) string {
	if label, ok := proficiencyLabels[code]; ok {
		return label
	}
	return code
}

// PracticeType returns the study activity label for a taxonomy code.
func PracticeType(code string) string {
	if practice, ok := practiceTypes[code]; ok {
		return practice
	}
	return practiceTypes[ProficiencyApplication]
}
