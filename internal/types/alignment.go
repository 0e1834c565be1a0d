// Package types provides type definitions for structured data used throughout the placement-prep system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Project is a parsed description of a candidate's project, as submitted for
// alignment scoring.
type Project struct {
	Name             string   `json:"name"`
	ProblemStatement string   `json:"problem_statement"`
	Technologies     []string `json:"technologies"`
	ArchitectureType string   `json:"architecture_type"`
	Domain           string   `json:"domain"`
	Description      string   `json:"description"`
}

// CompanyStrategy is a company's innovation-strategy payload. Every section is
// optional; an absent section simply contributes nothing to scoring.
type CompanyStrategy struct {
	InnovationThemes   []string           `json:"innovation_themes,omitempty"`
	StrategicPillars   []StrategicPillar  `json:"strategic_pillars,omitempty"`
	InnovationProjects []InnovationProject `json:"innovx_projects,omitempty"`
	Master             *MasterProfile     `json:"innovx_master,omitempty"`
}

// StrategicPillar is one pillar of a company's strategy with its key technologies.
type StrategicPillar struct {
	Name            string   `json:"name"`
	KeyTechnologies []string `json:"key_technologies,omitempty"`
}

// InnovationProject is one showcase project in a company's innovation portfolio.
type InnovationProject struct {
	Name              string   `json:"name"`
	Technologies      []string `json:"technologies,omitempty"`
	ArchitectureStyle string   `json:"architecture_style,omitempty"`
}

// MasterProfile carries the company's industry classification.
type MasterProfile struct {
	Industry    string `json:"industry,omitempty"`
	SubIndustry string `json:"sub_industry,omitempty"`
}

// AlignmentBreakdown holds the five independent sub-scores, each 0-100.
type AlignmentBreakdown struct {
	Theme           float64 `json:"theme"`
	Tech            float64 `json:"tech"`
	Architecture    float64 `json:"architecture"`
	InnovationDepth float64 `json:"innovation_depth"`
	Domain          float64 `json:"domain"`
}

// AlignmentResult is the immutable output of the alignment scorer.
type AlignmentResult struct {
	Score           int                `json:"score"` // 0-100
	Breakdown       AlignmentBreakdown `json:"breakdown"`
	MatchedProjects []string           `json:"matched_projects"` // up to 3, encounter order
	MatchedThemes   []string           `json:"matched_themes"`   // up to 3, encounter order
	OverlappingTech []string           `json:"overlapping_tech"`
	MatchedDomain   string             `json:"matched_domain"` // empty when none
}
