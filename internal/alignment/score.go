package alignment

import (
	"math"
	"strings"

	"github.com/jonathan/placement-prep/internal/types"
)

// Category weights for the overall alignment score.
const (
	themeWeight  = 0.30
	techWeight   = 0.25
	archWeight   = 0.15
	depthWeight  = 0.15
	domainWeight = 0.15

	themeMatchPoints = 20
	techMatchPoints  = 15
	aiBonusPoints    = 10

	depthBasePoints    = 40
	depthKeywordPoints = 10

	archExactScore   = 100
	archPartialScore = 40

	domainMatchScore    = 100
	domainDeclaredScore = 20

	maxReportedMatches = 3
)

// aiKeywords mark technologies in the AI/ML family. Any project technology
// containing one earns a flat innovation-adjacency bonus, whether or not the
// company uses AI itself.
var aiKeywords = []string{"ai", "ml", "machine learning", "deep learning", "nlp"}

// depthKeywords signal innovation depth when present in the project text.
var depthKeywords = []string{"predictive", "automation", "real-time", "scalable", "cloud-native", "optimization", "distributed"}

// Score compares a candidate project against a company's strategy payload.
// All matching is case-insensitive; neither input is mutated. A payload with
// every section absent yields zero contribution from those categories rather
// than an error.
func Score(project types.Project, strategy *types.CompanyStrategy) types.AlignmentResult {
	signals := buildSignalSet(strategy)

	themeText := strings.ToLower(project.ProblemStatement + " " + project.Description)
	fullText := strings.ToLower(project.Name + " " + project.ProblemStatement + " " + project.Description)

	theme, matchedThemes := scoreThemes(themeText, signals)
	tech, overlapping := scoreTech(project.Technologies, signals)
	arch := scoreArchitecture(project.ArchitectureType, signals)
	depth := scoreDepth(fullText)
	domain, matchedDomain := scoreDomain(project.Domain, signals)

	total := themeWeight*theme + techWeight*tech + archWeight*arch + depthWeight*depth + domainWeight*domain

	return types.AlignmentResult{
		Score: int(math.Round(total)),
		Breakdown: types.AlignmentBreakdown{
			Theme:           theme,
			Tech:            tech,
			Architecture:    arch,
			InnovationDepth: depth,
			Domain:          domain,
		},
		MatchedProjects: matchProjects(fullText, strategy),
		MatchedThemes:   matchedThemes,
		OverlappingTech: overlapping,
		MatchedDomain:   matchedDomain,
	}
}

// scoreThemes awards points per company theme phrase found in the project's
// problem statement and description. The first three matches are reported.
func scoreThemes(text string, signals *signalSet) (float64, []string) {
	score := 0.0
	var matched []string
	for _, phrase := range signals.themes {
		if !strings.Contains(text, phrase) {
			continue
		}
		score += themeMatchPoints
		if len(matched) < maxReportedMatches {
			matched = append(matched, phrase)
		}
	}
	return capScore(score), matched
}

// scoreTech awards points per project technology present in the company set,
// plus a flat bonus when any project technology is AI/ML-adjacent.
func scoreTech(technologies []string, signals *signalSet) (float64, []string) {
	score := 0.0
	var overlapping []string
	aiBonus := false

	for _, tech := range technologies {
		t := strings.ToLower(strings.TrimSpace(tech))
		if t == "" {
			continue
		}
		if signals.technologies[t] {
			score += techMatchPoints
			overlapping = append(overlapping, t)
		}
		if !aiBonus {
			for _, kw := range aiKeywords {
				if strings.Contains(t, kw) {
					aiBonus = true
					break
				}
			}
		}
	}
	if aiBonus {
		score += aiBonusPoints
	}
	return capScore(score), overlapping
}

// scoreArchitecture gives full credit for an exact style match (or a mutual
// microservices mention), partial credit when both sides at least declare an
// architecture, and zero otherwise.
func scoreArchitecture(architectureType string, signals *signalSet) float64 {
	declared := strings.ToLower(strings.TrimSpace(architectureType))
	if declared == "" || declared == "none" || declared == "n/a" {
		return 0
	}

	for _, style := range signals.architectures {
		if declared == style {
			return archExactScore
		}
		if strings.Contains(declared, "microservices") && strings.Contains(style, "microservices") {
			return archExactScore
		}
	}

	if len(signals.architectures) > 0 {
		return archPartialScore
	}
	return 0
}

// scoreDepth starts from a participation base and adds points per innovation
// keyword found in the combined project text.
func scoreDepth(text string) float64 {
	score := float64(depthBasePoints)
	for _, kw := range depthKeywords {
		if strings.Contains(text, kw) {
			score += depthKeywordPoints
		}
	}
	return capScore(score)
}

// scoreDomain gives full credit when a company domain and the project domain
// contain each other, and participation credit for declaring any domain.
func scoreDomain(projectDomain string, signals *signalSet) (float64, string) {
	declared := strings.ToLower(strings.TrimSpace(projectDomain))
	if declared == "" {
		return 0, ""
	}

	for _, domain := range signals.domains {
		if strings.Contains(declared, domain) || strings.Contains(domain, declared) {
			return domainMatchScore, domain
		}
	}
	return domainDeclaredScore, ""
}

// matchProjects cross-references company innovation projects against the
// project text. The match is deliberately loose: the full name, or any name
// word longer than four characters, appearing in the text counts. Used for
// illustration only, never for scoring.
func matchProjects(text string, strategy *types.CompanyStrategy) []string {
	if strategy == nil {
		return nil
	}

	var matched []string
	for _, project := range strategy.InnovationProjects {
		if len(matched) >= maxReportedMatches {
			break
		}
		name := strings.ToLower(strings.TrimSpace(project.Name))
		if name == "" {
			continue
		}
		if strings.Contains(text, name) {
			matched = append(matched, project.Name)
			continue
		}
		for _, word := range strings.Fields(name) {
			if len(word) > 4 && strings.Contains(text, word) {
				matched = append(matched, project.Name)
				break
			}
		}
	}
	return matched
}

// capScore clamps a category score to the 0-100 range.
func capScore(score float64) float64 {
	if score > 100 {
		return 100
	}
	if score < 0 {
		return 0
	}
	return score
}
