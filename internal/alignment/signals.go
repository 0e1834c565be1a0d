// Package alignment scores a candidate project against a company's
// innovation-strategy data, producing a weighted 0-100 alignment score with a
// per-category breakdown.
package alignment

import (
	"strings"

	"github.com/jonathan/placement-prep/internal/types"
)

// signalSet is the lower-cased vocabulary extracted from a company strategy
// payload. It is rebuilt on every scoring call and never cached.
type signalSet struct {
	themes        []string        // theme phrases, encounter order
	technologies  map[string]bool // technology names
	architectures []string        // architecture-style names
	domains       []string        // industry/domain strings
}

// buildSignalSet extracts matching vocabulary from a strategy payload. Every
// section is optional; absent sections contribute nothing.
func buildSignalSet(strategy *types.CompanyStrategy) *signalSet {
	set := &signalSet{technologies: make(map[string]bool)}
	if strategy == nil {
		return set
	}

	seenThemes := make(map[string]bool)
	addTheme := func(phrase string) {
		phrase = strings.ToLower(strings.TrimSpace(phrase))
		if phrase == "" || seenThemes[phrase] {
			return
		}
		seenThemes[phrase] = true
		set.themes = append(set.themes, phrase)
	}

	for _, theme := range strategy.InnovationThemes {
		addTheme(theme)
	}
	for _, pillar := range strategy.StrategicPillars {
		addTheme(pillar.Name)
		for _, tech := range pillar.KeyTechnologies {
			if t := strings.ToLower(strings.TrimSpace(tech)); t != "" {
				set.technologies[t] = true
			}
		}
	}

	seenArch := make(map[string]bool)
	for _, project := range strategy.InnovationProjects {
		for _, tech := range project.Technologies {
			if t := strings.ToLower(strings.TrimSpace(tech)); t != "" {
				set.technologies[t] = true
			}
		}
		if style := strings.ToLower(strings.TrimSpace(project.ArchitectureStyle)); style != "" && !seenArch[style] {
			seenArch[style] = true
			set.architectures = append(set.architectures, style)
		}
	}

	if strategy.Master != nil {
		for _, domain := range []string{strategy.Master.Industry, strategy.Master.SubIndustry} {
			if d := strings.ToLower(strings.TrimSpace(domain)); d != "" {
				set.domains = append(set.domains, d)
			}
		}
	}

	return set
}
