// Package main implements the prep_agent CLI tool.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/placement-prep/internal/config"
	"github.com/jonathan/placement-prep/internal/llm"
	"github.com/jonathan/placement-prep/internal/observability"
	"github.com/jonathan/placement-prep/internal/roadmap"
	"github.com/jonathan/placement-prep/internal/types"
)

var roadmapCmd = &cobra.Command{
	Use:   "roadmap",
	Short: "Generate a prioritized week-by-week study roadmap",
	Long:  "Computes skill gaps from a company's requirements and a student's self-ratings, ranks them by urgency, and builds a time-boxed weekly study plan. Runs fully offline from JSON files; narrative enrichment via Gemini is optional.",
	RunE:  runRoadmap,
}

var (
	roadmapConfigPath    string
	roadmapRequirements  string
	roadmapRatings       string
	roadmapWeeks         int
	roadmapCompanyName   string
	roadmapCompanyRating float64
	roadmapNarrative     bool
	roadmapVerbose       bool
)

func init() {
	roadmapCmd.Flags().StringVar(&roadmapConfigPath, "config", "", "Path to JSON config file")
	roadmapCmd.Flags().StringVar(&roadmapRequirements, "requirements", "", "Path to skill requirements JSON file (required)")
	roadmapCmd.Flags().StringVar(&roadmapRatings, "ratings", "", "Path to self-ratings JSON file")
	roadmapCmd.Flags().IntVar(&roadmapWeeks, "weeks", 0, "Available study weeks, 1-52 (default 8)")
	roadmapCmd.Flags().StringVar(&roadmapCompanyName, "company", "", "Target company name")
	roadmapCmd.Flags().Float64Var(&roadmapCompanyRating, "company-rating", 0, "Company star rating, 0-5")
	roadmapCmd.Flags().BoolVar(&roadmapNarrative, "narrative", false, "Enrich the roadmap with an LLM-generated narrative")
	roadmapCmd.Flags().BoolVar(&roadmapVerbose, "verbose", false, "Print a formatted summary instead of raw JSON")

	rootCmd.AddCommand(roadmapCmd)
}

func runRoadmap(_ *cobra.Command, _ []string) error {
	cfg := config.Config{
		Requirements:  roadmapRequirements,
		Ratings:       roadmapRatings,
		Weeks:         roadmapWeeks,
		CompanyName:   roadmapCompanyName,
		CompanyRating: roadmapCompanyRating,
	}
	if roadmapConfigPath != "" {
		fileCfg, err := config.LoadConfig(roadmapConfigPath)
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	} else {
		cfg = cfg.MergeWithDefaults(config.Config{})
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Requirements == "" {
		return fmt.Errorf("requirements file is required (set --requirements or 'requirements' in config)")
	}

	requirements, err := loadRequirements(cfg.Requirements)
	if err != nil {
		return err
	}

	ratings := types.SelfRatings{}
	if cfg.Ratings != "" {
		ratings, err = loadRatings(cfg.Ratings)
		if err != nil {
			return err
		}
	}

	result := roadmap.Generate(requirements, ratings, cfg.Weeks, cfg.CompanyRating)

	if roadmapNarrative || cfg.Narrative {
		ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
		defer cancel()

		var generator roadmap.Generator
		apiKey := cfg.APIKey
		if apiKey == "" {
			apiKey = os.Getenv("GEMINI_API_KEY")
		}
		if apiKey != "" {
			client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
			if err == nil {
				defer func() { _ = client.Close() }()
				generator = llm.NewNarrativeGenerator(client, llm.TierStandard)
			}
		}
		roadmap.Enrich(ctx, generator, cfg.CompanyName, result, cfg.Weeks)
	}

	if roadmapVerbose || cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintRoadmap(result)
		printer.PrintNarrative(result.Narrative)
		return nil
	}

	return printJSON(result)
}

// loadRequirements reads a skill requirements JSON file and fills in
// proficiency codes derived from the required level when absent.
func loadRequirements(path string) ([]types.SkillRequirement, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read requirements file: %w", err)
	}

	var requirements []types.SkillRequirement
	if err := json.Unmarshal(data, &requirements); err != nil {
		return nil, fmt.Errorf("failed to parse requirements JSON: %w", err)
	}

	for i := range requirements {
		if requirements[i].ProficiencyCode == "" {
			requirements[i].ProficiencyCode = types.ProficiencyCode(requirements[i].RequiredLevel)
		}
	}
	return requirements, nil
}

// loadRatings reads a self-ratings JSON file keyed by skill UUID.
func loadRatings(path string) (types.SelfRatings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read ratings file: %w", err)
	}

	var raw map[string]int
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse ratings JSON: %w", err)
	}

	ratings := make(types.SelfRatings, len(raw))
	for key, rating := range raw {
		id, err := uuid.Parse(key)
		if err != nil {
			return nil, fmt.Errorf("invalid skill ID %q in ratings file: %w", key, err)
		}
		ratings[id] = rating
	}
	return ratings, nil
}

// printJSON writes indented JSON to stdout.
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}
