// Package main implements the prep_agent CLI tool.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/placement-prep/internal/alignment"
	"github.com/jonathan/placement-prep/internal/observability"
	"github.com/jonathan/placement-prep/internal/types"
)

var alignCmd = &cobra.Command{
	Use:   "align",
	Short: "Score a project against a company's innovation strategy",
	Long:  "Compares a project description (themes, technologies, architecture, domain) against a company strategy payload and reports a weighted 0-100 alignment score with a category breakdown.",
	RunE:  runAlign,
}

var (
	alignProject  string
	alignStrategy string
	alignVerbose  bool
)

func init() {
	alignCmd.Flags().StringVar(&alignProject, "project", "", "Path to project description JSON file (required)")
	alignCmd.Flags().StringVar(&alignStrategy, "strategy", "", "Path to company strategy JSON file")
	alignCmd.Flags().BoolVar(&alignVerbose, "verbose", false, "Print a formatted summary instead of raw JSON")

	if err := alignCmd.MarkFlagRequired("project"); err != nil {
		panic(fmt.Sprintf("failed to mark project flag as required: %v", err))
	}

	rootCmd.AddCommand(alignCmd)
}

func runAlign(_ *cobra.Command, _ []string) error {
	projectData, err := os.ReadFile(alignProject)
	if err != nil {
		return fmt.Errorf("failed to read project file: %w", err)
	}
	var project types.Project
	if err := json.Unmarshal(projectData, &project); err != nil {
		return fmt.Errorf("failed to parse project JSON: %w", err)
	}

	// A missing strategy file is not an error: every section of the payload
	// is optional and an absent payload scores as empty sections.
	var strategy *types.CompanyStrategy
	if alignStrategy != "" {
		strategyData, err := os.ReadFile(alignStrategy)
		if err != nil {
			return fmt.Errorf("failed to read strategy file: %w", err)
		}
		strategy = &types.CompanyStrategy{}
		if err := json.Unmarshal(strategyData, strategy); err != nil {
			return fmt.Errorf("failed to parse strategy JSON: %w", err)
		}
	}

	result := alignment.Score(project, strategy)

	if alignVerbose {
		observability.NewPrinter(os.Stdout).PrintAlignment(&result)
		return nil
	}
	return printJSON(result)
}
