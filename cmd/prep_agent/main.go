// Package main provides the entry point for the placement-prep CLI and API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "prep_agent",
	Short: "Placement Preparation Intelligence CLI",
	Long:  "Placement-prep generates prioritized, week-by-week study roadmaps from skill self-assessments and scores candidate projects against company innovation strategies.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
