package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/docext"
	"github.com/jonathan/resume-analyzer/internal/narrative"
	"github.com/jonathan/resume-analyzer/internal/observability"
	"github.com/jonathan/resume-analyzer/internal/pipeline"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a resume file and produce a score report",
	Long:  "Reads a resume (.pdf or .txt), scores it across the five categories, matches it against configured role profiles, and writes the full analysis result as JSON.",
	RunE:  runAnalyze,
}

var (
	analyzeIn        string
	analyzeConfig    string
	analyzeRoles     []string
	analyzeAI        bool
	analyzeAITimeout time.Duration
	analyzeOut       string
	analyzeVerbose   bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeIn, "in", "i", "", "Resume file to analyze, .pdf or .txt (required)")
	analyzeCmd.Flags().StringVarP(&analyzeConfig, "config", "c", "", "Analyzer config file (default: embedded config)")
	analyzeCmd.Flags().StringSliceVar(&analyzeRoles, "roles", nil, "Role profiles to match against (default: all configured)")
	analyzeCmd.Flags().BoolVar(&analyzeAI, "ai", false, "Generate an AI narrative (requires GEMINI_API_KEY)")
	analyzeCmd.Flags().DurationVar(&analyzeAITimeout, "ai-timeout", 15*time.Second, "Timeout for the AI narrative call")
	analyzeCmd.Flags().StringVarP(&analyzeOut, "out", "o", "", "Output path for the JSON result (default: stdout)")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print a formatted summary to stderr")

	if err := analyzeCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadAnalyzerConfig(analyzeConfig)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(analyzeIn)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	extracted, err := docext.Extract(data, formatForFile(analyzeIn), cfg.Limits)
	if err != nil {
		return fmt.Errorf("failed to extract text: %w", err)
	}

	generator, err := buildGenerator(ctx, analyzeAI)
	if err != nil {
		return err
	}
	defer generator.Close()

	analyzer := pipeline.New(cfg, generator)
	result, err := analyzer.Analyze(ctx, extracted.Text, pipeline.Options{
		Roles:           analyzeRoles,
		Readable:        &extracted.Readable,
		ReadabilityNote: extracted.Note,
		AI:              analyzeAI,
		AITimeout:       analyzeAITimeout,
	})
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if analyzeVerbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintSparse(result.Sparse)
		printer.PrintScoreReport(result.Report)
		printer.PrintRoleMatches(result.RoleMatches)
		printer.PrintInsights(result.Strengths, result.Weaknesses)
		printer.PrintNarrative(result.AI)
	}

	return writeJSON(analyzeOut, result)
}

// loadAnalyzerConfig loads the named config file, or the embedded default.
func loadAnalyzerConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default()
	}
	return config.Load(path)
}

// buildGenerator wires the narrative backend when AI is requested. A missing
// API key is a warning, not a failure: the analysis degrades gracefully.
func buildGenerator(ctx context.Context, ai bool) (narrative.Generator, error) {
	if !ai {
		return narrative.Disabled{}, nil
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Println("Warning: GEMINI_API_KEY not set; AI narrative will be unavailable")
		return narrative.Disabled{}, nil
	}

	generator, err := narrative.NewGeminiGenerator(ctx, apiKey, os.Getenv("GEMINI_MODEL"))
	if err != nil {
		return nil, fmt.Errorf("failed to create narrative generator: %w", err)
	}
	return generator, nil
}

// formatForFile maps a file path to a docext format identifier.
func formatForFile(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return docext.FormatPDF
	case ".txt", ".text":
		return docext.FormatText
	default:
		return filepath.Ext(path)
	}
}

// writeJSON marshals v to the named file, or stdout when path is empty.
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	data = append(data, '\n')

	if path == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	return nil
}
