package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mohitbhoir789/resume-builder/internal/observability"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate an optimized one-page resume for a job posting",
	Long: `Runs the full pipeline: extracts keywords from the job posting, maps them
onto the profile by embedding similarity, selects the highest-value content
under the one-page budget, and renders the resume, iterating while the ATS
score improves.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	RunE: runGenerate,
}

var (
	generateConfigPath string
	generateProfile    string
	generateJob        jobFlags
	generateTemplate   string
	generateVerbose    bool
)

func init() {
	generateCmd.Flags().StringVar(&generateConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	generateCmd.Flags().StringVarP(&generateProfile, "profile", "p", "", "Name of the stored candidate profile (required)")
	generateJob.register(generateCmd)
	generateCmd.Flags().StringVarP(&generateTemplate, "template", "t", "", "Path to LaTeX template")
	generateCmd.Flags().BoolVarP(&generateVerbose, "verbose", "v", false, "Print detailed pipeline information")
	_ = generateCmd.MarkFlagRequired("profile")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadMergedConfig(generateConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("template") {
		cfg.Template = generateTemplate
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = generateVerbose
	}

	job, err := generateJob.load(ctx, cfg)
	if err != nil {
		return err
	}

	components, err := buildPipeline(ctx, cfg)
	if err != nil {
		return err
	}
	defer components.close()

	result, err := components.optimizer.Generate(ctx, generateProfile, job)
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	if cfg.Verbose {
		printer.PrintKeywords(result.Mapping.Keywords())
		printer.PrintMapping(&result.Mapping)
		printer.PrintScore(&result.ScoreDetail)
	}
	printer.PrintRun(result)

	if result.DocumentPath == "" {
		fmt.Fprintln(os.Stdout, "No document was accepted within the render attempt budget.")
	}
	return nil
}
