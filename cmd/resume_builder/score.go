package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/mohitbhoir789/resume-builder/internal/observability"
	"github.com/mohitbhoir789/resume-builder/internal/types"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a profile against a job posting without rendering",
	Long: `Extracts keywords from the job posting, maps them onto the profile, and
reports the ATS score with the matched and missing keyword breakdown. No
content selection or rendering happens.`,
	RunE: runScore,
}

var (
	scoreConfigPath string
	scoreProfile    string
	scoreJob        jobFlags
)

func init() {
	scoreCmd.Flags().StringVar(&scoreConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	scoreCmd.Flags().StringVarP(&scoreProfile, "profile", "p", "", "Name of the stored candidate profile (required)")
	scoreJob.register(scoreCmd)
	_ = scoreCmd.MarkFlagRequired("profile")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadMergedConfig(scoreConfigPath)
	if err != nil {
		return err
	}

	job, err := scoreJob.load(ctx, cfg)
	if err != nil {
		return err
	}

	components, err := buildPipeline(ctx, cfg)
	if err != nil {
		return err
	}
	defer components.close()

	detail, err := components.optimizer.Score(ctx, scoreProfile, job)
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintMapping(&types.MappingResult{Matched: detail.Matched, Missing: detail.Missing})
	printer.PrintScore(detail)
	return nil
}
