package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mohitbhoir789/resume-builder/internal/profile"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List the stored candidate profiles",
	RunE:  runProfiles,
}

var profilesConfigPath string

func init() {
	profilesCmd.Flags().StringVar(&profilesConfigPath, "config", "", "Path to config.json file")
	rootCmd.AddCommand(profilesCmd)
}

func runProfiles(_ *cobra.Command, _ []string) error {
	cfg, err := loadMergedConfig(profilesConfigPath)
	if err != nil {
		return err
	}

	loader, err := profile.NewCacheLoader(cfg.ProfileDir)
	if err != nil {
		return err
	}

	names, err := loader.List(context.Background())
	if err != nil {
		return err
	}
	if len(names) == 0 {
		fmt.Fprintf(os.Stdout, "No profiles found in %s\n", cfg.ProfileDir)
		return nil
	}
	for _, name := range names {
		fmt.Fprintln(os.Stdout, name)
	}
	return nil
}
