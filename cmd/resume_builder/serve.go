package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mohitbhoir789/resume-builder/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for scoring profiles and generating optimized resumes.`,
	RunE:  runServe,
}

var (
	serveConfigPath string
	servePort       int
)

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file")
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadMergedConfig(serveConfigPath)
	if err != nil {
		return err
	}

	components, err := buildPipeline(ctx, cfg)
	if err != nil {
		return err
	}
	defer components.close()

	srv := server.New(server.Config{Port: servePort}, components.optimizer, components.loader, components.store)
	return srv.Start()
}
