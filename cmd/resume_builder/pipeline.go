package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mohitbhoir789/resume-builder/internal/assembly"
	"github.com/mohitbhoir789/resume-builder/internal/config"
	"github.com/mohitbhoir789/resume-builder/internal/embedding"
	"github.com/mohitbhoir789/resume-builder/internal/extraction"
	"github.com/mohitbhoir789/resume-builder/internal/fetch"
	"github.com/mohitbhoir789/resume-builder/internal/llm"
	"github.com/mohitbhoir789/resume-builder/internal/optimizer"
	"github.com/mohitbhoir789/resume-builder/internal/profile"
	"github.com/mohitbhoir789/resume-builder/internal/rendering"
	"github.com/mohitbhoir789/resume-builder/internal/scoring"
	"github.com/mohitbhoir789/resume-builder/internal/selection"
	"github.com/mohitbhoir789/resume-builder/internal/storage"
	"github.com/mohitbhoir789/resume-builder/internal/types"
)

// loadMergedConfig loads the optional config file and applies defaults.
func loadMergedConfig(path string) (config.Config, error) {
	cfg := config.Config{}
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return cfg, err
		}
		cfg = *loaded
	}
	return cfg.MergeWithDefaults(config.Defaults()), nil
}

// pipelineComponents holds everything a command needs to run the pipeline.
type pipelineComponents struct {
	optimizer *optimizer.Optimizer
	loader    profile.Loader
	store     storage.ArtifactStore
	close     func()
}

// buildPipeline wires the pipeline stages from the merged configuration.
// Without an API key, keyword extraction runs on the local pattern
// extractor alone.
func buildPipeline(ctx context.Context, cfg config.Config) (*pipelineComponents, error) {
	loader, err := profile.NewCacheLoader(cfg.ProfileDir)
	if err != nil {
		return nil, err
	}

	local := extraction.NewLocalPattern(cfg.TopKeywords)
	var remote extraction.Strategy
	closeFn := func() {}

	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey != "" {
		client, err := llm.NewGeminiClient(ctx, nil, apiKey)
		if err != nil {
			return nil, fmt.Errorf("failed to create LLM client: %w", err)
		}
		remote = extraction.NewRemoteLLM(client)
		closeFn = func() {
			if err := client.Close(); err != nil {
				log.Printf("failed to close LLM client: %v", err)
			}
		}
	}
	extractor := extraction.WithFallback(remote, local)

	assembler, err := assembly.NewAssembler(cfg.Template, cfg.MaxChunkChars)
	if err != nil {
		closeFn()
		return nil, err
	}

	store, err := storage.NewLocalArtifactStore(cfg.ArtifactsDir)
	if err != nil {
		closeFn()
		return nil, err
	}

	optCfg := optimizer.Config{
		MaxIterations:       cfg.MaxIterations,
		Epsilon:             cfg.Epsilon,
		SimilarityThreshold: cfg.SimilarityThreshold,
		SimilarityMargin:    cfg.SimilarityMargin,
		MaxRenderAttempts:   cfg.MaxRenderAttempts,
		Selection: selection.Config{
			Budget:         cfg.ContentBudget,
			BudgetStep:     cfg.BudgetStep,
			SectionMinimum: cfg.SectionMinimum,
			CriticalWeight: cfg.CriticalWeight,
		},
		Scoring: scoring.Config{
			CriticalWeight:      cfg.CriticalWeight,
			CriticalPenalty:     cfg.CriticalPenalty,
			OverflowPenalty:     cfg.OverflowPenalty,
			EmptySectionPenalty: cfg.EmptySectionPenalty,
		},
	}

	renderer := rendering.NewPDFLaTeX(time.Duration(cfg.RenderTimeoutSeconds) * time.Second)
	provider := embedding.NewHashingProvider(embedding.DefaultDimension)

	return &pipelineComponents{
		optimizer: optimizer.New(loader, extractor, provider, assembler, renderer, store, optCfg),
		loader:    loader,
		store:     store,
		close:     closeFn,
	}, nil
}

// jobFlags are the shared job description inputs for generate and score.
type jobFlags struct {
	file    string
	url     string
	title   string
	company string
}

func (f *jobFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.file, "job", "j", "", "Path to job posting text file (mutually exclusive with --job-url)")
	cmd.Flags().StringVar(&f.url, "job-url", "", "URL to fetch job posting from (mutually exclusive with --job)")
	cmd.Flags().StringVar(&f.title, "title", "", "Job title (optional, overrides fetched title)")
	cmd.Flags().StringVar(&f.company, "company", "", "Company name (optional)")
}

// load resolves the job description from a file or URL.
func (f *jobFlags) load(ctx context.Context, cfg config.Config) (types.JobDescription, error) {
	switch {
	case f.file != "" && f.url != "":
		return types.JobDescription{}, fmt.Errorf("--job and --job-url are mutually exclusive")

	case f.file != "":
		data, err := os.ReadFile(f.file)
		if err != nil {
			return types.JobDescription{}, fmt.Errorf("failed to read job posting file: %w", err)
		}
		return types.JobDescription{
			Title:   f.title,
			Company: f.company,
			RawText: strings.TrimSpace(string(data)),
		}, nil

	case f.url != "":
		opts := fetch.DefaultOptions()
		opts.UseBrowser = cfg.UseBrowser
		job, err := fetch.JobPosting(ctx, f.url, opts)
		if err != nil {
			return types.JobDescription{}, err
		}
		if f.title != "" {
			job.Title = f.title
		}
		if f.company != "" {
			job.Company = f.company
		}
		return *job, nil

	default:
		return types.JobDescription{}, fmt.Errorf("one of --job or --job-url is required")
	}
}
