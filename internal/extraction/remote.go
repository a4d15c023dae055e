package extraction

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mohitbhoir789/resume-builder/internal/llm"
	"github.com/mohitbhoir789/resume-builder/internal/textutil"
	"github.com/mohitbhoir789/resume-builder/internal/types"
)

// RemoteLLM extracts keywords via a language model for higher recall than
// pattern matching. It is expected to fail sometimes (timeouts, malformed
// responses); callers must wrap it with WithFallback.
type RemoteLLM struct {
	client llm.Client
	tier   llm.ModelTier
}

// NewRemoteLLM creates a remote extraction strategy over the given client.
func NewRemoteLLM(client llm.Client) *RemoteLLM {
	return &RemoteLLM{client: client, tier: llm.TierLite}
}

// Name identifies the strategy in logs and audit output.
func (e *RemoteLLM) Name() string {
	return "remote_llm"
}

// remoteKeyword is the JSON shape the model is asked to produce.
type remoteKeyword struct {
	Term   string  `json:"term"`
	Weight float64 `json:"weight"`
}

type remoteResponse struct {
	Keywords []remoteKeyword `json:"keywords"`
}

// Extract asks the model for a ranked keyword list and normalizes the
// response into inferred keywords.
func (e *RemoteLLM) Extract(ctx context.Context, job types.JobDescription) ([]types.Keyword, error) {
	if !job.Usable() {
		return []types.Keyword{}, nil
	}

	raw, err := e.client.GenerateJSON(ctx, buildExtractionPrompt(job), e.tier)
	if err != nil {
		return nil, &ServiceError{Message: "keyword extraction request failed", Cause: err}
	}

	var resp remoteResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		return nil, &ServiceError{Message: "malformed keyword extraction response", Cause: err}
	}
	if len(resp.Keywords) == 0 {
		return nil, &ServiceError{Message: "empty keyword extraction response"}
	}

	keywords := make([]types.Keyword, 0, len(resp.Keywords))
	for _, rk := range resp.Keywords {
		term := textutil.NormalizeText(rk.Term)
		if term == "" {
			continue
		}
		weight := rk.Weight
		if weight <= 0 || weight > 1 {
			weight = 1.0
		}
		keywords = append(keywords, types.Keyword{
			Term:   term,
			Weight: weight,
			Source: types.SourceInferred,
		})
	}
	if len(keywords) == 0 {
		return nil, &ServiceError{Message: "keyword extraction response had no usable terms"}
	}

	return types.DedupeKeywords(keywords), nil
}

// buildExtractionPrompt constructs the extraction prompt for a job posting.
func buildExtractionPrompt(job types.JobDescription) string {
	var sb strings.Builder

	sb.WriteString("You are an expert job posting parser. Extract the skills, tools, and qualifications an applicant tracking system would screen for.\n\n")
	sb.WriteString("Return ONLY valid JSON matching this exact structure:\n")
	sb.WriteString("{\n  \"keywords\": [{\"term\": string, \"weight\": number between 0 and 1}]\n}\n\n")
	sb.WriteString("IMPORTANT:\n")
	sb.WriteString("- Use short lowercase terms (one or two words), not sentences.\n")
	sb.WriteString("- Weight reflects how central the term is to the role.\n")
	sb.WriteString("- Return ONLY the JSON object, no markdown, no explanation.\n\n")

	if job.Title != "" {
		sb.WriteString(fmt.Sprintf("Job title: %s\n", job.Title))
	}
	if job.Company != "" {
		sb.WriteString(fmt.Sprintf("Company: %s\n", job.Company))
	}
	sb.WriteString("Job posting:\n\"\"\"\n")
	sb.WriteString(job.RawText)
	sb.WriteString("\n\"\"\"\n")

	return sb.String()
}
