package extraction

import (
	"context"
	"sort"
	"strings"

	"github.com/mohitbhoir789/resume-builder/internal/textutil"
	"github.com/mohitbhoir789/resume-builder/internal/types"
)

const (
	// DefaultTopKeywords caps the keyword set size.
	DefaultTopKeywords = 32

	// earlyTextChars bounds the "early paragraph" region that receives a
	// positional boost.
	earlyTextChars = 400

	// positionBoost multiplies occurrences found in the title or early text.
	positionBoost = 2.0

	// minTermLength filters out single-character noise terms.
	minTermLength = 2
)

// toolTerms are well-known technology terms. Their presence in job text is
// a strong signal regardless of frequency, so they receive a weight floor.
var toolTerms = map[string]bool{
	"python": true, "java": true, "javascript": true, "typescript": true,
	"go": true, "node": true, "react": true, "nextjs": true,
	"aws": true, "gcp": true, "azure": true, "docker": true,
	"kubernetes": true, "terraform": true, "sql": true, "postgres": true,
	"mysql": true, "redis": true, "spark": true, "hadoop": true,
	"kafka": true, "airflow": true, "pytorch": true, "tensorflow": true,
	"pandas": true, "numpy": true, "graphql": true, "grpc": true,
}

// toolWeightFloor is the minimum normalized weight for a known tool term.
const toolWeightFloor = 0.5

// LocalPattern is the deterministic frequency/pattern keyword extractor.
// It never fails: malformed or empty text produces an empty set.
type LocalPattern struct {
	TopK int
}

// NewLocalPattern creates a local extractor keeping the top k keywords.
// Non-positive k falls back to DefaultTopKeywords.
func NewLocalPattern(topK int) *LocalPattern {
	if topK <= 0 {
		topK = DefaultTopKeywords
	}
	return &LocalPattern{TopK: topK}
}

// Name identifies the strategy in logs and audit output.
func (e *LocalPattern) Name() string {
	return "local_pattern"
}

// Extract scores unigram and bigram candidates by frequency, boosting
// occurrences in the title and early text, and normalizes weights so the
// top candidate has weight 1.0.
func (e *LocalPattern) Extract(_ context.Context, job types.JobDescription) ([]types.Keyword, error) {
	if !job.Usable() {
		return []types.Keyword{}, nil
	}

	normalized := textutil.NormalizeText(job.RawText)
	tokens := textutil.Tokenize(job.RawText)
	if len(tokens) == 0 {
		return []types.Keyword{}, nil
	}

	titleTokens := make(map[string]bool)
	for _, t := range textutil.Tokenize(job.Title) {
		titleTokens[t] = true
	}

	early := normalized
	if len(early) > earlyTextChars {
		early = early[:earlyTextChars]
	}

	scores := make(map[string]float64)
	addCandidate := func(term string, offset int) {
		if len(term) < minTermLength {
			return
		}
		boost := 1.0
		// Terms never found verbatim (offset < 0), such as bigrams whose
		// tokens were separated by a stopword, get no positional boost.
		if titleTokens[term] || (offset >= 0 && offset < earlyTextChars) {
			boost = positionBoost
		}
		scores[term] += boost
	}

	for _, tok := range tokens {
		addCandidate(tok, strings.Index(normalized, tok))
	}
	for _, gram := range textutil.Bigrams(tokens) {
		addCandidate(gram, strings.Index(normalized, gram))
	}

	terms := make([]string, 0, len(scores))
	maxScore := 0.0
	for term, score := range scores {
		terms = append(terms, term)
		if score > maxScore {
			maxScore = score
		}
	}
	// Deterministic order: score descending, then lexicographic.
	sort.Slice(terms, func(i, j int) bool {
		if scores[terms[i]] != scores[terms[j]] {
			return scores[terms[i]] > scores[terms[j]]
		}
		return terms[i] < terms[j]
	})

	if len(terms) > e.TopK {
		terms = terms[:e.TopK]
	}

	keywords := make([]types.Keyword, 0, len(terms))
	for _, term := range terms {
		weight := scores[term] / maxScore
		if toolTerms[term] && weight < toolWeightFloor {
			weight = toolWeightFloor
		}
		keywords = append(keywords, types.Keyword{
			Term:   term,
			Weight: weight,
			Source: types.SourceExplicit,
		})
	}

	return types.DedupeKeywords(keywords), nil
}
