package types

import "strings"

// KeywordSource indicates how a keyword was derived from the job text.
type KeywordSource string

// Keyword sources.
const (
	// SourceExplicit marks keywords found verbatim in the job text by the
	// local pattern extractor.
	SourceExplicit KeywordSource = "explicit"
	// SourceInferred marks keywords contributed by the remote language
	// model, which may paraphrase or generalize.
	SourceInferred KeywordSource = "inferred"
)

// Keyword is a weighted term extracted from a job description.
type Keyword struct {
	Term   string        `json:"term"`
	Weight float64       `json:"weight"`
	Source KeywordSource `json:"source"`
}

// DedupeKeywords removes case-insensitive duplicates from a keyword list.
// When duplicates collide, the higher weight wins; on equal weights an
// explicit keyword beats an inferred one. Relative order of the surviving
// keywords follows their first appearance.
func DedupeKeywords(keywords []Keyword) []Keyword {
	index := make(map[string]int, len(keywords))
	result := make([]Keyword, 0, len(keywords))

	for _, kw := range keywords {
		key := strings.ToLower(strings.TrimSpace(kw.Term))
		if key == "" {
			continue
		}
		at, seen := index[key]
		if !seen {
			index[key] = len(result)
			result = append(result, kw)
			continue
		}
		existing := result[at]
		if kw.Weight > existing.Weight ||
			(kw.Weight == existing.Weight && kw.Source == SourceExplicit && existing.Source == SourceInferred) {
			result[at] = kw
		}
	}

	return result
}

// TotalWeight sums the weights of all keywords.
func TotalWeight(keywords []Keyword) float64 {
	total := 0.0
	for _, kw := range keywords {
		total += kw.Weight
	}
	return total
}
