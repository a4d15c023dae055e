package types

// MappingEntry records a keyword matched against profile content, with the
// chunk ids that back it and the best cosine similarity observed.
type MappingEntry struct {
	Keyword         Keyword  `json:"keyword"`
	MatchedChunkIDs []string `json:"matched_chunk_ids"`
	Similarity      float64  `json:"similarity"`
}

// MappingResult partitions a keyword set into matched and missing keywords.
// Every input keyword appears in exactly one of the two lists.
type MappingResult struct {
	Matched []MappingEntry `json:"matched"`
	Missing []Keyword      `json:"missing"`
}

// Keywords returns the full keyword set the mapping was computed over,
// matched entries first, in their mapped order.
func (m *MappingResult) Keywords() []Keyword {
	keywords := make([]Keyword, 0, len(m.Matched)+len(m.Missing))
	for _, entry := range m.Matched {
		keywords = append(keywords, entry.Keyword)
	}
	keywords = append(keywords, m.Missing...)
	return keywords
}

// BackedChunkIDs returns the set of chunk ids referenced by any matched
// entry, mapped to the highest similarity among the entries that reference
// them.
func (m *MappingResult) BackedChunkIDs() map[string]float64 {
	backed := make(map[string]float64)
	for _, entry := range m.Matched {
		for _, id := range entry.MatchedChunkIDs {
			if sim, ok := backed[id]; !ok || entry.Similarity > sim {
				backed[id] = entry.Similarity
			}
		}
	}
	return backed
}

// CriticalChunkIDs returns the chunk ids backing keywords whose weight
// exceeds the given critical threshold.
func (m *MappingResult) CriticalChunkIDs(criticalWeight float64) map[string]bool {
	critical := make(map[string]bool)
	for _, entry := range m.Matched {
		if entry.Keyword.Weight <= criticalWeight {
			continue
		}
		for _, id := range entry.MatchedChunkIDs {
			critical[id] = true
		}
	}
	return critical
}
