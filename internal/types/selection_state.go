package types

// SelectedChunk is a chunk chosen for assembly together with the ranking
// signals that placed it.
type SelectedChunk struct {
	Chunk          Chunk
	Backed         bool    // backs at least one matched keyword
	BestSimilarity float64 // best similarity among keywords it backs
	Critical       bool    // backs a keyword above the critical weight
}

// SectionSelection is the ordered chunk selection for one section.
type SectionSelection struct {
	Section string
	Chunks  []SelectedChunk
}

// SelectionState is the content chosen for one assembly pass. It is a value
// passed between optimizer iterations: budget reductions build a new state
// from the previous one rather than mutating in place.
type SelectionState struct {
	Budget   int // character budget the selection was built under
	Sections []SectionSelection
}

// TotalChars returns the character cost of the selection, counting a small
// per-chunk overhead for list markup.
func (s SelectionState) TotalChars() int {
	total := 0
	for _, sec := range s.Sections {
		for _, sc := range sec.Chunks {
			total += len(sc.Chunk.Text) + chunkOverheadChars
		}
	}
	return total
}

// ChunkCount returns the number of selected chunks across all sections.
func (s SelectionState) ChunkCount() int {
	total := 0
	for _, sec := range s.Sections {
		total += len(sec.Chunks)
	}
	return total
}

// EmptySections returns the names of required sections that ended up with
// no selected chunks even though the profile has chunks for them.
func (s SelectionState) EmptySections(profile *Profile) []string {
	var empty []string
	for _, name := range RequiredSections {
		sec := profile.Section(name)
		if sec == nil || len(sec.Chunks) == 0 {
			continue
		}
		selected := false
		for _, sel := range s.Sections {
			if sel.Section == name && len(sel.Chunks) > 0 {
				selected = true
				break
			}
		}
		if !selected {
			empty = append(empty, name)
		}
	}
	return empty
}

// Clone returns a deep copy of the selection state.
func (s SelectionState) Clone() SelectionState {
	out := SelectionState{Budget: s.Budget, Sections: make([]SectionSelection, len(s.Sections))}
	for i, sec := range s.Sections {
		chunks := make([]SelectedChunk, len(sec.Chunks))
		copy(chunks, sec.Chunks)
		out.Sections[i] = SectionSelection{Section: sec.Section, Chunks: chunks}
	}
	return out
}

// chunkOverheadChars approximates the markup cost of one rendered list item.
const chunkOverheadChars = 2
