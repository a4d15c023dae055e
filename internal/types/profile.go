// Package types provides type definitions for structured data used throughout the resume-builder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"crypto/sha256"
	"encoding/hex"
)

// Section names recognized in a profile. Sections render in this order.
const (
	SectionExperience     = "experience"
	SectionProjects       = "projects"
	SectionSkills         = "skills"
	SectionEducation      = "education"
	SectionCertifications = "certifications"
)

// SectionOrder is the canonical rendering order for profile sections.
var SectionOrder = []string{
	SectionExperience,
	SectionProjects,
	SectionSkills,
	SectionEducation,
	SectionCertifications,
}

// RequiredSections lists sections that must contribute at least one chunk
// to an assembled resume when the profile has content for them.
var RequiredSections = []string{SectionExperience}

// Seniority represents the seniority level a chunk of resume content evidences.
type Seniority string

// Seniority levels, ordered from least to most senior.
const (
	SeniorityUnknown Seniority = "unknown"
	SeniorityJunior  Seniority = "junior"
	SeniorityMid     Seniority = "mid"
	SenioritySenior  Seniority = "senior"
	SeniorityStaff   Seniority = "staff"
)

// Chunk is one atomic unit of resume content (a bullet, skill, or entry)
// with its own embedding vector.
type Chunk struct {
	ID           string    `json:"id"`
	Section      string    `json:"section"`
	Text         string    `json:"text"`
	Embedding    []float64 `json:"embedding"`
	RecencyScore float64   `json:"recency_score"`
	Seniority    Seniority `json:"seniority,omitempty"`
}

// Dimension returns the length of the chunk's embedding vector.
func (c *Chunk) Dimension() int {
	return len(c.Embedding)
}

// ProfileSection is a named, ordered sequence of chunks.
type ProfileSection struct {
	Name   string  `json:"name"`
	Chunks []Chunk `json:"chunks"`
}

// Profile is the immutable, pre-ingested structured representation of a
// candidate's resume. A Profile is loaded once and never mutated during a
// run; it may be shared across concurrent runs.
type Profile struct {
	Name     string           `json:"name"`
	Sections []ProfileSection `json:"sections"`
}

// Section returns the section with the given name, or nil if absent.
func (p *Profile) Section(name string) *ProfileSection {
	for i := range p.Sections {
		if p.Sections[i].Name == name {
			return &p.Sections[i]
		}
	}
	return nil
}

// AllChunks returns every chunk in section order, preserving each
// section's original chunk order.
func (p *Profile) AllChunks() []Chunk {
	var chunks []Chunk
	for i := range p.Sections {
		chunks = append(chunks, p.Sections[i].Chunks...)
	}
	return chunks
}

// Dimension returns the embedding dimension shared by the profile's chunks,
// or 0 if the profile has no chunks.
func (p *Profile) Dimension() int {
	for i := range p.Sections {
		for j := range p.Sections[i].Chunks {
			return p.Sections[i].Chunks[j].Dimension()
		}
	}
	return 0
}

// ChunkCount returns the total number of chunks across all sections.
func (p *Profile) ChunkCount() int {
	total := 0
	for i := range p.Sections {
		total += len(p.Sections[i].Chunks)
	}
	return total
}

// NewChunkID derives a stable chunk identifier from section and text.
// Identical content always yields the identical id.
func NewChunkID(section, text string) string {
	sum := sha256.Sum256([]byte(section + "\x00" + text))
	return hex.EncodeToString(sum[:8])
}
