package types

import "strings"

// JobDescription represents the job posting a resume is tailored against.
type JobDescription struct {
	Title    string `json:"title" validate:"required"`
	Company  string `json:"company,omitempty"`
	Location string `json:"location,omitempty"`
	RawText  string `json:"raw_text" validate:"required"`
}

// Usable reports whether the job description carries enough text to drive
// keyword extraction. Whitespace-only text is not usable.
func (j *JobDescription) Usable() bool {
	return strings.TrimSpace(j.RawText) != ""
}
