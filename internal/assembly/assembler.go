// Package assembly renders a content selection into LaTeX source via
// template fill. Assembly is pure: no network or filesystem side effects
// at render time, and identical selections produce byte-identical output.
package assembly

import (
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/mohitbhoir789/resume-builder/internal/types"
)

// DefaultMaxChunkChars clips any single chunk to roughly three rendered
// lines.
const DefaultMaxChunkChars = 220

// TemplateData is the data structure passed to the LaTeX template.
type TemplateData struct {
	Title    string
	Company  string
	Sections []SectionData
}

// SectionData is one rendered resume section.
type SectionData struct {
	Heading string
	Items   []string
}

// Assembler fills a parsed LaTeX template from a SelectionState.
type Assembler struct {
	tmpl          *template.Template
	maxChunkChars int
}

// NewAssembler parses the template at path, or the built-in one-page
// template when path is empty. maxChunkChars bounds single-chunk length;
// non-positive values use DefaultMaxChunkChars.
func NewAssembler(path string, maxChunkChars int) (*Assembler, error) {
	if maxChunkChars <= 0 {
		maxChunkChars = DefaultMaxChunkChars
	}

	source := defaultTemplate
	if path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, &TemplateError{Message: fmt.Sprintf("failed to read template file: %s", path), Cause: err}
		}
		source = string(content)
	}

	tmpl, err := template.New("resume").Funcs(template.FuncMap{
		"escape": EscapeLaTeX,
	}).Parse(source)
	if err != nil {
		return nil, &TemplateError{Message: "failed to parse template", Cause: err}
	}

	return &Assembler{tmpl: tmpl, maxChunkChars: maxChunkChars}, nil
}

// Assemble renders the selection into LaTeX source.
func (a *Assembler) Assemble(state types.SelectionState, job types.JobDescription) (string, error) {
	data := TemplateData{
		Title:   job.Title,
		Company: job.Company,
	}

	for _, sec := range state.Sections {
		if len(sec.Chunks) == 0 {
			continue
		}
		section := SectionData{Heading: headingFor(sec.Section)}
		for _, sc := range sec.Chunks {
			section.Items = append(section.Items, ClipText(sc.Chunk.Text, a.maxChunkChars))
		}
		data.Sections = append(data.Sections, section)
	}

	var out strings.Builder
	if err := a.tmpl.Execute(&out, data); err != nil {
		return "", &TemplateError{Message: "failed to execute template", Cause: err}
	}
	return out.String(), nil
}

// headingFor maps section names to display headings.
func headingFor(section string) string {
	switch section {
	case types.SectionExperience:
		return "Experience"
	case types.SectionProjects:
		return "Projects"
	case types.SectionSkills:
		return "Skills"
	case types.SectionEducation:
		return "Education"
	case types.SectionCertifications:
		return "Certifications"
	default:
		if section == "" {
			return "Other"
		}
		return strings.ToUpper(section[:1]) + section[1:]
	}
}

// TemplateError represents a template parsing or execution failure.
type TemplateError struct {
	Message string
	Cause   error
}

func (e *TemplateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("template error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("template error: %s", e.Message)
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}

// defaultTemplate is the built-in one-page resume layout.
const defaultTemplate = `\documentclass[10pt]{article}
\usepackage[margin=0.6in]{geometry}
\usepackage{enumitem}
\pagestyle{empty}
\setlist[itemize]{noitemsep,topsep=2pt,leftmargin=*}
\begin{document}
{{- if .Title}}
\begin{center}{\Large \textbf{ {{- escape .Title -}} }}{{if .Company}} --- {{escape .Company}}{{end}}\end{center}
{{- end}}
{{- range .Sections}}
\section*{ {{- .Heading -}} }
\begin{itemize}
{{- range .Items}}
  \item {{escape .}}
{{- end}}
\end{itemize}
{{- end}}
\end{document}
`
