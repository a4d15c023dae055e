// Package rendering invokes the external document renderer and measures
// its output.
package rendering

import "context"

// Result is the output of one render invocation.
type Result struct {
	PDF       []byte
	PageCount int
}

// Renderer turns LaTeX source into a PDF with a measured page count.
// Implementations must honor context cancellation: an interrupted render
// must not leave orphaned processes or partial files behind. Renderers
// must be safe for concurrent invocation from multiple runs.
type Renderer interface {
	Render(ctx context.Context, source string) (*Result, error)
}
