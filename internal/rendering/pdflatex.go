package rendering

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// DefaultTimeout bounds one pdflatex invocation.
const DefaultTimeout = 30 * time.Second

// PDFLaTeX renders LaTeX source with the pdflatex binary. Every invocation
// runs in its own temporary directory that is removed afterwards, so
// concurrent runs never share files.
type PDFLaTeX struct {
	Timeout time.Duration
}

// NewPDFLaTeX creates a pdflatex renderer with the given timeout.
// Non-positive timeouts use DefaultTimeout.
func NewPDFLaTeX(timeout time.Duration) *PDFLaTeX {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &PDFLaTeX{Timeout: timeout}
}

// Render compiles the source and measures the resulting page count.
func (r *PDFLaTeX) Render(ctx context.Context, source string) (*Result, error) {
	if _, err := exec.LookPath("pdflatex"); err != nil {
		return nil, &RenderError{
			Message: "pdflatex not found in PATH. Please install a LaTeX distribution (e.g., TeX Live, MiKTeX)",
			Cause:   err,
		}
	}

	workDir, err := os.MkdirTemp("", "resume-render-*")
	if err != nil {
		return nil, &RenderError{Message: "failed to create temporary working directory", Cause: err}
	}
	defer func() { _ = os.RemoveAll(workDir) }()

	texPath := filepath.Join(workDir, "main.tex")
	if err := os.WriteFile(texPath, []byte(source), 0644); err != nil {
		return nil, &RenderError{Message: "failed to write LaTeX source", Cause: err}
	}

	runCtx, cancel := context.WithTimeout(ctx, r.Timeout)
	defer cancel()

	// -interaction=nonstopmode prevents interactive prompts; CommandContext
	// kills the process on timeout or run cancellation.
	cmd := exec.CommandContext(runCtx, "pdflatex",
		"-interaction=nonstopmode", "-halt-on-error", "-output-directory", workDir, texPath)

	var output strings.Builder
	cmd.Stdout = &output
	cmd.Stderr = &output

	runErr := cmd.Run()
	logOutput := output.String()

	if ctxErr := runCtx.Err(); errors.Is(ctxErr, context.DeadlineExceeded) {
		return nil, &TimeoutError{
			Message: fmt.Sprintf("pdflatex exceeded %s", r.Timeout),
			Cause:   ctxErr,
		}
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}

	pdfPath := filepath.Join(workDir, "main.pdf")
	pdf, readErr := os.ReadFile(pdfPath)
	if readErr != nil {
		return nil, &RenderError{
			Message:   "pdflatex produced no PDF output",
			LogOutput: logOutput,
			Cause:     runErr,
		}
	}
	if runErr != nil {
		// pdflatex can emit a PDF despite a non-zero exit; treat a readable
		// PDF as success and let the page count decide.
		if len(pdf) == 0 {
			return nil, &RenderError{Message: "pdflatex failed", LogOutput: logOutput, Cause: runErr}
		}
	}

	pages := CountPages(pdfPath, logOutput)
	return &Result{PDF: pdf, PageCount: pages}, nil
}
