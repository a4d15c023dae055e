package rendering

import (
	"fmt"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
)

// logPagePattern matches the page count pdflatex reports in its log, e.g.
// "Output written on main.pdf (2 pages, 18574 bytes)".
var logPagePattern = regexp.MustCompile(`Output written on .*\((\d+) page`)

// CountPages determines the page count of a rendered PDF. It tries pdfinfo
// first, then the pdflatex log, then ghostscript. A count of 0 means no
// method succeeded and the render is treated as failed.
func CountPages(pdfPath, logOutput string) int {
	if count, err := countPagesWithPdfinfo(pdfPath); err == nil {
		return count
	}
	if m := logPagePattern.FindStringSubmatch(logOutput); m != nil {
		if count, err := strconv.Atoi(m[1]); err == nil {
			return count
		}
	}
	if count, err := countPagesWithGhostscript(pdfPath); err == nil {
		return count
	}
	return 0
}

// countPagesWithPdfinfo uses pdfinfo (poppler-utils) to count pages.
func countPagesWithPdfinfo(pdfPath string) (int, error) {
	cmd := exec.Command("pdfinfo", pdfPath)
	output, err := cmd.Output()
	if err != nil {
		return 0, fmt.Errorf("pdfinfo command failed: %w", err)
	}

	for _, line := range strings.Split(string(output), "\n") {
		if strings.HasPrefix(line, "Pages:") {
			parts := strings.Fields(line)
			if len(parts) >= 2 {
				if count, err := strconv.Atoi(parts[1]); err == nil {
					return count, nil
				}
			}
		}
	}

	return 0, fmt.Errorf("could not parse page count from pdfinfo output")
}

// countPagesWithGhostscript uses ghostscript to count pages.
func countPagesWithGhostscript(pdfPath string) (int, error) {
	script := fmt.Sprintf("(%s) (r) file runpdfbegin pdfpagecount = quit", pdfPath)
	cmd := exec.Command("gs", "-q", "-dNODISPLAY", "-c", script)
	output, err := cmd.Output()
	if err != nil {
		return 0, fmt.Errorf("ghostscript command failed: %w", err)
	}

	count, err := strconv.Atoi(strings.TrimSpace(string(output)))
	if err != nil {
		return 0, fmt.Errorf("could not parse page count from ghostscript output: %s", strings.TrimSpace(string(output)))
	}
	return count, nil
}
