// Package fetch retrieves job postings from URLs and reduces them to the
// plain text the extraction stage consumes.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/mohitbhoir789/resume-builder/internal/types"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent identifies the fetcher to job boards.
const DefaultUserAgent = "Mozilla/5.0 (compatible; ResumeBuilder/1.0)"

// Error reports a failed job posting fetch.
type Error struct {
	URL     string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch error for %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Options configures job posting fetches.
type Options struct {
	Timeout        time.Duration
	UserAgent      string
	UseBrowser     bool // render with a headless browser when plain HTTP yields too little text
	BrowserTimeout time.Duration
}

// DefaultOptions returns the default fetch options.
func DefaultOptions() *Options {
	return &Options{
		Timeout:        DefaultTimeout,
		UserAgent:      DefaultUserAgent,
		BrowserTimeout: DefaultTimeout,
	}
}

// JobPosting fetches a job posting URL and returns a JobDescription with
// the page title and extracted text. Pages that render their content with
// JavaScript fall back to a headless browser when opts.UseBrowser is set.
func JobPosting(ctx context.Context, postingURL string, opts *Options) (*types.JobDescription, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	parsed, err := url.Parse(postingURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, &Error{URL: postingURL, Message: "invalid URL", Cause: err}
	}

	html, err := fetchHTML(ctx, postingURL, opts)
	if err != nil {
		return nil, err
	}

	job, err := parsePosting(html)
	if err != nil {
		return nil, &Error{URL: postingURL, Message: "failed to parse posting", Cause: err}
	}

	if opts.UseBrowser && tooShort(job.RawText) {
		rendered, rerr := renderWithBrowser(ctx, postingURL, opts.BrowserTimeout)
		if rerr != nil {
			return nil, &Error{URL: postingURL, Message: "browser rendering failed", Cause: rerr}
		}
		if job, err = parsePosting(rendered); err != nil {
			return nil, &Error{URL: postingURL, Message: "failed to parse rendered posting", Cause: err}
		}
	}

	if !job.Usable() {
		return nil, &Error{URL: postingURL, Message: "posting contains no usable text"}
	}
	return job, nil
}

func fetchHTML(ctx context.Context, postingURL string, opts *Options) (string, error) {
	client := &http.Client{Timeout: opts.Timeout}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, postingURL, nil)
	if err != nil {
		return "", &Error{URL: postingURL, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("User-Agent", opts.UserAgent)

	resp, err := client.Do(req)
	if err != nil {
		return "", &Error{URL: postingURL, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", &Error{URL: postingURL, Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &Error{URL: postingURL, Message: "failed to read response body", Cause: err}
	}
	return string(body), nil
}

// postingSelectors covers the content containers common job boards use,
// most specific first.
var postingSelectors = []string{
	".job-description",
	".job-content",
	"#job-description",
	"#job-content",
	".posting-content",
	".job-details",
	"[data-testid='job-description']",
	"main",
	"article",
	".content",
	"#content",
}

// parsePosting extracts the posting title and body text from HTML.
func parsePosting(html string) (*types.JobDescription, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	doc.Find("nav, footer, header, script, style, noscript, .ad, .ads, .sidebar, .cookie-banner, .popup").Remove()

	title := strings.TrimSpace(doc.Find("h1").First().Text())
	if title == "" {
		title = strings.TrimSpace(doc.Find("title").First().Text())
	}

	content := doc.Find("body")
	for _, selector := range postingSelectors {
		if sel := doc.Find(selector); sel.Length() > 0 {
			content = sel.First()
			break
		}
	}

	return &types.JobDescription{
		Title:   title,
		RawText: collapseLines(content.Text()),
	}, nil
}

// collapseLines trims each line and drops empty ones.
func collapseLines(text string) string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}
