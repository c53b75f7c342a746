// Package fetch retrieves resume documents over HTTP and turns HTML pages
// into line-structured text.
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
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent is the user agent string for HTTP requests.
const DefaultUserAgent = "Mozilla/5.0 (compatible; ResumeParser/1.0)"

// DefaultMaxBytes caps the response body that URL will read.
const DefaultMaxBytes = 10 << 20

// Result holds the raw response of a URL fetch.
type Result struct {
	URL         string
	Body        []byte
	ContentType string
	StatusCode  int
}

// HTML returns the body as a string.
func (r *Result) HTML() string {
	return string(r.Body)
}

// Error represents an error during URL fetching.
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

// Options configures the fetch behavior.
type Options struct {
	Timeout   time.Duration
	UserAgent string
	Headers   map[string]string
	MaxBytes  int64
}

// DefaultOptions returns sensible defaults for fetching.
func DefaultOptions() *Options {
	return &Options{
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
		MaxBytes:  DefaultMaxBytes,
	}
}

// URL retrieves a document from urlStr. Known sharing links are rewritten to
// their direct-download form first (see DirectURL). A body larger than
// opts.MaxBytes is an error.
func URL(ctx context.Context, urlStr string, opts *Options) (*Result, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	maxBytes := opts.MaxBytes
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}

	parsedURL, err := url.Parse(urlStr)
	if err != nil || parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, &Error{URL: urlStr, Message: "invalid URL", Cause: err}
	}
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return nil, &Error{URL: urlStr, Message: fmt.Sprintf("unsupported scheme %q", parsedURL.Scheme)}
	}
	target := DirectURL(urlStr)

	client := &http.Client{Timeout: opts.Timeout}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, &Error{URL: urlStr, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("User-Agent", opts.UserAgent)
	for key, value := range opts.Headers {
		req.Header.Set(key, value)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, &Error{URL: urlStr, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBytes+1))
	if err != nil {
		return nil, &Error{URL: urlStr, Message: "failed to read response body", Cause: err}
	}
	if int64(len(body)) > maxBytes {
		return nil, &Error{URL: urlStr, Message: fmt.Sprintf("response body exceeds %d bytes", maxBytes)}
	}

	result := &Result{
		URL:         target,
		Body:        body,
		ContentType: resp.Header.Get("Content-Type"),
		StatusCode:  resp.StatusCode,
	}
	if resp.StatusCode != http.StatusOK {
		return result, &Error{URL: urlStr, Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}
	return result, nil
}

// blockElements end a line of text when rendered.
const blockElements = "p, div, li, tr, h1, h2, h3, h4, h5, h6, section, article, header, blockquote, dt, dd, pre, table, ul, ol"

// ExtractMainText parses HTML and returns its visible text, one line per
// block element. Noise elements are removed first, then the first matching
// content selector is used, falling back to the body.
func ExtractMainText(html string, contentSelectors []string, noiseSelectors ...string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("head, nav, footer, script, style, noscript, template, svg, .cookie-banner, .cookie-consent, .popup").Remove()
	if len(noiseSelectors) > 0 {
		doc.Find(strings.Join(noiseSelectors, ", ")).Remove()
	}

	var mainContent *goquery.Selection
	for _, selector := range contentSelectors {
		if selection := doc.Find(selector); selection.Length() > 0 {
			mainContent = selection.First()
			break
		}
	}
	if mainContent == nil {
		mainContent = doc.Find("body")
	}
	if mainContent.Length() == 0 {
		mainContent = doc.Selection
	}

	mainContent.Find("br").ReplaceWithHtml("\n")
	mainContent.Find("li").PrependHtml("- ")
	mainContent.Find(blockElements).AppendHtml("\n")

	return cleanWhitespace(mainContent.Text()), nil
}

// DefaultTextSelectors returns selectors that usually wrap the main content
// of a personal or portfolio page.
func DefaultTextSelectors() []string {
	return []string{
		"main",
		"article",
		"#resume",
		".resume",
		"#cv",
		".cv",
		".content",
		"#content",
	}
}

// cleanWhitespace collapses runs of spaces inside lines and drops empty lines.
func cleanWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}
