package ingestion

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"path"

	"github.com/jonathan/resume-builder/internal/fetch"
)

// ErrHTTPRequestFailed wraps failures to retrieve a resume URL.
var ErrHTTPRequestFailed = errors.New("HTTP request failed")

// FromURL downloads a resume and extracts it. Sharing links for known hosts
// are resolved to the document itself. For HTML pages that yield little text
// and opts.UseBrowser set, the page is re-rendered in a headless browser and
// the rendered text is used when the render succeeds.
func FromURL(ctx context.Context, rawURL string, opts Options) (*Document, error) {
	opts = opts.withDefaults()
	logger := opts.Logger

	platform := fetch.DetectPlatform(rawURL)
	logger.Debug("fetching resume", "url", rawURL, "platform", platform)

	// Fetch the raw document
	fetchOpts := fetch.DefaultOptions()
	fetchOpts.MaxBytes = opts.MaxBytes
	result, err := fetch.URL(ctx, rawURL, fetchOpts)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrHTTPRequestFailed, err)
	}
	if err := checkSize(result.Body, opts.MaxBytes); err != nil {
		return nil, err
	}

	// Detect format from the body, then the final URL's extension
	name := urlFilename(result.URL)
	format, mime, err := DetectFormat(name, result.Body)
	if err != nil {
		return nil, err
	}

	doc, err := decode(ctx, name, result.Body, format, mime, platform, opts)
	if err != nil {
		return nil, err
	}

	// Fall back to browser rendering for client-side pages
	if format == FormatHTML && opts.UseBrowser && fetch.ShouldUseBrowser(doc.Text) {
		logger.Info("page text is short, rendering in browser",
			"url", rawURL, "chars", len(doc.Text), "min", fetch.MinContentLength)
		html, renderErr := fetch.WithBrowser(ctx, result.URL, fetch.DefaultBrowserTimeout, logger)
		if renderErr != nil {
			logger.Warn("browser rendering failed, keeping fetched text", "url", rawURL, "error", renderErr)
		} else if rendered, err := decode(ctx, name, []byte(html), FormatHTML, mime, platform, opts); err == nil {
			rendered.Metadata.Rendered = true
			doc = rendered
		}
	}

	doc.Metadata.URL = rawURL
	doc.Metadata.Platform = string(platform)
	return doc, nil
}

// urlFilename returns the last path segment of rawURL.
func urlFilename(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Path == "" || u.Path == "/" {
		return ""
	}
	return path.Base(u.Path)
}
