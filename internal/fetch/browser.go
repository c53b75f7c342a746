package fetch

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
)

// MinContentLength is the extracted text length below which a page is
// assumed to be rendered client-side.
const MinContentLength = 500

// DefaultBrowserTimeout bounds a headless render.
const DefaultBrowserTimeout = 30 * time.Second

// ShouldUseBrowser reports whether extracted text is short enough that a
// headless render is worth trying.
func ShouldUseBrowser(extractedText string) bool {
	return len(strings.TrimSpace(extractedText)) < MinContentLength
}

// WithBrowser renders url in headless Chrome and returns the resulting HTML.
// Chrome or Chromium must be installed.
func WithBrowser(ctx context.Context, url string, timeout time.Duration, logger *slog.Logger) (string, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = DefaultBrowserTimeout
	}
	logger.Debug("starting headless browser", "url", url)

	// Create browser context with timeout
	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	// Set timeout
	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	// Navigate, wait for page to be ready, then extract HTML
	var html string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
		// Additional wait for JavaScript to render content
		chromedp.Sleep(2*time.Second),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", fmt.Errorf("browser rendering failed: %w", err)
	}

	logger.Debug("rendered page", "url", url, "bytes", len(html))
	return html, nil
}
