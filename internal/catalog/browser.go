// Package catalog - browser.go provides headless browser rendering for
// JavaScript-rendered schedule pages.
package catalog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
)

// MinPageContentLength is the minimum extracted HTML length to consider a
// plain HTTP fetch of a schedule page successful. Shorter pages are likely
// client-rendered and need the browser fallback.
const MinPageContentLength = 500

// ShouldUseRendered returns true if a fetched schedule page is too short to
// contain a course table, indicating a JavaScript-rendered deployment.
func ShouldUseRendered(html string) bool {
	return len(strings.TrimSpace(html)) < MinPageContentLength
}

// FetchRendered renders a schedule page in a headless browser and returns the
// rendered HTML for ParseScheduleHTML. Requires Chrome/Chromium on the system.
func FetchRendered(ctx context.Context, pageURL string, timeout time.Duration) (string, error) {
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

	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	var html string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(pageURL),
		chromedp.WaitReady("body"),
		// Give the schedule table time to render.
		chromedp.Sleep(2*time.Second),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", fmt.Errorf("browser rendering failed for %s: %w", pageURL, err)
	}

	return html, nil
}
