package external_services

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html"

	usecasecontract "counselconnect/internal/usecase/contract"
)

// WebScraper fetches a page and extracts its visible text.
type WebScraper struct {
	httpClient *http.Client
}

var _ usecasecontract.IScraper = (*WebScraper)(nil)

func NewWebScraper() *WebScraper {
	return &WebScraper{
		httpClient: &http.Client{Timeout: 20 * time.Second},
	}
}

// ScrapeText downloads the page and returns its text content with
// script and style blocks stripped out.
func (s *WebScraper) ScrapeText(ctx context.Context, link string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, link, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build scrape request: %w", err)
	}
	req.Header.Set("User-Agent", "counselconnect-bot/1.0")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s: %w", link, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to fetch %s: status %d", link, resp.StatusCode)
	}

	doc, err := html.Parse(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s: %w", link, err)
	}

	var sb strings.Builder
	collectText(doc, &sb)
	text := strings.Join(strings.Fields(sb.String()), " ")
	if text == "" {
		return "", fmt.Errorf("no readable text found at %s", link)
	}
	return text, nil
}

func collectText(n *html.Node, sb *strings.Builder) {
	if n.Type == html.ElementNode {
		switch n.Data {
		case "script", "style", "noscript", "iframe":
			return
		}
	}
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
		sb.WriteString(" ")
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, sb)
	}
}
