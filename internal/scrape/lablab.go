package scrape

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/basedmereum/awesome-ai-agent-hackathons/pkg/hackathons"
	"github.com/basedmereum/awesome-ai-agent-hackathons/pkg/logging"
)

// lablabIndexes are the event index pages scanned on every run.
var lablabIndexes = []string{
	"https://lablab.ai/ai-hackathons",
	"https://lablab.ai/event",
}

// agentKeywords gate which lablab events are worth extracting: the site
// hosts all kinds of AI hackathons and only agent-related ones belong here.
var agentKeywords = []string{
	"ai agent", "agentic", "autonomous agent", "multi-agent",
	"mcp", "langchain", "crewai", "autogen",
}

// Lablab collects hackathons from lablab.ai event listings.
type Lablab struct {
	fetcher   *fetcher
	extractor Extractor
	indexes   []string
}

var _ Source = (*Lablab)(nil)

// NewLablab creates the lablab.ai collector.
func NewLablab(extractor Extractor) *Lablab {
	return &Lablab{
		fetcher:   newFetcher(),
		extractor: extractor,
		indexes:   lablabIndexes,
	}
}

// ID implements Source.
func (l *Lablab) ID() string { return "lablab" }

// Fetch implements Source.
func (l *Lablab) Fetch(ctx context.Context) ([]hackathons.Candidate, error) {
	logger := logging.FromContext(ctx)

	seen := make(map[string]bool)
	var listings []listing

	for _, indexURL := range l.indexes {
		doc, err := l.fetcher.document(ctx, l.ID(), indexURL)
		if err != nil {
			logger.Error().Err(err).Str("url", indexURL).Msg("Lablab index fetch failed")
			continue
		}

		doc.Find("a[href*='/event/'], a[href*='/ai-hackathons/']").Each(func(_ int, sel *goquery.Selection) {
			href, ok := sel.Attr("href")
			if !ok {
				return
			}
			url := absoluteURL("https://lablab.ai", href)

			// Event pages only, not the indexes themselves.
			if url == indexURL || (!strings.Contains(url, "/event/") && !strings.Contains(url, "/ai-hackathons/")) {
				return
			}
			if seen[url] {
				return
			}

			title := strings.TrimSpace(sel.Find("h2, h3, .title").First().Text())
			if title == "" {
				title = strings.TrimSpace(sel.Text())
				if len(title) > 100 {
					title = title[:100]
				}
			}

			seen[url] = true
			listings = append(listings, listing{URL: url, Title: title})
		})
	}

	logger.Info().Int("listings", len(listings)).Msg("Lablab listings discovered")

	var candidates []hackathons.Candidate
	for _, item := range listings {
		if err := ctx.Err(); err != nil {
			return candidates, err
		}
		body, err := l.fetcher.get(ctx, l.ID(), item.URL)
		if err != nil {
			logger.Error().Err(err).Str("url", item.URL).Msg("Lablab event fetch failed")
			continue
		}
		if !mentionsAgents(body) {
			logger.Debug().Str("url", item.URL).Msg("Skipping non-agent lablab event")
			continue
		}
		candidate, err := l.extractor.ExtractContent(ctx, body, item.URL)
		if err != nil {
			logger.Error().Err(err).Str("url", item.URL).Msg("Lablab extraction failed")
			continue
		}
		candidates = append(candidates, candidate)
	}

	return candidates, nil
}

// mentionsAgents reports whether page content looks agent-related.
func mentionsAgents(body string) bool {
	lower := strings.ToLower(body)
	for _, kw := range agentKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
