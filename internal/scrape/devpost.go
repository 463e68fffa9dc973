package scrape

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/basedmereum/awesome-ai-agent-hackathons/pkg/hackathons"
	"github.com/basedmereum/awesome-ai-agent-hackathons/pkg/logging"
)

// devpostSearches are the listing queries scanned on every run. Devpost has
// no agent-specific category, so several keyword searches are combined.
var devpostSearches = []string{
	"https://devpost.com/hackathons?search=ai+agent&status[]=open",
	"https://devpost.com/hackathons?search=agentic+ai&status[]=open",
	"https://devpost.com/hackathons?search=autonomous+agent&status[]=open",
	"https://devpost.com/hackathons?search=ai+agent&status[]=upcoming",
	"https://devpost.com/hackathons?search=mcp+agent&status[]=open",
}

// Devpost collects hackathons from devpost.com keyword searches.
type Devpost struct {
	fetcher   *fetcher
	extractor Extractor
	searches  []string
}

var _ Source = (*Devpost)(nil)

// NewDevpost creates the devpost collector.
func NewDevpost(extractor Extractor) *Devpost {
	return &Devpost{
		fetcher:   newFetcher(),
		extractor: extractor,
		searches:  devpostSearches,
	}
}

// ID implements Source.
func (d *Devpost) ID() string { return "devpost" }

// Fetch implements Source: scan each search page for hackathon tiles, then
// extract each event page into a candidate. Individual page failures are
// logged and skipped.
func (d *Devpost) Fetch(ctx context.Context) ([]hackathons.Candidate, error) {
	logger := logging.FromContext(ctx)

	seen := make(map[string]bool)
	var listings []listing

	for _, searchURL := range d.searches {
		doc, err := d.fetcher.document(ctx, d.ID(), searchURL)
		if err != nil {
			logger.Error().Err(err).Str("url", searchURL).Msg("Devpost search failed")
			continue
		}

		doc.Find(".hackathon-tile a.tile-link, a.link-to-hackathon").Each(func(_ int, sel *goquery.Selection) {
			href, ok := sel.Attr("href")
			if !ok {
				return
			}
			title := strings.TrimSpace(sel.Find("h3, .hackathon-title, h2").First().Text())
			if title == "" {
				title = strings.TrimSpace(sel.Text())
			}
			url := absoluteURL("https://devpost.com", href)
			if title == "" || seen[url] {
				return
			}
			seen[url] = true
			listings = append(listings, listing{URL: url, Title: title})
		})
	}

	logger.Info().Int("listings", len(listings)).Msg("Devpost listings discovered")

	var candidates []hackathons.Candidate
	for _, l := range listings {
		if err := ctx.Err(); err != nil {
			return candidates, err
		}
		body, err := d.fetcher.get(ctx, d.ID(), l.URL)
		if err != nil {
			logger.Error().Err(err).Str("url", l.URL).Msg("Devpost event fetch failed")
			continue
		}
		candidate, err := d.extractor.ExtractContent(ctx, body, l.URL)
		if err != nil {
			logger.Error().Err(err).Str("url", l.URL).Msg("Devpost extraction failed")
			continue
		}
		candidates = append(candidates, candidate)
	}

	return candidates, nil
}
