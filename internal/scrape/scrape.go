// Package scrape implements the collectors that discover hackathon pages
// and turn them into candidates for reconciliation. Each source knows where
// listings live and how to find event links; converting a page into
// structured fields is delegated to the extractor.
package scrape

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/basedmereum/awesome-ai-agent-hackathons/pkg/errors"
	"github.com/basedmereum/awesome-ai-agent-hackathons/pkg/hackathons"
)

// userAgent identifies the tracker politely to scraped sites.
const userAgent = "Mozilla/5.0 (compatible; HackathonTracker/1.0; +https://github.com/basedmereum/awesome-ai-agent-hackathons)"

// Source is a collector that produces candidate records from one origin.
type Source interface {
	// ID is the source identifier stamped onto records created from this
	// collector's candidates.
	ID() string

	// Fetch discovers hackathons and returns them as candidates. A source
	// returns whatever it could collect along with the first fatal error;
	// partial results are expected and usable.
	Fetch(ctx context.Context) ([]hackathons.Candidate, error)
}

// Extractor converts a fetched page into a structured candidate.
// Implemented by the extract package; narrow here so sources are testable
// without a live model.
type Extractor interface {
	ExtractContent(ctx context.Context, content, sourceURL string) (hackathons.Candidate, error)
	ExtractURL(ctx context.Context, url string) (hackathons.Candidate, error)
}

// listing is a discovered event link on an index page.
type listing struct {
	URL   string
	Title string
}

// fetcher wraps the shared HTTP fetch/parse plumbing for all sources.
type fetcher struct {
	http *http.Client
}

func newFetcher() *fetcher {
	return &fetcher{http: &http.Client{Timeout: 30 * time.Second}}
}

// get fetches a URL and returns its body.
func (f *fetcher) get(ctx context.Context, source, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", errors.WrapResource("build request", "url", url, err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json, text/html")

	resp, err := f.http.Do(req)
	if err != nil {
		return "", &errors.SourceError{Source: source, URL: url, Message: "fetch failed", Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", &errors.SourceError{Source: source, URL: url, Message: resp.Status}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return "", errors.WrapIO("read", url, err)
	}
	return string(body), nil
}

// document fetches a URL and parses it as HTML.
func (f *fetcher) document(ctx context.Context, source, url string) (*goquery.Document, error) {
	body, err := f.get(ctx, source, url)
	if err != nil {
		return nil, err
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, errors.WrapParse("html", url, err)
	}
	return doc, nil
}

// absoluteURL resolves a possibly relative href against a site base.
func absoluteURL(base, href string) string {
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}
	return strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(href, "/")
}
