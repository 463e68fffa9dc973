// Package extract turns raw page content into structured hackathon
// candidates using a language model. It is plumbing around the core: the
// model is prompted for a strict JSON schema and the reply is validated into
// a Candidate before it ever reaches reconciliation.
package extract

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"regexp"
	"time"

	"google.golang.org/genai"

	"github.com/basedmereum/awesome-ai-agent-hackathons/pkg/errors"
	"github.com/basedmereum/awesome-ai-agent-hackathons/pkg/hackathons"
	"github.com/basedmereum/awesome-ai-agent-hackathons/pkg/logging"
)

const (
	// DefaultModel is the extraction model. Field extraction is a cheap,
	// high-volume task; a small fast model is deliberate.
	DefaultModel = "gemini-2.0-flash"

	// maxContentBytes bounds how much page text is sent to the model.
	maxContentBytes = 15000

	// userAgent identifies the tracker politely to scraped sites.
	userAgent = "Mozilla/5.0 (compatible; HackathonTracker/1.0; +https://github.com/basedmereum/awesome-ai-agent-hackathons)"
)

// jsonObject finds the first JSON object in a model reply, tolerating
// chatter or code fences around it.
var jsonObject = regexp.MustCompile(`(?s)\{.*\}`)

// Extractor extracts hackathon candidates from web page content.
type Extractor struct {
	client *genai.Client
	model  string
	http   *http.Client
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithModel overrides the extraction model.
func WithModel(model string) Option {
	return func(e *Extractor) { e.model = model }
}

// WithHTTPClient overrides the HTTP client used to fetch pages.
func WithHTTPClient(c *http.Client) Option {
	return func(e *Extractor) { e.http = c }
}

// New creates an Extractor backed by the Gemini API.
func New(ctx context.Context, apiKey string, opts ...Option) (*Extractor, error) {
	if apiKey == "" {
		return nil, errors.ErrAPIKeyRequired
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, errors.WrapResource("create", "genai client", "", err)
	}

	e := &Extractor{
		client: client,
		model:  DefaultModel,
		http:   &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// ExtractContent extracts a candidate from already-fetched page content.
func (e *Extractor) ExtractContent(ctx context.Context, content, sourceURL string) (hackathons.Candidate, error) {
	if len(content) > maxContentBytes {
		content = content[:maxContentBytes]
	}

	prompt := buildPrompt(content, sourceURL)

	resp, err := e.client.Models.GenerateContent(ctx, e.model, genai.Text(prompt), nil)
	if err != nil {
		return hackathons.Candidate{}, &errors.SourceError{
			Source:  "extract",
			URL:     sourceURL,
			Message: "model call failed",
			Err:     err,
		}
	}

	return ParseResponse(resp.Text(), sourceURL)
}

// ExtractURL fetches a page and extracts a candidate from it.
func (e *Extractor) ExtractURL(ctx context.Context, url string) (hackathons.Candidate, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return hackathons.Candidate{}, errors.WrapResource("build request", "url", url, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := e.http.Do(req)
	if err != nil {
		return hackathons.Candidate{}, &errors.SourceError{Source: "extract", URL: url, Message: "fetch failed", Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return hackathons.Candidate{}, &errors.SourceError{
			Source:  "extract",
			URL:     url,
			Message: resp.Status,
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 2<<20))
	if err != nil {
		return hackathons.Candidate{}, errors.WrapIO("read", url, err)
	}

	logging.FromContext(ctx).Debug().
		Str("url", url).
		Int("bytes", len(body)).
		Msg("Fetched page for extraction")

	return e.ExtractContent(ctx, string(body), url)
}

// ParseResponse validates a model reply into a Candidate. Exported so the
// parse path is testable without a live model.
func ParseResponse(reply, sourceURL string) (hackathons.Candidate, error) {
	raw := jsonObject.FindString(reply)
	if raw == "" {
		return hackathons.Candidate{}, &errors.ParseError{
			Format:  "json",
			Message: "no JSON object in extraction response",
		}
	}

	var candidate hackathons.Candidate
	if err := json.Unmarshal([]byte(raw), &candidate); err != nil {
		return hackathons.Candidate{}, errors.WrapParse("json", sourceURL, err)
	}

	// The model sometimes omits the page URL; the source URL is the
	// canonical fallback.
	if candidate.URL == "" {
		candidate.URL = sourceURL
	}

	if err := candidate.Validate(); err != nil {
		return hackathons.Candidate{}, err
	}
	return candidate, nil
}
