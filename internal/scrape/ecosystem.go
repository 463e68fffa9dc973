package scrape

import (
	"context"

	"github.com/basedmereum/awesome-ai-agent-hackathons/pkg/hackathons"
	"github.com/basedmereum/awesome-ai-agent-hackathons/pkg/logging"
)

// EcosystemPage is a known blockchain-ecosystem page that lists or
// describes AI agent hackathons.
type EcosystemPage struct {
	URL   string
	Chain string
	Name  string
}

// defaultEcosystemPages is the curated page list, one entry per known
// ecosystem hackathon program.
var defaultEcosystemPages = []EcosystemPage{
	// Solana
	{URL: "https://colosseum.com/agent-hackathon/", Chain: "Solana", Name: "Colosseum Agent Hackathon"},
	{URL: "https://hackathon.sendai.fun/", Chain: "Solana", Name: "Solana AI Hackathon (SendAI)"},
	// Sui
	{URL: "https://sui.io/sui-agent-typhoon", Chain: "Sui", Name: "Sui Agent Typhoon"},
	{URL: "https://sui.io/hackathon", Chain: "Sui", Name: "Sui Hackathons"},
	// Aptos
	{URL: "https://thunderdome.hackerearth.com/", Chain: "Aptos", Name: "Aptos AI Agent Takeover"},
	// Fetch.ai
	{URL: "https://innovationlab.fetch.ai/events", Chain: "Fetch.ai", Name: "Fetch.ai Innovation Lab"},
	// NEAR
	{URL: "https://near.org/ecosystem/hackathons", Chain: "NEAR", Name: "NEAR Hackathons"},
	// Avalanche
	{URL: "https://build.avax.network/build-games", Chain: "Avalanche", Name: "Avalanche Build Games"},
	{URL: "https://build.avax.network/hackathons", Chain: "Avalanche", Name: "Avalanche Hackathons"},
}

// Ecosystem collects hackathons from curated blockchain-ecosystem pages.
type Ecosystem struct {
	fetcher   *fetcher
	extractor Extractor
	pages     []EcosystemPage
}

var _ Source = (*Ecosystem)(nil)

// NewEcosystem creates the blockchain-ecosystem collector.
func NewEcosystem(extractor Extractor, pages ...EcosystemPage) *Ecosystem {
	if len(pages) == 0 {
		pages = defaultEcosystemPages
	}
	return &Ecosystem{
		fetcher:   newFetcher(),
		extractor: extractor,
		pages:     pages,
	}
}

// ID implements Source.
func (e *Ecosystem) ID() string { return "blockchain" }

// Fetch implements Source. Each page is extracted directly; the chain from
// the curated list backfills blockchain info the extractor could not find.
func (e *Ecosystem) Fetch(ctx context.Context) ([]hackathons.Candidate, error) {
	logger := logging.FromContext(ctx)

	var candidates []hackathons.Candidate
	for _, page := range e.pages {
		if err := ctx.Err(); err != nil {
			return candidates, err
		}

		body, err := e.fetcher.get(ctx, e.ID(), page.URL)
		if err != nil {
			logger.Error().Err(err).Str("url", page.URL).Str("chain", page.Chain).Msg("Ecosystem page fetch failed")
			continue
		}

		candidate, err := e.extractor.ExtractContent(ctx, body, page.URL)
		if err != nil {
			logger.Error().Err(err).Str("url", page.URL).Msg("Ecosystem extraction failed")
			continue
		}

		if candidate.Blockchain == nil {
			candidate.Blockchain = &hackathons.BlockchainInfo{Chain: page.Chain}
		}
		candidates = append(candidates, candidate)
	}

	return candidates, nil
}
