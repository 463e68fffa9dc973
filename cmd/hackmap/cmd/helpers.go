package cmd

import (
	"context"

	"github.com/spf13/viper"

	"github.com/basedmereum/awesome-ai-agent-hackathons/internal/extract"
	"github.com/basedmereum/awesome-ai-agent-hackathons/internal/scrape"
	"github.com/basedmereum/awesome-ai-agent-hackathons/pkg/errors"
	"github.com/basedmereum/awesome-ai-agent-hackathons/pkg/reconciler"
	"github.com/basedmereum/awesome-ai-agent-hackathons/pkg/store"
)

// openStore constructs the record store selected by configuration.
func openStore() (store.Store, error) {
	backend := viper.GetString("store")
	path := viper.GetString("data-dir")

	switch backend {
	case "files":
		return store.NewFiles(path)
	case "bolt":
		return store.NewBolt(path)
	}
	return nil, &errors.ConfigError{
		Component: "store",
		Message:   "unknown backend " + backend + " (want files or bolt)",
	}
}

// newReconciler builds the reconciliation pipeline over the given store.
func newReconciler(s store.Store) reconciler.Reconciler {
	return reconciler.New(s,
		reconciler.WithMinConfidence(viper.GetFloat64("min-confidence")),
	)
}

// newExtractor builds the LLM extractor from the configured API key.
func newExtractor(ctx context.Context) (*extract.Extractor, error) {
	apiKey := viper.GetString("gemini-api-key")
	if apiKey == "" {
		return nil, errors.ErrAPIKeyRequired
	}
	return extract.New(ctx, apiKey)
}

// newSources returns every collector, optionally limited to a single source
// by id. An empty id selects all of them.
func newSources(extractor scrape.Extractor, only string) ([]scrape.Source, error) {
	all := []scrape.Source{
		scrape.NewDevpost(extractor),
		scrape.NewLablab(extractor),
		scrape.NewEcosystem(extractor),
	}
	if only == "" {
		return all, nil
	}
	for _, s := range all {
		if s.ID() == only {
			return []scrape.Source{s}, nil
		}
	}
	return nil, &errors.ConfigError{
		Component: "scrape",
		Message:   "unknown source " + only,
	}
}
