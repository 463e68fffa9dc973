// Package reconciler turns untrusted candidates into persisted hackathon
// records. For each candidate it resolves duplicates against the store,
// merges into the matched record or synthesizes a new one, and (in batch
// mode) reclassifies status and persists.
//
// The pipeline is strictly sequential: the record set is reloaded fresh
// before resolving each candidate, so duplicate detection within a batch
// sees every record persisted earlier in the same run.
package reconciler

import (
	"context"
	"time"

	"github.com/basedmereum/awesome-ai-agent-hackathons/pkg/dedup"
	"github.com/basedmereum/awesome-ai-agent-hackathons/pkg/errors"
	"github.com/basedmereum/awesome-ai-agent-hackathons/pkg/hackathons"
	"github.com/basedmereum/awesome-ai-agent-hackathons/pkg/lifecycle"
	"github.com/basedmereum/awesome-ai-agent-hackathons/pkg/logging"
	"github.com/basedmereum/awesome-ai-agent-hackathons/pkg/store"
)

// Reconciler reconciles candidates into the record store.
type Reconciler interface {
	// Reconcile resolves and merges a single candidate against a fresh
	// snapshot of the store. It does not classify status and does not
	// persist: callers apply the lifecycle engine and upsert, which lets
	// them gate low-confidence candidates before paying for a write.
	Reconcile(ctx context.Context, candidate hackathons.Candidate, source string) (*Result, error)

	// Batch reconciles candidates sequentially: resolve, merge or create,
	// classify status, persist. Per-candidate failures are reported in the
	// result and never abort the run.
	Batch(ctx context.Context, candidates []hackathons.Candidate, source string) (*BatchResult, error)
}

// reconciler is the default Reconciler implementation.
type reconciler struct {
	store     store.Store
	resolver  *dedup.Resolver
	merger    *Merger
	lifecycle *lifecycle.Engine
	minConf   float64
}

// Option configures a Reconciler.
type Option func(*reconciler)

// WithResolver overrides the duplicate resolver (e.g. tuned thresholds).
func WithResolver(r *dedup.Resolver) Option {
	return func(rec *reconciler) { rec.resolver = r }
}

// WithLifecycle overrides the lifecycle engine used by Batch.
func WithLifecycle(e *lifecycle.Engine) Option {
	return func(rec *reconciler) { rec.lifecycle = e }
}

// WithClock overrides the wall clock used for LastUpdated stamps.
func WithClock(now func() time.Time) Option {
	return func(rec *reconciler) { rec.merger = NewMerger(now) }
}

// WithMinConfidence drops candidates below the given confidence in Batch,
// before any resolution or write.
func WithMinConfidence(min float64) Option {
	return func(rec *reconciler) { rec.minConf = min }
}

// New creates a Reconciler over the given store.
func New(s store.Store, opts ...Option) Reconciler {
	rec := &reconciler{
		store:     s,
		resolver:  dedup.New(dedup.DefaultConfig()),
		merger:    NewMerger(time.Now),
		lifecycle: lifecycle.New(lifecycle.Config{}),
	}
	for _, opt := range opts {
		opt(rec)
	}
	return rec
}

// Reconcile implements Reconciler.
func (r *reconciler) Reconcile(ctx context.Context, candidate hackathons.Candidate, source string) (*Result, error) {
	if err := candidate.Validate(); err != nil {
		return nil, err
	}

	// Fresh snapshot per candidate: within a sequential batch this makes
	// duplicate detection see everything persisted so far.
	existing, err := r.store.List()
	if err != nil {
		return nil, errors.WrapResource("load", "hackathons", "", err)
	}

	resolution := r.resolver.Resolve(candidate, existing)
	logger := logging.FromContext(ctx)

	if resolution.IsDuplicate {
		match, ok := findByID(existing, resolution.MatchID)
		if !ok {
			// The resolver matched a record the snapshot no longer holds.
			// Creating a fresh record here would mint the very duplicate
			// the resolver exists to prevent, so fail this candidate.
			return nil, &errors.ConsistencyError{
				MatchID: resolution.MatchID,
				Message: "matched record missing from store snapshot",
			}
		}

		merged := r.merger.Merge(match, candidate)
		logger.Debug().
			Str("id", merged.ID).
			Str("name", candidate.Name).
			Float64("similarity", resolution.Similarity).
			Msg("Merged duplicate candidate")

		return &Result{
			Action:     ActionMerged,
			Record:     merged,
			MatchID:    resolution.MatchID,
			Similarity: resolution.Similarity,
		}, nil
	}

	record := r.merger.NewRecord(candidate, source)
	logger.Debug().
		Str("id", record.ID).
		Str("name", candidate.Name).
		Msg("Created new record from candidate")

	return &Result{Action: ActionCreated, Record: record}, nil
}

// Batch implements Reconciler.
func (r *reconciler) Batch(ctx context.Context, candidates []hackathons.Candidate, source string) (*BatchResult, error) {
	logger := logging.FromContext(ctx)
	batch := &BatchResult{}

	for _, candidate := range candidates {
		if err := ctx.Err(); err != nil {
			return batch, err
		}

		if r.minConf > 0 && candidate.Confidence < r.minConf {
			logger.Debug().
				Str("name", candidate.Name).
				Float64("confidence", candidate.Confidence).
				Msg("Skipping low-confidence candidate")
			continue
		}

		result, err := r.Reconcile(ctx, candidate, source)
		if err == nil {
			record, _ := r.lifecycle.UpdateStatus(result.Record)
			err = r.store.Upsert(record)
		}
		if err != nil {
			logger.Error().
				Err(err).
				Str("name", candidate.Name).
				Str("url", candidate.URL).
				Msg("Failed to reconcile candidate")
			batch.Failed = append(batch.Failed, CandidateError{
				Name: candidate.Name,
				URL:  candidate.URL,
				Err:  err,
			})
			continue
		}

		switch result.Action {
		case ActionCreated:
			batch.Created++
		case ActionMerged:
			batch.Merged++
		}
	}

	logger.Info().
		Str("source", source).
		Int("created", batch.Created).
		Int("merged", batch.Merged).
		Int("failed", len(batch.Failed)).
		Msg("Reconciliation batch complete")

	return batch, nil
}

func findByID(records []hackathons.Hackathon, id string) (hackathons.Hackathon, bool) {
	for i := range records {
		if records[i].ID == id {
			return records[i], true
		}
	}
	return hackathons.Hackathon{}, false
}
