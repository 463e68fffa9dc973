// Package lifecycle computes a hackathon's canonical status from its date
// fields and the current date. There is no persisted state machine: each
// evaluation reclassifies from scratch off wall-clock time, so the engine is
// idempotent and safe to run redundantly.
package lifecycle

import (
	"time"

	"github.com/basedmereum/awesome-ai-agent-hackathons/pkg/hackathons"
)

// DefaultJudgingWindowDays is the implicit judging window applied after a
// submission deadline when no results date is known.
const DefaultJudgingWindowDays = 14

// Config tunes the lifecycle engine.
type Config struct {
	// JudgingWindowDays is the assumed judging duration when a record has a
	// submission deadline but no results date. Zero falls back to the default.
	JudgingWindowDays int
}

// Engine classifies records. The zero value is not usable; construct with New.
type Engine struct {
	judgingWindowDays int
	now               func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the wall clock, for tests and replay.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// New creates a lifecycle engine.
func New(cfg Config, opts ...Option) *Engine {
	e := &Engine{
		judgingWindowDays: cfg.JudgingWindowDays,
		now:               time.Now,
	}
	if e.judgingWindowDays == 0 {
		e.judgingWindowDays = DefaultJudgingWindowDays
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Classify returns the status a record should hold as of the given date.
//
// Decision order, first matching rule wins:
//
//  1. Results date passed: completed.
//  2. Submission deadline passed: judging until the results date, or until
//     the implicit judging window elapses when no results date is known,
//     then completed.
//  3. Registration deadline passed: active (building, submissions open).
//  4. Registration open date known: registration_open once reached,
//     upcoming before.
//  5. No open date, registration deadline still ahead: registration_open.
//  6. Submission deadline still ahead: active.
//  7. No date evidence at all: preserve the stored status. Absence of dates
//     is not evidence of completion.
//  8. Otherwise: completed.
func (e *Engine) Classify(h hackathons.Hackathon, asOf hackathons.Date) hackathons.Status {
	regOpen := h.RegistrationOpen
	regClose := h.RegistrationDeadline
	submitClose := h.SubmissionDeadline
	results := h.ResultsDate

	if results != nil && asOf.After(*results) {
		return hackathons.StatusCompleted
	}

	if submitClose != nil && asOf.After(*submitClose) {
		if results != nil {
			// Rule 1 handles a passed results date, so reaching here
			// means asOf <= results.
			return hackathons.StatusJudging
		}
		if !asOf.After(submitClose.AddDays(e.judgingWindowDays)) {
			return hackathons.StatusJudging
		}
		return hackathons.StatusCompleted
	}

	if regClose != nil && asOf.After(*regClose) {
		return hackathons.StatusActive
	}

	if regOpen != nil {
		if asOf.Before(*regOpen) {
			return hackathons.StatusUpcoming
		}
		return hackathons.StatusRegistrationOpen
	}

	if regClose != nil && !asOf.After(*regClose) {
		return hackathons.StatusRegistrationOpen
	}

	if submitClose != nil && !asOf.After(*submitClose) {
		return hackathons.StatusActive
	}

	if !h.HasAnyDate() {
		return h.Status
	}

	return hackathons.StatusCompleted
}

// UpdateStatus reclassifies a record against the engine's clock. It returns
// the record unchanged when the status holds, avoiding write amplification
// in the persistence layer; on a status change the returned copy carries
// the new status and a bumped LastUpdated.
func (e *Engine) UpdateStatus(h hackathons.Hackathon) (hackathons.Hackathon, bool) {
	today := hackathons.DateOf(e.now())
	status := e.Classify(h, today)
	if status == h.Status {
		return h, false
	}
	h.Status = status
	h.LastUpdated = today
	return h, true
}
