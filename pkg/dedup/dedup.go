// Package dedup decides whether an incoming candidate describes a hackathon
// that already exists in the record set. Absence of a match is a valid,
// common result, not an error.
//
// Resolution rules, in order, first match wins:
//
//  1. Exact normalized-URL equality: authoritative, similarity 1.0.
//  2. Fuzzy name similarity above the corroborated threshold, backed by an
//     equal organizer or a textually identical submission deadline.
//  3. Fuzzy name similarity above the strong threshold, alone.
//
// Titles like "AI Hackathon 2026" recur across unrelated events, so
// name-only matching needs a very high bar; the medium bar is acceptable
// only with corroboration.
package dedup

import (
	"net/url"
	"strings"

	"github.com/basedmereum/awesome-ai-agent-hackathons/pkg/hackathons"
	"github.com/basedmereum/awesome-ai-agent-hackathons/pkg/match"
)

// Default similarity thresholds. They are configuration rather than fixed
// law, but the defaults are load-bearing for behavioral parity with
// existing stores.
const (
	// DefaultNameThreshold is the bar for name similarity when corroborated
	// by organizer or submission deadline.
	DefaultNameThreshold = 0.85

	// DefaultStrongNameThreshold is the bar for name similarity alone.
	DefaultStrongNameThreshold = 0.95
)

// Config tunes the resolver's fuzzy-match thresholds.
type Config struct {
	NameThreshold       float64
	StrongNameThreshold float64
}

// DefaultConfig returns the stock thresholds.
func DefaultConfig() Config {
	return Config{
		NameThreshold:       DefaultNameThreshold,
		StrongNameThreshold: DefaultStrongNameThreshold,
	}
}

// Result is the outcome of resolving a candidate against the record set.
type Result struct {
	IsDuplicate bool
	MatchID     string  // id of the matched record, empty when not a duplicate
	Similarity  float64 // name similarity of the match, 1.0 for URL matches
}

// Resolver matches candidates against existing records.
type Resolver struct {
	cfg Config
}

// New creates a Resolver with the given config; zero thresholds fall back
// to the defaults.
func New(cfg Config) *Resolver {
	if cfg.NameThreshold == 0 {
		cfg.NameThreshold = DefaultNameThreshold
	}
	if cfg.StrongNameThreshold == 0 {
		cfg.StrongNameThreshold = DefaultStrongNameThreshold
	}
	return &Resolver{cfg: cfg}
}

// Resolve scans existing records in their given order and reports the first
// record the candidate duplicates, if any. The linear first-match-wins scan
// keeps URL matches authoritative over fuzzy ones within each record.
func (r *Resolver) Resolve(candidate hackathons.Candidate, existing []hackathons.Hackathon) Result {
	candidateURL := NormalizeURL(candidate.URL)
	candidateName := strings.ToLower(candidate.Name)
	candidateOrganizer := strings.ToLower(candidate.Organizer)

	for i := range existing {
		entry := &existing[i]

		// Exact URL match: zero false positives.
		if candidateURL != "" && candidateURL == NormalizeURL(entry.URL) {
			return Result{IsDuplicate: true, MatchID: entry.ID, Similarity: 1.0}
		}

		similarity := match.JaroWinkler(candidateName, strings.ToLower(entry.Name))

		// Fuzzy name plus corroborating organizer or deadline.
		if similarity > r.cfg.NameThreshold {
			sameOrganizer := candidateOrganizer != "" &&
				candidateOrganizer == strings.ToLower(entry.Organizer)
			sameDeadline := candidate.SubmissionDeadline != nil &&
				entry.SubmissionDeadline != nil &&
				candidate.SubmissionDeadline.String() == entry.SubmissionDeadline.String()

			if sameOrganizer || sameDeadline {
				return Result{IsDuplicate: true, MatchID: entry.ID, Similarity: similarity}
			}
		}

		// Very high name similarity alone.
		if similarity > r.cfg.StrongNameThreshold {
			return Result{IsDuplicate: true, MatchID: entry.ID, Similarity: similarity}
		}
	}

	return Result{}
}

// NormalizeURL reduces a URL to lower-cased host+path with no scheme and no
// trailing slash, so that scheme, host casing, and trailing-slash variants
// of the same page compare equal. Unparseable input degrades to a
// lower-cased copy rather than an error.
func NormalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return strings.ToLower(strings.TrimSuffix(raw, "/"))
	}
	return strings.ToLower(strings.TrimSuffix(u.Host+u.Path, "/"))
}
