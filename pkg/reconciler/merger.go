package reconciler

import (
	"regexp"
	"strings"
	"time"

	"github.com/basedmereum/awesome-ai-agent-hackathons/pkg/hackathons"
)

// maxSlugLength bounds generated record ids.
const maxSlugLength = 60

// Merger combines duplicate candidates into their matched records and
// synthesizes new records from unmatched candidates. All operations are
// pure and total: every candidate field is either well-formed or absent by
// the time it reaches this layer.
type Merger struct {
	now func() time.Time
}

// NewMerger creates a Merger using the given clock.
func NewMerger(now func() time.Time) *Merger {
	if now == nil {
		now = time.Now
	}
	return &Merger{now: now}
}

// Merge folds a duplicate candidate into its matched record, field by field,
// under a fill-forward policy: a candidate value replaces the existing one
// only when present; absent candidate fields never blank out known data.
//
// Exceptions to plain replacement:
//   - Categories: set union, existing order preserved, new tags appended.
//   - Links: shallow merge, present kinds overwrite.
//   - Confidence: maximum of the two; confidence never regresses.
//   - LastUpdated: always today, whether or not any field changed.
//
// ID, Source, and Status are untouched; status is recomputed separately by
// the lifecycle engine.
func (m *Merger) Merge(existing hackathons.Hackathon, candidate hackathons.Candidate) hackathons.Hackathon {
	merged := existing

	if candidate.Description != "" {
		merged.Description = candidate.Description
	}
	if candidate.Location != "" {
		merged.Location = candidate.Location
	}
	if candidate.RegistrationOpen != nil {
		merged.RegistrationOpen = candidate.RegistrationOpen
	}
	if candidate.RegistrationDeadline != nil {
		merged.RegistrationDeadline = candidate.RegistrationDeadline
	}
	if candidate.SubmissionDeadline != nil {
		merged.SubmissionDeadline = candidate.SubmissionDeadline
	}
	if candidate.ResultsDate != nil {
		merged.ResultsDate = candidate.ResultsDate
	}
	if candidate.PrizePool != nil {
		merged.PrizePool = candidate.PrizePool
	}
	if candidate.Requirements != nil {
		merged.Requirements = candidate.Requirements
	}
	if candidate.Blockchain != nil {
		merged.Blockchain = candidate.Blockchain
	}

	merged.Categories = unionCategories(existing.Categories, candidate.Categories)
	merged.Links = mergeLinks(existing.Links, candidate.Links)

	if candidate.Confidence > merged.Confidence {
		merged.Confidence = candidate.Confidence
	}
	merged.LastUpdated = hackathons.DateOf(m.now())

	return merged
}

// NewRecord synthesizes a fresh record from a candidate that matched
// nothing. The id is a slug of the name, stable once assigned. The initial
// registration_open status is a provisional default corrected by the next
// lifecycle pass even when the candidate carries no dates at all.
func (m *Merger) NewRecord(candidate hackathons.Candidate, source string) hackathons.Hackathon {
	return hackathons.Hackathon{
		ID:                   Slugify(candidate.Name),
		Name:                 candidate.Name,
		Organizer:            candidate.Organizer,
		URL:                  candidate.URL,
		Status:               hackathons.StatusRegistrationOpen,
		Format:               candidate.Format,
		Description:          candidate.Description,
		Location:             candidate.Location,
		RegistrationOpen:     candidate.RegistrationOpen,
		RegistrationDeadline: candidate.RegistrationDeadline,
		SubmissionDeadline:   candidate.SubmissionDeadline,
		ResultsDate:          candidate.ResultsDate,
		PrizePool:            candidate.PrizePool,
		Requirements:         candidate.Requirements,
		Blockchain:           candidate.Blockchain,
		Links:                candidate.Links,
		Categories:           unionCategories(nil, candidate.Categories),
		Source:               source,
		LastUpdated:          hackathons.DateOf(m.now()),
		Confidence:           candidate.Confidence,
	}
}

// nonAlphanumeric matches runs of characters that are collapsed into a
// single separator when slugifying.
var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a record id from a name: lower-cased, non-alphanumeric
// runs collapsed to single hyphens, trimmed, truncated to 60 characters.
//
// The slug is lossy: two distinct events with the same name collide, and
// the later write overwrites the earlier. Known limitation, kept for id
// stability across existing stores.
func Slugify(name string) string {
	slug := nonAlphanumeric.ReplaceAllString(strings.ToLower(name), "-")
	slug = strings.Trim(slug, "-")
	if len(slug) > maxSlugLength {
		slug = slug[:maxSlugLength]
		slug = strings.TrimRight(slug, "-")
	}
	return slug
}

// unionCategories merges two tag lists with set semantics, preserving the
// existing order and appending unseen candidate tags in their order.
func unionCategories(existing, candidate []string) []string {
	seen := make(map[string]bool, len(existing)+len(candidate))
	union := make([]string, 0, len(existing)+len(candidate))
	for _, lists := range [][]string{existing, candidate} {
		for _, tag := range lists {
			if tag == "" || seen[tag] {
				continue
			}
			seen[tag] = true
			union = append(union, tag)
		}
	}
	return union
}

// mergeLinks shallow-merges candidate links over existing ones: present
// kinds overwrite, absent kinds are preserved.
func mergeLinks(existing, candidate *hackathons.Links) *hackathons.Links {
	if candidate == nil {
		return existing
	}
	if existing == nil {
		merged := *candidate
		return &merged
	}
	merged := *existing
	if candidate.Apply != "" {
		merged.Apply = candidate.Apply
	}
	if candidate.Discord != "" {
		merged.Discord = candidate.Discord
	}
	if candidate.Twitter != "" {
		merged.Twitter = candidate.Twitter
	}
	if candidate.PastWinners != "" {
		merged.PastWinners = candidate.PastWinners
	}
	return &merged
}
