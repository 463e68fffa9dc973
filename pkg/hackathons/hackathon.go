// Package hackathons defines the core data model for the hackathon
// aggregation system: the persisted Hackathon record, the transient
// Candidate produced by collectors, and the supporting value types
// (statuses, formats, calendar dates).
//
// Records are created and mutated only by the reconciler package; the types
// here are plain data with validation helpers and no behavior of their own.
package hackathons

import (
	"strings"

	"github.com/basedmereum/awesome-ai-agent-hackathons/pkg/errors"
)

// Hackathon is a single aggregated hackathon record as persisted in the
// store. Optional fields are pointers (or empty strings for free text);
// nil/empty means the value is unknown, not that it does not exist.
type Hackathon struct {
	// Core identity
	ID        string `json:"id" yaml:"id"`               // Stable slug derived from the name at creation
	Name      string `json:"name" yaml:"name"`           // Display name
	Organizer string `json:"organizer" yaml:"organizer"` // Organizing company or group
	URL       string `json:"url" yaml:"url"`             // Canonical event URL

	// Lifecycle
	Status Status `json:"status" yaml:"status"`
	Format Format `json:"format" yaml:"format"`

	// Descriptive fields
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Location    string `json:"location,omitempty" yaml:"location,omitempty"` // "City, Country", empty for virtual

	// Temporal fields - each an optional calendar date
	RegistrationOpen     *Date `json:"registrationOpen,omitempty" yaml:"registrationOpen,omitempty"`
	RegistrationDeadline *Date `json:"registrationDeadline,omitempty" yaml:"registrationDeadline,omitempty"`
	SubmissionDeadline   *Date `json:"submissionDeadline,omitempty" yaml:"submissionDeadline,omitempty"`
	ResultsDate          *Date `json:"resultsDate,omitempty" yaml:"resultsDate,omitempty"`

	// Structured optional fields
	PrizePool    *PrizePool      `json:"prizePool,omitempty" yaml:"prizePool,omitempty"`
	Requirements *Requirements   `json:"requirements,omitempty" yaml:"requirements,omitempty"`
	Blockchain   *BlockchainInfo `json:"blockchain,omitempty" yaml:"blockchain,omitempty"`
	Links        *Links          `json:"links,omitempty" yaml:"links,omitempty"`

	// Categories has set semantics: order-insensitive for equality,
	// order-preserving for display. Deduplicated on every merge.
	Categories []string `json:"categories" yaml:"categories"`

	// Provenance
	Source      string  `json:"source" yaml:"source"`           // Collector that first produced the record
	LastUpdated Date    `json:"lastUpdated" yaml:"lastUpdated"` // Date of the last mutation
	Confidence  float64 `json:"confidence" yaml:"confidence"`   // Extraction confidence in [0,1]
}

// PrizePool describes the total prize and an optional named breakdown.
type PrizePool struct {
	Total     float64            `json:"total" yaml:"total"`
	Currency  string             `json:"currency" yaml:"currency"` // ISO-ish code: USD, USDC, ETH, ...
	Breakdown map[string]float64 `json:"breakdown,omitempty" yaml:"breakdown,omitempty"`
}

// Requirements captures participation constraints.
type Requirements struct {
	TechStack   []string  `json:"techStack,omitempty" yaml:"techStack,omitempty"`
	TeamSize    *TeamSize `json:"teamSize,omitempty" yaml:"teamSize,omitempty"`
	Constraints string    `json:"constraints,omitempty" yaml:"constraints,omitempty"`
}

// TeamSize is an inclusive team size range.
type TeamSize struct {
	Min int `json:"min" yaml:"min"`
	Max int `json:"max" yaml:"max"`
}

// BlockchainInfo tags hackathons run by blockchain ecosystems.
type BlockchainInfo struct {
	Chain      string `json:"chain" yaml:"chain"`
	Ecosystem  string `json:"ecosystem,omitempty" yaml:"ecosystem,omitempty"`
	TokenPrize *bool  `json:"tokenPrize,omitempty" yaml:"tokenPrize,omitempty"`
}

// Links is the set of auxiliary URLs for a hackathon. Merging is shallow:
// a candidate's present link kinds overwrite, absent kinds are preserved.
type Links struct {
	Apply       string `json:"apply,omitempty" yaml:"apply,omitempty"`
	Discord     string `json:"discord,omitempty" yaml:"discord,omitempty"`
	Twitter     string `json:"twitter,omitempty" yaml:"twitter,omitempty"`
	PastWinners string `json:"pastWinners,omitempty" yaml:"pastWinners,omitempty"`
}

// Validate checks the record invariants before persistence.
func (h *Hackathon) Validate() error {
	if strings.TrimSpace(h.ID) == "" {
		return &errors.ValidationError{Field: "id", Message: "must not be empty"}
	}
	if strings.TrimSpace(h.Name) == "" {
		return &errors.ValidationError{Field: "name", Message: "must not be empty"}
	}
	if strings.TrimSpace(h.URL) == "" {
		return &errors.ValidationError{Field: "url", Message: "must not be empty"}
	}
	if !h.Status.Valid() {
		return &errors.ValidationError{Field: "status", Value: string(h.Status), Message: "unknown lifecycle status"}
	}
	if h.Format != "" && !h.Format.Valid() {
		return &errors.ValidationError{Field: "format", Value: string(h.Format), Message: "unknown format"}
	}
	if h.Confidence < 0 || h.Confidence > 1 {
		return &errors.ValidationError{Field: "confidence", Value: h.Confidence, Message: "must be in [0,1]"}
	}
	return nil
}

// HasAnyDate reports whether at least one temporal field is known.
// The lifecycle engine treats a record with no dates as having no evidence.
func (h *Hackathon) HasAnyDate() bool {
	return h.RegistrationOpen != nil ||
		h.RegistrationDeadline != nil ||
		h.SubmissionDeadline != nil ||
		h.ResultsDate != nil
}

// HasCategory reports whether the record carries the given tag.
func (h *Hackathon) HasCategory(tag string) bool {
	for _, c := range h.Categories {
		if c == tag {
			return true
		}
	}
	return false
}
