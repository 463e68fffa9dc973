package hackathons

import (
	"strings"

	"github.com/basedmereum/awesome-ai-agent-hackathons/pkg/errors"
)

// Candidate is an untrusted hackathon description produced by a collector
// (scraper, LLM extraction, manual submission). It carries the same shape as
// a Hackathon minus identity, status, and provenance: every field except
// Confidence may be absent. Absent fields never overwrite known data during
// reconciliation.
type Candidate struct {
	Name      string `json:"name" yaml:"name"`
	Organizer string `json:"organizer" yaml:"organizer"`
	URL       string `json:"url" yaml:"url"`
	Format    Format `json:"format,omitempty" yaml:"format,omitempty"`

	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Location    string `json:"location,omitempty" yaml:"location,omitempty"`

	RegistrationOpen     *Date `json:"registrationOpen,omitempty" yaml:"registrationOpen,omitempty"`
	RegistrationDeadline *Date `json:"registrationDeadline,omitempty" yaml:"registrationDeadline,omitempty"`
	SubmissionDeadline   *Date `json:"submissionDeadline,omitempty" yaml:"submissionDeadline,omitempty"`
	ResultsDate          *Date `json:"resultsDate,omitempty" yaml:"resultsDate,omitempty"`

	PrizePool    *PrizePool      `json:"prizePool,omitempty" yaml:"prizePool,omitempty"`
	Requirements *Requirements   `json:"requirements,omitempty" yaml:"requirements,omitempty"`
	Blockchain   *BlockchainInfo `json:"blockchain,omitempty" yaml:"blockchain,omitempty"`
	Links        *Links          `json:"links,omitempty" yaml:"links,omitempty"`

	Categories []string `json:"categories,omitempty" yaml:"categories,omitempty"`

	Confidence float64 `json:"confidence" yaml:"confidence"`
}

// Validate checks that a candidate is well-formed enough to reconcile.
// Malformed candidates are rejected here, before reconciliation, never
// during it: the merge engine is total and assumes clean input.
func (c *Candidate) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return &errors.ValidationError{Field: "name", Message: "must not be empty"}
	}
	if strings.TrimSpace(c.URL) == "" {
		return &errors.ValidationError{Field: "url", Message: "must not be empty"}
	}
	if c.Format != "" && !c.Format.Valid() {
		return &errors.ValidationError{Field: "format", Value: string(c.Format), Message: "unknown format"}
	}
	if c.Confidence < 0 || c.Confidence > 1 {
		return &errors.ValidationError{Field: "confidence", Value: c.Confidence, Message: "must be in [0,1]"}
	}
	return nil
}
