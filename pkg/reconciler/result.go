package reconciler

import "github.com/basedmereum/awesome-ai-agent-hackathons/pkg/hackathons"

// Action describes what reconciliation did with a candidate.
type Action string

const (
	// ActionCreated means the candidate matched nothing and a new record
	// was synthesized.
	ActionCreated Action = "created"

	// ActionMerged means the candidate was folded into an existing record.
	ActionMerged Action = "merged"
)

// Result is the outcome of reconciling a single candidate.
type Result struct {
	Action     Action
	Record     hackathons.Hackathon
	MatchID    string  // id of the matched record, empty for created
	Similarity float64 // resolver similarity, 0 for created
}

// CandidateError records a per-candidate failure inside a batch.
type CandidateError struct {
	Name string // candidate name, for the batch report
	URL  string
	Err  error
}

// BatchResult summarizes a batch reconciliation run. One bad candidate
// never aborts the run; failures are collected here instead.
type BatchResult struct {
	Created int
	Merged  int
	Failed  []CandidateError
}

// Total returns the number of candidates that were persisted.
func (b *BatchResult) Total() int {
	return b.Created + b.Merged
}
