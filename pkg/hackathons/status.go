package hackathons

import "fmt"

// Status represents where a hackathon sits in its lifecycle.
// It is derived from the record's dates by the lifecycle engine; the stored
// value is only authoritative when no date evidence exists.
type Status string

// Lifecycle states, in chronological order.
const (
	StatusUpcoming         Status = "upcoming"          // Registration has not opened yet
	StatusRegistrationOpen Status = "registration_open" // Accepting registrations
	StatusActive           Status = "active"            // Registration closed, building phase
	StatusJudging          Status = "judging"           // Submissions closed, results pending
	StatusCompleted        Status = "completed"         // Results announced or event long past
)

// Statuses lists all lifecycle states in chronological order.
func Statuses() []Status {
	return []Status{
		StatusUpcoming,
		StatusRegistrationOpen,
		StatusActive,
		StatusJudging,
		StatusCompleted,
	}
}

// String returns the status as its wire literal.
func (s Status) String() string { return string(s) }

// Valid reports whether the status is one of the five lifecycle states.
func (s Status) Valid() bool {
	switch s {
	case StatusUpcoming, StatusRegistrationOpen, StatusActive, StatusJudging, StatusCompleted:
		return true
	}
	return false
}

// ParseStatus converts a wire literal into a Status.
// Unknown literals are an error: consumers grouping by status must surface
// them rather than silently dropping records.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.Valid() {
		return "", fmt.Errorf("unknown hackathon status %q", s)
	}
	return status, nil
}

// Format describes how a hackathon is held.
type Format string

// Hackathon formats.
const (
	FormatVirtual  Format = "virtual"
	FormatInPerson Format = "in-person"
	FormatHybrid   Format = "hybrid"
)

// String returns the format as its wire literal.
func (f Format) String() string { return string(f) }

// Valid reports whether the format is a known value.
func (f Format) Valid() bool {
	switch f {
	case FormatVirtual, FormatInPerson, FormatHybrid:
		return true
	}
	return false
}
