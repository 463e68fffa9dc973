package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("hackathon", "agent-hack")
	assert.Equal(t, "hackathon with ID agent-hack not found", err.Error())
	assert.True(t, IsNotFound(err))
	assert.True(t, IsNotFound(fmt.Errorf("load: %w", err)))
	assert.False(t, IsNotFound(New("something else")))
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{Field: "confidence", Value: 1.5, Message: "must be in [0,1]"}
	assert.Equal(t, "validation failed for field confidence: must be in [0,1]", err.Error())
	assert.True(t, IsValidationError(err))

	fieldless := &ValidationError{Message: "malformed record"}
	assert.Equal(t, "validation failed: malformed record", fieldless.Error())
}

func TestConsistencyError(t *testing.T) {
	err := &ConsistencyError{MatchID: "ghost", Message: "matched record missing from store snapshot"}
	assert.Equal(t, "store inconsistency for matched record ghost: matched record missing from store snapshot", err.Error())
	assert.True(t, IsStoreInconsistent(err))
	assert.True(t, IsStoreInconsistent(fmt.Errorf("reconcile: %w", err)))

	var consistency *ConsistencyError
	require.True(t, As(fmt.Errorf("reconcile: %w", err), &consistency))
	assert.Equal(t, "ghost", consistency.MatchID)
}

func TestSourceErrorUnwrap(t *testing.T) {
	cause := New("connection refused")
	err := &SourceError{Source: "devpost", URL: "https://devpost.com", Message: "fetch failed", Err: cause}
	assert.Contains(t, err.Error(), "devpost")
	assert.Contains(t, err.Error(), "https://devpost.com")
	assert.True(t, Is(err, cause))

	urlless := &SourceError{Source: "lablab", Message: "rate limited"}
	assert.Equal(t, "source lablab failed: rate limited", urlless.Error())
}

func TestParseErrorUnwrap(t *testing.T) {
	cause := New("unexpected token")
	err := WrapParse("yaml", "data/broken.yaml", cause)
	assert.True(t, Is(err, cause))

	var parse *ParseError
	require.True(t, As(err, &parse))
	assert.Equal(t, "yaml", parse.Format)

	assert.NoError(t, WrapParse("yaml", "x", nil))
}

func TestWrapHelpers(t *testing.T) {
	cause := New("disk full")

	assert.NoError(t, WrapIO("write", "/tmp/x", nil))
	err := WrapIO("write", "/tmp/x", cause)
	assert.True(t, Is(err, cause))
	assert.Contains(t, err.Error(), "/tmp/x")

	assert.NoError(t, WrapResource("save", "hackathon", "id", nil))
	withID := WrapResource("save", "hackathon", "agent-hack", cause)
	assert.Contains(t, withID.Error(), "agent-hack")
	withoutID := WrapResource("load", "hackathons", "", cause)
	assert.Contains(t, withoutID.Error(), "load hackathons")
}
