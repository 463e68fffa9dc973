package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/basedmereum/awesome-ai-agent-hackathons/pkg/errors"
	"github.com/basedmereum/awesome-ai-agent-hackathons/pkg/hackathons"
)

func TestParseResponse(t *testing.T) {
	reply := `{
		"name": "Agent Hack 2026",
		"organizer": "AgentCo",
		"url": "https://agentco.dev/hack",
		"format": "virtual",
		"submissionDeadline": "2026-03-01",
		"prizePool": {"total": 50000, "currency": "USDC"},
		"categories": ["agents", "llm"],
		"confidence": 0.85
	}`

	candidate, err := ParseResponse(reply, "https://source.example/page")
	require.NoError(t, err)
	assert.Equal(t, "Agent Hack 2026", candidate.Name)
	assert.Equal(t, "AgentCo", candidate.Organizer)
	assert.Equal(t, "https://agentco.dev/hack", candidate.URL)
	assert.Equal(t, hackathons.FormatVirtual, candidate.Format)
	require.NotNil(t, candidate.SubmissionDeadline)
	assert.Equal(t, "2026-03-01", candidate.SubmissionDeadline.String())
	require.NotNil(t, candidate.PrizePool)
	assert.Equal(t, "USDC", candidate.PrizePool.Currency)
	assert.Equal(t, []string{"agents", "llm"}, candidate.Categories)
	assert.Equal(t, 0.85, candidate.Confidence)
}

func TestParseResponseCodeFence(t *testing.T) {
	reply := "Here is the extracted data:\n```json\n" +
		`{"name": "Fenced Hack", "url": "https://fenced.example", "confidence": 0.7}` +
		"\n```\nLet me know if you need anything else."

	candidate, err := ParseResponse(reply, "https://source.example")
	require.NoError(t, err)
	assert.Equal(t, "Fenced Hack", candidate.Name)
}

func TestParseResponseURLFallback(t *testing.T) {
	reply := `{"name": "No URL Hack", "confidence": 0.6}`

	candidate, err := ParseResponse(reply, "https://source.example/event")
	require.NoError(t, err)
	assert.Equal(t, "https://source.example/event", candidate.URL)
}

func TestParseResponseErrors(t *testing.T) {
	tests := []struct {
		name  string
		reply string
	}{
		{"no json object", "I could not find a hackathon on this page."},
		{"malformed json", `{"name": "Broken`},
		{"fails validation", `{"name": "", "url": "https://x.example"}`},
		{"bad date", `{"name": "X", "url": "https://x.example", "submissionDeadline": "March 1st"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseResponse(tt.reply, "https://source.example")
			assert.Error(t, err)
		})
	}
}

func TestNewRequiresAPIKey(t *testing.T) {
	_, err := New(t.Context(), "")
	assert.True(t, errors.Is(err, errors.ErrAPIKeyRequired))
}
