package dedup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/basedmereum/awesome-ai-agent-hackathons/pkg/hackathons"
)

func record(id, name, organizer, url string, deadline string) hackathons.Hackathon {
	return hackathons.Hackathon{
		ID:                 id,
		Name:               name,
		Organizer:          organizer,
		URL:                url,
		Status:             hackathons.StatusRegistrationOpen,
		SubmissionDeadline: hackathons.DatePtr(deadline),
	}
}

func TestResolverURLMatch(t *testing.T) {
	existing := []hackathons.Hackathon{
		record("solana-hack", "Solana AI Hack", "Colosseum", "https://example.com/event", "2026-03-01"),
	}
	resolver := New(DefaultConfig())

	// Scheme, host casing, and trailing slash all normalize away.
	candidate := hackathons.Candidate{
		Name: "Completely Different Name",
		URL:  "http://Example.com/Event/",
	}

	got := resolver.Resolve(candidate, existing)
	require.True(t, got.IsDuplicate)
	assert.Equal(t, "solana-hack", got.MatchID)
	assert.Equal(t, 1.0, got.Similarity)
}

func TestResolverCorroboratedNameMatch(t *testing.T) {
	// "agent hack 2026" vs "agent hackathon summit 2026" scores ~0.91:
	// above the corroborated bar, below the strong bar.
	existing := []hackathons.Hackathon{
		record("agent-hackathon-summit-2026", "Agent Hackathon Summit 2026",
			"AgentCo", "https://agentco.dev/summit", "2026-05-01"),
	}
	resolver := New(DefaultConfig())

	tests := []struct {
		name      string
		candidate hackathons.Candidate
		wantDup   bool
	}{
		{
			name: "same organizer corroborates",
			candidate: hackathons.Candidate{
				Name:      "Agent Hack 2026",
				Organizer: "agentco",
				URL:       "https://other.example/page",
			},
			wantDup: true,
		},
		{
			name: "same submission deadline corroborates",
			candidate: hackathons.Candidate{
				Name:               "Agent Hack 2026",
				URL:                "https://other.example/page",
				SubmissionDeadline: hackathons.DatePtr("2026-05-01"),
			},
			wantDup: true,
		},
		{
			name: "no corroboration",
			candidate: hackathons.Candidate{
				Name:      "Agent Hack 2026",
				Organizer: "Someone Else",
				URL:       "https://other.example/page",
			},
			wantDup: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolver.Resolve(tt.candidate, existing)
			assert.Equal(t, tt.wantDup, got.IsDuplicate)
			if tt.wantDup {
				assert.Equal(t, "agent-hackathon-summit-2026", got.MatchID)
				assert.Greater(t, got.Similarity, DefaultNameThreshold)
				assert.Less(t, got.Similarity, DefaultStrongNameThreshold)
			}
		})
	}
}

func TestResolverStrongNameMatch(t *testing.T) {
	// ~0.96 similarity: duplicate with no corroboration at all.
	existing := []hackathons.Hackathon{
		record("ai-agent-hackathon-2026", "AI Agent Hackathon 2026",
			"Org A", "https://a.example/event", ""),
	}
	resolver := New(DefaultConfig())

	got := resolver.Resolve(hackathons.Candidate{
		Name:      "AI Agent Hack 2026",
		Organizer: "Org B",
		URL:       "https://b.example/event",
	}, existing)

	require.True(t, got.IsDuplicate)
	assert.Equal(t, "ai-agent-hackathon-2026", got.MatchID)
	assert.Greater(t, got.Similarity, DefaultStrongNameThreshold)
}

func TestResolverNoMatch(t *testing.T) {
	existing := []hackathons.Hackathon{
		record("eth-denver", "ETHDenver BUIDLathon", "ETHDenver", "https://ethdenver.com", "2026-02-25"),
	}
	resolver := New(DefaultConfig())

	got := resolver.Resolve(hackathons.Candidate{
		Name:      "Solana Agents Sprint",
		Organizer: "Colosseum",
		URL:       "https://colosseum.org/sprint",
	}, existing)

	assert.False(t, got.IsDuplicate)
	assert.Empty(t, got.MatchID)
	assert.Zero(t, got.Similarity)
}

func TestResolverFirstMatchWins(t *testing.T) {
	// Both records would match; the scan stops at the first.
	existing := []hackathons.Hackathon{
		record("first", "AI Agent Hackathon 2026", "Org", "https://first.example", ""),
		record("second", "AI Agent Hackathon 2026", "Org", "https://second.example", ""),
	}
	resolver := New(DefaultConfig())

	got := resolver.Resolve(hackathons.Candidate{
		Name: "AI Agent Hackathon 2026",
		URL:  "https://elsewhere.example",
	}, existing)

	require.True(t, got.IsDuplicate)
	assert.Equal(t, "first", got.MatchID)
}

func TestResolverEmptyStore(t *testing.T) {
	resolver := New(DefaultConfig())
	got := resolver.Resolve(hackathons.Candidate{Name: "Anything", URL: "https://x.example"}, nil)
	assert.False(t, got.IsDuplicate)
}

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"empty", "", ""},
		{"scheme stripped", "https://example.com/event", "example.com/event"},
		{"http and https equal", "http://example.com/event", "example.com/event"},
		{"host casing folded", "https://ExAmPlE.com/Event", "example.com/event"},
		{"trailing slash stripped", "https://example.com/event/", "example.com/event"},
		{"whitespace trimmed", "  https://example.com/event  ", "example.com/event"},
		{"query kept out", "https://example.com/event?x=1", "example.com/event"},
		{"no host degrades to lowercase", "not a url", "not a url"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeURL(tt.raw))
		})
	}
}
