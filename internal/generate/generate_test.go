package generate

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/basedmereum/awesome-ai-agent-hackathons/pkg/errors"
	"github.com/basedmereum/awesome-ai-agent-hackathons/pkg/hackathons"
	"github.com/basedmereum/awesome-ai-agent-hackathons/pkg/store"
)

func date(s string) *hackathons.Date {
	d := hackathons.MustParseDate(s)
	return &d
}

func testRecords() []hackathons.Hackathon {
	return []hackathons.Hackathon{
		{
			ID:                 "agent-hack-2026",
			Name:               "Agent Hack 2026",
			Organizer:          "AgentCo",
			URL:                "https://agentco.dev/hack",
			Status:             hackathons.StatusRegistrationOpen,
			Format:             hackathons.FormatVirtual,
			SubmissionDeadline: date("2026-03-01"),
			PrizePool:          &hackathons.PrizePool{Total: 50000, Currency: "USDC"},
			Categories:         []string{"agents"},
			Source:             "devpost",
			LastUpdated:        hackathons.MustParseDate("2026-02-01"),
			Confidence:         0.9,
		},
		{
			ID:          "solana-sprint",
			Name:        "Solana Agents Sprint",
			Organizer:   "Colosseum",
			URL:         "https://colosseum.org/sprint",
			Status:      hackathons.StatusJudging,
			Format:      hackathons.FormatHybrid,
			Blockchain:  &hackathons.BlockchainInfo{Chain: "Solana"},
			Source:      "blockchain",
			LastUpdated: hackathons.MustParseDate("2026-02-05"),
			Confidence:  0.8,
		},
		{
			ID:          "winter-jam",
			Name:        "Winter Agents Jam",
			Organizer:   "JamCo",
			URL:         "https://jam.example",
			Status:      hackathons.StatusCompleted,
			Format:      hackathons.FormatInPerson,
			ResultsDate: date("2026-01-15"),
			Source:      "lablab",
			LastUpdated: hackathons.MustParseDate("2026-01-16"),
			Confidence:  0.7,
		},
	}
}

func newTestGenerator(t *testing.T) (*Generator, string, string) {
	t.Helper()
	siteDir := t.TempDir()
	rootDir := t.TempDir()
	s := store.NewMemoryWith(testRecords()...)
	return New(s, siteDir, rootDir), siteDir, rootDir
}

func readOutput(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestReadme(t *testing.T) {
	g, _, rootDir := newTestGenerator(t)
	require.NoError(t, g.Readme())

	out := readOutput(t, filepath.Join(rootDir, "README.md"))
	assert.Contains(t, out, "# Awesome AI Agent Hackathons")
	assert.Contains(t, out, "## Open & Upcoming")
	assert.Contains(t, out, "## Judging")
	assert.Contains(t, out, "## Completed")
	assert.Contains(t, out, "[Agent Hack 2026](https://agentco.dev/hack)")
	assert.Contains(t, out, "Colosseum (Solana)")
	assert.Contains(t, out, "$50,000")
	assert.Contains(t, out, "TBD")
}

func TestSite(t *testing.T) {
	g, siteDir, _ := newTestGenerator(t)
	require.NoError(t, g.Site())

	out := readOutput(t, filepath.Join(siteDir, "index.html"))
	assert.Contains(t, out, "<!DOCTYPE html>")
	assert.Contains(t, out, "Agent Hack 2026")
	assert.Contains(t, out, "Solana Agents Sprint")

	// Filter options come from the record set.
	assert.Contains(t, out, `<option value="Solana">Solana</option>`)
	assert.Contains(t, out, "agents")

	// Dated records sort before undated ones.
	first := strings.Index(out, "Agent Hack 2026")
	second := strings.Index(out, "Solana Agents Sprint")
	assert.Less(t, first, second)
}

func TestRSS(t *testing.T) {
	g, siteDir, _ := newTestGenerator(t)
	require.NoError(t, g.RSS())

	out := readOutput(t, filepath.Join(siteDir, "feed.xml"))
	assert.Contains(t, out, `<rss version="2.0"`)
	assert.Contains(t, out, "<title>Agent Hack 2026</title>")
	assert.Contains(t, out, "<title>Solana Agents Sprint</title>")

	// Completed records are excluded from the feed.
	assert.NotContains(t, out, "Winter Agents Jam")

	// Most recently updated first.
	sprint := strings.Index(out, "Solana Agents Sprint")
	hack := strings.Index(out, "Agent Hack 2026")
	assert.Less(t, sprint, hack)
}

func TestICal(t *testing.T) {
	g, siteDir, _ := newTestGenerator(t)
	require.NoError(t, g.ICal())

	out := readOutput(t, filepath.Join(siteDir, "hackathons.ics"))
	assert.Contains(t, out, "BEGIN:VCALENDAR")
	assert.Contains(t, out, "END:VCALENDAR")

	// Only the record with a deadline yields an event.
	assert.Equal(t, 1, strings.Count(out, "BEGIN:VEVENT"))
	assert.Contains(t, out, "DTSTART;VALUE=DATE:20260301")
	assert.Contains(t, out, "UID:agent-hack-2026@hackathon-tracker")
}

func TestAllRendersEverything(t *testing.T) {
	g, siteDir, rootDir := newTestGenerator(t)
	require.NoError(t, g.All())

	for _, path := range []string{
		filepath.Join(siteDir, "index.html"),
		filepath.Join(siteDir, "feed.xml"),
		filepath.Join(siteDir, "hackathons.ics"),
		filepath.Join(rootDir, "README.md"),
	} {
		_, err := os.Stat(path)
		assert.NoError(t, err, path)
	}
}

func TestLoadRejectsUnknownStatus(t *testing.T) {
	bad := testRecords()[0]
	bad.Status = "archived"
	g := New(store.NewMemoryWith(bad), t.TempDir(), t.TempDir())

	err := g.Readme()
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestFormatCurrency(t *testing.T) {
	g := New(store.NewMemory(), "", "")

	tests := []struct {
		amount   float64
		currency string
		want     string
	}{
		{50000, "USD", "$50,000"},
		{50000, "USDC", "$50,000"},
		{10, "ETH", "10 ETH"},
		{1500, "SOL", "1,500 SOL"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, g.formatCurrency(tt.amount, tt.currency))
	}
}
