package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/basedmereum/awesome-ai-agent-hackathons/pkg/errors"
	"github.com/basedmereum/awesome-ai-agent-hackathons/pkg/hackathons"
)

func sampleRecord(id string) hackathons.Hackathon {
	deadline := hackathons.MustParseDate("2026-03-01")
	return hackathons.Hackathon{
		ID:                 id,
		Name:               "Agent Hack 2026",
		Organizer:          "AgentCo",
		URL:                "https://agentco.dev/" + id,
		Status:             hackathons.StatusRegistrationOpen,
		Format:             hackathons.FormatVirtual,
		SubmissionDeadline: &deadline,
		PrizePool:          &hackathons.PrizePool{Total: 50000, Currency: "USDC"},
		Categories:         []string{"agents"},
		Source:             "devpost",
		LastUpdated:        hackathons.MustParseDate("2026-02-01"),
		Confidence:         0.9,
	}
}

// backends under test share one behavioral contract.
func backends(t *testing.T) map[string]Store {
	t.Helper()

	files, err := NewFiles(t.TempDir())
	require.NoError(t, err)

	bolt, err := NewBolt(filepath.Join(t.TempDir(), "hackathons.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = bolt.Close() })

	return map[string]Store{
		"memory": NewMemory(),
		"files":  files,
		"bolt":   bolt,
	}
}

func TestStoreRoundtrip(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			record := sampleRecord("agent-hack")
			require.NoError(t, s.Upsert(record))

			got, err := s.Get("agent-hack")
			require.NoError(t, err)
			assert.Equal(t, record.Name, got.Name)
			assert.Equal(t, record.Status, got.Status)
			require.NotNil(t, got.SubmissionDeadline)
			assert.Equal(t, "2026-03-01", got.SubmissionDeadline.String())
			require.NotNil(t, got.PrizePool)
			assert.Equal(t, float64(50000), got.PrizePool.Total)
			assert.Equal(t, "2026-02-01", got.LastUpdated.String())
		})
	}
}

func TestStoreUpsertReplaces(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			record := sampleRecord("agent-hack")
			require.NoError(t, s.Upsert(record))

			record.Location = "Berlin, Germany"
			require.NoError(t, s.Upsert(record))

			got, err := s.Get("agent-hack")
			require.NoError(t, err)
			assert.Equal(t, "Berlin, Germany", got.Location)

			records, err := s.List()
			require.NoError(t, err)
			assert.Len(t, records, 1)
		})
	}
}

func TestStoreListOrdersByID(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			for _, id := range []string{"zeta-hack", "alpha-hack", "mid-hack"} {
				require.NoError(t, s.Upsert(sampleRecord(id)))
			}

			records, err := s.List()
			require.NoError(t, err)
			require.Len(t, records, 3)
			assert.Equal(t, "alpha-hack", records[0].ID)
			assert.Equal(t, "mid-hack", records[1].ID)
			assert.Equal(t, "zeta-hack", records[2].ID)
		})
	}
}

func TestStoreGetMissing(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := s.Get("nope")
			require.Error(t, err)
			assert.True(t, errors.IsNotFound(err))
		})
	}
}

func TestStoreDelete(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.Upsert(sampleRecord("agent-hack")))
			require.NoError(t, s.Delete("agent-hack"))

			_, err := s.Get("agent-hack")
			assert.True(t, errors.IsNotFound(err))

			// Deleting again is not an error.
			assert.NoError(t, s.Delete("agent-hack"))
		})
	}
}

func TestStoreRejectsInvalidRecord(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			bad := sampleRecord("agent-hack")
			bad.Status = "definitely-not-a-status"
			err := s.Upsert(bad)
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}

func TestFilesSkipsCorruptRecords(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFiles(dir)
	require.NoError(t, err)

	require.NoError(t, s.Upsert(sampleRecord("good-hack")))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.yaml"),
		[]byte("{{{ not yaml"), 0o644))

	records, err := s.List()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "good-hack", records[0].ID)
}

func TestBoltPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hackathons.db")

	s, err := NewBolt(path)
	require.NoError(t, err)
	require.NoError(t, s.Upsert(sampleRecord("agent-hack")))
	require.NoError(t, s.Close())

	reopened, err := NewBolt(path)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	got, err := reopened.Get("agent-hack")
	require.NoError(t, err)
	assert.Equal(t, "Agent Hack 2026", got.Name)
}
