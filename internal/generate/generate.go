// Package generate renders the record set into static outputs: the listing
// site, the README tables, and the RSS and iCal feeds. Rendering is
// deterministic formatting over whatever the store holds; no network.
package generate

import (
	"os"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/basedmereum/awesome-ai-agent-hackathons/pkg/errors"
	"github.com/basedmereum/awesome-ai-agent-hackathons/pkg/hackathons"
	"github.com/basedmereum/awesome-ai-agent-hackathons/pkg/store"
)

const dirPermissions = 0o755

// Generator renders records from a store into an output directory.
type Generator struct {
	store   store.Reader
	siteDir string
	rootDir string
	printer *message.Printer
}

// New creates a Generator writing site artifacts (index.html, feed.xml,
// hackathons.ics) under siteDir and README.md under rootDir.
func New(s store.Reader, siteDir, rootDir string) *Generator {
	return &Generator{
		store:   s,
		siteDir: siteDir,
		rootDir: rootDir,
		printer: message.NewPrinter(language.English),
	}
}

// All renders every output.
func (g *Generator) All() error {
	if err := g.Site(); err != nil {
		return err
	}
	if err := g.Readme(); err != nil {
		return err
	}
	if err := g.RSS(); err != nil {
		return err
	}
	return g.ICal()
}

// load returns all records, failing on any record whose status is not one
// of the five lifecycle states. A renderer silently dropping records with
// unknown statuses would hide data corruption.
func (g *Generator) load() ([]hackathons.Hackathon, error) {
	records, err := g.store.List()
	if err != nil {
		return nil, errors.WrapResource("load", "hackathons", "", err)
	}
	for i := range records {
		if !records[i].Status.Valid() {
			return nil, &errors.ValidationError{
				Field:   "status",
				Value:   string(records[i].Status),
				Message: "unknown status for record " + records[i].ID,
			}
		}
	}
	return records, nil
}

func (g *Generator) ensureDir(dir string) error {
	if err := os.MkdirAll(dir, dirPermissions); err != nil {
		return errors.WrapIO("create", dir, err)
	}
	return nil
}

// formatCurrency renders a prize amount for display. Dollar-pegged
// currencies get the dollar sign; everything else keeps its code.
func (g *Generator) formatCurrency(amount float64, currency string) string {
	upper := strings.ToUpper(currency)
	if upper == "USD" || upper == "USDC" {
		return g.printer.Sprintf("$%.0f", amount)
	}
	return g.printer.Sprintf("%.0f %s", amount, currency)
}

// formatPrize renders a record's prize pool, "TBD" when unknown.
func (g *Generator) formatPrize(h *hackathons.Hackathon) string {
	if h.PrizePool == nil {
		return "TBD"
	}
	return g.formatCurrency(h.PrizePool.Total, h.PrizePool.Currency)
}

// displayDeadline picks the most relevant deadline for listings.
func displayDeadline(h *hackathons.Hackathon) string {
	if h.SubmissionDeadline != nil {
		return h.SubmissionDeadline.String()
	}
	if h.RegistrationDeadline != nil {
		return h.RegistrationDeadline.String()
	}
	return "TBD"
}

// statusLabel maps statuses to their human-readable labels.
func statusLabel(s hackathons.Status) string {
	switch s {
	case hackathons.StatusUpcoming:
		return "Upcoming"
	case hackathons.StatusRegistrationOpen:
		return "Registration Open"
	case hackathons.StatusActive:
		return "Active (Building)"
	case hackathons.StatusJudging:
		return "Judging"
	case hackathons.StatusCompleted:
		return "Completed"
	}
	return string(s)
}

// statusEmoji maps statuses to their listing markers.
func statusEmoji(s hackathons.Status) string {
	switch s {
	case hackathons.StatusUpcoming:
		return "📅"
	case hackathons.StatusRegistrationOpen:
		return "✅"
	case hackathons.StatusActive:
		return "🔨"
	case hackathons.StatusJudging:
		return "⏳"
	case hackathons.StatusCompleted:
		return "🏁"
	}
	return ""
}

// sortByDeadline orders records by their nearest deadline, undated last.
func sortByDeadline(records []hackathons.Hackathon) {
	key := func(h *hackathons.Hackathon) string {
		if h.SubmissionDeadline != nil {
			return h.SubmissionDeadline.String()
		}
		if h.RegistrationDeadline != nil {
			return h.RegistrationDeadline.String()
		}
		return "9999"
	}
	sort.SliceStable(records, func(i, j int) bool {
		return key(&records[i]) < key(&records[j])
	})
}

// sortByLastUpdated orders records most recently touched first.
func sortByLastUpdated(records []hackathons.Hackathon) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[j].LastUpdated.Before(records[i].LastUpdated)
	})
}
