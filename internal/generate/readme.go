package generate

import (
	"fmt"
	"os"
	"path/filepath"

	md "github.com/nao1215/markdown"

	"github.com/basedmereum/awesome-ai-agent-hackathons/pkg/errors"
	"github.com/basedmereum/awesome-ai-agent-hackathons/pkg/hackathons"
)

// Readme renders README.md: live hackathons first, then judging, then a
// completed archive, each as a markdown table sorted by deadline.
func (g *Generator) Readme() error {
	records, err := g.load()
	if err != nil {
		return err
	}

	var live, judging, completed []hackathons.Hackathon
	for _, h := range records {
		switch h.Status {
		case hackathons.StatusUpcoming, hackathons.StatusRegistrationOpen, hackathons.StatusActive:
			live = append(live, h)
		case hackathons.StatusJudging:
			judging = append(judging, h)
		case hackathons.StatusCompleted:
			completed = append(completed, h)
		}
	}
	sortByDeadline(live)
	sortByDeadline(judging)
	sortByDeadline(completed)

	path := filepath.Join(g.rootDir, "README.md")
	f, err := os.Create(path)
	if err != nil {
		return errors.WrapIO("create", path, err)
	}
	defer func() { _ = f.Close() }()

	doc := md.NewMarkdown(f).
		H1("Awesome AI Agent Hackathons").
		PlainText("Automatically updated directory of AI agent and agentic coding hackathons.").
		PlainText(fmt.Sprintf("Last generated: %s", hackathons.Today())).
		LF()

	doc.H2("Open & Upcoming")
	g.table(doc, live)

	if len(judging) > 0 {
		doc.H2("Judging")
		g.table(doc, judging)
	}

	if len(completed) > 0 {
		doc.H2("Completed")
		g.table(doc, completed)
	}

	if err := doc.Build(); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}

// table appends a hackathon listing table to the document.
func (g *Generator) table(doc *md.Markdown, records []hackathons.Hackathon) {
	rows := make([][]string, 0, len(records))
	for i := range records {
		h := &records[i]
		organizer := h.Organizer
		if h.Blockchain != nil && h.Blockchain.Chain != "" {
			organizer = fmt.Sprintf("%s (%s)", organizer, h.Blockchain.Chain)
		}
		rows = append(rows, []string{
			fmt.Sprintf("[%s](%s)", h.Name, h.URL),
			organizer,
			g.formatPrize(h),
			string(h.Format),
			displayDeadline(h),
			fmt.Sprintf("%s %s", statusEmoji(h.Status), statusLabel(h.Status)),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Hackathon", "Organizer", "Prize", "Format", "Deadline", "Status"},
		Rows:   rows,
	})
}
