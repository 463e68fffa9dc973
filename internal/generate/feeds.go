package generate

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/basedmereum/awesome-ai-agent-hackathons/pkg/errors"
	"github.com/basedmereum/awesome-ai-agent-hackathons/pkg/hackathons"
	"github.com/basedmereum/awesome-ai-agent-hackathons/pkg/logging"
)

const (
	feedTitle = "AI Agent Hackathons"
	feedLink  = "https://github.com/basedmereum/awesome-ai-agent-hackathons"
	feedSelf  = "https://basedmereum.github.io/awesome-ai-agent-hackathons/feed.xml"
)

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// RSS renders feed.xml with every non-completed record, newest update first.
func (g *Generator) RSS() error {
	records, err := g.load()
	if err != nil {
		return err
	}
	if err := g.ensureDir(g.siteDir); err != nil {
		return err
	}

	var active []hackathons.Hackathon
	for _, h := range records {
		if h.Status != hackathons.StatusCompleted {
			active = append(active, h)
		}
	}
	sortByLastUpdated(active)

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<rss version="2.0" xmlns:atom="http://www.w3.org/2005/Atom">` + "\n")
	b.WriteString("  <channel>\n")
	fmt.Fprintf(&b, "    <title>%s</title>\n", feedTitle)
	fmt.Fprintf(&b, "    <link>%s</link>\n", feedLink)
	b.WriteString("    <description>Automatically updated directory of AI agent and agentic coding hackathons</description>\n")
	b.WriteString("    <language>en-us</language>\n")
	fmt.Fprintf(&b, "    <lastBuildDate>%s</lastBuildDate>\n", time.Now().UTC().Format(time.RFC1123Z))
	fmt.Fprintf(&b, "    <atom:link href=%q rel=\"self\" type=\"application/rss+xml\"/>\n", feedSelf)

	for i := range active {
		g.writeRSSItem(&b, &active[i])
	}

	b.WriteString("  </channel>\n</rss>\n")

	path := filepath.Join(g.siteDir, "feed.xml")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return errors.WrapIO("write", path, err)
	}

	logging.Default().Info().Int("entries", len(active)).Msg("RSS feed generated")
	return nil
}

func (g *Generator) writeRSSItem(b *strings.Builder, h *hackathons.Hackathon) {
	chain := ""
	if h.Blockchain != nil && h.Blockchain.Chain != "" {
		chain = " | " + h.Blockchain.Chain
	}
	description := fmt.Sprintf("%s hackathon by %s. Prize: %s%s. Deadline: %s",
		h.Format, h.Organizer, g.formatPrize(h), chain, displayDeadline(h))

	b.WriteString("    <item>\n")
	fmt.Fprintf(b, "      <title>%s</title>\n", xmlEscaper.Replace(h.Name))
	fmt.Fprintf(b, "      <link>%s</link>\n", xmlEscaper.Replace(h.URL))
	fmt.Fprintf(b, "      <guid isPermaLink=\"true\">%s</guid>\n", xmlEscaper.Replace(h.URL))
	fmt.Fprintf(b, "      <description>%s</description>\n", xmlEscaper.Replace(description))
	fmt.Fprintf(b, "      <pubDate>%s</pubDate>\n", h.LastUpdated.Time().Format(time.RFC1123Z))
	fmt.Fprintf(b, "      <category>%s</category>\n", xmlEscaper.Replace(string(h.Format)))
	for _, tag := range h.Categories {
		fmt.Fprintf(b, "      <category>%s</category>\n", xmlEscaper.Replace(tag))
	}
	b.WriteString("    </item>\n")
}

// ICal renders hackathons.ics with one all-day deadline event per dated
// record. Calendar subscribers care about deadlines, not full event spans.
func (g *Generator) ICal() error {
	records, err := g.load()
	if err != nil {
		return err
	}
	if err := g.ensureDir(g.siteDir); err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString("BEGIN:VCALENDAR\r\n")
	b.WriteString("VERSION:2.0\r\n")
	b.WriteString("PRODID:-//Hackathon Tracker//EN\r\n")
	b.WriteString("CALSCALE:GREGORIAN\r\n")
	b.WriteString("METHOD:PUBLISH\r\n")
	fmt.Fprintf(&b, "X-WR-CALNAME:%s\r\n", feedTitle)

	events := 0
	for i := range records {
		h := &records[i]
		deadline := h.SubmissionDeadline
		if deadline == nil {
			deadline = h.RegistrationDeadline
		}
		if deadline == nil {
			continue
		}

		stamp := strings.ReplaceAll(deadline.String(), "-", "")
		b.WriteString("BEGIN:VEVENT\r\n")
		fmt.Fprintf(&b, "DTSTART;VALUE=DATE:%s\r\n", stamp)
		fmt.Fprintf(&b, "DTEND;VALUE=DATE:%s\r\n", stamp)
		fmt.Fprintf(&b, "SUMMARY:%s - Deadline\r\n", icalEscape(h.Name))
		fmt.Fprintf(&b, "DESCRIPTION:%s hackathon by %s. Prize: %s. %s\r\n",
			h.Format, icalEscape(h.Organizer), icalEscape(g.formatPrize(h)), icalEscape(h.URL))
		fmt.Fprintf(&b, "URL:%s\r\n", h.URL)
		fmt.Fprintf(&b, "UID:%s@hackathon-tracker\r\n", h.ID)
		b.WriteString("END:VEVENT\r\n")
		events++
	}

	b.WriteString("END:VCALENDAR\r\n")

	path := filepath.Join(g.siteDir, "hackathons.ics")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return errors.WrapIO("write", path, err)
	}

	logging.Default().Info().Int("events", events).Msg("iCal feed generated")
	return nil
}

// icalEscape escapes the characters iCalendar text values reserve.
func icalEscape(s string) string {
	r := strings.NewReplacer(`\`, `\\`, ";", `\;`, ",", `\,`, "\n", `\n`)
	return r.Replace(s)
}
