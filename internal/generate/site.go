package generate

import (
	"encoding/json"
	"html/template"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/basedmereum/awesome-ai-agent-hackathons/pkg/errors"
	"github.com/basedmereum/awesome-ai-agent-hackathons/pkg/hackathons"
	"github.com/basedmereum/awesome-ai-agent-hackathons/pkg/logging"
)

// siteData is the template context for the listing page.
type siteData struct {
	Hackathons    []siteEntry
	HackathonJSON template.JS
	Formats       []string
	Chains        []string
	Categories    []string
	Generated     string
}

// siteEntry is one rendered card on the listing page.
type siteEntry struct {
	Name        string
	URL         string
	Organizer   string
	Prize       string
	Deadline    string
	Format      string
	Chain       string
	Location    string
	Description string
	Status      string
	StatusClass string
	Categories  []string
}

// Site renders index.html: a filterable static listing of every record,
// with the raw record set embedded as JSON for client-side filtering.
func (g *Generator) Site() error {
	records, err := g.load()
	if err != nil {
		return err
	}
	if err := g.ensureDir(g.siteDir); err != nil {
		return err
	}

	sortByDeadline(records)

	raw, err := json.Marshal(records)
	if err != nil {
		return errors.WrapResource("marshal", "hackathons", "", err)
	}

	caser := cases.Title(language.English)
	data := siteData{
		HackathonJSON: template.JS(raw),
		Generated:     hackathons.Today().String(),
	}

	formats := make(map[string]bool)
	chains := make(map[string]bool)
	categories := make(map[string]bool)

	for i := range records {
		h := &records[i]
		chain := ""
		if h.Blockchain != nil {
			chain = h.Blockchain.Chain
			chains[chain] = true
		}
		if h.Format != "" {
			formats[string(h.Format)] = true
		}
		for _, tag := range h.Categories {
			categories[tag] = true
		}
		data.Hackathons = append(data.Hackathons, siteEntry{
			Name:        h.Name,
			URL:         h.URL,
			Organizer:   h.Organizer,
			Prize:       g.formatPrize(h),
			Deadline:    displayDeadline(h),
			Format:      caser.String(string(h.Format)),
			Chain:       chain,
			Location:    h.Location,
			Description: h.Description,
			Status:      statusLabel(h.Status),
			StatusClass: string(h.Status),
			Categories:  h.Categories,
		})
	}

	data.Formats = sortedKeys(formats)
	data.Chains = sortedKeys(chains)
	data.Categories = sortedKeys(categories)

	path := filepath.Join(g.siteDir, "index.html")
	f, err := os.Create(path)
	if err != nil {
		return errors.WrapIO("create", path, err)
	}
	defer func() { _ = f.Close() }()

	if err := siteTemplate.Execute(f, data); err != nil {
		return errors.WrapIO("render", path, err)
	}

	logging.Default().Info().Int("records", len(records)).Msg("Site generated")
	return nil
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

var siteTemplate = template.Must(template.New("site").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>AI Agent Hackathons - Live Directory</title>
  <meta name="description" content="Automatically updated directory of AI agent and agentic coding hackathons. Filter by prize pool, format, blockchain, and deadline.">
  <link rel="alternate" type="application/rss+xml" title="AI Agent Hackathons" href="./feed.xml">
  <style>
    :root {
      --bg: #0a0a0f; --surface: #12121a; --border: #2a2a3a;
      --text: #e4e4ef; --text-muted: #8888a0; --accent: #6c63ff;
      --radius: 8px;
    }
    * { margin: 0; padding: 0; box-sizing: border-box; }
    body {
      font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
      background: var(--bg); color: var(--text); line-height: 1.6;
    }
    .container { max-width: 1200px; margin: 0 auto; padding: 2rem 1.5rem; }
    header { text-align: center; margin-bottom: 2.5rem; }
    h1 { font-size: 2rem; margin-bottom: .5rem; }
    .muted { color: var(--text-muted); }
    .filters { display: flex; gap: .75rem; flex-wrap: wrap; margin-bottom: 1.5rem; }
    select {
      background: var(--surface); color: var(--text);
      border: 1px solid var(--border); border-radius: var(--radius); padding: .4rem .6rem;
    }
    .card {
      background: var(--surface); border: 1px solid var(--border);
      border-radius: var(--radius); padding: 1rem 1.25rem; margin-bottom: .75rem;
    }
    .card h2 { font-size: 1.1rem; }
    .card a { color: var(--accent); text-decoration: none; }
    .meta { font-size: .85rem; color: var(--text-muted); }
    .status { font-size: .75rem; padding: .1rem .5rem; border-radius: 999px; border: 1px solid var(--border); }
    .status.registration_open { color: #34d399; }
    .status.upcoming { color: #60a5fa; }
    .status.active { color: #fbbf24; }
    .status.judging { color: #fb923c; }
    .status.completed { color: #f87171; }
  </style>
</head>
<body>
  <div class="container">
    <header>
      <h1>AI Agent Hackathons</h1>
      <p class="muted">Automatically updated directory of AI agent and agentic coding hackathons. Generated {{.Generated}}.</p>
    </header>
    <div class="filters">
      <select id="format-filter">
        <option value="">All formats</option>
        {{range .Formats}}<option value="{{.}}">{{.}}</option>{{end}}
      </select>
      <select id="chain-filter">
        <option value="">All chains</option>
        {{range .Chains}}<option value="{{.}}">{{.}}</option>{{end}}
      </select>
      <select id="category-filter">
        <option value="">All categories</option>
        {{range .Categories}}<option value="{{.}}">{{.}}</option>{{end}}
      </select>
    </div>
    <main id="listing">
      {{range .Hackathons}}
      <div class="card" data-format="{{.Format}}" data-chain="{{.Chain}}" data-categories="{{range .Categories}}{{.}} {{end}}">
        <h2><a href="{{.URL}}" rel="noopener">{{.Name}}</a> <span class="status {{.StatusClass}}">{{.Status}}</span></h2>
        <p class="meta">{{.Organizer}}{{if .Chain}} · {{.Chain}}{{end}} · {{.Format}} · Prize: {{.Prize}} · Deadline: {{.Deadline}}{{if .Location}} · {{.Location}}{{end}}</p>
        {{if .Description}}<p>{{.Description}}</p>{{end}}
      </div>
      {{end}}
    </main>
  </div>
  <script>
    const hackathons = {{.HackathonJSON}};
    const cards = Array.from(document.querySelectorAll('.card'));
    const filters = ['format', 'chain', 'category'].map(k => document.getElementById(k + '-filter'));
    function apply() {
      const [format, chain, category] = filters.map(f => f.value.toLowerCase());
      for (const card of cards) {
        const okFormat = !format || card.dataset.format.toLowerCase() === format;
        const okChain = !chain || card.dataset.chain.toLowerCase() === chain;
        const okCategory = !category || card.dataset.categories.toLowerCase().split(' ').includes(category);
        card.style.display = okFormat && okChain && okCategory ? '' : 'none';
      }
    }
    filters.forEach(f => f.addEventListener('change', apply));
  </script>
</body>
</html>
`))
