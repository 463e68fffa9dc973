// Command hackmap aggregates AI agent hackathon listings from multiple
// sources into a deduplicated record set and renders it into static outputs.
package main

import (
	"github.com/basedmereum/awesome-ai-agent-hackathons/cmd/hackmap/cmd"
)

// Build-time variables set by goreleaser/ldflags.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cmd.Execute(version, commit, date)
}
