package extract

import (
	"fmt"

	"github.com/basedmereum/awesome-ai-agent-hackathons/pkg/hackathons"
)

// extractionPrompt instructs the model to emit exactly the candidate JSON
// schema. Dates are plain YYYY-MM-DD; genuinely unavailable fields are null.
const extractionPrompt = `You are a structured data extraction agent. Extract hackathon details from the provided web page content.

Return ONLY valid JSON matching this exact schema (no markdown, no explanation):

{
  "name": "string - hackathon name",
  "organizer": "string - organizing company/group",
  "url": "string - main hackathon URL",
  "format": "virtual | in-person | hybrid",
  "description": "string - 1-2 sentence summary",
  "registrationOpen": "YYYY-MM-DD or null",
  "registrationDeadline": "YYYY-MM-DD or null",
  "submissionDeadline": "YYYY-MM-DD or null",
  "resultsDate": "YYYY-MM-DD or null",
  "prizePool": {
    "total": number,
    "currency": "USD | USDC | ETH | etc",
    "breakdown": { "1st": number, "2nd": number }
  } or null,
  "categories": ["ai-agents", "blockchain", "solana", "mcp", "langchain"],
  "requirements": {
    "techStack": ["required framework or platform"],
    "teamSize": { "min": 1, "max": 5 } or null,
    "constraints": "string or null"
  } or null,
  "blockchain": {
    "chain": "Solana | Ethereum | Sui | etc",
    "ecosystem": "DeFi | NFT | etc",
    "tokenPrize": true
  } or null,
  "location": "City, Country or null for virtual",
  "links": {
    "apply": "registration URL",
    "discord": "discord invite URL",
    "twitter": "twitter/X URL",
    "pastWinners": "URL to past winners"
  } or null,
  "confidence": 0.0
}

Rules:
- Set confidence in [0,1] based on how complete and unambiguous the extracted data is
- Use ISO date format YYYY-MM-DD for all dates
- Categories should include relevant tags: ai-agents, autonomous-agents, blockchain, defi, mcp, langchain, crewai, autogen, etc.
- If the hackathon involves a blockchain, populate the blockchain field
- If information is genuinely unavailable, use null
- Today's date is %s`

// buildPrompt assembles the full extraction prompt for one page.
func buildPrompt(content, sourceURL string) string {
	return fmt.Sprintf(extractionPrompt, hackathons.Today()) +
		fmt.Sprintf("\n\nSource URL: %s\n\nPage content:\n%s", sourceURL, content)
}
