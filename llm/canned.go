package llm

import "context"

// cannedResponse is a well-formed plan for environments where no model
// process or API key is available. It exercises the full extraction and
// validation path like any real response would.
const cannedResponse = `{
  "intent": "sales",
  "metric": "quantity",
  "time_range_days": 7
}`

// CannedGateway returns a fixed plan response for every prompt.
type CannedGateway struct{}

func (CannedGateway) Ask(ctx context.Context, prompt string) string {
	return cannedResponse
}
