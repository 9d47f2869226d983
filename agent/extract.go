package agent

import (
	"encoding/json"
	"strings"

	"github.com/pithiyakeval/shopify-ai-analytics/models"
)

// ExtractCandidate recovers a candidate plan from raw LLM output. Models
// regularly wrap the requested JSON in prose or markdown fences, so the
// widest brace-delimited span (first "{" to last "}") is taken as the
// payload. Any failure yields an empty candidate; the validator resolves
// missing fields deterministically.
func ExtractCandidate(raw string) models.CandidatePlan {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end < start {
		return models.CandidatePlan{}
	}

	var candidate models.CandidatePlan
	if err := json.Unmarshal([]byte(raw[start:end+1]), &candidate); err != nil {
		return models.CandidatePlan{}
	}
	return candidate
}
