package agent

import (
	"strings"

	"github.com/pithiyakeval/shopify-ai-analytics/models"
	"github.com/pithiyakeval/shopify-ai-analytics/utils"
)

// ValidatePlan collapses a candidate plan into a fully-valid Plan. Never
// trust the LLM blindly: each field falls back independently, so a bogus
// intent does not discard a usable metric or time range.
//
// This is the only trust boundary for model output. Everything after this
// call may rely on the Plan invariants.
func ValidatePlan(candidate models.CandidatePlan, question string) models.Plan {
	q := strings.ToLower(question)

	var intent models.Intent
	if candidate.Intent != nil && models.Intent(*candidate.Intent).IsValid() {
		intent = models.Intent(*candidate.Intent)
	} else if utils.ContainsAny(q, "stock", "inventory") {
		intent = models.IntentInventory
	} else if utils.ContainsAny(q, "customer", "repeat") {
		intent = models.IntentCustomers
	} else {
		intent = models.IntentSales
	}

	// Negative and zero day ranges pass through unchanged.
	timeRange := 7
	if candidate.TimeRangeDays != nil {
		timeRange = *candidate.TimeRangeDays
	}

	metric := "quantity"
	if candidate.Metric != nil && *candidate.Metric != "" {
		metric = *candidate.Metric
	}

	return models.Plan{
		Intent:        intent,
		Metric:        metric,
		TimeRangeDays: timeRange,
	}
}
