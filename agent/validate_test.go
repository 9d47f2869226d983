package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pithiyakeval/shopify-ai-analytics/models"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestValidatePlanEmptyCandidateFallsBackOnQuestion(t *testing.T) {
	plan := ValidatePlan(models.CandidatePlan{}, "how's my stock doing?")
	assert.Equal(t, models.Plan{
		Intent:        models.IntentInventory,
		Metric:        "quantity",
		TimeRangeDays: 7,
	}, plan)
}

func TestValidatePlanKeywordFallbacks(t *testing.T) {
	cases := []struct {
		question string
		want     models.Intent
	}{
		{"is anything out of STOCK?", models.IntentInventory},
		{"what's in my inventory", models.IntentInventory},
		{"which customers came back", models.IntentCustomers},
		{"any repeat buyers this month", models.IntentCustomers},
		{"how are things going", models.IntentSales},
		{"", models.IntentSales},
	}
	for _, tc := range cases {
		plan := ValidatePlan(models.CandidatePlan{}, tc.question)
		assert.Equal(t, tc.want, plan.Intent, "question %q", tc.question)
	}
}

func TestValidatePlanKeywordPrecedence(t *testing.T) {
	// Inventory keywords are checked before customer keywords.
	plan := ValidatePlan(models.CandidatePlan{}, "show repeat customers who bought out-of-stock items")
	assert.Equal(t, models.IntentInventory, plan.Intent)
}

func TestValidatePlanFieldIndependence(t *testing.T) {
	candidate := models.CandidatePlan{
		Intent:        strPtr("bogus"),
		Metric:        strPtr("revenue"),
		TimeRangeDays: intPtr(30),
	}
	plan := ValidatePlan(candidate, "sales")
	assert.Equal(t, models.Plan{
		Intent:        models.IntentSales,
		Metric:        "revenue",
		TimeRangeDays: 30,
	}, plan)
}

func TestValidatePlanKeepsValidIntent(t *testing.T) {
	candidate := models.CandidatePlan{Intent: strPtr("customers")}
	// Question keywords point at inventory, but the model's intent is valid
	// and wins.
	plan := ValidatePlan(candidate, "how is my stock")
	assert.Equal(t, models.IntentCustomers, plan.Intent)
}

func TestValidatePlanNegativeDaysPassThrough(t *testing.T) {
	plan := ValidatePlan(models.CandidatePlan{TimeRangeDays: intPtr(-3)}, "sales last week")
	assert.Equal(t, -3, plan.TimeRangeDays)

	plan = ValidatePlan(models.CandidatePlan{TimeRangeDays: intPtr(0)}, "sales last week")
	assert.Equal(t, 0, plan.TimeRangeDays)
}

func TestValidatePlanEmptyMetricDefaults(t *testing.T) {
	plan := ValidatePlan(models.CandidatePlan{Metric: strPtr("")}, "sales")
	assert.Equal(t, "quantity", plan.Metric)
}

func TestValidatePlanAlwaysValid(t *testing.T) {
	candidates := []models.CandidatePlan{
		{},
		{Intent: strPtr("")},
		{Intent: strPtr("SALES")}, // case-sensitive: not a valid intent value
		{Metric: strPtr("x"), TimeRangeDays: intPtr(365)},
	}
	questions := []string{"", "stock", "repeat", "anything else", "???"}

	for _, c := range candidates {
		for _, q := range questions {
			plan := ValidatePlan(c, q)
			assert.True(t, plan.Intent.IsValid(), "candidate %+v question %q", c, q)
			assert.NotEmpty(t, plan.Metric)
		}
	}
}
