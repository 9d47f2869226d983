package models

import "encoding/json"

// Intent is the coarse category of analytics question. The validator is the
// only producer of Intent values; everything downstream may assume it is one
// of the three constants below.
type Intent string

const (
	IntentSales     Intent = "sales"
	IntentInventory Intent = "inventory"
	IntentCustomers Intent = "customers"
)

// IsValid reports whether i is one of the three supported intents.
func (i Intent) IsValid() bool {
	switch i {
	case IntentSales, IntentInventory, IntentCustomers:
		return true
	}
	return false
}

// CandidatePlan is the loosely-typed plan recovered from raw LLM output.
// Every field is optional: absent or wrong-typed fields stay nil and are
// resolved by ValidatePlan. Never use a CandidatePlan downstream directly.
type CandidatePlan struct {
	Intent        *string
	Metric        *string
	TimeRangeDays *int
}

// UnmarshalJSON is deliberately forgiving: a wrong-typed field is dropped
// (left nil) instead of failing the whole object, since the validator fixes
// up missing fields anyway. Only a non-object payload is an error.
func (c *CandidatePlan) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	if raw, ok := fields["intent"]; ok {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			c.Intent = &s
		}
	}
	if raw, ok := fields["metric"]; ok {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			c.Metric = &s
		}
	}
	if raw, ok := fields["time_range_days"]; ok {
		var n int
		// Rejects fractional numbers and strings, matching the "must be an
		// integer" rule.
		if err := json.Unmarshal(raw, &n); err == nil {
			c.TimeRangeDays = &n
		}
	}

	return nil
}

// Plan is the validated, fully-typed query plan. A Plan is created exactly
// once per request by ValidatePlan and is immutable afterwards.
//
// Invariants: Intent is one of the three supported values, Metric is
// non-empty, TimeRangeDays is an integer (negative and zero values pass
// through unclamped).
type Plan struct {
	Intent        Intent `json:"intent"`
	Metric        string `json:"metric"`
	TimeRangeDays int    `json:"time_range_days"`
}
