package agent

import (
	"errors"
	"fmt"

	"github.com/pithiyakeval/shopify-ai-analytics/models"
)

// ErrNoData is returned when a query produced no rows to explain.
var ErrNoData = errors.New("no rows in query result")

// ExplainResult turns a query result into a human-readable sentence for the
// plan's intent. The inventory and customers explanations are fixed advisory
// sentences and do not inspect the rows.
func ExplainResult(result models.QueryResult, plan models.Plan) (string, error) {
	switch plan.Intent {
	case models.IntentSales:
		if len(result.Rows) == 0 {
			return "", ErrNoData
		}
		top := result.Rows[0]
		return fmt.Sprintf(
			"Your top selling product in the last %d days is %s with around %.0f units sold.",
			plan.TimeRangeDays, top.Name, top.Value,
		), nil

	case models.IntentInventory:
		return "Some products are running low and may go out of stock soon.", nil

	case models.IntentCustomers:
		return "You have customers who placed repeat orders recently.", nil
	}

	// Unreachable: ValidatePlan closes Intent over the three cases above.
	panic(fmt.Sprintf("unsupported intent %q", plan.Intent))
}
