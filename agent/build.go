package agent

import (
	"fmt"

	"github.com/pithiyakeval/shopify-ai-analytics/models"
)

// BuildShopifyQL maps a validated plan to its ShopifyQL query. One query
// shape per intent; the plan's metric is carried for observability but does
// not alter the query yet.
func BuildShopifyQL(plan models.Plan) string {
	switch plan.Intent {
	case models.IntentSales:
		return fmt.Sprintf(`FROM sales
SHOW sum(quantity) AS total_sold
GROUP BY product_title
SINCE -%dd
ORDER BY total_sold DESC
LIMIT 5`, plan.TimeRangeDays)

	case models.IntentInventory:
		return `FROM inventory_levels
SHOW available
ORDER BY available ASC`

	case models.IntentCustomers:
		return fmt.Sprintf(`FROM customers
SHOW count(id)
WHERE orders_count > 1
SINCE -%dd`, plan.TimeRangeDays)
	}

	// Unreachable: ValidatePlan closes Intent over the three cases above.
	panic(fmt.Sprintf("unsupported intent %q", plan.Intent))
}
