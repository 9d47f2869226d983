package query

import (
	"context"

	"github.com/pithiyakeval/shopify-ai-analytics/models"
)

// Executor runs a ShopifyQL query and returns its rows. Implementations are
// read-only and idempotent from the pipeline's perspective; the pipeline
// never assumes any correlation between the query and the returned rows.
type Executor interface {
	Execute(ctx context.Context, shopifyql string) (models.QueryResult, error)
}

// StubExecutor returns the same two fixed rows for every query. It stands in
// for real ShopifyQL execution in environments without a storefront
// database.
type StubExecutor struct{}

func (StubExecutor) Execute(ctx context.Context, shopifyql string) (models.QueryResult, error) {
	return models.QueryResult{
		Rows: []models.Row{
			{Name: "Product A", Value: 120},
			{Name: "Product B", Value: 90},
		},
	}, nil
}
