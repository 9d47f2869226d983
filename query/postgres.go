package query

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pithiyakeval/shopify-ai-analytics/models"
)

// PostgresExecutor answers the three supported ShopifyQL shapes from the
// storefront's Postgres schema. It recognizes the query shape by its FROM
// source and translates it to SQL; anything else is an error, since the
// builder only ever emits the three known shapes.
type PostgresExecutor struct {
	pool *pgxpool.Pool
}

func NewPostgresExecutor(pool *pgxpool.Pool) *PostgresExecutor {
	return &PostgresExecutor{pool: pool}
}

var sinceDaysRe = regexp.MustCompile(`SINCE -(\d+)d`)

const (
	salesSQL = `
		SELECT i.item_name, SUM(si.quantity_sold) AS total_sold
		FROM sale_items si
		JOIN sales s ON si.sale_id = s.id
		JOIN inventory_items i ON si.inventory_item_id = i.id
		WHERE s.sale_date >= now() - ($1 * interval '1 day')
		GROUP BY i.item_name
		ORDER BY total_sold DESC
		LIMIT 5`

	inventorySQL = `
		SELECT item_name, quantity
		FROM inventory_items
		ORDER BY quantity ASC`

	customersSQL = `
		SELECT 'repeat_customers', COUNT(*)
		FROM (
			SELECT customer_id
			FROM sales
			WHERE sale_date >= now() - ($1 * interval '1 day')
			GROUP BY customer_id
			HAVING COUNT(*) > 1
		) repeaters`
)

// translate maps a ShopifyQL query onto SQL and its arguments.
func translate(shopifyql string) (string, []any, error) {
	days := 7
	if m := sinceDaysRe.FindStringSubmatch(shopifyql); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			days = n
		}
	}

	switch {
	case strings.Contains(shopifyql, "FROM sales"):
		return salesSQL, []any{days}, nil
	case strings.Contains(shopifyql, "FROM inventory_levels"):
		return inventorySQL, nil, nil
	case strings.Contains(shopifyql, "FROM customers"):
		return customersSQL, []any{days}, nil
	}
	return "", nil, fmt.Errorf("unrecognized shopifyql query: %q", shopifyql)
}

func (e *PostgresExecutor) Execute(ctx context.Context, shopifyql string) (models.QueryResult, error) {
	sql, args, err := translate(shopifyql)
	if err != nil {
		return models.QueryResult{}, err
	}

	rows, err := e.pool.Query(ctx, sql, args...)
	if err != nil {
		return models.QueryResult{}, fmt.Errorf("execute query: %w", err)
	}
	defer rows.Close()

	result := models.QueryResult{Rows: []models.Row{}}
	for rows.Next() {
		var row models.Row
		if err := rows.Scan(&row.Name, &row.Value); err != nil {
			return models.QueryResult{}, fmt.Errorf("scan row: %w", err)
		}
		result.Rows = append(result.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return models.QueryResult{}, fmt.Errorf("read rows: %w", err)
	}

	return result, nil
}
