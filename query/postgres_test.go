package query

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslateSales(t *testing.T) {
	sql, args, err := translate("FROM sales\nSHOW sum(quantity) AS total_sold\nGROUP BY product_title\nSINCE -14d\nORDER BY total_sold DESC\nLIMIT 5")
	require.NoError(t, err)
	assert.Contains(t, sql, "sale_items")
	assert.Contains(t, sql, "LIMIT 5")
	assert.Equal(t, []any{14}, args)
}

func TestTranslateInventory(t *testing.T) {
	sql, args, err := translate("FROM inventory_levels\nSHOW available\nORDER BY available ASC")
	require.NoError(t, err)
	assert.Contains(t, sql, "inventory_items")
	assert.Contains(t, sql, "ORDER BY quantity ASC")
	assert.Nil(t, args)
}

func TestTranslateCustomers(t *testing.T) {
	sql, args, err := translate("FROM customers\nSHOW count(id)\nWHERE orders_count > 1\nSINCE -30d")
	require.NoError(t, err)
	assert.Contains(t, sql, "HAVING COUNT(*) > 1")
	assert.Equal(t, []any{30}, args)
}

func TestTranslateMissingWindowDefaults(t *testing.T) {
	_, args, err := translate("FROM customers\nSHOW count(id)\nWHERE orders_count > 1")
	require.NoError(t, err)
	assert.Equal(t, []any{7}, args)
}

func TestTranslateUnknownQuery(t *testing.T) {
	_, _, err := translate("FROM refunds SHOW count(id)")
	assert.Error(t, err)
}

func TestStubExecutorFixedRows(t *testing.T) {
	result, err := StubExecutor{}.Execute(context.Background(), "FROM sales SHOW sum(quantity)")
	require.NoError(t, err)
	require.Len(t, result.Rows, 2)
	assert.Equal(t, "Product A", result.Rows[0].Name)
	assert.Equal(t, float64(120), result.Rows[0].Value)
	assert.Equal(t, "Product B", result.Rows[1].Name)
	assert.Equal(t, float64(90), result.Rows[1].Value)
}
