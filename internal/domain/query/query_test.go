package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	catalog := Catalog()
	require.Len(t, catalog, 3)

	assert.Equal(t, "1. What are the most popular three articles of all time?", catalog[0].Question)
	assert.Equal(t, "2. Who are the most popular article authors of all time?", catalog[1].Question)
	assert.Equal(t, "3. On which days did more than 1% of requests lead to errors?", catalog[2].Question)

	assert.Equal(t, KindRankCount, catalog[0].Kind)
	assert.Equal(t, KindRankCount, catalog[1].Kind)
	assert.Equal(t, KindDateRatio, catalog[2].Kind)

	assert.Contains(t, catalog[0].SQL, "LIMIT 3")
	assert.Contains(t, catalog[2].SQL, "> 1")
}

func TestCatalogIsFresh(t *testing.T) {
	a := Catalog()
	a[0].Question = "changed"
	assert.NotEqual(t, "changed", Catalog()[0].Question)
}

func TestSQLs(t *testing.T) {
	catalog := Catalog()
	sqls := SQLs(catalog)
	require.Len(t, sqls, len(catalog))
	for i := range catalog {
		assert.Equal(t, catalog[i].SQL, sqls[i])
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "rank_count", KindRankCount.String())
	assert.Equal(t, "date_ratio", KindDateRatio.String())
	assert.Equal(t, "unknown", Kind(42).String())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		sql     string
		wantErr string
	}{
		{name: "select", sql: "SELECT title FROM articles"},
		{name: "identifier containing keyword", sql: "SELECT created_at, updated_by FROM reports"},
		{name: "drop", sql: "DROP TABLE log", wantErr: "DROP"},
		{name: "lowercase delete", sql: "select 1; delete from log", wantErr: "DELETE"},
		{name: "truncate", sql: "TRUNCATE log", wantErr: "TRUNCATE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.sql)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateCatalog(t *testing.T) {
	assert.NoError(t, ValidateCatalog(Catalog()))

	err := ValidateCatalog(nil)
	assert.EqualError(t, err, "catalog is empty")

	err = ValidateCatalog([]Query{{Question: "q", SQL: "  "}})
	assert.EqualError(t, err, "query 1: empty statement")

	err = ValidateCatalog([]Query{
		{Question: "ok", SQL: "SELECT 1"},
		{Question: "bad", SQL: "INSERT INTO log VALUES (1)"},
	})
	assert.EqualError(t, err, "query 2: forbidden operation: INSERT")
}
