package database

import (
	"os"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitMigration_AmountsAreUnscaled(t *testing.T) {
	raw, err := os.ReadFile("../../migrations/000001_init_ledger.up.sql")
	require.NoError(t, err)
	schema := string(raw)

	assert.NotRegexp(t, regexp.MustCompile(`(?i)NUMERIC\s*\(`), schema)
	for _, column := range []string{"price_to_worker", "price_from_customer", "amount", "monthly_salary", "weekly_salary"} {
		assert.Regexp(t, regexp.MustCompile(`(?m)^\s*`+column+`\s+NUMERIC\s`), schema, column)
	}
	assert.Regexp(t, regexp.MustCompile(`(?m)^\s*slot\s+INTEGER\s`), schema)
}
