package account

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDebitQuery_GuardsBalance(t *testing.T) {
	amount := decimal.RequireFromString("12.50")

	query, args, err := buildDebitQuery("user-1", amount)
	require.NoError(t, err)

	assert.Equal(t,
		"UPDATE users SET balance = balance - $1 WHERE id = $2 AND balance >= $3 RETURNING balance",
		query,
	)
	require.Len(t, args, 3)
	assert.True(t, amount.Equal(args[0].(decimal.Decimal)))
	assert.Equal(t, "user-1", args[1])
	// условие сравнения получает значение через driver.Valuer
	assert.Equal(t, amount.String(), args[2])
}

func TestBuildCreditQuery(t *testing.T) {
	amount := decimal.NewFromInt(100)

	query, args, err := buildCreditQuery("user-2", amount)
	require.NoError(t, err)

	assert.Equal(t,
		"UPDATE users SET balance = balance + $1 WHERE id = $2 RETURNING balance",
		query,
	)
	require.Len(t, args, 2)
	assert.True(t, amount.Equal(args[0].(decimal.Decimal)))
	assert.Equal(t, "user-2", args[1])
}
