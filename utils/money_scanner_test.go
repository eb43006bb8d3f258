package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanAmountsDecimalFamily(t *testing.T) {
	cands := ScanAmounts("TOTAL £12.34", 4)
	require.Len(t, cands, 1)
	assert.True(t, cands[0].Value.Equal(decimal.RequireFromString("12.34")))
	assert.True(t, cands[0].HasCurrencySymbol)
	assert.Equal(t, 4, cands[0].LineIndex)

	cands = ScanAmounts("BALANCE 9.99", 0)
	require.Len(t, cands, 1)
	assert.True(t, cands[0].Value.Equal(decimal.RequireFromString("9.99")))
	assert.False(t, cands[0].HasCurrencySymbol)
}

func TestScanAmountsThousandsSeparator(t *testing.T) {
	cands := ScanAmounts("AMOUNT 1,234.56", 0)
	require.Len(t, cands, 1)
	assert.True(t, cands[0].Value.Equal(decimal.RequireFromString("1234.56")))
}

func TestScanAmountsUnseparatedThousands(t *testing.T) {
	// four-plus digit amounts without a thousands separator must parse whole,
	// never as a truncated suffix
	cands := ScanAmounts("TOTAL 1234.56", 0)
	require.Len(t, cands, 1)
	assert.True(t, cands[0].Value.Equal(decimal.RequireFromString("1234.56")))
	assert.Equal(t, "1234.56", cands[0].RawText)

	cands = ScanAmounts("£12345.67", 0)
	require.Len(t, cands, 1)
	assert.True(t, cands[0].Value.Equal(decimal.RequireFromString("12345.67")))
	assert.True(t, cands[0].HasCurrencySymbol)
}

func TestScanAmountsPenceEquivalence(t *testing.T) {
	pence := ScanAmounts("CARRIER BAG 50p", 0)
	symbol := ScanAmounts("CARRIER BAG £0.50", 0)
	require.Len(t, pence, 1)
	require.Len(t, symbol, 1)
	assert.True(t, pence[0].Value.Equal(symbol[0].Value))
	assert.True(t, pence[0].Value.Equal(decimal.RequireFromString("0.5")))
}

func TestScanAmountsSkipsTimeLines(t *testing.T) {
	assert.Empty(t, ScanAmounts("14:32:01 TRAN ID 4521", 0))
	assert.Empty(t, ScanAmounts("SERVED AT 09:15", 0))
}

func TestScanAmountsSkipsIdentifierLines(t *testing.T) {
	assert.Empty(t, ScanAmounts("TERMINAL 44821990", 0))
	assert.Empty(t, ScanAmounts("TEL 01632 960321", 0))
	assert.Empty(t, ScanAmounts("AUTH CODE 552871", 0))
	assert.Empty(t, ScanAmounts("VAT REG 443 2214 05", 0))
}

func TestScanAmountsIntegerFallback(t *testing.T) {
	// bare small integers are quantities, not amounts
	assert.Empty(t, ScanAmounts("TOTAL ITEMS 5", 0))

	cands := ScanAmounts("CASH 20", 0)
	require.Len(t, cands, 1)
	assert.True(t, cands[0].Value.Equal(decimal.NewFromInt(20)))

	// a currency symbol rescues a small integer
	cands = ScanAmounts("TIP $5", 0)
	require.Len(t, cands, 1)
	assert.True(t, cands[0].Value.Equal(decimal.NewFromInt(5)))
	assert.True(t, cands[0].HasCurrencySymbol)
}

func TestScanAmountsDecimalFamilySuppressesIntegerFallback(t *testing.T) {
	// once a decimal amount matches, bare integers on the line are ignored
	cands := ScanAmounts("2 @ 1.50", 0)
	require.Len(t, cands, 1)
	assert.True(t, cands[0].Value.Equal(decimal.RequireFromString("1.5")))
}

func TestScanAmountsNormalizesConfusions(t *testing.T) {
	cands := ScanAmounts("TOTAL 1O.5O", 0)
	require.Len(t, cands, 1)
	assert.True(t, cands[0].Value.Equal(decimal.RequireFromString("10.5")))
}
