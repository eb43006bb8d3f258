package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestGuessCurrencyFromSymbol(t *testing.T) {
	cur := GuessCurrency("TOTAL £11.40", nil)
	require.NotNil(t, cur)
	assert.Equal(t, "GBP", *cur)

	cur = GuessCurrency("TOTAL $9.99", nil)
	require.NotNil(t, cur)
	assert.Equal(t, "USD", *cur)
}

func TestGuessCurrencySymbolBeatsMerchant(t *testing.T) {
	cur := GuessCurrency("WALMART\nTOTAL £5.00", strPtr("Walmart"))
	require.NotNil(t, cur)
	assert.Equal(t, "GBP", *cur)
}

func TestGuessCurrencyFromMerchantLocale(t *testing.T) {
	cur := GuessCurrency("TESCO EXPRESS\nTOTAL 11.40", strPtr("Tesco Express"))
	require.NotNil(t, cur)
	assert.Equal(t, "GBP", *cur)

	cur = GuessCurrency("WALMART\nTOTAL 9.99", strPtr("Walmart"))
	require.NotNil(t, cur)
	assert.Equal(t, "USD", *cur)
}

func TestGuessCurrencyNoSignal(t *testing.T) {
	assert.Nil(t, GuessCurrency("CORNER DELI\nTOTAL 9.99", strPtr("Corner Deli")))
	assert.Nil(t, GuessCurrency("TOTAL 9.99", nil))

	// Aldi trades across currency zones; no single home currency applies
	assert.Nil(t, GuessCurrency("ALDI\nTOTAL 9.99", strPtr("Aldi")))
}
