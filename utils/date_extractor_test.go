package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractDateSlashDayFirst(t *testing.T) {
	date := ExtractDate("TESCO EXPRESS\n15/03/2024 14:32\nTOTAL 11.40")
	require.NotNil(t, date)
	assert.Equal(t, "2024-03-15", *date)
}

func TestExtractDateMonthFirstFallback(t *testing.T) {
	// day-first parse fails on month 15, so the US layout applies
	date := ExtractDate("03/15/2024")
	require.NotNil(t, date)
	assert.Equal(t, "2024-03-15", *date)
}

func TestExtractDateISO(t *testing.T) {
	date := ExtractDate("DATE: 2024-03-15")
	require.NotNil(t, date)
	assert.Equal(t, "2024-03-15", *date)
}

func TestExtractDateMonthName(t *testing.T) {
	date := ExtractDate("15 March 2024")
	require.NotNil(t, date)
	assert.Equal(t, "2024-03-15", *date)

	date = ExtractDate("3 Mar 2024")
	require.NotNil(t, date)
	assert.Equal(t, "2024-03-03", *date)
}

func TestExtractDateDottedShortYear(t *testing.T) {
	date := ExtractDate("15.03.24")
	require.NotNil(t, date)
	assert.Equal(t, "2024-03-15", *date)
}

func TestExtractDateIgnoresAmountsAndInvalid(t *testing.T) {
	assert.Nil(t, ExtractDate("TOTAL 12.50\nCARD 12.50"))
	assert.Nil(t, ExtractDate("32/13/2024"))
	assert.Nil(t, ExtractDate("no date here"))
}
