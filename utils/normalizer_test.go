package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDigitsFixesConfusions(t *testing.T) {
	assert.Equal(t, "TOTAL 10.50", NormalizeDigits("TOTAL 1O.5O"))
	assert.Equal(t, "£25.99", NormalizeDigits("£2S.99"))
	assert.Equal(t, "11.40", NormalizeDigits("Il.4O"))
	assert.Equal(t, "12.25", NormalizeDigits("1Z.2S"))
	assert.Equal(t, "88.00", NormalizeDigits("B8.00"))
}

func TestNormalizeDigitsLeavesProseAlone(t *testing.T) {
	assert.Equal(t, "BOOTS STORE 12", NormalizeDigits("BOOTS STORE 12"))
	assert.Equal(t, "SO COOL", NormalizeDigits("SO COOL"))
	assert.Equal(t, "TESCO EXPRESS", NormalizeDigits("TESCO EXPRESS"))
	assert.Equal(t, "ISLE OF SKYE", NormalizeDigits("ISLE OF SKYE"))
}

func TestNormalizeDigitsKeepsPenceSuffix(t *testing.T) {
	assert.Equal(t, "50p", NormalizeDigits("5Op"))
}
