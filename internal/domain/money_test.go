package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	d, err := ParseAmount("40.00")
	require.NoError(t, err)
	assert.True(t, d.Equal(decimal.RequireFromString("40")))

	d, err = ParseAmount("0.0001")
	require.NoError(t, err)
	assert.Equal(t, "0.0001", FormatAmount(d))
}

func TestParseAmount_RejectsExcessScale(t *testing.T) {
	_, err := ParseAmount("1.00001")
	assert.Error(t, err)
}

func TestParseAmount_RejectsGarbage(t *testing.T) {
	_, err := ParseAmount("ten dollars")
	assert.Error(t, err)
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "60.0000", FormatAmount(decimal.RequireFromString("60")))
	assert.Equal(t, "0.5000", FormatAmount(decimal.RequireFromString("0.5")))
}
