package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name          string
		value         string
		expectedNil   bool
		expectedError bool
		expected      string
	}{
		{name: "empty value means no amount", value: "", expectedNil: true},
		{name: "blank value means no amount", value: "   ", expectedNil: true},
		{name: "decimal value", value: "129.99", expected: "129.99"},
		{name: "integer value", value: "10", expected: "10"},
		{name: "not a number", value: "ten", expectedError: true},
		{name: "negative value", value: "-1.00", expectedError: true},
		{name: "minor units overflow int64", value: "100000000000000000", expectedError: true},
		{name: "exponent form overflows int64", value: "1e30", expectedError: true},
		{name: "rounding past the largest amount", value: "92233720368547758.075", expectedError: true},
		{name: "largest amount", value: "92233720368547758.07", expected: "92233720368547758.07"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, err := ParseAmount(tt.value)

			if tt.expectedError {
				assert.ErrorIs(t, err, ErrInvalidAmount)
				assert.Nil(t, amount)
				return
			}

			require.NoError(t, err)
			if tt.expectedNil {
				assert.Nil(t, amount)
				return
			}
			require.NotNil(t, amount)
			assert.Equal(t, tt.expected, amount.String())
		})
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected int64
	}{
		{name: "two decimals", value: "129.99", expected: 12999},
		{name: "whole number", value: "10", expected: 1000},
		{name: "rounds half up", value: "0.125", expected: 13},
		{name: "rounds down", value: "0.124", expected: 12},
		{name: "zero", value: "0", expected: 0},
		{name: "largest amount", value: "92233720368547758.07", expected: math.MaxInt64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, err := ParseAmount(tt.value)
			require.NoError(t, err)

			formatted := FormatAmount(amount)
			require.NotNil(t, formatted)
			assert.Equal(t, tt.expected, *formatted)
		})
	}

	t.Run("nil amount stays absent", func(t *testing.T) {
		assert.Nil(t, FormatAmount(nil))
	})
}
