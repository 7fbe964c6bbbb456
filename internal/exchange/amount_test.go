// ABOUTME: Tests for amount parsing and display formatting
// ABOUTME: Covers both decimal separators and rejection of invalid input

package exchange

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input   string
		want    float64
		wantErr bool
	}{
		{"1000", 1000, false},
		{"0.5", 0.5, false},
		{"0,5", 0.5, false},
		{" 42 ", 42, false},
		{"abc", 0, true},
		{"-5", 0, true},
		{"0", 0, true},
		{"", 0, true},
		{"NaN", 0, true},
		{"Inf", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseAmount_NotPositiveIsDistinct(t *testing.T) {
	_, err := ParseAmount("-5")
	assert.ErrorIs(t, err, ErrNotPositive)

	_, err = ParseAmount("0")
	assert.ErrorIs(t, err, ErrNotPositive)

	_, err = ParseAmount("abc")
	assert.NotErrorIs(t, err, ErrNotPositive)
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "1.000000", FormatAmount(1))
	assert.Equal(t, "0.000020", FormatAmount(0.00002))
	assert.Equal(t, "14.000000", FormatAmount(14))
}
