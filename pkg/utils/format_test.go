package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{name: "Preço de combustível", amount: 1580, want: "₩1,580"},
		{name: "Arredonda para o won inteiro", amount: 249999.6, want: "₩250,000"},
		{name: "Zero", amount: 0, want: "₩0"},
		{name: "Negativo", amount: -3000, want: "-₩3,000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCurrency(tt.amount))
		})
	}
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "1,234,567", FormatNumber(1234567))
	assert.Equal(t, "85.2", FormatNumber(85.2))
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "12.5%", FormatPercent(12.5))
	assert.Equal(t, "100.0%", FormatPercent(100))
}
