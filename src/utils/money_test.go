package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatBRL(t *testing.T) {
	assert.Equal(t, "R$ 1.234,56", FormatBRL(1234.56))
	assert.Equal(t, "R$ 0,00", FormatBRL(0))
	assert.Equal(t, "R$ 60.000,00", FormatBRL(60000))
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "18,50%", FormatPercent(18.5))
	assert.Equal(t, "10,00%", FormatPercent(10))
}
