package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundTo(t *testing.T) {
	assert.Equal(t, 85.2, RoundTo(85.24, 1))
	assert.Equal(t, 1583.0, RoundTo(1582.5, 0))
	assert.Equal(t, 12.35, RoundTo(12.346, 2))
	assert.Equal(t, 0.0, RoundTo(0, 3))
}
