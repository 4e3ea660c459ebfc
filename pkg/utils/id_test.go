package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateID(t *testing.T) {
	seen := make(map[string]bool)

	for i := 0; i < 1000; i++ {
		id, err := GenerateID()
		require.NoError(t, err)
		assert.Len(t, id, RowIDLength)
		assert.NotContains(t, id, "-")
		assert.False(t, seen[id], "id repetido: %s", id)
		seen[id] = true
	}
}
