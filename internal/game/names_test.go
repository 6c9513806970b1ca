package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniquifyNameIsDeterministic(t *testing.T) {
	t.Parallel()

	taken := []string{"bob", "bob-2", "alice"}
	assert.Equal(t, "cam", UniquifyName("cam", taken))
	assert.Equal(t, "alice-2", UniquifyName("alice", taken))
	assert.Equal(t, "bob-3", UniquifyName("bob", taken))
	assert.Equal(t, "bob-3", UniquifyName("bob", taken), "same inputs give the same name")
	assert.Equal(t, "bob", UniquifyName("bob", nil))
}

func TestTableNamesAreDistinct(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(3))
	names, err := TableNames(rng, 8)
	require.NoError(t, err)
	require.Len(t, names, 8)
	seen := make(map[string]bool)
	for _, n := range names {
		assert.False(t, seen[n], "duplicate name %s", n)
		seen[n] = true
	}
}

func TestTableNamesBoundsThePool(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(3))
	_, err := TableNames(rng, len(tableNames)+1)
	assert.Error(t, err)
}
