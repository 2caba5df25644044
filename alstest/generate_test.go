package alstest

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTabularData(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 20; i++ {
		tab := GenerateTabularData(rng, 1+rng.Intn(30), 1+rng.Intn(5))
		require.NoError(t, tab.Validate())
		assert.Greater(t, tab.RowCount, 0)
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	a := GenerateTabularData(rand.New(rand.NewSource(11)), 25, 3)
	b := GenerateTabularData(rand.New(rand.NewSource(11)), 25, 3)
	assert.Equal(t, a, b)
}
