package builder

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBuilderConfig_Defaults(t *testing.T) {
	cfg := newBuilderConfig()

	assert.Equal(t, "A", cfg.idFn(0))
	assert.Equal(t, "AB", cfg.idFn(27))
	assert.Nil(t, cfg.rng)
	assert.Equal(t, DefaultEdgeWeight, cfg.weightFn(nil))
	assert.False(t, cfg.bidirectional)
	assert.Equal(t, DefaultSpacing, cfg.spacing)
}

func TestNewBuilderConfig_LastOptionWins(t *testing.T) {
	cfg := newBuilderConfig(WithDecimalIDs(), WithSymbNumb("v"), WithConstantWeight(2), WithConstantWeight(5))

	assert.Equal(t, "v3", cfg.idFn(3))
	assert.Equal(t, 5.0, cfg.weightFn(nil))
}

func TestRNGOptions(t *testing.T) {
	a := newBuilderConfig(WithSeed(7))
	b := newBuilderConfig(WithSeed(7))
	require.NotNil(t, a.rng)
	assert.Equal(t, a.rng.Int63(), b.rng.Int63())

	r := rand.New(rand.NewSource(1))
	c := newBuilderConfig(WithRand(r))
	assert.Same(t, r, c.rng)
}
