package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/pathtrace/builder"
)

func TestWeightFnConstructors_Panic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		constructor func() builder.WeightFn
	}{
		{"UniformWeightFn_maxLessThanMin", func() builder.WeightFn { return builder.UniformWeightFn(5, 4) }},
		{"IntUniformWeightFn_maxLessThanMin", func() builder.WeightFn { return builder.IntUniformWeightFn(5, 4) }},
		{"ExponentialWeightFn_zeroRate", func() builder.WeightFn { return builder.ExponentialWeightFn(0) }},
		{"ExponentialWeightFn_negativeRate", func() builder.WeightFn { return builder.ExponentialWeightFn(-1) }},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Panics(t, func() { tc.constructor() })
		})
	}
}

func TestWeightFnBehavior(t *testing.T) {
	t.Parallel()

	const seed = 42
	rng := rand.New(rand.NewSource(seed))

	assert.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(nil))
	assert.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(rng))

	// Negative constants are allowed for Bellman-Ford fixtures.
	assert.Equal(t, -3.0, builder.ConstantWeightFn(-3)(rng))

	uni := builder.UniformWeightFn(3, 3)
	assert.Equal(t, builder.DefaultEdgeWeight, uni(nil))
	assert.Equal(t, 3.0, uni(rng))

	span := builder.UniformWeightFn(-2, 2)
	for i := 0; i < 100; i++ {
		w := span(rng)
		assert.GreaterOrEqual(t, w, -2.0)
		assert.Less(t, w, 2.0)
	}

	ints := builder.IntUniformWeightFn(1, 3)
	assert.Equal(t, builder.DefaultEdgeWeight, ints(nil))
	seen := make(map[float64]bool)
	for i := 0; i < 200; i++ {
		seen[ints(rng)] = true
	}
	assert.Equal(t, map[float64]bool{1: true, 2: true, 3: true}, seen)

	exp := builder.ExponentialWeightFn(1.5)
	assert.Equal(t, builder.DefaultEdgeWeight, exp(nil))
	assert.GreaterOrEqual(t, exp(rng), 0.0)
}

func TestOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Panics(t, func() { builder.WithSpacing(0) })
}
