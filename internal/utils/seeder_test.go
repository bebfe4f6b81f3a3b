package utils

import (
	mathrand "math/rand"
	"testing"

	"portfolio/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestPickReturnsDistinctValues(t *testing.T) {
	rng := mathrand.New(mathrand.NewSource(1))

	got := pick(rng, seedTags, 3)
	assert.Len(t, got, 3)
	seen := map[string]bool{}
	for _, tag := range got {
		assert.Contains(t, seedTags, tag)
		assert.False(t, seen[tag], "duplicate %q", tag)
		seen[tag] = true
	}

	assert.Len(t, pick(rng, []string{"a", "b"}, 5), 2)
}

func TestWeightedStatusIsAlwaysValid(t *testing.T) {
	rng := mathrand.New(mathrand.NewSource(7))
	counts := map[string]int{}
	for i := 0; i < 1000; i++ {
		s := weightedStatus(rng)
		assert.True(t, models.ValidArticleStatus(s))
		counts[s]++
	}
	assert.Greater(t, counts[models.StatusPublished], counts[models.StatusArchived])
}
