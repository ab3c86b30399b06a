package seeder

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestEmailUniqueAcrossRun(t *testing.T) {
	g := NewDataGenerator(1)

	seen := make(map[string]bool)
	for i := 0; i < 10000; i++ {
		email := g.Email()
		require.False(t, seen[email], "duplicate email %s", email)
		seen[email] = true
	}
}

func TestFixedSeedIsReproducible(t *testing.T) {
	a := NewDataGenerator(42)
	b := NewDataGenerator(42)

	for i := 0; i < 100; i++ {
		require.Equal(t, a.Name(), b.Name())
		require.Equal(t, a.Email(), b.Email())
		require.Equal(t, a.Sentence(8), b.Sentence(8))
		require.Equal(t, a.IntRange(1, 100), b.IntRange(1, 100))
		require.Equal(t, a.FloatRange(0, 1), b.FloatRange(0, 1))
	}
}

func TestIntRangeInclusive(t *testing.T) {
	g := NewDataGenerator(7)

	sawLo, sawHi := false, false
	for i := 0; i < 1000; i++ {
		v := g.IntRange(1, 3)
		require.GreaterOrEqual(t, v, 1)
		require.LessOrEqual(t, v, 3)
		sawLo = sawLo || v == 1
		sawHi = sawHi || v == 3
	}
	require.True(t, sawLo)
	require.True(t, sawHi)
}

func TestZipFormat(t *testing.T) {
	g := NewDataGenerator(7)

	for i := 0; i < 100; i++ {
		require.Regexp(t, `^\d{5}$`, g.Zip())
	}
}

func TestSampleDistinct(t *testing.T) {
	g := NewDataGenerator(7)

	pool := make([]primitive.ObjectID, 20)
	for i := range pool {
		pool[i] = primitive.NewObjectID()
	}

	for i := 0; i < 100; i++ {
		sample := g.Sample(pool, 5)
		require.Len(t, sample, 5)

		seen := make(map[primitive.ObjectID]bool)
		for _, id := range sample {
			require.False(t, seen[id])
			seen[id] = true
		}
	}

	// k beyond the pool size is capped, not an error
	require.Len(t, g.Sample(pool, 100), len(pool))
}
