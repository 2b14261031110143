package dice

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedSource always returns the same index
type fixedSource struct {
	index int
}

func (f *fixedSource) Intn(n int) int {
	return f.index % n
}

func TestRollStaysInRange(t *testing.T) {
	roller := New(&Config{Seed: 42})

	for i := 0; i < 10000; i++ {
		value := roller.Roll()
		require.GreaterOrEqual(t, value, 1)
		require.LessOrEqual(t, value, DefaultSides)
	}
}

func TestRollIsUniform(t *testing.T) {
	const trials = 60000
	roller := New(&Config{Seed: 7})

	counts := make(map[int]int, DefaultSides)
	for i := 0; i < trials; i++ {
		counts[roller.Roll()]++
	}

	require.Len(t, counts, DefaultSides, "every face should appear")

	expected := float64(trials) / DefaultSides
	chiSquared := 0.0
	for face := 1; face <= DefaultSides; face++ {
		diff := float64(counts[face]) - expected
		chiSquared += diff * diff / expected
	}

	// Critical value for 5 degrees of freedom at p = 0.001
	assert.Less(t, chiSquared, 20.515)
}

func TestSameSeedSameSequence(t *testing.T) {
	a := New(&Config{Seed: 1234})
	b := New(&Config{Seed: 1234})

	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Roll(), b.Roll())
	}
}

func TestSourceTakesPrecedence(t *testing.T) {
	roller := New(&Config{Seed: 99, Source: &fixedSource{index: 2}})

	assert.Equal(t, 3, roller.Roll())
	assert.Equal(t, 3, roller.RollSides(20))
}

func TestRollSidesDefaultsToSix(t *testing.T) {
	roller := New(&Config{Source: &fixedSource{index: 11}})

	// 11 % 6 == 5
	assert.Equal(t, 6, roller.RollSides(0))
	assert.Equal(t, 6, roller.RollSides(-3))
}

func TestNilConfig(t *testing.T) {
	roller := New(nil)

	value := roller.Roll()
	assert.GreaterOrEqual(t, value, 1)
	assert.LessOrEqual(t, value, DefaultSides)
}

func TestConcurrentRolls(t *testing.T) {
	roller := New(&Config{Seed: 5})

	var wg sync.WaitGroup
	results := make(chan int, 800)
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				results <- roller.Roll()
			}
		}()
	}
	wg.Wait()
	close(results)

	count := 0
	for value := range results {
		count++
		assert.True(t, value >= 1 && value <= DefaultSides)
	}
	assert.Equal(t, 800, count)
}
