package deltat

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestEstimateTable(t *testing.T) {
	assert.Equal(t, 63.83, Estimate(2000))
	assert.Equal(t, 124.0, Estimate(1620))
	assert.Equal(t, 68.59, Estimate(2017))

	rapid.Check(t, func(t *rapid.T) {
		year := rapid.IntRange(Default().First(), Default().Last()).Draw(t, "year")
		want, ok := Default().Lookup(year)
		require.True(t, ok)
		assert.Equal(t, want, Estimate(year))
	})
}

func TestEstimatePolynomial(t *testing.T) {
	tests := []struct {
		year int
		want float64
	}{
		{-1000, 25427.68},
		{-500, 17203.6563390625},
		{0, 10583.6},
		{500, 5710.1317890625},
		{1000, 1574.2},
		{1600, 120.25111454080013},
		{1619, 96.7964065254594},
		{2018, 70.529896},
		{2050, 93.001},
		{2100, 202.74},
		{2150, 328.48},
		{2151, 330.5952},
		{3000, 4435.68},
	}

	for _, test := range tests {
		assert.InDelta(t, test.want, Estimate(test.year), 1e-6, "year %d", test.year)
	}
}

func TestEstimateStitching(t *testing.T) {
	table := Default()
	last := Estimate(table.Last())
	next := Estimate(table.Last() + 1)
	assert.InDelta(t, last, next, 3)
	assert.NotEqual(t, last, next)
}

func TestPolynomialSegments(t *testing.T) {
	// the 1600 to 1620 fill uses the same curve as 1620 to 1700
	curve := func(year int) float64 {
		x := float64(year - 1600)
		return 120 - 0.9808*x - 0.01532*x*x + x*x*x/7129
	}
	for _, year := range []int{1601, 1610, 1619, 1620, 1650, 1700} {
		assert.InDelta(t, curve(year), Polynomial(year), 1e-9, "year %d", year)
	}

	// stays finite and increasing far from the present
	assert.False(t, math.IsInf(Polynomial(math.MinInt32), 0))
	assert.Greater(t, Polynomial(100000), Polynomial(10000))
	assert.Greater(t, Polynomial(-100000), Polynomial(-10000))

	// the model tracks observation inside the table era
	for _, year := range []int{1750, 1850, 1880, 1910, 1930, 1955, 1975, 2000, 2010} {
		observed, ok := Default().Lookup(year)
		require.True(t, ok)
		assert.InDelta(t, observed, Polynomial(year), 2.5, "year %d", year)
	}
}

func TestEstimatorBounds(t *testing.T) {
	table, err := NewTable([]Entry{{1980, 50.54}, {1981, 51.38}, {1982, 52.17}})
	require.NoError(t, err)
	estimator := NewEstimator(table)
	assert.Same(t, table, estimator.Table())

	assert.Equal(t, 51.38, estimator.Estimate(1981))
	assert.Equal(t, Polynomial(1979), estimator.Estimate(1979))
	assert.Equal(t, Polynomial(2000), estimator.Estimate(2000))
	assert.NotEqual(t, Estimate(2000), estimator.Estimate(2000))
}

func TestNewEstimatorDefault(t *testing.T) {
	estimator := NewEstimator(nil)
	assert.Same(t, Default(), estimator.Table())
	assert.Equal(t, 63.83, estimator.Estimate(2000))
	assert.Equal(t, Polynomial(2100), estimator.Estimate(2100))
}

func TestEstimateConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(offset int) {
			defer wg.Done()
			for year := 1500 + offset; year < 2200; year += 8 {
				_ = Estimate(year)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 63.83, Estimate(2000))
}
