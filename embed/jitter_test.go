// SPDX-License-Identifier: MIT

package embed_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/surveyspace/embed"
	"github.com/katalvlaran/surveyspace/matrix"
)

func TestJitterBand(t *testing.T) {
	t.Parallel()

	cases := []struct {
		distinct, n int
		want        float64
	}{
		{0, 0, embed.JitterSDFew},
		{1, 100, embed.JitterSDFew},
		{3, 100, embed.JitterSDFew},
		{4, 100, embed.JitterSDSome},
		{6, 100, embed.JitterSDSome},
		{7, 100, embed.JitterSDSeveral},
		{10, 100, embed.JitterSDSeveral},
		{11, 200, embed.JitterSDSparse},
		{11, 100, embed.JitterSDModerate},
		{14, 100, embed.JitterSDDense},
		{50, 100, embed.JitterSDDense},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, embed.JitterBand(tc.distinct, tc.n), "%d/%d", tc.distinct, tc.n)
	}
}

// TestJitterBand_Monotone: for a fixed population, more distinct patterns never increase sd.
func TestJitterBand_Monotone(t *testing.T) {
	t.Parallel()

	for _, n := range []int{10, 60, 150, 1000} {
		prev := embed.JitterBand(1, n)
		for u := 2; u <= n; u++ {
			sd := embed.JitterBand(u, n)
			require.LessOrEqual(t, sd, prev, "n=%d u=%d", n, u)
			prev = sd
		}
	}
}

func TestJitterVector_Reproducible(t *testing.T) {
	t.Parallel()

	a := embed.JitterVector("Q3", "17", 1)
	require.Equal(t, a, embed.JitterVector("Q3", "17", 1))
	require.NotEqual(t, a, embed.JitterVector("Q3", "18", 1))
	require.NotEqual(t, a, embed.JitterVector("Q4", "17", 1))
	require.Equal(t, a.Scale(2), embed.JitterVector("Q3", "17", 2))
	require.Equal(t, "Q3|jitter|17", embed.JitterKey("Q3", "17"))
}

func TestDistinctPatterns(t *testing.T) {
	t.Parallel()

	X, err := matrix.NewDenseRows([][]float64{
		{0.04, 0.5},
		{-0.04, 0.5}, // rounds onto row 0
		{0.12, 0.5},  // 0.1
		{0.08, 0.46}, // 0.1, 0.5
		{0.3, -0.5},
	})
	require.NoError(t, err)
	require.Equal(t, 3, embed.DistinctPatterns(X))

	empty, err := matrix.NewDense(0, 2)
	require.NoError(t, err)
	require.Equal(t, 0, embed.DistinctPatterns(empty))
}
