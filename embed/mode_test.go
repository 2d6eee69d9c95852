// SPDX-License-Identifier: MIT

package embed_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/surveyspace/embed"
	"github.com/katalvlaran/surveyspace/feature"
	"github.com/katalvlaran/surveyspace/geom"
)

func TestParseMode(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]embed.Mode{
		"":          embed.PCAJS,
		"pca_js":    embed.PCAJS,
		"PRE_UMAP":  embed.PreUMAP,
		" pre_pca ": embed.PrePCA,
	} {
		m, err := embed.ParseMode(in)
		require.NoError(t, err, in)
		require.Equal(t, want, m)
	}

	_, err := embed.ParseMode("tsne")
	require.ErrorIs(t, err, embed.ErrUnknownMode)

	require.True(t, embed.PCAJS.Computed())
	require.False(t, embed.PreUMAP.Computed())
}

func TestCheckMethod(t *testing.T) {
	t.Parallel()

	require.NoError(t, embed.PreUMAP.CheckMethod("umap-learn 0.5"))
	require.ErrorIs(t, embed.PreUMAP.CheckMethod("PCA"), embed.ErrMethodMismatch)
	require.NoError(t, embed.PrePCA.CheckMethod("anything"))
}

func TestFromPrecomputed(t *testing.T) {
	t.Parallel()

	recs := []feature.Record{
		{ID: "1", Coords: &geom.Vec3{1, 2, 3}},
		{ID: "2", Coords: &geom.Vec3{-1, 0, 4}},
	}
	p, err := embed.FromPrecomputed(feature.NewTable(recs, nil), embed.PreUMAP)
	require.NoError(t, err)
	require.Equal(t, embed.MethodPreUMAP, p.Method)
	require.Equal(t, []geom.Point3D{{ID: "1", X: 1, Y: 2, Z: 3}, {ID: "2", X: -1, Z: 4}}, p.Points)

	recs = append(recs, feature.Record{ID: "3"})
	_, err = embed.FromPrecomputed(feature.NewTable(recs, nil), embed.PrePCA)
	require.ErrorIs(t, err, embed.ErrNoPrecomputed)
	require.Contains(t, err.Error(), `"3"`)
}
