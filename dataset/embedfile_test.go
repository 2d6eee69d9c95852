package dataset_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/surveyspace/dataset"
	"github.com/katalvlaran/surveyspace/embed"
	"github.com/katalvlaran/surveyspace/feature"
	"github.com/katalvlaran/surveyspace/geom"
)

const embedJSON = `{
  "meta": {"method": "UMAP", "base": "Q1", "noise_sd": 0.05, "n_neighbors": 30},
  "data": [
    {"id": 0, "name": "Sato", "party": "A", "group": "g1", "Q1-1": "2", "Q1-2": "-", "x": 1.5, "y": -2, "z": 0.25},
    {"id": "r1", "party": "B", "Q1-1": 4, "Q1-2": null},
    {"id": 2, "party": "A", "Q1-1": "", "x": 1, "y": "bad", "z": 3}
  ]
}`

func TestParseEmbedFile(t *testing.T) {
	t.Parallel()

	ef, err := dataset.ParseEmbedFile([]byte(embedJSON))
	require.NoError(t, err)

	assert.Equal(t, "UMAP", ef.Meta.Method)
	assert.Equal(t, "Q1", ef.Meta.Base)
	assert.Equal(t, 0.05, ef.Meta.NoiseSD)
	assert.Contains(t, ef.Meta.Raw, "n_neighbors")
	require.NoError(t, embed.PreUMAP.CheckMethod(ef.Meta.Method))

	require.Len(t, ef.Records, 3)
	r0 := ef.Records[0]
	assert.Equal(t, "0", r0.ID)
	assert.Equal(t, "A", r0.Group)
	require.NotNil(t, r0.Coords)
	assert.Equal(t, geom.Vec3{1.5, -2, 0.25}, *r0.Coords)
	assert.Equal(t, feature.TextCell("2"), r0.Cells["Q1-1"])
	assert.True(t, r0.Cells["Q1-2"].IsPlaceholder())
	assert.NotContains(t, r0.Cells, "group")
	assert.NotContains(t, r0.Cells, "name")
	assert.Equal(t, map[string]string{"0": "Sato"}, ef.Names)

	r1 := ef.Records[1]
	assert.Equal(t, "r1", r1.ID)
	assert.Nil(t, r1.Coords)
	assert.Equal(t, feature.Number, r1.Cells["Q1-1"].Kind)
	assert.Equal(t, feature.Missing, r1.Cells["Q1-2"].Kind)

	assert.Nil(t, ef.Records[2].Coords, "partial coordinates are dropped")
}

func TestParseEmbedFile_Errors(t *testing.T) {
	t.Parallel()

	_, err := dataset.ParseEmbedFile([]byte(`{"data":[{"party":"A"}]}`))
	assert.ErrorIs(t, err, dataset.ErrMalformed)

	_, err = dataset.ParseEmbedFile([]byte(`[]`))
	assert.Error(t, err)

	_, err = dataset.LoadEmbedFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestOpenDir_Load(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, dataset.ManifestFile), []byte(manifestJSON), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(root, "embed_umap_Q1.json"), []byte(embedJSON), 0o600))

	d, err := dataset.OpenDir(root, "")
	require.NoError(t, err)
	assert.Len(t, d.Manifest().Questions, 3)

	q, ef, err := d.Load("Q1", embed.PreUMAP)
	require.NoError(t, err)
	assert.Equal(t, "Q1", q.Base)
	assert.Len(t, ef.Records, 3)

	_, _, err = d.Load("Q1", embed.PrePCA)
	assert.Error(t, err, "embed_pca_Q1.json does not exist")

	_, _, err = d.Load("Q9", embed.PCAJS)
	assert.ErrorIs(t, err, dataset.ErrUnknownQuestion)

	_, err = dataset.OpenDir(t.TempDir(), "")
	assert.Error(t, err)
}

func TestStatic_Load(t *testing.T) {
	t.Parallel()

	m, err := dataset.ParseManifest([]byte(manifestJSON))
	require.NoError(t, err)
	ef, err := dataset.ReadEmbedFile(strings.NewReader(embedJSON))
	require.NoError(t, err)
	s := dataset.NewStatic(m, map[string]*dataset.EmbedFile{"embed_pca_Q1.json": ef})

	_, got, err := s.Load("Q1", embed.PCAJS)
	require.NoError(t, err)
	assert.Same(t, ef, got)

	_, _, err = s.Load("Q1", embed.PreUMAP)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
