package dataset_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/surveyspace/dataset"
	"github.com/katalvlaran/surveyspace/embed"
)

const manifestJSON = `{
  "questions": [
    {"base": "Q1", "columns": ["Q1-1", "Q1-2"], "question_full": "Which?",
     "options_text": "1:yes | 2:no | 3: maybe later", "embed_file": "embed_pca_Q1.json",
     "embed_file_pca": "embed_pca_Q1.json", "embed_file_umap": "embed_umap_Q1.json"},
    {"base": "Q2", "columns": ["Q2-1"], "embed_file": "embed_Q2.json"},
    {"base": "Q3", "columns": ["Q3-1"]}
  ],
  "q25_labels": {"Q25-1": "Candidate A"}
}`

func TestParseManifest(t *testing.T) {
	t.Parallel()

	m, err := dataset.ParseManifest([]byte(manifestJSON))
	require.NoError(t, err)
	assert.Equal(t, []string{"Q1", "Q2", "Q3"}, m.Bases())

	q, err := m.Question("Q1")
	require.NoError(t, err)
	assert.Equal(t, []string{"Q1-1", "Q1-2"}, q.Columns)
	assert.Equal(t, map[string]string{"1": "yes", "2": "no", "3": "maybe later"}, q.Options())

	_, err = m.Question("Q99")
	assert.ErrorIs(t, err, dataset.ErrUnknownQuestion)

	assert.Equal(t, "Candidate A", m.ColumnLabel("Q25-1"))
	assert.Equal(t, "Q25-2", m.ColumnLabel("Q25-2"))
}

func TestParseManifest_Errors(t *testing.T) {
	t.Parallel()

	_, err := dataset.ParseManifest([]byte(`{"questions":[{"columns":["a"]}]}`))
	assert.ErrorIs(t, err, dataset.ErrMalformed)

	_, err = dataset.ParseManifest([]byte(`{`))
	assert.Error(t, err)

	_, err = dataset.LoadManifest(filepath.Join(t.TempDir(), "none.json"))
	assert.Error(t, err)
}

func TestQuestion_EmbedFileFor(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		q    dataset.Question
		mode embed.Mode
		want string
	}{
		{"umap explicit", dataset.Question{Base: "Q1", EmbedFile: "embed_Q1.json", EmbedFileUMAP: "u.json"}, embed.PreUMAP, "u.json"},
		{"umap from legacy", dataset.Question{Base: "Q1", EmbedFile: "embed_Q1.json"}, embed.PreUMAP, "embed_umap_Q1.json"},
		{"umap legacy without prefix", dataset.Question{Base: "Q1", EmbedFile: "q1.json"}, embed.PreUMAP, "q1.json"},
		{"umap default", dataset.Question{Base: "Q1"}, embed.PreUMAP, "embed_umap_Q1.json"},
		{"pca explicit", dataset.Question{Base: "Q1", EmbedFile: "embed_Q1.json", EmbedFilePCA: "p.json"}, embed.PrePCA, "p.json"},
		{"pca legacy", dataset.Question{Base: "Q1", EmbedFile: "embed_Q1.json"}, embed.PrePCA, "embed_Q1.json"},
		{"pca default", dataset.Question{Base: "Q1"}, embed.PrePCA, "embed_pca_Q1.json"},
		{"js reads pca file", dataset.Question{Base: "Q1", EmbedFilePCA: "p.json", EmbedFileUMAP: "u.json"}, embed.PCAJS, "p.json"},
		{"js default", dataset.Question{Base: "Q7"}, embed.PCAJS, "embed_pca_Q7.json"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.q.EmbedFileFor(tc.mode))
		})
	}
}

func TestParseOptions(t *testing.T) {
	t.Parallel()

	assert.Empty(t, dataset.ParseOptions(""))
	assert.Equal(t,
		map[string]string{"1": "a:b", "2": ""},
		dataset.ParseOptions("1:a:b|2:| :skipped | nocolon"),
	)
}
