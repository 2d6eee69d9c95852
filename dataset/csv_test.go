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

func TestReadCSV(t *testing.T) {
	t.Parallel()

	in := "\ufeffid,party,Q3-1,Q3-2,x,y,z\n" +
		"1,A,4,-,1,2,3\n" +
		"2,B,,5,1,oops,3\n"
	recs, err := dataset.ReadCSV(strings.NewReader(in), "id", "party")
	require.NoError(t, err)
	require.Len(t, recs, 2)

	assert.Equal(t, "1", recs[0].ID)
	assert.Equal(t, "A", recs[0].Group)
	assert.Equal(t, geom.Vec3{1, 2, 3}, *recs[0].Coords)
	assert.Equal(t, feature.TextCell("4"), recs[0].Cells["Q3-1"])
	assert.True(t, recs[0].Cells["Q3-2"].IsPlaceholder())
	assert.Len(t, recs[0].Cells, 2)

	assert.Nil(t, recs[1].Coords)
	assert.True(t, recs[1].Cells["Q3-1"].IsPlaceholder())

	tbl := feature.NewTable(recs, []string{"Q3-1", "Q3-2"})
	assert.Equal(t, 4.0, feature.Coerce(tbl.Cell(0, 0), 3))
	assert.Equal(t, 3.0, feature.Coerce(tbl.Cell(0, 1), 3))
}

func TestReadCSV_Errors(t *testing.T) {
	t.Parallel()

	_, err := dataset.ReadCSV(strings.NewReader("name,Q1\nx,1\n"), "id", "")
	assert.ErrorIs(t, err, dataset.ErrMissingColumn)

	_, err = dataset.ReadCSV(strings.NewReader("id,Q1\n1,2\n"), "id", "party")
	assert.ErrorIs(t, err, dataset.ErrMissingColumn)

	_, err = dataset.ReadCSV(strings.NewReader("id,Q1\n ,2\n"), "id", "")
	assert.ErrorIs(t, err, dataset.ErrMalformed)

	recs, err := dataset.ReadCSV(strings.NewReader(""), "id", "")
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestOpenCSV_Load(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, dataset.ManifestFile), []byte(manifestJSON), 0o600))
	table := "id,name,party,Q1-1,Q1-2,Q2-1,x,y,z\n" +
		"1,Sato,A,2,-,5,1,2,3\n" +
		"2,,B,4,1,,4,5,6\n"
	require.NoError(t, os.WriteFile(filepath.Join(root, "survey.csv"), []byte(table), 0o600))

	src, err := dataset.OpenCSV(root, "", "survey.csv", "id", "party")
	require.NoError(t, err)
	assert.Equal(t, []string{"Q1", "Q2", "Q3"}, src.Manifest().Bases())

	q, ef, err := src.Load("Q1", embed.PCAJS)
	require.NoError(t, err)
	assert.Equal(t, []string{"Q1-1", "Q1-2"}, q.Columns)
	assert.Equal(t, dataset.MethodCSV, ef.Meta.Method)
	assert.Equal(t, "Q1", ef.Meta.Base)
	assert.Equal(t, map[string]string{"1": "Sato"}, ef.Names)
	require.Len(t, ef.Records, 2)
	assert.NotContains(t, ef.Records[0].Cells, "name")
	assert.Equal(t, geom.Vec3{4, 5, 6}, *ef.Records[1].Coords)
	assert.ErrorIs(t, embed.PreUMAP.CheckMethod(ef.Meta.Method), embed.ErrMethodMismatch)

	_, ef, err = src.Load("Q2", embed.PrePCA)
	require.NoError(t, err)
	assert.Equal(t, "Q2", ef.Meta.Base)

	_, _, err = src.Load("Q9", embed.PCAJS)
	assert.ErrorIs(t, err, dataset.ErrUnknownQuestion)

	_, err = dataset.OpenCSV(root, "", "missing.csv", "id", "party")
	assert.Error(t, err)
	_, err = dataset.OpenCSV(root, "", "survey.csv", "respondent", "party")
	assert.ErrorIs(t, err, dataset.ErrMissingColumn)
}
