package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeDataDir creates a manifest with Q1 (two columns) and Q2 (three
// columns) plus their PCA embed files.
func writeDataDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	manifest := `{"questions":[
	  {"base":"Q1","columns":["Q1-1","Q1-2"],"options_text":"1:yes|0:no","embed_file":"embed_pca_Q1.json"},
	  {"base":"Q2","columns":["Q2-1","Q2-2","Q2-3"],"question_full":"Spending priorities"}
	],"q25_labels":{"Q2-1":"Schools"}}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "question_manifest.json"), []byte(manifest), 0o600))

	for _, q := range []struct {
		base string
		cols int
	}{{"Q1", 2}, {"Q2", 3}} {
		var rows []string
		for i := 0; i < 30; i++ {
			party := "A"
			if i%3 == 0 {
				party = "B"
			}
			fields := []string{fmt.Sprintf(`"id":%d`, i), fmt.Sprintf(`"party":%q`, party), fmt.Sprintf(`"name":"n%d"`, i)}
			for j := 1; j <= q.cols; j++ {
				fields = append(fields, fmt.Sprintf(`"%s-%d":"%d"`, q.base, j, (i*j+i/4)%5))
			}
			fields = append(fields, fmt.Sprintf(`"x":%d,"y":%d,"z":0.5`, i, i%4))
			rows = append(rows, "{"+strings.Join(fields, ",")+"}")
		}
		body := `{"meta":{"method":"PCA_fallback","base":"` + q.base + `","noise_sd":0.05},"data":[` + strings.Join(rows, ",") + `]}`
		require.NoError(t, os.WriteFile(filepath.Join(dir, "embed_pca_"+q.base+".json"), []byte(body), 0o600))
	}

	return dir
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("SURVEYSPACE_CONFIG", "")
	var out, errOut bytes.Buffer
	root := newRootCmd(&out, &errOut)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), err
}

func TestEmbedCommand(t *testing.T) {
	dir := writeDataDir(t)
	outFile := filepath.Join(t.TempDir(), "q2.json")

	_, err := run(t, "embed", "--data-dir", dir, "--question", "Q2", "--out", outFile, "--log-level", "warn")
	require.NoError(t, err)

	raw, err := os.ReadFile(outFile)
	require.NoError(t, err)
	var sc struct {
		Base   string
		Method string
		Points []struct {
			ID      string `json:"id"`
			Name    string `json:"name"`
			Visible bool   `json:"visible"`
		}
		Groups map[string]json.RawMessage
	}
	require.NoError(t, json.Unmarshal(raw, &sc))
	assert.Equal(t, "Q2", sc.Base)
	assert.Equal(t, "PCA(JS)", sc.Method)
	assert.Len(t, sc.Points, 30)
	assert.Equal(t, "n0", sc.Points[0].Name)
	assert.Len(t, sc.Groups, 2)
}

func TestEmbedCommand_FilterAndGroup(t *testing.T) {
	dir := writeDataDir(t)

	out, err := run(t, "embed", "--data-dir", dir, "--question", "Q1", "--group", "B", "--filter", "Q1-1=0")
	require.NoError(t, err)
	assert.Contains(t, out, `"method": "PCA2(JS)"`)
	assert.Contains(t, out, `"B"`)

	_, err = run(t, "embed", "--data-dir", dir, "--question", "Q1", "--filter", "novalue")
	assert.Error(t, err)

	_, err = run(t, "embed", "--data-dir", dir, "--question", "Q1", "--mode", "tsne")
	assert.Error(t, err)

	_, err = run(t, "embed", "--data-dir", dir)
	assert.Error(t, err, "--question is required")
}

func TestPrecomputeCommand(t *testing.T) {
	dir := writeDataDir(t)
	outDir := filepath.Join(t.TempDir(), "scenes")
	metrics := filepath.Join(t.TempDir(), "metrics.prom")

	_, err := run(t, "precompute", "--data-dir", dir, "--out", outDir, "--workers", "2", "--metrics-out", metrics)
	require.NoError(t, err)

	for _, base := range []string{"Q1", "Q2"} {
		_, err = os.Stat(filepath.Join(outDir, "scene_"+base+".json"))
		assert.NoError(t, err, base)
	}
	prom, err := os.ReadFile(metrics)
	require.NoError(t, err)
	assert.Contains(t, string(prom), "surveyspace_compute_seconds")
	assert.Contains(t, string(prom), "surveyspace_cache_misses_total")

	_, err = run(t, "precompute", "--data-dir", dir, "--out", outDir, "Q9")
	assert.Error(t, err)
}

func TestInspectCommand(t *testing.T) {
	dir := writeDataDir(t)

	out, err := run(t, "inspect", "--data-dir", dir)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "BASE"))
	assert.Contains(t, lines[1], "PCA2(JS)")
	assert.Contains(t, lines[2], "PCA(JS)")

	out, err = run(t, "invalidate", "--data-dir", dir, "Q1")
	require.NoError(t, err)
	assert.Equal(t, "Q1\t0\n", out)
}

func TestInspectCommand_Labels(t *testing.T) {
	dir := writeDataDir(t)

	out, err := run(t, "inspect", "--data-dir", dir, "--labels", "Q1", "Q2")
	require.NoError(t, err)
	assert.Contains(t, out, "Spending priorities")
	assert.Regexp(t, `(?m)^  Q2-1 +Schools$`, out)
	assert.Regexp(t, `(?m)^  Q2-2 +Q2-2$`, out)
	assert.Regexp(t, `(?m)^  options +0=no, 1=yes$`, out)
}

// writeCSV stores the answers of Q1 and Q2 as one respondent table.
func writeCSV(t *testing.T, dir string) {
	t.Helper()
	rows := []string{"id,name,party,Q1-1,Q1-2,Q2-1,Q2-2,Q2-3"}
	for i := 0; i < 24; i++ {
		party := "A"
		if i%2 == 0 {
			party = "B"
		}
		rows = append(rows, fmt.Sprintf("%d,n%d,%s,%d,%d,%d,%d,-", i, i, party, i%2, (i/2)%2, i%5, (i*3)%5))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "survey.csv"), []byte(strings.Join(rows, "\n")+"\n"), 0o600))
}

func TestEmbedCommand_CSV(t *testing.T) {
	dir := writeDataDir(t)
	writeCSV(t, dir)

	out, err := run(t, "embed", "--data-dir", dir, "--csv", "survey.csv", "--question", "Q2", "--log-level", "warn")
	require.NoError(t, err)
	var sc struct {
		Method string
		Meta   struct {
			Columns      int    `json:"columns"`
			SourceMethod string `json:"source_method"`
		}
		Points []struct {
			Name string `json:"name"`
		}
	}
	require.NoError(t, json.Unmarshal([]byte(out), &sc))
	assert.Equal(t, "PCA(JS)", sc.Method, "Q2-3 is all placeholders but still counts")
	assert.Equal(t, 3, sc.Meta.Columns)
	assert.Equal(t, "CSV", sc.Meta.SourceMethod)
	require.Len(t, sc.Points, 24)
	assert.Equal(t, "n0", sc.Points[0].Name)

	_, err = run(t, "embed", "--data-dir", dir, "--csv", "survey.csv", "--question", "Q2", "--mode", "pre_umap")
	assert.Error(t, err, "a respondent table is never a UMAP file")

	_, err = run(t, "embed", "--data-dir", dir, "--csv", "missing.csv", "--question", "Q2")
	assert.Error(t, err)
}

func TestConfigFile(t *testing.T) {
	dir := writeDataDir(t)
	cfgPath := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("embedding: {jitter: false}\ncache: {backend: none}\nlog: {console: false, level: error}\n"), 0o600))

	out, err := run(t, "embed", "--config", cfgPath, "--data-dir", dir, "--question", "Q2")
	require.NoError(t, err)
	assert.Contains(t, out, `"jitter_sd": 0`)

	_, err = run(t, "embed", "--config", filepath.Join(dir, "missing.yaml"), "--data-dir", dir, "--question", "Q2")
	assert.Error(t, err)
}
