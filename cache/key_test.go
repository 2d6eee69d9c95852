package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKey_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Q7|pca_js", GlobalKey("Q7", "pca_js").String())
	assert.Equal(t, "Q7|pre_umap::LDP", GroupKey("Q7", "pre_umap", "LDP").String())
	assert.Equal(t, KindGlobal, GlobalKey("Q7", "pca_js").Kind())
	assert.Equal(t, KindGroup, GroupKey("Q7", "pca_js", "LDP").Kind())
}

func TestGlobEscape(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Q1|", globEscape("Q1|"))
	assert.Equal(t, `a\*b\?\[c\]\\`, globEscape(`a*b?[c]\`))
}
