package arxiv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArticleID_URLs(t *testing.T) {
	id, err := ParseArticleID("arXiv:0706.0001v1")
	require.NoError(t, err)

	assert.Equal(t, "https://arxiv.org/abs/0706.0001v1", id.AbsURL().String())
	assert.Equal(t, "https://arxiv.org/pdf/0706.0001v1.pdf", id.PDFURL().String())
	assert.Equal(t, "https://arxiv.org/e-print/0706.0001v1", id.SourceURL().String())

	// Without a version the links address the latest revision.
	latest, err := ParseArticleID("arXiv:2010.14462")
	require.NoError(t, err)
	assert.Equal(t, "https://arxiv.org/abs/2010.14462", latest.AbsURL().String())
}

func TestOldArticleID_URLs(t *testing.T) {
	id, err := ParseOldArticleID("arXiv:cond-mat/0001448v1")
	require.NoError(t, err)

	assert.Equal(t, "https://arxiv.org/abs/cond-mat/0001448v1", id.AbsURL().String())
	assert.Equal(t, "https://arxiv.org/pdf/cond-mat/0001448v1.pdf", id.PDFURL().String())
	assert.Equal(t, "https://arxiv.org/e-print/cond-mat/0001448v1", id.SourceURL().String())
}

func TestArchive_URL(t *testing.T) {
	u := ArchiveAstroPh.URL()
	assert.Equal(t, "https", u.Scheme)
	assert.Equal(t, "arxiv.org", u.Host)
	assert.Equal(t, "/archive/astro-ph", u.Path)
	assert.Equal(t, "https://arxiv.org/archive/astro-ph", u.String())
}
