package arxiv

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// submission mirrors how downstream services embed the parsed types in their
// own JSON documents.
type submission struct {
	ID       ArticleID  `json:"id"`
	Category CategoryID `json:"category"`
	Archive  Archive    `json:"archive"`
}

func TestJSONRoundTrip(t *testing.T) {
	id, err := ParseArticleID("arXiv:0706.0001v1")
	require.NoError(t, err)
	cat, err := ParseCategoryID("q-bio.CB")
	require.NoError(t, err)

	in := submission{ID: id, Category: cat, Archive: ArchiveQBio}

	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": "arXiv:0706.0001v1",
		"category": "q-bio.CB",
		"archive": "q-bio"
	}`, string(data))

	var out submission
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestUnmarshalText_Validates(t *testing.T) {
	var id ArticleID
	err := id.UnmarshalText([]byte("arXiv:9913.12345"))
	assert.ErrorIs(t, err, ErrInvalidMonth)

	var cat CategoryID
	err = cat.UnmarshalText([]byte("biology.CB"))
	assert.ErrorIs(t, err, ErrUnknownArchive)

	var a Archive
	err = a.UnmarshalText([]byte("Astro-Ph"))
	assert.ErrorIs(t, err, ErrUnknownArchive)

	var g Group
	err = g.UnmarshalText([]byte("finance"))
	assert.ErrorIs(t, err, ErrUnknownGroup)
}

func TestOldArticleID_TextRoundTrip(t *testing.T) {
	var id OldArticleID
	require.NoError(t, id.UnmarshalText([]byte("arXiv:math.GT/0309136")))
	assert.Equal(t, ArchiveMath, id.Archive)

	text, err := id.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "arXiv:math.GT/0309136", string(text))
}

func TestStamp_TextRoundTrip(t *testing.T) {
	var st Stamp
	require.NoError(t, st.UnmarshalText([]byte("arXiv:0706.0001v1 [q-bio.CB] 1 Jun 2007")))
	assert.Equal(t, time.Date(2007, time.June, 1, 0, 0, 0, 0, time.UTC), st.Submitted)

	text, err := st.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "arXiv:0706.0001v1 [q-bio.CB] 1 Jun 2007", string(text))

	assert.ErrorIs(t, st.UnmarshalText([]byte("arXiv:0706.0001v1")), ErrStampTooShort)
}
