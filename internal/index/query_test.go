package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseQueryGroupsByPrefix(t *testing.T) {
	q := ParseQuery("@mingus, @coltrane, #greatest hits, !jazz, $take five, something")

	assert.Equal(t, []string{"mingus", "coltrane"}, q.Artists)
	assert.Equal(t, []string{"greatest hits"}, q.Albums)
	assert.Equal(t, []string{"jazz"}, q.Genres)
	assert.Equal(t, []string{"take five"}, q.Titles)
	assert.Equal(t, []string{"something"}, q.Any)
	assert.False(t, q.Empty())
}

func TestParseQuerySkipsBlankTerms(t *testing.T) {
	q := ParseQuery(" , ,  ")
	assert.True(t, q.Empty())

	q = ParseQuery("")
	assert.True(t, q.Empty())
}

func TestLooksLikeSMJ7(t *testing.T) {
	assert.True(t, looksLikeSMJ7("@queen"))
	assert.True(t, looksLikeSMJ7("a, b"))
	assert.False(t, looksLikeSMJ7("title:love~2"))
}
