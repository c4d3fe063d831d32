package repository

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestParseID(t *testing.T) {
	id := bson.NewObjectID()
	got, err := ParseID(id.Hex())
	require.NoError(t, err)
	assert.Equal(t, id, got)

	for _, raw := range []string{"", "not-a-valid-id", "123", id.Hex() + "0", "zzzzzzzzzzzzzzzzzzzzzzzz"} {
		_, err := ParseID(raw)
		assert.ErrorIs(t, err, ErrInvalidID, raw)
	}
}

// titlePattern pulls the compiled Go regexp equivalent of the stored filter.
func titlePattern(t *testing.T, fragment string) *regexp.Regexp {
	t.Helper()
	f := titleContains(fragment)
	require.Len(t, f, 1)
	assert.Equal(t, "title", f[0].Key)
	re, ok := f[0].Value.(bson.Regex)
	require.True(t, ok)
	assert.Equal(t, "i", re.Options)
	return regexp.MustCompile("(?i)" + re.Pattern)
}

func TestTitleContainsIsCaseInsensitiveSubstring(t *testing.T) {
	for _, q := range []string{"matrix", "MAT", "e Ma", "The Matrix"} {
		assert.True(t, titlePattern(t, q).MatchString("The Matrix"), q)
	}
	assert.False(t, titlePattern(t, "matrices").MatchString("The Matrix"))
}

func TestTitleContainsTreatsMetacharactersLiterally(t *testing.T) {
	re := titlePattern(t, "(")
	assert.True(t, re.MatchString("Tenet (2020)"))
	assert.False(t, re.MatchString("Tenet"))

	re = titlePattern(t, "a+b")
	assert.True(t, re.MatchString("plan a+b"))
	assert.False(t, re.MatchString("aab"))

	assert.False(t, titlePattern(t, ".*").MatchString("Dune"))
}
