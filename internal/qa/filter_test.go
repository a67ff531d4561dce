package qa

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karthikyeluripati/aurora-chatbot/internal/models"
)

func TestFilter(t *testing.T) {
	corpus := models.Corpus{
		{ID: "1", UserName: "Layla Hassan", Text: "booking a suite"},
		{ID: "2", UserName: "Vikram Desai", Text: "car service please"},
		{ID: "3", UserName: "Layla Hassan", Text: "flight to London"},
		{ID: "4", UserName: "Amira Haddad", Text: "dinner reservation"},
	}

	t.Run("retains only messages of queried users, order preserved", func(t *testing.T) {
		got, matched := Filter(corpus, []string{"Layla"})
		require.True(t, matched)
		want := models.Corpus{corpus[0], corpus[2]}
		assert.Empty(t, cmp.Diff(want, got))
	})

	t.Run("empty name set passes the corpus through unchanged", func(t *testing.T) {
		got, matched := Filter(corpus, nil)
		assert.True(t, matched)
		assert.Empty(t, cmp.Diff(corpus, got))
	})

	t.Run("query name matches on stored-name substring, case-insensitively", func(t *testing.T) {
		got, matched := Filter(corpus, []string{"vikram"})
		require.True(t, matched)
		require.Len(t, got, 1)
		assert.Equal(t, "Vikram Desai", got[0].UserName)
	})

	t.Run("multiple names union their users", func(t *testing.T) {
		got, matched := Filter(corpus, []string{"Layla", "Amira"})
		require.True(t, matched)
		assert.Len(t, got, 3)
	})

	t.Run("a message is retained once even when several names hit it", func(t *testing.T) {
		got, _ := Filter(corpus, []string{"Layla", "Hassan"})
		assert.Len(t, got, 2)
	})

	t.Run("no matching user reports matched=false", func(t *testing.T) {
		got, matched := Filter(corpus, []string{"Thiago"})
		assert.False(t, matched)
		assert.Empty(t, got)
	})
}
