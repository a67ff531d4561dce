package qa

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karthikyeluripati/aurora-chatbot/internal/models"
)

func messageLines(block string) []string {
	var lines []string
	for _, line := range strings.Split(block, "\n") {
		if strings.HasPrefix(line, "[") {
			lines = append(lines, line)
		}
	}
	return lines
}

func TestContextBuilder(t *testing.T) {
	b := NewContextBuilder()

	t.Run("small corpus is emitted in full, grouped and sorted by user", func(t *testing.T) {
		corpus := models.Corpus{
			{UserName: "Vikram Desai", Text: "v1", Timestamp: "2024-03-01T09:00:00+00:00"},
			{UserName: "Amira Haddad", Text: "a1", Timestamp: "2024-03-02T09:00:00+00:00"},
			{UserName: "Layla Hassan", Text: "l1", Timestamp: "2024-03-03T09:00:00+00:00"},
			{UserName: "Amira Haddad", Text: "a2", Timestamp: "2024-03-04T09:00:00+00:00"},
			{UserName: "Vikram Desai", Text: "v2", Timestamp: "2024-03-05T09:00:00+00:00"},
			{UserName: "Layla Hassan", Text: "l2", Timestamp: "2024-03-06T09:00:00+00:00"},
		}

		block := b.Build(corpus)

		assert.Len(t, messageLines(block), 6)

		amira := strings.Index(block, "=== Amira Haddad ===")
		layla := strings.Index(block, "=== Layla Hassan ===")
		vikram := strings.Index(block, "=== Vikram Desai ===")
		require.True(t, amira >= 0 && layla >= 0 && vikram >= 0)
		assert.Less(t, amira, layla)
		assert.Less(t, layla, vikram)

		// Within a group, arrival order survives.
		assert.Less(t, strings.Index(block, "[2024-03-02] a1"), strings.Index(block, "[2024-03-04] a2"))
	})

	t.Run("large corpus caps each user's contribution", func(t *testing.T) {
		var corpus models.Corpus
		for i := 0; i < 250; i++ {
			corpus = append(corpus, models.Message{
				UserName:  "Lorenzo Bianchi",
				Text:      fmt.Sprintf("m%d", i),
				Timestamp: "2024-04-01T08:00:00+00:00",
			})
		}

		block := b.Build(corpus)

		assert.Len(t, messageLines(block), 50)
		// The header never disappears with the truncated lines.
		assert.Contains(t, block, "=== Lorenzo Bianchi ===")
		// The cap keeps the head of the group.
		assert.Contains(t, block, "m0")
		assert.NotContains(t, block, "m50")
	})

	t.Run("never emits more than MaxLines, stopping mid-group", func(t *testing.T) {
		small := &ContextBuilder{MaxLines: 5, FullCorpusThreshold: 200, PerUserCap: 50}

		var corpus models.Corpus
		for _, user := range []string{"Amina Van Der Berg", "Thiago Costa"} {
			for i := 0; i < 4; i++ {
				corpus = append(corpus, models.Message{
					UserName:  user,
					Text:      fmt.Sprintf("%s-%d", user[:5], i),
					Timestamp: "2024-04-01T08:00:00+00:00",
				})
			}
		}

		block := small.Build(corpus)

		assert.Len(t, messageLines(block), 5)
		// The second group got cut after one line; truncation is silent.
		assert.Contains(t, block, "=== Thiago Costa ===")
		assert.Contains(t, block, "Thiag-0")
		assert.NotContains(t, block, "Thiag-1")
	})

	t.Run("renders the date prefix of the timestamp", func(t *testing.T) {
		block := b.Build(models.Corpus{
			{UserName: "Sophia Laurent", Text: "hello", Timestamp: "2024-11-07T16:30:00+01:00"},
		})
		assert.Contains(t, block, "[2024-11-07] hello")
	})

	t.Run("short timestamps pass through unsliced", func(t *testing.T) {
		block := b.Build(models.Corpus{
			{UserName: "Sophia Laurent", Text: "hello", Timestamp: "2024-11"},
		})
		assert.Contains(t, block, "[2024-11] hello")
	})

	t.Run("empty corpus renders an empty block", func(t *testing.T) {
		assert.Equal(t, "", b.Build(nil))
	})
}
