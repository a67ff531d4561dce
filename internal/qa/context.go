package qa

import (
	"fmt"
	"sort"
	"strings"

	"github.com/karthikyeluripati/aurora-chatbot/internal/models"
)

// ContextBuilder serializes a corpus into the bounded plain-text block that
// grounds the completion prompt.
type ContextBuilder struct {
	// MaxLines bounds the total number of message lines emitted.
	MaxLines int
	// FullCorpusThreshold is the corpus size below which every message of
	// every user is included. A corpus this small is the precision-targeted
	// result of filtering and should be shown in full; anything larger is
	// the unfiltered corpus and must be truncated per user.
	FullCorpusThreshold int
	// PerUserCap limits each user's contribution above the threshold.
	PerUserCap int
}

// NewContextBuilder returns a builder with the standard bounds.
func NewContextBuilder() *ContextBuilder {
	return &ContextBuilder{
		MaxLines:            500,
		FullCorpusThreshold: 200,
		PerUserCap:          50,
	}
}

// Build groups messages by user name, orders users lexicographically and
// renders each message as "[date] text" under a "=== user ===" header.
// Emission stops once MaxLines message lines are out, even mid-group;
// truncation is silent. The output is a prompt fragment, so nothing is
// escaped.
func (b *ContextBuilder) Build(corpus models.Corpus) string {
	grouped := make(map[string][]string)
	var order []string
	for _, msg := range corpus {
		if _, seen := grouped[msg.UserName]; !seen {
			order = append(order, msg.UserName)
		}
		grouped[msg.UserName] = append(grouped[msg.UserName], formatLine(msg))
	}
	sort.Strings(order)

	includeAll := len(corpus) < b.FullCorpusThreshold

	var parts []string
	totalLines := 0
	for _, userName := range order {
		parts = append(parts, fmt.Sprintf("\n=== %s ===", userName))

		lines := grouped[userName]
		if !includeAll && len(lines) > b.PerUserCap {
			lines = lines[:b.PerUserCap]
		}
		for _, line := range lines {
			parts = append(parts, line)
			totalLines++
			if totalLines >= b.MaxLines {
				break
			}
		}
		if totalLines >= b.MaxLines {
			break
		}
	}

	return strings.Join(parts, "\n")
}

// formatLine renders a message as "[YYYY-MM-DD] text", taking the date as the
// first ten characters of the ISO timestamp. Short timestamps pass through
// unsliced rather than being rejected; timestamp quality is the analyzer's
// concern, not the prompt's.
func formatLine(msg models.Message) string {
	date := msg.Timestamp
	if len(date) > 10 {
		date = date[:10]
	}
	return fmt.Sprintf("[%s] %s", date, msg.Text)
}
