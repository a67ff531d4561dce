package qa

import (
	"strings"

	"github.com/karthikyeluripati/aurora-chatbot/internal/models"
)

// Filter narrows the corpus to messages from the named users. A message is
// kept when any queried name, lowercased, is a substring of the message's
// stored user name, lowercased; input order is preserved.
//
// With no names the corpus passes through unchanged and matched is true: the
// "no user mentioned" case means the full corpus is the context. With names
// but no surviving messages, matched is false so the caller can fall back to
// the full corpus and note the miss.
func Filter(corpus models.Corpus, names []string) (filtered models.Corpus, matched bool) {
	if len(names) == 0 {
		return corpus, true
	}

	lowered := make([]string, len(names))
	for i, name := range names {
		lowered[i] = strings.ToLower(name)
	}

	for _, msg := range corpus {
		userLower := strings.ToLower(msg.UserName)
		for _, name := range lowered {
			if strings.Contains(userLower, name) {
				filtered = append(filtered, msg)
				break
			}
		}
	}

	return filtered, len(filtered) > 0
}
