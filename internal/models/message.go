package models

// Message is one chat utterance as delivered by the member-messages API.
// Records are immutable once fetched; the service never writes them back.
type Message struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	UserName  string `json:"user_name"`
	Text      string `json:"message"`
	Timestamp string `json:"timestamp"` // ISO-8601, may carry a timezone offset
}

// Corpus is the full ordered collection of fetched messages.
// Order is server delivery order, which is not guaranteed chronological.
type Corpus []Message
