package models

// --- Request Structs ---

// AskRequest defines the expected body for the ask endpoint.
type AskRequest struct {
	Question string `json:"question"`
}

// --- Response Structs ---

// AskResponse defines the body returned for a successfully answered question.
type AskResponse struct {
	Answer string `json:"answer"`
}

// StatsResponse defines the corpus statistics returned by the stats endpoint.
type StatsResponse struct {
	TotalMessages int            `json:"total_messages"`
	UniqueUsers   int            `json:"unique_users"`
	Users         map[string]int `json:"users"`
}

// ServiceInfoResponse defines the service identity returned at the root path.
type ServiceInfoResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

// ErrorResponse defines the standard structure for API errors.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessagesPage is one page of the upstream messages endpoint:
// the items at the current cursor plus the server-reported total.
type MessagesPage struct {
	Items []Message `json:"items"`
	Total int       `json:"total"`
}
