// Package analysis computes descriptive statistics and data-quality anomaly
// flags over a message corpus. It backs the analyze CLI; nothing here touches
// the serving path.
package analysis

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/karthikyeluripati/aurora-chatbot/internal/models"
)

var (
	locationPattern = regexp.MustCompile(`\b(paris|london|tokyo|milan|monaco|new york|santorini|rome|bangkok|dubai|maldives|cannes|venice|vienna|sydney|madrid)\b`)
	phonePattern    = regexp.MustCompile(`\b\d{3}[-.]?\d{3}[-.]?\d{4}\b`)
	emailPattern    = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	servicePatterns = map[string]*regexp.Regexp{
		"reservations": regexp.MustCompile(`\breservation\b`),
		"book/booking": regexp.MustCompile(`\bbook\w*\b`),
		"flights":      regexp.MustCompile(`\bflight\w*\b`),
		"hotels":       regexp.MustCompile(`\bhotel\w*\b`),
		"cars":         regexp.MustCompile(`\bcar\w*\b`),
		"tickets":      regexp.MustCompile(`\bticket\w*\b`),
	}
)

const (
	veryShortLimit = 10
	veryLongLimit  = 500
	prefsPerUser   = 3
)

// Report is the result of one analysis run over a corpus.
type Report struct {
	RunID         string
	GeneratedAt   time.Time
	TotalMessages int
	ReportedTotal int

	UserCounts  map[string]int
	UniqueUsers int

	EarliestTimestamp time.Time
	LatestTimestamp   time.Time
	UnparsableStamps  int

	// FutureTimestamps counts messages dated after the analysis time; the
	// corpus is known to contain them and they are surfaced, not rejected.
	FutureTimestamps int
	LatestFuture     time.Time

	AvgMessageLength float64
	MinMessageLength int
	MaxMessageLength int

	LocationCounts map[string]int
	ServiceCounts  map[string]int

	DuplicateTexts map[string]int
	// InconsistentUserIDs maps user names carrying more than one distinct
	// user_id to the number of distinct ids seen. A data-quality signal,
	// never corrected.
	InconsistentUserIDs map[string]int

	EmptyMessages     int
	VeryShortMessages int
	VeryLongMessages  int

	PhoneNumbersFound int
	EmailsFound       int

	// Preferences holds up to three preference-stating messages per user.
	Preferences map[string][]string
}

// Analyze runs the full pass over the corpus. reportedTotal is the total the
// source claimed; a mismatch with the actual count is itself worth surfacing.
// now anchors the future-timestamp check.
func Analyze(corpus models.Corpus, reportedTotal int, now time.Time) *Report {
	r := &Report{
		RunID:               uuid.NewString(),
		GeneratedAt:         now,
		TotalMessages:       len(corpus),
		ReportedTotal:       reportedTotal,
		UserCounts:          make(map[string]int),
		LocationCounts:      make(map[string]int),
		ServiceCounts:       make(map[string]int),
		DuplicateTexts:      make(map[string]int),
		InconsistentUserIDs: make(map[string]int),
		Preferences:         make(map[string][]string),
	}

	textCounts := make(map[string]int)
	userIDs := make(map[string]map[string]struct{})
	totalLength := 0

	for i, msg := range corpus {
		r.UserCounts[msg.UserName]++
		textCounts[msg.Text]++

		if userIDs[msg.UserName] == nil {
			userIDs[msg.UserName] = make(map[string]struct{})
		}
		userIDs[msg.UserName][msg.UserID] = struct{}{}

		length := len(msg.Text)
		totalLength += length
		if i == 0 || length < r.MinMessageLength {
			r.MinMessageLength = length
		}
		if length > r.MaxMessageLength {
			r.MaxMessageLength = length
		}
		if strings.TrimSpace(msg.Text) == "" {
			r.EmptyMessages++
		}
		if length < veryShortLimit {
			r.VeryShortMessages++
		}
		if length > veryLongLimit {
			r.VeryLongMessages++
		}

		textLower := strings.ToLower(msg.Text)
		for _, loc := range locationPattern.FindAllString(textLower, -1) {
			r.LocationCounts[loc]++
		}
		for name, pattern := range servicePatterns {
			r.ServiceCounts[name] += len(pattern.FindAllString(textLower, -1))
		}
		r.PhoneNumbersFound += len(phonePattern.FindAllString(msg.Text, -1))
		r.EmailsFound += len(emailPattern.FindAllString(msg.Text, -1))

		if strings.Contains(textLower, "prefer") {
			if len(r.Preferences[msg.UserName]) < prefsPerUser {
				r.Preferences[msg.UserName] = append(r.Preferences[msg.UserName], msg.Text)
			}
		}

		ts, err := parseTimestamp(msg.Timestamp)
		if err != nil {
			r.UnparsableStamps++
		} else {
			if r.EarliestTimestamp.IsZero() || ts.Before(r.EarliestTimestamp) {
				r.EarliestTimestamp = ts
			}
			if ts.After(r.LatestTimestamp) {
				r.LatestTimestamp = ts
			}
			if ts.After(now) {
				r.FutureTimestamps++
				if ts.After(r.LatestFuture) {
					r.LatestFuture = ts
				}
			}
		}
	}

	r.UniqueUsers = len(r.UserCounts)
	if len(corpus) > 0 {
		r.AvgMessageLength = float64(totalLength) / float64(len(corpus))
	}
	for text, count := range textCounts {
		if count > 1 {
			r.DuplicateTexts[text] = count
		}
	}
	for userName, ids := range userIDs {
		if len(ids) > 1 {
			r.InconsistentUserIDs[userName] = len(ids)
		}
	}

	return r
}

// parseTimestamp accepts ISO-8601 with or without a timezone offset.
func parseTimestamp(s string) (time.Time, error) {
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return ts, nil
	}
	return time.Parse("2006-01-02T15:04:05", s)
}

// SortedUsers returns the user names in ascending order, for deterministic
// report output.
func (r *Report) SortedUsers() []string {
	users := make([]string, 0, len(r.UserCounts))
	for user := range r.UserCounts {
		users = append(users, user)
	}
	sort.Strings(users)
	return users
}

// TopLocations returns up to n (location, count) pairs, most mentioned first.
func (r *Report) TopLocations(n int) []LocationCount {
	pairs := make([]LocationCount, 0, len(r.LocationCounts))
	for loc, count := range r.LocationCounts {
		pairs = append(pairs, LocationCount{Location: loc, Count: count})
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Count != pairs[j].Count {
			return pairs[i].Count > pairs[j].Count
		}
		return pairs[i].Location < pairs[j].Location
	})
	if len(pairs) > n {
		pairs = pairs[:n]
	}
	return pairs
}

// LocationCount pairs a mentioned location with its mention count.
type LocationCount struct {
	Location string
	Count    int
}
