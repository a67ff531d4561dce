package analysis

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

const rule = "--------------------------------------------------------------------------------"

// WriteText renders the report as the plain-text summary the analyze CLI
// prints.
func (r *Report) WriteText(w io.Writer) {
	fmt.Fprintln(w, strings.ReplaceAll(rule, "-", "="))
	fmt.Fprintf(w, "DATASET ANALYSIS - Aurora Chatbot (run %s)\n", r.RunID)
	fmt.Fprintln(w, strings.ReplaceAll(rule, "-", "="))

	fmt.Fprintln(w, "\n1. BASIC STATISTICS")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Total messages: %d\n", r.TotalMessages)
	fmt.Fprintf(w, "Total messages (from API): %d\n", r.ReportedTotal)
	fmt.Fprintf(w, "\nUnique users: %d\n", r.UniqueUsers)
	fmt.Fprintln(w, "\nMessages per user:")
	for _, user := range r.SortedUsers() {
		fmt.Fprintf(w, "  %s: %d\n", user, r.UserCounts[user])
	}

	fmt.Fprintln(w, "\n2. TEMPORAL ANALYSIS")
	fmt.Fprintln(w, rule)
	if !r.EarliestTimestamp.IsZero() {
		fmt.Fprintf(w, "Date range: %s to %s\n",
			r.EarliestTimestamp.Format("2006-01-02"), r.LatestTimestamp.Format("2006-01-02"))
	}
	if r.UnparsableStamps > 0 {
		fmt.Fprintf(w, "[!] %d timestamps could not be parsed\n", r.UnparsableStamps)
	}
	if r.FutureTimestamps > 0 {
		fmt.Fprintf(w, "[!] ANOMALY: %d messages have future timestamps!\n", r.FutureTimestamps)
		fmt.Fprintf(w, "    Latest future date: %s\n", r.LatestFuture.Format("2006-01-02"))
	}

	fmt.Fprintln(w, "\n3. CONTENT ANALYSIS")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Average message length: %.1f characters\n", r.AvgMessageLength)
	fmt.Fprintf(w, "Shortest message: %d chars\n", r.MinMessageLength)
	fmt.Fprintf(w, "Longest message: %d chars\n", r.MaxMessageLength)

	fmt.Fprintln(w, "\n4. COMMON THEMES")
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "\nTop locations mentioned:")
	for _, lc := range r.TopLocations(10) {
		fmt.Fprintf(w, "  %s: %d\n", titleCase(lc.Location), lc.Count)
	}
	fmt.Fprintln(w, "\nService mentions:")
	for _, sc := range sortedCounts(r.ServiceCounts) {
		fmt.Fprintf(w, "  %s: %d\n", sc.name, sc.count)
	}

	fmt.Fprintln(w, "\n5. ANOMALIES & INCONSISTENCIES")
	fmt.Fprintln(w, rule)
	if len(r.DuplicateTexts) > 0 {
		fmt.Fprintf(w, "\n[!] Found %d duplicate message texts:\n", len(r.DuplicateTexts))
		for _, dc := range topCounts(r.DuplicateTexts, 5) {
			fmt.Fprintf(w, "   %q appears %d times\n", truncate(dc.name, 60), dc.count)
		}
	} else {
		fmt.Fprintln(w, "[OK] No duplicate messages found")
	}

	fmt.Fprintln(w, "\n[!] User ID consistency check:")
	for _, user := range r.SortedUsers() {
		if n, bad := r.InconsistentUserIDs[user]; bad {
			fmt.Fprintf(w, "   %s has %d different user_ids!\n", user, n)
		} else {
			fmt.Fprintf(w, "   [OK] %s: 1 user_id\n", user)
		}
	}

	fmt.Fprintln(w, "\n[!] Data quality checks:")
	fmt.Fprintf(w, "   Empty messages: %d\n", r.EmptyMessages)
	fmt.Fprintf(w, "   Very short messages (<%d chars): %d\n", veryShortLimit, r.VeryShortMessages)
	fmt.Fprintf(w, "   Very long messages (>%d chars): %d\n", veryLongLimit, r.VeryLongMessages)

	fmt.Fprintln(w, "\n6. PERSONAL INFORMATION")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Phone numbers found: %d\n", r.PhoneNumbersFound)
	fmt.Fprintf(w, "Email addresses found: %d\n", r.EmailsFound)

	fmt.Fprintln(w, "\n7. USER PREFERENCES & PATTERNS")
	fmt.Fprintln(w, rule)
	if len(r.Preferences) > 0 {
		fmt.Fprintln(w, "Users with stated preferences:")
		users := make([]string, 0, len(r.Preferences))
		for user := range r.Preferences {
			users = append(users, user)
		}
		sort.Strings(users)
		for _, user := range users {
			fmt.Fprintf(w, "\n  %s:\n", user)
			for _, pref := range r.Preferences[user] {
				fmt.Fprintf(w, "    - %s\n", truncate(pref, 70))
			}
		}
	} else {
		fmt.Fprintln(w, "No explicit preferences found")
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.ReplaceAll(rule, "-", "="))
}

type namedCount struct {
	name  string
	count int
}

func sortedCounts(m map[string]int) []namedCount {
	return topCounts(m, len(m))
}

func topCounts(m map[string]int, n int) []namedCount {
	counts := make([]namedCount, 0, len(m))
	for name, count := range m {
		counts = append(counts, namedCount{name: name, count: count})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].count != counts[j].count {
			return counts[i].count > counts[j].count
		}
		return counts[i].name < counts[j].name
	})
	if len(counts) > n {
		counts = counts[:n]
	}
	return counts
}

// titleCase uppercases the first letter of each space-separated word. The
// location list is plain ASCII, so byte-level casing is enough.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
