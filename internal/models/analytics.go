package models

import "github.com/google/uuid"

// UsernameAvailability is the result of a username availability check
type UsernameAvailability struct {
	Available   bool     `json:"available"`   // True when no user currently holds the candidate
	Suggestions []string `json:"suggestions"` // Free alternatives with ascending numeric suffixes, possibly empty
}

// ProfileAnalytics holds rolling-window visit counts for a profile.
// Every window ends at "now", so the counts are monotonically
// non-decreasing from the 1-hour window up to the total.
type ProfileAnalytics struct {
	TotalVisits       int64 `json:"totalVisits"`       // All profile visits ever recorded
	VisitsLast1Hour   int64 `json:"visitsLast1Hour"`   // Visits within the trailing hour
	VisitsLast24Hours int64 `json:"visitsLast24Hours"` // Visits within the trailing 24 hours
	VisitsLast7Days   int64 `json:"visitsLast7Days"`   // Visits within the trailing 7 days
	VisitsLast30Days  int64 `json:"visitsLast30Days"`  // Visits within the trailing 30 days
	UniqueVisitors    int64 `json:"uniqueVisitors"`    // Distinct visitor fingerprints over all time
}

// MostClickedLink identifies the user's single most clicked link
type MostClickedLink struct {
	ID         uuid.UUID `json:"id"`         // Link identifier
	Title      string    `json:"title"`      // Link title
	ClickCount int64     `json:"clickCount"` // Denormalized click count
}

// AnalyticsSummary is the dashboard summary for one user
type AnalyticsSummary struct {
	ProfileAnalytics ProfileAnalytics `json:"profileAnalytics"` // Visit windows and unique visitors
	TotalLinkClicks  int64            `json:"totalLinkClicks"`  // Sum of click counters across the user's links
	TotalLinks       int64            `json:"totalLinks"`       // Number of links the user has
	MostClickedLink  *MostClickedLink `json:"mostClickedLink"`  // Nil when the user has no links
}

// TopLink is one entry of the links-by-clicks ranking
type TopLink struct {
	ID         uuid.UUID `json:"id"`         // Link identifier
	Title      string    `json:"title"`      // Link title
	URL        string    `json:"url"`        // Target URL
	ClickCount int64     `json:"clickCount"` // Denormalized click count
}

// DailyVisits is one day-granularity bucket of profile visits
type DailyVisits struct {
	Date   string `json:"date"`   // UTC day in YYYY-MM-DD format
	Visits int64  `json:"visits"` // Visit count for that day, zero when none
}
