package model

import "time"

// DashboardStats is derived from the current keyword set and never stored.
type DashboardStats struct {
	LastActivity   *time.Time `json:"last_activity"`
	TotalTriggers  int        `json:"total_triggers"`
	ActiveKeywords int        `json:"active_keywords"`
	MessagesSent   int        `json:"messages_sent"`
}

// ComputeStats projects keywords into dashboard numbers. Every trigger sends one
// message, so MessagesSent mirrors TotalTriggers.
func ComputeStats(keywords []Keyword) DashboardStats {
	var stats DashboardStats
	for i := range keywords {
		k := &keywords[i]
		stats.TotalTriggers += k.TriggersCount
		if k.Enabled {
			stats.ActiveKeywords++
		}
		if stats.LastActivity == nil || k.CreatedAt.After(*stats.LastActivity) {
			created := k.CreatedAt
			stats.LastActivity = &created
		}
	}
	stats.MessagesSent = stats.TotalTriggers
	return stats
}
