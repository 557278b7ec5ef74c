package models

// LeetCodeStats holds aggregate solved-problem counters.
type LeetCodeStats struct {
	Easy     int    `json:"easy"`
	Medium   int    `json:"medium"`
	Hard     int    `json:"hard"`
	Total    int    `json:"total"`
	SyncedAt string `json:"syncedAt,omitempty"`
}
