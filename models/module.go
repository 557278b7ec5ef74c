package models

// Problem difficulty levels.
const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"
)

// Problem review statuses.
const (
	StatusNew    = "New"
	StatusDue    = "Due"
	StatusReview = "Review"
)

// Module represents a playbook study module with its practice problems.
// Problems are owned exclusively by their module and have no independent
// lifecycle.
type Module struct {
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	Problems    []Problem `json:"problems"`
}

// Problem represents a single practice problem within a module. Status
// defaults to "New" when the stored record carries none.
type Problem struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Link       string `json:"link"`
	Difficulty string `json:"difficulty"`
	Status     string `json:"status,omitempty"`
	LastSolved string `json:"lastSolved,omitempty"` // ISO date
	NextReview string `json:"nextReview,omitempty"` // ISO date
	Pseudocode string `json:"pseudocode,omitempty"`
}
