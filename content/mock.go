package content

import (
	"context"
	"sort"

	"github.com/botthef/personal-site-backend/models"
)

var mockPosts = []models.Post{
	{
		Slug:    "hello-world",
		Title:   "Hello World: The Redemption Begins",
		Date:    "2026-02-07",
		Excerpt: "Why I'm starting this journey and what 'botthef' means.",
		Tags:    []string{"redemption", "intro"},
		Content: "# Hello World\n\nThis is the start of my redemption arc...",
	},
	{
		Slug:    "week-one-retro",
		Title:   "Week One Retro",
		Date:    "2026-02-14",
		Excerpt: "What a week of daily grinding actually looks like.",
		Tags:    []string{"retro"},
		Content: "# Week One\n\nSeven days, seven problems, one broken keyboard.",
	},
}

var mockModules = []models.Module{
	{
		Slug:        "two-pointers",
		Title:       "Two Pointers",
		Description: "Master the art of manipulating arrays with two pointers.",
		Content:     "# Two Pointers\n\nA fundamental technique for array and string problems: maintain two indices that move toward each other or in the same direction.",
		Problems: []models.Problem{
			{
				ID:         "two-sum-ii",
				Title:      "Two Sum II",
				Link:       "https://leetcode.com/problems/two-sum-ii-input-array-is-sorted/",
				Difficulty: models.DifficultyMedium,
				Status:     models.StatusDue,
				Pseudocode: "1. Set left=0, right=n-1\n2. While left < right:\n   - sum = nums[left] + nums[right]\n   - If sum == target: return [left+1, right+1]\n   - If sum < target: left++\n   - Else: right--",
			},
			{
				ID:         "3sum",
				Title:      "3Sum",
				Link:       "https://leetcode.com/problems/3sum/",
				Difficulty: models.DifficultyMedium,
				Status:     models.StatusNew,
			},
			{
				ID:         "trapping-rain-water",
				Title:      "Trapping Rain Water",
				Link:       "https://leetcode.com/problems/trapping-rain-water/",
				Difficulty: models.DifficultyHard,
				Status:     models.StatusNew,
			},
			{
				ID:         "valid-palindrome",
				Title:      "Valid Palindrome",
				Link:       "https://leetcode.com/problems/valid-palindrome/",
				Difficulty: models.DifficultyEasy,
				Status:     models.StatusReview,
			},
		},
	},
	{
		Slug:        "sliding-window",
		Title:       "Sliding Window",
		Description: "Efficiently process subarrays and substrings with a moving window.",
		Content:     "# Sliding Window\n\nReduce nested loops to O(n) by maintaining a window that expands and contracts as it slides across the input.",
		Problems: []models.Problem{
			{
				ID:         "best-time-to-buy-and-sell-stock",
				Title:      "Best Time to Buy and Sell Stock",
				Link:       "https://leetcode.com/problems/best-time-to-buy-and-sell-stock/",
				Difficulty: models.DifficultyEasy,
				Status:     models.StatusReview,
			},
			{
				ID:         "minimum-window-substring",
				Title:      "Minimum Window Substring",
				Link:       "https://leetcode.com/problems/minimum-window-substring/",
				Difficulty: models.DifficultyHard,
				Status:     models.StatusNew,
			},
		},
	},
	{
		Slug:        "binary-search",
		Title:       "Binary Search",
		Description: "Divide and conquer sorted search spaces to achieve O(log n) lookups.",
		Content:     "# Binary Search\n\nBinary search eliminates half the search space each iteration. Know the three templates and when each applies.",
		Problems:    []models.Problem{},
	},
}

// MockService returns fixed in-process data. No I/O, no failure modes; the
// default backend so presentation work never needs live cloud credentials.
type MockService struct{}

func NewMockService() *MockService {
	return &MockService{}
}

func (s *MockService) GetDailyLogs(ctx context.Context) ([]models.Post, error) {
	posts := make([]models.Post, len(mockPosts))
	copy(posts, mockPosts)

	// Most recent first, same ordering contract as the live backend.
	sort.Slice(posts, func(i, j int) bool {
		return posts[i].Date > posts[j].Date
	})
	return posts, nil
}

func (s *MockService) GetModules(ctx context.Context) ([]models.Module, error) {
	modules := make([]models.Module, len(mockModules))
	copy(modules, mockModules)

	// Content stays empty in list views by contract.
	for i := range modules {
		modules[i].Content = ""
	}
	return modules, nil
}

func (s *MockService) GetModuleBySlug(ctx context.Context, slug string) (*models.Module, error) {
	for _, m := range mockModules {
		if m.Slug == slug {
			module := m
			return &module, nil
		}
	}
	return nil, nil
}

func (s *MockService) GetPostBySlug(ctx context.Context, slug string) (*models.Post, error) {
	for _, p := range mockPosts {
		if p.Slug == slug {
			post := p
			return &post, nil
		}
	}
	return nil, nil
}

func (s *MockService) GetLeetCodeStats(ctx context.Context) (*models.LeetCodeStats, error) {
	return &models.LeetCodeStats{Easy: 41, Medium: 85, Hard: 14, Total: 140}, nil
}
