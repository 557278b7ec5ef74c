// Package content defines the read contract consumed by all presentation
// code, with two backends: an in-memory mock for local development and an
// AWS-backed implementation composing the metadata table with the blob
// bucket.
package content

import (
	"context"

	"github.com/botthef/personal-site-backend/models"
)

// Service is the content read contract. Not-found is modeled as a nil
// result, never an error. Implementations degrade infrastructure failures to
// empty results — callers cannot distinguish "truly empty" from "fetch
// failed", a documented trade of completeness for simplicity.
type Service interface {
	// GetDailyLogs returns all posts, fully hydrated, most recent first.
	GetDailyLogs(ctx context.Context) ([]models.Post, error)

	// GetModules returns all modules with their problems populated. Content
	// is left empty: list views never need the full body.
	GetModules(ctx context.Context) ([]models.Module, error)

	// GetModuleBySlug returns a fully hydrated module, or nil when absent.
	GetModuleBySlug(ctx context.Context, slug string) (*models.Module, error)

	// GetPostBySlug returns a fully hydrated post, or nil when absent.
	GetPostBySlug(ctx context.Context, slug string) (*models.Post, error)
}

// StatsProvider is an optional capability a backend may additionally
// implement to expose aggregate solve counters. Callers must type-assert for
// it rather than assume every backend carries stats.
type StatsProvider interface {
	GetLeetCodeStats(ctx context.Context) (*models.LeetCodeStats, error)
}
