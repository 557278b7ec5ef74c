package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/botthef/personal-site-backend/content"
	"github.com/botthef/personal-site-backend/errs"
	"github.com/botthef/personal-site-backend/models"
)

type contentHandler struct {
	responder Responder
	logger    zerolog.Logger
	service   content.Service
}

func newContentHandler(service content.Service) contentHandler {
	logger := log.With().Str("handlerName", "contentHandler").Logger()

	return contentHandler{
		responder: NewResponder(logger),
		logger:    logger,
		service:   service,
	}
}

// PostCollection represents multiple posts
type PostCollection struct {
	Posts []models.Post `json:"posts"`
	Total int           `json:"total,omitempty"`
}

// ModuleCollection represents multiple modules
type ModuleCollection struct {
	Modules []models.Module `json:"modules"`
	Total   int             `json:"total,omitempty"`
}

// getDailyLogs retrieves all posts, most recent first
// @Summary Get all posts
// @Description Retrieves all blog posts with hydrated markdown bodies, sorted by date descending
// @Tags Blog
// @Produce json
// @Success 200 {object} PostCollection "List of posts"
// @Router /posts [get]
func (h contentHandler) getDailyLogs() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		posts, err := h.service.GetDailyLogs(r.Context())
		if err != nil {
			// Presentation degrades to an empty list rather than failing the page
			h.logger.Error().Err(err).Msg("Failed to fetch daily logs")
			posts = []models.Post{}
		}

		h.responder.WriteJSON(w, PostCollection{Posts: posts, Total: len(posts)})
	}
}

// getPost retrieves a specific post by slug
// @Summary Get post
// @Description Retrieves a single post by slug with its full markdown body
// @Tags Blog
// @Produce json
// @Param slug path string true "Post slug"
// @Success 200 {object} models.Post "Post details"
// @Failure 404 {object} ErrorResponse "Not Found - Post not found"
// @Router /post/{slug} [get]
func (h contentHandler) getPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		if slug == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing slug"))
			return
		}

		post, err := h.service.GetPostBySlug(r.Context(), slug)
		if err != nil {
			h.logger.Error().Err(err).Str("slug", slug).Msg("Failed to fetch post")
		}

		if post == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("post not found"))
			return
		}

		h.responder.WriteJSON(w, post)
	}
}

// getModules retrieves all playbook modules with their problems
// @Summary Get all modules
// @Description Retrieves all playbook modules with problems populated; content bodies stay empty in list views
// @Tags Playbook
// @Produce json
// @Success 200 {object} ModuleCollection "List of modules"
// @Router /modules [get]
func (h contentHandler) getModules() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		modules, err := h.service.GetModules(r.Context())
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to fetch modules")
			modules = []models.Module{}
		}

		h.responder.WriteJSON(w, ModuleCollection{Modules: modules, Total: len(modules)})
	}
}

// getModule retrieves a specific module by slug
// @Summary Get module
// @Description Retrieves a single playbook module by slug, fully hydrated
// @Tags Playbook
// @Produce json
// @Param slug path string true "Module slug"
// @Success 200 {object} models.Module "Module details"
// @Failure 404 {object} ErrorResponse "Not Found - Module not found"
// @Router /module/{slug} [get]
func (h contentHandler) getModule() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		if slug == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing slug"))
			return
		}

		module, err := h.service.GetModuleBySlug(r.Context(), slug)
		if err != nil {
			h.logger.Error().Err(err).Str("slug", slug).Msg("Failed to fetch module")
		}

		if module == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("module not found"))
			return
		}

		h.responder.WriteJSON(w, module)
	}
}

// getLeetCodeStats retrieves aggregate solve counters when the backend supports them
// @Summary Get LeetCode stats
// @Description Retrieves aggregate solved-problem counters; 404 when the active backend carries none
// @Tags Playbook
// @Produce json
// @Success 200 {object} models.LeetCodeStats "Aggregate counters"
// @Failure 404 {object} ErrorResponse "Not Found - Stats not available"
// @Router /leetcode-stats [get]
func (h contentHandler) getLeetCodeStats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Stats are an optional capability; not every backend implements it
		provider, ok := h.service.(content.StatsProvider)
		if !ok {
			h.responder.WriteError(w, errs.NewNotFoundError("stats not available"))
			return
		}

		stats, err := provider.GetLeetCodeStats(r.Context())
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to fetch stats")
		}

		if stats == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("stats not available"))
			return
		}

		h.responder.WriteJSON(w, stats)
	}
}
