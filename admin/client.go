// Package admin implements the client side of the external content API — the
// separate backend that owns all writes. Reads go straight to storage; every
// mutation is a JSON HTTP call authorized by a short-lived bearer token
// derived from the admin's email.
package admin

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/botthef/personal-site-backend/config"
	"github.com/botthef/personal-site-backend/errs"
)

const tokenTTL = time.Hour

// InvalidateFunc receives the presentation routes affected by a successful
// mutation so cached renders can be dropped.
type InvalidateFunc func(routes ...string)

type Client struct {
	baseURL    string
	secret     []byte
	email      string
	httpClient *http.Client
	invalidate InvalidateFunc
	logger     zerolog.Logger
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.httpClient = h
	}
}

func WithInvalidate(fn InvalidateFunc) Option {
	return func(c *Client) {
		c.invalidate = fn
	}
}

func NewClient(cfg config.Config, opts ...Option) *Client {
	logger := log.With().Str("serviceName", "adminClient").Logger()

	client := &Client{
		baseURL:    cfg.ContentAPIURL,
		secret:     []byte(cfg.AuthSecret),
		email:      cfg.AdminEmail,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger,
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// PostInput mirrors the blog payload the content API accepts.
type PostInput struct {
	Slug    string   `json:"slug"`
	Title   string   `json:"title"`
	Date    string   `json:"date"`
	Excerpt string   `json:"excerpt"`
	Tags    []string `json:"tags"`
	Content string   `json:"content"`
}

// PostUpdate carries partial post fields; nil fields stay untouched.
type PostUpdate struct {
	Title   *string   `json:"title,omitempty"`
	Date    *string   `json:"date,omitempty"`
	Excerpt *string   `json:"excerpt,omitempty"`
	Tags    *[]string `json:"tags,omitempty"`
	Content *string   `json:"content,omitempty"`
}

type ProblemInput struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	LeetcodeURL string   `json:"leetcodeUrl"`
	Difficulty  string   `json:"difficulty"`
	Status      string   `json:"status"`
	Pseudocode  string   `json:"pseudocode"`
	Tags        []string `json:"tags,omitempty"`
}

type ModuleInput struct {
	Slug        string         `json:"slug"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Content     string         `json:"content"`
	Order       int            `json:"order"`
	Problems    []ProblemInput `json:"problems"`
}

// ModuleUpdate supports partial problem updates: UpsertProblems replaces or
// inserts by id, DeleteProblemIDs removes.
type ModuleUpdate struct {
	Title            *string        `json:"title,omitempty"`
	Description      *string        `json:"description,omitempty"`
	Content          *string        `json:"content,omitempty"`
	Order            *int           `json:"order,omitempty"`
	UpsertProblems   []ProblemInput `json:"upsert_problems,omitempty"`
	DeleteProblemIDs []string       `json:"delete_problem_ids,omitempty"`
}

type UploadRequest struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	EntityType  string `json:"entity_type"` // "blog" or "playbook"
	EntitySlug  string `json:"entity_slug"`
	ProblemID   string `json:"problem_id,omitempty"`
}

// UploadTarget is a presigned upload destination plus the object key the
// upload will land under.
type UploadTarget struct {
	UploadURL string `json:"upload_url"`
	Key       string `json:"key"`
}

func (c *Client) CreatePost(ctx context.Context, in PostInput) error {
	return c.do(ctx, http.MethodPost, "/api/blog", in, nil, "/blog", "/posts/"+in.Slug)
}

func (c *Client) UpdatePost(ctx context.Context, slug string, in PostUpdate) error {
	return c.do(ctx, http.MethodPut, "/api/blog/"+slug, in, nil, "/blog", "/posts/"+slug)
}

func (c *Client) DeletePost(ctx context.Context, slug string) error {
	return c.do(ctx, http.MethodDelete, "/api/blog/"+slug, nil, nil, "/blog", "/posts/"+slug)
}

func (c *Client) CreateModule(ctx context.Context, in ModuleInput) error {
	return c.do(ctx, http.MethodPost, "/api/playbook", in, nil, "/playbook", "/modules/"+in.Slug)
}

func (c *Client) UpdateModule(ctx context.Context, slug string, in ModuleUpdate) error {
	return c.do(ctx, http.MethodPut, "/api/playbook/"+slug, in, nil, "/playbook", "/modules/"+slug)
}

func (c *Client) DeleteModule(ctx context.Context, slug string) error {
	return c.do(ctx, http.MethodDelete, "/api/playbook/"+slug, nil, nil, "/playbook", "/modules/"+slug)
}

// RequestUploadURL asks the content API for a presigned upload target. The
// bytes themselves never pass through this process.
func (c *Client) RequestUploadURL(ctx context.Context, in UploadRequest) (*UploadTarget, error) {
	var target UploadTarget
	if err := c.do(ctx, http.MethodPost, "/api/upload-url", in, &target); err != nil {
		return nil, err
	}
	return &target, nil
}

// do issues one authenticated JSON request. Any non-success status surfaces
// as an error carrying the status code and the response body text; on
// success the affected routes are handed to the invalidation hook.
func (c *Client) do(ctx context.Context, method, path string, payload, out any, affected ...string) error {
	if c.baseURL == "" {
		return errs.ErrNotInitialized
	}

	token, err := c.mintToken()
	if err != nil {
		return err
	}

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		c.logger.Error().
			Str("method", method).
			Str("path", path).
			Int("status", resp.StatusCode).
			Msg("Content API request failed")
		return errs.NewRemoteAPIError(resp.StatusCode, string(raw))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return err
		}
	}

	if c.invalidate != nil && len(affected) > 0 {
		c.invalidate(affected...)
	}
	return nil
}

// mintToken creates a short-lived HS256 token with payload {email, exp},
// the shape the content API's verifier expects.
func (c *Client) mintToken() (string, error) {
	claims := jwt.MapClaims{
		"email": c.email,
		"exp":   time.Now().Add(tokenTTL).Unix(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", errs.NewTokenSigningError(err)
	}
	return signed, nil
}
