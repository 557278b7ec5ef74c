package content

import (
	"context"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/botthef/personal-site-backend/database"
	"github.com/botthef/personal-site-backend/models"
)

const (
	defaultHydrateLimit   = 8
	defaultHydrateTimeout = 5 * time.Second
)

// AWSService answers the content contract against live storage: entity
// metadata from the DynamoDB content table, large markdown bodies from S3.
// Each call is a stateless read of one or two table round trips plus a
// bounded fan-out of blob fetches.
type AWSService struct {
	metadata *database.Metadata
	blobs    *database.Blobs
	logger   zerolog.Logger

	hydrateLimit   int
	hydrateTimeout time.Duration
}

func NewAWSService(store database.Store) *AWSService {
	logger := log.With().Str("serviceName", "awsContentService").Logger()

	return &AWSService{
		metadata:       store.Metadata(),
		blobs:          store.Blobs(),
		logger:         logger,
		hydrateLimit:   defaultHydrateLimit,
		hydrateTimeout: defaultHydrateTimeout,
	}
}

// GetDailyLogs scans the post collection and hydrates each body
// concurrently. A failed scan degrades to an empty list rather than a
// partial one.
func (s *AWSService) GetDailyLogs(ctx context.Context) ([]models.Post, error) {
	records, err := s.metadata.ScanPrefix(ctx, database.PostPrefix())
	if err != nil {
		s.logger.Error().Err(err).Msg("Error fetching daily logs")
		return []models.Post{}, nil
	}

	metaRecords := make([]database.Record, 0, len(records))
	for _, rec := range records {
		if rec.IsMetadata() {
			metaRecords = append(metaRecords, rec)
		}
	}

	posts := make([]models.Post, len(metaRecords))
	g, groupCtx := errgroup.WithContext(ctx)
	g.SetLimit(s.hydrateLimit)
	for i, rec := range metaRecords {
		i, rec := i, rec
		g.Go(func() error {
			posts[i] = s.mapPost(groupCtx, rec)
			return nil
		})
	}
	// Hydration tasks degrade their own failures to an empty body and never
	// return an error.
	_ = g.Wait()

	// ISO-8601 dates compare correctly as strings. Ties keep no particular
	// order; equal dates are an accepted ambiguity.
	sort.Slice(posts, func(i, j int) bool {
		return posts[i].Date > posts[j].Date
	})

	return posts, nil
}

// GetModules fetches the whole module collection in one index query and
// reconstructs the parent/child tree in memory, avoiding a query per module.
func (s *AWSService) GetModules(ctx context.Context) ([]models.Module, error) {
	records, err := s.metadata.QueryCollection(ctx, database.EntityModule)
	if err != nil {
		s.logger.Error().Err(err).Msg("Error fetching modules")
		return []models.Module{}, nil
	}

	return buildModules(records), nil
}

func (s *AWSService) GetModuleBySlug(ctx context.Context, slug string) (*models.Module, error) {
	records, err := s.metadata.QueryPartition(ctx, database.ModuleKey(slug))
	if err != nil {
		s.logger.Error().Err(err).Str("slug", slug).Msg("Error fetching module")
		return nil, nil
	}

	var meta *database.Record
	problems := []models.Problem{}
	for _, rec := range records {
		switch {
		case rec.IsMetadata():
			metaRec := rec
			meta = &metaRec
		case rec.IsProblem():
			problems = append(problems, mapProblem(rec))
		}
	}

	// Orphaned problem rows without a metadata row do not make a module.
	if meta == nil {
		return nil, nil
	}

	return &models.Module{
		Slug:        slug,
		Title:       meta.Title,
		Description: meta.Description,
		Content:     s.resolveContent(ctx, *meta),
		Problems:    problems,
	}, nil
}

func (s *AWSService) GetPostBySlug(ctx context.Context, slug string) (*models.Post, error) {
	rec, err := s.metadata.Get(ctx, database.PostKey(slug), database.SortMetadata)
	if err != nil {
		s.logger.Error().Err(err).Str("slug", slug).Msg("Error fetching post")
		return nil, nil
	}

	if rec == nil {
		return nil, nil
	}

	post := s.mapPost(ctx, *rec)
	return &post, nil
}

func (s *AWSService) mapPost(ctx context.Context, rec database.Record) models.Post {
	tags := rec.Tags
	if tags == nil {
		tags = []string{}
	}

	return models.Post{
		Slug:    rec.Slug(),
		Title:   rec.Title,
		Date:    rec.Date,
		Excerpt: rec.Excerpt,
		Tags:    tags,
		Content: s.resolveContent(ctx, rec),
	}
}

// resolveContent resolves a record's body: the referenced blob wins, then the
// inline content field, then empty. Blob failures degrade to the next step
// rather than failing the caller, so a hung or missing object costs one body,
// not the whole response.
func (s *AWSService) resolveContent(ctx context.Context, rec database.Record) string {
	if rec.S3Key != "" {
		hydrateCtx, cancel := context.WithTimeout(ctx, s.hydrateTimeout)
		defer cancel()

		body, err := s.blobs.Text(hydrateCtx, rec.S3Key)
		if err != nil {
			s.logger.Warn().Err(err).Str("key", rec.S3Key).Msg("Failed to hydrate content body")
		} else if body != "" {
			return body
		}
	}
	return rec.Content
}

// buildModules reconstructs the one-to-many module tree from a flat record
// set. Pass one creates a shell per metadata row; pass two attaches each
// problem row to its parent by the shared partition key. Problem rows whose
// parent shell is missing are orphans and are silently dropped. Problems keep
// the order the index query returned them in.
func buildModules(records []database.Record) []models.Module {
	shells := make(map[string]*models.Module)
	order := make([]string, 0, len(records))

	for _, rec := range records {
		if !rec.IsMetadata() {
			continue
		}
		slug := rec.Slug()
		shells[slug] = &models.Module{
			Slug:        slug,
			Title:       rec.Title,
			Description: rec.Description,
			Problems:    []models.Problem{},
		}
		order = append(order, slug)
	}

	for _, rec := range records {
		if !rec.IsProblem() {
			continue
		}
		parent, ok := shells[rec.Slug()]
		if !ok {
			continue
		}
		parent.Problems = append(parent.Problems, mapProblem(rec))
	}

	modules := make([]models.Module, 0, len(order))
	for _, slug := range order {
		modules = append(modules, *shells[slug])
	}
	return modules
}

func mapProblem(rec database.Record) models.Problem {
	status := rec.Status
	if status == "" {
		status = models.StatusNew
	}

	return models.Problem{
		ID:         rec.ProblemID(),
		Title:      rec.Title,
		Link:       rec.Link,
		Difficulty: rec.Difficulty,
		Status:     status,
		LastSolved: rec.LastSolved,
		NextReview: rec.NextReview,
		Pseudocode: rec.Pseudocode,
	}
}
