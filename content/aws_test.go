package content_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/botthef/personal-site-backend/content"
	"github.com/botthef/personal-site-backend/database"
)

type dynamoAttr = types.AttributeValue

type fakeDynamo struct {
	getItem func(in *dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error)
	query   func(in *dynamodb.QueryInput) (*dynamodb.QueryOutput, error)
	scan    func(in *dynamodb.ScanInput) (*dynamodb.ScanOutput, error)
}

func (f *fakeDynamo) GetItem(ctx context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	return f.getItem(in)
}

func (f *fakeDynamo) Query(ctx context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	return f.query(in)
}

func (f *fakeDynamo) Scan(ctx context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	return f.scan(in)
}

type fakeS3 struct {
	objects map[string]string
	err     error
}

func (f *fakeS3) GetObject(ctx context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	body, ok := f.objects[*in.Key]
	if !ok {
		return nil, errors.New("NoSuchKey: the specified key does not exist")
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(body))}, nil
}

func newTestService(t *testing.T, dyn database.MetadataAPI, blob database.BlobAPI) *content.AWSService {
	t.Helper()
	store := database.NewWithClients(
		database.NewMetadata(dyn, "botthef-content", "entity_type-index"),
		database.NewBlobs(blob, "botthef-content-bucket"),
	)
	return content.NewAWSService(store)
}

func marshalRecords(t *testing.T, records ...database.Record) []map[string]dynamoAttr {
	t.Helper()
	items := make([]map[string]dynamoAttr, 0, len(records))
	for _, rec := range records {
		item, err := attributevalue.MarshalMap(rec)
		require.NoError(t, err)
		items = append(items, item)
	}
	return items
}

func postRecord(slug, title, date, s3Key, inline string) database.Record {
	return database.Record{
		PK:         database.PostKey(slug),
		SK:         database.SortMetadata,
		EntityType: database.EntityPost,
		Title:      title,
		Date:       date,
		Excerpt:    "excerpt for " + slug,
		Tags:       []string{"go"},
		S3Key:      s3Key,
		Content:    inline,
	}
}

func TestGetDailyLogsSortsByDateDescending(t *testing.T) {
	dyn := &fakeDynamo{
		scan: func(in *dynamodb.ScanInput) (*dynamodb.ScanOutput, error) {
			return &dynamodb.ScanOutput{Items: marshalRecords(t,
				postRecord("first", "First", "2024-01-01", "", "a"),
				postRecord("second", "Second", "2024-06-15", "", "b"),
				postRecord("third", "Third", "2023-12-31", "", "c"),
			)}, nil
		},
	}

	svc := newTestService(t, dyn, &fakeS3{})

	posts, err := svc.GetDailyLogs(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, "2024-06-15", posts[0].Date)
	assert.Equal(t, "2024-01-01", posts[1].Date)
	assert.Equal(t, "2023-12-31", posts[2].Date)
}

func TestGetDailyLogsHydratesBodiesFromBlobStore(t *testing.T) {
	dyn := &fakeDynamo{
		scan: func(in *dynamodb.ScanInput) (*dynamodb.ScanOutput, error) {
			return &dynamodb.ScanOutput{Items: marshalRecords(t,
				postRecord("external", "External", "2024-02-01", "posts/external.mdx", ""),
				postRecord("inline", "Inline", "2024-01-01", "", "# inline body"),
			)}, nil
		},
	}
	blob := &fakeS3{objects: map[string]string{
		"posts/external.mdx": "# external body",
	}}

	svc := newTestService(t, dyn, blob)

	posts, err := svc.GetDailyLogs(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "# external body", posts[0].Content)
	assert.Equal(t, "# inline body", posts[1].Content)
}

func TestGetDailyLogsScanFailureDegradesToEmptyList(t *testing.T) {
	dyn := &fakeDynamo{
		scan: func(in *dynamodb.ScanInput) (*dynamodb.ScanOutput, error) {
			return nil, errors.New("ProvisionedThroughputExceededException")
		},
	}

	svc := newTestService(t, dyn, &fakeS3{})

	posts, err := svc.GetDailyLogs(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, posts)
	assert.Empty(t, posts)
}

func TestGetDailyLogsBlobFailureDegradesSingleItem(t *testing.T) {
	dyn := &fakeDynamo{
		scan: func(in *dynamodb.ScanInput) (*dynamodb.ScanOutput, error) {
			return &dynamodb.ScanOutput{Items: marshalRecords(t,
				postRecord("broken", "Broken", "2024-03-01", "posts/missing.mdx", ""),
				postRecord("healthy", "Healthy", "2024-02-01", "posts/healthy.mdx", ""),
			)}, nil
		},
	}
	blob := &fakeS3{objects: map[string]string{
		"posts/healthy.mdx": "# healthy",
	}}

	svc := newTestService(t, dyn, blob)

	posts, err := svc.GetDailyLogs(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "", posts[0].Content)
	assert.Equal(t, "Broken", posts[0].Title)
	assert.Equal(t, "# healthy", posts[1].Content)
}

func TestGetPostBySlugNotFoundYieldsNil(t *testing.T) {
	dyn := &fakeDynamo{
		getItem: func(in *dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
			return &dynamodb.GetItemOutput{}, nil
		},
	}

	svc := newTestService(t, dyn, &fakeS3{})

	post, err := svc.GetPostBySlug(context.Background(), "nonexistent")
	require.NoError(t, err)
	assert.Nil(t, post)
}

func TestGetPostBySlugHydratesContent(t *testing.T) {
	dyn := &fakeDynamo{
		getItem: func(in *dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
			items := marshalRecords(t, postRecord("hello", "Hello", "2024-05-05", "posts/hello.mdx", "fallback"))
			return &dynamodb.GetItemOutput{Item: items[0]}, nil
		},
	}
	blob := &fakeS3{objects: map[string]string{
		"posts/hello.mdx": "# from the bucket",
	}}

	svc := newTestService(t, dyn, blob)

	post, err := svc.GetPostBySlug(context.Background(), "hello")
	require.NoError(t, err)
	require.NotNil(t, post)
	assert.Equal(t, "hello", post.Slug)
	assert.Equal(t, "# from the bucket", post.Content)
}

func moduleFixture(t *testing.T) []map[string]dynamoAttr {
	t.Helper()
	return marshalRecords(t,
		database.Record{
			PK: database.ModuleKey("two-pointers"), SK: database.SortMetadata,
			EntityType: database.EntityModule,
			Title:      "Two Pointers", Description: "Array manipulation",
			S3Key: "modules/two-pointers.mdx",
		},
		database.Record{
			PK: database.ModuleKey("two-pointers"), SK: database.ProblemSort("3sum"),
			EntityType: database.EntityModule,
			Title:      "3Sum", Link: "https://leetcode.com/problems/3sum/",
			Difficulty: "Medium", Status: "Due",
		},
		database.Record{
			PK: database.ModuleKey("two-pointers"), SK: database.ProblemSort("two-sum-ii"),
			EntityType: database.EntityModule,
			Title:      "Two Sum II", Link: "https://leetcode.com/problems/two-sum-ii/",
			Difficulty: "Medium",
		},
		database.Record{
			PK: database.ModuleKey("binary-search"), SK: database.SortMetadata,
			EntityType: database.EntityModule,
			Title:      "Binary Search", Description: "Sorted search spaces",
		},
		// Orphan: parent metadata row was deleted, problem row survived
		database.Record{
			PK: database.ModuleKey("graphs"), SK: database.ProblemSort("clone-graph"),
			EntityType: database.EntityModule,
			Title:      "Clone Graph", Difficulty: "Medium",
		},
	)
}

func TestGetModulesReconstructsParentChildTree(t *testing.T) {
	dyn := &fakeDynamo{
		query: func(in *dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
			require.NotNil(t, in.IndexName)
			return &dynamodb.QueryOutput{Items: moduleFixture(t)}, nil
		},
	}

	svc := newTestService(t, dyn, &fakeS3{})

	modules, err := svc.GetModules(context.Background())
	require.NoError(t, err)
	require.Len(t, modules, 2)

	twoPointers := modules[0]
	assert.Equal(t, "two-pointers", twoPointers.Slug)
	assert.Equal(t, "Two Pointers", twoPointers.Title)
	assert.Equal(t, "", twoPointers.Content, "list views must not carry bodies")
	require.Len(t, twoPointers.Problems, 2)
	assert.Equal(t, "3sum", twoPointers.Problems[0].ID)
	assert.Equal(t, "Due", twoPointers.Problems[0].Status)
	assert.Equal(t, "New", twoPointers.Problems[1].Status, "absent status defaults to New")

	binarySearch := modules[1]
	assert.Equal(t, "binary-search", binarySearch.Slug)
	assert.NotNil(t, binarySearch.Problems)
	assert.Empty(t, binarySearch.Problems, "zero problems means empty list, not nil")
}

func TestGetModulesNoCrossModuleLeakage(t *testing.T) {
	dyn := &fakeDynamo{
		query: func(in *dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
			return &dynamodb.QueryOutput{Items: moduleFixture(t)}, nil
		},
	}

	svc := newTestService(t, dyn, &fakeS3{})

	modules, err := svc.GetModules(context.Background())
	require.NoError(t, err)

	for _, m := range modules {
		for _, p := range m.Problems {
			if m.Slug == "binary-search" {
				t.Fatalf("binary-search should own no problems, got %q", p.ID)
			}
			assert.NotEqual(t, "clone-graph", p.ID, "orphan rows must be dropped, not re-parented")
		}
	}
}

func TestGetModulesQueryFailureDegradesToEmptyList(t *testing.T) {
	dyn := &fakeDynamo{
		query: func(in *dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
			return nil, errors.New("connection refused")
		},
	}

	svc := newTestService(t, dyn, &fakeS3{})

	modules, err := svc.GetModules(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, modules)
	assert.Empty(t, modules)
}

func TestListAndPointModuleLookupsAgree(t *testing.T) {
	fixture := moduleFixture(t)
	dyn := &fakeDynamo{
		query: func(in *dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
			if in.IndexName != nil {
				return &dynamodb.QueryOutput{Items: fixture}, nil
			}
			// Partition query: return only rows for the requested key
			pkAttr, ok := in.ExpressionAttributeValues[":pk"].(*types.AttributeValueMemberS)
			require.True(t, ok)
			var matched []map[string]dynamoAttr
			for i, item := range fixture {
				var rec database.Record
				require.NoError(t, attributevalue.UnmarshalMap(item, &rec))
				if rec.PK == pkAttr.Value {
					matched = append(matched, fixture[i])
				}
			}
			return &dynamodb.QueryOutput{Items: matched}, nil
		},
	}

	svc := newTestService(t, dyn, &fakeS3{})

	modules, err := svc.GetModules(context.Background())
	require.NoError(t, err)

	var listed *struct{ slug, title, description string }
	for _, m := range modules {
		if m.Slug == "two-pointers" {
			listed = &struct{ slug, title, description string }{m.Slug, m.Title, m.Description}
		}
	}
	require.NotNil(t, listed)

	pointed, err := svc.GetModuleBySlug(context.Background(), "two-pointers")
	require.NoError(t, err)
	require.NotNil(t, pointed)

	assert.Equal(t, listed.slug, pointed.Slug)
	assert.Equal(t, listed.title, pointed.Title)
	assert.Equal(t, listed.description, pointed.Description)
}

func TestGetModuleBySlugOrphanRowsOnlyYieldsNil(t *testing.T) {
	dyn := &fakeDynamo{
		query: func(in *dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
			return &dynamodb.QueryOutput{Items: marshalRecords(t,
				database.Record{
					PK: database.ModuleKey("graphs"), SK: database.ProblemSort("clone-graph"),
					EntityType: database.EntityModule,
					Title:      "Clone Graph", Difficulty: "Medium",
				},
			)}, nil
		},
	}

	svc := newTestService(t, dyn, &fakeS3{})

	module, err := svc.GetModuleBySlug(context.Background(), "graphs")
	require.NoError(t, err)
	assert.Nil(t, module)
}

func TestGetModuleBySlugBlobFailureKeepsMetadata(t *testing.T) {
	dyn := &fakeDynamo{
		query: func(in *dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
			return &dynamodb.QueryOutput{Items: marshalRecords(t,
				database.Record{
					PK: database.ModuleKey("two-pointers"), SK: database.SortMetadata,
					EntityType: database.EntityModule,
					Title:      "Two Pointers", Description: "Array manipulation",
					S3Key: "modules/two-pointers.mdx",
				},
			)}, nil
		},
	}
	blob := &fakeS3{err: errors.New("SlowDown: please reduce your request rate")}

	svc := newTestService(t, dyn, blob)

	module, err := svc.GetModuleBySlug(context.Background(), "two-pointers")
	require.NoError(t, err)
	require.NotNil(t, module, "hydration failure must not null out the module")
	assert.Equal(t, "", module.Content)
	assert.Equal(t, "Two Pointers", module.Title)
	assert.Equal(t, "Array manipulation", module.Description)
}
