package database

import "strings"

// Sort-key markers for the single-table content schema. An entity's own
// record sits under SortMetadata; each child problem sits under
// "PROBLEM#<id>" in the same partition.
const (
	SortMetadata      = "METADATA"
	sortProblemPrefix = "PROBLEM#"
)

// Partition-key prefixes per collection.
const (
	postKeyPrefix   = "POST#"
	moduleKeyPrefix = "MODULE#"
)

// Entity-type attribute values projected into the collection index.
const (
	EntityPost   = "POST"
	EntityModule = "MODULE"
)

// PostKey returns the partition key for a blog post.
func PostKey(slug string) string {
	return postKeyPrefix + slug
}

// ModuleKey returns the shared partition key for a module and its problems.
func ModuleKey(slug string) string {
	return moduleKeyPrefix + slug
}

// ProblemSort returns the sort key for a problem record.
func ProblemSort(id string) string {
	return sortProblemPrefix + id
}

// PostPrefix returns the partition-key prefix covering the post collection.
func PostPrefix() string {
	return postKeyPrefix
}

// Record is the raw shape of a single item in the content table. Metadata
// rows and problem rows share the struct; which fields carry values depends
// on the sort key.
type Record struct {
	PK         string `dynamodbav:"PK"`
	SK         string `dynamodbav:"SK"`
	EntityType string `dynamodbav:"entity_type,omitempty"`

	// Metadata-row fields
	Title       string   `dynamodbav:"title,omitempty"`
	Date        string   `dynamodbav:"date,omitempty"`
	Excerpt     string   `dynamodbav:"excerpt,omitempty"`
	Tags        []string `dynamodbav:"tags,omitempty"`
	Description string   `dynamodbav:"description,omitempty"`
	Content     string   `dynamodbav:"content,omitempty"`
	S3Key       string   `dynamodbav:"s3_key,omitempty"`

	// Problem-row fields
	Link       string `dynamodbav:"link,omitempty"`
	Difficulty string `dynamodbav:"difficulty,omitempty"`
	Status     string `dynamodbav:"status,omitempty"`
	LastSolved string `dynamodbav:"last_solved,omitempty"`
	NextReview string `dynamodbav:"next_review,omitempty"`
	Pseudocode string `dynamodbav:"pseudocode,omitempty"`
}

// IsMetadata reports whether the record is an entity's own metadata row.
func (r Record) IsMetadata() bool {
	return r.SK == SortMetadata
}

// IsProblem reports whether the record is a child problem row.
func (r Record) IsProblem() bool {
	return strings.HasPrefix(r.SK, sortProblemPrefix)
}

// ProblemID extracts the problem id from a problem row's sort key.
func (r Record) ProblemID() string {
	return strings.TrimPrefix(r.SK, sortProblemPrefix)
}

// Slug extracts the entity slug from the partition key, i.e. everything after
// the first '#'.
func (r Record) Slug() string {
	if i := strings.Index(r.PK, "#"); i >= 0 {
		return r.PK[i+1:]
	}
	return r.PK
}
