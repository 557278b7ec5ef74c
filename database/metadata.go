package database

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/botthef/personal-site-backend/errs"
)

// MetadataAPI is the slice of the DynamoDB client this package uses. Tests
// substitute a fake without needing AWS credentials.
type MetadataAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

// Metadata wraps the content table. It is authoritative for entity existence
// and relationships; large text bodies live in the blob store.
type Metadata struct {
	client MetadataAPI
	table  string
	index  string
	logger zerolog.Logger
}

func NewMetadata(client MetadataAPI, table, index string) *Metadata {
	logger := log.With().Str("serviceName", "metadataStore").Logger()

	return &Metadata{
		client: client,
		table:  table,
		index:  index,
		logger: logger,
	}
}

// Get performs a point lookup by composite key. A missing item yields
// (nil, nil), not an error.
func (m *Metadata) Get(ctx context.Context, pk, sk string) (*Record, error) {
	out, err := m.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(m.table),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: pk},
			"SK": &types.AttributeValueMemberS{Value: sk},
		},
	})
	if err != nil {
		return nil, errs.NewStorageError("get", pk, err)
	}

	if out.Item == nil {
		return nil, nil
	}

	var rec Record
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return nil, errs.NewStorageError("decode", pk, err)
	}
	return &rec, nil
}

// ScanPrefix returns every record whose partition key begins with prefix.
// The collections involved are small, so a single scan round trip suffices.
func (m *Metadata) ScanPrefix(ctx context.Context, prefix string) ([]Record, error) {
	out, err := m.client.Scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(m.table),
		FilterExpression: aws.String("begins_with(PK, :pk)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: prefix},
		},
	})
	if err != nil {
		return nil, errs.NewStorageError("scan", prefix, err)
	}

	return unmarshalRecords(out.Items)
}

// QueryPartition returns all records sharing a partition key: the entity's
// metadata row plus zero or more problem rows.
func (m *Metadata) QueryPartition(ctx context.Context, pk string) ([]Record, error) {
	out, err := m.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(m.table),
		KeyConditionExpression: aws.String("PK = :pk"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: pk},
		},
	})
	if err != nil {
		return nil, errs.NewStorageError("query", pk, err)
	}

	return unmarshalRecords(out.Items)
}

// QueryCollection returns every record of a logical collection in one round
// trip via the entity-type index, metadata and problem rows interleaved.
func (m *Metadata) QueryCollection(ctx context.Context, entityType string) ([]Record, error) {
	out, err := m.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(m.table),
		IndexName:              aws.String(m.index),
		KeyConditionExpression: aws.String("entity_type = :t"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":t": &types.AttributeValueMemberS{Value: entityType},
		},
	})
	if err != nil {
		return nil, errs.NewStorageError("query", entityType, err)
	}

	return unmarshalRecords(out.Items)
}

func unmarshalRecords(items []map[string]types.AttributeValue) ([]Record, error) {
	records := make([]Record, 0, len(items))
	if err := attributevalue.UnmarshalListOfMaps(items, &records); err != nil {
		return nil, errs.NewStorageError("decode", "records", err)
	}
	return records, nil
}
