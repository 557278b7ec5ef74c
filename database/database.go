package database

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/botthef/personal-site-backend/config"
)

// Store aggregates the two storage clients behind the content service: the
// metadata table and the blob bucket. There is no cross-store transaction; a
// write that lands in one store and not the other leaves the entity partially
// updated, a known consistency gap the read path has to tolerate.
type Store struct {
	metadata *Metadata
	blobs    *Blobs
}

// New initializes a Store with DynamoDB and S3 clients built from a shared
// AWS configuration.
func New(awsCfg aws.Config, cfg config.Config) Store {
	return Store{
		metadata: NewMetadata(dynamodb.NewFromConfig(awsCfg), cfg.TableName, cfg.ModulesIndex),
		blobs:    NewBlobs(s3.NewFromConfig(awsCfg), cfg.BucketName),
	}
}

// NewWithClients wires a Store from pre-built clients. Used by tests.
func NewWithClients(metadata *Metadata, blobs *Blobs) Store {
	return Store{metadata: metadata, blobs: blobs}
}

// Accessor methods for each client

func (s Store) Metadata() *Metadata {
	return s.metadata
}

func (s Store) Blobs() *Blobs {
	return s.blobs
}
