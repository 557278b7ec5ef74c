package database

import (
	"context"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/botthef/personal-site-backend/errs"
)

// MarkdownContentType is the MIME type for stored content bodies.
const MarkdownContentType = "text/markdown"

// PostBlobKey returns the blob-store key for a post's markdown body.
func PostBlobKey(slug string) string {
	return "posts/" + slug + ".mdx"
}

// ModuleBlobKey returns the blob-store key for a module's markdown body.
func ModuleBlobKey(slug string) string {
	return "modules/" + slug + ".mdx"
}

// BlobAPI is the slice of the S3 client this package uses.
type BlobAPI interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// Blobs wraps the content bucket holding large text bodies.
type Blobs struct {
	client BlobAPI
	bucket string
	logger zerolog.Logger
}

func NewBlobs(client BlobAPI, bucket string) *Blobs {
	logger := log.With().Str("serviceName", "blobStore").Logger()

	return &Blobs{
		client: client,
		bucket: bucket,
		logger: logger,
	}
}

// Text fetches the object at key and decodes it as UTF-8 text.
func (b *Blobs) Text(ctx context.Context, key string) (string, error) {
	out, err := b.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(b.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return "", errs.NewStorageError("get", key, err)
	}
	defer out.Body.Close()

	body, err := io.ReadAll(out.Body)
	if err != nil {
		return "", errs.NewStorageError("read", key, err)
	}
	return string(body), nil
}
