package services

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Archiver stores a copy of an exported workbook off-host.
type Archiver interface {
	// Archive persists the workbook bytes under the given key and
	// returns the stored location.
	Archive(ctx context.Context, key string, content []byte) (string, error)
}

// S3Archiver writes export workbooks to an S3 bucket.
type S3Archiver struct {
	client *s3.Client
	bucket string
}

// NewS3Archiver builds an archiver against the configured bucket using
// the ambient AWS credential chain.
func NewS3Archiver(ctx context.Context, region, bucket string) (*S3Archiver, error) {
	awsConfig, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return &S3Archiver{
		client: s3.NewFromConfig(awsConfig),
		bucket: bucket,
	}, nil
}

const exportContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Archive uploads the workbook to the bucket.
func (a *S3Archiver) Archive(ctx context.Context, key string, content []byte) (string, error) {
	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(content),
		ContentType: aws.String(exportContentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}
	return fmt.Sprintf("s3://%s/%s", a.bucket, key), nil
}
