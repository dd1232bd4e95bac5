package asset

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"go.uber.org/zap"
)

// S3API is the subset of the S3 client used for publishing.
type S3API interface {
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

var _ S3API = (*s3.Client)(nil)

// Location is where an asset lives in S3.
type Location struct {
	Bucket string
	Key    string
	// Skipped is true when the object already existed and was not uploaded.
	Skipped bool
}

// Publisher uploads assets to a bucket under a key prefix.
type Publisher struct {
	client S3API
	bucket string
	prefix string
}

// NewPublisher returns a Publisher for bucket. prefix may be empty.
func NewPublisher(client S3API, bucket, prefix string) *Publisher {
	return &Publisher{client: client, bucket: bucket, prefix: prefix}
}

// Location returns the target location of a without uploading it.
func (p *Publisher) Location(a Asset) Location {
	return Location{Bucket: p.bucket, Key: a.Key(p.prefix)}
}

// Publish uploads a unless an object with the same content-hash key exists.
func (p *Publisher) Publish(ctx context.Context, a Asset) (Location, error) {
	if p.bucket == "" {
		return Location{}, fmt.Errorf("asset bucket is not set")
	}

	loc := p.Location(a)
	log := zap.L().With(zap.String("bucket", loc.Bucket), zap.String("key", loc.Key))

	exists, err := p.exists(ctx, loc)
	if err != nil {
		return Location{}, err
	}
	if exists {
		log.Debug("asset already published")
		loc.Skipped = true
		return loc, nil
	}

	f, err := os.Open(a.Path)
	if err != nil {
		return Location{}, fmt.Errorf("opening asset: %w", err)
	}
	defer f.Close()

	_, err = p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(loc.Bucket),
		Key:         aws.String(loc.Key),
		Body:        f,
		ContentType: aws.String("application/zip"),
	})
	if err != nil {
		return Location{}, fmt.Errorf("uploading s3://%s/%s: %w", loc.Bucket, loc.Key, err)
	}

	log.Info("asset published")
	return loc, nil
}

func (p *Publisher) exists(ctx context.Context, loc Location) (bool, error) {
	_, err := p.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(loc.Bucket),
		Key:    aws.String(loc.Key),
	})
	if err == nil {
		return true, nil
	}
	var nf *types.NotFound
	if errors.As(err, &nf) {
		return false, nil
	}
	return false, fmt.Errorf("checking s3://%s/%s: %w", loc.Bucket, loc.Key, err)
}
