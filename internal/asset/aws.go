package asset

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type awsOptions struct {
	profile string
	region  string
	retryer func() aws.Retryer
}

// AWSOption customizes how AWS config is loaded. With no options the shell
// environment and shared config chain are used.
type AWSOption func(*awsOptions)

// WithProfile selects a shared config profile.
func WithProfile(profile string) AWSOption {
	return func(o *awsOptions) { o.profile = profile }
}

// WithRegion overrides the region.
func WithRegion(region string) AWSOption {
	return func(o *awsOptions) { o.region = region }
}

// WithRetryer injects a custom retryer.
func WithRetryer(newRetryer func() aws.Retryer) AWSOption {
	return func(o *awsOptions) { o.retryer = newRetryer }
}

// LoadAWSConfig loads AWS SDK v2 config, applying any overrides.
func LoadAWSConfig(ctx context.Context, opts ...AWSOption) (aws.Config, error) {
	var o awsOptions
	for _, opt := range opts {
		opt(&o)
	}

	var loadOpts []func(*config.LoadOptions) error
	if o.profile != "" {
		loadOpts = append(loadOpts, config.WithSharedConfigProfile(o.profile))
	}
	if o.region != "" {
		loadOpts = append(loadOpts, config.WithRegion(o.region))
	}
	if o.retryer != nil {
		loadOpts = append(loadOpts, config.WithRetryer(o.retryer))
	}

	return config.LoadDefaultConfig(ctx, loadOpts...)
}

// NewS3 constructs an S3 client from cfg.
func NewS3(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
	return s3.NewFromConfig(cfg, optFns...)
}
