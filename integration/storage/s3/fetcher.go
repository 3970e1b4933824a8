package s3

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	s3aws "github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/dmitrymomot/notify/core/email"
)

// Compile-time check that Fetcher can be registered with an email.Loader.
var _ email.Fetcher = (*Fetcher)(nil)

// DefaultMaxSize caps a single attachment download.
const DefaultMaxSize int64 = 25 << 20

// S3Client defines the S3 operations used by Fetcher.
type S3Client interface {
	GetObject(ctx context.Context, params *s3aws.GetObjectInput, optFns ...func(*s3aws.Options)) (*s3aws.GetObjectOutput, error)
}

// Config contains configuration for S3 attachment fetching.
// Bucket is used when a location omits it, as in "s3:///reports/q1.csv".
type Config struct {
	Bucket         string `env:"S3_BUCKET"`
	Region         string `env:"S3_REGION,required"`
	AccessKeyID    string `env:"S3_ACCESS_KEY_ID"`
	SecretKey      string `env:"S3_SECRET_KEY"`
	Endpoint       string `env:"S3_ENDPOINT"`                 // For S3-compatible services like MinIO
	ForcePathStyle bool   `env:"S3_FORCE_PATH_STYLE"`         // Required for MinIO and some S3-compatible services
	MaxSize        int64  `env:"S3_MAX_SIZE" envDefault:"0"` // 0 means DefaultMaxSize
}

// Option configures Fetcher construction.
type Option func(*options)

type options struct {
	httpClient      *http.Client
	s3Client        S3Client
	s3ConfigOptions []func(*config.LoadOptions) error
	s3ClientOptions []func(*s3aws.Options)
}

// WithS3Client sets a pre-configured S3 client, typically a mock in tests.
func WithS3Client(client S3Client) Option {
	return func(o *options) {
		o.s3Client = client
	}
}

// WithHTTPClient sets a custom HTTP client for S3 requests.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

// WithS3ConfigOption adds a custom AWS config option.
func WithS3ConfigOption(option func(*config.LoadOptions) error) Option {
	return func(o *options) {
		o.s3ConfigOptions = append(o.s3ConfigOptions, option)
	}
}

// WithS3ClientOption adds a custom S3 client option.
func WithS3ClientOption(option func(*s3aws.Options)) Option {
	return func(o *options) {
		o.s3ClientOptions = append(o.s3ClientOptions, option)
	}
}

// Fetcher downloads attachments addressed as s3://bucket/key.
// Safe for concurrent use.
type Fetcher struct {
	client  S3Client
	bucket  string
	maxSize int64
}

// New creates a Fetcher. Without static credentials the default AWS
// credential chain is used.
func New(ctx context.Context, cfg Config, opts ...Option) (*Fetcher, error) {
	if cfg.Region == "" {
		return nil, fmt.Errorf("%w: Region is required", ErrInvalidConfig)
	}
	if cfg.MaxSize < 0 {
		return nil, fmt.Errorf("%w: MaxSize must not be negative", ErrInvalidConfig)
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	client := o.s3Client
	if client == nil {
		awsOptions := []func(*config.LoadOptions) error{
			config.WithRegion(cfg.Region),
		}
		if cfg.AccessKeyID != "" && cfg.SecretKey != "" {
			awsOptions = append(awsOptions,
				config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
					cfg.AccessKeyID,
					cfg.SecretKey,
					"",
				)),
			)
		}
		if o.httpClient != nil {
			awsOptions = append(awsOptions, config.WithHTTPClient(o.httpClient))
		}
		awsOptions = append(awsOptions, o.s3ConfigOptions...)

		awsConfig, err := config.LoadDefaultConfig(ctx, awsOptions...)
		if err != nil {
			return nil, fmt.Errorf("failed to load AWS config: %w", err)
		}

		client = s3aws.NewFromConfig(awsConfig, func(so *s3aws.Options) {
			if cfg.Endpoint != "" {
				so.BaseEndpoint = aws.String(cfg.Endpoint)
			}
			so.UsePathStyle = cfg.ForcePathStyle
			for _, opt := range o.s3ClientOptions {
				opt(so)
			}
		})
	}

	maxSize := cfg.MaxSize
	if maxSize == 0 {
		maxSize = DefaultMaxSize
	}

	return &Fetcher{
		client:  client,
		bucket:  cfg.Bucket,
		maxSize: maxSize,
	}, nil
}

// Fetch implements email.Fetcher.
func (f *Fetcher) Fetch(ctx context.Context, location *url.URL) ([]byte, error) {
	bucket, key, err := f.split(location)
	if err != nil {
		return nil, err
	}

	out, err := f.client.GetObject(ctx, &s3aws.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, classifyS3Error(err, "get object")
	}
	defer func() { _ = out.Body.Close() }()

	if out.ContentLength != nil && *out.ContentLength > f.maxSize {
		return nil, fmt.Errorf("%w: %s/%s is %d bytes", ErrObjectTooLarge, bucket, key, *out.ContentLength)
	}

	data, err := io.ReadAll(io.LimitReader(out.Body, f.maxSize+1))
	if err != nil {
		return nil, classifyS3Error(err, "read object")
	}
	if int64(len(data)) > f.maxSize {
		return nil, fmt.Errorf("%w: %s/%s", ErrObjectTooLarge, bucket, key)
	}
	return data, nil
}

func (f *Fetcher) split(location *url.URL) (bucket, key string, err error) {
	if location == nil {
		return "", "", fmt.Errorf("%w: empty location", ErrInvalidLocation)
	}
	bucket = location.Host
	if bucket == "" {
		bucket = f.bucket
	}
	key = strings.TrimPrefix(location.Path, "/")
	if bucket == "" || key == "" {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidLocation, location.String())
	}
	return bucket, key, nil
}
