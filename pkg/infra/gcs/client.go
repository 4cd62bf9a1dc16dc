package gcs

import (
	"context"
	"errors"
	"io"

	"cloud.google.com/go/storage"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/scorm-inspect/pkg/domain/interfaces"
	"google.golang.org/api/option"
)

type config struct {
	quotaProject string
	endpoint     string
}

// Option is a functional option for the Cloud Storage client
type Option func(*config)

// WithQuotaProject sets the project billed for requests
func WithQuotaProject(projectID string) Option {
	return func(c *config) {
		c.quotaProject = projectID
	}
}

// WithEndpoint points the client at another endpoint such as a local
// emulator. Authentication is disabled for custom endpoints.
func WithEndpoint(endpoint string) Option {
	return func(c *config) {
		c.endpoint = endpoint
	}
}

// Client reads SCORM packages from Cloud Storage
type Client struct {
	storage *storage.Client
}

var _ interfaces.ObjectStorage = (*Client)(nil)

// NewClient creates a new Cloud Storage client with Application Default Credentials
func NewClient(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	var clientOpts []option.ClientOption
	if cfg.quotaProject != "" {
		clientOpts = append(clientOpts, option.WithQuotaProject(cfg.quotaProject))
	}
	if cfg.endpoint != "" {
		clientOpts = append(clientOpts,
			option.WithEndpoint(cfg.endpoint),
			option.WithoutAuthentication(),
		)
	}

	storageClient, err := storage.NewClient(ctx, clientOpts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Cloud Storage client")
	}

	return &Client{storage: storageClient}, nil
}

// Exists reports whether the object is present in the bucket
func (c *Client) Exists(ctx context.Context, bucket, object string) (bool, error) {
	_, err := c.storage.Bucket(bucket).Object(object).Attrs(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) || errors.Is(err, storage.ErrBucketNotExist) {
			return false, nil
		}
		return false, goerr.Wrap(err, "failed to get object attributes",
			goerr.V("bucket", bucket),
			goerr.V("object", object),
		)
	}

	return true, nil
}

// NewReader opens the object for reading
func (c *Client) NewReader(ctx context.Context, bucket, object string) (io.ReadCloser, error) {
	r, err := c.storage.Bucket(bucket).Object(object).NewReader(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open object",
			goerr.V("bucket", bucket),
			goerr.V("object", object),
		)
	}

	return r, nil
}

// Close releases the underlying connections
func (c *Client) Close() error {
	if err := c.storage.Close(); err != nil {
		return goerr.Wrap(err, "failed to close Cloud Storage client")
	}
	return nil
}
