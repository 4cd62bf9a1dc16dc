package interfaces

import (
	"context"
	"io"
)

// ObjectStorage defines read access to packages kept in a bucket
type ObjectStorage interface {
	// Exists reports whether the object is present. A missing object is not an error.
	Exists(ctx context.Context, bucket, object string) (bool, error)

	// NewReader opens the object for reading
	NewReader(ctx context.Context, bucket, object string) (io.ReadCloser, error)
}
