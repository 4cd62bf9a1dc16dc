package gcs_test

import (
	"context"
	"io"
	"os"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/scorm-inspect/pkg/infra/gcs"
)

func TestClient_WithRealBucket(t *testing.T) {
	// Integration test with a real bucket, requires Application Default Credentials
	bucket := os.Getenv("TEST_GCS_BUCKET")
	object := os.Getenv("TEST_GCS_OBJECT")
	if bucket == "" || object == "" {
		t.Skip("TEST_GCS_BUCKET or TEST_GCS_OBJECT not set, skipping integration test")
	}

	ctx := context.Background()
	client, err := gcs.NewClient(ctx, gcs.WithQuotaProject(os.Getenv("TEST_GCS_PROJECT_ID")))
	gt.NoError(t, err)
	defer func() {
		gt.NoError(t, client.Close())
	}()

	t.Run("existing object", func(t *testing.T) {
		exists, err := client.Exists(ctx, bucket, object)
		gt.NoError(t, err)
		gt.True(t, exists)

		r, err := client.NewReader(ctx, bucket, object)
		gt.NoError(t, err)
		defer r.Close()

		head := make([]byte, 4)
		_, err = io.ReadFull(r, head)
		gt.NoError(t, err)
		gt.Equal(t, string(head), "PK\x03\x04")
	})

	t.Run("missing object", func(t *testing.T) {
		exists, err := client.Exists(ctx, bucket, object+".does-not-exist")
		gt.NoError(t, err)
		gt.False(t, exists)
	})
}

func TestClient_WithEmulator(t *testing.T) {
	endpoint := os.Getenv("TEST_GCS_EMULATOR_ENDPOINT")
	if endpoint == "" {
		t.Skip("TEST_GCS_EMULATOR_ENDPOINT not set, skipping emulator test")
	}

	ctx := context.Background()
	client, err := gcs.NewClient(ctx, gcs.WithEndpoint(endpoint))
	gt.NoError(t, err)
	defer client.Close()

	exists, err := client.Exists(ctx, "scorm-inspect-test", "no-such-package.zip")
	gt.NoError(t, err)
	gt.False(t, exists)
}
