package model_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/scorm-inspect/pkg/domain/model"
	"github.com/m-mizutani/scorm-inspect/pkg/domain/types"
)

func TestParsePackageSource(t *testing.T) {
	t.Run("local path", func(t *testing.T) {
		src, err := model.ParsePackageSource("assets/data/scorm.zip")
		gt.NoError(t, err)
		gt.Equal(t, src.Kind, model.SourceLocal)
		gt.Equal(t, src.Path, "assets/data/scorm.zip")
		gt.False(t, src.IsRemote())
	})

	t.Run("gcs object", func(t *testing.T) {
		src, err := model.ParsePackageSource("gs://courses/2024/pri.zip")
		gt.NoError(t, err)
		gt.Equal(t, src.Kind, model.SourceGCS)
		gt.Equal(t, src.Bucket, "courses")
		gt.Equal(t, src.Object, "2024/pri.zip")
		gt.True(t, src.IsRemote())
		gt.Equal(t, src.String(), "gs://courses/2024/pri.zip")
	})

	t.Run("invalid sources", func(t *testing.T) {
		for _, raw := range []string{"", "gs://", "gs://bucket", "gs://bucket/", "gs:///object"} {
			_, err := model.ParsePackageSource(raw)
			gt.Error(t, err)
			gt.True(t, errors.Is(err, types.ErrInvalidSource))
		}
	})
}
