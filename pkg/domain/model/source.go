package model

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/scorm-inspect/pkg/domain/types"
)

// SourceKind tells where a package is read from
type SourceKind string

const (
	SourceLocal SourceKind = "local"
	SourceGCS   SourceKind = "gcs"
)

const gcsScheme = "gs://"

// PackageSource identifies the package to inspect
type PackageSource struct {
	Raw    string     // Argument as given by the user
	Kind   SourceKind // Local file or Cloud Storage object
	Path   string     // Local file path (SourceLocal)
	Bucket string     // Bucket name (SourceGCS)
	Object string     // Object name (SourceGCS)
}

// ParsePackageSource parses a local path or a gs://bucket/object URI
func ParsePackageSource(raw string) (*PackageSource, error) {
	if raw == "" {
		return nil, goerr.Wrap(types.ErrInvalidSource, "empty package source")
	}

	if !strings.HasPrefix(raw, gcsScheme) {
		return &PackageSource{Raw: raw, Kind: SourceLocal, Path: raw}, nil
	}

	bucket, object, ok := strings.Cut(strings.TrimPrefix(raw, gcsScheme), "/")
	if !ok || bucket == "" || object == "" {
		return nil, goerr.Wrap(types.ErrInvalidSource, "GCS source must be gs://bucket/object", goerr.V("source", raw))
	}

	return &PackageSource{Raw: raw, Kind: SourceGCS, Bucket: bucket, Object: object}, nil
}

// IsRemote reports whether the package has to be downloaded first
func (s *PackageSource) IsRemote() bool {
	return s.Kind == SourceGCS
}

func (s *PackageSource) String() string {
	return s.Raw
}
