package interfaces

import (
	"context"

	"github.com/m-mizutani/scorm-inspect/pkg/domain/model"
)

// InspectUseCase defines SCORM package inspection
type InspectUseCase interface {
	// Inspect unpacks the package at source into a scratch directory, examines
	// it and removes the scratch directory before returning
	Inspect(ctx context.Context, source string) (*model.Report, error)
}
