package ports

import (
	"context"

	"crosstab/domain/survey"
)

// DatasetReader ingests one survey file into a normalized dataset.
// Implementations drop the leading timestamp column and substitute the
// fallback label for empty cells.
type DatasetReader interface {
	Read(ctx context.Context, path string, fallback string) (*survey.Dataset, error)
}
