package ports

import (
	"crosstab/domain/assoc"
	"crosstab/domain/run"
)

// Presenter reports per-dataset outcomes to the user
type Presenter interface {
	DatasetDone(manifest *run.Manifest, significant []assoc.Result)
	DatasetFailed(dataset string, err error)
	BatchDone(succeeded, failed int)
}
