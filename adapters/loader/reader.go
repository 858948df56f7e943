// Package loader ingests survey files into normalized datasets.
package loader

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"crosstab/domain/survey"
	"crosstab/internal/errors"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/xuri/excelize/v2"
)

// DatasetReader reads CSV and XLSX survey files. The first column is the
// response timestamp and is excluded from analysis; a file needs a header,
// at least one data row, and at least two question columns to be usable.
type DatasetReader struct{}

// NewDatasetReader creates a dataset reader
func NewDatasetReader() *DatasetReader {
	return &DatasetReader{}
}

// Read loads one survey file into a dataset, substituting the fallback
// label for empty cells
func (r *DatasetReader) Read(ctx context.Context, path string, fallback string) (*survey.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, errors.ReadError(path, err)
	}

	var records [][]string
	var err error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		records, err = r.readCSV(path)
	case ".xlsx":
		records, err = r.readXLSX(path)
	default:
		return nil, errors.InvalidInput("unsupported file type: " + ext)
	}
	if err != nil {
		return nil, err
	}

	dataset, err := r.buildDataset(path, records, fallback)
	if err != nil {
		return nil, err
	}

	log.Printf("[DatasetReader] Loaded %s in %.2fms (%d respondents, %d questions)",
		path, float64(time.Since(start).Nanoseconds())/1e6, dataset.Rows, len(dataset.Questions))
	return dataset, nil
}

// readCSV parses a CSV through gota with every column forced to string,
// then recovers the raw records in column order
func (r *DatasetReader) readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.ReadError(path, err)
	}
	defer f.Close()

	df := dataframe.ReadCSV(f,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil {
		// gota reports shape problems (header-only files included) as
		// parse errors; they are input defects, not I/O failures
		return nil, &errors.AppError{
			Code:    errors.CodeInvalidInput,
			Message: "failed to parse " + path,
			Cause:   df.Err,
		}
	}
	return df.Records(), nil
}

// readXLSX reads the first sheet of a workbook
func (r *DatasetReader) readXLSX(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.ReadError(path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.InvalidInput("workbook has no sheets: " + path)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errors.ReadError(path, err)
	}
	return rows, nil
}

// buildDataset drops the timestamp column and assembles the normalized
// dataset
func (r *DatasetReader) buildDataset(path string, records [][]string, fallback string) (*survey.Dataset, error) {
	if len(records) < 2 {
		return nil, errors.InvalidInput("file must have a header row and at least one data row: " + path)
	}
	header := records[0]
	if len(header) < 3 {
		return nil, errors.InvalidInput("file must have a timestamp column and at least two questions: " + path)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	questions := make([]survey.Question, 0, len(header)-1)
	for col := 1; col < len(header); col++ {
		values := make([]string, 0, len(records)-1)
		for _, row := range records[1:] {
			if col < len(row) {
				values = append(values, row[col])
			} else {
				// ragged row, treat the missing cell as unanswered
				values = append(values, "")
			}
		}
		questions = append(questions, survey.Question{
			Name:   strings.TrimSpace(header[col]),
			Values: values,
		})
	}

	return survey.NewDataset(name, questions, fallback), nil
}
