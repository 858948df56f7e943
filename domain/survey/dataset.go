package survey

import (
	"strings"
)

// Question is a single survey question column: the answers of every
// respondent, in row order.
type Question struct {
	Name   string
	Values []string
}

// Dataset is one survey: an ordered set of question columns of equal
// length (one row per respondent). Missing answers are normalized to the
// fallback label before any statistics run.
type Dataset struct {
	Name      string
	Questions []Question
	Rows      int
	Fallback  string
}

// NewDataset builds a dataset from raw columns, trimming whitespace and
// replacing empty cells with the fallback label. Column order is preserved;
// it drives the pair enumeration order for the whole pipeline.
func NewDataset(name string, questions []Question, fallback string) *Dataset {
	rows := 0
	if len(questions) > 0 {
		rows = len(questions[0].Values)
	}

	normalized := make([]Question, len(questions))
	for i, q := range questions {
		values := make([]string, len(q.Values))
		for j, v := range q.Values {
			v = strings.TrimSpace(v)
			if v == "" {
				v = fallback
			}
			values[j] = v
		}
		normalized[i] = Question{Name: q.Name, Values: values}
	}

	return &Dataset{
		Name:      name,
		Questions: normalized,
		Rows:      rows,
		Fallback:  fallback,
	}
}

// Question returns the column with the given name, or nil
func (d *Dataset) Question(name string) *Question {
	for i := range d.Questions {
		if d.Questions[i].Name == name {
			return &d.Questions[i]
		}
	}
	return nil
}

// ColumnNames returns the question names in dataset order
func (d *Dataset) ColumnNames() []string {
	names := make([]string, len(d.Questions))
	for i, q := range d.Questions {
		names[i] = q.Name
	}
	return names
}

// Pair is an unordered pair of distinct question columns, identified by the
// order the columns appear in the dataset (First always precedes Second).
type Pair struct {
	First  string
	Second string
}

// Slug returns the sanitized sheet/file identifier for the pair
func (p Pair) Slug() string {
	return PairSlug(p.First, p.Second)
}

// Pairs materializes all 2-combinations of question columns in dataset
// order. The slice is built once and reused by both pipeline passes so the
// i-th collected p-value always maps back to the i-th pair.
func (d *Dataset) Pairs() []Pair {
	names := d.ColumnNames()
	pairs := make([]Pair, 0, len(names)*(len(names)-1)/2)
	for i := 0; i < len(names)-1; i++ {
		for j := i + 1; j < len(names); j++ {
			pairs = append(pairs, Pair{First: names[i], Second: names[j]})
		}
	}
	return pairs
}
