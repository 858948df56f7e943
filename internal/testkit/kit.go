// Package testkit generates deterministic survey fixtures for tests.
package testkit

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"crosstab/domain/survey"
)

// Generator produces reproducible categorical survey data from a seeded
// linear congruential generator, so tests never depend on global
// randomness.
type Generator struct {
	state uint64
}

// NewGenerator creates a generator with the given seed
func NewGenerator(seed uint64) *Generator {
	if seed == 0 {
		seed = 1
	}
	return &Generator{state: seed}
}

// next advances the LCG (Numerical Recipes constants)
func (g *Generator) next() uint64 {
	g.state = g.state*6364136223846793005 + 1442695040888963407
	return g.state
}

// Intn returns a deterministic value in [0, n)
func (g *Generator) Intn(n int) int {
	return int((g.next() >> 33) % uint64(n))
}

// Categorical draws rows values uniformly from the given categories
func (g *Generator) Categorical(rows int, categories []string) []string {
	values := make([]string, rows)
	for i := range values {
		values[i] = categories[g.Intn(len(categories))]
	}
	return values
}

// DependentOn derives a column strongly associated with base: each base
// category maps to a fixed target category, with noiseRate of rows drawn
// uniformly instead.
func (g *Generator) DependentOn(base []string, categories []string, noiseRate float64) []string {
	values := make([]string, len(base))
	mapping := make(map[string]string)
	nextCat := 0
	for i, b := range base {
		if _, ok := mapping[b]; !ok {
			mapping[b] = categories[nextCat%len(categories)]
			nextCat++
		}
		if float64(g.Intn(1000))/1000.0 < noiseRate {
			values[i] = categories[g.Intn(len(categories))]
		} else {
			values[i] = mapping[b]
		}
	}
	return values
}

// SurveyDataset builds a dataset with one independent pair and one
// strongly dependent pair, the standard fixture for pipeline tests.
func (g *Generator) SurveyDataset(name string, rows int, fallback string) *survey.Dataset {
	colorVals := g.Categorical(rows, []string{"Red", "Green", "Blue"})
	questions := []survey.Question{
		{Name: "Favorite color", Values: colorVals},
		{Name: "Owns a pet", Values: g.Categorical(rows, []string{"Yes", "No"})},
		{Name: "Preferred shade", Values: g.DependentOn(colorVals, []string{"Light", "Medium", "Dark"}, 0.05)},
	}
	return survey.NewDataset(name, questions, fallback)
}

// WriteCSV writes a survey CSV with a leading timestamp column into dir
// and returns its path; raw cell values are written as-is so tests can
// include empty answers.
func WriteCSV(dir, name string, header []string, rows [][]string) (string, error) {
	var b strings.Builder
	b.WriteString("Timestamp," + strings.Join(header, ",") + "\n")
	for i, row := range rows {
		b.WriteString(fmt.Sprintf("2024-01-01 10:%02d:00,", i%60))
		b.WriteString(strings.Join(row, ","))
		b.WriteString("\n")
	}
	path := filepath.Join(dir, name+".csv")
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return "", err
	}
	return path, nil
}
