package stats

import (
	"math"

	"crosstab/domain/survey"

	"github.com/montanaflynn/stats"
)

// QuestionProfiler summarizes the response distribution of each question
type QuestionProfiler struct{}

// NewQuestionProfiler creates a question profiler
func NewQuestionProfiler() *QuestionProfiler {
	return &QuestionProfiler{}
}

// Profile computes one profile per question column, in dataset order
func (p *QuestionProfiler) Profile(dataset *survey.Dataset) []survey.Profile {
	profiles := make([]survey.Profile, 0, len(dataset.Questions))
	for _, q := range dataset.Questions {
		profiles = append(profiles, p.profileQuestion(q, dataset.Fallback))
	}
	return profiles
}

func (p *QuestionProfiler) profileQuestion(q survey.Question, fallback string) survey.Profile {
	frequency := make(map[string]int)
	var categories []string
	missing := 0
	for _, v := range q.Values {
		if v == fallback {
			missing++
			continue
		}
		if _, ok := frequency[v]; !ok {
			categories = append(categories, v)
		}
		frequency[v]++
	}

	total := len(q.Values)
	validN := total - missing

	profile := survey.Profile{
		Question:    q.Name,
		ValidN:      validN,
		Missing:     missing,
		Cardinality: len(categories),
	}
	if total > 0 {
		profile.MissingRate = float64(missing) / float64(total)
	}
	if validN == 0 {
		return profile
	}

	// top category, entropy, Gini impurity over valid responses
	counts := make([]float64, 0, len(categories))
	entropy, gini := 0.0, 1.0
	for _, cat := range categories {
		count := frequency[cat]
		counts = append(counts, float64(count))
		prob := float64(count) / float64(validN)
		entropy -= prob * math.Log2(prob)
		gini -= prob * prob
		if count > frequency[profile.TopCategory] {
			profile.TopCategory = cat
		}
	}
	profile.TopShare = float64(frequency[profile.TopCategory]) / float64(validN)
	profile.Entropy = entropy
	profile.Gini = gini

	mean, _ := stats.Mean(counts)
	stdDev, _ := stats.StandardDeviation(counts)
	profile.CountMean = mean
	profile.CountStdDev = stdDev

	return profile
}
