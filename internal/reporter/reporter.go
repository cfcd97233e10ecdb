package reporter

import (
	"github.com/pthm/polarity/internal/classifier"
)

// Reporter defines the interface for outputting analysis results
type Reporter interface {
	// Report outputs predictions for one or more inputs
	Report(results []Result) error

	// ReportWords outputs the trained polarity sets
	ReportWords(positive, negative []classifier.WordCount) error

	// ReportTraining outputs the state of the trained model
	ReportTraining(s TrainingSummary) error
}

// TrainingSummary describes the corpus and model after training
type TrainingSummary struct {
	Source        string `json:"source"`
	Examples      int    `json:"examples"`
	Positive      int    `json:"positive_examples"`
	Negative      int    `json:"negative_examples"`
	PositiveWords int    `json:"positive_words"`
	NegativeWords int    `json:"negative_words"`
	Added         string `json:"added,omitempty"`
	SavedTo       string `json:"saved_to,omitempty"`
}

// Result is the prediction for one analyzed input
type Result struct {
	Text       string
	Prediction classifier.Prediction
	Sentences  []SentenceResult
}

// SentenceResult is the prediction for one sentence of an input
type SentenceResult struct {
	Text       string
	Prediction classifier.Prediction
}

// Summary holds label counts for a run
type Summary struct {
	Total    int `json:"total"`
	Positive int `json:"positive"`
	Negative int `json:"negative"`
	Neutral  int `json:"neutral"`
}

// ComputeSummary computes label counts from results
func ComputeSummary(results []Result) Summary {
	s := Summary{Total: len(results)}

	for _, r := range results {
		switch r.Prediction.Label {
		case classifier.Positive:
			s.Positive++
		case classifier.Negative:
			s.Negative++
		default:
			s.Neutral++
		}
	}

	return s
}
