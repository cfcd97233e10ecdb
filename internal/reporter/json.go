package reporter

import (
	"encoding/json"
	"io"

	"github.com/pthm/polarity/internal/classifier"
)

// JSONReporter outputs results as JSON
type JSONReporter struct {
	w io.Writer
}

// NewJSONReporter creates a new JSON reporter
func NewJSONReporter(w io.Writer) *JSONReporter {
	return &JSONReporter{w: w}
}

// JSONOutput represents the JSON output format
type JSONOutput struct {
	Results []JSONResult `json:"results"`
	Summary Summary      `json:"summary"`
}

// JSONResult represents a prediction in JSON format
type JSONResult struct {
	Text          string         `json:"text"`
	Label         string         `json:"label"`
	Confidence    float64        `json:"confidence"`
	PositiveScore int            `json:"positive_score"`
	NegativeScore int            `json:"negative_score"`
	Sentences     []JSONSentence `json:"sentences,omitempty"`
}

// JSONSentence represents a per-sentence prediction
type JSONSentence struct {
	Text       string  `json:"text"`
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

// JSONWords represents the polarity sets
type JSONWords struct {
	Positive []classifier.WordCount `json:"positive"`
	Negative []classifier.WordCount `json:"negative"`
}

// Report outputs results as JSON
func (r *JSONReporter) Report(results []Result) error {
	output := JSONOutput{
		Results: make([]JSONResult, 0, len(results)),
		Summary: ComputeSummary(results),
	}

	for _, res := range results {
		jr := JSONResult{
			Text:          res.Text,
			Label:         res.Prediction.Label.String(),
			Confidence:    res.Prediction.Confidence,
			PositiveScore: res.Prediction.PositiveScore,
			NegativeScore: res.Prediction.NegativeScore,
		}
		for _, s := range res.Sentences {
			jr.Sentences = append(jr.Sentences, JSONSentence{
				Text:       s.Text,
				Label:      s.Prediction.Label.String(),
				Confidence: s.Prediction.Confidence,
			})
		}
		output.Results = append(output.Results, jr)
	}

	return r.encode(output)
}

// ReportWords outputs both polarity sets as JSON
func (r *JSONReporter) ReportWords(positive, negative []classifier.WordCount) error {
	out := JSONWords{
		Positive: positive,
		Negative: negative,
	}
	if out.Positive == nil {
		out.Positive = []classifier.WordCount{}
	}
	if out.Negative == nil {
		out.Negative = []classifier.WordCount{}
	}
	return r.encode(out)
}

// ReportTraining outputs the training summary as JSON
func (r *JSONReporter) ReportTraining(s TrainingSummary) error {
	return r.encode(s)
}

func (r *JSONReporter) encode(v any) error {
	encoder := json.NewEncoder(r.w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
