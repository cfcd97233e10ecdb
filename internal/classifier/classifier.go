package classifier

import "fmt"

// MaxPolarityWords caps the size of each polarity set.
const MaxPolarityWords = 100

// Classifier predicts the sentiment of a piece of text.
type Classifier interface {
	Predict(text string) Prediction
}

// Example is a labeled training snippet.
type Example struct {
	Text  string `yaml:"text" json:"text"`
	Label Label  `yaml:"label" json:"label"`
}

// Prediction is the outcome of classifying one text
type Prediction struct {
	Label      Label   `json:"label"`
	Confidence float64 `json:"confidence"` // 0-1: winning score over total matched score

	// Raw match counts; informational only
	PositiveScore int `json:"positive_score"`
	NegativeScore int `json:"negative_score"`
}

// WordCount is a polarity word and its frequency in the training bucket
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// FormatConfidence renders a confidence as a percentage with one decimal.
func FormatConfidence(c float64) string {
	return fmt.Sprintf("%.1f%%", c*100)
}

// neutralPrediction is returned whenever there is nothing to decide on.
func neutralPrediction(pos, neg int) Prediction {
	return Prediction{
		Label:         Neutral,
		Confidence:    0.5,
		PositiveScore: pos,
		NegativeScore: neg,
	}
}
