package classifier

import (
	"io"
	"sort"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/pthm/polarity/internal/text"
)

// PolarityClassifier scores text by counting tokens that appear among the
// most frequent words of each label's training examples.
type PolarityClassifier struct {
	mu sync.RWMutex

	examples []Example

	positive     map[string]struct{}
	negative     map[string]struct{}
	positiveRank []WordCount
	negativeRank []WordCount
	trained      bool

	logger log.FieldLogger
}

// Option configures a PolarityClassifier
type Option func(*PolarityClassifier)

// WithLogger sets the logger used for training diagnostics
func WithLogger(l log.FieldLogger) Option {
	return func(c *PolarityClassifier) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewPolarityClassifier creates an untrained classifier
func NewPolarityClassifier(opts ...Option) *PolarityClassifier {
	discard := log.New()
	discard.SetOutput(io.Discard)

	c := &PolarityClassifier{
		positive: map[string]struct{}{},
		negative: map[string]struct{}{},
		logger:   discard,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Train rebuilds both polarity sets from examples, discarding whatever was
// learned before. Examples labelled Positive feed the positive bucket and
// every other label feeds the negative bucket. Each set keeps the
// MaxPolarityWords most frequent tokens of its bucket; among equal counts
// the token seen first in the bucket wins.
func (c *PolarityClassifier) Train(examples []Example) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.examples = append([]Example(nil), examples...)
	c.rebuild()
}

// AddExample appends one example to the stored corpus and retrains on the
// whole corpus.
func (c *PolarityClassifier) AddExample(txt string, label Label) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.examples = append(c.examples, Example{Text: txt, Label: label})
	c.rebuild()
}

// rebuild must be called with mu held
func (c *PolarityClassifier) rebuild() {
	var posTokens, negTokens []string
	for _, ex := range c.examples {
		tokens := text.Normalize(ex.Text)
		if ex.Label == Positive {
			posTokens = append(posTokens, tokens...)
		} else {
			negTokens = append(negTokens, tokens...)
		}
	}

	c.positiveRank = topWords(posTokens, MaxPolarityWords)
	c.negativeRank = topWords(negTokens, MaxPolarityWords)
	c.positive = wordSet(c.positiveRank)
	c.negative = wordSet(c.negativeRank)
	c.trained = true

	c.logger.WithFields(log.Fields{
		"examples":       len(c.examples),
		"positive_words": len(c.positive),
		"negative_words": len(c.negative),
	}).Debug("model trained")
}

// Predict classifies txt. It never fails: an untrained model, text without
// any polarity word, and a tie between the two scores all yield
// (neutral, 0.5).
func (c *PolarityClassifier) Predict(txt string) Prediction {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.trained {
		return neutralPrediction(0, 0)
	}

	var pos, neg int
	for _, tok := range text.Normalize(txt) {
		if _, ok := c.positive[tok]; ok {
			pos++
		}
		if _, ok := c.negative[tok]; ok {
			neg++
		}
	}

	total := pos + neg
	if total == 0 {
		return neutralPrediction(pos, neg)
	}

	confidence := float64(max(pos, neg)) / float64(total)

	switch {
	case pos > neg:
		return Prediction{Label: Positive, Confidence: confidence, PositiveScore: pos, NegativeScore: neg}
	case neg > pos:
		return Prediction{Label: Negative, Confidence: confidence, PositiveScore: pos, NegativeScore: neg}
	default:
		// Ties report 0.5 regardless of how many words matched.
		return neutralPrediction(pos, neg)
	}
}

// Trained reports whether Train or AddExample has been called
func (c *PolarityClassifier) Trained() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.trained
}

// PositiveWords returns the positive set in rank order
func (c *PolarityClassifier) PositiveWords() []WordCount {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]WordCount(nil), c.positiveRank...)
}

// NegativeWords returns the negative set in rank order
func (c *PolarityClassifier) NegativeWords() []WordCount {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]WordCount(nil), c.negativeRank...)
}

// Examples returns a copy of the corpus the model was last trained on
func (c *PolarityClassifier) Examples() []Example {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]Example(nil), c.examples...)
}

// topWords ranks tokens by frequency, keeping first-occurrence order for
// equal counts, and returns at most limit entries.
func topWords(tokens []string, limit int) []WordCount {
	index := make(map[string]int)
	var ranked []WordCount
	for _, tok := range tokens {
		if i, ok := index[tok]; ok {
			ranked[i].Count++
			continue
		}
		index[tok] = len(ranked)
		ranked = append(ranked, WordCount{Word: tok, Count: 1})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

func wordSet(words []WordCount) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w.Word] = struct{}{}
	}
	return set
}
