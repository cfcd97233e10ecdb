package text

import (
	"strings"
	"sync"

	"gopkg.in/neurosnap/sentences.v1"
	"gopkg.in/neurosnap/sentences.v1/english"
)

var (
	tokenizerOnce sync.Once
	tokenizer     *sentences.DefaultSentenceTokenizer
)

// Sentences splits s into sentences using the English Punkt model.
// Blank sentences are dropped. If the tokenizer cannot be built the whole
// trimmed input is returned as a single sentence.
func Sentences(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	tokenizerOnce.Do(func() {
		t, err := english.NewSentenceTokenizer(nil)
		if err == nil {
			tokenizer = t
		}
	})
	if tokenizer == nil {
		return []string{strings.TrimSpace(s)}
	}

	var out []string
	for _, sent := range tokenizer.Tokenize(s) {
		txt := strings.TrimSpace(sent.Text)
		if txt != "" {
			out = append(out, txt)
		}
	}
	return out
}
