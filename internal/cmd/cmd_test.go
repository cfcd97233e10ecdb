package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm/polarity/internal/classifier"
	"github.com/pthm/polarity/internal/corpus"
	"github.com/pthm/polarity/internal/reporter"
)

func init() {
	color.NoColor = true
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestAnalyzeArgs(t *testing.T) {
	out, err := run(t, "", "analyze", "This", "is", "terrible")
	require.NoError(t, err)

	assert.Equal(t, "Sentiment: NEGATIVE\nConfidence: 100.0%\n", out)
}

func TestAnalyzeNeutral(t *testing.T) {
	out, err := run(t, "", "analyze", "the weather today")
	require.NoError(t, err)

	assert.Contains(t, out, "Sentiment: NEUTRAL")
	assert.Contains(t, out, "Confidence: 50.0%")
}

func TestAnalyzeEmptyArgs(t *testing.T) {
	_, err := run(t, "", "analyze", "   ")
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestAnalyzeEmptyStdin(t *testing.T) {
	_, err := run(t, "\n  \n", "analyze")
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestAnalyzeStdinJSON(t *testing.T) {
	out, err := run(t, "fantastic\n\nhate\nweather\n", "analyze", "--format", "json")
	require.NoError(t, err)

	var got reporter.JSONOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))

	require.Len(t, got.Results, 3)
	assert.Equal(t, "positive", got.Results[0].Label)
	assert.Equal(t, "negative", got.Results[1].Label)
	assert.Equal(t, "neutral", got.Results[2].Label)
	assert.Equal(t, 0.5, got.Results[2].Confidence)
	assert.Equal(t, reporter.Summary{Total: 3, Positive: 1, Negative: 1, Neutral: 1}, got.Summary)
}

func TestAnalyzeSentences(t *testing.T) {
	out, err := run(t, "", "analyze", "-f", "json", "--sentences", "The food was good. The service was terrible.")
	require.NoError(t, err)

	var got reporter.JSONOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))

	require.Len(t, got.Results, 1)
	sents := got.Results[0].Sentences
	require.Len(t, sents, 2)
	assert.Equal(t, "positive", sents[0].Label)
	assert.Equal(t, "negative", sents[1].Label)
}

func TestAnalyzeCustomCorpus(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.yaml")
	require.NoError(t, os.WriteFile(path, []byte("examples:\n  - text: good\n    label: positive\n  - text: bad\n    label: negative\n"), 0o644))

	out, err := run(t, "", "analyze", "--corpus", path, "good bad")
	require.NoError(t, err)
	assert.Contains(t, out, "Sentiment: NEUTRAL")

	out, err = run(t, "", "analyze", "-c", path, "fantastic")
	require.NoError(t, err)
	assert.Contains(t, out, "Sentiment: NEUTRAL", "built-in words should not be known")
}

func TestAnalyzeBadCorpus(t *testing.T) {
	_, err := run(t, "", "analyze", "--corpus", filepath.Join(t.TempDir(), "missing.yaml"), "good")
	assert.ErrorContains(t, err, "failed to load corpus")
}

func TestInvalidFormat(t *testing.T) {
	_, err := run(t, "", "analyze", "--format", "xml", "good")
	assert.ErrorContains(t, err, "invalid format")
}

func TestTrainSummary(t *testing.T) {
	out, err := run(t, "", "train", "-f", "json")
	require.NoError(t, err)

	var got reporter.TrainingSummary
	require.NoError(t, json.Unmarshal([]byte(out), &got))

	assert.Equal(t, BuiltinSource, got.Source)
	assert.Equal(t, 16, got.Examples)
	assert.Equal(t, 8, got.Positive)
	assert.Equal(t, 8, got.Negative)
	assert.Equal(t, 17, got.PositiveWords)
	assert.Equal(t, 13, got.NegativeWords)
}

func TestTrainAddAndSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.json")
	require.NoError(t, corpus.Save(path, corpus.Default()))

	out, err := run(t, "", "train", "-c", path, "--add", "dreadful service", "--label", "negative", "--save")
	require.NoError(t, err)
	assert.Contains(t, out, "Model retrained with new data!")
	assert.Contains(t, out, "Examples:  17 (8 positive, 9 negative)")

	saved, err := corpus.Load(path)
	require.NoError(t, err)
	require.Equal(t, 17, saved.Len())
	assert.Equal(t, classifier.Example{Text: "dreadful service", Label: classifier.Negative}, saved.Examples[16])

	out, err = run(t, "", "analyze", "-c", path, "dreadful")
	require.NoError(t, err)
	assert.Contains(t, out, "Sentiment: NEGATIVE")
}

func TestTrainAddErrors(t *testing.T) {
	_, err := run(t, "", "train", "--add", "  ")
	assert.ErrorIs(t, err, ErrEmptyTraining)

	_, err = run(t, "", "train", "--add", "meh", "--label", "neutral")
	assert.ErrorIs(t, err, classifier.ErrInvalidLabel)

	_, err = run(t, "", "train", "--add", "superb", "--save")
	assert.ErrorContains(t, err, "--save requires --corpus")
}

func TestWords(t *testing.T) {
	out, err := run(t, "", "words", "-f", "json", "--limit", "3")
	require.NoError(t, err)

	var got reporter.JSONWords
	require.NoError(t, json.Unmarshal([]byte(out), &got))

	require.Len(t, got.Positive, 3)
	require.Len(t, got.Negative, 3)
	assert.Equal(t, "its", got.Positive[0].Word)
	assert.Equal(t, "this", got.Negative[0].Word)
	assert.Equal(t, 2, got.Negative[0].Count)
	assert.Equal(t, "is", got.Negative[1].Word)
	assert.Equal(t, "bad", got.Negative[2].Word)
}

func TestWordsTable(t *testing.T) {
	out, err := run(t, "", "words")
	require.NoError(t, err)

	assert.Contains(t, out, "brilliant")
	assert.Contains(t, out, "useless")
	assert.Contains(t, out, "17 positive words, 13 negative words")
}

func TestFormRequiresTTY(t *testing.T) {
	_, err := run(t, "", "form")
	assert.ErrorContains(t, err, "interactive terminal")
}

func TestRootWithoutTTYShowsHelp(t *testing.T) {
	out, err := run(t, "")
	require.NoError(t, err)
	assert.Contains(t, out, "analyze")
	assert.Contains(t, out, "words")
}

func TestVersion(t *testing.T) {
	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "polarity dev"))
}
