package corpus

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm/polarity/internal/classifier"
)

func TestDefault(t *testing.T) {
	c := Default()

	assert.Equal(t, 16, c.Len())
	assert.Equal(t, 8, c.Count(classifier.Positive))
	assert.Equal(t, 8, c.Count(classifier.Negative))
	assert.Equal(t, "it's amazing!", c.Examples[0].Text)
	assert.Equal(t, "Best thing ", c.Examples[5].Text)
	assert.Equal(t, classifier.Negative, c.Examples[15].Label)
}

func TestDefaultIsFreshCopy(t *testing.T) {
	a := Default()
	a.Append("extra", classifier.Positive)

	assert.Equal(t, 16, Default().Len())
}

func TestDefaultTrainsUsableModel(t *testing.T) {
	m := classifier.NewPolarityClassifier()
	m.Train(Default().Examples)

	tests := []struct {
		input string
		label classifier.Label
	}{
		{"This is terrible", classifier.Negative},
		{"fantastic", classifier.Positive},
		{"Great quality, I'm very happy!", classifier.Positive},
		{"poor and useless", classifier.Negative},
		{"the weather today", classifier.Neutral},
		{"", classifier.Neutral},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.label, m.Predict(tt.input).Label)
		})
	}
}

func TestLoadYAMLAndJSON(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "corpus.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(`examples:
  - text: lovely
    label: Positive
  - text: dreadful
    label: negative
`), 0o644))

	jsonPath := filepath.Join(dir, "corpus.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"examples":[
  {"text":"lovely","label":"positive"},
  {"text":"dreadful","label":"negative"}
]}`), 0o644))

	fromYAML, err := Load(yamlPath)
	require.NoError(t, err)
	fromJSON, err := Load(jsonPath)
	require.NoError(t, err)

	assert.Equal(t, fromYAML, fromJSON)
	assert.Equal(t, classifier.Positive, fromYAML.Examples[0].Label)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	write := func(name, body string) string {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
		return p
	}

	t.Run("unsupported extension", func(t *testing.T) {
		_, err := Load(write("corpus.txt", "good"))
		assert.True(t, errors.Is(err, ErrUnsupportedFormat))
	})

	t.Run("neutral label", func(t *testing.T) {
		_, err := Load(write("neutral.yaml", "examples:\n  - text: ok\n    label: neutral\n"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, classifier.ErrInvalidLabel))
		assert.Contains(t, err.Error(), "example 0")
	})

	t.Run("empty text", func(t *testing.T) {
		_, err := Load(write("empty.json", `{"examples":[{"text":"fine","label":"positive"},{"text":"  ","label":"negative"}]}`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "example 1")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := Load(write("bad.json", `{"examples":[`))
		assert.Error(t, err)
	})
}

func TestSaveRoundTrip(t *testing.T) {
	for _, name := range []string{"out.yaml", "out.json"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)

			c := Default()
			c.Append("superb service", classifier.Positive)
			require.NoError(t, Save(path, c))

			loaded, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, c.Examples, loaded.Examples)
		})
	}
}
