// Package corpus holds labeled training examples: the built-in default
// set and YAML/JSON corpus files.
package corpus

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/pthm/polarity/internal/classifier"
)

//go:embed default.yaml
var defaultYAML []byte

// ErrUnsupportedFormat is returned for corpus files that are neither YAML nor JSON
var ErrUnsupportedFormat = errors.New("unsupported corpus format")

// Corpus is an ordered list of training examples
type Corpus struct {
	Examples []classifier.Example `yaml:"examples" json:"examples"`
}

// Default returns a fresh copy of the built-in corpus
func Default() *Corpus {
	c, err := parse(defaultYAML, FormatYAML)
	if err != nil {
		panic(fmt.Sprintf("corpus: built-in corpus is invalid: %v", err))
	}
	return c
}

// Append adds an example at the end
func (c *Corpus) Append(txt string, label classifier.Label) {
	c.Examples = append(c.Examples, classifier.Example{Text: txt, Label: label})
}

// Len returns the number of examples
func (c *Corpus) Len() int {
	return len(c.Examples)
}

// Count returns how many examples carry label
func (c *Corpus) Count(label classifier.Label) int {
	n := 0
	for _, ex := range c.Examples {
		if ex.Label == label {
			n++
		}
	}
	return n
}

// Validate checks every example has text and a training label
func (c *Corpus) Validate() error {
	for i, ex := range c.Examples {
		if strings.TrimSpace(ex.Text) == "" {
			return fmt.Errorf("example %d: empty text", i)
		}
		label, err := classifier.ParseLabel(string(ex.Label))
		if err != nil {
			return fmt.Errorf("example %d: %w", i, err)
		}
		c.Examples[i].Label = label
	}
	return nil
}

// Format is a corpus file encoding
type Format int

const (
	FormatYAML Format = iota
	FormatJSON
)

// DetectFormat picks the format from a file extension
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// Load reads and validates a corpus file
func Load(path string) (*Corpus, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus: %w", err)
	}

	c, err := parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Save writes c to path in the format implied by its extension
func Save(path string, c *Corpus) error {
	format, err := DetectFormat(path)
	if err != nil {
		return err
	}

	var data []byte
	switch format {
	case FormatJSON:
		data, err = json.MarshalIndent(c, "", "  ")
		if err == nil {
			data = append(data, '\n')
		}
	default:
		data, err = yaml.Marshal(c)
	}
	if err != nil {
		return fmt.Errorf("failed to encode corpus: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write corpus: %w", err)
	}
	return nil
}

func parse(data []byte, format Format) (*Corpus, error) {
	var c Corpus

	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("invalid JSON: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("invalid YAML: %w", err)
		}
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}
