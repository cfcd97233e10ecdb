package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pthm/polarity/internal/reporter"
	"github.com/pthm/polarity/internal/text"
)

// ErrEmptyInput is returned when there is no text to analyze
var ErrEmptyInput = errors.New("please enter some text to analyze")

func newAnalyzeCmd() *cobra.Command {
	var bySentence bool

	cmd := &cobra.Command{
		Use:   "analyze [text...]",
		Short: "Classify text as positive, negative or neutral",
		Long: `Classify the given text. Arguments are joined with spaces and
analyzed as one text. Without arguments every non-blank line of stdin is
analyzed separately.

Examples:
  polarity analyze "Great experience, absolutely brilliant"
  polarity analyze --sentences "The food was good. The service was terrible."
  cat reviews.txt | polarity analyze --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := AppFromContext(cmd.Context())
			if err != nil {
				return err
			}

			inputs, err := collectInputs(args, cmd.InOrStdin())
			if err != nil {
				return err
			}

			results := make([]reporter.Result, 0, len(inputs))
			for _, in := range inputs {
				res := reporter.Result{
					Text:       in,
					Prediction: app.Classifier.Predict(in),
				}
				if bySentence {
					for _, s := range text.Sentences(in) {
						res.Sentences = append(res.Sentences, reporter.SentenceResult{
							Text:       s,
							Prediction: app.Classifier.Predict(s),
						})
					}
				}
				results = append(results, res)
			}

			app.Logger.WithField("inputs", len(results)).Debug("analysis complete")
			return app.Reporter().Report(results)
		},
	}

	cmd.Flags().BoolVarP(&bySentence, "sentences", "s", false, "Also classify each sentence separately")
	return cmd
}

// collectInputs returns the joined args, or each non-blank stdin line
func collectInputs(args []string, stdin io.Reader) ([]string, error) {
	if len(args) > 0 {
		joined := strings.TrimSpace(strings.Join(args, " "))
		if joined == "" {
			return nil, ErrEmptyInput
		}
		return []string{joined}, nil
	}

	var inputs []string
	sc := bufio.NewScanner(stdin)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			inputs = append(inputs, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	if len(inputs) == 0 {
		return nil, ErrEmptyInput
	}
	return inputs, nil
}
