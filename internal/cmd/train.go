package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pthm/polarity/internal/classifier"
	"github.com/pthm/polarity/internal/corpus"
	"github.com/pthm/polarity/internal/reporter"
)

// ErrEmptyTraining is returned when --add is given blank text
var ErrEmptyTraining = errors.New("please enter training text")

func newTrainCmd() *cobra.Command {
	var (
		add   string
		label string
		save  bool
	)

	cmd := &cobra.Command{
		Use:   "train",
		Short: "Show the training corpus or add an example to it",
		Long: `Shows the size of the training corpus and of both polarity sets.

With --add the example is appended and the model is retrained on the full
corpus. --save writes the updated corpus back to the --corpus file.

Examples:
  polarity train
  polarity train --corpus reviews.yaml --add "Superb service" --label positive --save`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := AppFromContext(cmd.Context())
			if err != nil {
				return err
			}

			summary := reporter.TrainingSummary{Source: sourceName(app.Config)}

			if cmd.Flags().Changed("add") {
				txt := strings.TrimSpace(add)
				if txt == "" {
					return ErrEmptyTraining
				}
				l, err := classifier.ParseLabel(label)
				if err != nil {
					return err
				}

				app.Corpus.Append(txt, l)
				app.Classifier.AddExample(txt, l)
				summary.Added = txt
			}

			if save {
				if app.Config.Corpus == "" {
					return fmt.Errorf("--save requires --corpus")
				}
				if err := corpus.Save(app.Config.Corpus, app.Corpus); err != nil {
					return err
				}
				summary.SavedTo = app.Config.Corpus
				app.Logger.WithField("path", app.Config.Corpus).Debug("corpus saved")
			}

			summary.Examples = app.Corpus.Len()
			summary.Positive = app.Corpus.Count(classifier.Positive)
			summary.Negative = app.Corpus.Count(classifier.Negative)
			summary.PositiveWords = len(app.Classifier.PositiveWords())
			summary.NegativeWords = len(app.Classifier.NegativeWords())

			return app.Reporter().ReportTraining(summary)
		},
	}

	cmd.Flags().StringVar(&add, "add", "", "Text of a new training example")
	cmd.Flags().StringVarP(&label, "label", "l", "positive", "Label of the new example (positive, negative)")
	cmd.Flags().BoolVar(&save, "save", false, "Write the updated corpus back to the --corpus file")
	return cmd
}
