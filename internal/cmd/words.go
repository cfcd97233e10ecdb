package cmd

import (
	"github.com/spf13/cobra"
)

func newWordsCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "words",
		Short: "List the learned polarity words",
		Long: `Lists both polarity sets in rank order with their frequency in the
training corpus. Words of equal frequency keep the order they first
appeared in.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := AppFromContext(cmd.Context())
			if err != nil {
				return err
			}

			pos := app.Classifier.PositiveWords()
			neg := app.Classifier.NegativeWords()
			if limit > 0 {
				pos = pos[:min(limit, len(pos))]
				neg = neg[:min(limit, len(neg))]
			}

			return app.Reporter().ReportWords(pos, neg)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Show at most n words per label (0 = all)")
	return cmd
}
