package cmd

import (
	"github.com/spf13/cobra"
)

func newFormCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "form",
		Short: "Open the interactive analyzer form",
		Long: `Opens a terminal form with a text box, an Analyze button and a
panel for adding training examples.

Controls:
  tab/shift+tab  Move between fields
  ctrl+s         Analyze the text box
  enter          Press the focused button
  space          Toggle the training label
  esc            Quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := AppFromContext(cmd.Context())
			if err != nil {
				return err
			}
			return app.UI.RunForm(app.Classifier)
		},
	}
}
