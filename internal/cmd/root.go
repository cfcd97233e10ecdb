package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pthm/polarity/internal/version"
)

// RootCmd is the command tree executed by main
var RootCmd = NewRootCmd()

// NewRootCmd builds a fresh command tree
func NewRootCmd() *cobra.Command {
	var configFile string

	root := &cobra.Command{
		Use:   "polarity",
		Short: "Polarity word-count sentiment analyzer",
		Long: `polarity classifies short text as positive, negative or neutral.

It learns the most frequent words of each label from a small labeled
corpus and scores new text by counting how many of its words fall in
each set. Run without a subcommand in a terminal to open the analyzer form.`,
		Version:       version.Short(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" || cmd.Name() == "help" {
				return nil
			}
			app, err := NewApp(cmd, configFile)
			if err != nil {
				return err
			}
			cmd.SetContext(WithApp(cmd.Context(), app))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := AppFromContext(cmd.Context())
			if err != nil {
				return err
			}
			if !app.UI.IsInteractive() {
				return cmd.Help()
			}
			return app.UI.RunForm(app.Classifier)
		},
	}

	flags := root.PersistentFlags()
	flags.BoolP("verbose", "v", false, "Enable verbose output")
	flags.StringP("format", "f", "terminal", "Output format (terminal, json)")
	flags.StringP("corpus", "c", "", "Training corpus file (.yaml, .yml or .json); built-in corpus when empty")
	flags.StringVar(&configFile, "config", "", "Config file (default ./polarity.yaml or ~/.config/polarity/polarity.yaml)")

	root.AddCommand(
		newAnalyzeCmd(),
		newFormCmd(),
		newTrainCmd(),
		newWordsCmd(),
		newVersionCmd(),
	)

	return root
}
