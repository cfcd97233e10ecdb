package cmd

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pthm/polarity/internal/classifier"
	"github.com/pthm/polarity/internal/config"
	"github.com/pthm/polarity/internal/corpus"
	"github.com/pthm/polarity/internal/logging"
	"github.com/pthm/polarity/internal/reporter"
	"github.com/pthm/polarity/internal/ui"
)

// BuiltinSource names the embedded corpus in summaries
const BuiltinSource = "built-in"

// App is the application context shared by all commands
type App struct {
	Config     *config.Config
	Logger     *log.Logger
	UI         *ui.UI
	Corpus     *corpus.Corpus
	Classifier *classifier.PolarityClassifier
}

// NewApp resolves configuration, loads the corpus and trains the model
func NewApp(cmd *cobra.Command, configFile string) (*App, error) {
	cfg, err := config.Load(cmd.Flags(), configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := logging.New(cmd.ErrOrStderr(), cfg.Verbose)

	c := corpus.Default()
	if cfg.Corpus != "" {
		c, err = corpus.Load(cfg.Corpus)
		if err != nil {
			return nil, fmt.Errorf("failed to load corpus: %w", err)
		}
	}
	logger.WithFields(log.Fields{
		"source":   sourceName(cfg),
		"examples": c.Len(),
	}).Debug("corpus loaded")

	model := classifier.NewPolarityClassifier(classifier.WithLogger(logger))
	model.Train(c.Examples)

	return &App{
		Config:     cfg,
		Logger:     logger,
		UI:         ui.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg.Format),
		Corpus:     c,
		Classifier: model,
	}, nil
}

// Reporter returns the reporter for the configured output format
func (a *App) Reporter() reporter.Reporter {
	if a.UI.IsJSON() {
		return reporter.NewJSONReporter(a.UI.Writer)
	}
	return reporter.NewTerminalReporter(a.UI.Writer)
}

func sourceName(cfg *config.Config) string {
	if cfg.Corpus == "" {
		return BuiltinSource
	}
	return cfg.Corpus
}

type contextKey string

const appKey contextKey = "app"

// WithApp stores app on ctx
func WithApp(ctx context.Context, app *App) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, appKey, app)
}

// AppFromContext retrieves the app stored by the root command
func AppFromContext(ctx context.Context) (*App, error) {
	if ctx == nil {
		return nil, errors.New("application not initialized")
	}
	app, ok := ctx.Value(appKey).(*App)
	if !ok || app == nil {
		return nil, errors.New("application not initialized")
	}
	return app, nil
}
