package run

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zpeteman/content-repurposer/internal/app"
	"github.com/zpeteman/content-repurposer/internal/app/model"
	"github.com/zpeteman/content-repurposer/internal/app/pipeline"
	"github.com/zpeteman/content-repurposer/internal/app/progress"
	"github.com/zpeteman/content-repurposer/internal/app/source"
	"github.com/zpeteman/content-repurposer/internal/app/tui"
	"github.com/zpeteman/content-repurposer/internal/config"
)

// Cmd represents the interactive run command
var Cmd = &cobra.Command{
	Use:   "run",
	Short: "Interactively pick a source, language and post counts, then generate",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		logger, err := app.NewLogger(cfg.Server.Environment)
		if err != nil {
			return err
		}
		defer logger.Sync()

		application, cleanup, err := app.InitializeApp(cfg, logger)
		if err != nil {
			return err
		}
		defer cleanup()

		opts, err := tui.RunWizard()
		if err != nil {
			return err
		}
		if !opts.Confirmed {
			fmt.Println("cancelled")
			return nil
		}

		src := model.FileSource(opts.Source)
		if source.IsHTTPURL(opts.Source) {
			src = model.URLSource(opts.Source)
		}

		reporter := progress.NewStageReporter(progress.Config{
			Enabled: progress.ShouldShow(false),
			Writer:  os.Stderr,
		})
		defer reporter.Close()

		result, err := application.Pipeline.Run(context.Background(), pipeline.Request{
			Source:     src,
			Language:   opts.Language,
			PostCounts: opts.PostCounts,
		}, reporter)
		if err != nil {
			return err
		}

		fmt.Println()
		fmt.Println(tui.FormatTranscriptSummary(result.Transcript))
		fmt.Println()
		fmt.Print(tui.FormatResults(result.Content))
		return nil
	},
}
