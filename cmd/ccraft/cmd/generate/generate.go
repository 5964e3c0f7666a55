package generate

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

var (
	sourceArg string
	language  string

	instagramCount int
	xCount         int
	linkedinCount  int
	facebookCount  int
)

// Cmd represents the non-interactive generate command
var Cmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate posts from a source without the interactive form",
	Example: `  ccraft generate -s https://youtu.be/abc -l english --instagram 2 --x 1
  ccraft generate -s ./talk.mp4 -l spanish --linkedin 3`,
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

		src := model.FileSource(sourceArg)
		if source.IsHTTPURL(sourceArg) {
			src = model.URLSource(sourceArg)
		}

		reporter := progress.NewStageReporter(progress.Config{
			Enabled: progress.ShouldShow(false),
			Writer:  os.Stderr,
		})
		defer reporter.Close()

		result, err := application.Pipeline.Run(context.Background(), pipeline.Request{
			Source:   src,
			Language: language,
			PostCounts: model.PostCounts{
				model.PlatformInstagram: instagramCount,
				model.PlatformX:         xCount,
				model.PlatformLinkedIn:  linkedinCount,
				model.PlatformFacebook:  facebookCount,
			},
		}, reporter)
		if err != nil {
			return err
		}

		fmt.Println()
		fmt.Print(tui.FormatResults(result.Content))
		return nil
	},
}

func init() {
	Cmd.Flags().StringVarP(&sourceArg, "source", "s", "", "media URL or local file path (required)")
	Cmd.Flags().StringVarP(&language, "language", "l", "english", "output language")
	Cmd.Flags().IntVar(&instagramCount, "instagram", 0, "posts for instagram (0-5)")
	Cmd.Flags().IntVar(&xCount, "x", 0, "posts for x (0-5)")
	Cmd.Flags().IntVar(&linkedinCount, "linkedin", 0, "posts for linkedin (0-5)")
	Cmd.Flags().IntVar(&facebookCount, "facebook", 0, "posts for facebook (0-5)")
	Cmd.MarkFlagRequired("source")
}
