package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/zpeteman/content-repurposer/cmd/ccraft/cmd/export"
	"github.com/zpeteman/content-repurposer/cmd/ccraft/cmd/generate"
	"github.com/zpeteman/content-repurposer/cmd/ccraft/cmd/run"
	"github.com/zpeteman/content-repurposer/cmd/ccraft/cmd/serve"
	"github.com/zpeteman/content-repurposer/cmd/ccraft/cmd/version"
)

var Verbose bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ccraft",
	Short: "Turn a video or audio source into social media posts",
	Long: `ccraft takes a video/audio URL or a local file, transcribes the audio
and rewrites the transcript into posts for Instagram, X, LinkedIn and
Facebook in the language you pick.
- Run "ccraft run" for the interactive form
- Run "ccraft generate" for scripted, flag-driven runs
- Run metadata is kept in a local sqlite history.`,
	TraverseChildren: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(run.Cmd)
	rootCmd.AddCommand(generate.Cmd)
	rootCmd.AddCommand(serve.Cmd)
	rootCmd.AddCommand(export.Cmd)
	rootCmd.AddCommand(version.Cmd)

	rootCmd.PersistentFlags().BoolVarP(&Verbose, "verbose", "V", false, "verbose output")
}
