package export

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zpeteman/content-repurposer/internal/app/export"
	"github.com/zpeteman/content-repurposer/internal/app/repository/sqlite"
	"github.com/zpeteman/content-repurposer/internal/config"
)

var (
	outputPath string
	limit      int
)

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export run history to an xlsx file",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		dao, err := sqlite.NewSQLiteRunDAO(cfg.Paths.HistoryDB)
		if err != nil {
			return err
		}
		defer dao.Close()

		records, err := dao.RecentRuns(context.Background(), limit)
		if err != nil {
			return err
		}

		if err := export.ToExcel(records, outputPath); err != nil {
			return err
		}

		fmt.Printf("exported %d runs to %s\n", len(records), outputPath)
		return nil
	},
}

func init() {
	Cmd.Flags().StringVarP(&outputPath, "output", "o", "runs.xlsx", "output file path")
	Cmd.Flags().IntVarP(&limit, "limit", "n", 100, "number of recent runs to export")
}
