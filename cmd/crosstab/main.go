package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"context"

	"crosstab/adapters/chart"
	"crosstab/adapters/console"
	"crosstab/adapters/excel"
	"crosstab/adapters/heatmap"
	"crosstab/adapters/loader"
	"crosstab/adapters/report"
	"crosstab/adapters/stats"
	"crosstab/app"
	"crosstab/internal"
	"crosstab/internal/config"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	rootCmd := &cobra.Command{
		Use:   "crosstab",
		Short: "Pairwise association analysis for categorical survey data",
	}

	rootCmd.AddCommand(
		newAnalyzeCmd(),
		newWatchCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// commonFlags registers the flags shared by analyze and watch; flags
// override environment values, which override the defaults.
func commonFlags(cmd *cobra.Command, cfg *config.Config) {
	cmd.Flags().StringVar(&cfg.InputDir, "input", cfg.InputDir, "Directory with survey files (*.csv, *.xlsx)")
	cmd.Flags().StringVar(&cfg.OutputDir, "output", cfg.OutputDir, "Directory for analysis artifacts")
	cmd.Flags().Float64Var(&cfg.Alpha, "alpha", cfg.Alpha, "Significance level for adjusted p-values")
	cmd.Flags().StringVar(&cfg.FallbackLabel, "fallback", cfg.FallbackLabel, "Label substituted for empty answers")
	cmd.Flags().IntVar(&cfg.Workers, "workers", cfg.Workers, "Parallel dataset workers")
	cmd.Flags().IntVar(&cfg.TopPairs, "top", cfg.TopPairs, "Pairs shown in the top-associations chart")
	cmd.Flags().BoolVar(&cfg.Quiet, "quiet", cfg.Quiet, "Suppress per-dataset console output")
}

func newAnalyzeCmd() *cobra.Command {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze every survey file in the input directory",
		Long: `Run the full pairwise association analysis for each survey file:
contingency tables, chi-square tests with Benjamini-Hochberg correction,
effect sizes, heatmaps, workbooks, charts, and reports.

Example: crosstab analyze --input csv --output output --alpha 0.05`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}
			pipeline, presenter, logger := buildPipeline(cfg)
			runner := app.NewBatchRunner(pipeline, presenter, cfg.Workers, logger)
			_, err := runner.Run(cmd.Context(), cfg.InputDir)
			return err
		},
	}
	commonFlags(cmd, cfg)
	return cmd
}

func newWatchCmd() *cobra.Command {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch the input directory and analyze files as they change",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}
			pipeline, presenter, logger := buildPipeline(cfg)
			watcher := app.NewWatchService(pipeline, presenter, logger)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			if err := watcher.Watch(ctx, cfg.InputDir); err != nil && err != context.Canceled {
				return err
			}
			return nil
		},
	}
	commonFlags(cmd, cfg)
	return cmd
}

// buildPipeline wires the adapters into the pipeline service
func buildPipeline(cfg *config.Config) (*app.PipelineService, *console.Presenter, *internal.Logger) {
	logger := internal.NewDefaultLogger()
	pipeline := app.NewPipelineService(
		loader.NewDatasetReader(),
		stats.NewChiSquareEngine(),
		stats.NewBHCorrector(),
		stats.NewQuestionProfiler(),
		heatmap.NewRenderer(),
		chart.NewTopAssociationsRenderer(),
		excel.NewWorkbookWriter(),
		excel.NewSummaryWriter(),
		report.NewWriter(),
		cfg,
		logger,
	)
	return pipeline, console.NewPresenter(cfg.Quiet), logger
}
