package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"eating-helper/config"
	"eating-helper/di"
	"eating-helper/models"
	"eating-helper/util"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	configPath string
	verbose    bool
	chartOut   string
)

func newLogger() (*zap.Logger, error) {
	zapCfg := zap.NewProductionConfig()
	if verbose {
		zapCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return zapCfg.Build()
}

// withContainer loads config, builds the container and runs fn against it.
func withContainer(ctx context.Context, fn func(*di.Container) error) error {
	logger, err := newLogger()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}

	container, err := di.NewContainer(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer container.Close()

	return fn(container)
}

var rootCmd = &cobra.Command{
	Use:           "eating-helper",
	Short:         "Weekly nutrition dashboard",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the nutrition dashboard over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return withContainer(ctx, func(c *di.Container) error {
			if c.Config.RefreshInterval > 0 {
				jobCtx, cancel := context.WithCancel(ctx)
				done := c.NutritionRefresherService.StartPeriodicJob(jobCtx, c.Config.RefreshInterval)
				defer func() {
					cancel()
					<-done
				}()
			}
			return c.EatingHelperHttpServer.Start(ctx)
		})
	},
}

var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Write the weekly nutrition chart to an HTML file",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withContainer(cmd.Context(), func(c *di.Container) error {
			days, err := c.DashboardService.WeeklyNutrition(cmd.Context())
			if err != nil {
				return err
			}
			if err := util.PlotWeeklyChart(chartOut, days); err != nil {
				return err
			}
			c.Logger.Info("weekly chart written", zap.String("path", chartOut))
			return nil
		})
	},
}

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print the weekly totals and named rows",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withContainer(cmd.Context(), func(c *di.Container) error {
			dashboard, err := c.DashboardService.BuildDashboard(cmd.Context())
			if err != nil {
				return err
			}
			return printSummary(cmd.OutOrStdout(), dashboard)
		})
	},
}

func printSummary(out io.Writer, d *models.Dashboard) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Total calories\t%.0f\n", d.TotalCalories)
	fmt.Fprintf(tw, "Average daily calories\t%.0f\n\n", d.AverageDailyCalories)
	fmt.Fprintln(tw, "NAME\tCALORIES\tPROTEIN\tCARBOHYDRATES\tFAT")
	for _, row := range d.Rows {
		fmt.Fprintf(tw, "%s\t%.0f\t%.0f\t%.0f\t%.0f\n", row.Name, row.Calories, row.Protein, row.Carbohydrates, row.Fat)
	}
	return tw.Flush()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	plotCmd.Flags().StringVarP(&chartOut, "out", "o", "weekly_nutrition.html", "output HTML file")

	rootCmd.AddCommand(serveCmd, plotCmd, summaryCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
