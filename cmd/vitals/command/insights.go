package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/carelink/vitals/vitals"
)

var insightsParams = struct {
	UserId string
	Range  string
	Xlsx   string
}{}

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Print the daily scores of a user",
	Long:  "The insights command prints the daily glucose, blood pressure and cardiac scores of a user and optionally exports them to a spreadsheet",
	RunE:  func(cmd *cobra.Command, args []string) error { return Run(printInsights) },
}

func init() {
	insightsCmd.Flags().StringVarP(&insightsParams.UserId, "user", "u", "", "User id")
	insightsCmd.Flags().StringVarP(&insightsParams.Range, "range", "r", "7d", "Range of the insights (7d, 30d or 365d)")
	insightsCmd.Flags().StringVar(&insightsParams.Xlsx, "xlsx", "", "Path of the spreadsheet to export the insights to")
	_ = insightsCmd.MarkFlagRequired("user")

	rootCmd.AddCommand(insightsCmd)
}

func printInsights(service vitals.Service, logger *zap.SugaredLogger) error {
	ctx := context.Background()

	series, err := service.GetInsights(ctx, insightsParams.UserId, insightsParams.Range)
	if err != nil {
		return err
	}

	fmt.Printf("%-8s %8s %8s %8s\n", "DAY", "GLUCOSE", "BP", "CARDIAC")
	for i, label := range series.Labels {
		fmt.Printf("%-8s %8d %8d %8d\n", label, series.Glucose[i], series.BloodPressure[i], series.Cardiac[i])
	}

	if insightsParams.Xlsx == "" {
		return nil
	}

	summary, err := service.GetBaselineSummary(ctx, insightsParams.UserId)
	if err != nil && !errors.Is(err, vitals.ErrEmptySummary) {
		logger.Warnw("exporting insights without a baseline", "userId", insightsParams.UserId, zap.Error(err))
	}

	days := vitals.ParseRange(insightsParams.Range)
	report, err := vitals.NewReport(insightsParams.UserId, days, series, summary).Generate()
	if err != nil {
		return fmt.Errorf("unable to generate report: %w", err)
	}
	if err := report.Save(insightsParams.Xlsx); err != nil {
		return fmt.Errorf("unable to save report: %w", err)
	}

	fmt.Printf("Saved report to %s\n", insightsParams.Xlsx)
	return nil
}
