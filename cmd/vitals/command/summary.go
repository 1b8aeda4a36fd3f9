package command

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/carelink/vitals/vitals"
)

var summaryParams = struct {
	UserId string
}{}

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print the baseline summary of a user",
	RunE:  func(cmd *cobra.Command, args []string) error { return Run(printSummary) },
}

func init() {
	summaryCmd.Flags().StringVarP(&summaryParams.UserId, "user", "u", "", "User id")
	_ = summaryCmd.MarkFlagRequired("user")

	rootCmd.AddCommand(summaryCmd)
}

func printSummary(service vitals.Service) error {
	summary, err := service.GetBaselineSummary(context.Background(), summaryParams.UserId)
	if errors.Is(err, vitals.ErrEmptySummary) {
		fmt.Println("The user has no measurements")
		return nil
	} else if err != nil {
		return err
	}

	out, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return err
	}

	fmt.Println(string(out))
	return nil
}
