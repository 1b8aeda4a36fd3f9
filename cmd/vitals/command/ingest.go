package command

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/carelink/vitals/pointer"
	"github.com/carelink/vitals/vitals"
)

var ingestParams = struct {
	UserId         string
	BpSys          int64
	BpDia          int64
	Glucose        int64
	IsFasting      bool
	HeartRate      int64
	EcgRiskScore   float64
	EcgAbnormal    bool
	EcgAnomalyType string
}{}

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Record a measurement for a user",
	Long:  "The ingest command classifies and records a single measurement. Only the readings passed as flags are recorded.",
	RunE: func(cmd *cobra.Command, args []string) error {
		readings := readingsFromFlags(cmd.Flags())
		return Run(func(service vitals.Service) error {
			return ingest(service, readings)
		})
	},
}

func init() {
	flags := ingestCmd.Flags()
	flags.StringVarP(&ingestParams.UserId, "user", "u", "", "User id")
	flags.Int64Var(&ingestParams.BpSys, "bp-sys", 0, "Systolic blood pressure (mmHg)")
	flags.Int64Var(&ingestParams.BpDia, "bp-dia", 0, "Diastolic blood pressure (mmHg)")
	flags.Int64Var(&ingestParams.Glucose, "glucose", 0, "Blood glucose (mg/dL)")
	flags.BoolVar(&ingestParams.IsFasting, "fasting", false, "Whether the glucose was measured fasting")
	flags.Int64Var(&ingestParams.HeartRate, "heart-rate", 0, "Heart rate (bpm)")
	flags.Float64Var(&ingestParams.EcgRiskScore, "ecg-risk", 0, "ECG risk score between 0 and 1")
	flags.BoolVar(&ingestParams.EcgAbnormal, "ecg-abnormal", false, "Whether the ECG is abnormal")
	flags.StringVar(&ingestParams.EcgAnomalyType, "ecg-type", "", "ECG anomaly type")
	_ = ingestCmd.MarkFlagRequired("user")

	rootCmd.AddCommand(ingestCmd)
}

func readingsFromFlags(flags *pflag.FlagSet) vitals.Readings {
	readings := vitals.Readings{}
	if flags.Changed("bp-sys") {
		readings.BpSys = pointer.FromAny(ingestParams.BpSys)
	}
	if flags.Changed("bp-dia") {
		readings.BpDia = pointer.FromAny(ingestParams.BpDia)
	}
	if flags.Changed("glucose") {
		readings.Glucose = pointer.FromAny(ingestParams.Glucose)
	}
	if flags.Changed("fasting") {
		readings.IsFasting = pointer.FromAny(ingestParams.IsFasting)
	}
	if flags.Changed("heart-rate") {
		readings.HeartRate = pointer.FromAny(ingestParams.HeartRate)
	}
	if flags.Changed("ecg-risk") {
		readings.EcgRiskScore = pointer.FromAny(ingestParams.EcgRiskScore)
	}
	if flags.Changed("ecg-abnormal") {
		readings.EcgAbnormal = pointer.FromAny(ingestParams.EcgAbnormal)
	}
	if flags.Changed("ecg-type") {
		readings.EcgAnomalyType = pointer.FromAny(ingestParams.EcgAnomalyType)
	}
	return readings
}

func ingest(service vitals.Service, readings vitals.Readings) error {
	measurement, err := service.Ingest(context.Background(), ingestParams.UserId, readings)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(measurement, "", "  ")
	if err != nil {
		return err
	}

	fmt.Println(string(out))
	return nil
}
