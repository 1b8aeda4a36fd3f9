package vitals

import (
	"fmt"
	"time"

	"github.com/tealeg/xlsx/v3"
)

const (
	ReportSheetNameSummary = "Summary"
	ReportSheetNameScores  = "Daily Scores"
)

// Report is a spreadsheet export of the insights of a single user
type Report struct {
	userId      string
	days        int
	series      *Series
	baseline    *BaselineSummary
	createdTime time.Time
}

func NewReport(userId string, days int, series *Series, baseline *BaselineSummary) Report {
	return Report{
		userId:      userId,
		days:        days,
		series:      series,
		baseline:    baseline,
		createdTime: time.Now(),
	}
}

func (r Report) Generate() (*xlsx.File, error) {
	if r.series == nil {
		return nil, fmt.Errorf("unable to generate report without a series")
	}

	report := xlsx.NewFile()

	components := []func(report *xlsx.File) error{
		r.addSummarySheet,
		r.addScoresSheet,
	}
	for _, fn := range components {
		if err := fn(report); err != nil {
			return nil, err
		}
	}

	return report, nil
}

func (r Report) addSummarySheet(report *xlsx.File) error {
	sh, err := report.AddSheet(ReportSheetNameSummary)
	if err != nil {
		return err
	}

	sh.AddRow().AddCell().SetValue("VITALS INSIGHTS")
	addKeyValue(sh, "User", r.userId)
	addKeyValue(sh, "Range (days)", r.days)
	addKeyValue(sh, "Generated", r.createdTime.Format(time.RFC3339))

	if r.baseline == nil {
		return nil
	}

	sh.AddRow()
	sh.AddRow().AddCell().SetValue("BASELINE")
	addOptional(sh, "Average systolic", r.baseline.AvgBpSys)
	addOptional(sh, "Average diastolic", r.baseline.AvgBpDia)
	addOptional(sh, "Average glucose", r.baseline.AvgGlucose)
	addOptional(sh, "Last systolic", r.baseline.LastBpSys)
	addOptional(sh, "Last diastolic", r.baseline.LastBpDia)
	addOptional(sh, "Heart rate", r.baseline.HeartRate)
	addOptional(sh, "ECG risk score", r.baseline.EcgRiskScore)
	if r.baseline.LastMeasuredAt != nil {
		addKeyValue(sh, "Last measured", r.baseline.LastMeasuredAt.Format(time.RFC3339))
	}

	return nil
}

func (r Report) addScoresSheet(report *xlsx.File) error {
	sh, err := report.AddSheet(ReportSheetNameScores)
	if err != nil {
		return err
	}

	header := sh.AddRow()
	header.AddCell().SetValue("Day")
	header.AddCell().SetValue("Glucose")
	header.AddCell().SetValue("Blood Pressure")
	header.AddCell().SetValue("Cardiac")

	for i, label := range r.series.Labels {
		row := sh.AddRow()
		row.AddCell().SetValue(label)
		row.AddCell().SetValue(r.series.Glucose[i])
		row.AddCell().SetValue(r.series.BloodPressure[i])
		row.AddCell().SetValue(r.series.Cardiac[i])
	}

	return nil
}

func addKeyValue(sh *xlsx.Sheet, key string, value any) {
	row := sh.AddRow()
	row.AddCell().SetValue(key)
	row.AddCell().SetValue(value)
}

func addOptional[T int64 | float64](sh *xlsx.Sheet, key string, value *T) {
	if value == nil {
		return
	}
	addKeyValue(sh, key, *value)
}
