package vitals_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/carelink/vitals/pointer"
	"github.com/carelink/vitals/vitals"
)

var _ = Describe("Report", func() {
	var series *vitals.Series

	BeforeEach(func() {
		series = &vitals.Series{
			Labels:        []string{"03/09", "03/10"},
			Glucose:       []int{100, 85},
			BloodPressure: []int{0, 88},
			Cardiac:       []int{75, 0},
			Max:           vitals.ScoreMax,
		}
	})

	It("adds a row for every day", func() {
		report, err := vitals.NewReport("patient-1", 2, series, nil).Generate()
		Expect(err).ToNot(HaveOccurred())
		Expect(report.Sheets).To(HaveLen(2))

		sh, ok := report.Sheet[vitals.ReportSheetNameScores]
		Expect(ok).To(BeTrue())
		Expect(sh.MaxRow).To(Equal(3))

		expected := [][]string{
			{"Day", "Glucose", "Blood Pressure", "Cardiac"},
			{"03/09", "100", "0", "75"},
			{"03/10", "85", "88", "0"},
		}
		for r, values := range expected {
			for c, value := range values {
				cell, err := sh.Cell(r, c)
				Expect(err).ToNot(HaveOccurred())
				Expect(cell.Value).To(Equal(value))
			}
		}
	})

	It("includes the baseline in the summary", func() {
		measuredAt := time.Date(2024, time.March, 10, 8, 0, 0, 0, time.UTC)
		baseline := &vitals.BaselineSummary{
			AvgBpSys:       pointer.FromAny(int64(121)),
			AvgBpDia:       pointer.FromAny(int64(79)),
			LastMeasuredAt: &measuredAt,
		}

		report, err := vitals.NewReport("patient-1", 2, series, baseline).Generate()
		Expect(err).ToNot(HaveOccurred())

		sh, ok := report.Sheet[vitals.ReportSheetNameSummary]
		Expect(ok).To(BeTrue())

		cell, err := sh.Cell(1, 1)
		Expect(err).ToNot(HaveOccurred())
		Expect(cell.Value).To(Equal("patient-1"))

		cell, err = sh.Cell(6, 0)
		Expect(err).ToNot(HaveOccurred())
		Expect(cell.Value).To(Equal("Average systolic"))

		cell, err = sh.Cell(6, 1)
		Expect(err).ToNot(HaveOccurred())
		Expect(cell.Value).To(Equal("121"))
	})

	It("fails without a series", func() {
		_, err := vitals.NewReport("patient-1", 7, nil, nil).Generate()
		Expect(err).To(HaveOccurred())
	})
})
