package vitals_test

import (
	"time"
	_ "time/tzdata"

	mapset "github.com/deckarep/golang-set/v2"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/carelink/vitals/pointer"
	"github.com/carelink/vitals/records"
	recordsTest "github.com/carelink/vitals/records/test"
	"github.com/carelink/vitals/vitals"
)

var _ = Describe("Insights", func() {
	var userId primitive.ObjectID
	var now time.Time

	at := func(day, hour int) time.Time {
		return time.Date(2024, time.March, day, hour, 0, 0, 0, now.Location())
	}
	glucose := func(g int64, measuredAt time.Time) *records.Measurement {
		m := recordsTest.Glucose(userId, g, measuredAt)
		return &m
	}
	bloodPressure := func(sys, dia int64, measuredAt time.Time) *records.Measurement {
		m := recordsTest.BloodPressure(userId, sys, dia, measuredAt)
		return &m
	}

	BeforeEach(func() {
		userId = primitive.NewObjectID()
		now = time.Date(2024, time.March, 10, 15, 30, 0, 0, time.UTC)
	})

	Describe("ParseRange", func() {
		DescribeTable("returns the number of days",
			func(token string, expected int) {
				Expect(vitals.ParseRange(token)).To(Equal(expected))
			},
			Entry("week", "7d", 7),
			Entry("month", "30d", 30),
			Entry("year", "365d", 365),
			Entry("numeric month", "30", 30),
			Entry("upper case", "365D", 365),
			Entry("empty", "", 7),
			Entry("unsupported", "90d", 7),
			Entry("garbage", "yesterday", 7),
		)
	})

	Describe("Window", func() {
		It("starts at midnight of the first day and ends at the end of today", func() {
			start, end := vitals.Window(now, 7)
			Expect(start).To(Equal(time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC)))
			Expect(end).To(Equal(time.Date(2024, time.March, 10, 23, 59, 59, 999999999, time.UTC)))
		})

		It("covers only today for a single day", func() {
			start, end := vitals.Window(now, 1)
			Expect(start).To(Equal(time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)))
			Expect(end.Sub(start)).To(Equal(24*time.Hour - time.Nanosecond))
		})

		Context("when daylight saving time starts at midnight", func() {
			var santiago *time.Location

			BeforeEach(func() {
				var err error
				santiago, err = time.LoadLocation("America/Santiago")
				Expect(err).ToNot(HaveOccurred())
			})

			It("starts the day when the clocks have moved forward", func() {
				now = time.Date(2025, time.September, 7, 12, 0, 0, 0, santiago)

				start, end := vitals.Window(now, 1)
				Expect(start).To(BeTemporally("==", time.Date(2025, time.September, 7, 4, 0, 0, 0, time.UTC)))
				Expect(end).To(BeTemporally("==", time.Date(2025, time.September, 8, 3, 0, 0, 0, time.UTC).Add(-time.Nanosecond)))
			})

			It("ends the previous day at the start of the transition", func() {
				now = time.Date(2025, time.September, 6, 12, 0, 0, 0, santiago)

				start, end := vitals.Window(now, 1)
				Expect(start).To(BeTemporally("==", time.Date(2025, time.September, 6, 4, 0, 0, 0, time.UTC)))
				Expect(end).To(BeTemporally("==", time.Date(2025, time.September, 7, 4, 0, 0, 0, time.UTC).Add(-time.Nanosecond)))
			})
		})
	})

	Describe("Aggregate", func() {
		It("returns a zero series when there are no measurements", func() {
			series := vitals.Aggregate(nil, now, 7)

			Expect(series.Max).To(Equal(100))
			Expect(series.Labels).To(Equal([]string{"03/04", "03/05", "03/06", "03/07", "03/08", "03/09", "03/10"}))
			Expect(series.Glucose).To(Equal([]int{0, 0, 0, 0, 0, 0, 0}))
			Expect(series.BloodPressure).To(Equal([]int{0, 0, 0, 0, 0, 0, 0}))
			Expect(series.Cardiac).To(Equal([]int{0, 0, 0, 0, 0, 0, 0}))
		})

		It("produces unique chronological labels for a year", func() {
			series := vitals.Aggregate(nil, now, 365)

			Expect(series.Labels).To(HaveLen(365))
			Expect(series.Glucose).To(HaveLen(365))
			Expect(series.BloodPressure).To(HaveLen(365))
			Expect(series.Cardiac).To(HaveLen(365))
			Expect(mapset.NewSet(series.Labels...).Cardinality()).To(Equal(365))
			Expect(series.Labels[0]).To(Equal("03/12"))
			Expect(series.Labels[364]).To(Equal("03/10"))
		})

		It("scores the latest glucose of each day", func() {
			measurements := []*records.Measurement{
				glucose(110, at(8, 9)),
				glucose(300, at(9, 20)),
				glucose(150, at(9, 8)),
			}

			series := vitals.Aggregate(measurements, now, 7)
			Expect(series.Glucose).To(Equal([]int{0, 0, 0, 0, 100, 0, 0}))
		})

		It("keeps the later of two glucose values regardless of the input order", func() {
			measurements := []*records.Measurement{
				glucose(100, at(10, 11)),
				glucose(130, at(10, 7)),
			}

			series := vitals.Aggregate(measurements, now, 7)
			Expect(series.Glucose[6]).To(Equal(90))
		})

		It("keeps the first of two glucose values measured at the same time", func() {
			measurements := []*records.Measurement{
				glucose(100, at(10, 9)),
				glucose(130, at(10, 9)),
			}

			series := vitals.Aggregate(measurements, now, 7)
			Expect(series.Glucose[6]).To(Equal(90))
		})

		It("folds every metric independently", func() {
			morning := glucose(110, at(10, 8))
			morning.HeartRate = pointer.FromAny(int64(70))
			measurements := []*records.Measurement{
				morning,
				bloodPressure(120, 80, at(10, 9)),
			}

			series := vitals.Aggregate(measurements, now, 7)
			Expect(series.Glucose[6]).To(Equal(100))
			Expect(series.BloodPressure[6]).To(Equal(100))
			Expect(series.Cardiac[6]).To(Equal(0))
		})

		It("doesn't let a later measurement without the metric overwrite the day", func() {
			measurements := []*records.Measurement{
				bloodPressure(130, 85, at(10, 8)),
				glucose(95, at(10, 12)),
			}

			series := vitals.Aggregate(measurements, now, 7)
			Expect(series.BloodPressure[6]).To(Equal(88))
			Expect(series.Glucose[6]).To(Equal(85))
		})

		It("ignores incomplete blood pressure pairs", func() {
			partial := &records.Measurement{UserId: userId, BpSys: pointer.FromAny(int64(120)), MeasuredAt: at(10, 12)}
			measurements := []*records.Measurement{
				bloodPressure(140, 90, at(10, 8)),
				partial,
			}

			series := vitals.Aggregate(measurements, now, 7)
			Expect(series.BloodPressure[6]).To(Equal(76))
		})

		It("ignores measurements outside of the window", func() {
			measurements := []*records.Measurement{
				glucose(110, at(3, 23)),
				glucose(110, at(11, 1)),
			}

			series := vitals.Aggregate(measurements, now, 7)
			Expect(series.Glucose).To(Equal([]int{0, 0, 0, 0, 0, 0, 0}))
		})

		It("assigns measurements to days in the location of the clock", func() {
			now = time.Date(2024, time.March, 10, 12, 0, 0, 0, time.FixedZone("UTC-5", -5*60*60))
			measurements := []*records.Measurement{
				glucose(110, time.Date(2024, time.March, 10, 2, 0, 0, 0, time.UTC)),
			}

			series := vitals.Aggregate(measurements, now, 7)
			Expect(series.Glucose).To(Equal([]int{0, 0, 0, 0, 0, 100, 0}))
		})

		It("scores cardiac values", func() {
			abnormal := &records.Measurement{UserId: userId, EcgAbnormal: pointer.FromAny(true), MeasuredAt: at(8, 10)}
			risky := &records.Measurement{UserId: userId, EcgRiskScore: pointer.FromAny(0.25), EcgAbnormal: pointer.FromAny(true), MeasuredAt: at(9, 10)}
			heartRate := &records.Measurement{UserId: userId, HeartRate: pointer.FromAny(int64(65)), MeasuredAt: at(10, 10)}

			series := vitals.Aggregate([]*records.Measurement{abnormal, risky, heartRate}, now, 7)
			Expect(series.Cardiac).To(Equal([]int{0, 0, 0, 0, 20, 75, 0}))
		})

		Context("when daylight saving time starts at midnight", func() {
			It("labels and scores the day of the transition", func() {
				santiago, err := time.LoadLocation("America/Santiago")
				Expect(err).ToNot(HaveOccurred())
				now = time.Date(2025, time.September, 10, 12, 0, 0, 0, santiago)
				measurements := []*records.Measurement{
					glucose(110, time.Date(2025, time.September, 7, 12, 0, 0, 0, santiago)),
				}

				series := vitals.Aggregate(measurements, now, 7)
				Expect(series.Labels).To(Equal([]string{"09/04", "09/05", "09/06", "09/07", "09/08", "09/09", "09/10"}))
				Expect(series.Glucose).To(Equal([]int{0, 0, 0, 100, 0, 0, 0}))
			})

			It("produces unique labels for a year", func() {
				saoPaulo, err := time.LoadLocation("America/Sao_Paulo")
				Expect(err).ToNot(HaveOccurred())
				now = time.Date(2019, time.March, 1, 12, 0, 0, 0, saoPaulo)

				series := vitals.Aggregate(nil, now, 365)
				Expect(mapset.NewSet(series.Labels...).Cardinality()).To(Equal(365))
				Expect(series.Labels).To(ContainElement("11/04"))
				Expect(series.Labels[364]).To(Equal("03/01"))
			})
		})

		It("defaults to a week for non positive ranges", func() {
			series := vitals.Aggregate(nil, now, 0)
			Expect(series.Labels).To(HaveLen(7))
		})
	})

	Describe("Scores", func() {
		DescribeTable("GlucoseScore",
			func(g int64, expected int) {
				Expect(vitals.GlucoseScore(g)).To(Equal(expected))
			},
			Entry("on target", int64(110), 100),
			Entry("below target", int64(80), 70),
			Entry("far above target", int64(215), 0),
			Entry("far below target", int64(5), 0),
		)

		DescribeTable("BloodPressureScore",
			func(sys, dia int64, expected int) {
				Expect(vitals.BloodPressureScore(sys, dia)).To(Equal(expected))
			},
			Entry("on target", int64(120), int64(80), 100),
			Entry("rounds half up", int64(125), int64(80), 97),
			Entry("both off target", int64(130), int64(85), 88),
			Entry("clamped", int64(220), int64(140), 0),
			Entry("severe hypertension", int64(200), int64(120), 4),
		)

		DescribeTable("CardiacScore",
			func(risk *float64, abnormal *bool, expected int) {
				Expect(vitals.CardiacScore(risk, abnormal)).To(Equal(expected))
			},
			Entry("no risk", pointer.FromAny(0.0), nil, 100),
			Entry("full risk", pointer.FromAny(1.0), nil, 0),
			Entry("risk takes precedence over the abnormal flag", pointer.FromAny(0.1), pointer.FromAny(true), 90),
			Entry("abnormal without risk", nil, pointer.FromAny(true), 20),
			Entry("normal without risk", nil, pointer.FromAny(false), 0),
			Entry("nothing", nil, nil, 0),
		)
	})
})
