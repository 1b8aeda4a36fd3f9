package vitals_test

import (
	"github.com/mohae/deepcopy"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	. "github.com/onsi/gomega/gstruct"

	"github.com/carelink/vitals/baselines"
	"github.com/carelink/vitals/pointer"
	"github.com/carelink/vitals/vitals"
)

var _ = Describe("Classify", func() {
	bloodPressure := func(sys, dia int64) vitals.Readings {
		return vitals.Readings{BpSys: &sys, BpDia: &dia}
	}
	glucose := func(g int64) vitals.Readings {
		return vitals.Readings{Glucose: &g}
	}

	Describe("Blood pressure", func() {
		DescribeTable("sets the abnormal flag and the anomaly type",
			func(sys, dia int64, abnormal bool, anomalyType string) {
				measurement := vitals.Classify(bloodPressure(sys, dia), nil)

				Expect(measurement.BpSys).To(PointTo(Equal(sys)))
				Expect(measurement.BpDia).To(PointTo(Equal(dia)))
				Expect(measurement.BpAbnormal).To(PointTo(Equal(abnormal)))
				Expect(measurement.OverallAbnormal).To(Equal(abnormal))
				if anomalyType == "" {
					Expect(measurement.AnomalyType).To(BeNil())
					Expect(measurement.AnomalyReason).To(BeNil())
				} else {
					Expect(measurement.AnomalyType).To(PointTo(Equal(anomalyType)))
					Expect(measurement.AnomalyReason).To(PointTo(Equal(vitals.AnomalyReason(anomalyType))))
				}
			},
			Entry("hypertensive", int64(150), int64(95), true, vitals.AnomalyHighBloodPressure),
			Entry("systolic at the upper threshold", int64(140), int64(80), true, vitals.AnomalyHighBloodPressure),
			Entry("diastolic at the upper threshold", int64(120), int64(90), true, vitals.AnomalyHighBloodPressure),
			Entry("hypotensive", int64(85), int64(70), true, vitals.AnomalyLowBloodPressure),
			Entry("diastolic below the lower threshold", int64(110), int64(59), true, vitals.AnomalyLowBloodPressure),
			Entry("high takes precedence over low", int64(150), int64(50), true, vitals.AnomalyHighBloodPressure),
			Entry("at the lower thresholds", int64(90), int64(60), false, ""),
			Entry("normal", int64(120), int64(80), false, ""),
		)

		It("computes the difference from the baseline average", func() {
			baseline := &baselines.Summary{
				AvgBpSys: pointer.FromAny(int64(120)),
				AvgBpDia: pointer.FromAny(int64(80)),
			}

			measurement := vitals.Classify(bloodPressure(130, 75), baseline)
			Expect(measurement.BpSysDiffFromAvg).To(PointTo(Equal(10.0)))
			Expect(measurement.BpDiaDiffFromAvg).To(PointTo(Equal(-5.0)))
		})

		It("doesn't compute differences without a baseline average", func() {
			baseline := &baselines.Summary{
				AvgGlucose: pointer.FromAny(int64(100)),
			}

			measurement := vitals.Classify(bloodPressure(130, 75), baseline)
			Expect(measurement.BpSysDiffFromAvg).To(BeNil())
			Expect(measurement.BpDiaDiffFromAvg).To(BeNil())
		})

		It("ignores an incomplete pair", func() {
			readings := vitals.Readings{BpSys: pointer.FromAny(int64(180))}
			Expect(readings.HasPartialBloodPressure()).To(BeTrue())

			measurement := vitals.Classify(readings, nil)
			Expect(measurement.BpSys).To(BeNil())
			Expect(measurement.BpDia).To(BeNil())
			Expect(measurement.BpAbnormal).To(BeNil())
			Expect(measurement.AnomalyType).To(BeNil())
			Expect(measurement.OverallAbnormal).To(BeFalse())
		})
	})

	Describe("Glucose", func() {
		DescribeTable("sets the abnormal flag and the anomaly type",
			func(g int64, abnormal bool, anomalyType string) {
				measurement := vitals.Classify(glucose(g), nil)

				Expect(measurement.Glucose).To(PointTo(Equal(g)))
				Expect(measurement.GlucoseAbnormal).To(PointTo(Equal(abnormal)))
				Expect(measurement.OverallAbnormal).To(Equal(abnormal))
				if anomalyType == "" {
					Expect(measurement.AnomalyType).To(BeNil())
				} else {
					Expect(measurement.AnomalyType).To(PointTo(Equal(anomalyType)))
				}
			},
			Entry("at the upper threshold", int64(200), true, vitals.AnomalyHighGlucose),
			Entry("above the upper threshold", int64(320), true, vitals.AnomalyHighGlucose),
			Entry("at the lower threshold", int64(70), true, vitals.AnomalyLowGlucose),
			Entry("above the lower threshold", int64(71), false, ""),
			Entry("below the upper threshold", int64(199), false, ""),
		)

		It("computes the difference from the baseline average", func() {
			baseline := &baselines.Summary{AvgGlucose: pointer.FromAny(int64(100))}

			measurement := vitals.Classify(glucose(95), baseline)
			Expect(measurement.GlucoseDiffFromAvg).To(PointTo(Equal(-5.0)))
		})
	})

	Describe("Cardiac", func() {
		It("copies the cardiac values verbatim", func() {
			readings := vitals.Readings{
				HeartRate:      pointer.FromAny(int64(72)),
				EcgRiskScore:   pointer.FromAny(0.35),
				EcgAbnormal:    pointer.FromAny(false),
				EcgAnomalyType: pointer.FromAny("NONE"),
			}

			measurement := vitals.Classify(readings, nil)
			Expect(measurement).To(MatchFields(IgnoreExtras, Fields{
				"HeartRate":      PointTo(Equal(int64(72))),
				"EcgRiskScore":   PointTo(Equal(0.35)),
				"EcgAbnormal":    PointTo(BeFalse()),
				"EcgAnomalyType": PointTo(Equal("NONE")),
				"AnomalyType":    BeNil(),
			}))
			Expect(measurement.OverallAbnormal).To(BeFalse())
		})

		It("sets the ECG anomaly type when abnormal", func() {
			readings := vitals.Readings{
				EcgAbnormal:    pointer.FromAny(true),
				EcgAnomalyType: pointer.FromAny("AFIB"),
			}

			measurement := vitals.Classify(readings, nil)
			Expect(measurement.AnomalyType).To(PointTo(Equal(vitals.AnomalyEcgAbnormal)))
			Expect(measurement.AnomalyReason).To(PointTo(Equal("abnormal ECG detected")))
			Expect(measurement.EcgAnomalyType).To(PointTo(Equal("AFIB")))
			Expect(measurement.OverallAbnormal).To(BeTrue())
		})
	})

	Describe("Precedence", func() {
		It("keeps the blood pressure anomaly when glucose is abnormal too", func() {
			readings := bloodPressure(150, 95)
			readings.Glucose = pointer.FromAny(int64(250))

			measurement := vitals.Classify(readings, nil)
			Expect(measurement.AnomalyType).To(PointTo(Equal(vitals.AnomalyHighBloodPressure)))
			Expect(measurement.BpAbnormal).To(PointTo(BeTrue()))
			Expect(measurement.GlucoseAbnormal).To(PointTo(BeTrue()))
			Expect(measurement.OverallAbnormal).To(BeTrue())
		})

		It("keeps the glucose anomaly when the ECG is abnormal too", func() {
			readings := glucose(65)
			readings.EcgAbnormal = pointer.FromAny(true)

			measurement := vitals.Classify(readings, nil)
			Expect(measurement.AnomalyType).To(PointTo(Equal(vitals.AnomalyLowGlucose)))
			Expect(measurement.EcgAbnormal).To(PointTo(BeTrue()))
			Expect(measurement.OverallAbnormal).To(BeTrue())
		})

		It("reports an abnormal ECG when the other metrics are normal", func() {
			readings := bloodPressure(118, 76)
			readings.Glucose = pointer.FromAny(int64(100))
			readings.EcgAbnormal = pointer.FromAny(true)

			measurement := vitals.Classify(readings, nil)
			Expect(measurement.AnomalyType).To(PointTo(Equal(vitals.AnomalyEcgAbnormal)))
			Expect(measurement.BpAbnormal).To(PointTo(BeFalse()))
			Expect(measurement.GlucoseAbnormal).To(PointTo(BeFalse()))
			Expect(measurement.OverallAbnormal).To(BeTrue())
		})
	})

	It("copies the fasting flag", func() {
		readings := glucose(90)
		readings.IsFasting = pointer.FromAny(true)

		measurement := vitals.Classify(readings, nil)
		Expect(measurement.IsFasting).To(PointTo(BeTrue()))
	})

	It("doesn't modify the baseline", func() {
		baseline := &baselines.Summary{
			AvgBpSys:   pointer.FromAny(int64(121)),
			AvgBpDia:   pointer.FromAny(int64(79)),
			AvgGlucose: pointer.FromAny(int64(104)),
			LastBpSys:  pointer.FromAny(int64(125)),
			LastBpDia:  pointer.FromAny(int64(82)),
		}
		original := deepcopy.Copy(baseline).(*baselines.Summary)

		readings := bloodPressure(160, 100)
		readings.Glucose = pointer.FromAny(int64(240))
		vitals.Classify(readings, baseline)

		Expect(baseline).To(Equal(original))
	})

	It("does not alias the readings", func() {
		readings := bloodPressure(120, 80)
		readings.Glucose = pointer.FromAny(int64(100))

		measurement := vitals.Classify(readings, nil)
		*readings.BpSys = 200
		*readings.Glucose = 300

		Expect(measurement.BpSys).To(PointTo(Equal(int64(120))))
		Expect(measurement.Glucose).To(PointTo(Equal(int64(100))))
	})
})

var _ = Describe("Round", func() {
	DescribeTable("rounds half up",
		func(v float64, expected int64) {
			Expect(vitals.Round(v)).To(Equal(expected))
		},
		Entry("half", 119.5, int64(120)),
		Entry("below half", 119.49, int64(119)),
		Entry("negative half", -0.5, int64(0)),
		Entry("negative", -1.6, int64(-2)),
		Entry("whole", 80.0, int64(80)),
	)
})
