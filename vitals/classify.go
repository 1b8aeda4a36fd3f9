package vitals

import (
	"math"

	"github.com/carelink/vitals/baselines"
	"github.com/carelink/vitals/pointer"
	"github.com/carelink/vitals/records"
)

const (
	AnomalyHighBloodPressure = "HIGH_BP"
	AnomalyLowBloodPressure  = "LOW_BP"
	AnomalyHighGlucose       = "HIGH_GLUCOSE"
	AnomalyLowGlucose        = "LOW_GLUCOSE"
	AnomalyEcgAbnormal       = "ECG_ABNORMAL"
)

const (
	HighSystolicThreshold  = 140
	HighDiastolicThreshold = 90
	LowSystolicThreshold   = 90
	LowDiastolicThreshold  = 60
	HighGlucoseThreshold   = 200
	LowGlucoseThreshold    = 70
)

var anomalyReasons = map[string]string{
	AnomalyHighBloodPressure: "blood pressure above hypertension threshold",
	AnomalyLowBloodPressure:  "blood pressure below hypotension threshold",
	AnomalyHighGlucose:       "glucose above upper threshold",
	AnomalyLowGlucose:        "glucose below lower threshold",
	AnomalyEcgAbnormal:       "abnormal ECG detected",
}

func AnomalyReason(anomalyType string) string {
	return anomalyReasons[anomalyType]
}

// Classifier evaluates one metric group of the readings and records the result
// on the measurement. The baseline is nil for users without one.
type Classifier func(readings Readings, baseline *baselines.Summary, measurement *records.Measurement)

// The order is significant: the anomaly type of a measurement is set by the
// first classifier that finds an abnormal value.
var classifiers = []Classifier{
	ClassifyBloodPressure,
	ClassifyGlucose,
	ClassifyCardiac,
}

// Classify builds an unsaved measurement from the readings
func Classify(readings Readings, baseline *baselines.Summary) records.Measurement {
	measurement := records.Measurement{
		IsFasting: pointer.Clone(readings.IsFasting),
	}
	for _, classify := range classifiers {
		classify(readings, baseline, &measurement)
	}

	measurement.OverallAbnormal = isTrue(measurement.BpAbnormal) ||
		isTrue(measurement.GlucoseAbnormal) ||
		isTrue(measurement.EcgAbnormal)

	return measurement
}

func ClassifyBloodPressure(readings Readings, baseline *baselines.Summary, measurement *records.Measurement) {
	if !readings.HasBloodPressure() {
		return
	}

	sys, dia := *readings.BpSys, *readings.BpDia
	measurement.BpSys = &sys
	measurement.BpDia = &dia

	if baseline != nil && baseline.HasBloodPressureAverage() {
		measurement.BpSysDiffFromAvg = diff(sys, *baseline.AvgBpSys)
		measurement.BpDiaDiffFromAvg = diff(dia, *baseline.AvgBpDia)
	}

	abnormal := true
	switch {
	case sys >= HighSystolicThreshold || dia >= HighDiastolicThreshold:
		setAnomaly(measurement, AnomalyHighBloodPressure)
	case sys < LowSystolicThreshold || dia < LowDiastolicThreshold:
		setAnomaly(measurement, AnomalyLowBloodPressure)
	default:
		abnormal = false
	}
	measurement.BpAbnormal = &abnormal
}

func ClassifyGlucose(readings Readings, baseline *baselines.Summary, measurement *records.Measurement) {
	if readings.Glucose == nil {
		return
	}

	glucose := *readings.Glucose
	measurement.Glucose = pointer.Clone(readings.Glucose)

	if baseline != nil && baseline.HasGlucoseAverage() {
		measurement.GlucoseDiffFromAvg = diff(glucose, *baseline.AvgGlucose)
	}

	abnormal := true
	switch {
	case glucose >= HighGlucoseThreshold:
		setAnomaly(measurement, AnomalyHighGlucose)
	case glucose <= LowGlucoseThreshold:
		setAnomaly(measurement, AnomalyLowGlucose)
	default:
		abnormal = false
	}
	measurement.GlucoseAbnormal = &abnormal
}

// ClassifyCardiac copies the cardiac values verbatim. The abnormal verdict is
// computed upstream together with the risk score.
func ClassifyCardiac(readings Readings, _ *baselines.Summary, measurement *records.Measurement) {
	measurement.HeartRate = pointer.Clone(readings.HeartRate)
	measurement.EcgRiskScore = pointer.Clone(readings.EcgRiskScore)
	measurement.EcgAbnormal = pointer.Clone(readings.EcgAbnormal)
	measurement.EcgAnomalyType = pointer.Clone(readings.EcgAnomalyType)

	if isTrue(readings.EcgAbnormal) {
		setAnomaly(measurement, AnomalyEcgAbnormal)
	}
}

func setAnomaly(measurement *records.Measurement, anomalyType string) {
	if measurement.AnomalyType != nil {
		return
	}
	reason := AnomalyReason(anomalyType)
	measurement.AnomalyType = &anomalyType
	measurement.AnomalyReason = &reason
}

func diff(value, average int64) *float64 {
	d := float64(value - average)
	return &d
}

func isTrue(b *bool) bool {
	return b != nil && *b
}

// Round rounds half up, so 119.5 becomes 120 and -0.5 becomes 0
func Round(v float64) int64 {
	return int64(math.Floor(v + 0.5))
}
