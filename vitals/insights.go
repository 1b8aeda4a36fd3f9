package vitals

import (
	"math"
	"strings"
	"time"

	"github.com/carelink/vitals/records"
)

const (
	ScoreMax = 100

	DefaultRangeDays = 7

	TargetGlucose   = 110
	TargetSystolic  = 120
	TargetDiastolic = 80

	systolicWeight  = 0.7
	diastolicWeight = 1.0

	// Score of an abnormal ECG without a risk score
	EcgAbnormalScore = 20

	labelLayout = "01/02"
)

var ranges = map[string]int{
	"7d":   7,
	"7":    7,
	"30d":  30,
	"30":   30,
	"365d": 365,
	"365":  365,
}

// Series holds one score per calendar day of the window, oldest first
type Series struct {
	Labels        []string `json:"labels"`
	Glucose       []int    `json:"glucose"`
	BloodPressure []int    `json:"bp"`
	Cardiac       []int    `json:"ecg"`
	Max           int      `json:"max"`
}

// ParseRange returns the number of days of an insights range token.
// Unrecognized tokens fall back to DefaultRangeDays.
func ParseRange(token string) int {
	if days, ok := ranges[strings.ToLower(strings.TrimSpace(token))]; ok {
		return days
	}
	return DefaultRangeDays
}

// Window returns the inclusive bounds of the last days calendar days ending
// today in the location of now.
func Window(now time.Time, days int) (time.Time, time.Time) {
	year, month, day := now.Date()
	start := startOfDay(year, month, day-(days-1), now.Location())
	end := startOfDay(year, month, day+1, now.Location()).Add(-time.Nanosecond)
	return start, end
}

// Aggregate folds the measurements into daily scores. Each metric keeps the
// most recent eligible measurement of a day independently of the others, so
// a day can score glucose from one measurement and blood pressure from another.
func Aggregate(measurements []*records.Measurement, now time.Time, days int) *Series {
	if days <= 0 {
		days = DefaultRangeDays
	}

	year, month, today := now.Date()
	loc := now.Location()

	glucose := latestPerDay(measurements, loc, (*records.Measurement).HasGlucose)
	bloodPressure := latestPerDay(measurements, loc, (*records.Measurement).HasBloodPressure)
	cardiac := latestPerDay(measurements, loc, (*records.Measurement).HasCardiac)

	series := &Series{
		Labels:        make([]string, days),
		Glucose:       make([]int, days),
		BloodPressure: make([]int, days),
		Cardiac:       make([]int, days),
		Max:           ScoreMax,
	}
	for i := 0; i < days; i++ {
		// noon is never skipped by a daylight saving transition
		day := time.Date(year, month, today-(days-1)+i, 12, 0, 0, 0, loc)
		key := dayKey(day)

		series.Labels[i] = day.Format(labelLayout)
		if m, ok := glucose[key]; ok {
			series.Glucose[i] = GlucoseScore(*m.Glucose)
		}
		if m, ok := bloodPressure[key]; ok {
			series.BloodPressure[i] = BloodPressureScore(*m.BpSys, *m.BpDia)
		}
		if m, ok := cardiac[key]; ok {
			series.Cardiac[i] = CardiacScore(m.EcgRiskScore, m.EcgAbnormal)
		}
	}

	return series
}

func GlucoseScore(glucose int64) int {
	return clamp(Round(ScoreMax - math.Abs(float64(glucose-TargetGlucose))))
}

func BloodPressureScore(systolic, diastolic int64) int {
	penalty := systolicWeight*math.Abs(float64(systolic-TargetSystolic)) +
		diastolicWeight*math.Abs(float64(diastolic-TargetDiastolic))
	return clamp(Round(ScoreMax - penalty))
}

func CardiacScore(riskScore *float64, abnormal *bool) int {
	if riskScore != nil {
		return clamp(Round((1 - *riskScore) * ScoreMax))
	}
	if isTrue(abnormal) {
		return EcgAbnormalScore
	}
	return 0
}

func latestPerDay(measurements []*records.Measurement, loc *time.Location, eligible func(*records.Measurement) bool) map[string]*records.Measurement {
	latest := make(map[string]*records.Measurement)
	for _, m := range measurements {
		if m == nil || !eligible(m) {
			continue
		}
		key := dayKey(m.MeasuredAt.In(loc))
		if current, ok := latest[key]; !ok || m.MeasuredAt.After(current.MeasuredAt) {
			latest[key] = m
		}
	}
	return latest
}

// startOfDay returns the first instant of the calendar day in loc. Where
// daylight saving time starts at midnight the day begins when the gap ends.
func startOfDay(year int, month time.Month, day int, loc *time.Location) time.Time {
	midnight := time.Date(year, month, day, 0, 0, 0, 0, loc)
	noon := time.Date(year, month, day, 12, 0, 0, 0, loc)
	if midnight.Day() != noon.Day() {
		_, midnightOffset := midnight.Zone()
		_, noonOffset := noon.Zone()
		midnight = midnight.Add(time.Duration(noonOffset-midnightOffset) * time.Second)
	}
	return midnight
}

func dayKey(t time.Time) string {
	return t.Format(time.DateOnly)
}

func clamp(v int64) int {
	if v < 0 {
		return 0
	}
	if v > ScoreMax {
		return ScoreMax
	}
	return int(v)
}
