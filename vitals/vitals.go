package vitals

import (
	"context"
	"fmt"
	"time"

	"github.com/carelink/vitals/baselines"
	"github.com/carelink/vitals/errors"
	"github.com/carelink/vitals/records"
)

var (
	ErrEmptySummary = fmt.Errorf("no baseline or measurements: %w", errors.NoChange)
)

//go:generate go tool mockgen -source=./vitals.go -destination=./test/mock_vitals.go -package test

type Service interface {
	// Ingest classifies the readings against the baseline of the user,
	// persists the resulting measurement and refreshes the baseline.
	Ingest(ctx context.Context, userId string, readings Readings) (*records.Measurement, error)
	// GetBaselineSummary returns ErrEmptySummary when the user has neither a
	// baseline nor any measurement.
	GetBaselineSummary(ctx context.Context, userId string) (*BaselineSummary, error)
	// GetInsights never fails for unknown users, it returns a zero series instead.
	GetInsights(ctx context.Context, userId string, rangeToken string) (*Series, error)
}

// Readings is a single submission of vitals. Every metric is optional.
type Readings struct {
	BpSys     *int64
	BpDia     *int64
	Glucose   *int64
	IsFasting *bool

	HeartRate      *int64
	EcgRiskScore   *float64
	EcgAbnormal    *bool
	EcgAnomalyType *string
}

func (r Readings) HasBloodPressure() bool {
	return r.BpSys != nil && r.BpDia != nil
}

// HasPartialBloodPressure is true when exactly one of systolic and diastolic is set.
// Such readings are not classified as blood pressure.
func (r Readings) HasPartialBloodPressure() bool {
	return (r.BpSys == nil) != (r.BpDia == nil)
}

type BaselineSummary struct {
	AvgBpSys   *int64 `json:"avgBpSys"`
	AvgBpDia   *int64 `json:"avgBpDia"`
	AvgGlucose *int64 `json:"avgGlucose"`
	LastBpSys  *int64 `json:"lastBpSys"`
	LastBpDia  *int64 `json:"lastBpDia"`

	HeartRate      *int64     `json:"heartRate"`
	EcgRiskScore   *float64   `json:"ecgRiskScore"`
	EcgAbnormal    *bool      `json:"ecgAbnormal"`
	EcgAnomalyType *string    `json:"ecgAnomalyType"`
	LastMeasuredAt *time.Time `json:"lastMeasuredAt"`
}

// NewBaselineSummary merges the averages of the baseline with the cardiac
// values of the most recent measurement. Either argument may be nil.
func NewBaselineSummary(summary *baselines.Summary, latest *records.Measurement) *BaselineSummary {
	result := &BaselineSummary{}
	if summary != nil {
		result.AvgBpSys = summary.AvgBpSys
		result.AvgBpDia = summary.AvgBpDia
		result.AvgGlucose = summary.AvgGlucose
		result.LastBpSys = summary.LastBpSys
		result.LastBpDia = summary.LastBpDia
	}
	if latest != nil {
		measuredAt := latest.MeasuredAt
		result.HeartRate = latest.HeartRate
		result.EcgRiskScore = latest.EcgRiskScore
		result.EcgAbnormal = latest.EcgAbnormal
		result.EcgAnomalyType = latest.EcgAnomalyType
		result.LastMeasuredAt = &measuredAt
	}
	return result
}
