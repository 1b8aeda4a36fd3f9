package records

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/carelink/vitals/errors"
)

var ErrNotFound = fmt.Errorf("measurement %w", errors.NotFound)

//go:generate go tool mockgen -source=./records.go -destination=./test/mock_records.go -package test

// Repository is the append-only measurement log. Measurements are never
// updated once they are created.
type Repository interface {
	Create(ctx context.Context, measurement Measurement) (*Measurement, error)
	FindMostRecentByUser(ctx context.Context, userId primitive.ObjectID) (*Measurement, error)
	FindByUserAndTimeRange(ctx context.Context, userId primitive.ObjectID, start, end time.Time) ([]*Measurement, error)
	AverageBloodPressureByUser(ctx context.Context, userId primitive.ObjectID) (*BloodPressureAverage, error)
	AverageGlucoseByUser(ctx context.Context, userId primitive.ObjectID) (*float64, error)
}

type Measurement struct {
	Id     *primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserId primitive.ObjectID  `json:"-" bson:"userId"`

	BpSys     *int64 `json:"bpSys,omitempty" bson:"bpSys,omitempty"`
	BpDia     *int64 `json:"bpDia,omitempty" bson:"bpDia,omitempty"`
	Glucose   *int64 `json:"glucose,omitempty" bson:"glucose,omitempty"`
	IsFasting *bool  `json:"isFasting,omitempty" bson:"isFasting,omitempty"`

	// current value minus the personal average at the time of ingestion
	BpSysDiffFromAvg   *float64 `json:"bpSysDiffFromAvg,omitempty" bson:"bpSysDiffFromAvg,omitempty"`
	BpDiaDiffFromAvg   *float64 `json:"bpDiaDiffFromAvg,omitempty" bson:"bpDiaDiffFromAvg,omitempty"`
	GlucoseDiffFromAvg *float64 `json:"glucoseDiffFromAvg,omitempty" bson:"glucoseDiffFromAvg,omitempty"`

	BpAbnormal      *bool `json:"bpAbnormal,omitempty" bson:"bpAbnormal,omitempty"`
	GlucoseAbnormal *bool `json:"glucoseAbnormal,omitempty" bson:"glucoseAbnormal,omitempty"`
	OverallAbnormal bool  `json:"overallAbnormal" bson:"overallAbnormal"`

	HeartRate      *int64   `json:"heartRate,omitempty" bson:"heartRate,omitempty"`
	EcgRiskScore   *float64 `json:"ecgRiskScore,omitempty" bson:"ecgRiskScore,omitempty"`
	EcgAbnormal    *bool    `json:"ecgAbnormal,omitempty" bson:"ecgAbnormal,omitempty"`
	EcgAnomalyType *string  `json:"ecgAnomalyType,omitempty" bson:"ecgAnomalyType,omitempty"`

	AnomalyType   *string `json:"anomalyType,omitempty" bson:"anomalyType,omitempty"`
	AnomalyReason *string `json:"anomalyReason,omitempty" bson:"anomalyReason,omitempty"`

	MeasuredAt time.Time `json:"measuredAt" bson:"measuredAt"`
}

func (m Measurement) HasBloodPressure() bool {
	return m.BpSys != nil && m.BpDia != nil
}

func (m Measurement) HasGlucose() bool {
	return m.Glucose != nil
}

func (m Measurement) HasCardiac() bool {
	return m.HeartRate != nil || m.EcgRiskScore != nil || m.IsEcgAbnormal()
}

func (m Measurement) IsEcgAbnormal() bool {
	return m.EcgAbnormal != nil && *m.EcgAbnormal
}

type BloodPressureAverage struct {
	Systolic  float64 `bson:"avgSys"`
	Diastolic float64 `bson:"avgDia"`
}
