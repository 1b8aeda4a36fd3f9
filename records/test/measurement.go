package test

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/carelink/vitals/pointer"
	"github.com/carelink/vitals/records"
	"github.com/carelink/vitals/test"
)

func RandomMeasurement(userId primitive.ObjectID) records.Measurement {
	return records.Measurement{
		UserId:       userId,
		BpSys:        pointer.FromAny(test.IntBetween(95, 135)),
		BpDia:        pointer.FromAny(test.IntBetween(65, 85)),
		Glucose:      pointer.FromAny(test.IntBetween(75, 190)),
		HeartRate:    pointer.FromAny(test.IntBetween(55, 100)),
		EcgRiskScore: pointer.FromAny(test.Rand.Float64()),
		EcgAbnormal:  pointer.FromAny(false),
		MeasuredAt:   time.Now().UTC().Truncate(time.Millisecond),
	}
}

func BloodPressure(userId primitive.ObjectID, sys, dia int64, measuredAt time.Time) records.Measurement {
	return records.Measurement{
		UserId:     userId,
		BpSys:      &sys,
		BpDia:      &dia,
		MeasuredAt: measuredAt,
	}
}

func Glucose(userId primitive.ObjectID, glucose int64, measuredAt time.Time) records.Measurement {
	return records.Measurement{
		UserId:     userId,
		Glucose:    &glucose,
		MeasuredAt: measuredAt,
	}
}

func Cardiac(userId primitive.ObjectID, riskScore *float64, abnormal *bool, measuredAt time.Time) records.Measurement {
	return records.Measurement{
		UserId:       userId,
		EcgRiskScore: riskScore,
		EcgAbnormal:  abnormal,
		MeasuredAt:   measuredAt,
	}
}
