package service

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/carelink/vitals/baselines"
	"github.com/carelink/vitals/pointer"
	"github.com/carelink/vitals/vitals"
)

// updateBaseline recomputes the averages over the full history of the user for
// every metric group present in the readings and persists the summary.
// A missing current summary creates one.
func (s *service) updateBaseline(ctx context.Context, userId primitive.ObjectID, current *baselines.Summary, readings vitals.Readings) (*baselines.Summary, error) {
	summary := baselines.Summary{UserId: userId}
	if current != nil {
		summary = *current
	}

	// Keyed on the systolic value alone, so an incomplete pair still replaces
	// the last blood pressure of the summary.
	if readings.BpSys != nil {
		average, err := s.records.AverageBloodPressureByUser(ctx, userId)
		if err != nil {
			return nil, fmt.Errorf("unable to compute average blood pressure: %w", err)
		}
		if average != nil {
			summary.AvgBpSys = pointer.FromAny(vitals.Round(average.Systolic))
			summary.AvgBpDia = pointer.FromAny(vitals.Round(average.Diastolic))
		}
		summary.LastBpSys = pointer.Clone(readings.BpSys)
		summary.LastBpDia = pointer.Clone(readings.BpDia)
	}

	if readings.Glucose != nil {
		average, err := s.records.AverageGlucoseByUser(ctx, userId)
		if err != nil {
			return nil, fmt.Errorf("unable to compute average glucose: %w", err)
		}
		if average != nil {
			summary.AvgGlucose = pointer.FromAny(vitals.Round(*average))
		}
	}

	return s.baselines.Upsert(ctx, summary)
}
