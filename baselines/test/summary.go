package test

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/carelink/vitals/baselines"
	"github.com/carelink/vitals/pointer"
	"github.com/carelink/vitals/test"
)

func RandomSummary(userId primitive.ObjectID) baselines.Summary {
	return baselines.Summary{
		UserId:     userId,
		AvgBpSys:   pointer.FromAny(test.IntBetween(100, 130)),
		AvgBpDia:   pointer.FromAny(test.IntBetween(65, 85)),
		AvgGlucose: pointer.FromAny(test.IntBetween(80, 130)),
		LastBpSys:  pointer.FromAny(test.IntBetween(100, 130)),
		LastBpDia:  pointer.FromAny(test.IntBetween(65, 85)),
	}
}
