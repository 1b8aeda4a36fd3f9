package baselines

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/carelink/vitals/errors"
)

var ErrNotFound = fmt.Errorf("baseline %w", errors.NotFound)

//go:generate go tool mockgen -source=./baselines.go -destination=./test/mock_baselines.go -package test

type Repository interface {
	FindByUser(ctx context.Context, userId primitive.ObjectID) (*Summary, error)
	Upsert(ctx context.Context, summary Summary) (*Summary, error)
}

// Summary is the personal baseline of a user. There is at most one summary
// per user.
type Summary struct {
	Id     *primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	UserId primitive.ObjectID  `json:"-" bson:"userId"`

	AvgBpSys   *int64 `json:"avgBpSys,omitempty" bson:"avgBpSys,omitempty"`
	AvgBpDia   *int64 `json:"avgBpDia,omitempty" bson:"avgBpDia,omitempty"`
	AvgGlucose *int64 `json:"avgGlucose,omitempty" bson:"avgGlucose,omitempty"`

	LastBpSys *int64 `json:"lastBpSys,omitempty" bson:"lastBpSys,omitempty"`
	LastBpDia *int64 `json:"lastBpDia,omitempty" bson:"lastBpDia,omitempty"`

	UpdatedTime time.Time `json:"updatedTime" bson:"updatedTime"`
}

func (s Summary) HasBloodPressureAverage() bool {
	return s.AvgBpSys != nil && s.AvgBpDia != nil
}

func (s Summary) HasGlucoseAverage() bool {
	return s.AvgGlucose != nil
}
