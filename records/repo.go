package records

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	CollectionName = "measurements"
)

func NewRepository(db *mongo.Database, logger *zap.SugaredLogger, lifecycle fx.Lifecycle) (Repository, error) {
	repo := &repository{
		collection: db.Collection(CollectionName),
		logger:     logger,
	}

	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return repo.Initialize(ctx)
		},
	})

	return repo, nil
}

type repository struct {
	collection *mongo.Collection
	logger     *zap.SugaredLogger
}

func (r *repository) Initialize(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "userId", Value: 1},
				{Key: "measuredAt", Value: 1},
			},
			Options: options.Index().
				SetName("UserMeasuredAt"),
		},
	})
	return err
}

func (r *repository) Create(ctx context.Context, measurement Measurement) (*Measurement, error) {
	id := primitive.NewObjectID()
	measurement.Id = &id
	// mongo keeps millisecond precision only
	measurement.MeasuredAt = time.Now().UTC().Truncate(time.Millisecond)

	if _, err := r.collection.InsertOne(ctx, measurement); err != nil {
		return nil, fmt.Errorf("error creating measurement: %w", err)
	}
	r.logger.Debugw("created measurement", "userId", measurement.UserId.Hex(), "measurementId", id.Hex())

	return &measurement, nil
}

func (r *repository) FindMostRecentByUser(ctx context.Context, userId primitive.ObjectID) (*Measurement, error) {
	opts := options.FindOne().
		SetSort(bson.D{{Key: "measuredAt", Value: -1}, {Key: "_id", Value: -1}})

	measurement := &Measurement{}
	err := r.collection.FindOne(ctx, bson.M{"userId": userId}, opts).Decode(measurement)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, fmt.Errorf("error finding most recent measurement: %w", err)
	}

	return measurement, nil
}

func (r *repository) FindByUserAndTimeRange(ctx context.Context, userId primitive.ObjectID, start, end time.Time) ([]*Measurement, error) {
	selector := bson.M{
		"userId": userId,
		"measuredAt": bson.M{
			"$gte": start,
			"$lte": end,
		},
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "measuredAt", Value: 1}, {Key: "_id", Value: 1}})

	cursor, err := r.collection.Find(ctx, selector, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing measurements: %w", err)
	}

	measurements := make([]*Measurement, 0)
	if err = cursor.All(ctx, &measurements); err != nil {
		return nil, fmt.Errorf("error decoding measurements: %w", err)
	}

	return measurements, nil
}

func (r *repository) AverageBloodPressureByUser(ctx context.Context, userId primitive.ObjectID) (*BloodPressureAverage, error) {
	pipeline := []bson.M{
		{"$match": bson.M{
			"userId": userId,
			"bpSys":  bson.M{"$ne": nil},
			"bpDia":  bson.M{"$ne": nil},
		}},
		{"$group": bson.M{
			"_id":    nil,
			"avgSys": bson.M{"$avg": "$bpSys"},
			"avgDia": bson.M{"$avg": "$bpDia"},
		}},
	}

	var result []BloodPressureAverage
	if err := r.aggregate(ctx, pipeline, &result); err != nil {
		return nil, fmt.Errorf("error computing average blood pressure: %w", err)
	}
	if len(result) == 0 {
		return nil, nil
	}

	return &result[0], nil
}

func (r *repository) AverageGlucoseByUser(ctx context.Context, userId primitive.ObjectID) (*float64, error) {
	pipeline := []bson.M{
		{"$match": bson.M{
			"userId":  userId,
			"glucose": bson.M{"$ne": nil},
		}},
		{"$group": bson.M{
			"_id":        nil,
			"avgGlucose": bson.M{"$avg": "$glucose"},
		}},
	}

	var result []struct {
		AvgGlucose float64 `bson:"avgGlucose"`
	}
	if err := r.aggregate(ctx, pipeline, &result); err != nil {
		return nil, fmt.Errorf("error computing average glucose: %w", err)
	}
	if len(result) == 0 {
		return nil, nil
	}

	return &result[0].AvgGlucose, nil
}

func (r *repository) aggregate(ctx context.Context, pipeline []bson.M, result interface{}) error {
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return err
	}
	return cursor.All(ctx, result)
}
