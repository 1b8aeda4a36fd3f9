package baselines

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

	"github.com/carelink/vitals/store"
)

const (
	CollectionName = "baselines"
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
			},
			Options: options.Index().
				SetUnique(true).
				SetName("UniqueUserBaseline"),
		},
	})
	return err
}

func (r *repository) FindByUser(ctx context.Context, userId primitive.ObjectID) (*Summary, error) {
	summary := &Summary{}
	err := r.collection.FindOne(ctx, bson.M{"userId": userId}).Decode(summary)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, fmt.Errorf("error finding baseline: %w", err)
	}

	return summary, nil
}

// Upsert replaces the baseline of the user, creating it when it doesn't exist.
// Concurrent first time upserts for the same user may both attempt an insert,
// the loser gets a duplicate key error and is retried as a replacement.
func (r *repository) Upsert(ctx context.Context, summary Summary) (*Summary, error) {
	summary.Id = nil
	summary.UpdatedTime = time.Now().UTC().Truncate(time.Millisecond)

	selector := bson.M{"userId": summary.UserId}
	opts := options.Replace().SetUpsert(true)

	_, err := r.collection.ReplaceOne(ctx, selector, summary, opts)
	if err != nil && store.IsDuplicateKeyError(err) {
		r.logger.Debugw("retrying baseline upsert after duplicate key error", "userId", summary.UserId.Hex())
		_, err = r.collection.ReplaceOne(ctx, selector, summary, opts)
	}
	if err != nil {
		return nil, fmt.Errorf("error upserting baseline: %w", err)
	}

	return r.FindByUser(ctx, summary.UserId)
}
