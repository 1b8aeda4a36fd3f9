package outbox

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type repository struct {
	collection *mongo.Collection
	logger     *zap.SugaredLogger
}

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

func (r *repository) Initialize(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "eventType", Value: 1},
				{Key: "createdTime", Value: 1},
			},
			Options: options.Index().SetName("EventTypeCreatedTime"),
		},
		{
			Keys:    bson.D{{Key: "payload.userId", Value: 1}},
			Options: options.Index().SetName("PayloadUserId"),
		},
	})
	return err
}

func (r *repository) Create(ctx context.Context, event Event) error {
	res, err := r.collection.InsertOne(ctx, event)
	if err != nil {
		return fmt.Errorf("error inserting outbox event: %w", err)
	}
	r.logger.Debugw("created outbox event", "eventType", event.EventType, "id", res.InsertedID)
	return nil
}
