package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/carelink/vitals/store"
)

const (
	CollectionName = "users"
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
				SetName("UniqueUserId"),
		},
	})
	return err
}

func (r *repository) Resolve(ctx context.Context, userId string) (*User, error) {
	user := &User{}
	err := r.collection.FindOne(ctx, bson.M{"userId": userId}).Decode(user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, fmt.Errorf("error resolving user: %w", err)
	}

	return user, nil
}

func (r *repository) Create(ctx context.Context, user User) (*User, error) {
	user.Id = nil
	if user.Role == "" {
		user.Role = RolePatient
	}
	user.CreatedTime = time.Now()

	if _, err := r.collection.InsertOne(ctx, user); err != nil {
		if store.IsDuplicateKeyError(err) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	r.logger.Infow("created user", "userId", user.UserId)
	return r.Resolve(ctx, user.UserId)
}
