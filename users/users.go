package users

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/carelink/vitals/errors"
)

const (
	RolePatient  Role = "PATIENT"
	RoleGuardian Role = "GUARDIAN"
)

var (
	ErrNotFound  = fmt.Errorf("user %w", errors.NotFound)
	ErrDuplicate = fmt.Errorf("user already exists: %w", errors.BadRequest)
)

type Role string

//go:generate go tool mockgen -source=./users.go -destination=./test/mock_users.go -package test

// Directory resolves the user facing identifier to the internal key which owns
// the measurements and the baseline of the user.
type Directory interface {
	Resolve(ctx context.Context, userId string) (*User, error)
}

type Repository interface {
	Directory
	Create(ctx context.Context, user User) (*User, error)
}

type User struct {
	Id          *primitive.ObjectID `bson:"_id,omitempty"`
	UserId      string              `bson:"userId"`
	Name        *string             `bson:"name,omitempty"`
	Role        Role                `bson:"role,omitempty"`
	CreatedTime time.Time           `bson:"createdTime"`
}
