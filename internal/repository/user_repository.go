package repository

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/medman/medman/internal/model"
)

// UserRepo wraps the 'users' collection.
type UserRepo struct{ C *mongo.Collection }

func NewUserRepo(db *mongo.Database) *UserRepo {
	return &UserRepo{C: db.Collection("users")}
}

// EnsureIndexes declares the unique index on username. Uniqueness lives in
// the schema so two concurrent registrations cannot both slip past the
// pre-insert check.
func (r *UserRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.C.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// FindByUsername fetches a user by normalized username. A missing document
// is not an error: the result is (nil, nil).
func (r *UserRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	username = strings.TrimSpace(username)
	var u model.User
	err := r.C.FindOne(ctx, bson.M{"username": username}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Insert stores a new user and returns the assigned id. Duplicate usernames
// surface as ErrUsernameExists.
func (r *UserRepo) Insert(ctx context.Context, u *model.User) (primitive.ObjectID, error) {
	res, err := r.C.InsertOne(ctx, u)
	if err != nil {
		if isDuplicateKey(err) {
			return primitive.NilObjectID, ErrUsernameExists
		}
		return primitive.NilObjectID, err
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("inserted id is not an ObjectID")
	}
	return id, nil
}
