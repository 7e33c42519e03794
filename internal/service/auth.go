// Package service contains the workflows behind the HTTP handlers. This file
// implements AuthService, which handles registration and login: credential
// checks, password hashing and access token issuance.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/medman/medman/internal/apperr"
	"github.com/medman/medman/internal/model"
	"github.com/medman/medman/internal/repository"
	"github.com/medman/medman/internal/utils"
)

// UserStore is the slice of the users repository the auth workflow needs.
type UserStore interface {
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	Insert(ctx context.Context, u *model.User) (primitive.ObjectID, error)
}

// AuthResult bundles the signed token and the user id it is bound to.
type AuthResult struct {
	Token  string
	UserID string
}

// AuthService provides authentication-related operations:
// - Register: create a user and issue a first token
// - Login: verify credentials and issue a token
type AuthService struct {
	Users        UserStore
	JWTSecret    string
	AccessTTLMin int
	BcryptCost   int
}

// NewAuthService constructs an AuthService from a user store and the token
// and hashing settings.
func NewAuthService(users UserStore, jwtSecret string, accessTTLMin, bcryptCost int) *AuthService {
	return &AuthService{
		Users:        users,
		JWTSecret:    jwtSecret,
		AccessTTLMin: accessTTLMin,
		BcryptCost:   bcryptCost,
	}
}

// Register creates a new user with the given username and password and
// returns a token for the assigned id. A taken username is a validation
// failure whether it is caught by the lookup or by the unique index during
// the insert.
func (s *AuthService) Register(ctx context.Context, username, password string) (*AuthResult, error) {
	existing, err := s.Users.FindByUsername(ctx, username)
	if err != nil {
		return nil, apperr.WrapStore(err)
	}
	if existing != nil {
		return nil, apperr.NewValidation("Username already exists")
	}

	hash, err := utils.HashPassword(password, s.BcryptCost)
	if err != nil {
		return nil, apperr.WrapHashing(err)
	}

	u := &model.User{
		Username:     username,
		Email:        fmt.Sprintf("%s@example.com", username),
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	id, err := s.Users.Insert(ctx, u)
	if err != nil {
		if errors.Is(err, repository.ErrUsernameExists) {
			return nil, apperr.NewValidation("Username already exists")
		}
		return nil, apperr.WrapStore(err)
	}

	access, err := utils.NewAccessToken(s.JWTSecret, id.Hex(), s.AccessTTLMin)
	if err != nil {
		return nil, apperr.WrapAuth(err)
	}
	return &AuthResult{Token: access.Token, UserID: id.Hex()}, nil
}

// Login verifies the password against the stored hash and issues a token.
// An unknown username and a wrong password produce the identical error so
// responses cannot be used to enumerate accounts.
func (s *AuthService) Login(ctx context.Context, username, password string) (*AuthResult, error) {
	u, err := s.Users.FindByUsername(ctx, username)
	if err != nil {
		return nil, apperr.WrapStore(err)
	}
	if u == nil {
		return nil, apperr.NewAuth("Invalid credentials")
	}

	ok, err := utils.VerifyPassword(u.PasswordHash, password)
	if err != nil {
		return nil, apperr.WrapHashing(err)
	}
	if !ok {
		return nil, apperr.NewAuth("Invalid credentials")
	}

	access, err := utils.NewAccessToken(s.JWTSecret, u.ID.Hex(), s.AccessTTLMin)
	if err != nil {
		return nil, apperr.WrapAuth(err)
	}
	return &AuthResult{Token: access.Token, UserID: u.ID.Hex()}, nil
}
