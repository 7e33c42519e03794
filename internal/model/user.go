package model

import (
    "time"

    "go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents an account document in the `users` collection.  The ID is
// assigned by the store at insert time, which is why it is omitted from BSON
// when empty.  PasswordHash holds the bcrypt hash; the plaintext password is
// never persisted and never serialized back to clients.
//
// Fields:
//  ID           – document id (users._id), assigned on insert.
//  Username     – unique login name.
//  Email        – contact address derived at registration.
//  PasswordHash – bcrypt hash of the password.
//  CreatedAt    – UTC timestamp of account creation.
type User struct {
    ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
    Username     string             `bson:"username" json:"username"`
    Email        string             `bson:"email" json:"email"`
    PasswordHash string             `bson:"password_hash" json:"-"`
    CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
}
