package model

import (
	"time"
)

// AppUser is one document of the users collection. PasswordHash holds the
// "saltHex:hashHex" string and never leaves the server.
type AppUser struct {
	RecordId     string     `bson:"_id" json:"recordId"`
	Username     string     `bson:"username" json:"username"`
	Email        string     `bson:"email" json:"email"`
	PasswordHash string     `bson:"passwordHash" json:"-"`
	CreatedAt    time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time  `bson:"updatedAt" json:"updatedAt"`
	LastLogin    *time.Time `bson:"lastLogin,omitempty" json:"lastLogin,omitempty"`

	// UserId is derived from RecordId, not persisted. The movieSearchCount
	// and savedMovie collections key on this value.
	UserId int64 `bson:"-" json:"userId"`
}

type SignupReq struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

const (
	UsernameMaxLength = 50
	PasswordMinLength = 6
)
