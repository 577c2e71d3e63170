package repository

import (
	"context"
	"errors"
	"movie_discovery/model"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type IUserRepository interface {
	CreateUser(user *model.AppUser) (string, error)
	GetUserByEmail(email string) (*model.AppUser, error)
	UpdateLoginTime(recordId string, loginTime time.Time) error
}

type UserRepository struct {
	mongodb *mongo.Database
}

func NewUserRepository(mongodb *mongo.Database) *UserRepository {
	return &UserRepository{mongodb: mongodb}
}

const usersCollection = "users"

//------------------------------------------
//------------------------------------------

func (m *UserRepository) CreateUser(user *model.AppUser) (string, error) {
	if user.RecordId == "" {
		user.RecordId = uuid.NewString()
	}

	_, err := m.mongodb.
		Collection(usersCollection).
		InsertOne(context.TODO(), user)

	if err != nil {
		return "", err
	}
	return user.RecordId, nil
}

func (m *UserRepository) GetUserByEmail(email string) (*model.AppUser, error) {
	var result model.AppUser
	err := m.mongodb.
		Collection(usersCollection).
		FindOne(context.TODO(), bson.D{{Key: "email", Value: email}}).
		Decode(&result)

	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

// UpdateLoginTime refreshes updatedAt/lastLogin after a successful login.
func (m *UserRepository) UpdateLoginTime(recordId string, loginTime time.Time) error {
	_, err := m.mongodb.
		Collection(usersCollection).
		UpdateOne(context.TODO(),
			bson.D{{Key: "_id", Value: recordId}},
			bson.D{{Key: "$set", Value: bson.D{
				{Key: "updatedAt", Value: loginTime},
				{Key: "lastLogin", Value: loginTime},
			}}})

	return err
}
