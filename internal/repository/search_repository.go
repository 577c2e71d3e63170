package repository

import (
	"context"
	"errors"
	"movie_discovery/model"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ISearchRepository interface {
	FindCounter(movieId int64, userId int64) (*model.SearchCounter, error)
	CreateCounter(counter *model.SearchCounter) (string, error)
	IncrementSearchCount(recordId string) error
	TouchCounter(recordId string, searchDate time.Time, posterUrl string, movieTitle string) error
	GetTrending(limit int64, userId *int64) ([]model.SearchCounter, error)
}

type SearchRepository struct {
	mongodb *mongo.Database
}

func NewSearchRepository(mongodb *mongo.Database) *SearchRepository {
	return &SearchRepository{mongodb: mongodb}
}

const searchCollection = "movieSearchCount"

//------------------------------------------
//------------------------------------------

func (m *SearchRepository) FindCounter(movieId int64, userId int64) (*model.SearchCounter, error) {
	var result model.SearchCounter
	err := m.mongodb.
		Collection(searchCollection).
		FindOne(context.TODO(),
			bson.D{
				{Key: "movieId", Value: movieId},
				{Key: "userId", Value: userId},
			}).
		Decode(&result)

	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

func (m *SearchRepository) CreateCounter(counter *model.SearchCounter) (string, error) {
	if counter.RecordId == "" {
		counter.RecordId = uuid.NewString()
	}

	_, err := m.mongodb.
		Collection(searchCollection).
		InsertOne(context.TODO(), counter)

	if err != nil {
		return "", err
	}
	return counter.RecordId, nil
}

// IncrementSearchCount bumps searchCount by exactly 1, server side.
func (m *SearchRepository) IncrementSearchCount(recordId string) error {
	_, err := m.mongodb.
		Collection(searchCollection).
		UpdateOne(context.TODO(),
			bson.D{{Key: "_id", Value: recordId}},
			bson.D{{Key: "$inc", Value: bson.D{{Key: "searchCount", Value: 1}}}})

	return err
}

// TouchCounter refreshes searchDate and, when supplied, poster/title. Runs as
// a separate call after IncrementSearchCount, so the pair is not atomic.
func (m *SearchRepository) TouchCounter(recordId string, searchDate time.Time, posterUrl string, movieTitle string) error {
	set := bson.D{{Key: "searchDate", Value: searchDate}}
	if posterUrl != "" {
		set = append(set, bson.E{Key: "poster_url", Value: posterUrl})
	}
	if movieTitle != "" {
		set = append(set, bson.E{Key: "movieTitle", Value: movieTitle})
	}

	_, err := m.mongodb.
		Collection(searchCollection).
		UpdateOne(context.TODO(),
			bson.D{{Key: "_id", Value: recordId}},
			bson.D{{Key: "$set", Value: set}})

	return err
}

func (m *SearchRepository) GetTrending(limit int64, userId *int64) ([]model.SearchCounter, error) {
	filter := bson.D{}
	if userId != nil {
		filter = bson.D{{Key: "userId", Value: *userId}}
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "searchCount", Value: -1}}).
		SetLimit(limit)

	cursor, err := m.mongodb.
		Collection(searchCollection).
		Find(context.TODO(), filter, opts)
	if err != nil {
		return nil, err
	}

	result := make([]model.SearchCounter, 0)
	err = cursor.All(context.TODO(), &result)
	if err != nil {
		return nil, err
	}
	return result, nil
}
