package repository

import (
	"context"
	"errors"
	"movie_discovery/model"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ISavedRepository interface {
	CreateSavedMovie(saved *model.SavedMovie) (string, error)
	ListSavedMovies(userId int64) ([]model.SavedMovie, error)
	GetSavedByMovie(movieId int64, userId int64) (*model.SavedMovie, error)
	DeleteSavedMovie(recordId string) error
	UpdateSavedMovie(recordId string, fields *model.SavedMovieFields) (*model.SavedMovie, error)
}

type SavedRepository struct {
	mongodb *mongo.Database
}

func NewSavedRepository(mongodb *mongo.Database) *SavedRepository {
	return &SavedRepository{mongodb: mongodb}
}

const savedCollection = "savedMovie"

//------------------------------------------
//------------------------------------------

func (m *SavedRepository) CreateSavedMovie(saved *model.SavedMovie) (string, error) {
	if saved.RecordId == "" {
		saved.RecordId = uuid.NewString()
	}

	_, err := m.mongodb.
		Collection(savedCollection).
		InsertOne(context.TODO(), saved)

	if err != nil {
		return "", err
	}
	return saved.RecordId, nil
}

func (m *SavedRepository) ListSavedMovies(userId int64) ([]model.SavedMovie, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "dateAdded", Value: -1}})

	cursor, err := m.mongodb.
		Collection(savedCollection).
		Find(context.TODO(), bson.D{{Key: "userId", Value: userId}}, opts)
	if err != nil {
		return nil, err
	}

	result := make([]model.SavedMovie, 0)
	err = cursor.All(context.TODO(), &result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (m *SavedRepository) GetSavedByMovie(movieId int64, userId int64) (*model.SavedMovie, error) {
	var result model.SavedMovie
	err := m.mongodb.
		Collection(savedCollection).
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

func (m *SavedRepository) getById(recordId string) (*model.SavedMovie, error) {
	var result model.SavedMovie
	err := m.mongodb.
		Collection(savedCollection).
		FindOne(context.TODO(), bson.D{{Key: "_id", Value: recordId}}).
		Decode(&result)

	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrSavedMovieNotFound
		}
		return nil, err
	}
	return &result, nil
}

func (m *SavedRepository) DeleteSavedMovie(recordId string) error {
	res, err := m.mongodb.
		Collection(savedCollection).
		DeleteOne(context.TODO(), bson.D{{Key: "_id", Value: recordId}})

	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return model.ErrSavedMovieNotFound
	}
	return nil
}

// UpdateSavedMovie sends only the non-nil fields and returns the updated
// document.
func (m *SavedRepository) UpdateSavedMovie(recordId string, fields *model.SavedMovieFields) (*model.SavedMovie, error) {
	set := bson.D{}
	if fields.PersonalRating != nil {
		set = append(set, bson.E{Key: "personalRating", Value: *fields.PersonalRating})
	}
	if fields.Notes != nil {
		set = append(set, bson.E{Key: "notes", Value: *fields.Notes})
	}
	if fields.IsFavorite != nil {
		set = append(set, bson.E{Key: "isFavorite", Value: *fields.IsFavorite})
	}
	if fields.WatchDate != nil {
		set = append(set, bson.E{Key: "watchDate", Value: *fields.WatchDate})
	}
	if fields.Genre != nil {
		set = append(set, bson.E{Key: "genre", Value: *fields.Genre})
	}
	if fields.DirectorName != nil {
		set = append(set, bson.E{Key: "directorName", Value: *fields.DirectorName})
	}
	if fields.Language != nil {
		set = append(set, bson.E{Key: "language", Value: *fields.Language})
	}
	if fields.Country != nil {
		set = append(set, bson.E{Key: "country", Value: *fields.Country})
	}

	// mongodb rejects an empty $set
	if len(set) == 0 {
		return m.getById(recordId)
	}

	var result model.SavedMovie
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := m.mongodb.
		Collection(savedCollection).
		FindOneAndUpdate(context.TODO(),
			bson.D{{Key: "_id", Value: recordId}},
			bson.D{{Key: "$set", Value: set}},
			opts).
		Decode(&result)

	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrSavedMovieNotFound
		}
		return nil, err
	}
	return &result, nil
}
