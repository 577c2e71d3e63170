package model

import (
	"time"
)

// SavedMovie is one document of the savedMovie collection, a user's bookmark
// of a movie plus optional personal metadata.
type SavedMovie struct {
	RecordId       string    `bson:"_id" json:"recordId"`
	MovieId        int64     `bson:"movieId" json:"movieId"`
	UserId         int64     `bson:"userId" json:"userId"`
	DateAdded      time.Time `bson:"dateAdded" json:"dateAdded"`
	PersonalRating *float64  `bson:"personalRating,omitempty" json:"personalRating,omitempty"`
	Notes          *string   `bson:"notes,omitempty" json:"notes,omitempty"`
	IsFavorite     *bool     `bson:"isFavorite,omitempty" json:"isFavorite,omitempty"`
	WatchDate      *string   `bson:"watchDate,omitempty" json:"watchDate,omitempty"`
	Genre          *string   `bson:"genre,omitempty" json:"genre,omitempty"`
	DirectorName   *string   `bson:"directorName,omitempty" json:"directorName,omitempty"`
	Language       *string   `bson:"language,omitempty" json:"language,omitempty"`
	Country        *string   `bson:"country,omitempty" json:"country,omitempty"`
}

// SavedMovieFields carries the optional fields of a saved movie. Nil means
// "not supplied", both on create and on partial update.
type SavedMovieFields struct {
	PersonalRating *float64 `json:"personalRating"`
	Notes          *string  `json:"notes"`
	IsFavorite     *bool    `json:"isFavorite"`
	WatchDate      *string  `json:"watchDate"`
	Genre          *string  `json:"genre"`
	DirectorName   *string  `json:"directorName"`
	Language       *string  `json:"language"`
	Country        *string  `json:"country"`
}

type CreateSavedMovieReq struct {
	MovieId int64 `json:"movieId"`
	UserId  int64 `json:"userId"`
	SavedMovieFields
}

const (
	NotesMaxLength        = 255
	GenreMaxLength        = 64
	DirectorNameMaxLength = 128
	LanguageMaxLength     = 32
	CountryMaxLength      = 64
	PersonalRatingMin     = 0
	PersonalRatingMax     = 10
)
