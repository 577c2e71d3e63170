package model

import (
	"time"
)

// SearchCounter is one document of the movieSearchCount collection.
// At most one counter exists per (movieId, userId) pair, userId 0 meaning
// anonymous/global searches.
type SearchCounter struct {
	RecordId    string    `bson:"_id" json:"recordId"`
	MovieId     int64     `bson:"movieId" json:"movieId"`
	UserId      int64     `bson:"userId" json:"userId"`
	SearchCount int64     `bson:"searchCount" json:"searchCount"`
	SearchDate  time.Time `bson:"searchDate" json:"searchDate"`
	PosterUrl   string    `bson:"poster_url,omitempty" json:"posterUrl,omitempty"`
	MovieTitle  string    `bson:"movieTitle,omitempty" json:"movieTitle,omitempty"`
}

type RecordSearchReq struct {
	MovieId    int64
	UserId     int64
	PosterUrl  string
	MovieTitle string
}

const (
	TrendingScopeUser   = "user"
	TrendingScopeGlobal = "global"
)

const MovieTitleMaxLength = 255

type TrendingRes struct {
	Scope  string          `json:"scope"`
	Movies []SearchCounter `json:"movies"`
}
