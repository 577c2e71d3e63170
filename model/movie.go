package model

// Movie is one result row of the catalog search/discover endpoints, mapped to
// only the fields this app uses.
type Movie struct {
	Id           int64   `json:"id"`
	Title        string  `json:"title"`
	PosterPath   *string `json:"poster_path"`
	BackdropPath *string `json:"backdrop_path"`
	VoteAverage  float64 `json:"vote_average"`
	ReleaseDate  string  `json:"release_date"`
	Overview     string  `json:"overview"`
}

type MovieDetails struct {
	Id           int64   `json:"id"`
	Title        string  `json:"title"`
	Overview     string  `json:"overview"`
	PosterPath   *string `json:"poster_path"`
	BackdropPath *string `json:"backdrop_path"`
	VoteAverage  float64 `json:"vote_average"`
	ReleaseDate  string  `json:"release_date"`
	Runtime      *int64  `json:"runtime"`
	Genres       []Genre `json:"genres"`
}

type Genre struct {
	Id   int64  `json:"id"`
	Name string `json:"name"`
}

// Catalog genre ids, the subset the app filters by.
var Genres = []Genre{
	{Id: 28, Name: "Action"},
	{Id: 35, Name: "Comedy"},
	{Id: 18, Name: "Drama"},
	{Id: 27, Name: "Horror"},
	{Id: 10749, Name: "Romance"},
	{Id: 53, Name: "Thriller"},
	{Id: 878, Name: "SciFi"},
}
