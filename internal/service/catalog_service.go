package service

import (
	"encoding/json"
	"fmt"
	"movie_discovery/configs"
	"movie_discovery/model"
	errorHandler "movie_discovery/pkg/error"
	"net/http"
	"net/url"
)

type ICatalogService interface {
	FetchMovies(query string, genreId int64, page int) ([]model.Movie, error)
	FetchMovieById(movieId int64) (*model.MovieDetails, error)
}

// CatalogService is a thin pass-through over the movie-metadata REST API.
// No retry, no backoff, no caching.
type CatalogService struct {
	httpClient *http.Client
	baseUrl    string
	apiKey     string
}

func NewCatalogService() *CatalogService {
	return &CatalogService{
		httpClient: &http.Client{},
		baseUrl:    configs.GetConfigs().TmdbBaseUrl,
		apiKey:     configs.GetConfigs().TmdbApiKey,
	}
}

//------------------------------------------
//------------------------------------------

type movieListRes struct {
	Results []model.Movie `json:"results"`
}

// FetchMovies picks one of three endpoint shapes: full-text search when query
// is set, genre-filtered discovery when genreId is set, unfiltered
// popularity-sorted discovery otherwise.
func (m *CatalogService) FetchMovies(query string, genreId int64, page int) ([]model.Movie, error) {
	if page < 1 {
		page = 1
	}

	var endpoint string
	if query != "" {
		endpoint = fmt.Sprintf("/search/movie?query=%s&include_adult=false&language=en-US&page=%d",
			url.QueryEscape(query), page)
	} else if genreId > 0 {
		endpoint = fmt.Sprintf("/discover/movie?with_genres=%d&sort_by=popularity.desc&include_adult=false&language=en-US&page=%d",
			genreId, page)
	} else {
		endpoint = fmt.Sprintf("/discover/movie?sort_by=popularity.desc&include_adult=false&language=en-US&page=%d", page)
	}

	resp, err := m.get(m.baseUrl + endpoint)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err = fmt.Errorf("failed to fetch movie data: %s", resp.Status)
		errorMessage := fmt.Sprintf("Error on fetching movies: %v", err)
		errorHandler.SaveError(errorMessage, err)
		return nil, err
	}

	var data movieListRes
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, err
	}
	if data.Results == nil {
		return []model.Movie{}, nil
	}
	return data.Results, nil
}

func (m *CatalogService) FetchMovieById(movieId int64) (*model.MovieDetails, error) {
	if movieId <= 0 {
		return nil, model.ErrInvalidMovieId
	}

	resp, err := m.get(fmt.Sprintf("%s/movie/%d?language=en-US", m.baseUrl, movieId))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, model.ErrMovieNotFound
	}
	if resp.StatusCode != http.StatusOK {
		err = fmt.Errorf("failed to fetch movie data: %s", resp.Status)
		errorMessage := fmt.Sprintf("Error on fetching movie detail: %v", err)
		errorHandler.SaveError(errorMessage, err)
		return nil, err
	}

	var details model.MovieDetails
	if err := json.NewDecoder(resp.Body).Decode(&details); err != nil {
		return nil, err
	}
	return &details, nil
}

func (m *CatalogService) get(fullUrl string) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodGet, fullUrl, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	return m.httpClient.Do(req)
}
