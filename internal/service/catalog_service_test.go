package service

import (
	"movie_discovery/model"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCatalog(ts *httptest.Server) *CatalogService {
	return &CatalogService{
		httpClient: ts.Client(),
		baseUrl:    ts.URL,
		apiKey:     "test-api-key",
	}
}

func TestFetchMovies_SearchEndpoint(t *testing.T) {
	var gotPath, gotQuery, gotAuth string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query().Get("query")
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results":[{"id":42,"title":"The Answer","vote_average":8.1}]}`))
	}))
	defer ts.Close()

	movies, err := newTestCatalog(ts).FetchMovies("the answer", 0, 1)
	require.NoError(t, err)

	assert.Equal(t, "/search/movie", gotPath)
	assert.Equal(t, "the answer", gotQuery)
	assert.Equal(t, "Bearer test-api-key", gotAuth)
	require.Len(t, movies, 1)
	assert.Equal(t, int64(42), movies[0].Id)
	assert.Equal(t, "The Answer", movies[0].Title)
}

func TestFetchMovies_GenreDiscoverEndpoint(t *testing.T) {
	var gotPath, gotGenres, gotSort string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotGenres = r.URL.Query().Get("with_genres")
		gotSort = r.URL.Query().Get("sort_by")
		_, _ = w.Write([]byte(`{"results":[]}`))
	}))
	defer ts.Close()

	movies, err := newTestCatalog(ts).FetchMovies("", 28, 1)
	require.NoError(t, err)

	assert.Equal(t, "/discover/movie", gotPath)
	assert.Equal(t, "28", gotGenres)
	assert.Equal(t, "popularity.desc", gotSort)
	assert.Empty(t, movies)
}

func TestFetchMovies_PopularityDiscoverEndpoint(t *testing.T) {
	var gotPath, gotGenres string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotGenres = r.URL.Query().Get("with_genres")
		_, _ = w.Write([]byte(`{"results":[]}`))
	}))
	defer ts.Close()

	_, err := newTestCatalog(ts).FetchMovies("", 0, 1)
	require.NoError(t, err)

	assert.Equal(t, "/discover/movie", gotPath)
	assert.Empty(t, gotGenres)
}

func TestFetchMovies_QueryWinsOverGenre(t *testing.T) {
	var gotPath string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"results":[]}`))
	}))
	defer ts.Close()

	_, err := newTestCatalog(ts).FetchMovies("dune", 878, 1)
	require.NoError(t, err)
	assert.Equal(t, "/search/movie", gotPath)
}

func TestFetchMovies_Non2xx(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer ts.Close()

	_, err := newTestCatalog(ts).FetchMovies("dune", 0, 1)
	assert.Error(t, err)
}

//------------------------------------------
//------------------------------------------

func TestFetchMovieById_Success(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movie/42", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":42,"title":"The Answer","runtime":120,"genres":[{"id":878,"name":"Science Fiction"}]}`))
	}))
	defer ts.Close()

	details, err := newTestCatalog(ts).FetchMovieById(42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), details.Id)
	require.NotNil(t, details.Runtime)
	assert.Equal(t, int64(120), *details.Runtime)
	require.Len(t, details.Genres, 1)
	assert.Equal(t, "Science Fiction", details.Genres[0].Name)
}

func TestFetchMovieById_NotFound(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	_, err := newTestCatalog(ts).FetchMovieById(42)
	assert.ErrorIs(t, err, model.ErrMovieNotFound)
}

func TestFetchMovieById_InvalidId(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected for invalid id")
	}))
	defer ts.Close()

	_, err := newTestCatalog(ts).FetchMovieById(0)
	assert.ErrorIs(t, err, model.ErrInvalidMovieId)
}
