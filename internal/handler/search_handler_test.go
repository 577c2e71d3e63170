package handler

import (
	"encoding/json"
	"io"
	"movie_discovery/model"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSearchService struct {
	userMovies   []model.SearchCounter
	globalMovies []model.SearchCounter
	recorded     []*model.RecordSearchReq
	trendingErr  error
}

func (m *fakeSearchService) RecordSearch(req *model.RecordSearchReq) error {
	m.recorded = append(m.recorded, req)
	return nil
}

func (m *fakeSearchService) RecordSearchBestEffort(req *model.RecordSearchReq) {
	_ = m.RecordSearch(req)
}

func (m *fakeSearchService) GetTrending(limit int64, userId *int64) ([]model.SearchCounter, error) {
	if m.trendingErr != nil {
		return nil, m.trendingErr
	}
	if userId != nil {
		return m.userMovies, nil
	}
	return m.globalMovies, nil
}

func newSearchTestApp(svc *fakeSearchService) *fiber.App {
	app := fiber.New()
	h := NewSearchHandler(svc)
	app.Put("/v1/search/:movieId", h.RecordSearch)
	app.Get("/v1/search/trending", h.Trending)
	return app
}

type trendingEnvelope struct {
	Code         int               `json:"code"`
	Data         model.TrendingRes `json:"data"`
	ErrorMessage string            `json:"errorMessage"`
}

func decodeTrending(t *testing.T, body io.Reader) trendingEnvelope {
	t.Helper()
	var env trendingEnvelope
	require.NoError(t, json.NewDecoder(body).Decode(&env))
	return env
}

//------------------------------------------
//------------------------------------------

func TestTrendingHandler_GlobalScope(t *testing.T) {
	svc := &fakeSearchService{
		globalMovies: []model.SearchCounter{{MovieId: 1, SearchCount: 9}},
	}
	app := newSearchTestApp(svc)

	resp, err := app.Test(httptest.NewRequest("GET", "/v1/search/trending", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	env := decodeTrending(t, resp.Body)
	assert.Equal(t, model.TrendingScopeGlobal, env.Data.Scope)
	require.Len(t, env.Data.Movies, 1)
	assert.Equal(t, int64(1), env.Data.Movies[0].MovieId)
}

func TestTrendingHandler_UserScope(t *testing.T) {
	svc := &fakeSearchService{
		userMovies:   []model.SearchCounter{{MovieId: 7, UserId: 5}},
		globalMovies: []model.SearchCounter{{MovieId: 1}},
	}
	app := newSearchTestApp(svc)

	resp, err := app.Test(httptest.NewRequest("GET", "/v1/search/trending?userId=5", nil))
	require.NoError(t, err)

	env := decodeTrending(t, resp.Body)
	assert.Equal(t, model.TrendingScopeUser, env.Data.Scope)
	require.Len(t, env.Data.Movies, 1)
	assert.Equal(t, int64(7), env.Data.Movies[0].MovieId)
}

func TestTrendingHandler_FallbackToGlobal(t *testing.T) {
	svc := &fakeSearchService{
		userMovies:   []model.SearchCounter{},
		globalMovies: []model.SearchCounter{{MovieId: 1}, {MovieId: 2}},
	}
	app := newSearchTestApp(svc)

	resp, err := app.Test(httptest.NewRequest("GET", "/v1/search/trending?userId=5", nil))
	require.NoError(t, err)

	env := decodeTrending(t, resp.Body)
	assert.Equal(t, model.TrendingScopeGlobal, env.Data.Scope)
	assert.Len(t, env.Data.Movies, 2)
}

//------------------------------------------
//------------------------------------------

func TestRecordSearchHandler_Ok(t *testing.T) {
	svc := &fakeSearchService{}
	app := newSearchTestApp(svc)

	resp, err := app.Test(httptest.NewRequest("PUT",
		"/v1/search/42?userId=5&movieTitle=Dune&posterUrl=/dune.jpg", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	require.Len(t, svc.recorded, 1)
	assert.Equal(t, int64(42), svc.recorded[0].MovieId)
	assert.Equal(t, int64(5), svc.recorded[0].UserId)
	assert.Equal(t, "Dune", svc.recorded[0].MovieTitle)
	assert.Equal(t, "/dune.jpg", svc.recorded[0].PosterUrl)
}

func TestRecordSearchHandler_BadMovieId(t *testing.T) {
	svc := &fakeSearchService{}
	app := newSearchTestApp(svc)

	resp, err := app.Test(httptest.NewRequest("PUT", "/v1/search/abc", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, svc.recorded)
}
