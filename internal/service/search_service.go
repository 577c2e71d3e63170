package service

import (
	"fmt"
	"movie_discovery/configs"
	"movie_discovery/internal/repository"
	"movie_discovery/model"
	errorHandler "movie_discovery/pkg/error"
	"time"
)

type ISearchService interface {
	RecordSearch(req *model.RecordSearchReq) error
	RecordSearchBestEffort(req *model.RecordSearchReq)
	GetTrending(limit int64, userId *int64) ([]model.SearchCounter, error)
}

type SearchService struct {
	searchRepo repository.ISearchRepository
}

func NewSearchService(searchRepo repository.ISearchRepository) *SearchService {
	return &SearchService{
		searchRepo: searchRepo,
	}
}

const trendingMaxCount = 10

//------------------------------------------
//------------------------------------------

// RecordSearch upserts the counter for (movieId, userId): on the first search
// a counter document is created with searchCount 1, afterwards searchCount is
// bumped by an atomic server-side increment followed by a separate searchDate
// refresh. The two calls are not atomic as a pair; a failure in between leaves
// the count bumped with a stale date.
func (m *SearchService) RecordSearch(req *model.RecordSearchReq) error {
	if req.MovieId <= 0 {
		return model.ErrInvalidMovieId
	}
	if configs.GetDbConfigs().DisableSearchRecording {
		return nil
	}

	movieTitle := truncate(req.MovieTitle, model.MovieTitleMaxLength)
	now := time.Now().UTC()

	existing, err := m.searchRepo.FindCounter(req.MovieId, req.UserId)
	if err != nil {
		errorMessage := fmt.Sprintf("Error on finding search counter: %v", err)
		errorHandler.SaveError(errorMessage, err)
		return err
	}

	if existing != nil {
		err = m.searchRepo.IncrementSearchCount(existing.RecordId)
		if err != nil {
			errorMessage := fmt.Sprintf("Error on incrementing search counter: %v", err)
			errorHandler.SaveError(errorMessage, err)
			return err
		}
		err = m.searchRepo.TouchCounter(existing.RecordId, now, req.PosterUrl, movieTitle)
		if err != nil {
			errorMessage := fmt.Sprintf("Error on refreshing search counter: %v", err)
			errorHandler.SaveError(errorMessage, err)
			return err
		}
		return nil
	}

	counter := &model.SearchCounter{
		MovieId:     req.MovieId,
		UserId:      req.UserId,
		SearchCount: 1,
		SearchDate:  now,
		PosterUrl:   req.PosterUrl,
		MovieTitle:  movieTitle,
	}
	_, err = m.searchRepo.CreateCounter(counter)
	if err != nil {
		errorMessage := fmt.Sprintf("Error on creating search counter: %v", err)
		errorHandler.SaveError(errorMessage, err)
		return err
	}
	return nil
}

// RecordSearchBestEffort swallows the error, recording is not worth failing
// the surrounding request for.
func (m *SearchService) RecordSearchBestEffort(req *model.RecordSearchReq) {
	_ = m.RecordSearch(req)
}

//------------------------------------------
//------------------------------------------

// GetTrending returns at most limit counters ordered by searchCount desc,
// limit clamped to [1,10]. A nil userId means global ranking; the global
// result is served from a short-lived redis cache.
func (m *SearchService) GetTrending(limit int64, userId *int64) ([]model.SearchCounter, error) {
	if limit < 1 {
		limit = 1
	}
	if limit > trendingMaxCount {
		limit = trendingMaxCount
	}

	if userId == nil {
		cached, _ := getTrendingCache(limit)
		if cached != nil {
			return cached, nil
		}
	}

	result, err := m.searchRepo.GetTrending(limit, userId)
	if err != nil {
		errorMessage := fmt.Sprintf("Error on getting trending searches: %v", err)
		errorHandler.SaveError(errorMessage, err)
		return nil, err
	}

	if userId == nil {
		ttl := time.Duration(configs.GetDbConfigs().TrendingCacheTtlSec) * time.Second
		_ = setTrendingCache(limit, result, ttl)
	}
	return result, nil
}
