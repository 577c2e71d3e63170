package service

import (
	"fmt"
	"movie_discovery/internal/repository"
	"movie_discovery/model"
	errorHandler "movie_discovery/pkg/error"
	"time"
)

type ISavedService interface {
	CreateSavedMovie(req *model.CreateSavedMovieReq) (*model.SavedMovie, error)
	ListSavedMovies(userId int64) ([]model.SavedMovie, error)
	GetSavedByMovie(movieId int64, userId int64) (*model.SavedMovie, error)
	UpdateSavedMovie(recordId string, fields *model.SavedMovieFields) (*model.SavedMovie, error)
	DeleteSavedMovie(recordId string) error
}

type SavedService struct {
	savedRepo repository.ISavedRepository
}

func NewSavedService(savedRepo repository.ISavedRepository) *SavedService {
	return &SavedService{
		savedRepo: savedRepo,
	}
}

//------------------------------------------
//------------------------------------------

func (m *SavedService) CreateSavedMovie(req *model.CreateSavedMovieReq) (*model.SavedMovie, error) {
	if req.MovieId <= 0 {
		return nil, model.ErrInvalidMovieId
	}

	sanitizeSavedFields(&req.SavedMovieFields)
	saved := &model.SavedMovie{
		MovieId:        req.MovieId,
		UserId:         req.UserId,
		DateAdded:      time.Now().UTC(),
		PersonalRating: req.PersonalRating,
		Notes:          req.Notes,
		IsFavorite:     req.IsFavorite,
		WatchDate:      req.WatchDate,
		Genre:          req.Genre,
		DirectorName:   req.DirectorName,
		Language:       req.Language,
		Country:        req.Country,
	}

	_, err := m.savedRepo.CreateSavedMovie(saved)
	if err != nil {
		errorMessage := fmt.Sprintf("Error on creating saved movie: %v", err)
		errorHandler.SaveError(errorMessage, err)
		return nil, err
	}
	return saved, nil
}

func (m *SavedService) ListSavedMovies(userId int64) ([]model.SavedMovie, error) {
	result, err := m.savedRepo.ListSavedMovies(userId)
	if err != nil {
		errorMessage := fmt.Sprintf("Error on listing saved movies: %v", err)
		errorHandler.SaveError(errorMessage, err)
		return nil, err
	}
	return result, nil
}

func (m *SavedService) GetSavedByMovie(movieId int64, userId int64) (*model.SavedMovie, error) {
	result, err := m.savedRepo.GetSavedByMovie(movieId, userId)
	if err != nil {
		errorMessage := fmt.Sprintf("Error on getting saved movie: %v", err)
		errorHandler.SaveError(errorMessage, err)
		return nil, err
	}
	return result, nil
}

func (m *SavedService) UpdateSavedMovie(recordId string, fields *model.SavedMovieFields) (*model.SavedMovie, error) {
	sanitizeSavedFields(fields)
	result, err := m.savedRepo.UpdateSavedMovie(recordId, fields)
	if err != nil {
		if err != model.ErrSavedMovieNotFound {
			errorMessage := fmt.Sprintf("Error on updating saved movie: %v", err)
			errorHandler.SaveError(errorMessage, err)
		}
		return nil, err
	}
	return result, nil
}

func (m *SavedService) DeleteSavedMovie(recordId string) error {
	err := m.savedRepo.DeleteSavedMovie(recordId)
	if err != nil {
		if err != model.ErrSavedMovieNotFound {
			errorMessage := fmt.Sprintf("Error on deleting saved movie: %v", err)
			errorHandler.SaveError(errorMessage, err)
		}
		return err
	}
	return nil
}

//------------------------------------------
//------------------------------------------

// sanitizeSavedFields clamps personalRating to [0,10] and truncates string
// fields to their documented max length, in place.
func sanitizeSavedFields(fields *model.SavedMovieFields) {
	if fields.PersonalRating != nil {
		rating := *fields.PersonalRating
		if rating < model.PersonalRatingMin {
			rating = model.PersonalRatingMin
		}
		if rating > model.PersonalRatingMax {
			rating = model.PersonalRatingMax
		}
		fields.PersonalRating = &rating
	}
	truncatePtr(fields.Notes, model.NotesMaxLength)
	truncatePtr(fields.Genre, model.GenreMaxLength)
	truncatePtr(fields.DirectorName, model.DirectorNameMaxLength)
	truncatePtr(fields.Language, model.LanguageMaxLength)
	truncatePtr(fields.Country, model.CountryMaxLength)
}

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}

func truncatePtr(s *string, max int) {
	if s != nil {
		*s = truncate(*s, max)
	}
}
