package service

import (
	"movie_discovery/model"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSavedRepo struct {
	saved map[string]*model.SavedMovie
}

func newFakeSavedRepo() *fakeSavedRepo {
	return &fakeSavedRepo{saved: map[string]*model.SavedMovie{}}
}

func (f *fakeSavedRepo) CreateSavedMovie(saved *model.SavedMovie) (string, error) {
	saved.RecordId = uuid.NewString()
	copied := *saved
	f.saved[saved.RecordId] = &copied
	return saved.RecordId, nil
}

func (f *fakeSavedRepo) ListSavedMovies(userId int64) ([]model.SavedMovie, error) {
	result := make([]model.SavedMovie, 0)
	for _, s := range f.saved {
		if s.UserId == userId {
			result = append(result, *s)
		}
	}
	return result, nil
}

func (f *fakeSavedRepo) GetSavedByMovie(movieId int64, userId int64) (*model.SavedMovie, error) {
	for _, s := range f.saved {
		if s.MovieId == movieId && s.UserId == userId {
			copied := *s
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeSavedRepo) DeleteSavedMovie(recordId string) error {
	if _, ok := f.saved[recordId]; !ok {
		return model.ErrSavedMovieNotFound
	}
	delete(f.saved, recordId)
	return nil
}

func (f *fakeSavedRepo) UpdateSavedMovie(recordId string, fields *model.SavedMovieFields) (*model.SavedMovie, error) {
	s, ok := f.saved[recordId]
	if !ok {
		return nil, model.ErrSavedMovieNotFound
	}
	if fields.PersonalRating != nil {
		s.PersonalRating = fields.PersonalRating
	}
	if fields.Notes != nil {
		s.Notes = fields.Notes
	}
	if fields.IsFavorite != nil {
		s.IsFavorite = fields.IsFavorite
	}
	if fields.WatchDate != nil {
		s.WatchDate = fields.WatchDate
	}
	if fields.Genre != nil {
		s.Genre = fields.Genre
	}
	if fields.DirectorName != nil {
		s.DirectorName = fields.DirectorName
	}
	if fields.Language != nil {
		s.Language = fields.Language
	}
	if fields.Country != nil {
		s.Country = fields.Country
	}
	copied := *s
	return &copied, nil
}

//------------------------------------------
//------------------------------------------

func ptrF(v float64) *float64 { return &v }
func ptrS(v string) *string   { return &v }

func TestCreateSavedMovie_SetsDateAdded(t *testing.T) {
	repo := newFakeSavedRepo()
	svc := NewSavedService(repo)

	saved, err := svc.CreateSavedMovie(&model.CreateSavedMovieReq{MovieId: 100, UserId: 7})
	require.NoError(t, err)
	assert.NotEmpty(t, saved.RecordId)
	assert.False(t, saved.DateAdded.IsZero())
	assert.Equal(t, int64(100), saved.MovieId)
	assert.Equal(t, int64(7), saved.UserId)
}

func TestCreateSavedMovie_InvalidMovieId(t *testing.T) {
	svc := NewSavedService(newFakeSavedRepo())

	_, err := svc.CreateSavedMovie(&model.CreateSavedMovieReq{MovieId: 0, UserId: 7})
	assert.ErrorIs(t, err, model.ErrInvalidMovieId)
}

func TestCreateSavedMovie_ClampsRating(t *testing.T) {
	repo := newFakeSavedRepo()
	svc := NewSavedService(repo)

	saved, err := svc.CreateSavedMovie(&model.CreateSavedMovieReq{
		MovieId: 100, UserId: 7,
		SavedMovieFields: model.SavedMovieFields{PersonalRating: ptrF(15)},
	})
	require.NoError(t, err)
	require.NotNil(t, saved.PersonalRating)
	assert.Equal(t, float64(10), *saved.PersonalRating)

	saved, err = svc.CreateSavedMovie(&model.CreateSavedMovieReq{
		MovieId: 101, UserId: 7,
		SavedMovieFields: model.SavedMovieFields{PersonalRating: ptrF(-3)},
	})
	require.NoError(t, err)
	require.NotNil(t, saved.PersonalRating)
	assert.Equal(t, float64(0), *saved.PersonalRating)
}

func TestCreateSavedMovie_TruncatesStrings(t *testing.T) {
	repo := newFakeSavedRepo()
	svc := NewSavedService(repo)

	saved, err := svc.CreateSavedMovie(&model.CreateSavedMovieReq{
		MovieId: 100, UserId: 7,
		SavedMovieFields: model.SavedMovieFields{
			Notes:        ptrS(strings.Repeat("n", 400)),
			Genre:        ptrS(strings.Repeat("g", 100)),
			DirectorName: ptrS(strings.Repeat("d", 200)),
			Language:     ptrS(strings.Repeat("l", 50)),
			Country:      ptrS(strings.Repeat("c", 80)),
		},
	})
	require.NoError(t, err)
	assert.Len(t, *saved.Notes, 255)
	assert.Len(t, *saved.Genre, 64)
	assert.Len(t, *saved.DirectorName, 128)
	assert.Len(t, *saved.Language, 32)
	assert.Len(t, *saved.Country, 64)
}

func TestSavedMovie_SaveGetDeleteCycle(t *testing.T) {
	repo := newFakeSavedRepo()
	svc := NewSavedService(repo)

	saved, err := svc.CreateSavedMovie(&model.CreateSavedMovieReq{MovieId: 100, UserId: 7})
	require.NoError(t, err)

	found, err := svc.GetSavedByMovie(100, 7)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, saved.RecordId, found.RecordId)

	require.NoError(t, svc.DeleteSavedMovie(saved.RecordId))

	found, err = svc.GetSavedByMovie(100, 7)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestDeleteSavedMovie_NotFound(t *testing.T) {
	svc := NewSavedService(newFakeSavedRepo())

	err := svc.DeleteSavedMovie("missing-id")
	assert.ErrorIs(t, err, model.ErrSavedMovieNotFound)
}

func TestUpdateSavedMovie_PartialAndSanitized(t *testing.T) {
	repo := newFakeSavedRepo()
	svc := NewSavedService(repo)

	saved, err := svc.CreateSavedMovie(&model.CreateSavedMovieReq{
		MovieId: 100, UserId: 7,
		SavedMovieFields: model.SavedMovieFields{Notes: ptrS("keep me"), Genre: ptrS("Drama")},
	})
	require.NoError(t, err)

	updated, err := svc.UpdateSavedMovie(saved.RecordId, &model.SavedMovieFields{
		PersonalRating: ptrF(12),
		Notes:          ptrS(strings.Repeat("u", 400)),
	})
	require.NoError(t, err)
	require.NotNil(t, updated.PersonalRating)
	assert.Equal(t, float64(10), *updated.PersonalRating)
	assert.Len(t, *updated.Notes, 255)
	// untouched field survives a partial update
	require.NotNil(t, updated.Genre)
	assert.Equal(t, "Drama", *updated.Genre)
}

func TestUpdateSavedMovie_NotFound(t *testing.T) {
	svc := NewSavedService(newFakeSavedRepo())

	_, err := svc.UpdateSavedMovie("missing-id", &model.SavedMovieFields{Notes: ptrS("x")})
	assert.ErrorIs(t, err, model.ErrSavedMovieNotFound)
}
