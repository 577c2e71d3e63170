package handler

import (
	"movie_discovery/internal/service"
	"movie_discovery/model"
	"movie_discovery/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type ISearchHandler interface {
	RecordSearch(c *fiber.Ctx) error
	Trending(c *fiber.Ctx) error
}

type SearchHandler struct {
	searchService service.ISearchService
}

func NewSearchHandler(searchService service.ISearchService) *SearchHandler {
	return &SearchHandler{
		searchService: searchService,
	}
}

//------------------------------------------
//------------------------------------------

// RecordSearch godoc
//
//	@Summary		Record Movie Search
//	@Description	increment the search counter of a movie, creating it on first search.
//	@Tags			Search
//	@Param			movieId		path		int		true	"movieId"
//	@Param			userId		query		int		false	"numeric userId, 0/absent for anonymous"
//	@Param			posterUrl	query		string	false	"poster url to store on the counter"
//	@Param			movieTitle	query		string	false	"movie title to store on the counter"
//	@Success		200			{object}	response.ResponseModel
//	@Failure		400,500		{object}	response.ResponseErrorModel
//	@Router			/v1/search/:movieId [put]
func (m *SearchHandler) RecordSearch(c *fiber.Ctx) error {
	movieIdInt, _ := c.ParamsInt("movieId", 0)
	movieId := int64(movieIdInt)
	if movieId <= 0 {
		return response.ResponseError(c, "Invalid movieId", fiber.StatusBadRequest)
	}

	req := &model.RecordSearchReq{
		MovieId:    movieId,
		UserId:     int64(c.QueryInt("userId", 0)),
		PosterUrl:  c.Query("posterUrl", ""),
		MovieTitle: c.Query("movieTitle", ""),
	}

	err := m.searchService.RecordSearch(req)
	if err != nil {
		if code := model.GetErrorCode(err); code != 0 {
			return response.ResponseError(c, err.Error(), code)
		}
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	return response.ResponseOK(c)
}

// Trending godoc
//
//	@Summary		Trending Searches
//	@Description	top movies by search count, personalized when userId is given with fallback to global.
//	@Tags			Search
//	@Param			limit	query		int	false	"max results, clamped to [1,10]"
//	@Param			userId	query		int	false	"numeric userId for personalized trending"
//	@Success		200		{object}	model.TrendingRes
//	@Failure		500		{object}	response.ResponseErrorModel
//	@Router			/v1/search/trending [get]
func (m *SearchHandler) Trending(c *fiber.Ctx) error {
	limit := int64(c.QueryInt("limit", 10))

	scope := model.TrendingScopeGlobal
	var userId *int64
	if c.Query("userId", "") != "" {
		uid := int64(c.QueryInt("userId", 0))
		userId = &uid
		scope = model.TrendingScopeUser
	}

	movies, err := m.searchService.GetTrending(limit, userId)
	if err != nil {
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}

	// a user with no personal history falls back to the global ranking
	if userId != nil && len(movies) == 0 {
		movies, err = m.searchService.GetTrending(limit, nil)
		if err != nil {
			return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
		}
		scope = model.TrendingScopeGlobal
	}

	res := model.TrendingRes{
		Scope:  scope,
		Movies: movies,
	}
	return response.ResponseOKWithData(c, res)
}
