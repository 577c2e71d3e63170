package handler

import (
	"movie_discovery/configs"
	"movie_discovery/internal/service"
	"movie_discovery/model"
	"movie_discovery/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type IMovieHandler interface {
	GetMovies(c *fiber.Ctx) error
	GetMovieById(c *fiber.Ctx) error
	GetGenres(c *fiber.Ctx) error
	GetPoster(c *fiber.Ctx) error
}

type MovieHandler struct {
	catalogService service.ICatalogService
	posterService  service.IPosterService
	searchService  service.ISearchService
}

func NewMovieHandler(catalogService service.ICatalogService, posterService service.IPosterService, searchService service.ISearchService) *MovieHandler {
	return &MovieHandler{
		catalogService: catalogService,
		posterService:  posterService,
		searchService:  searchService,
	}
}

//------------------------------------------
//------------------------------------------

// GetMovies godoc
//
//	@Summary		Browse Movies
//	@Description	full-text search when query is set, genre discovery when genreId is set, popular movies otherwise.
//	@Tags			Movies
//	@Param			query	query		string	false	"full-text search query"
//	@Param			genreId	query		int		false	"genre id filter"
//	@Param			page	query		int		false	"page, default 1"
//	@Success		200		{object}	[]model.Movie
//	@Failure		500		{object}	response.ResponseErrorModel
//	@Router			/v1/movies [get]
func (m *MovieHandler) GetMovies(c *fiber.Ctx) error {
	query := c.Query("query", "")
	genreId := int64(c.QueryInt("genreId", 0))
	page := c.QueryInt("page", 1)

	movies, err := m.catalogService.FetchMovies(query, genreId, page)
	if err != nil {
		return response.ResponseError(c, response.MoviesNotFound, fiber.StatusInternalServerError)
	}
	return response.ResponseOKWithData(c, movies)
}

// GetMovieById godoc
//
//	@Summary		Movie Detail
//	@Description	movie detail by id. With record=true the view is counted as a search for userId, best-effort.
//	@Tags			Movies
//	@Param			movieId	path		int		true	"movieId"
//	@Param			record	query		bool	false	"record this view as a search"
//	@Param			userId	query		int		false	"numeric userId for the search record"
//	@Success		200		{object}	model.MovieDetails
//	@Failure		400,404,500	{object}	response.ResponseErrorModel
//	@Router			/v1/movies/:movieId [get]
func (m *MovieHandler) GetMovieById(c *fiber.Ctx) error {
	movieIdInt, _ := c.ParamsInt("movieId", 0)
	movieId := int64(movieIdInt)
	if movieId <= 0 {
		return response.ResponseError(c, "Invalid movieId", fiber.StatusBadRequest)
	}

	details, err := m.catalogService.FetchMovieById(movieId)
	if err != nil {
		if code := model.GetErrorCode(err); code != 0 {
			return response.ResponseError(c, response.MovieNotFound, code)
		}
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}

	if c.QueryBool("record", false) {
		posterUrl := ""
		if details.PosterPath != nil {
			posterUrl = configs.GetConfigs().TmdbImageBaseUrl + *details.PosterPath
		}
		m.searchService.RecordSearchBestEffort(&model.RecordSearchReq{
			MovieId:    movieId,
			UserId:     int64(c.QueryInt("userId", 0)),
			PosterUrl:  posterUrl,
			MovieTitle: details.Title,
		})
	}

	return response.ResponseOKWithData(c, details)
}

// GetGenres godoc
//
//	@Summary		Genres
//	@Description	the genre ids the app filters by.
//	@Tags			Movies
//	@Success		200	{object}	[]model.Genre
//	@Router			/v1/movies/genres [get]
func (m *MovieHandler) GetGenres(c *fiber.Ctx) error {
	return response.ResponseOKWithData(c, model.Genres)
}

// GetPoster godoc
//
//	@Summary		Poster Thumbnail
//	@Description	webp thumbnail of a poster, resized to the requested width.
//	@Tags			Movies
//	@Param			width	path	int		true	"thumbnail width"
//	@Param			path	path	string	true	"poster path on the image CDN"
//	@Success		200
//	@Failure		400,404,500	{object}	response.ResponseErrorModel
//	@Router			/v1/movies/poster/:width/* [get]
func (m *MovieHandler) GetPoster(c *fiber.Ctx) error {
	width, _ := c.ParamsInt("width", 0)
	if width <= 0 {
		return response.ResponseError(c, "Invalid width", fiber.StatusBadRequest)
	}
	posterPath := c.Params("*", "")
	if posterPath == "" {
		return response.ResponseError(c, "Invalid poster path", fiber.StatusBadRequest)
	}

	data, err := m.posterService.GetPosterThumbnail(posterPath, width)
	if err != nil {
		if code := model.GetErrorCode(err); code != 0 {
			return response.ResponseError(c, response.PosterNotFound, code)
		}
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}

	c.Set(fiber.HeaderContentType, "image/webp")
	c.Set(fiber.HeaderCacheControl, "public, max-age=86400")
	return c.Send(data)
}
