package response

const (
	ServerError = "Server error, try again later"
	//----------------------
	MoviesNotFound    = "Movies not found"
	MovieNotFound     = "Movie not found"
	GenresNotFound    = "Genres not found"
	PosterNotFound    = "Poster not found"
	TrendingEmpty     = "No trending searches yet"
	SavedNotFound     = "Saved movie not found"
	ConfigsDbNotFound = "Configs from database not found"
	//----------------------
	UserNotFound = "Cannot find user"
	//----------------------
	UserPassNotMatch = "Invalid email or password"
	//----------------------
	BadRequestBody = "Incorrect request body"
	//----------------------
	EmailAlreadyExist = "This email already exists"
	AlreadyExist      = "Already exist"
	//----------------------
	SignupIsDisabled = "Signup is disabled"
	//----------------------
)
