package response

const (
	ServerError         = "Server error, try again later"
	DatabaseUnavailable = "Database is starting up, try again later"
	//----------------------
	MovieNotFound  = "Movie not found"
	UserNotFound   = "Cannot find user"
	ActionNotFound = "Unknown movie action"
	ListNotFound   = "Unknown movie list"
	//----------------------
	InvalidToken       = "Invalid/Stale Token"
	InvalidMovieId     = "Invalid movie id"
	InvalidRating      = "Rating must be between 1 and 10"
	InvalidCredentials = "Invalid credentials"
	//----------------------
	BadRequestBody   = "Incorrect request body"
	InvalidMovieData = "Invalid movie data"
	InvalidUserData  = "Invalid user data"
	//----------------------
	UsernameAlreadyExist = "Username is already taken"
	EmailAlreadyExist    = "Email is already taken"
	ConcurrentUpdate     = "Concurrent update on this movie, try again"
	//----------------------
	RegistrationDisabled = "Registration is disabled"
	AdminOnly            = "Forbidden, Admin users only"
	//----------------------
)
