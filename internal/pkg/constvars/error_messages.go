package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":   "is required",
	"min":        "must be at least %s characters long",
	"max":        "maximum at %s characters long",
	"numeric":    "must be a number",
	"oneof":      "must be one of [%s]",
	"gt":         "must be greater than %s",
	"gte":        "must be greater than or equal to %s",
	"clock_time": "must be a valid 24-hour time in HH:MM format",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"gt":    true,
	"gte":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "cannot process the request"
	ErrClientSomethingWrongWithApplication = "something is wrong with the application, please contact the administrator"
	ErrClientNotAuthorized                 = "you are not authorized to do this action"
	ErrClientNotLoggedIn                   = "you are not logged in or your session has expired"
	ErrClientInvalidUserIDOrPassword       = "incorrect user ID or password"
	ErrClientUserInactive                  = "this account is inactive"
	ErrClientUserIDAlreadyExists           = "a user with this user ID already exists"
	ErrClientUserNotFound                  = "user not found"
	ErrClientSubjectCodeAlreadyExists      = "a subject with this code already exists"
	ErrClientSubjectNotFound               = "subject not found"
	ErrClientScheduleNotFound              = "schedule not found"
	ErrClientScheduleConflict              = "schedule conflict detected for this instructor"
	ErrClientInvalidTimeFormat             = "time must be a valid 24-hour time in HH:MM format"
	ErrClientEndTimeNotAfterStartTime      = "end time must be after start time"
	ErrClientServerLongRespond             = "server takes too long to respond"
	ErrClientTooManyLoginAttempts          = "too many login attempts, please try again later"
)

// Error messages for developers
const (
	ErrDevValidationFailed       = "request validation failed"
	ErrDevCannotParseJSON        = "cannot parse JSON request body"
	ErrDevInvalidClockTime       = "cannot parse clock time"
	ErrDevEndTimeBeforeStartTime = "effective end time is not strictly after effective start time"
	ErrDevScheduleOverlap        = "candidate interval overlaps a committed interval for the same instructor and day"
	ErrDevScheduleNotExists      = "schedule document does not exist"
	ErrDevSubjectNotExists       = "subject document does not exist"
	ErrDevSubjectCodeExists      = "subject code already taken"
	ErrDevUserNotExists          = "user document does not exist"
	ErrDevUserIDExists           = "campus user ID already taken"
	ErrDevUserInactive           = "user is deactivated"
	ErrDevInvalidCredentials     = "credentials do not match any active user"
	ErrDevFailedToHashPassword   = "failed to hash password with bcrypt"
	ErrDevAuthTokenMissing       = "authorization header missing or empty"
	ErrDevAuthTokenInvalid       = "token is invalid"
	ErrDevAuthTokenExpired       = "token is invalid or expired"
	ErrDevAuthGenerateToken      = "failed to generate JWT"
	ErrDevAuthSigningMethod      = "unexpected JWT signing method"
	ErrDevRoleNotAllowed         = "caller role is not allowed for this route"
	ErrDevSessionNotFound        = "session does not exist in redis"
	ErrDevServerDeadlineExceeded = "server deadline exceeded"
	ErrDevLoginRateLimited       = "login attempt budget exhausted for this IP"

	ErrDevDBFailedToFindDocument     = "database failed to find document"
	ErrDevDBFailedToInsertDocument   = "database failed to insert document"
	ErrDevDBFailedToUpdateDocument   = "database failed to update document"
	ErrDevDBFailedToDeleteDocument   = "database failed to delete document"
	ErrDevDBFailedToIterateDocuments = "database failed to iterate documents"
	ErrDevDBStringNotObjectID        = "string is not a valid ObjectID"

	ErrDevRedisGetData        = "redis failed to get data"
	ErrDevRedisSetData        = "redis failed to set data"
	ErrDevRedisDeleteData     = "redis failed to delete data"
	ErrDevCannotMarshalJSON   = "cannot marshal value to JSON"
	ErrDevRabbitMQPublish     = "rabbitmq failed to publish message to queue %s"
	ErrDevRabbitMQOpenChannel = "rabbitmq failed to open channel"
)
