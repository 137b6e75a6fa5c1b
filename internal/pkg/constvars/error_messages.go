package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"eqfield":  "must match %s",
	"gt":       "must be greater than %s",
	"oneof":    "must be one of [%s]",
	"password": "must be at least 8 characters long",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":     true,
	"max":     true,
	"eqfield": true,
	"gt":      true,
	"oneof":   true,
}

// Error messages for clients
const (
	ErrClientInvalidEmailOrPassword        = "invalid email or password"
	ErrClientPasswordsDoNotMatch           = "passwords do not match"
	ErrClientSignupRejected                = "signup could not be completed"
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientServerUnreachable             = "cannot reach the server, check your connection"
	ErrClientNotLoggedIn                   = "you are not logged in"
	ErrClientInvalidIdentityToken          = "sign-in with your provider failed"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
)

// Error messages for developers
const (
	ErrDevValidationFailed          = "validation failed"
	ErrDevInvalidInput              = "invalid input"
	ErrDevInvalidCredentials        = "credentials rejected by the server"
	ErrDevSignupRejected            = "signup rejected by the server"
	ErrDevCreateHTTPRequest         = "failed to create HTTP request"
	ErrDevSendHTTPRequest           = "failed to send HTTP request"
	ErrDevUnexpectedStatusCode      = "unexpected HTTP status code %d from %s"
	ErrDevCannotMarshalJSON         = "cannot convert struct or other data types to JSON"
	ErrDevDecodeResponse            = "cannot decode %s response body"
	ErrDevSessionStoreRead          = "failed to read the persisted session"
	ErrDevSessionStoreWrite         = "failed to persist the session"
	ErrDevSessionStoreClear         = "failed to clear the persisted session"
	ErrDevNotLoggedIn               = "operation requires a logged-in session"
	ErrDevIdentityTokenParse        = "cannot parse identity token claims"
	ErrDevIdentityTokenMissingEmail = "identity token carries no email claim"
	ErrDevRedisSetData              = "failed to set data to redis"
	ErrDevRedisGetData              = "failed to get data from redis"
	ErrDevRedisDeleteData           = "failed to delete data from redis"
)
