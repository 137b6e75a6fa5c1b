package exceptions

import (
	"fmt"

	"medibook-client/internal/pkg/constvars"
)

var (
	// Validation
	ErrInputValidation = func(err error) *CustomError {
		return WrapWithError(err, KindValidation, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrPasswordsDoNotMatch = func() *CustomError {
		return WrapWithoutError(KindValidation, constvars.StatusBadRequest, constvars.ErrClientPasswordsDoNotMatch, constvars.ErrDevValidationFailed)
	}

	// Auth
	ErrAuthRejected = func(statusCode int) *CustomError {
		return WrapWithoutError(KindAuthRejected, statusCode, constvars.ErrClientInvalidEmailOrPassword, constvars.ErrDevInvalidCredentials)
	}
	ErrSignupRejected = func(statusCode int) *CustomError {
		return WrapWithoutError(KindHTTPStatus, statusCode, constvars.ErrClientSignupRejected, constvars.ErrDevSignupRejected)
	}
	ErrNotLoggedIn = func() *CustomError {
		return WrapWithoutError(KindSession, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevNotLoggedIn)
	}

	// Identity provider
	ErrIdentityTokenParse = func(err error) *CustomError {
		return WrapWithError(err, KindValidation, constvars.StatusBadRequest, constvars.ErrClientInvalidIdentityToken, constvars.ErrDevIdentityTokenParse)
	}
	ErrIdentityTokenMissingEmail = func() *CustomError {
		return WrapWithoutError(KindValidation, constvars.StatusBadRequest, constvars.ErrClientInvalidIdentityToken, constvars.ErrDevIdentityTokenMissingEmail)
	}

	// HTTP
	ErrCreateHTTPRequest = func(err error) *CustomError {
		return WrapWithError(err, KindInternal, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCreateHTTPRequest)
	}
	ErrSendHTTPRequest = func(err error) *CustomError {
		return WrapWithError(err, KindNetwork, constvars.StatusGatewayTimeout, constvars.ErrClientServerUnreachable, constvars.ErrDevSendHTTPRequest)
	}
	ErrUnexpectedStatusCode = func(statusCode int, endpoint string) *CustomError {
		return WrapWithoutError(KindHTTPStatus, statusCode, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevUnexpectedStatusCode, statusCode, endpoint))
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return WrapWithError(err, KindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrDecodeResponse = func(err error, resource string) *CustomError {
		return WrapWithError(err, KindDecode, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevDecodeResponse, resource))
	}

	// Session store
	ErrSessionStoreRead = func(err error) *CustomError {
		return WrapWithError(err, KindSession, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevSessionStoreRead)
	}
	ErrSessionStoreWrite = func(err error) *CustomError {
		return WrapWithError(err, KindSession, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevSessionStoreWrite)
	}
	ErrSessionStoreClear = func(err error) *CustomError {
		return WrapWithError(err, KindSession, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevSessionStoreClear)
	}

	// Redis
	ErrRedisSet = func(err error) *CustomError {
		return WrapWithError(err, KindSession, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSetData)
	}
	ErrRedisGet = func(err error) *CustomError {
		return WrapWithError(err, KindSession, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisGetData)
	}
	ErrRedisDelete = func(err error) *CustomError {
		return WrapWithError(err, KindSession, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDeleteData)
	}
)
