package apierror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"skillhub/internal/domain/fault"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse abstracts all API error responses to the user.
//
// This interface does not implement `error`, since its only purpose
// is to be used for API responses and not for logging circumstances.
//
// In general, the whole ErrorResponse can be sent for serialization.
type ErrorResponse interface {
	// Code is the HTTP status code to be returned.
	Code() int
}

type APIError struct {
	Message string `json:"message"`
	Status  int    `json:"-"`
}

func (a *APIError) Code() int {
	return a.Status
}

type StructuredError struct {
	Errors map[string][]string `json:"errors"`
	Status int                 `json:"-"`
}

func (s *StructuredError) Code() int {
	return s.Status
}

func (s *StructuredError) Add(field, problem string) {
	s.Errors[field] = append(s.Errors[field], problem)
}

var (
	MalformedBodyError   = NewSimple(400, "Malformed JSON body")
	InternalServerError  = NewSimple(500, "Internal server error")
	UnauthorizedError    = NewSimple(401, "Missing or invalid credentials")
	TooManyRequestsError = NewSimple(429, "Too many requests, slow down")

	NotFoundError         = NewSimple(404, "Resource not found")
	InvalidAuthTokenError = NewSimple(401, "The provided auth token is invalid or has expired")
	InvalidCursorError    = NewSimple(400, "The provided pagination cursor is malformed")
	InvalidTopicKindError = NewSimple(400, "Topic kind must be one of: project, course")

	/*
	 * Used for authentications
	 */
	UserAlreadyExistsError      = NewSimple(400, "Email already exists")
	UserAlreadyConfirmedError   = NewSimple(400, "User is already confirmed")
	IDPInvalidPasswordError     = NewSimple(400, "Provided password does not meet requirements")
	IDPExistingEmailError       = NewSimple(400, "Email already exists")
	IDPUserNotFoundError        = NewSimple(404, "User not found")
	IDPUserNotConfirmedError    = NewSimple(400, "User is not confirmed yet")
	IDPCredentialsMismatchError = NewSimple(400, "Credentials mismatch")
	IDPConfirmCodeMismatchError = NewSimple(400, "Confirmation code mismatch")
	IDPConfirmCodeExpiredError  = NewSimple(400, "Confirmation code has expired")
	IDPInvalidParameterError    = NewSimple(400, "Invalid parameters provided, the user is likely already verified")
)

// FromFault maps a tagged domain error to its transport representation.
// The mapping is deterministic: NotFound → 404, Forbidden → 403,
// Conflict → 409 and SelfReference → 418.
func FromFault(f *fault.Error) *APIError {
	switch f.Kind {
	case fault.KindNotFound:
		return NewSimple(http.StatusNotFound, f.Message)
	case fault.KindForbidden:
		return NewSimple(http.StatusForbidden, f.Message)
	case fault.KindConflict:
		return NewSimple(http.StatusConflict, f.Message)
	case fault.KindSelfReference:
		return NewSimple(http.StatusTeapot, f.Message)
	default:
		return InternalServerError
	}
}

func FromValidationError(err error) *StructuredError {
	var ve validator.ValidationErrors
	ok := errors.As(err, &ve)
	if !ok {
		return nil
	}

	problems := map[string][]string{}
	for _, fe := range ve {
		field := strings.ToLower(fe.Field())

		switch fe.Tag() {
		case "required":
			problems[field] = append(problems[field], "This field is required")
		case "min":
			problems[field] = append(problems[field], "Value is too short, min: "+fe.Param())
		case "max":
			problems[field] = append(problems[field], "Value is too long, max: "+fe.Param())
		case "email":
			problems[field] = append(problems[field], "Value must be a valid email address")
		case "nospaces":
			problems[field] = append(problems[field], "Value must not contain whitespace")
		case "nodupes":
			problems[field] = append(problems[field], "Value must not contain duplicates")

		default:
			problems[field] = append(problems[field], "Invalid value provided")
		}
	}

	return &StructuredError{
		Errors: problems,
		Status: http.StatusBadRequest,
	}
}

func NewSimple(status int, msg string, args ...any) *APIError {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return &APIError{Status: status, Message: msg}
}

func NewStructured(code int) *StructuredError {
	return &StructuredError{
		Errors: make(map[string][]string),
		Status: code,
	}
}

func NewForbiddenError(msg string) *APIError {
	return NewSimple(http.StatusForbidden, msg)
}

func NewInvalidParamTypeError(name, dataType string) *APIError {
	return NewSimple(http.StatusBadRequest, "Parameter '%s' has invalid type, expected: %s", name, dataType)
}
