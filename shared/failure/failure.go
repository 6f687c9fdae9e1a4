package failure

import (
	"errors"
	"net/http"
)

const (
	ReasonValidation         = "validation_error"
	ReasonCapacityExceeded   = "capacity_exceeded"
	ReasonUniquenessConflict = "uniqueness_conflict"
	ReasonInvalidTransition  = "invalid_transition"
	ReasonStayNotFinished    = "stay_not_finished"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
// Reason, when set, classifies the failure independently of its message.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Reason  string `json:"reason,omitempty"`
}

var InvalidPageParam = &Failure{Code: http.StatusBadRequest, Message: "invalid page parameter"}
var InvalidLimitParam = &Failure{Code: http.StatusBadRequest, Message: "invalid limit parameter"}
var ForbiddenError = &Failure{Code: http.StatusForbidden, Message: "You don't have the required permissions"}
var ResourceRestrictedError = &Failure{Code: http.StatusForbidden, Message: "You don't have permission to access this resource"}

// Sentinels for errors.Is. They match any Failure carrying the same reason.
var (
	ErrValidation         = &Failure{Code: http.StatusBadRequest, Reason: ReasonValidation}
	ErrCapacityExceeded   = &Failure{Code: http.StatusConflict, Reason: ReasonCapacityExceeded}
	ErrUniquenessConflict = &Failure{Code: http.StatusConflict, Reason: ReasonUniquenessConflict}
	ErrInvalidTransition  = &Failure{Code: http.StatusUnprocessableEntity, Reason: ReasonInvalidTransition}
	ErrStayNotFinished    = &Failure{Code: http.StatusUnprocessableEntity, Reason: ReasonStayNotFinished}
)

// Error returns the error code and message in a formatted string.
func (e *Failure) Error() string {
	return e.Message
}

// Is reports whether target is a Failure with the same non-empty reason.
func (e *Failure) Is(target error) bool {
	var fail *Failure
	if !errors.As(target, &fail) || fail.Reason == "" {
		return false
	}

	return e.Reason == fail.Reason
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
			Reason:  ReasonValidation,
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
		Reason:  ReasonValidation,
	}
}

// Unauthorized returns a new Failure with code for unauthorized requests.
func Unauthorized(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		}
	}

	return nil
}

// Unimplemented returns a new Failure with code for unimplemented method.
func Unimplemented(methodName string) error {
	return &Failure{
		Code:    http.StatusNotImplemented,
		Message: methodName,
	}
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: entityName,
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: message,
	}
}

// CapacityExceeded reports a reservation that the remaining inventory cannot hold.
func CapacityExceeded(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: message,
		Reason:  ReasonCapacityExceeded,
	}
}

// UniquenessConflict reports a duplicate value on a unique field.
func UniquenessConflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: message,
		Reason:  ReasonUniquenessConflict,
	}
}

// InvalidTransition reports a lifecycle move that the current status does not allow.
func InvalidTransition(message string) error {
	return &Failure{
		Code:    http.StatusUnprocessableEntity,
		Message: message,
		Reason:  ReasonInvalidTransition,
	}
}

// StayNotFinished reports a completion attempted before the check-out date.
func StayNotFinished(message string) error {
	return &Failure{
		Code:    http.StatusUnprocessableEntity,
		Message: message,
		Reason:  ReasonStayNotFinished,
	}
}

func Forbidden(msg string) error {
	return &Failure{
		Code:    http.StatusForbidden,
		Message: msg,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// GetReason returns the reason of an error interface, or an empty string.
func GetReason(err error) string {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Reason
	}

	return ""
}

// IsFailure reports whether err already carries a Failure, so callers can pass it through unwrapped.
func IsFailure(err error) bool {
	var fail *Failure

	return errors.As(err, &fail)
}
