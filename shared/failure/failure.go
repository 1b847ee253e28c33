package failure

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a Failure beyond its HTTP code so callers can branch on the
// specific guard that rejected an operation.
const (
	KindInvalidTransition = "invalid_transition"
	KindRoomNotAvailable  = "room_not_available"
	KindInvalidCharge     = "invalid_charge"
	KindLedgerFrozen      = "ledger_frozen"
	KindNotFound          = "not_found"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Kind    string `json:"kind,omitempty"`
	Message string `json:"message"`
}

var InvalidPageParam = &Failure{Code: http.StatusBadRequest, Message: "invalid page parameter"}
var InvalidLimitParam = &Failure{Code: http.StatusBadRequest, Message: "invalid limit parameter"}
var ForbiddenError = &Failure{Code: http.StatusForbidden, Message: "You don't have the required permissions"}
var ResourceRestrictedError = &Failure{Code: http.StatusForbidden, Message: "You don't have permission to access this resource"}

// Error returns the error message.
func (e *Failure) Error() string {
	return e.Message
}

// InvalidTransition rejects a lifecycle event that is not legal from the
// booking's current status. The message names both sides so the caller can
// surface an actionable reason.
func InvalidTransition(current, requested string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Kind:    KindInvalidTransition,
		Message: fmt.Sprintf("cannot %s a booking with status %s", requested, current),
	}
}

// RoomNotAvailable reports a room that is not Available, typically because a
// concurrent check-in claimed it first.
func RoomNotAvailable(roomID string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Kind:    KindRoomNotAvailable,
		Message: fmt.Sprintf("room %s is not available, choose another", roomID),
	}
}

// InvalidCharge rejects a charge with a non-positive amount or zero quantity.
func InvalidCharge(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Kind:    KindInvalidCharge,
		Message: msg,
	}
}

// LedgerFrozen rejects charge edits after the owning booking checked out.
func LedgerFrozen(bookingStatus string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Kind:    KindLedgerFrozen,
		Message: fmt.Sprintf("charge ledger is frozen for a booking with status %s", bookingStatus),
	}
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
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

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Kind:    KindNotFound,
		Message: entityName + " not found",
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: message,
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

// GetKind returns the failure kind, or an empty string for untyped errors.
func GetKind(err error) string {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Kind
	}

	return ""
}

// IsKind reports whether err is a Failure of the given kind.
func IsKind(err error, kind string) bool {
	return GetKind(err) == kind
}
