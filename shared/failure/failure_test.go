package failure_test

import (
	"errors"
	"net/http"
	"reception/shared/failure"
	"testing"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestGuardFailures(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
		kind string
	}{
		{
			name: "InvalidTransition",
			err:  failure.InvalidTransition("checked_out", "check_out"),
			code: http.StatusConflict,
			kind: failure.KindInvalidTransition,
		},
		{
			name: "RoomNotAvailable",
			err:  failure.RoomNotAvailable("room-1"),
			code: http.StatusConflict,
			kind: failure.KindRoomNotAvailable,
		},
		{
			name: "InvalidCharge",
			err:  failure.InvalidCharge("unit amount must be positive"),
			code: http.StatusBadRequest,
			kind: failure.KindInvalidCharge,
		},
		{
			name: "LedgerFrozen",
			err:  failure.LedgerFrozen("checked_out"),
			code: http.StatusConflict,
			kind: failure.KindLedgerFrozen,
		},
		{
			name: "NotFound",
			err:  failure.NotFound("booking"),
			code: http.StatusNotFound,
			kind: failure.KindNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := failure.GetCode(tt.err); got != tt.code {
				t.Errorf("expected code %d, got %d", tt.code, got)
			}
			if got := failure.GetKind(tt.err); got != tt.kind {
				t.Errorf("expected kind %s, got %s", tt.kind, got)
			}
			if !failure.IsKind(tt.err, tt.kind) {
				t.Errorf("IsKind(%s) = false, want true", tt.kind)
			}
		})
	}
}

func TestInvalidTransitionMessage(t *testing.T) {
	err := failure.InvalidTransition("cancelled", "check_in")

	want := "cannot check_in a booking with status cancelled"
	if err.Error() != want {
		t.Errorf("expected message %q, got %q", want, err.Error())
	}
}

func TestBadRequest(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected error
	}{
		{
			name:     "with error",
			input:    errors.New("validation failed"),
			expected: &failure.Failure{Code: http.StatusBadRequest, Message: "validation failed"},
		},
		{
			name:     "with nil error",
			input:    nil,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := failure.BadRequest(tt.input)

			if tt.expected == nil {
				if result != nil {
					t.Errorf("expected nil, got %v", result)
				}
			} else {
				f, ok := result.(*failure.Failure)
				if !ok {
					t.Errorf("expected result to be *failure.Failure, got %T", result)
				} else {
					expectedF := tt.expected.(*failure.Failure)
					if f.Code != expectedF.Code || f.Message != expectedF.Message {
						t.Errorf("expected %+v, got %+v", expectedF, f)
					}
				}
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected int
	}{
		{
			name:     "failure error",
			input:    &failure.Failure{Code: http.StatusBadRequest, Message: "test"},
			expected: http.StatusBadRequest,
		},
		{
			name:     "wrapped failure error",
			input:    failure.BadRequestFromString("test"),
			expected: http.StatusBadRequest,
		},
		{
			name:     "regular error",
			input:    errors.New("regular error"),
			expected: http.StatusInternalServerError,
		},
		{
			name:     "nil error",
			input:    nil,
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := failure.GetCode(tt.input)
			if result != tt.expected {
				t.Errorf("expected code to be %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestGetKindUntypedError(t *testing.T) {
	if kind := failure.GetKind(errors.New("plain")); kind != "" {
		t.Errorf("expected empty kind for untyped error, got %s", kind)
	}
}
