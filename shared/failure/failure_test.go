package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"voyage/shared/failure"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "check_in must be before check_out",
	}

	if f.Error() != "check_in must be before check_out" {
		t.Errorf("unexpected error message, got %s", f.Error())
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		code   int
		reason string
	}{
		{name: "bad request", err: failure.BadRequest(errors.New("bad")), code: http.StatusBadRequest, reason: failure.ReasonValidation},
		{name: "bad request from string", err: failure.BadRequestFromString("bad"), code: http.StatusBadRequest, reason: failure.ReasonValidation},
		{name: "unauthorized", err: failure.Unauthorized("token expired"), code: http.StatusUnauthorized},
		{name: "internal", err: failure.InternalError(errors.New("db down")), code: http.StatusInternalServerError},
		{name: "unimplemented", err: failure.Unimplemented("Export"), code: http.StatusNotImplemented},
		{name: "not found", err: failure.NotFound("booking not found"), code: http.StatusNotFound},
		{name: "conflict", err: failure.Conflict("conflict"), code: http.StatusConflict},
		{name: "forbidden", err: failure.Forbidden("denied"), code: http.StatusForbidden},
		{name: "capacity exceeded", err: failure.CapacityExceeded("sold out"), code: http.StatusConflict, reason: failure.ReasonCapacityExceeded},
		{name: "uniqueness conflict", err: failure.UniquenessConflict("dup"), code: http.StatusConflict, reason: failure.ReasonUniquenessConflict},
		{name: "invalid transition", err: failure.InvalidTransition("nope"), code: http.StatusUnprocessableEntity, reason: failure.ReasonInvalidTransition},
		{name: "stay not finished", err: failure.StayNotFinished("early"), code: http.StatusUnprocessableEntity, reason: failure.ReasonStayNotFinished},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := failure.GetCode(tt.err); got != tt.code {
				t.Errorf("expected code %d, got %d", tt.code, got)
			}

			if got := failure.GetReason(tt.err); got != tt.reason {
				t.Errorf("expected reason %q, got %q", tt.reason, got)
			}
		})
	}
}

func TestNilInputs(t *testing.T) {
	if failure.BadRequest(nil) != nil {
		t.Error("expected BadRequest(nil) to be nil")
	}

	if failure.InternalError(nil) != nil {
		t.Error("expected InternalError(nil) to be nil")
	}
}

func TestFailure_Is(t *testing.T) {
	wrapped := fmt.Errorf("create booking: %w", failure.CapacityExceeded("room type sold out"))

	if !errors.Is(wrapped, failure.ErrCapacityExceeded) {
		t.Error("expected wrapped capacity failure to match sentinel")
	}

	if errors.Is(wrapped, failure.ErrInvalidTransition) {
		t.Error("capacity failure must not match invalid transition")
	}

	if errors.Is(failure.Conflict("plain"), failure.ErrUniquenessConflict) {
		t.Error("reasonless failure must not match a reason sentinel")
	}

	if errors.Is(errors.New("plain"), failure.ErrValidation) {
		t.Error("plain error must not match")
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected int
	}{
		{name: "failure error", input: &failure.Failure{Code: http.StatusBadRequest}, expected: http.StatusBadRequest},
		{name: "wrapped failure", input: fmt.Errorf("x: %w", failure.NotFound("x")), expected: http.StatusNotFound},
		{name: "regular error", input: errors.New("regular"), expected: http.StatusInternalServerError},
		{name: "nil error", input: nil, expected: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := failure.GetCode(tt.input); got != tt.expected {
				t.Errorf("expected code to be %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestIsFailure(t *testing.T) {
	if !failure.IsFailure(fmt.Errorf("wrapped: %w", failure.CapacityExceeded("sold out"))) {
		t.Error("expected wrapped failure to be detected")
	}

	if failure.IsFailure(errors.New("connection reset")) {
		t.Error("expected plain error not to be a failure")
	}
}
