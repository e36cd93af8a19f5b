package errors

import (
	"fmt"
	"net/http"
	"testing"
)

func TestAppErrorStatus(t *testing.T) {
	if e := NotFound("gone"); e.Status != http.StatusNotFound {
		t.Errorf("NotFound status = %d", e.Status)
	}
	if e := Forbidden("no"); e.Status != http.StatusForbidden {
		t.Errorf("Forbidden status = %d", e.Status)
	}
	if e := BadRequest(ErrCodeValidation, "bad"); e.Status != http.StatusBadRequest {
		t.Errorf("BadRequest status = %d", e.Status)
	}
}

// Unknown email and wrong password must be indistinguishable to the client.
func TestInvalidCredentialsIdentical(t *testing.T) {
	a := InvalidCredentials()
	b := InvalidCredentials()

	if a.Status != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", a.Status)
	}
	if a.Message != b.Message || a.Status != b.Status || a.Code != b.Code {
		t.Error("InvalidCredentials responses differ")
	}
}

func TestGetAppError(t *testing.T) {
	appErr := NotFound("missing")

	if got := GetAppError(appErr); got != appErr {
		t.Error("expected the same AppError back")
	}
	if got := GetAppError(fmt.Errorf("wrapped: %w", appErr)); got != appErr {
		t.Error("expected AppError through wrapping")
	}
	if got := GetAppError(fmt.Errorf("plain")); got != nil {
		t.Error("expected nil for non-AppError")
	}
}
