package httpx

import (
	"errors"
	"net/http"

	apperrors "github.com/internmatch/internmatch-api/internal/errors"
)

// statusForCode maps AppError codes onto HTTP status codes. Anything the
// service layer did not classify is a 500.
func statusForCode(code apperrors.ErrorCode) int {
	switch code {
	case apperrors.ErrCodeValidation:
		return http.StatusBadRequest
	case apperrors.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case apperrors.ErrCodeForbidden:
		return http.StatusForbidden
	case apperrors.ErrCodeNotFound:
		return http.StatusNotFound
	case apperrors.ErrCodeConflict, apperrors.ErrCodeForeignKey:
		return http.StatusConflict
	case apperrors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// WriteServiceError renders a service-layer error as the API's JSON error
// shape. AppError codes pick the status; unclassified errors are reported as
// a generic 500 without leaking internals to the client.
func WriteServiceError(w http.ResponseWriter, err error) {
	code := apperrors.GetCode(err)
	if code == "" {
		code = apperrors.ErrCodeInternal
	}

	status := statusForCode(code)
	body := map[string]string{
		"error":   string(code),
		"message": publicMessage(err, status),
	}
	if field := apperrors.GetField(err); field != "" {
		body["field"] = field
	}
	WriteJSON(w, status, body)
}

// publicMessage prefers the AppError's curated message and hides internals
// behind a generic line for 500s.
func publicMessage(err error, status int) string {
	if status == http.StatusInternalServerError {
		return "An internal error occurred. Please try again."
	}
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return err.Error()
}
