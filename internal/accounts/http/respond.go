package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/accounts/internal/accounts/service"
	"github.com/aussiebroadwan/accounts/pkg/accountsdk"
	"github.com/aussiebroadwan/accounts/pkg/httpx"
)

const msgBadBody = "Request body must be valid JSON"

// statusMap overrides the HTTP status for some error kinds on one endpoint.
type statusMap map[service.Kind]int

func defaultStatus(k service.Kind) int {
	switch k {
	case service.KindValidation, service.KindConflict, service.KindInvalidToken,
		service.KindIncorrectCredentials:
		return http.StatusBadRequest
	case service.KindNotFound:
		return http.StatusNotFound
	case service.KindUnauthorized:
		return http.StatusUnauthorized
	case service.KindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

func writeSuccess(w http.ResponseWriter, status int) {
	httpx.WriteJSON(w, status, accountsdk.Response{Success: true})
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	httpx.WriteJSON(w, status, accountsdk.Response{Success: false, Message: msg})
}

func writeBadBody(w http.ResponseWriter) {
	writeMessage(w, http.StatusBadRequest, msgBadBody)
}

func toFieldErrors(fields []service.FieldError) []accountsdk.FieldError {
	out := make([]accountsdk.FieldError, 0, len(fields))
	for _, f := range fields {
		out = append(out, accountsdk.FieldError{Field: f.Field, Message: f.Message})
	}
	return out
}

// writeError maps a workflow error to a response. Validation failures carry
// the per-field "messages"; everything else a single "message".
func writeError(w http.ResponseWriter, err error, overrides statusMap) {
	var svcErr *service.Error
	if !errors.As(err, &svcErr) {
		writeMessage(w, http.StatusInternalServerError, service.MsgInternal)
		return
	}

	status, ok := overrides[svcErr.Kind]
	if !ok {
		status = defaultStatus(svcErr.Kind)
	}

	if svcErr.Kind == service.KindValidation {
		httpx.WriteJSON(w, status, accountsdk.ValidationErrorResponse{
			Success:  false,
			Messages: toFieldErrors(svcErr.Fields),
		})
		return
	}

	msg := svcErr.Message
	if msg == "" {
		msg = service.MsgInternal
	}
	writeMessage(w, status, msg)
}
