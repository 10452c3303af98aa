package http

import (
	"net/http"

	"github.com/aussiebroadwan/accounts/internal/accounts/service"
	"github.com/aussiebroadwan/accounts/pkg/accountsdk"
	"github.com/aussiebroadwan/accounts/pkg/httpx"
	"github.com/aussiebroadwan/accounts/pkg/slogx"
)

type BootstrapHandler struct {
	BootstrapService *service.BootstrapService
}

// ServeHTTP handles the bootstrap endpoint for initial system setup.
//
//	@Summary		Bootstrap the accounts service
//	@Description	Creates the first admin account. Only available when a bootstrap token is configured, and only while no account exists.
//	@Tags			Bootstrap
//	@Accept			json
//	@Produce		json
//	@Param			X-Bootstrap-Token	header		string								true	"Bootstrap token for authorization"
//	@Param			request				body		accountsdk.BootstrapRequest			true	"Admin credentials"
//	@Success		201					{object}	accountsdk.BootstrapResponse		"The created admin account"
//	@Failure		400					{object}	accountsdk.ValidationErrorResponse	"Invalid request body or validation failed"
//	@Failure		401					{object}	accountsdk.Response					"Missing or invalid bootstrap token"
//	@Failure		404					{object}	accountsdk.Response					"Bootstrap not enabled (no token configured)"
//	@Failure		409					{object}	accountsdk.Response					"System already bootstrapped"
//	@Failure		500					{object}	accountsdk.Response					"Failed to create admin account"
//	@Router			/api/v1/bootstrap [post].
func (h *BootstrapHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	l := slogx.FromContext(r.Context())

	// 1. Check if enabled
	if !h.BootstrapService.Enabled() {
		writeMessage(w, http.StatusNotFound, service.MsgBootstrapDisabled)
		return
	}

	// 2. Require bootstrap token header
	token := r.Header.Get(accountsdk.BootstrapTokenHeader)
	if token == "" {
		writeMessage(w, http.StatusUnauthorized, "Bootstrap token is required in X-Bootstrap-Token header")
		return
	}

	// 3. Parse request body
	var req accountsdk.BootstrapRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadBody(w)
		return
	}

	// 4. Perform bootstrap
	l.Info("starting to bootstrap")
	admin, err := h.BootstrapService.Bootstrap(r.Context(), token, req.Email, req.Password)
	if err != nil {
		writeError(w, err, statusMap{service.KindConflict: http.StatusConflict})
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, accountsdk.BootstrapResponse{
		Success: true,
		Account: accountsdk.Account{ID: admin.ID, Email: admin.Email, Role: admin.Role.String()},
	})
}
