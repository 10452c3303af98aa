package http

import (
	"net/http"

	"github.com/aussiebroadwan/accounts/internal/accounts/service"
	"github.com/aussiebroadwan/accounts/pkg/accountsdk"
	"github.com/aussiebroadwan/accounts/pkg/httpx"
)

// UsersHandler serves registration, login and the credential endpoints.
type UsersHandler struct {
	InviteService     *service.InviteService
	CredentialService *service.CredentialService
	AccountService    *service.AccountService
}

// HandleSignup godoc
//
//	@Summary		Register with an invite
//	@Description	Creates a user account for the invited email and consumes the invite.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			token	path		string								true	"Invite token"
//	@Param			request	body		accountsdk.PasswordRequest			true	"Chosen password"
//	@Success		201		{object}	accountsdk.Response					"success"
//	@Failure		400		{object}	accountsdk.ValidationErrorResponse	"Invalid password, unknown token or email already registered"
//	@Router			/api/v1/users/signup/{token} [post].
func (h *UsersHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	var req accountsdk.PasswordRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadBody(w)
		return
	}

	_, err := h.InviteService.ConsumeInviteAndRegister(r.Context(), r.PathValue("token"), req.Password)
	if err != nil {
		writeError(w, err, statusMap{service.KindDependency: http.StatusBadRequest})
		return
	}

	writeSuccess(w, http.StatusCreated)
}

// HandleCheckResetToken godoc
//
//	@Summary		Check a reset token
//	@Tags			Users
//	@Produce		json
//	@Param			token	path		string				true	"Reset token"
//	@Success		200		{object}	accountsdk.Response	"Token is valid"
//	@Failure		400		{object}	accountsdk.Response	"Token is invalid"
//	@Router			/api/v1/users/check-token/{token} [get].
func (h *UsersHandler) HandleCheckResetToken(w http.ResponseWriter, r *http.Request) {
	valid, err := h.CredentialService.CheckResetToken(r.Context(), r.PathValue("token"))
	if err != nil {
		writeError(w, err, nil)
		return
	}
	if !valid {
		writeMessage(w, http.StatusBadRequest, service.MsgTokenInvalid)
		return
	}
	writeSuccess(w, http.StatusOK)
}

// HandleResetPassword godoc
//
//	@Summary		Reset a forgotten password
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			token	path		string								true	"Reset token"
//	@Param			request	body		accountsdk.PasswordRequest			true	"New password"
//	@Success		201		{object}	accountsdk.Response					"success"
//	@Failure		400		{object}	accountsdk.ValidationErrorResponse	"Invalid password or unknown token"
//	@Router			/api/v1/users/reset-password/{token} [post].
func (h *UsersHandler) HandleResetPassword(w http.ResponseWriter, r *http.Request) {
	var req accountsdk.PasswordRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadBody(w)
		return
	}

	if err := h.CredentialService.ResetPassword(r.Context(), r.PathValue("token"), req.Password); err != nil {
		writeError(w, err, statusMap{service.KindDependency: http.StatusBadRequest})
		return
	}

	writeSuccess(w, http.StatusCreated)
}

// HandleChangePassword godoc
//
//	@Summary		Change the caller's password
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		accountsdk.ChangePasswordRequest	true	"Current and new password"
//	@Success		201		{object}	accountsdk.Response					"success"
//	@Failure		400		{object}	accountsdk.ValidationErrorResponse	"Invalid new password"
//	@Failure		401		{object}	accountsdk.Response					"Missing token or incorrect password"
//	@Security		BearerAuth
//	@Router			/api/v1/users/change-password/ [post].
func (h *UsersHandler) HandleChangePassword(w http.ResponseWriter, r *http.Request) {
	var req accountsdk.ChangePasswordRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadBody(w)
		return
	}

	var err error
	if claims, ok := httpx.ClaimsFromContext(r.Context()); ok {
		err = h.CredentialService.ChangePasswordAs(r.Context(), claims, req.Password, req.NewPassword)
	} else {
		bearer, _ := httpx.BearerToken(r)
		err = h.CredentialService.ChangePassword(r.Context(), bearer, req.Password, req.NewPassword)
	}
	if err != nil {
		writeError(w, err, statusMap{
			service.KindIncorrectCredentials: http.StatusUnauthorized,
			service.KindNotFound:             http.StatusUnauthorized,
			service.KindDependency:           http.StatusUnauthorized,
		})
		return
	}

	writeSuccess(w, http.StatusCreated)
}

// HandleChangeEmail godoc
//
//	@Summary		Change the caller's email
//	@Description	There is no availability check: an address already used by another account fails with 500.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		accountsdk.ChangeEmailRequest		true	"New email and current password"
//	@Success		201		{object}	accountsdk.Response					"success"
//	@Failure		400		{object}	accountsdk.ValidationErrorResponse	"Invalid email"
//	@Failure		401		{object}	accountsdk.Response					"Missing or invalid bearer token"
//	@Failure		500		{object}	accountsdk.Response					"User not found, incorrect password or store failure"
//	@Security		BearerAuth
//	@Router			/api/v1/users/change-email [post].
func (h *UsersHandler) HandleChangeEmail(w http.ResponseWriter, r *http.Request) {
	var req accountsdk.ChangeEmailRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadBody(w)
		return
	}

	var err error
	if claims, ok := httpx.ClaimsFromContext(r.Context()); ok {
		err = h.CredentialService.ChangeEmailAs(r.Context(), claims, req.Password, req.Email)
	} else {
		bearer, _ := httpx.BearerToken(r)
		err = h.CredentialService.ChangeEmail(r.Context(), bearer, req.Password, req.Email)
	}
	if err != nil {
		writeError(w, err, statusMap{
			service.KindNotFound:             http.StatusInternalServerError,
			service.KindIncorrectCredentials: http.StatusInternalServerError,
		})
		return
	}

	writeSuccess(w, http.StatusCreated)
}

// HandleLogin godoc
//
//	@Summary		Log in
//	@Description	Returns a bearer token valid for five days. Unknown email and wrong password fail identically.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		accountsdk.LoginRequest		true	"Credentials"
//	@Success		200		{object}	accountsdk.LoginResponse	"success, token"
//	@Failure		400		{object}	accountsdk.Response			"Incorrect username or password"
//	@Router			/api/v1/users/login [post].
func (h *UsersHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req accountsdk.LoginRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadBody(w)
		return
	}

	token, err := h.CredentialService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err, nil)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, accountsdk.LoginResponse{Success: true, Token: token})
}

// HandleForgotPassword godoc
//
//	@Summary		Request a password reset
//	@Description	Stores a reset token on the account and mails the reset link. If the mail fails the token is kept.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		accountsdk.EmailRequest				true	"Account email"
//	@Success		201		{object}	accountsdk.Response					"success"
//	@Failure		400		{object}	accountsdk.ValidationErrorResponse	"Invalid email, unknown email or delivery failed"
//	@Router			/api/v1/users/forgot-password [post].
func (h *UsersHandler) HandleForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req accountsdk.EmailRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadBody(w)
		return
	}

	err := h.CredentialService.ForgotPassword(r.Context(), req.Email)
	if err != nil {
		writeError(w, err, statusMap{
			service.KindNotFound:   http.StatusBadRequest,
			service.KindDependency: http.StatusBadRequest,
		})
		return
	}

	writeSuccess(w, http.StatusCreated)
}

// HandleChangeRole godoc
//
//	@Summary		Change an account's role
//	@Description	Takes effect at the account's next login.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string								true	"Account ID"
//	@Param			request	body		accountsdk.ChangeRoleRequest		true	"user or admin"
//	@Success		201		{object}	accountsdk.Response					"success"
//	@Failure		400		{object}	accountsdk.ValidationErrorResponse	"Role is not available"
//	@Failure		401		{object}	accountsdk.Response					"Missing or invalid bearer token"
//	@Failure		403		{object}	accountsdk.Response					"Caller is not an admin"
//	@Failure		500		{object}	accountsdk.Response					"User not found"
//	@Security		BearerAuth
//	@Router			/api/v1/users/change-role/{id} [put].
func (h *UsersHandler) HandleChangeRole(w http.ResponseWriter, r *http.Request) {
	var req accountsdk.ChangeRoleRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadBody(w)
		return
	}

	if err := h.AccountService.ChangeRole(r.Context(), r.PathValue("id"), req.Role); err != nil {
		writeError(w, err, statusMap{service.KindNotFound: http.StatusInternalServerError})
		return
	}

	writeSuccess(w, http.StatusCreated)
}

// HandleList godoc
//
//	@Summary		List accounts
//	@Tags			Users
//	@Produce		json
//	@Success		200	{object}	accountsdk.AccountListResponse	"results, data"
//	@Failure		401	{object}	accountsdk.Response				"Missing or invalid bearer token"
//	@Failure		403	{object}	accountsdk.Response				"Caller is not an admin"
//	@Security		BearerAuth
//	@Router			/api/v1/users [get].
func (h *UsersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.AccountService.ListAccounts(r.Context())
	if err != nil {
		writeError(w, err, nil)
		return
	}

	data := make([]accountsdk.Account, 0, len(accounts))
	for _, a := range accounts {
		data = append(data, accountsdk.Account{ID: a.ID, Email: a.Email, Role: a.Role.String()})
	}

	httpx.WriteJSON(w, http.StatusOK, accountsdk.AccountListResponse{
		Success: true,
		Results: len(data),
		Data:    data,
	})
}

// HandleDelete godoc
//
//	@Summary		Delete an account
//	@Tags			Users
//	@Produce		json
//	@Param			id	path		string				true	"Account ID"
//	@Success		201	{object}	accountsdk.Response	"success"
//	@Failure		401	{object}	accountsdk.Response	"Missing or invalid bearer token"
//	@Failure		403	{object}	accountsdk.Response	"Caller is not an admin"
//	@Failure		404	{object}	accountsdk.Response	"User is not found"
//	@Security		BearerAuth
//	@Router			/api/v1/users/{id} [delete].
func (h *UsersHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.AccountService.DeleteAccount(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, err, nil)
		return
	}
	writeSuccess(w, http.StatusCreated)
}
