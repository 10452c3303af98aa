package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/accounts/internal/accounts/service"
	"github.com/aussiebroadwan/accounts/pkg/accountsdk"
	"github.com/aussiebroadwan/accounts/pkg/httpx"
)

type InvitesHandler struct {
	InviteService *service.InviteService
}

// HandleCreate godoc
//
//	@Summary		Invite a new user
//	@Description	Stores an invite for the email and mails a registration link carrying a single-use token. The invite is not kept if the mail cannot be sent.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		accountsdk.EmailRequest					true	"Email to invite"
//	@Success		200		{object}	accountsdk.Response						"success"
//	@Failure		400		{object}	accountsdk.Response						"Already invited, already registered or delivery failed"
//	@Failure		401		{object}	accountsdk.Response						"Missing or invalid bearer token"
//	@Failure		402		{object}	accountsdk.InviteValidationResponse		"Email is invalid"
//	@Failure		403		{object}	accountsdk.Response						"Caller is not an admin"
//	@Security		BearerAuth
//	@Router			/api/v1/invites [post].
func (h *InvitesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req accountsdk.EmailRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadBody(w)
		return
	}

	_, err := h.InviteService.CreateInvite(r.Context(), req.Email)
	if err != nil {
		// Invite validation failures use their own shape and status.
		var svcErr *service.Error
		if errors.As(err, &svcErr) && svcErr.Kind == service.KindValidation {
			httpx.WriteJSON(w, http.StatusPaymentRequired, accountsdk.InviteValidationResponse{
				Errors: toFieldErrors(svcErr.Fields),
			})
			return
		}
		writeError(w, err, statusMap{service.KindDependency: http.StatusBadRequest})
		return
	}

	writeSuccess(w, http.StatusOK)
}

// HandleCheckToken godoc
//
//	@Summary		Check an invite token
//	@Description	Reports whether the token from a registration link belongs to an outstanding invite.
//	@Tags			Invitations
//	@Produce		json
//	@Param			token	path		string				true	"Invite token"
//	@Success		200		{object}	accountsdk.Response	"Token is valid"
//	@Failure		400		{object}	accountsdk.Response	"Token is invalid"
//	@Router			/api/v1/invites/check-token/{token} [get].
func (h *InvitesHandler) HandleCheckToken(w http.ResponseWriter, r *http.Request) {
	valid, err := h.InviteService.CheckToken(r.Context(), r.PathValue("token"))
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

// HandleList godoc
//
//	@Summary		List outstanding invites
//	@Tags			Invitations
//	@Produce		json
//	@Success		200	{object}	accountsdk.InviteListResponse	"results, data"
//	@Failure		401	{object}	accountsdk.Response				"Missing or invalid bearer token"
//	@Failure		403	{object}	accountsdk.Response				"Caller is not an admin"
//	@Security		BearerAuth
//	@Router			/api/v1/invites [get].
func (h *InvitesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	invites, err := h.InviteService.ListInvites(r.Context())
	if err != nil {
		writeError(w, err, nil)
		return
	}

	data := make([]accountsdk.Invite, 0, len(invites))
	for _, inv := range invites {
		data = append(data, accountsdk.Invite{ID: inv.ID, Email: inv.Email})
	}

	httpx.WriteJSON(w, http.StatusOK, accountsdk.InviteListResponse{
		Success: true,
		Results: len(data),
		Data:    data,
	})
}

// HandleDelete godoc
//
//	@Summary		Withdraw an invite
//	@Tags			Invitations
//	@Produce		json
//	@Param			id	path		string				true	"Invite ID"
//	@Success		201	{object}	accountsdk.Response	"success"
//	@Failure		401	{object}	accountsdk.Response	"Missing or invalid bearer token"
//	@Failure		403	{object}	accountsdk.Response	"Caller is not an admin"
//	@Failure		404	{object}	accountsdk.Response	"Invite is not found"
//	@Security		BearerAuth
//	@Router			/api/v1/invites/{id} [delete].
func (h *InvitesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.InviteService.DeleteInvite(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, err, nil)
		return
	}
	writeSuccess(w, http.StatusCreated)
}
