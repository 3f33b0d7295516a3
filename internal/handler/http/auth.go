package http

import (
	"encoding/json"
	"net/http"

	"github.com/mlevashov/taskdesk/internal/logger"
	"github.com/mlevashov/taskdesk/internal/utils"
	"github.com/mlevashov/taskdesk/models"
)

// login exchanges a contact address and password for a bearer token.
//
// POST /api/auth/token
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("error occurred during decoding login request")
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	account, err := h.services.Auth.Login(ctx, request.ContactAddress, request.Password)
	if err != nil {
		log.Err(err).Msg("error occurred during login")
		writeError(w, err)
		return
	}

	token, err := h.services.Auth.IssueToken(ctx, account)
	if err != nil {
		log.Err(err).Msg("error occurred during issuing token")
		writeError(w, err)
		return
	}

	response := models.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	}
	if _, err = utils.WriteJSON(w, response, http.StatusOK); err != nil {
		log.Err(err).Msg("error occurred during writing response")
	}
}
