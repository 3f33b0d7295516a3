package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mlevashov/taskdesk/internal/logger"
	"github.com/mlevashov/taskdesk/internal/utils"
	"github.com/mlevashov/taskdesk/models"
)

// registerAccount creates a new account from the submitted handle, contact
// address and password.
//
// POST /api/accounts
func (h *Handler) registerAccount(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.AccountRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("error occurred during decoding account request")
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	account, err := h.services.Accounts.Register(ctx, request)
	if err != nil {
		log.Err(err).Msg("error occurred during registering account")
		writeError(w, err)
		return
	}

	if _, err = utils.WriteJSON(w, account, http.StatusCreated); err != nil {
		log.Err(err).Msg("error occurred during writing response")
	}
}

// listAccounts returns a page of registered accounts. Pagination is driven
// by the optional `offset` and `limit` query parameters.
//
// GET /api/accounts
func (h *Handler) listAccounts(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	offset := parseUintQueryParam(r, "offset")
	limit := parseUintQueryParam(r, "limit")

	accounts, err := h.services.Accounts.List(r.Context(), offset, limit)
	if err != nil {
		log.Err(err).Msg("error occurred during listing accounts")
		writeError(w, err)
		return
	}

	if _, err = utils.WriteJSON(w, models.AccountList{Accounts: accounts}, http.StatusOK); err != nil {
		log.Err(err).Msg("error occurred during writing response")
	}
}

// getAccount returns a single account by its numeric id.
//
// GET /api/accounts/{id}
func (h *Handler) getAccount(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	accountID, err := parseIDPathParam(r)
	if err != nil {
		log.Err(err).Msg("error occurred during parsing account id")
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	account, err := h.services.Accounts.Get(r.Context(), accountID)
	if err != nil {
		log.Err(err).Msg("error occurred during getting account")
		writeError(w, err)
		return
	}

	if _, err = utils.WriteJSON(w, account, http.StatusOK); err != nil {
		log.Err(err).Msg("error occurred during writing response")
	}
}

// updateAccount replaces the authenticated account's handle, contact address
// and password. An account may only update itself.
//
// PUT /api/accounts/{id}
func (h *Handler) updateAccount(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	ctx := r.Context()
	principal, ok := utils.PrincipalFromContext(ctx)
	if !ok {
		log.Error().Msg("principal is missing from request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	accountID, err := parseIDPathParam(r)
	if err != nil {
		log.Err(err).Msg("error occurred during parsing account id")
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	var request models.AccountRequest
	if err = json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("error occurred during decoding account request")
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	account, err := h.services.Accounts.Update(ctx, principal, accountID, request)
	if err != nil {
		log.Err(err).Msg("error occurred during updating account")
		writeError(w, err)
		return
	}

	if _, err = utils.WriteJSON(w, account, http.StatusOK); err != nil {
		log.Err(err).Msg("error occurred during writing response")
	}
}

// deleteAccount removes the authenticated account. An account may only delete
// itself.
//
// DELETE /api/accounts/{id}
func (h *Handler) deleteAccount(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	ctx := r.Context()
	principal, ok := utils.PrincipalFromContext(ctx)
	if !ok {
		log.Error().Msg("principal is missing from request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	accountID, err := parseIDPathParam(r)
	if err != nil {
		log.Err(err).Msg("error occurred during parsing account id")
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if err = h.services.Accounts.Delete(ctx, principal, accountID); err != nil {
		log.Err(err).Msg("error occurred during deleting account")
		writeError(w, err)
		return
	}

	if _, err = utils.WriteJSON(w, models.Message{Message: "Account deleted"}, http.StatusOK); err != nil {
		log.Err(err).Msg("error occurred during writing response")
	}
}

// parseIDPathParam extracts the `{id}` chi URL parameter as int64.
func parseIDPathParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// parseUintQueryParam returns the named query parameter as uint64, or zero
// when the parameter is absent or not a valid unsigned number.
func parseUintQueryParam(r *http.Request, name string) uint64 {
	value, err := strconv.ParseUint(r.URL.Query().Get(name), 10, 64)
	if err != nil {
		return 0
	}
	return value
}
