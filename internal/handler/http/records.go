package http

import (
	"encoding/json"
	"net/http"

	"github.com/mlevashov/taskdesk/internal/logger"
	"github.com/mlevashov/taskdesk/internal/store"
	"github.com/mlevashov/taskdesk/internal/utils"
	"github.com/mlevashov/taskdesk/models"
)

// createRecord stores a new record owned by the authenticated account.
//
// POST /api/records
func (h *Handler) createRecord(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	ctx := r.Context()
	principal, ok := utils.PrincipalFromContext(ctx)
	if !ok {
		log.Error().Msg("principal is missing from request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var request models.RecordRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("error occurred during decoding record request")
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	record, err := h.services.Records.Create(ctx, principal, request)
	if err != nil {
		log.Err(err).Msg("error occurred during creating record")
		writeError(w, err)
		return
	}

	if _, err = utils.WriteJSON(w, record, http.StatusCreated); err != nil {
		log.Err(err).Msg("error occurred during writing response")
	}
}

// listRecords returns the authenticated account's records. Results can be
// narrowed with the optional `state` and `title` query parameters and paged
// with `offset` and `limit`.
//
// GET /api/records
func (h *Handler) listRecords(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	ctx := r.Context()
	principal, ok := utils.PrincipalFromContext(ctx)
	if !ok {
		log.Error().Msg("principal is missing from request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	filter := store.RecordFilter{
		State:  models.RecordState(r.URL.Query().Get("state")),
		Title:  r.URL.Query().Get("title"),
		Offset: parseUintQueryParam(r, "offset"),
		Limit:  parseUintQueryParam(r, "limit"),
	}

	records, err := h.services.Records.List(ctx, principal, filter)
	if err != nil {
		log.Err(err).Msg("error occurred during listing records")
		writeError(w, err)
		return
	}

	if _, err = utils.WriteJSON(w, models.RecordList{Records: records}, http.StatusOK); err != nil {
		log.Err(err).Msg("error occurred during writing response")
	}
}

// getRecord returns a single record by id. Only the owner may read it.
//
// GET /api/records/{id}
func (h *Handler) getRecord(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	ctx := r.Context()
	principal, ok := utils.PrincipalFromContext(ctx)
	if !ok {
		log.Error().Msg("principal is missing from request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	recordID, err := parseIDPathParam(r)
	if err != nil {
		log.Err(err).Msg("error occurred during parsing record id")
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	record, err := h.services.Records.Get(ctx, principal, recordID)
	if err != nil {
		log.Err(err).Msg("error occurred during getting record")
		writeError(w, err)
		return
	}

	if _, err = utils.WriteJSON(w, record, http.StatusOK); err != nil {
		log.Err(err).Msg("error occurred during writing response")
	}
}

// updateRecord replaces a record's title, description and state. Only the
// owner may update it.
//
// PUT /api/records/{id}
func (h *Handler) updateRecord(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	ctx := r.Context()
	principal, ok := utils.PrincipalFromContext(ctx)
	if !ok {
		log.Error().Msg("principal is missing from request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	recordID, err := parseIDPathParam(r)
	if err != nil {
		log.Err(err).Msg("error occurred during parsing record id")
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	var request models.RecordRequest
	if err = json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("error occurred during decoding record request")
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	record, err := h.services.Records.Update(ctx, principal, recordID, request)
	if err != nil {
		log.Err(err).Msg("error occurred during updating record")
		writeError(w, err)
		return
	}

	if _, err = utils.WriteJSON(w, record, http.StatusOK); err != nil {
		log.Err(err).Msg("error occurred during writing response")
	}
}

// deleteRecord removes a record. Only the owner may delete it.
//
// DELETE /api/records/{id}
func (h *Handler) deleteRecord(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	ctx := r.Context()
	principal, ok := utils.PrincipalFromContext(ctx)
	if !ok {
		log.Error().Msg("principal is missing from request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	recordID, err := parseIDPathParam(r)
	if err != nil {
		log.Err(err).Msg("error occurred during parsing record id")
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if err = h.services.Records.Delete(ctx, principal, recordID); err != nil {
		log.Err(err).Msg("error occurred during deleting record")
		writeError(w, err)
		return
	}

	if _, err = utils.WriteJSON(w, models.Message{Message: "Record deleted"}, http.StatusOK); err != nil {
		log.Err(err).Msg("error occurred during writing response")
	}
}
