package http

import (
	"errors"
	"net/http"

	"github.com/mlevashov/taskdesk/internal/crypto"
	"github.com/mlevashov/taskdesk/internal/service"
	"github.com/mlevashov/taskdesk/internal/store"
)

// errorStatusMap fixes the externally observable status for every terminal
// rejection reason the service layer can produce.
//
// Note the asymmetry, which is deliberate: the field-specific duplicate
// errors from the registration pre-check map to 400, while the
// store-detected, field-undifferentiated conflict maps to 409.
var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:  http.StatusBadRequest,
	service.ErrContactNotRegistered: http.StatusBadRequest,
	service.ErrWrongPassword:        http.StatusBadRequest,
	service.ErrUnauthenticated:      http.StatusUnauthorized,
	service.ErrForbidden:            http.StatusForbidden,
	service.ErrDuplicateHandle:      http.StatusBadRequest,
	service.ErrDuplicateContact:     http.StatusBadRequest,
	service.ErrUniqueConflict:       http.StatusConflict,

	store.ErrAccountNotFound: http.StatusNotFound,
	store.ErrRecordNotFound:  http.StatusNotFound,

	// hashing entropy failure is an internal fault, not a client error
	crypto.ErrHashingFailure: http.StatusInternalServerError,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError maps err to its status code and writes the error message for
// client-caused rejections. Server-side faults get the generic status text
// so that internal details never leak outward.
func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		http.Error(w, http.StatusText(status), status)
		return
	}
	http.Error(w, err.Error(), status)
}
