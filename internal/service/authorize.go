package service

import "github.com/mlevashov/taskdesk/models"

// Authorize applies the ownership rule: a principal may act on a resource
// only when it owns it. Returns [ErrForbidden] when principal.ID differs
// from ownerID; nil otherwise.
//
// The check is deliberately resource-type-agnostic — it is invoked
// identically whether the target is the principal's own account row or one
// of its records — and it never consults the store: it operates purely on
// already-resolved identities. There is no administrative override and no
// shared ownership.
func Authorize(principal models.Account, ownerID int64) error {
	if principal.ID != ownerID {
		return ErrForbidden
	}
	return nil
}
