package service

import "playtube/internal/apperr"

// requireOwner is the ownership check applied after a resource has been
// loaded. Services always resolve existence first, so a missing resource
// surfaces as NotFound and never as Forbidden.
func requireOwner(ownerID, callerID, kind string) error {
	if ownerID != callerID {
		return apperr.Forbidden("you do not own this " + kind)
	}
	return nil
}
