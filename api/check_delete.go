package api

import (
	"errors"
	"net/http"
	"slices"
	"strings"

	"pinghq/uptime-api/db"
	"pinghq/uptime-api/model"
	"pinghq/uptime-api/validators"

	"go.uber.org/zap"
)

// CheckDelete removes the check record and reaches back into the owning
// user to drop its id from the checks list. A check that is missing
// from that list means the mirror invariant is already broken, which is
// surfaced as an internal inconsistency instead of being healed.
func (a *API) CheckDelete(r *Request) (*Response, error) {
	id := strings.TrimSpace(r.Query["id"])
	if validators.IDValidator(id) != nil {
		return nil, errValidation("Missing required field")
	}

	var check model.Check

	err := a.Store.Read(db.CategoryChecks, id, &check)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			// Kept at 400 for compatibility with the original API
			return nil, errValidation("Could not find the specified check")
		}

		zap.L().Error("Failed to read check", zap.Error(err))
		return nil, errInternal("Internal server error")
	}

	if !a.verifyToken(r.Token(), check.UserPhone) {
		return nil, errAuth()
	}

	unlock := a.userLocks.Lock(check.UserPhone)
	defer unlock()

	if err := a.Store.Delete(db.CategoryChecks, id); err != nil {
		zap.L().Error("Failed to delete check", zap.Error(err))
		return nil, errInternal("Could not delete the check data")
	}

	var user model.User

	if err := a.Store.Read(db.CategoryUsers, check.UserPhone, &user); err != nil {
		zap.L().Error("Failed to read the check's owner", zap.Error(err), zap.String("checkID", id))
		return nil, errInternal("Could not find the user who created the check, so the check was not removed from their list")
	}

	i := slices.Index(user.Checks, id)
	if i < 0 {
		zap.L().Error("Check missing from the owner's checks list",
			zap.String("checkID", id),
			zap.String("phone", check.UserPhone))

		return nil, errInternal("Could not find the check on the user's record, so it was not removed")
	}

	user.Checks = slices.Delete(user.Checks, i, i+1)

	if err := a.Store.Update(db.CategoryUsers, check.UserPhone, &user); err != nil {
		zap.L().Error("Failed to remove check from user", zap.Error(err), zap.String("checkID", id))
		return nil, errInternal("Could not update the user's checks list")
	}

	return &Response{Status: http.StatusOK}, nil
}
