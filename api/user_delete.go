package api

import (
	"errors"
	"net/http"
	"strings"

	"pinghq/uptime-api/db"
	"pinghq/uptime-api/model"
	"pinghq/uptime-api/validators"

	"go.uber.org/zap"
)

// UserDelete removes the user record and then attempts to delete every
// check the user owned. The cascade is best-effort: each deletion is
// tried independently, already-deleted checks stay deleted, and any
// failure downgrades the result to an internal error.
func (a *API) UserDelete(r *Request) (*Response, error) {
	phone := strings.TrimSpace(r.Query["phone"])
	if validators.PhoneValidator(phone) != nil {
		return nil, errValidation("Missing required field")
	}

	if !a.verifyToken(r.Token(), phone) {
		return nil, errAuth()
	}

	unlock := a.userLocks.Lock(phone)
	defer unlock()

	var user model.User

	err := a.Store.Read(db.CategoryUsers, phone, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			// Kept at 400 for compatibility with the original API
			return nil, errValidation("Could not find the specified user")
		}

		zap.L().Error("Failed to read user", zap.Error(err))
		return nil, errInternal("Internal server error")
	}

	if err := a.Store.Delete(db.CategoryUsers, phone); err != nil {
		zap.L().Error("Failed to delete user", zap.Error(err))
		return nil, errInternal("Could not delete the specified user")
	}

	failed := 0
	for _, checkID := range user.Checks {
		if err := a.Store.Delete(db.CategoryChecks, checkID); err != nil {
			failed++
			zap.L().Error("Failed to cascade-delete check",
				zap.Error(err),
				zap.String("checkID", checkID),
				zap.String("phone", phone))
		}
	}

	if failed > 0 {
		return nil, errInternal("Could not delete all of the user's checks; some may remain in the system")
	}

	return &Response{Status: http.StatusOK}, nil
}
