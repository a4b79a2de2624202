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

// CheckFetch returns the check for the id query parameter. The token is
// checked against the phone stored on the check, so a caller can't
// claim someone else's check by supplying a different phone.
func (a *API) CheckFetch(r *Request) (*Response, error) {
	id := strings.TrimSpace(r.Query["id"])
	if validators.IDValidator(id) != nil {
		return nil, errValidation("Missing required field")
	}

	var check model.Check

	err := a.Store.Read(db.CategoryChecks, id, &check)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, errNotFound("")
		}

		zap.L().Error("Failed to read check", zap.Error(err))
		return nil, errInternal("Internal server error")
	}

	if !a.verifyToken(r.Token(), check.UserPhone) {
		return nil, errAuth()
	}

	return &Response{Status: http.StatusOK, Payload: check}, nil
}
