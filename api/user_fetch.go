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

// UserFetch returns the user record for the phone query parameter,
// minus the stored password hash. Requires a token valid for that phone.
func (a *API) UserFetch(r *Request) (*Response, error) {
	phone := strings.TrimSpace(r.Query["phone"])
	if validators.PhoneValidator(phone) != nil {
		return nil, errValidation("Missing required field")
	}

	if !a.verifyToken(r.Token(), phone) {
		return nil, errAuth()
	}

	var user model.User

	err := a.Store.Read(db.CategoryUsers, phone, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, errNotFound("")
		}

		zap.L().Error("Failed to read user", zap.Error(err))
		return nil, errInternal("Internal server error")
	}

	user.HashedPassword = ""

	return &Response{Status: http.StatusOK, Payload: user}, nil
}
