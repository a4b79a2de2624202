package api

import (
	"errors"
	"net/http"
	"time"

	"pinghq/uptime-api/db"
	"pinghq/uptime-api/model"
	"pinghq/uptime-api/util"
	"pinghq/uptime-api/validators"

	"go.uber.org/zap"
)

const tokenTTL = time.Hour

// TokenCreate exchanges a phone and password for a fresh bearer token
// that expires one hour from now.
func (a *API) TokenCreate(r *Request) (*Response, error) {
	phone := r.String("phone")
	password := r.String("password")

	if validators.PhoneValidator(phone) != nil || validators.PasswordValidator(password) != nil {
		return nil, errValidation("Missing required fields")
	}

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

	if a.Hasher.Digest(password) != user.HashedPassword {
		return nil, errValidation("Password did not match the specified user's stored password")
	}

	id, err := util.NewID()
	if err != nil {
		zap.L().Error("Failed to generate token ID", zap.Error(err))
		return nil, errInternal("Internal server error")
	}

	tok := model.Token{
		ID:      id,
		Phone:   phone,
		Expires: time.Now().Add(tokenTTL),
	}

	if err := a.Store.Create(db.CategoryTokens, id, &tok); err != nil {
		zap.L().Error("Failed to create token", zap.Error(err))
		return nil, errInternal("Could not create the new token")
	}

	return &Response{Status: http.StatusOK, Payload: tok}, nil
}
