package api

import (
	"errors"
	"net/http"
	"time"

	"pinghq/uptime-api/db"
	"pinghq/uptime-api/model"
	"pinghq/uptime-api/validators"

	"go.uber.org/zap"
)

// TokenExtend resets a still-valid token's expiry to one hour from now.
// Required payload: id and an explicit extend flag.
func (a *API) TokenExtend(r *Request) (*Response, error) {
	id := r.String("id")
	if validators.IDValidator(id) != nil || !r.Bool("extend") {
		return nil, errValidation("Missing required fields or fields are invalid")
	}

	var tok model.Token

	err := a.Store.Read(db.CategoryTokens, id, &tok)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			// Kept at 400 for compatibility with the original API
			return nil, errValidation("Specified token does not exist")
		}

		zap.L().Error("Failed to read token", zap.Error(err))
		return nil, errInternal("Internal server error")
	}

	if !tok.Expires.After(time.Now()) {
		return nil, errValidation("The token has already expired and cannot be extended")
	}

	tok.Expires = time.Now().Add(tokenTTL)

	if err := a.Store.Update(db.CategoryTokens, id, &tok); err != nil {
		zap.L().Error("Failed to update token", zap.Error(err))
		return nil, errInternal("Could not update the token's expiration")
	}

	return &Response{Status: http.StatusOK}, nil
}
