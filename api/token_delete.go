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

// TokenDelete removes the token record for the id query parameter,
// logging the caller out.
func (a *API) TokenDelete(r *Request) (*Response, error) {
	id := strings.TrimSpace(r.Query["id"])
	if validators.IDValidator(id) != nil {
		return nil, errValidation("Missing required field")
	}

	var tok model.Token

	err := a.Store.Read(db.CategoryTokens, id, &tok)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			// Kept at 400 for compatibility with the original API
			return nil, errValidation("Could not find the specified token")
		}

		zap.L().Error("Failed to read token", zap.Error(err))
		return nil, errInternal("Internal server error")
	}

	if err := a.Store.Delete(db.CategoryTokens, id); err != nil {
		zap.L().Error("Failed to delete token", zap.Error(err))
		return nil, errInternal("Could not delete the specified token")
	}

	return &Response{Status: http.StatusOK}, nil
}
