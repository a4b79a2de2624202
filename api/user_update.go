package api

import (
	"errors"
	"net/http"

	"pinghq/uptime-api/db"
	"pinghq/uptime-api/model"
	"pinghq/uptime-api/validators"

	"go.uber.org/zap"
)

// UserUpdate merges the supplied fields into the stored user record.
// Required payload: phone plus at least one of firstName, lastName,
// password. Requires a token valid for that phone.
func (a *API) UserUpdate(r *Request) (*Response, error) {
	phone := r.String("phone")
	if validators.PhoneValidator(phone) != nil {
		return nil, errValidation("Missing required field")
	}

	firstName := r.String("firstName")
	lastName := r.String("lastName")
	password := r.String("password")

	if firstName == "" && lastName == "" && password == "" {
		return nil, errValidation("Missing fields to update")
	}

	if !a.verifyToken(r.Token(), phone) {
		return nil, errAuth()
	}

	var user model.User

	err := a.Store.Read(db.CategoryUsers, phone, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			// Kept at 400 for compatibility with the original API
			return nil, errValidation("The specified user does not exist")
		}

		zap.L().Error("Failed to read user", zap.Error(err))
		return nil, errInternal("Internal server error")
	}

	if firstName != "" {
		user.FirstName = firstName
	}
	if lastName != "" {
		user.LastName = lastName
	}
	if password != "" {
		if err := validators.PasswordValidator(password); err != nil {
			return nil, errValidation(err.Error())
		}

		user.HashedPassword = a.Hasher.Digest(password)
	}

	if err := a.Store.Update(db.CategoryUsers, phone, &user); err != nil {
		zap.L().Error("Failed to update user", zap.Error(err))
		return nil, errInternal("Could not update the user")
	}

	return &Response{Status: http.StatusOK}, nil
}
