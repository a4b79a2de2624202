package api

import (
	"errors"
	"net/http"

	"pinghq/uptime-api/db"
	"pinghq/uptime-api/model"
	"pinghq/uptime-api/validators"

	"go.uber.org/zap"
)

// UserCreate registers a new user keyed by their phone number.
// Required payload: firstName, lastName, phone, password, tosAgreement.
func (a *API) UserCreate(r *Request) (*Response, error) {
	firstName := r.String("firstName")
	lastName := r.String("lastName")
	phone := r.String("phone")
	password := r.String("password")

	if firstName == "" || lastName == "" {
		return nil, errValidation("Missing required fields")
	}

	if err := validators.PhoneValidator(phone); err != nil {
		return nil, errValidation(err.Error())
	}

	if err := validators.PasswordValidator(password); err != nil {
		return nil, errValidation(err.Error())
	}

	if !r.Bool("tosAgreement") {
		return nil, errValidation("Terms of service must be accepted")
	}

	user := model.User{
		FirstName:      firstName,
		LastName:       lastName,
		Phone:          phone,
		HashedPassword: a.Hasher.Digest(password),
		TOSAgreement:   true,
	}

	err := a.Store.Create(db.CategoryUsers, phone, &user)
	if err != nil {
		if errors.Is(err, db.ErrExists) {
			return nil, errConflict("A user with that phone number already exists")
		}

		zap.L().Error("Failed to create user", zap.Error(err))
		return nil, errInternal("Could not create the new user")
	}

	return &Response{Status: http.StatusOK}, nil
}
