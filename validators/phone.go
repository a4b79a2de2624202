package validators

import "errors"

var (
	ErrPhoneEmpty  = errors.New("no phone number provided")
	ErrPhoneFormat = errors.New("phone number must be exactly 10 digits")
)

func PhoneValidator(p string) error {
	if p == "" {
		return ErrPhoneEmpty
	}

	if len(p) != 10 {
		return ErrPhoneFormat
	}

	for _, r := range p {
		if r < '0' || r > '9' {
			return ErrPhoneFormat
		}
	}

	return nil
}
