package validators

import (
	"errors"
	"slices"
)

var (
	ErrProtocolInvalid   = errors.New("protocol must be http or https")
	ErrURLEmpty          = errors.New("no url provided")
	ErrMethodInvalid     = errors.New("method must be one of get, post, put, delete")
	ErrSuccessCodesEmpty = errors.New("at least one success code is required")
	ErrTimeoutRange      = errors.New("timeout must be between 1 and 5 seconds")
)

var (
	validProtocols = []string{"http", "https"}
	validMethods   = []string{"get", "post", "put", "delete"}
)

func ProtocolValidator(p string) error {
	if !slices.Contains(validProtocols, p) {
		return ErrProtocolInvalid
	}

	return nil
}

func CheckURLValidator(u string) error {
	if u == "" {
		return ErrURLEmpty
	}

	return nil
}

func CheckMethodValidator(m string) error {
	if !slices.Contains(validMethods, m) {
		return ErrMethodInvalid
	}

	return nil
}

func SuccessCodesValidator(codes []int) error {
	if len(codes) == 0 {
		return ErrSuccessCodesEmpty
	}

	return nil
}

func TimeoutValidator(t int) error {
	if t < 1 || t > 5 {
		return ErrTimeoutRange
	}

	return nil
}
