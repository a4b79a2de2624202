package validators

import (
	"errors"

	"pinghq/uptime-api/util"
)

var ErrIDLength = errors.New("id must be exactly 20 characters")

// IDValidator checks token and check ids, which share the same format.
func IDValidator(id string) error {
	if len(id) != util.IDLength {
		return ErrIDLength
	}

	return nil
}
