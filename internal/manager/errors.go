package manager

import (
	"errors"

	"github.com/jroosing/bindman/internal/bindexec"
)

func isValidationErr(err error) bool {
	var ve *bindexec.ValidationError
	return errors.As(err, &ve)
}

func isReloadErr(err error) bool {
	var re *bindexec.ReloadError
	return errors.As(err, &re)
}
