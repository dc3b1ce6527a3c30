package telvora

import (
	"errors"

	"github.com/telvora/telvora-go/internal/apierr"
)

// APIError is the single error kind returned by failed operations. Callers
// branch on its Message, Code and RawData fields rather than on error
// subtypes.
type APIError = apierr.APIError

// AsAPIError extracts the *APIError from err's chain, reporting whether one
// was found.
func AsAPIError(err error) (*APIError, bool) {
	var ae *apierr.APIError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}
