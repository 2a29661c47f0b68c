package authapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/jrsteele09/fringe-portal/internal/apiclient"
	"github.com/jrsteele09/fringe-portal/internal/errors"
)

// InvalidCredentialCode is the error code for a wrong email or password.
const InvalidCredentialCode = "auth/invalid-credential"

// IsAuthFailure reports whether err means the credentials were rejected, as
// opposed to the service failing.
func IsAuthFailure(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, errors.ErrNotAdmin) || errors.Is(err, errors.ErrAuthFailure) {
		return true
	}
	apiErr, ok := apiclient.AsError(err)
	if !ok {
		return false
	}
	return apiErr.Code == InvalidCredentialCode ||
		apiErr.Status == http.StatusUnauthorized ||
		strings.Contains(apiErr.Message, "auth")
}

// Classify maps err onto ErrAuthFailure or ErrUnknownFailure, keeping err in
// the chain.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	if IsAuthFailure(err) {
		return fmt.Errorf("%w: %w", errors.ErrAuthFailure, err)
	}
	return fmt.Errorf("%w: %w", errors.ErrUnknownFailure, err)
}
