package services

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophauth/internal/client/client"
	"github.com/dmitrijs2005/gophauth/internal/common"
)

// ErrOperationInProgress is returned when Register or Login is called while
// another one is still waiting for the server.
var ErrOperationInProgress = errors.New("another authentication request is in progress")

// Reason classifies why an authentication operation failed.
type Reason string

const (
	ReasonValidation   Reason = "validation"
	ReasonConflict     Reason = "conflict"
	ReasonUnauthorized Reason = "unauthorized"
	ReasonNotFound     Reason = "not_found"
	ReasonUnavailable  Reason = "unavailable"
	ReasonServer       Reason = "server"
	ReasonUnknown      Reason = "unknown"
)

// AuthError is returned by Register, Login and AutoLogin.
type AuthError struct {
	Op     string
	Reason Reason
	Err    error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("%s failed (%s): %v", e.Op, e.Reason, e.Err)
}

func (e *AuthError) Unwrap() error { return e.Err }

// ReasonOf extracts the failure reason from any error in the chain.
func ReasonOf(err error) Reason {
	var ae *AuthError
	if errors.As(err, &ae) {
		return ae.Reason
	}
	return classify(err)
}

func classify(err error) Reason {
	switch {
	case errors.Is(err, client.ErrValidation), errors.Is(err, common.ErrorValidation):
		return ReasonValidation
	case errors.Is(err, client.ErrConflict):
		return ReasonConflict
	case errors.Is(err, client.ErrUnauthorized):
		return ReasonUnauthorized
	case errors.Is(err, client.ErrNotFound):
		return ReasonNotFound
	case errors.Is(err, client.ErrUnavailable):
		return ReasonUnavailable
	case errors.Is(err, client.ErrServer):
		return ReasonServer
	default:
		return ReasonUnknown
	}
}

func newAuthError(op string, err error) *AuthError {
	return &AuthError{Op: op, Reason: classify(err), Err: err}
}
