package commands

import (
	"hotel-frontdesk/internal/infra"
	"hotel-frontdesk/internal/pkg/errs"
)

// ErrDomainValidation marks input that parsed fine but breaks a business rule.
// Handlers answer it with 422; the wrapped domain error carries the message.
var ErrDomainValidation = errs.New("domain validation failed")

func invalid(err error) error {
	return errs.Mark(err, ErrDomainValidation)
}

// notFoundAs swaps a repository NOT_FOUND for the command-level sentinel.
func notFoundAs(err, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return sentinel
	}
	return err
}
