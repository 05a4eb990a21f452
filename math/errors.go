package math

import "github.com/pkg/errors"

// ErrDomain is the cause of every error returned for an input the
// operation is undefined on, such as normalizing a zero-length vector.
var ErrDomain = errors.New("math: domain error")

func IsDomainError(err error) bool {
	return err != nil && errors.Cause(err) == ErrDomain
}
