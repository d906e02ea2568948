// Package errwrap wraps and collects errors. Wrapping goes through
// pkg/errors, so Cause recovers the innermost error; collecting goes through
// go-multierror.
package errwrap

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// Wrapf prefixes err with a formatted message. Wrapping nil gives nil.
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// Append collects err into reterr, skipping nils, so a loop can accumulate
// failures without checking either side. A single failure is returned as is;
// two or more become a *multierror.Error rendered by listFormat.
func Append(reterr, err error) error {
	switch {
	case err == nil:
		return reterr
	case reterr == nil:
		return err
	}
	merr := multierror.Append(reterr, err)
	merr.ErrorFormat = listFormat
	return merr
}

func listFormat(errs []error) string {
	msgs := make([]string, len(errs))
	for i, err := range errs {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("%d errors: %s", len(errs), strings.Join(msgs, "; "))
}

// Cause unwraps err down to the error that started the chain.
func Cause(err error) error {
	return errors.Cause(err)
}
