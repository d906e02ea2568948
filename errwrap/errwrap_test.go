package errwrap

import (
	"fmt"
	"testing"

	"github.com/hashicorp/go-multierror"
)

func TestWrapfNil(t *testing.T) {
	if err := Wrapf(nil, "whatever: %d", 42); err != nil {
		t.Errorf("expected nil result")
	}
}

func TestWrapfCause(t *testing.T) {
	base := fmt.Errorf("base")
	err := Wrapf(Wrapf(base, "inner"), "outer %s", "x")
	if Cause(err) != base {
		t.Errorf("expected cause to be the base error, got=%v", Cause(err))
	}
	if s := err.Error(); s != "outer x: inner: base" {
		t.Errorf("unexpected message: %q", s)
	}
}

func TestAppend(t *testing.T) {
	if err := Append(nil, nil); err != nil {
		t.Errorf("expected nil result")
	}
	first := fmt.Errorf("first")
	if err := Append(first, nil); err != first {
		t.Errorf("expected the collected error back")
	}
	second := fmt.Errorf("second")
	if err := Append(nil, second); err != second {
		t.Errorf("expected a single error to stay unwrapped")
	}

	var reterr error
	for _, err := range []error{nil, first, nil, second, fmt.Errorf("third")} {
		reterr = Append(reterr, err)
	}
	merr, ok := reterr.(*multierror.Error)
	if !ok {
		t.Fatalf("expected *multierror.Error, got=%#v", reterr)
	}
	if n := len(merr.Errors); n != 3 {
		t.Errorf("expected 3 collected errors, got=%d", n)
	}
	if s := reterr.Error(); s != "3 errors: first; second; third" {
		t.Errorf("unexpected message: %q", s)
	}
}
