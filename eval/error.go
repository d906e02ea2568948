package eval

import (
	"bytes"
	"fmt"

	"pix/lang"
)

// This file implements error formatting and reporting. An error is created
// where it is detected and travels back up the recursion untouched, except
// that every function it unwinds through adds its name to the trace.

type Kind uint8

const (
	_ = Kind(iota)
	KindUnbound
	KindType
	KindDivZero
	KindArity
	KindShape
	KindImaging
)

func (k Kind) String() string {
	switch k {
	case KindUnbound:
		return "unbound name"
	case KindType:
		return "type mismatch"
	case KindDivZero:
		return "division by zero"
	case KindArity:
		return "arity mismatch"
	case KindShape:
		return "image shape mismatch"
	case KindImaging:
		return "imaging failure"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Error lets a Kind stand in as the root cause of errors that did not come
// from the imaging collaborator, so errors.Is(err, KindDivZero) works.
func (k Kind) Error() string { return k.String() }

// EvalError is the only error the evaluator produces.
type EvalError struct {
	Kind   Kind
	Reason string
	// Err is the imaging collaborator's error, if it caused this one.
	Err error
	// Trace holds the names of the functions the error unwound through,
	// innermost first.
	Trace []string
}

func (e *EvalError) Error() string {
	var buf bytes.Buffer
	buf.WriteString(e.Reason)
	for i, fn := range e.Trace {
		if i == 0 {
			buf.WriteString(" (in ")
		} else {
			buf.WriteString(", in ")
		}
		buf.WriteString(fn)
		if i == len(e.Trace)-1 {
			buf.WriteString(")")
		}
	}
	return buf.String()
}

// Cause returns the collaborator error, or the Kind when there is none. It is
// never nil and never e, so errors.Cause from pkg/errors terminates.
func (e *EvalError) Cause() error {
	if e.Err != nil {
		return e.Err
	}
	return e.Kind
}

func (e *EvalError) Unwrap() error { return e.Cause() }

// Is matches the error's Kind, even when the cause is a collaborator error.
func (e *EvalError) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == e.Kind
}

func newError(kind Kind, format string, args ...interface{}) *EvalError {
	return &EvalError{
		Kind:   kind,
		Reason: fmt.Sprintf(format, args...),
	}
}

// typeError reports an operator applied to operands of the wrong kind.
func typeError(what string, got ...lang.Value) *EvalError {
	var buf bytes.Buffer
	buf.WriteString(what)
	buf.WriteString(", got ")
	for i, v := range got {
		if i > 0 {
			buf.WriteString(" and ")
		}
		buf.WriteString(v.Type().String())
	}
	return &EvalError{Kind: KindType, Reason: buf.String()}
}

func (e *EvalError) addTrace(fn string) *EvalError {
	e.Trace = append(e.Trace, fn)
	return e
}
