package eval

import (
	"pix/lang"
)

// This file implements the operators. Every operator checks the kinds of
// its operands itself; integers and booleans are never converted into each
// other.

// =====
// Unary
// =====

func (ev *Evaluator) VisitNeg(env *lang.Env, node *lang.Neg) (lang.Value, error) {
	right, err := ev.Eval(env, node.Right)
	if err != nil {
		return nil, err
	}
	n, ok := right.(lang.Int)
	if !ok {
		return nil, typeError("negation requires integer", right)
	}
	return -n, nil
}

func (ev *Evaluator) VisitNot(env *lang.Env, node *lang.Not) (lang.Value, error) {
	right, err := ev.Eval(env, node.Right)
	if err != nil {
		return nil, err
	}
	b, ok := right.(lang.Bool)
	if !ok {
		return nil, typeError("not requires boolean", right)
	}
	return !b, nil
}

// ==========
// Arithmetic
// ==========

// Add is overloaded: two integers are summed, two images are combined side
// by side. The image meaning duplicates Combine and is kept only because
// existing programs rely on it.
func (ev *Evaluator) VisitAdd(env *lang.Env, node *lang.Add) (lang.Value, error) {
	left, right, err := ev.operands(env, node.Left, node.Right)
	if err != nil {
		return nil, err
	}
	switch l := left.(type) {
	case lang.Int:
		if r, ok := right.(lang.Int); ok {
			return l + r, nil
		}
	case *lang.Image:
		if r, ok := right.(*lang.Image); ok {
			return ev.combine(l, r)
		}
	}
	return nil, typeError("addition requires two integers or two images", left, right)
}

func (ev *Evaluator) VisitSub(env *lang.Env, node *lang.Sub) (lang.Value, error) {
	l, r, err := ev.integers(env, node.Left, node.Right, "subtraction requires two integers")
	if err != nil {
		return nil, err
	}
	return l - r, nil
}

func (ev *Evaluator) VisitMul(env *lang.Env, node *lang.Mul) (lang.Value, error) {
	l, r, err := ev.integers(env, node.Left, node.Right, "multiplication requires two integers")
	if err != nil {
		return nil, err
	}
	return l * r, nil
}

func (ev *Evaluator) VisitDiv(env *lang.Env, node *lang.Div) (lang.Value, error) {
	l, r, err := ev.integers(env, node.Left, node.Right, "division requires two integers")
	if err != nil {
		return nil, err
	}
	if r == 0 {
		return nil, newError(KindDivZero, "division by zero")
	}
	return floorDiv(l, r), nil
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b lang.Int) lang.Int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func (ev *Evaluator) integers(env *lang.Env, left, right lang.Expr, what string) (lang.Int, lang.Int, error) {
	lv, rv, err := ev.operands(env, left, right)
	if err != nil {
		return 0, 0, err
	}
	l, lok := lv.(lang.Int)
	r, rok := rv.(lang.Int)
	if !lok || !rok {
		return 0, 0, typeError(what, lv, rv)
	}
	return l, r, nil
}

// =========
// Relations
// =========

func (ev *Evaluator) VisitEq(env *lang.Env, node *lang.Eq) (lang.Value, error) {
	left, right, err := ev.operands(env, node.Left, node.Right)
	if err != nil {
		return nil, err
	}
	if left.Type() != right.Type() {
		return nil, typeError("equality requires operands of the same kind", left, right)
	}
	switch l := left.(type) {
	case lang.Int, lang.Bool:
		return lang.Bool(left == right), nil
	case *lang.Image:
		r := right.(*lang.Image)
		if l == r {
			return lang.TRUE, nil
		}
		imager, err := ev.imager()
		if err != nil {
			return nil, err
		}
		eq, err := imager.Equal(l.Data(), r.Data())
		if err != nil {
			return nil, imagingError(err)
		}
		return lang.Bool(eq), nil
	}
	return nil, typeError("equality is not defined for functions", left, right)
}

func (ev *Evaluator) VisitLt(env *lang.Env, node *lang.Lt) (lang.Value, error) {
	l, r, err := ev.integers(env, node.Left, node.Right, "less-than requires two integers")
	if err != nil {
		return nil, err
	}
	return lang.Bool(l < r), nil
}

// =====================
// Short-circuit boolean
// =====================

func (ev *Evaluator) VisitAnd(env *lang.Env, node *lang.And) (lang.Value, error) {
	left, err := ev.Eval(env, node.Left)
	if err != nil {
		return nil, err
	}
	l, ok := left.(lang.Bool)
	if !ok {
		return nil, typeError("and requires booleans", left)
	}
	if !l {
		return lang.FALSE, nil
	}
	return ev.boolean(env, node.Right, "and requires booleans")
}

func (ev *Evaluator) VisitOr(env *lang.Env, node *lang.Or) (lang.Value, error) {
	left, err := ev.Eval(env, node.Left)
	if err != nil {
		return nil, err
	}
	l, ok := left.(lang.Bool)
	if !ok {
		return nil, typeError("or requires booleans", left)
	}
	if l {
		return lang.TRUE, nil
	}
	return ev.boolean(env, node.Right, "or requires booleans")
}

func (ev *Evaluator) boolean(env *lang.Env, expr lang.Expr, what string) (lang.Value, error) {
	v, err := ev.Eval(env, expr)
	if err != nil {
		return nil, err
	}
	if _, ok := v.(lang.Bool); !ok {
		return nil, typeError(what, v)
	}
	return v, nil
}
