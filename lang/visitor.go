package lang

import "fmt"

// Visitor has one method per expression variant. Adding a variant to the
// language means adding a method here, so every implementation stops
// compiling until it handles the new case.
type Visitor[C, T any] interface {
	VisitLit(c C, node *Lit) (T, error)
	VisitName(c C, node *Name) (T, error)
	VisitNeg(c C, node *Neg) (T, error)
	VisitNot(c C, node *Not) (T, error)
	VisitAdd(c C, node *Add) (T, error)
	VisitSub(c C, node *Sub) (T, error)
	VisitMul(c C, node *Mul) (T, error)
	VisitDiv(c C, node *Div) (T, error)
	VisitEq(c C, node *Eq) (T, error)
	VisitLt(c C, node *Lt) (T, error)
	VisitAnd(c C, node *And) (T, error)
	VisitOr(c C, node *Or) (T, error)
	VisitIf(c C, node *If) (T, error)
	VisitIfnz(c C, node *Ifnz) (T, error)
	VisitLet(c C, node *Let) (T, error)
	VisitLetfun(c C, node *Letfun) (T, error)
	VisitApp(c C, node *App) (T, error)
	VisitSeq(c C, node *Seq) (T, error)
	VisitRead(c C, node *Read) (T, error)
	VisitRotate(c C, node *Rotate) (T, error)
	VisitCombine(c C, node *Combine) (T, error)
	VisitLighten(c C, node *Lighten) (T, error)
	VisitDarken(c C, node *Darken) (T, error)
	VisitBlur(c C, node *Blur) (T, error)
	VisitInvert(c C, node *Invert) (T, error)
	VisitShow(c C, node *Show) (T, error)
}

// Walk dispatches node to the matching Visitor method.
func Walk[C, T any](v Visitor[C, T], c C, node Expr) (T, error) {
	switch node := node.(type) {
	case *Lit:
		return v.VisitLit(c, node)
	case *Name:
		return v.VisitName(c, node)
	case *Neg:
		return v.VisitNeg(c, node)
	case *Not:
		return v.VisitNot(c, node)
	case *Add:
		return v.VisitAdd(c, node)
	case *Sub:
		return v.VisitSub(c, node)
	case *Mul:
		return v.VisitMul(c, node)
	case *Div:
		return v.VisitDiv(c, node)
	case *Eq:
		return v.VisitEq(c, node)
	case *Lt:
		return v.VisitLt(c, node)
	case *And:
		return v.VisitAnd(c, node)
	case *Or:
		return v.VisitOr(c, node)
	case *If:
		return v.VisitIf(c, node)
	case *Ifnz:
		return v.VisitIfnz(c, node)
	case *Let:
		return v.VisitLet(c, node)
	case *Letfun:
		return v.VisitLetfun(c, node)
	case *App:
		return v.VisitApp(c, node)
	case *Seq:
		return v.VisitSeq(c, node)
	case *Read:
		return v.VisitRead(c, node)
	case *Rotate:
		return v.VisitRotate(c, node)
	case *Combine:
		return v.VisitCombine(c, node)
	case *Lighten:
		return v.VisitLighten(c, node)
	case *Darken:
		return v.VisitDarken(c, node)
	case *Blur:
		return v.VisitBlur(c, node)
	case *Invert:
		return v.VisitInvert(c, node)
	case *Show:
		return v.VisitShow(c, node)
	}
	panic(fmt.Sprintf("unhandled node %#+v", node))
}
