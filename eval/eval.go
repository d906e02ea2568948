package eval

// Implements the actual evaluator for the language.

import (
	"strings"

	"pix/lang"
)

const (
	DefaultLightenFactor = 1.5
	DefaultDarkenFactor  = 0.5
)

// Evaluator evaluates expressions. It keeps no state between evaluations,
// so one Evaluator may be shared by many goroutines as long as its Imager
// and Logf are safe for concurrent use.
type Evaluator struct {
	// Imager carries out the image operations. It may be nil for programs
	// that never touch images.
	Imager Imager

	// LightenFactor and DarkenFactor are the brightness factors used by
	// lighten and darken. Zero means the default.
	LightenFactor float64
	DarkenFactor  float64

	Debug bool
	Logf  func(format string, v ...interface{})
}

var _ lang.Visitor[*lang.Env, lang.Value] = (*Evaluator)(nil)

// Evaluate evaluates expr in the empty environment.
func (ev *Evaluator) Evaluate(expr lang.Expr) (lang.Value, error) {
	return ev.Eval(lang.Empty, expr)
}

// Eval evaluates expr in env. The returned error is always an *EvalError.
func (ev *Evaluator) Eval(env *lang.Env, expr lang.Expr) (lang.Value, error) {
	return lang.Walk[*lang.Env, lang.Value](ev, env, expr)
}

func (ev *Evaluator) VisitLit(env *lang.Env, node *lang.Lit) (lang.Value, error) {
	return node.Value, nil
}

func (ev *Evaluator) VisitName(env *lang.Env, node *lang.Name) (lang.Value, error) {
	v, ok := env.Lookup(node.Name)
	if !ok {
		if ev.Debug {
			ev.logf("unbound %q, visible names: %s", node.Name, strings.Join(env.Names(), ", "))
		}
		return nil, newError(KindUnbound, "unbound name %q", node.Name)
	}
	return v, nil
}

// ============
// Conditionals
// ============

func (ev *Evaluator) VisitIf(env *lang.Env, node *lang.If) (lang.Value, error) {
	cond, err := ev.Eval(env, node.Cond)
	if err != nil {
		return nil, err
	}
	b, ok := cond.(lang.Bool)
	if !ok {
		return nil, typeError("if requires a boolean condition", cond)
	}
	if b {
		return ev.Eval(env, node.Then)
	}
	return ev.Eval(env, node.Else)
}

func (ev *Evaluator) VisitIfnz(env *lang.Env, node *lang.Ifnz) (lang.Value, error) {
	cond, err := ev.Eval(env, node.Cond)
	if err != nil {
		return nil, err
	}
	n, ok := cond.(lang.Int)
	if !ok {
		return nil, typeError("ifnz requires an integer condition", cond)
	}
	if n != 0 {
		return ev.Eval(env, node.Then)
	}
	return ev.Eval(env, node.Else)
}

// ========
// Bindings
// ========

func (ev *Evaluator) VisitLet(env *lang.Env, node *lang.Let) (lang.Value, error) {
	v, err := ev.Eval(env, node.Value)
	if err != nil {
		return nil, err
	}
	return ev.Eval(env.Extend(node.Name, v), node.Body)
}

func (ev *Evaluator) VisitLetfun(env *lang.Env, node *lang.Letfun) (lang.Value, error) {
	seen := map[string]bool{}
	for _, p := range node.Params {
		if seen[p] {
			return nil, newError(KindArity, "duplicate parameter name %q in %s", p, node.Name)
		}
		seen[p] = true
	}
	inner, cell := env.Declare(node.Name)
	fn := &lang.Closure{
		Name:   node.Name,
		Params: node.Params,
		Body:   node.Body,
		Env:    inner,
	}
	cell.Set(fn) // nothing can have looked it up yet
	return ev.Eval(inner, node.In)
}

func (ev *Evaluator) VisitApp(env *lang.Env, node *lang.App) (lang.Value, error) {
	callee, err := ev.Eval(env, node.Fun)
	if err != nil {
		return nil, err
	}
	fn, ok := callee.(*lang.Closure)
	if !ok {
		return nil, typeError("application requires a function", callee)
	}
	args := make([]lang.Value, len(node.Args))
	for i, arg := range node.Args {
		v, err := ev.Eval(env, arg)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	if len(args) != len(fn.Params) {
		return nil, newError(KindArity, "%s expects %d arguments, got %d", fn, len(fn.Params), len(args))
	}
	local := fn.Env
	for i, p := range fn.Params {
		local = local.Extend(p, args[i])
	}
	if ev.Debug {
		ev.logf("call: %s%v", fn.Name, args)
	}
	rv, err := ev.Eval(local, fn.Body)
	if err != nil {
		name := fn.Name
		if name == "" {
			name = "<anonymous>"
		}
		return nil, err.(*EvalError).addTrace(name)
	}
	return rv, nil
}

func (ev *Evaluator) VisitSeq(env *lang.Env, node *lang.Seq) (lang.Value, error) {
	if _, err := ev.Eval(env, node.First); err != nil {
		return nil, err
	}
	return ev.Eval(env, node.Second)
}

// =========
// Utilities
// =========

func (ev *Evaluator) logf(format string, v ...interface{}) {
	if ev.Logf == nil {
		return
	}
	ev.Logf(format, v...)
}

// operands evaluates left then right.
func (ev *Evaluator) operands(env *lang.Env, left, right lang.Expr) (lang.Value, lang.Value, error) {
	l, err := ev.Eval(env, left)
	if err != nil {
		return nil, nil, err
	}
	r, err := ev.Eval(env, right)
	if err != nil {
		return nil, nil, err
	}
	return l, r, nil
}
