package eval

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"pix/errwrap"
	"pix/lang"
)

// Interpreter is the top-level driver. It is the only place evaluation
// errors are caught and reported.
type Interpreter struct {
	Evaluator *Evaluator

	// Output receives results and error reports from Run. Nil discards them.
	Output io.Writer

	Debug bool
	Logf  func(format string, v ...interface{})
}

// Result is the outcome of one top-level evaluation.
type Result struct {
	Expr  lang.Expr
	Value lang.Value
	// Location is where an image result was materialized.
	Location string
	Err      error
}

// Run evaluates expr from the empty environment. An image result is
// materialized; anything else is printed. On error the reason is printed
// and returned, and nothing else is produced.
func (obj *Interpreter) Run(expr lang.Expr) error {
	obj.logf("running: %s", expr)
	res := obj.execute(expr)
	if res.Err != nil {
		obj.printf("Evaluation error: %s\n", res.Err)
		if obj.Debug {
			obj.logf("cause: %v", errwrap.Cause(res.Err))
		}
		return res.Err
	}
	if res.Location != "" {
		obj.printf("Result: %s written to %s\n", res.Value, res.Location)
		return nil
	}
	obj.printf("Result: %s\n", res.Value)
	return nil
}

// RunAll evaluates independent programs concurrently, at most parallel at a
// time (no limit if parallel <= 0). Each program gets its own environment.
// Results come back in input order; failures are also collected into the
// returned error. Cancelling ctx stops programs that have not started yet,
// but a started evaluation always runs to completion. Nothing is printed.
func (obj *Interpreter) RunAll(ctx context.Context, exprs []lang.Expr, parallel int) ([]Result, error) {
	results := make([]Result, len(exprs))
	g := &errgroup.Group{}
	if parallel > 0 {
		g.SetLimit(parallel)
	}
	for i := range exprs {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = Result{Expr: exprs[i], Err: err}
				return nil
			}
			obj.logf("running #%d: %s", i, exprs[i])
			results[i] = obj.execute(exprs[i])
			return nil
		})
	}
	g.Wait() // workers never fail, errors live in results

	var reterr error
	for i, res := range results {
		reterr = errwrap.Append(reterr, errwrap.Wrapf(res.Err, "program #%d", i))
	}
	return results, reterr
}

func (obj *Interpreter) execute(expr lang.Expr) Result {
	rv, err := obj.Evaluator.Evaluate(expr)
	if err != nil {
		return Result{Expr: expr, Err: err}
	}
	img, ok := rv.(*lang.Image)
	if !ok {
		return Result{Expr: expr, Value: rv}
	}
	imager, err := obj.Evaluator.imager()
	if err != nil {
		return Result{Expr: expr, Err: err}
	}
	where, err := imager.Materialize(img.Data())
	if err != nil {
		return Result{Expr: expr, Err: imagingError(err)}
	}
	if obj.Debug {
		obj.logf("materialized %s to %s", img, where)
	}
	return Result{Expr: expr, Value: img, Location: where}
}

func (obj *Interpreter) printf(format string, v ...interface{}) {
	if obj.Output == nil {
		return
	}
	fmt.Fprintf(obj.Output, format, v...)
}

func (obj *Interpreter) logf(format string, v ...interface{}) {
	if obj.Logf == nil {
		return
	}
	obj.Logf(format, v...)
}
