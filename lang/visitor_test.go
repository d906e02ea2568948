package lang

import (
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// recorder returns the name of the method that was called.
type recorder struct{}

func (recorder) VisitLit(_ int, _ *Lit) (string, error)         { return "Lit", nil }
func (recorder) VisitName(_ int, _ *Name) (string, error)       { return "Name", nil }
func (recorder) VisitNeg(_ int, _ *Neg) (string, error)         { return "Neg", nil }
func (recorder) VisitNot(_ int, _ *Not) (string, error)         { return "Not", nil }
func (recorder) VisitAdd(_ int, _ *Add) (string, error)         { return "Add", nil }
func (recorder) VisitSub(_ int, _ *Sub) (string, error)         { return "Sub", nil }
func (recorder) VisitMul(_ int, _ *Mul) (string, error)         { return "Mul", nil }
func (recorder) VisitDiv(_ int, _ *Div) (string, error)         { return "Div", nil }
func (recorder) VisitEq(_ int, _ *Eq) (string, error)           { return "Eq", nil }
func (recorder) VisitLt(_ int, _ *Lt) (string, error)           { return "Lt", nil }
func (recorder) VisitAnd(_ int, _ *And) (string, error)         { return "And", nil }
func (recorder) VisitOr(_ int, _ *Or) (string, error)           { return "Or", nil }
func (recorder) VisitIf(_ int, _ *If) (string, error)           { return "If", nil }
func (recorder) VisitIfnz(_ int, _ *Ifnz) (string, error)       { return "Ifnz", nil }
func (recorder) VisitLet(_ int, _ *Let) (string, error)         { return "Let", nil }
func (recorder) VisitLetfun(_ int, _ *Letfun) (string, error)   { return "Letfun", nil }
func (recorder) VisitApp(_ int, _ *App) (string, error)         { return "App", nil }
func (recorder) VisitSeq(_ int, _ *Seq) (string, error)         { return "Seq", nil }
func (recorder) VisitRead(_ int, _ *Read) (string, error)       { return "Read", nil }
func (recorder) VisitRotate(_ int, _ *Rotate) (string, error)   { return "Rotate", nil }
func (recorder) VisitCombine(_ int, _ *Combine) (string, error) { return "Combine", nil }
func (recorder) VisitLighten(_ int, _ *Lighten) (string, error) { return "Lighten", nil }
func (recorder) VisitDarken(_ int, _ *Darken) (string, error)   { return "Darken", nil }
func (recorder) VisitBlur(_ int, _ *Blur) (string, error)       { return "Blur", nil }
func (recorder) VisitInvert(_ int, _ *Invert) (string, error)   { return "Invert", nil }
func (recorder) VisitShow(_ int, _ *Show) (string, error)       { return "Show", nil }

func TestWalkDispatchesEveryVariant(t *testing.T) {
	nodes := []Expr{
		&Lit{}, &Name{}, &Neg{}, &Not{},
		&Add{}, &Sub{}, &Mul{}, &Div{}, &Eq{}, &Lt{}, &And{}, &Or{},
		&If{}, &Ifnz{}, &Let{}, &Letfun{}, &App{}, &Seq{},
		&Read{}, &Rotate{}, &Combine{}, &Lighten{}, &Darken{}, &Blur{}, &Invert{}, &Show{},
	}
	// one Visit method per node, no more and no less
	if n := reflect.TypeOf((*Visitor[int, string])(nil)).Elem().NumMethod(); n != len(nodes) {
		t.Fatalf("expected %d visitor methods, got=%d", len(nodes), n)
	}
	got := []string{}
	want := []string{}
	for _, node := range nodes {
		name, err := Walk[int, string](recorder{}, 0, node)
		if err != nil {
			t.Fatalf("unexpected error: %+v", err)
		}
		got = append(got, name)
		want = append(want, reflect.TypeOf(node).Elem().Name())
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("dispatch mismatch (-want +got):\n%s", diff)
	}
}
