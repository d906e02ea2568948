package lang

import (
	"bytes"
	"strconv"
	"strings"
)

func (node *Lit) String() string  { return node.Value.String() }
func (node *Name) String() string { return node.Name }

// Unary

func (node *Neg) String() string { return "(-" + node.Right.String() + ")" }
func (node *Not) String() string { return "(not " + node.Right.String() + ")" }

// Binary

func (node *Add) String() string { return binary(node.Left, "+", node.Right) }
func (node *Sub) String() string { return binary(node.Left, "-", node.Right) }
func (node *Mul) String() string { return binary(node.Left, "*", node.Right) }
func (node *Div) String() string { return binary(node.Left, "/", node.Right) }
func (node *Eq) String() string  { return binary(node.Left, "==", node.Right) }
func (node *Lt) String() string  { return binary(node.Left, "<", node.Right) }
func (node *And) String() string { return binary(node.Left, "and", node.Right) }
func (node *Or) String() string  { return binary(node.Left, "or", node.Right) }

func binary(left Expr, op string, right Expr) string {
	var buf bytes.Buffer
	buf.WriteString("(")
	buf.WriteString(left.String())
	buf.WriteString(" ")
	buf.WriteString(op)
	buf.WriteString(" ")
	buf.WriteString(right.String())
	buf.WriteString(")")
	return buf.String()
}

// Conditionals

func (node *If) String() string   { return conditional("if", node.Cond, node.Then, node.Else) }
func (node *Ifnz) String() string { return conditional("ifnz", node.Cond, node.Then, node.Else) }

func conditional(kw string, cond, then, els Expr) string {
	var buf bytes.Buffer
	buf.WriteString("(")
	buf.WriteString(kw)
	buf.WriteString(" ")
	buf.WriteString(cond.String())
	buf.WriteString(" then ")
	buf.WriteString(then.String())
	buf.WriteString(" else ")
	buf.WriteString(els.String())
	buf.WriteString(")")
	return buf.String()
}

// Bindings

func (node *Let) String() string {
	var buf bytes.Buffer
	buf.WriteString("(let ")
	buf.WriteString(node.Name)
	buf.WriteString(" = ")
	buf.WriteString(node.Value.String())
	buf.WriteString(" in ")
	buf.WriteString(node.Body.String())
	buf.WriteString(")")
	return buf.String()
}

func (node *Letfun) String() string {
	var buf bytes.Buffer
	buf.WriteString("(letfun ")
	buf.WriteString(node.Name)
	buf.WriteString("(")
	buf.WriteString(strings.Join(node.Params, ", "))
	buf.WriteString(") = ")
	buf.WriteString(node.Body.String())
	buf.WriteString(" in ")
	buf.WriteString(node.In.String())
	buf.WriteString(")")
	return buf.String()
}

func (node *App) String() string {
	args := make([]string, len(node.Args))
	for i, arg := range node.Args {
		args[i] = arg.String()
	}
	return node.Fun.String() + "(" + strings.Join(args, ", ") + ")"
}

func (node *Seq) String() string {
	return "(" + node.First.String() + "; " + node.Second.String() + ")"
}

// Images

func (node *Read) String() string    { return "read(" + strconv.Quote(node.Path) + ")" }
func (node *Rotate) String() string  { return "rotate(" + node.Image.String() + ")" }
func (node *Lighten) String() string { return "lighten(" + node.Image.String() + ")" }
func (node *Darken) String() string  { return "darken(" + node.Image.String() + ")" }
func (node *Blur) String() string    { return "blur(" + node.Image.String() + ")" }
func (node *Invert) String() string  { return "invert(" + node.Image.String() + ")" }
func (node *Show) String() string    { return "show(" + node.Image.String() + ")" }

func (node *Combine) String() string {
	return "combine(" + node.Left.String() + ", " + node.Right.String() + ")"
}
