// Package lang holds the expression tree, the runtime values it evaluates to,
// and the environments that bind names to those values.
package lang

type Node interface {
	String() string
	node()
}

// Expr is an immutable expression. Trees are built once and only read
// afterwards.
type Expr interface {
	Node
	expr()
}

// ========
// Literals
// ========

type Lit struct {
	Value Value
}

type Name struct {
	Name string
}

// =====
// Unary
// =====

type Neg struct{ Right Expr }
type Not struct{ Right Expr }

// ======
// Binary
// ======

type Add struct{ Left, Right Expr }
type Sub struct{ Left, Right Expr }
type Mul struct{ Left, Right Expr }
type Div struct{ Left, Right Expr }
type Eq struct{ Left, Right Expr }
type Lt struct{ Left, Right Expr }
type And struct{ Left, Right Expr }
type Or struct{ Left, Right Expr }

// ============
// Conditionals
// ============

// If branches on a boolean.
type If struct {
	Cond Expr
	Then Expr
	Else Expr
}

// Ifnz branches on an integer: non-zero takes Then, zero takes Else.
type Ifnz struct {
	Cond Expr
	Then Expr
	Else Expr
}

// ========
// Bindings
// ========

// Let binds Name to Value inside Body only. Value cannot see Name.
type Let struct {
	Name  string
	Value Expr
	Body  Expr
}

// Letfun binds Name to a recursive function inside In.
type Letfun struct {
	Name   string
	Params []string
	Body   Expr
	In     Expr
}

type App struct {
	Fun  Expr
	Args []Expr
}

type Seq struct{ First, Second Expr }

// ======
// Images
// ======

type Read struct{ Path string }
type Rotate struct{ Image Expr }
type Combine struct{ Left, Right Expr }
type Lighten struct{ Image Expr }
type Darken struct{ Image Expr }
type Blur struct{ Image Expr }
type Invert struct{ Image Expr }
type Show struct{ Image Expr }

func (*Lit) node()     {}
func (*Name) node()    {}
func (*Neg) node()     {}
func (*Not) node()     {}
func (*Add) node()     {}
func (*Sub) node()     {}
func (*Mul) node()     {}
func (*Div) node()     {}
func (*Eq) node()      {}
func (*Lt) node()      {}
func (*And) node()     {}
func (*Or) node()      {}
func (*If) node()      {}
func (*Ifnz) node()    {}
func (*Let) node()     {}
func (*Letfun) node()  {}
func (*App) node()     {}
func (*Seq) node()     {}
func (*Read) node()    {}
func (*Rotate) node()  {}
func (*Combine) node() {}
func (*Lighten) node() {}
func (*Darken) node()  {}
func (*Blur) node()    {}
func (*Invert) node()  {}
func (*Show) node()    {}

func (*Lit) expr()     {}
func (*Name) expr()    {}
func (*Neg) expr()     {}
func (*Not) expr()     {}
func (*Add) expr()     {}
func (*Sub) expr()     {}
func (*Mul) expr()     {}
func (*Div) expr()     {}
func (*Eq) expr()      {}
func (*Lt) expr()      {}
func (*And) expr()     {}
func (*Or) expr()      {}
func (*If) expr()      {}
func (*Ifnz) expr()    {}
func (*Let) expr()     {}
func (*Letfun) expr()  {}
func (*App) expr()     {}
func (*Seq) expr()     {}
func (*Read) expr()    {}
func (*Rotate) expr()  {}
func (*Combine) expr() {}
func (*Lighten) expr() {}
func (*Darken) expr()  {}
func (*Blur) expr()    {}
func (*Invert) expr()  {}
func (*Show) expr()    {}
