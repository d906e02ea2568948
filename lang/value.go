package lang

import (
	"fmt"
	"image"
	"strconv"
	"strings"
)

type ValueType uint8

const (
	_ = ValueType(iota)
	VT_INT
	VT_BOOL
	VT_IMAGE
	VT_CLOSURE
)

func (vt ValueType) String() string {
	switch vt {
	case VT_INT:
		return "integer"
	case VT_BOOL:
		return "boolean"
	case VT_IMAGE:
		return "image"
	case VT_CLOSURE:
		return "function"
	}
	return fmt.Sprintf("ValueType(%d)", uint8(vt))
}

type Value interface {
	Type() ValueType
	String() string
}

type Int int64
type Bool bool

// Image is an opaque handle to picture data owned by the imaging
// collaborator. Nothing in this package looks at its pixels.
type Image struct {
	img image.Image
}

func NewImage(img image.Image) *Image { return &Image{img: img} }

// Data returns the underlying picture, for handing back to the collaborator.
func (v *Image) Data() image.Image { return v.img }

func (v *Image) Width() int  { return v.img.Bounds().Dx() }
func (v *Image) Height() int { return v.img.Bounds().Dy() }

// Closure is a function value. Env is the environment captured at
// definition; for recursive functions it already binds Name to the closure
// itself.
type Closure struct {
	Name   string
	Params []string
	Body   Expr
	Env    *Env
}

func (v Int) Type() ValueType      { return VT_INT }
func (v Bool) Type() ValueType     { return VT_BOOL }
func (v *Image) Type() ValueType   { return VT_IMAGE }
func (v *Closure) Type() ValueType { return VT_CLOSURE }

// =========
// Stringify
// =========

func (v Int) String() string { return strconv.FormatInt(int64(v), 10) }
func (v Bool) String() string {
	if v {
		return "true"
	}
	return "false"
}

func (v *Image) String() string {
	return fmt.Sprintf("[Image %dx%d]", v.Width(), v.Height())
}

func (v *Closure) String() string {
	name := v.Name
	if name != "" {
		name = " " + name
	}
	return fmt.Sprintf("[Function%s(%s)]", name, strings.Join(v.Params, ", "))
}

// ==========
// Singletons
// ==========

var (
	TRUE  = Bool(true)
	FALSE = Bool(false)
)
