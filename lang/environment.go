package lang

// Env is a persistent association list. Every binding is its own frame
// pointing at the frame it extends, so extending never disturbs an
// environment that is already shared by a closure. The nil *Env is the empty
// environment.
type Env struct {
	name  string
	cell  *Cell
	outer *Env
}

// Empty is the environment with no bindings.
var Empty *Env

// Cell holds a binding's value. Cells created by Declare start empty and are
// filled exactly once.
type Cell struct {
	value Value
}

// Set fills an empty cell. Filling it twice is a programming error.
func (c *Cell) Set(v Value) {
	if c.value != nil {
		panic("lang: cell already set")
	}
	c.value = v
}

func (c *Cell) Get() (Value, bool) { return c.value, c.value != nil }

// Extend returns a new environment in which name is bound to v, shadowing
// any earlier binding of name.
func (e *Env) Extend(name string, v Value) *Env {
	return &Env{name: name, cell: &Cell{value: v}, outer: e}
}

// Declare returns a new environment binding name to an empty cell. The
// caller fills the cell before anything looks name up; this is how a
// function gets to see itself.
func (e *Env) Declare(name string) (*Env, *Cell) {
	cell := &Cell{}
	return &Env{name: name, cell: cell, outer: e}, cell
}

// Lookup finds the most recent binding of name.
func (e *Env) Lookup(name string) (Value, bool) {
	for ; e != nil; e = e.outer {
		if e.name == name {
			return e.cell.Get()
		}
	}
	return nil, false
}

// Names lists the visible names, innermost first.
func (e *Env) Names() []string {
	seen := map[string]bool{}
	names := []string{}
	for ; e != nil; e = e.outer {
		if seen[e.name] {
			continue
		}
		seen[e.name] = true
		names = append(names, e.name)
	}
	return names
}
