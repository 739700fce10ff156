package eval

import (
	"github.com/tethal/natrix/pkg/gc"
	"github.com/tethal/natrix/pkg/value"
)

// cell is one binding in the environment's linked list. Next is a
// gc.Traceable (nil or *cell) rather than a concrete *cell so that an empty
// tail is a genuine nil interface, not a typed nil pointer masquerading as
// one — gc.GC.Visit relies on that distinction.
type cell struct {
	gc.Header
	Name string
	Val  value.Value
	Next gc.Traceable
}

func (c *cell) Trace(g *gc.GC) {
	g.Visit(c.Val)
	g.Visit(c.Next)
}

// Env is the run's single variable environment: a cell chain rooted once,
// for the whole run. Binding a new name mutates head in place rather than
// pushing a fresh GC root, so the chain can grow without disturbing
// whatever else is on the root stack at the time.
type Env struct {
	gc.Header
	head gc.Traceable
}

func (e *Env) Trace(g *gc.GC) { g.Visit(e.head) }

// NewEnv allocates an empty environment and roots it for the caller; the
// caller is responsible for unrooting it (and running a final collection)
// when the run ends.
func NewEnv(g *gc.GC) *Env {
	e := &Env{}
	g.Alloc(e)
	g.Root(e)
	return e
}

// Lookup returns the binding for name, if any.
func (e *Env) Lookup(name string) (value.Value, bool) {
	for cur, ok := e.head.(*cell); ok && cur != nil; cur, ok = cur.Next.(*cell) {
		if cur.Name == name {
			return cur.Val, true
		}
	}
	return nil, false
}

// Set rebinds name to val if it already exists, or prepends a new cell
// (first assignment) otherwise. val must already be reachable from a root
// established by the caller: prepending a cell can allocate and so can
// trigger a collection before val is wired into the chain.
func (e *Env) Set(g *gc.GC, name string, val value.Value) {
	for cur, ok := e.head.(*cell); ok && cur != nil; cur, ok = cur.Next.(*cell) {
		if cur.Name == name {
			cur.Val = val
			return
		}
	}
	next := &cell{Name: name, Val: val, Next: e.head}
	g.Alloc(next)
	e.head = next
}
