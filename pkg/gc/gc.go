// Package gc implements a small mark-and-sweep collector over an intrusive
// linked list of heap objects, mirroring a C collector that steals the
// pointer's low bit for the mark flag. Go gives every value an honest word
// of its own, so the mark bit becomes an explicit field instead.
//
// GC is not safe for concurrent use; natrix runs single-threaded by design.
package gc

import (
	"fmt"
	"io"

	"github.com/tethal/natrix/pkg/rterror"
)

// MaxRoots bounds the root stack, matching the original's fixed-capacity
// array.
const MaxRoots = 64

const initialThreshold = 100

// Traceable is implemented by every heap-managed object. Trace must call
// Visit on every outgoing pointer the object holds so the collector can
// follow it during the mark phase.
type Traceable interface {
	Trace(gc *GC)
	header() *Header
}

// Header is embedded as the first field of every Traceable. Its fields are
// unexported: callers never touch them directly, only through GC's Alloc,
// Visit, and Collect.
type Header struct {
	next   Traceable
	marked bool
}

func (h *Header) header() *Header { return h }

// GC owns the heap object list, the root stack, and the collection
// threshold. The zero value is not usable; use New.
type GC struct {
	head         Traceable
	objectsCount int
	threshold    int
	roots        []Traceable

	// Verbose, when set, makes Collect write a one-line summary of each
	// collection to Log (os.Stderr-equivalent is the caller's choice).
	Verbose bool
	Log     io.Writer

	lastFreed int
}

// New returns a GC with an empty heap and the default initial threshold.
func New() *GC {
	return &GC{threshold: initialThreshold}
}

// Alloc registers a freshly constructed object as live heap state. obj's
// Header must be zero-valued (as it is by default in a new Go value); Alloc
// links it onto the heap list and may trigger a collection first if the
// object count is at threshold.
//
// Per the GC's safety contract, obj must be made reachable from a root
// (directly rooted, or wired into an already-reachable object) before the
// next call to Alloc or Collect.
func (g *GC) Alloc(obj Traceable) {
	if g.objectsCount >= g.threshold {
		g.Collect()
	}
	h := obj.header()
	h.next = g.head
	h.marked = false
	g.head = obj
	g.objectsCount++
}

// Root pushes obj onto the root stack, making it (and everything reachable
// from it) survive collection until the matching Unroot.
func (g *GC) Root(obj Traceable) {
	if len(g.roots) >= MaxRoots {
		rterror.Panicf("too many GC roots")
	}
	g.roots = append(g.roots, obj)
}

// Unroot pops the top of the root stack. obj must be exactly the object
// most recently rooted; mismatched push/pop indicates a bug in the caller,
// not a natrix-level fault, so it panics directly rather than through
// rterror.
func (g *GC) Unroot(obj Traceable) {
	n := len(g.roots)
	if n == 0 || g.roots[n-1] != obj {
		panic("gc: unroot does not match top of root stack")
	}
	g.roots = g.roots[:n-1]
}

// Visit marks obj live and traces its children, unless it's nil or already
// marked. Idempotent and cycle-safe: a trace function may call Visit on an
// object that (transitively) visits itself without looping.
func (g *GC) Visit(obj Traceable) {
	if obj == nil {
		return
	}
	h := obj.header()
	if h.marked {
		return
	}
	h.marked = true
	obj.Trace(g)
}

// Collect runs one mark-and-sweep cycle: every rooted object is marked
// (transitively, via Trace), then the heap list is swept, freeing every
// object left unmarked. Survivors are unmarked again so the next cycle
// starts clean. If survivors are at least 87.5% of the threshold, the
// threshold doubles for next time.
func (g *GC) Collect() {
	for _, r := range g.roots {
		g.Visit(r)
	}

	freed := 0
	var prev *Header
	cur := g.head
	for cur != nil {
		h := cur.header()
		next := h.next
		if h.marked {
			h.marked = false
			prev = h
		} else {
			if prev == nil {
				g.head = next
			} else {
				prev.next = next
			}
			freed++
		}
		cur = next
	}
	g.objectsCount -= freed
	g.lastFreed = freed

	if g.objectsCount >= g.threshold-g.threshold/8 {
		if g.threshold >= 1<<62 {
			rterror.Panicf("too many objects")
		}
		g.threshold *= 2
	}

	if g.Verbose {
		w := g.Log
		if w == nil {
			w = io.Discard
		}
		fmt.Fprintf(w, "gc: freed %d objects, %d live, threshold %d\n", freed, g.objectsCount, g.threshold)
	}
}

// Stats reports the collector's current bookkeeping, for tests and for
// diagnostics tooling; it is not part of the language's observable
// behavior.
type Stats struct {
	ObjectsCount int
	Threshold    int
	LastFreed    int
}

func (g *GC) Stats() Stats {
	return Stats{ObjectsCount: g.objectsCount, Threshold: g.threshold, LastFreed: g.lastFreed}
}
