package value

import "github.com/tethal/natrix/pkg/gc"

// ObjectArray is a fixed-size array of Values. It is not itself a natrix
// object — it has no Type — only the GC-traced backing store a List grows
// into.
type ObjectArray struct {
	gc.Header
	Data []Value
}

func (a *ObjectArray) Trace(g *gc.GC) {
	for _, v := range a.Data {
		g.Visit(v)
	}
}

// NewObjectArray allocates an array of size nil slots.
func NewObjectArray(g *gc.GC, size int64) *ObjectArray {
	a := &ObjectArray{Data: make([]Value, size)}
	g.Alloc(a)
	return a
}

// CopyObjectArray allocates a new array of newSize slots, copying as many
// of source's elements as fit and leaving the rest nil.
func CopyObjectArray(g *gc.GC, source *ObjectArray, newSize int64) *ObjectArray {
	a := &ObjectArray{Data: make([]Value, newSize)}
	n := int64(len(source.Data))
	if newSize < n {
		n = newSize
	}
	copy(a.Data, source.Data[:n])
	g.Alloc(a)
	return a
}
