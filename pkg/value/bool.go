package value

import "github.com/tethal/natrix/pkg/gc"

// Bool has exactly two instances, True and False, never linked into the GC
// heap and never marked.
type Bool struct {
	gc.Header
	V bool
}

func (b *Bool) Trace(*gc.GC) {}
func (b *Bool) Type() *Type  { return BoolType }

var (
	False = &Bool{V: false}
	True  = &Bool{V: true}
)

// BoolWrap returns True or False for v, never allocating.
func BoolWrap(v bool) *Bool {
	if v {
		return True
	}
	return False
}

var BoolType = &Type{
	Name:     "bool",
	AsBoolFn: func(v Value) *Bool { return v.(*Bool) },
}
