package value

import "github.com/tethal/natrix/pkg/gc"

// Str is an immutable byte string. natrix treats strings as raw bytes, not
// Unicode codepoints: indexing and length are both byte-oriented.
type Str struct {
	gc.Header
	V string
}

func (s *Str) Trace(*gc.GC) {}
func (s *Str) Type() *Type  { return StrType }

// NewStr allocates a new Str with contents s.
func NewStr(g *gc.GC, s string) *Str {
	obj := &Str{V: s}
	g.Alloc(obj)
	return obj
}

// ConcatStr allocates a new Str holding left's bytes followed by right's.
func ConcatStr(g *gc.GC, left, right *Str) *Str {
	return NewStr(g, left.V+right.V)
}

var StrType = &Type{
	Name:     "str",
	AsBoolFn: func(v Value) *Bool { return BoolWrap(len(v.(*Str).V) > 0) },
	GetElementFn: func(self, index Value) Value {
		s := self.(*Str)
		i := CheckIndex(index, int64(len(s.V)))
		return NewStr(heap, s.V[i:i+1])
	},
}
