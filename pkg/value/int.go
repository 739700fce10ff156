package value

import "github.com/tethal/natrix/pkg/gc"

// Int is natrix's only numeric type: a 64-bit two's-complement value.
// Immutable once created.
type Int struct {
	gc.Header
	V int64
}

func (i *Int) Trace(*gc.GC) {}
func (i *Int) Type() *Type  { return IntType }

var IntType = &Type{
	Name:     "int",
	AsBoolFn: func(v Value) *Bool { return BoolWrap(v.(*Int).V != 0) },
}

const (
	intCacheMin = -1
	intCacheMax = 255
)

var intCache [intCacheMax - intCacheMin + 1]*Int

func init() {
	for i := range intCache {
		intCache[i] = &Int{V: int64(i) + intCacheMin}
	}
}

// NewInt returns the Int for v, reusing a cached instance (with preserved
// pointer identity) for v in [-1, 255] and allocating a fresh heap object
// otherwise.
func NewInt(g *gc.GC, v int64) *Int {
	if v >= intCacheMin && v <= intCacheMax {
		return intCache[v-intCacheMin]
	}
	obj := &Int{V: v}
	g.Alloc(obj)
	return obj
}
