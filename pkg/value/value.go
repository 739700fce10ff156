// Package value implements natrix's runtime object model: a small set of
// heap-resident value types dispatched through a per-type operation table,
// mirroring a C "v-table of function pointers" design with Go closures
// standing in for the function pointers.
package value

import (
	"github.com/tethal/natrix/pkg/gc"
	"github.com/tethal/natrix/pkg/rterror"
)

// heap is the collector every value allocation and v-table closure that
// needs to allocate (currently only Str's get-element) goes through. It is
// process-wide the same way the GC state, the int cache, and the bool
// singletons are process-wide in the original implementation; Init sets it
// once at interpreter startup (or once per test).
var heap *gc.GC

// Init installs g as the collector values are allocated from.
func Init(g *gc.GC) { heap = g }

// Value is implemented by every runtime object: the small-int cache
// entries, the bool singletons, and every heap-allocated str/list/type.
type Value interface {
	gc.Traceable
	Type() *Type
}

// Type is the per-variant operation table. A nil slot means the operation
// is unsupported for that variant; dispatch panics with a message naming
// the variant, exactly as the original's NULL-function-pointer check does.
type Type struct {
	gc.Header
	Name string

	AsBoolFn     func(self Value) *Bool
	GetElementFn func(self, index Value) Value
	SetElementFn func(self, index, val Value)
}

func (t *Type) Trace(*gc.GC) {}

// Type returns TypeType for every *Type, including TypeType itself: type
// objects are self-typed.
func (t *Type) Type() *Type { return TypeType }

// TypeType is the type of every Type value, including itself.
var TypeType = &Type{Name: "type", AsBoolFn: func(Value) *Bool { return True }}

// AsBool converts v to a Bool through its type's AsBoolFn, panicking if the
// type doesn't support the conversion.
func AsBool(v Value) *Bool {
	t := v.Type()
	if t.AsBoolFn == nil {
		rterror.Panicf("cannot convert ‘%s’ object to bool", t.Name)
	}
	return t.AsBoolFn(v)
}

// GetElement evaluates self[index] through self's type.
func GetElement(self, index Value) Value {
	t := self.Type()
	if t.GetElementFn == nil {
		rterror.Panicf("‘%s’ object is not subscriptable", t.Name)
	}
	return t.GetElementFn(self, index)
}

// SetElement evaluates self[index] = val through self's type.
func SetElement(self, index, val Value) {
	t := self.Type()
	if t.SetElementFn == nil {
		rterror.Panicf("‘%s’ object does not support item assignment", t.Name)
	}
	t.SetElementFn(self, index, val)
}

// CheckIndex validates index against a container of the given length:
// index must be an Int, negative indices are normalized by adding length,
// and the result must land in [0, length).
func CheckIndex(index Value, length int64) int64 {
	i, ok := index.(*Int)
	if !ok {
		rterror.Panicf("Index must be an integer")
	}
	v := i.V
	if v < 0 {
		v += length
	}
	if v < 0 || v >= length {
		rterror.Panicf("Index out of range")
	}
	return v
}
