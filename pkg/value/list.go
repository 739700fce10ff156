package value

import "github.com/tethal/natrix/pkg/gc"

// List is a growable array of Values.
type List struct {
	gc.Header
	Length int64
	Items  *ObjectArray
}

func (l *List) Trace(g *gc.GC) { g.Visit(l.Items) }
func (l *List) Type() *Type    { return ListType }

// NewList allocates an empty list with the given initial backing capacity.
func NewList(g *gc.GC, initialCapacity int64) *List {
	items := NewObjectArray(g, initialCapacity)
	g.Root(items)
	l := &List{Items: items}
	g.Alloc(l)
	g.Unroot(items)
	return l
}

// ListAppend appends item to list, growing its backing array (capacity
// doubled plus one) when full.
func ListAppend(g *gc.GC, list *List, item Value) {
	if list.Length == int64(len(list.Items.Data)) {
		newCapacity := int64(len(list.Items.Data))*2 + 1
		list.Items = CopyObjectArray(g, list.Items, newCapacity)
	}
	list.Items.Data[list.Length] = item
	list.Length++
}

var ListType = &Type{
	Name:     "list",
	AsBoolFn: func(v Value) *Bool { return BoolWrap(v.(*List).Length > 0) },
	GetElementFn: func(self, index Value) Value {
		l := self.(*List)
		i := CheckIndex(index, l.Length)
		return l.Items.Data[i]
	},
	SetElementFn: func(self, index, val Value) {
		l := self.(*List)
		i := CheckIndex(index, l.Length)
		l.Items.Data[i] = val
	},
}
