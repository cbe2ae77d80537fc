package overview

// HandlerKind tags how a handler was declared.
type HandlerKind uint8

const (
	// KindUnknown means nothing was declared, the namer falls back to reflection
	KindUnknown HandlerKind = iota
	// KindMethodRef is a reference to a named function or method
	KindMethodRef
	// KindAnonymous is a function literal defined inline
	KindAnonymous
	// KindField is a callable stored in a variable or struct field
	KindField
)

// HandlerRef describes a route handler for display purposes.
// It is filled in when the route is registered, while the declaration context
// is still known to the caller. Fn is the callable itself and is only inspected,
// never invoked.
type HandlerRef struct {
	Kind  HandlerKind
	Owner string // owning or enclosing type
	Name  string // method or field name
	Fn    any
}

// MethodRef describes fn as the method (or function) name declared on owner.
func MethodRef(owner, method string, fn any) HandlerRef {
	return HandlerRef{Kind: KindMethodRef, Owner: owner, Name: method, Fn: fn}
}

// Anonymous describes fn as a function literal defined inside owner.
func Anonymous(owner string, fn any) HandlerRef {
	return HandlerRef{Kind: KindAnonymous, Owner: owner, Fn: fn}
}

// FieldRef describes fn as the value held by owner's field.
func FieldRef(owner, field string, fn any) HandlerRef {
	return HandlerRef{Kind: KindField, Owner: owner, Name: field, Fn: fn}
}

// Func wraps an undeclared callable. Its name is recovered by reflection.
func Func(fn any) HandlerRef {
	return HandlerRef{Fn: fn}
}

// IsZero reports whether nothing at all was recorded for the handler.
func (ref HandlerRef) IsZero() bool {
	return ref.Kind == KindUnknown && ref.Owner == "" && ref.Name == "" && ref.Fn == nil
}
