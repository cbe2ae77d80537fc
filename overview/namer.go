package overview

import (
	"reflect"
	"regexp"
	"runtime"
	"strings"
)

const lambdaSign = "??? (anonymous lambda)"

// closureSegment matches the names the compiler gives function literals (func1, func12, ...)
var closureSegment = regexp.MustCompile(`^func\d+$`)

// Namer turns a HandlerRef into a readable label.
// The zero value is ready to use.
type Namer struct {
	// FieldSources are structs (or pointers to structs) whose func-typed fields
	// may hold route handlers. They let closures stored in fields be named after the field.
	FieldSources []any
}

// defaultNamer has no field sources
var defaultNamer = &Namer{}

// NameOf returns a best-effort label for the handler using the default Namer.
func NameOf(ref HandlerRef) string {
	return defaultNamer.NameOf(ref)
}

// NameOf returns a best-effort label for the handler. Declared information wins
// over reflection; when nothing can be recovered the label is "<type>.class".
// It never panics.
func (n *Namer) NameOf(ref HandlerRef) string {
	// Declared at registration
	switch {
	case ref.Kind == KindMethodRef && ref.Owner != "" && ref.Name != "":
		return ref.Owner + "::" + ref.Name
	case ref.Kind == KindAnonymous && ref.Owner != "":
		return ref.Owner + "::" + lambdaSign
	case ref.Kind == KindField && ref.Owner != "" && ref.Name != "":
		return ref.Owner + "." + ref.Name
	}

	// Recovered from the runtime
	sym := symbolOf(ref.Fn)
	if sym.name != "" {
		if owner, method, ok := sym.methodName(); ok {
			return owner + "::" + method
		}
	}

	if owner, field, ok := n.fieldName(ref.Fn); ok {
		return owner + "." + field
	}

	if sym.name != "" {
		if enclosing, ok := sym.enclosing(); ok {
			return enclosing + "::" + lambdaSign
		}
	}

	return typeName(ref.Fn) + ".class"
}

// symbol is a function's runtime name split into its package path and dotted segments.
// Example:
//
//	github.com/acme/app.(*Users).List-fm
//	pkg:  github.com/acme/app
//	segs: (*Users), List-fm
type symbol struct {
	name string
	pkg  string
	segs []string
}

// symbolOf looks up the runtime name of fn. Non-func and nil values give an empty symbol.
func symbolOf(fn any) (sym symbol) {
	defer func() {
		if r := recover(); r != nil {
			sym = symbol{}
		}
	}()

	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return
	}

	f := runtime.FuncForPC(v.Pointer())
	if f == nil {
		return
	}

	return parseSymbol(f.Name())
}

// parseSymbol splits a runtime function name.
// The package path may itself contain dots (github.com) so splitting starts after the last slash.
func parseSymbol(name string) symbol {
	sym := symbol{name: name}
	if name == "" {
		return sym
	}

	// Generic instantiations print as Type[...], drop the brackets so they don't split
	clean := strings.ReplaceAll(name, "[...]", "")

	slash := strings.LastIndexByte(clean, '/')
	rest := clean[slash+1:]

	dot := strings.IndexByte(rest, '.')
	if dot < 0 {
		sym.pkg = clean
		return sym
	}

	sym.pkg = clean[:slash+1+dot]
	sym.segs = strings.Split(rest[dot+1:], ".")
	return sym
}

// methodName scans the segments from the end backward for the first plausible declared name.
// Wrapper suffixes are trimmed and generated segments are skipped. Reaching a function
// literal marker means the callable is anonymous, so there is no method name.
func (sym symbol) methodName() (owner, method string, ok bool) {
	for i := len(sym.segs) - 1; i >= 0; i-- {
		seg := trimWrapperSuffix(sym.segs[i])

		switch {
		case seg == "", isDigits(seg), seg == "glob":
			continue
		case closureSegment.MatchString(seg):
			return "", "", false
		case seg == "init", strings.HasPrefix(seg, "deferwrap"), seg == "wrapper":
			continue
		}

		return sym.qualify(sym.segs[:i]), seg, true
	}

	return "", "", false
}

// enclosing returns the owner of a function literal: the receiver type of the method
// it was declared in, else its package.
// A pointer receiver is found by its (*T) form. Otherwise the segment before the declaring
// method is taken as the owner, which also covers package names holding a dot (yaml.v3).
// A value receiver method and a function inlined into its caller print the same way.
func (sym symbol) enclosing() (string, bool) {
	for i, seg := range sym.segs {
		if !closureSegment.MatchString(seg) {
			continue
		}

		declared := sym.segs[:i]
		for j := len(declared) - 1; j >= 0; j-- {
			if strings.HasPrefix(declared[j], "(") {
				return sym.qualify(declared[:j+1]), true
			}
		}

		// receiver.method.funcN
		if len(declared) >= 2 {
			return sym.qualify(declared[:len(declared)-1]), true
		}
		return sym.pkg, true
	}

	return "", false
}

// qualify joins the package with the owner segments, dropping pointer receiver punctuation.
func (sym symbol) qualify(segs []string) string {
	if len(segs) == 0 {
		return sym.pkg
	}

	var sb strings.Builder
	sb.WriteString(sym.pkg)
	for _, seg := range segs {
		if seg == "" || seg == "glob" {
			continue
		}
		sb.WriteByte('.')
		sb.WriteString(strings.TrimSuffix(strings.TrimPrefix(seg, "(*"), ")"))
	}
	return sb.String()
}

// fieldName looks for fn among the func fields of the field sources.
func (n *Namer) fieldName(fn any) (owner, field string, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			owner, field, ok = "", "", false
		}
	}()

	target := reflect.ValueOf(fn)
	if target.Kind() != reflect.Func || target.IsNil() {
		return
	}
	ptr := target.Pointer()

	for _, src := range n.FieldSources {
		v := reflect.ValueOf(src)
		for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
			if v.IsNil() {
				break
			}
			v = v.Elem()
		}
		if v.Kind() != reflect.Struct {
			continue
		}

		t := v.Type()
		for i := range t.NumField() {
			fv := v.Field(i)
			if fv.Kind() != reflect.Func || fv.IsNil() {
				continue
			}
			if fv.Pointer() == ptr {
				return qualifiedTypeName(t), t.Field(i).Name, true
			}
		}
	}

	return
}

// typeName is the fully qualified name of fn's dynamic type.
func typeName(fn any) string {
	t := reflect.TypeOf(fn)
	if t == nil {
		return "<nil>"
	}
	return qualifiedTypeName(t)
}

func qualifiedTypeName(t reflect.Type) string {
	if t.Name() != "" && t.PkgPath() != "" {
		return t.PkgPath() + "." + t.Name()
	}
	return t.String()
}

// trimWrapperSuffix removes compiler suffixes such as "-fm" (method values) and "-range1" (range-over-func bodies).
func trimWrapperSuffix(seg string) string {
	if i := strings.IndexByte(seg, '-'); i > 0 {
		return seg[:i]
	}
	return seg
}

func isDigits(s string) bool {
	for i := range len(s) {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}
