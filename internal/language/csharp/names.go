package csharp

import (
	"regexp"
	"strings"
)

// methodNameRegex splits "<owner-and-return>::<name>(<params>)". The owner part is
// greedy so that the last "::" wins; the name stops at the first parenthesis.
var methodNameRegex = regexp.MustCompile(`^(?P<Owner>.*)::(?P<MethodName>[^(]*)(?P<Signature>\(.*\))$`)

// asyncReturnTypePrefixes are the return types whose body lives in a state machine.
var asyncReturnTypePrefixes = []string{
	"System.Threading.Tasks.Task",
	"System.Threading.Tasks.ValueTask",
}

// MethodName is the result of parsing a mangled OpenCover method identifier.
type MethodName struct {
	// Raw is the identifier as reported.
	Raw string
	// Name is the short method name, e.g. "Baz" or ".ctor".
	Name string
	// Signature is the parameter list including parentheses.
	Signature string
	// Owner is everything before "::", e.g. "System.Void Foo.Bar".
	Owner string
	// ReturnType is the return type token of Owner.
	ReturnType string
	// DeclaringType is the owning type name of Owner.
	DeclaringType string
	// Parsed is false when the identifier did not match the expected grammar.
	Parsed bool
}

// ParseMethodName extracts name, signature and owner from an identifier like
// "System.Threading.Tasks.Task Foo.Bar::Baz(System.Int32)". Identifiers that do
// not follow the grammar degrade to the raw string for every part.
func ParseMethodName(raw string) MethodName {
	match := methodNameRegex.FindStringSubmatch(raw)
	if match == nil {
		return MethodName{
			Raw:           raw,
			Name:          raw,
			Signature:     raw,
			Owner:         raw,
			ReturnType:    raw,
			DeclaringType: raw,
		}
	}

	owner := match[methodNameRegex.SubexpIndex("Owner")]
	returnType, declaringType := splitOwner(owner)
	return MethodName{
		Raw:           raw,
		Name:          match[methodNameRegex.SubexpIndex("MethodName")],
		Signature:     match[methodNameRegex.SubexpIndex("Signature")],
		Owner:         owner,
		ReturnType:    returnType,
		DeclaringType: declaringType,
		Parsed:        true,
	}
}

// splitOwner separates "ReturnType Namespace.Class". Without a space the token
// is split on the first '.' instead.
func splitOwner(owner string) (returnType, declaringType string) {
	if i := strings.IndexByte(owner, ' '); i != -1 {
		return owner[:i], owner[i+1:]
	}
	parts := strings.SplitN(owner, ".", 2)
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}

// IsAsync reports whether the return type is a task type, meaning the
// instrumented body sits on a compiler generated state machine.
func (m MethodName) IsAsync() bool {
	if !m.Parsed {
		return false
	}
	for _, prefix := range asyncReturnTypePrefixes {
		if m.ReturnType == prefix || strings.HasPrefix(m.ReturnType, prefix+"`") {
			return true
		}
	}
	return false
}

// StateMachineTypeName is the nested type the compiler generates for an async
// method: "<DeclaringType>/<<Name>>".
func (m MethodName) StateMachineTypeName() string {
	return m.DeclaringType + "/<" + m.Name + ">"
}
