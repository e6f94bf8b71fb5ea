package analyzer

import (
	"regexp"
	"strings"
)

// NamespaceSeparator splits qualified symbol names into segments.
const NamespaceSeparator = "::"

var (
	// innermostAngles matches an angle-bracket group with no nested
	// brackets inside it.
	innermostAngles = regexp.MustCompile(`<[^<>]*>`)
	whitespaceRun   = regexp.MustCompile(`\s+`)
)

// Demangle simplifies Rust/C++ symbol names by stripping generic and
// template parameter lists. Nested groups are handled by repeatedly
// removing the innermost bracket group until a fixed point is reached,
// so "foo<bar<baz>>::qux" becomes "foo::qux". Runs of whitespace are
// collapsed and the result trimmed. Demangle is idempotent.
func Demangle(name string) string {
	result := name
	for {
		next := innermostAngles.ReplaceAllString(result, "")
		if next == result {
			break
		}
		result = next
	}
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(result, " "))
}

// ModuleOf returns the namespace path of a qualified name, i.e. every
// segment but the last: "foo::bar::baz" -> "foo::bar". A name without a
// separator is returned unchanged.
func ModuleOf(name string) string {
	parts := strings.Split(name, NamespaceSeparator)
	if len(parts) > 1 {
		return strings.Join(parts[:len(parts)-1], NamespaceSeparator)
	}
	return name
}

// CrateOf returns the top-level namespace of a qualified name:
// "foo::bar::baz" -> "foo". A name without a separator is returned
// unchanged.
func CrateOf(name string) string {
	parts := strings.Split(name, NamespaceSeparator)
	if len(parts) > 0 {
		return parts[0]
	}
	return name
}
