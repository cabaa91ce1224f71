package block

import "strings"

// Kind identifies which variant a Value holds.
type Kind uint8

const (
	// KindAbsent marks a key that was not written in the block and has no
	// default.
	KindAbsent Kind = iota
	// KindScalar marks a single trimmed string.
	KindScalar
	// KindList marks a bracketed, comma separated list of trimmed strings.
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindList:
		return "list"
	default:
		return "absent"
	}
}

// Value is a configuration value: either a scalar or a list. The zero Value is
// absent.
type Value struct {
	kind   Kind
	scalar string
	list   []string
}

// Scalar builds a scalar Value.
func Scalar(value string) Value {
	return Value{kind: KindScalar, scalar: value}
}

// List builds a list Value. The items are copied.
func List(items ...string) Value {
	return Value{kind: KindList, list: append([]string{}, items...)}
}

// ParseValue types a raw value: `[a, b]` becomes a list, anything else a
// scalar holding the trimmed text.
func ParseValue(raw string) Value {
	trimmed := strings.TrimSpace(raw)
	if len(trimmed) >= 2 && strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
		parts := strings.Split(trimmed[1:len(trimmed)-1], ",")
		for i, part := range parts {
			parts[i] = strings.TrimSpace(part)
		}
		return Value{kind: KindList, list: parts}
	}
	return Scalar(trimmed)
}

// Kind reports the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsSet reports whether v holds a scalar or a list.
func (v Value) IsSet() bool { return v.kind != KindAbsent }

// IsScalar reports whether v is a scalar.
func (v Value) IsScalar() bool { return v.kind == KindScalar }

// IsList reports whether v is a list.
func (v Value) IsList() bool { return v.kind == KindList }

// Scalar returns the scalar text and whether v is a scalar.
func (v Value) Scalar() (string, bool) {
	if v.kind != KindScalar {
		return "", false
	}
	return v.scalar, true
}

// List returns a copy of the list items and whether v is a list.
func (v Value) List() ([]string, bool) {
	if v.kind != KindList {
		return nil, false
	}
	return append([]string{}, v.list...), true
}

// At returns the list entry at index. Scalars, absent values, out of range
// indexes and empty entries all report false.
func (v Value) At(index int) (string, bool) {
	if v.kind != KindList || index < 0 || index >= len(v.list) {
		return "", false
	}
	item := v.list[index]
	return item, item != ""
}

// Truthy reports whether v carries something usable: any list, or a
// non-empty scalar.
func (v Value) Truthy() bool {
	switch v.kind {
	case KindList:
		return true
	case KindScalar:
		return v.scalar != ""
	default:
		return false
	}
}

// OrDefault returns v when set, otherwise fallback.
func (v Value) OrDefault(fallback Value) Value {
	if v.IsSet() {
		return v
	}
	return fallback
}

// String renders v in block syntax.
func (v Value) String() string {
	switch v.kind {
	case KindScalar:
		return v.scalar
	case KindList:
		return "[" + strings.Join(v.list, ", ") + "]"
	default:
		return ""
	}
}
