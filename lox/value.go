package lox

import (
	"fmt"
	"strconv"
)

// ValueKind tags the runtime shape of a Value.
type ValueKind int

const (
	KindNil ValueKind = iota
	KindBool
	KindNumber
	KindString
)

// Value is the closed set of runtime shapes evaluation can produce.
type Value struct {
	kind ValueKind
	data any
}

func NewNil() Value             { return Value{kind: KindNil} }
func NewBool(b bool) Value      { return Value{kind: KindBool, data: b} }
func NewNumber(n float64) Value { return Value{kind: KindNumber, data: n} }
func NewString(s string) Value  { return Value{kind: KindString, data: s} }

func (v Value) Kind() ValueKind { return v.kind }

func (v Value) IsNil() bool { return v.kind == KindNil }

func (v Value) Bool() bool {
	if v.kind != KindBool {
		return false
	}
	return v.data.(bool)
}

func (v Value) Number() float64 {
	if v.kind != KindNumber {
		return 0
	}
	return v.data.(float64)
}

func (v Value) Str() string {
	if v.kind != KindString {
		return ""
	}
	return v.data.(string)
}

func (k ValueKind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

func (v Value) String() string {
	switch v.kind {
	case KindNil:
		return "nil"
	case KindBool:
		if v.Bool() {
			return "true"
		}
		return "false"
	case KindNumber:
		return strconv.FormatFloat(v.data.(float64), 'g', -1, 64)
	case KindString:
		return v.data.(string)
	default:
		return fmt.Sprintf("<%s>", v.kind)
	}
}
