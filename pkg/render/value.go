package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/arthur-debert/docmap/pkg/errors"
)

// Kind identifies the variant held by a Value.
type Kind int

const (
	KindNull Kind = iota
	KindString
	KindBool
	KindInt
	KindFloat
	KindList
	KindMapping
)

// Value is a node of a render context: a Scalar, a List or a Mapping.
type Value interface {
	Kind() Kind
	// Native converts the value back into plain Go data
	Native() any
	isValue()
}

// Scalar holds a null, string, bool, integer or float.
type Scalar struct {
	kind Kind
	s    string
	b    bool
	i    int64
	f    float64
}

// List is an ordered sequence of values.
type List []Value

// Mapping is a set of named values.
type Mapping map[string]Value

// Context is the root mapping a template is rendered against.
type Context = Mapping

func (Scalar) isValue()  {}
func (List) isValue()    {}
func (Mapping) isValue() {}

// Null returns the null scalar.
func Null() Scalar { return Scalar{kind: KindNull} }

// Str returns a string scalar.
func Str(s string) Scalar { return Scalar{kind: KindString, s: s} }

// Bool returns a boolean scalar.
func Bool(b bool) Scalar { return Scalar{kind: KindBool, b: b} }

// Int returns an integer scalar.
func Int(i int64) Scalar { return Scalar{kind: KindInt, i: i} }

// Float returns a floating point scalar.
func Float(f float64) Scalar { return Scalar{kind: KindFloat, f: f} }

func (s Scalar) Kind() Kind { return s.kind }
func (List) Kind() Kind     { return KindList }
func (Mapping) Kind() Kind  { return KindMapping }

func (s Scalar) Native() any {
	switch s.kind {
	case KindString:
		return s.s
	case KindBool:
		return s.b
	case KindInt:
		return s.i
	case KindFloat:
		return s.f
	default:
		return nil
	}
}

func (l List) Native() any {
	out := make([]any, len(l))
	for i, v := range l {
		out[i] = native(v)
	}
	return out
}

func (m Mapping) Native() any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = native(v)
	}
	return out
}

func native(v Value) any {
	if v == nil {
		return nil
	}
	return v.Native()
}

// String returns the scalar's canonical text.
func (s Scalar) String() string {
	switch s.kind {
	case KindString:
		return s.s
	case KindBool:
		return strconv.FormatBool(s.b)
	case KindInt:
		return strconv.FormatInt(s.i, 10)
	case KindFloat:
		return strconv.FormatFloat(s.f, 'f', -1, 64)
	default:
		return "null"
	}
}

// String returns the list as JSON, or an error marker if it cannot be encoded.
func (l List) String() string {
	text, err := Text(l)
	if err != nil {
		return fmt.Sprintf("<invalid list: %v>", err)
	}
	return text
}

// String returns the mapping as JSON with sorted keys.
func (m Mapping) String() string {
	text, err := Text(m)
	if err != nil {
		return fmt.Sprintf("<invalid mapping: %v>", err)
	}
	return text
}

// Text returns the canonical textual form of v: scalars as plain text, lists
// and mappings as compact JSON with sorted keys and unescaped HTML characters.
// A nil Value renders as null.
func Text(v Value) (string, error) {
	if v == nil {
		return Null().String(), nil
	}
	if s, ok := v.(Scalar); ok {
		return s.String(), nil
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v.Native()); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// NewContext converts decoded data (from JSON, YAML, TOML or Go literals)
// into a Context.
func NewContext(data map[string]any) (Context, error) {
	ctx := make(Mapping, len(data))
	for k, raw := range data {
		v, err := FromAny(raw)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInvalidInput, "context key %q", k)
		}
		ctx[k] = v
	}
	return ctx, nil
}

// MustContext is NewContext for literals known to be valid.
func MustContext(data map[string]any) Context {
	ctx, err := NewContext(data)
	if err != nil {
		panic(err)
	}
	return ctx
}

// FromAny converts a Go value into a Value.
func FromAny(raw any) (Value, error) {
	switch v := raw.(type) {
	case nil:
		return Null(), nil
	case Value:
		return v, nil
	case string:
		return Str(v), nil
	case []byte:
		return Str(string(v)), nil
	case bool:
		return Bool(v), nil
	case int:
		return Int(int64(v)), nil
	case int8:
		return Int(int64(v)), nil
	case int16:
		return Int(int64(v)), nil
	case int32:
		return Int(int64(v)), nil
	case int64:
		return Int(v), nil
	case uint:
		return fromUint(uint64(v)), nil
	case uint8:
		return Int(int64(v)), nil
	case uint16:
		return Int(int64(v)), nil
	case uint32:
		return Int(int64(v)), nil
	case uint64:
		return fromUint(v), nil
	case float32:
		return Float(float64(v)), nil
	case float64:
		return Float(v), nil
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return Int(i), nil
		}
		f, err := v.Float64()
		if err != nil {
			return nil, err
		}
		return Float(f), nil
	case time.Time:
		return Str(v.Format(time.RFC3339Nano)), nil
	case []any:
		list := make(List, len(v))
		for i, item := range v {
			converted, err := FromAny(item)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			list[i] = converted
		}
		return list, nil
	case map[string]any:
		m := make(Mapping, len(v))
		for k, item := range v {
			converted, err := FromAny(item)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", k, err)
			}
			m[k] = converted
		}
		return m, nil
	case fmt.Stringer:
		return Str(v.String()), nil
	}

	return fromReflect(reflect.ValueOf(raw))
}

func fromUint(u uint64) Value {
	if u > math.MaxInt64 {
		return Float(float64(u))
	}
	return Int(int64(u))
}

// fromReflect handles typed slices and maps such as []string or
// map[interface{}]interface{}.
func fromReflect(rv reflect.Value) (Value, error) {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Null(), nil
		}
		return FromAny(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		list := make(List, rv.Len())
		for i := range list {
			converted, err := FromAny(rv.Index(i).Interface())
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			list[i] = converted
		}
		return list, nil
	case reflect.Map:
		m := make(Mapping, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			key := fmt.Sprint(iter.Key().Interface())
			converted, err := FromAny(iter.Value().Interface())
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", key, err)
			}
			m[key] = converted
		}
		return m, nil
	case reflect.String:
		return Str(rv.String()), nil
	case reflect.Bool:
		return Bool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return fromUint(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return Float(rv.Float()), nil
	}
	return nil, fmt.Errorf("unsupported context value of type %T", rv.Interface())
}
