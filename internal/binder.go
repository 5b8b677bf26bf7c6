package internal

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/golobby/cast"
	"github.com/microcosm-cc/bluemonday"
)

// ParamType is the declared type of a route constructor parameter.
type ParamType int

const (
	TypeInt ParamType = iota
	TypeInt64
	TypeFloat64
	TypeFloat32
	TypeBool
	TypeString
)

func (t ParamType) String() string {
	switch t {
	case TypeInt:
		return "int"
	case TypeInt64:
		return "int64"
	case TypeFloat64:
		return "float64"
	case TypeFloat32:
		return "float32"
	case TypeBool:
		return "bool"
	case TypeString:
		return "string"
	default:
		return "unknown"
	}
}

// reflectType returns the Go type bound parameters of this declared type
// convert into.
func (t ParamType) reflectType() reflect.Type {
	switch t {
	case TypeInt:
		return reflect.TypeOf(int(0))
	case TypeInt64:
		return reflect.TypeOf(int64(0))
	case TypeFloat64:
		return reflect.TypeOf(float64(0))
	case TypeFloat32:
		return reflect.TypeOf(float32(0))
	case TypeBool:
		return reflect.TypeOf(false)
	default:
		return reflect.TypeOf("")
	}
}

// Param declares one route constructor parameter. Name is the kebab-case wire
// name looked up in query, form, and path parameters. A declared default
// makes the parameter optional: absence is then not a binding error.
type Param struct {
	Name       string
	Type       ParamType
	Default    string
	HasDefault bool
}

// Optional marks the parameter optional with the given default raw value.
// The default is converted with the same rules as request input and is
// validated once at registry build time.
func (p Param) Optional(raw string) Param {
	p.Default = raw
	p.HasDefault = true
	return p
}

// Args is the typed argument list produced by a successful bind. It is fresh
// per request, keyed by wire name, and keeps the declared parameter order for
// positional (path placeholder) registration.
type Args struct {
	values map[string]any
	order  []string
}

// Int returns the bound int value, or zero when absent.
func (a Args) Int(name string) int {
	v, _ := a.values[name].(int)
	return v
}

// Int64 returns the bound int64 value, or zero when absent.
func (a Args) Int64(name string) int64 {
	v, _ := a.values[name].(int64)
	return v
}

// Float64 returns the bound float64 value, or zero when absent.
func (a Args) Float64(name string) float64 {
	v, _ := a.values[name].(float64)
	return v
}

// Float32 returns the bound float32 value, or zero when absent.
func (a Args) Float32(name string) float32 {
	v, _ := a.values[name].(float32)
	return v
}

// Bool returns the bound bool value, or false when absent.
func (a Args) Bool(name string) bool {
	v, _ := a.values[name].(bool)
	return v
}

// String returns the bound string value, or "" when absent.
func (a Args) String(name string) string {
	v, _ := a.values[name].(string)
	return v
}

// Has reports whether a value was bound under name.
func (a Args) Has(name string) bool {
	_, ok := a.values[name]
	return ok
}

// Len returns the number of bound arguments.
func (a Args) Len() int {
	return len(a.values)
}

// StringMap returns the bound arguments rendered back to strings in declared
// order, for logging and block wrapper metadata.
func (a Args) StringMap() map[string]string {
	m := make(map[string]string, len(a.values))
	for _, name := range a.order {
		m[name] = formatArg(a.values[name])
	}
	return m
}

// Binder converts a route's declared parameter list plus raw string request
// parameters into a typed argument list. It holds no per-request state and is
// safe for concurrent use.
type Binder struct {
	sanitize *bluemonday.Policy
}

// BinderOption configures a Binder.
type BinderOption func(*Binder)

// WithSanitizedStrings strips all HTML from bound string parameters using a
// strict bluemonday policy before they reach handler constructors.
func WithSanitizedStrings() BinderOption {
	return func(b *Binder) {
		b.sanitize = bluemonday.StrictPolicy()
	}
}

// NewBinder creates a Binder.
func NewBinder(opts ...BinderOption) *Binder {
	b := &Binder{}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Bind produces a fresh typed argument list from raw string parameters, or
// fails on the first absent-without-default or unconvertible parameter.
// Binding is all-or-nothing: a failed bind yields no Args at all.
func (b *Binder) Bind(params []Param, raw map[string]string) (Args, error) {
	args := Args{
		values: make(map[string]any, len(params)),
		order:  make([]string, 0, len(params)),
	}

	for _, p := range params {
		value, ok := raw[p.Name]
		if !ok {
			if !p.HasDefault {
				return Args{}, &MissingParameterError{Name: p.Name}
			}
			value = p.Default
		}

		v, err := convertParam(p, value)
		if err != nil {
			return Args{}, err
		}
		if s, isString := v.(string); isString && b.sanitize != nil {
			v = b.sanitize.Sanitize(s)
		}

		args.values[p.Name] = v
		args.order = append(args.order, p.Name)
	}

	return args, nil
}

// formatArg renders a bound value back to its wire string form.
func formatArg(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	default:
		return fmt.Sprintf("%v", t)
	}
}

// convertParam converts one raw string to the declared parameter type.
// Booleans accept only the case-insensitive literals "true" and "false";
// numeric types go through cast with base-10 / decimal semantics.
func convertParam(p Param, raw string) (any, error) {
	switch p.Type {
	case TypeString:
		return raw, nil
	case TypeBool:
		switch strings.ToLower(raw) {
		case "true":
			return true, nil
		case "false":
			return false, nil
		}
		return nil, &TypeConversionError{Name: p.Name, Raw: raw, Type: p.Type}
	default:
		v, err := cast.FromType(raw, p.Type.reflectType())
		if err != nil {
			return nil, &TypeConversionError{Name: p.Name, Raw: raw, Type: p.Type}
		}
		return v, nil
	}
}
