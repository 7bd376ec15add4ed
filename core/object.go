package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Object represents a content-stream operand value.
type Object interface {
	Type() ObjectType
	String() string
}

// ObjectType represents the type of an operand value.
type ObjectType int

const (
	ObjNull ObjectType = iota
	ObjBool
	ObjNumber
	ObjString
	ObjName
	ObjArray
	ObjDict
)

// String returns the string representation of the object type.
func (t ObjectType) String() string {
	switch t {
	case ObjNull:
		return "Null"
	case ObjBool:
		return "Bool"
	case ObjNumber:
		return "Number"
	case ObjString:
		return "String"
	case ObjName:
		return "Name"
	case ObjArray:
		return "Array"
	case ObjDict:
		return "Dict"
	default:
		return "Unknown"
	}
}

// Null represents the null object.
type Null struct{}

func (n Null) Type() ObjectType { return ObjNull }
func (n Null) String() string   { return "null" }

// Bool represents a boolean.
type Bool bool

func (b Bool) Type() ObjectType { return ObjBool }
func (b Bool) String() string {
	if b {
		return "true"
	}
	return "false"
}

// Number represents a numeric value. Content-stream integers and reals
// share this type; every downstream consumer is float-driven.
type Number float64

func (n Number) Type() ObjectType { return ObjNumber }
func (n Number) String() string   { return strconv.FormatFloat(float64(n), 'f', -1, 64) }

// StringEncoding records how a string was written in the source.
type StringEncoding int

const (
	// EncodingLiteral is a parenthesized literal string.
	EncodingLiteral StringEncoding = iota
	// EncodingHex is an angle-bracketed hexadecimal string.
	EncodingHex
)

// String represents a string object. Text holds the decoded text, Raw the
// decoded bytes (identical content, kept for byte-oriented consumers such
// as character-code iteration), and Encoding the source form.
type String struct {
	Text     string
	Raw      []byte
	Encoding StringEncoding
}

// NewString builds a String from decoded bytes.
func NewString(raw []byte, enc StringEncoding) String {
	return String{Text: string(raw), Raw: raw, Encoding: enc}
}

func (s String) Type() ObjectType { return ObjString }
func (s String) String() string   { return s.Text }

// Name represents a name object, stored without the leading slash.
type Name string

func (n Name) Type() ObjectType { return ObjName }
func (n Name) String() string   { return "/" + string(n) }

// Array represents an ordered heterogeneous sequence of objects.
type Array []Object

func (a Array) Type() ObjectType { return ObjArray }
func (a Array) String() string {
	parts := make([]string, len(a))
	for i, obj := range a {
		parts[i] = obj.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Len returns the length of the array.
func (a Array) Len() int { return len(a) }

// Get retrieves the element at the given index, or nil if out of range.
func (a Array) Get(index int) Object {
	if index < 0 || index >= len(a) {
		return nil
	}
	return a[index]
}

// GetNumber retrieves a number at the given index.
func (a Array) GetNumber(index int) (Number, bool) {
	n, ok := a.Get(index).(Number)
	return n, ok
}

// GetName retrieves a name at the given index.
func (a Array) GetName(index int) (Name, bool) {
	n, ok := a.Get(index).(Name)
	return n, ok
}

// GetString retrieves a string at the given index.
func (a Array) GetString(index int) (String, bool) {
	s, ok := a.Get(index).(String)
	return s, ok
}

// Dict represents a dictionary. Keys keep their insertion order, which is
// significant when operand dictionaries are re-serialized.
type Dict struct {
	keys   []string
	values map[string]Object
}

// NewDict creates an empty dictionary.
func NewDict() *Dict {
	return &Dict{values: make(map[string]Object)}
}

func (d *Dict) Type() ObjectType { return ObjDict }
func (d *Dict) String() string {
	parts := make([]string, len(d.keys))
	for i, key := range d.keys {
		parts[i] = fmt.Sprintf("/%s %s", key, d.values[key].String())
	}
	return "<<" + strings.Join(parts, " ") + ">>"
}

// Set stores a value, preserving first-insertion key order.
func (d *Dict) Set(key string, value Object) {
	if _, exists := d.values[key]; !exists {
		d.keys = append(d.keys, key)
	}
	d.values[key] = value
}

// Get retrieves a value, or nil if the key is absent.
func (d *Dict) Get(key string) Object {
	return d.values[key]
}

// Has reports whether the key exists.
func (d *Dict) Has(key string) bool {
	_, ok := d.values[key]
	return ok
}

// Len returns the number of entries.
func (d *Dict) Len() int { return len(d.keys) }

// Keys returns the keys in insertion order.
func (d *Dict) Keys() []string {
	keys := make([]string, len(d.keys))
	copy(keys, d.keys)
	return keys
}

// GetNumber retrieves a numeric value.
func (d *Dict) GetNumber(key string) (Number, bool) {
	n, ok := d.values[key].(Number)
	return n, ok
}

// GetName retrieves a name value.
func (d *Dict) GetName(key string) (Name, bool) {
	n, ok := d.values[key].(Name)
	return n, ok
}

// GetString retrieves a string value.
func (d *Dict) GetString(key string) (String, bool) {
	s, ok := d.values[key].(String)
	return s, ok
}

// GetArray retrieves an array value.
func (d *Dict) GetArray(key string) (Array, bool) {
	a, ok := d.values[key].(Array)
	return a, ok
}

// GetDict retrieves a nested dictionary value.
func (d *Dict) GetDict(key string) (*Dict, bool) {
	dict, ok := d.values[key].(*Dict)
	return dict, ok
}

// GetBool retrieves a boolean value.
func (d *Dict) GetBool(key string) (Bool, bool) {
	b, ok := d.values[key].(Bool)
	return b, ok
}
