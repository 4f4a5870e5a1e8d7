package ri

import (
	"fmt"
	"slices"
	"strings"
)

// Value is a sealed interface over the array types a parameter may carry.
// Only FloatArray, IntArray, and StringArray implement it. Scalars are
// one-element arrays, matching how they appear in a RIB stream.
type Value interface {
	value() // Sealed - only these types implement it

	// Clone returns an independent deep copy of the value.
	Clone() Value
}

// FloatArray holds floating point parameter data.
type FloatArray []float64

func (FloatArray) value() {}

// Clone implements Value.
func (v FloatArray) Clone() Value { return FloatArray(slices.Clone(v)) }

// IntArray holds integer parameter data.
type IntArray []int

func (IntArray) value() {}

// Clone implements Value.
func (v IntArray) Clone() Value { return IntArray(slices.Clone(v)) }

// StringArray holds string parameter data.
type StringArray []string

func (StringArray) value() {}

// Clone implements Value.
func (v StringArray) Clone() Value { return StringArray(slices.Clone(v)) }

// Param is one declaration/value pair from a request's parameter list.
// Decl is either a bare name previously introduced via Declare, or an
// inline declaration such as "uniform point P".
type Param struct {
	Decl  string
	Value Value
}

// Name returns the variable name from the declaration: the last
// whitespace-separated word, with any array suffix stripped.
func (p Param) Name() string {
	fields := strings.Fields(p.Decl)
	if len(fields) == 0 {
		return ""
	}
	name := fields[len(fields)-1]
	if i := strings.IndexByte(name, '['); i >= 0 {
		name = name[:i]
	}
	return name
}

// ParamList is the ordered list of optional parameters attached to a
// request. Order is preserved on capture and replay; names are unique
// within a list but their relative order carries no meaning.
type ParamList []Param

// Float constructs a single-float parameter.
func Float(decl string, v float64) Param {
	return Param{Decl: decl, Value: FloatArray{v}}
}

// Floats constructs a float array parameter.
func Floats(decl string, v ...float64) Param {
	return Param{Decl: decl, Value: FloatArray(v)}
}

// Int constructs a single-int parameter.
func Int(decl string, v int) Param {
	return Param{Decl: decl, Value: IntArray{v}}
}

// Ints constructs an int array parameter.
func Ints(decl string, v ...int) Param {
	return Param{Decl: decl, Value: IntArray(v)}
}

// String constructs a single-string parameter.
func String(decl string, v string) Param {
	return Param{Decl: decl, Value: StringArray{v}}
}

// Strings constructs a string array parameter.
func Strings(decl string, v ...string) Param {
	return Param{Decl: decl, Value: StringArray(v)}
}

// Clone deep-copies the list. Stages that retain a ParamList beyond the
// duration of the call must clone it first; the caller may reuse the
// backing arrays.
func (pl ParamList) Clone() ParamList {
	if pl == nil {
		return nil
	}
	out := make(ParamList, len(pl))
	for i, p := range pl {
		out[i] = Param{Decl: p.Decl, Value: p.Value.Clone()}
	}
	return out
}

// Find returns the first parameter whose variable name matches name.
func (pl ParamList) Find(name string) (Param, bool) {
	for _, p := range pl {
		if p.Name() == name {
			return p, true
		}
	}
	return Param{}, false
}

// FindString returns the first value of a string parameter, or "" if the
// parameter is absent or not a string.
func (pl ParamList) FindString(name string) string {
	p, ok := pl.Find(name)
	if !ok {
		return ""
	}
	s, ok := p.Value.(StringArray)
	if !ok || len(s) == 0 {
		return ""
	}
	return s[0]
}

// String renders the list in RIB syntax, mainly for diagnostics.
func (pl ParamList) String() string {
	var b strings.Builder
	for i, p := range pl {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%q %s", p.Decl, formatValue(p.Value))
	}
	return b.String()
}

func formatValue(v Value) string {
	var b strings.Builder
	b.WriteByte('[')
	switch val := v.(type) {
	case FloatArray:
		for i, f := range val {
			if i > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%g", f)
		}
	case IntArray:
		for i, n := range val {
			if i > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%d", n)
		}
	case StringArray:
		for i, s := range val {
			if i > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%q", s)
		}
	}
	b.WriteByte(']')
	return b.String()
}
