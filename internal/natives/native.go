// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Native Wrappers

package natives

// ParamFlags is a bitset of parameter attributes. The "both set" and
// "neither set" combinations are meaningful states, exposed through the
// derived predicates below rather than ad hoc booleans.
type ParamFlags uint8

const (
	// FlagOutput marks a pointer parameter whose pointee is written back.
	FlagOutput ParamFlags = 1 << iota
	// FlagThis marks the receiver parameter of a class-handle method.
	FlagThis
	// FlagNotNull marks a pointer parameter that must not be nil.
	FlagNotNull
	// FlagIn marks a pointer parameter that is also read as an input.
	FlagIn
)

// Has reports whether all bits in f are set.
func (p ParamFlags) Has(f ParamFlags) bool {
	return p&f == f
}

// NativeParameter is one declared parameter of a native.
type NativeParameter struct {
	Name         string
	Type         TypeInfo
	Flags        ParamFlags
	DefaultValue string // raw literal as written; "" = no default
	Description  string
}

// HasDefault reports whether the parameter carries a default value literal.
func (p NativeParameter) HasDefault() bool {
	return p.DefaultValue != ""
}

// IsPureOutput reports whether the parameter only receives a value: it is
// excluded from the public call signature and returned as an extra result.
func (p NativeParameter) IsPureOutput() bool {
	return p.Flags.Has(FlagOutput) && !p.Flags.Has(FlagIn)
}

// IsInOut reports whether the parameter is both read and written back: it
// stays in the call signature and uses an initialized-pointer convention.
func (p NativeParameter) IsInOut() bool {
	return p.Flags.Has(FlagOutput) && p.Flags.Has(FlagIn)
}

// NativeDefinition is the validated model of one documented native function.
// It is created once per source document by the parser and afterwards
// mutated only by enum resolution in the validator.
type NativeDefinition struct {
	Namespace  string
	Name       string // canonical name, taken from the document heading
	Hash       string // canonical hex identifier, 0x + uppercase hex
	Aliases    []string
	ReturnType TypeInfo
	Parameters []NativeParameter // ordered, order is significant

	Deprecated        bool
	DeprecatedMessage string

	APISet     string
	SourceFile string
}

// PureOutputs returns the parameters excluded from the public call signature
// and surfaced as extra results instead, in declaration order.
func (n *NativeDefinition) PureOutputs() []NativeParameter {
	var out []NativeParameter
	for _, p := range n.Parameters {
		if p.IsPureOutput() {
			out = append(out, p)
		}
	}
	return out
}
