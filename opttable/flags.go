package opttable

import "strings"

// Flags is a bitset of independent boolean traits attached to an option.
// The trait set is closed; table serializations refer to traits by the
// symbolic names in flagNames.
type Flags uint16

const (
	// DriverOnly marks options consumed by the driver itself and excluded
	// from tool forwarding.
	DriverOnly Flags = 1 << iota

	// LinkerInput marks options whose values are treated as linker inputs.
	LinkerInput

	// NoArgumentUnused exempts a matched option from "argument unused"
	// correlation performed by downstream consumers.
	NoArgumentUnused

	// RenderAsValue redisplays the argument as a bare value, without the
	// flag spelling.
	RenderAsValue

	// RenderJoined forces joined form on redisplay.
	RenderJoined

	// RenderSeparate forces separate form on redisplay.
	RenderSeparate

	// Unsupported makes a structural match raise a fatal diagnostic.
	Unsupported

	// HelpHidden excludes the option from help listings.
	HelpHidden

	// NoForward excludes the matched argument from forwarding.
	NoForward

	// SecondaryStageOnly marks options accepted only by a secondary
	// tool stage.
	SecondaryStageOnly

	// PrimaryDriverReject marks options the primary driver rejects.
	PrimaryDriverReject
)

// flagNames maps each trait bit to its symbolic serialization name,
// in bit order.
var flagNames = []struct {
	bit  Flags
	name string
}{
	{DriverOnly, "driver_only"},
	{LinkerInput, "linker_input"},
	{NoArgumentUnused, "no_argument_unused"},
	{RenderAsValue, "render_as_value"},
	{RenderJoined, "render_joined"},
	{RenderSeparate, "render_separate"},
	{Unsupported, "unsupported"},
	{HelpHidden, "help_hidden"},
	{NoForward, "no_forward"},
	{SecondaryStageOnly, "secondary_stage_only"},
	{PrimaryDriverReject, "primary_driver_reject"},
}

// Has reports whether every trait in mask is set.
func (f Flags) Has(mask Flags) bool {
	return f&mask == mask
}

// String returns the symbolic names of the set traits, pipe-separated.
func (f Flags) String() string {
	if f == 0 {
		return "none"
	}

	var names []string
	for _, entry := range flagNames {
		if f.Has(entry.bit) {
			names = append(names, entry.name)
		}
	}
	return strings.Join(names, "|")
}

// ParseFlag resolves a symbolic trait name to its bit. The second return
// is false for unrecognized names.
func ParseFlag(name string) (Flags, bool) {
	for _, entry := range flagNames {
		if entry.name == name {
			return entry.bit, true
		}
	}
	return 0, false
}
