// Package tableio loads serialized option tables, the output of the
// external table generator, and builds validated opttable.Table values.
// TOML and YAML serializations are supported; kinds and traits are
// referenced by their symbolic names.
package tableio

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/dvander/go-opttable/opttable"
)

// GroupRecord is the serialized form of a group entry.
type GroupRecord struct {
	ID     string `toml:"id" yaml:"id"`
	Name   string `toml:"name" yaml:"name"`
	Help   string `toml:"help,omitempty" yaml:"help,omitempty"`
	Parent string `toml:"parent,omitempty" yaml:"parent,omitempty"`
}

// OptionRecord is the serialized form of one option entry.
type OptionRecord struct {
	ID       string   `toml:"id" yaml:"id"`
	Prefixes []string `toml:"prefixes,omitempty" yaml:"prefixes,omitempty"`
	Name     string   `toml:"name" yaml:"name"`
	Kind     string   `toml:"kind" yaml:"kind"`
	NumArgs  int      `toml:"num_args,omitempty" yaml:"num_args,omitempty"`
	Help     string   `toml:"help,omitempty" yaml:"help,omitempty"`
	MetaVar  string   `toml:"metavar,omitempty" yaml:"metavar,omitempty"`
	Flags    []string `toml:"flags,omitempty" yaml:"flags,omitempty"`
	Group    string   `toml:"group,omitempty" yaml:"group,omitempty"`
	Alias    string   `toml:"alias,omitempty" yaml:"alias,omitempty"`
}

// File is the top-level serialized table document.
type File struct {
	Groups  []GroupRecord  `toml:"groups" yaml:"groups"`
	Options []OptionRecord `toml:"options" yaml:"options"`
}

// Load reads a serialized table from path, choosing the decoder by file
// extension (.toml, .yaml, .yml), and builds the validated table.
func Load(path string) (*opttable.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("tableio: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return LoadTOML(f)
	case ".yaml", ".yml":
		return LoadYAML(f)
	default:
		return nil, fmt.Errorf("tableio: unrecognized table format %q", filepath.Ext(path))
	}
}

// LoadTOML decodes a TOML table document and builds the validated table.
func LoadTOML(r io.Reader) (*opttable.Table, error) {
	var file File
	if _, err := toml.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("tableio: decoding toml: %w", err)
	}
	return Build(&file)
}

// LoadYAML decodes a YAML table document and builds the validated table.
func LoadYAML(r io.Reader) (*opttable.Table, error) {
	var file File
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("tableio: decoding yaml: %w", err)
	}
	return Build(&file)
}

// Build converts a decoded document into option definitions and runs
// table construction, which performs the cross-record validation
// (acyclicity, dangling references, spelling uniqueness).
func Build(file *File) (*opttable.Table, error) {
	defs := make([]opttable.OptionDef, 0, len(file.Groups)+len(file.Options))

	// Group records first: forward references from options to groups
	// are resolved by identifier, so order is a readability choice only.
	for _, group := range file.Groups {
		defs = append(defs, opttable.OptionDef{
			ID:    group.ID,
			Name:  group.Name,
			Kind:  opttable.KindGroup,
			Help:  group.Help,
			Group: group.Parent,
		})
	}

	for _, rec := range file.Options {
		kind, ok := opttable.ParseKind(rec.Kind)
		if !ok {
			return nil, fmt.Errorf("tableio: option %q: unknown kind %q", rec.ID, rec.Kind)
		}

		var flags opttable.Flags
		for _, name := range rec.Flags {
			bit, known := opttable.ParseFlag(name)
			if !known {
				return nil, fmt.Errorf("tableio: option %q: unknown flag %q", rec.ID, name)
			}
			flags |= bit
		}

		defs = append(defs, opttable.OptionDef{
			ID:       rec.ID,
			Prefixes: rec.Prefixes,
			Name:     rec.Name,
			Kind:     kind,
			NumArgs:  rec.NumArgs,
			Help:     rec.Help,
			MetaVar:  rec.MetaVar,
			Flags:    flags,
			Group:    rec.Group,
			Alias:    rec.Alias,
		})
	}

	return opttable.NewTable(defs)
}
