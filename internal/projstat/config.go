package projstat

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

// ExtensionList is an append-only list of file extensions (without the leading dot).
// Duplicates are allowed and never cause an error.
type ExtensionList []string

// Add appends the given extensions and returns how many were appended.
func (l *ExtensionList) Add(exts ...string) int {
	*l = append(*l, exts...)

	return len(exts)
}

// Remove deletes every occurrence of the given extensions and returns the
// decrease in list length.
//
// Calling Remove without arguments clears the whole list.
// An explicitly empty, non-nil slice removes nothing.
func (l *ExtensionList) Remove(exts ...string) int {
	before := len(*l)

	if exts == nil {
		*l = ExtensionList{}

		return before
	}

	*l = slices.DeleteFunc(*l, func(ext string) bool {
		return slices.Contains(exts, ext)
	})

	return before - len(*l)
}

// Contains reports whether ext is in the list.
func (l ExtensionList) Contains(ext string) bool {
	return slices.Contains(l, ext)
}

// TypeGroup names a logical file type made of one or more extensions.
type TypeGroup struct {
	// Name is the type label shown in reports.
	Name string
	// Extensions are the member extensions.
	Extensions []string
}

// TypeMap is an insertion-ordered mapping from type name to member extensions.
// Lookups walk it in order, so the first registered group wins when an
// extension belongs to several groups.
type TypeMap []TypeGroup

// Lookup returns the extensions registered under name.
func (m TypeMap) Lookup(name string) ([]string, bool) {
	if i := m.index(name); i >= 0 {
		return m[i].Extensions, true
	}

	return nil, false
}

func (m TypeMap) index(name string) int {
	return slices.IndexFunc(m, func(g TypeGroup) bool { return g.Name == name })
}

// MarshalJSON encodes the map as a JSON object whose keys keep insertion order.
func (m TypeMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, group := range m {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(group.Name)
		if err != nil {
			return nil, fmt.Errorf("encoding type name %q: %w", group.Name, err)
		}

		exts := group.Extensions
		if exts == nil {
			exts = []string{}
		}

		value, err := json.Marshal(exts)
		if err != nil {
			return nil, fmt.Errorf("encoding extensions of type %q: %w", group.Name, err)
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// MarshalYAML encodes the map as a YAML mapping whose keys keep insertion order.
func (m TypeMap) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}

	for _, group := range m {
		value := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
		for _, ext := range group.Extensions {
			value.Content = append(value.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: ext})
		}

		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: group.Name},
			value,
		)
	}

	return node, nil
}

// Configuration holds the extension tables consulted during a scan.
// It is owned by a single scan at a time; use Clone to hand out copies.
type Configuration struct {
	// Ignore lists extensions whose files are left out of the type breakdowns.
	Ignore ExtensionList `json:"ignore" yaml:"ignore"`
	// Source lists extensions whose files have their lines counted.
	Source ExtensionList `json:"source" yaml:"source"`
	// Types groups extensions under logical type names.
	Types TypeMap `json:"types" yaml:"types"`
}

// NewConfiguration returns the base configuration: git metadata files are
// ignored, no source extensions are registered, and images and fonts are grouped.
func NewConfiguration() *Configuration {
	return &Configuration{
		Ignore: ExtensionList{"gitignore", "git"},
		Source: ExtensionList{},
		Types: TypeMap{
			{Name: "image", Extensions: []string{"jpg", "png", "bmp", "gif"}},
			{Name: "font", Extensions: []string{"eot", "ttf", "woff"}},
		},
	}
}

// Clone returns a deep copy of the configuration.
func (c *Configuration) Clone() *Configuration {
	clone := &Configuration{
		Ignore: append(ExtensionList{}, c.Ignore...),
		Source: append(ExtensionList{}, c.Source...),
		Types:  make(TypeMap, 0, len(c.Types)),
	}

	for _, group := range c.Types {
		clone.Types = append(clone.Types, TypeGroup{
			Name:       group.Name,
			Extensions: append([]string{}, group.Extensions...),
		})
	}

	return clone
}

// Classify maps an extension to its type: the first group containing it,
// or the extension itself when no group does.
func (c *Configuration) Classify(ext string) string {
	for _, group := range c.Types {
		if slices.Contains(group.Extensions, ext) {
			return group.Name
		}
	}

	return ext
}

// AddType registers a type. An existing type keeps its position and has its
// extensions replaced.
func (c *Configuration) AddType(name string, exts ...string) {
	group := TypeGroup{Name: name, Extensions: append([]string{}, exts...)}

	if i := c.Types.index(name); i >= 0 {
		c.Types[i] = group

		return
	}

	c.Types = append(c.Types, group)
}

// RemoveType deletes a type. Removing an unknown type is a no-op.
func (c *Configuration) RemoveType(name string) {
	if i := c.Types.index(name); i >= 0 {
		c.Types = slices.Delete(c.Types, i, i+1)
	}
}

// AddSource registers source extensions and returns how many were appended.
func (c *Configuration) AddSource(exts ...string) int {
	return c.Source.Add(exts...)
}

// RemoveSource unregisters source extensions; without arguments it clears the list.
func (c *Configuration) RemoveSource(exts ...string) int {
	return c.Source.Remove(exts...)
}

// AddIgnore registers ignored extensions and returns how many were appended.
func (c *Configuration) AddIgnore(exts ...string) int {
	return c.Ignore.Add(exts...)
}

// RemoveIgnore unregisters ignored extensions; without arguments it clears the list.
func (c *Configuration) RemoveIgnore(exts ...string) int {
	return c.Ignore.Remove(exts...)
}
